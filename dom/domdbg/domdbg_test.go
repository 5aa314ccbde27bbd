package domdbg_test

import (
	"strings"
	"testing"

	"github.com/npillmayer/htmltree/dom"
	"github.com/npillmayer/htmltree/dom/domdbg"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func documentForTest(t *testing.T) *dom.Node {
	root := dom.NewElement("html")
	body := dom.NewElement("body")
	p := dom.NewElement("p").SetAttr("class", "intro")
	if err := root.AppendChild(body); err != nil {
		t.Fatal(err)
	}
	if err := body.AppendChild(p); err != nil {
		t.Fatal(err)
	}
	if err := p.AppendChild(dom.NewText("hello")); err != nil {
		t.Fatal(err)
	}
	return root
}

func TestTreeprint(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "htmltree.dom")
	defer teardown()
	//
	doc := documentForTest(t)
	sketch := domdbg.Treeprint(doc)
	t.Logf("document =\n%s", sketch)
	for _, part := range []string{"<body>", `class="intro"`, `"hello"`} {
		if !strings.Contains(sketch, part) {
			t.Errorf("expected tree sketch to contain %s, doesn't", part)
		}
	}
}

func TestToGraphViz(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "htmltree.dom")
	defer teardown()
	//
	doc := documentForTest(t)
	var sb strings.Builder
	domdbg.ToGraphViz(doc, &sb)
	dot := sb.String()
	if !strings.HasPrefix(dot, "digraph g {") || !strings.HasSuffix(dot, "}\n") {
		t.Error("expected output to be a DOT digraph, isn't")
	}
	if !strings.Contains(dot, "node00001 -> node00002") {
		t.Error("expected an edge from the root to <body>, found none")
	}
}
