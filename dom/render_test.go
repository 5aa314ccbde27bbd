package dom_test

import (
	"strings"
	"testing"

	"github.com/npillmayer/htmltree/dom"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestRenderHeaderScenario(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "htmltree.dom")
	defer teardown()
	//
	root := dom.NewElement("html")
	h1 := dom.NewElement("h1")
	if err := h1.AppendChild(dom.NewText("T")); err != nil {
		t.Fatal(err)
	}
	if err := root.AppendChild(h1); err != nil {
		t.Fatal(err)
	}
	var sb strings.Builder
	if err := root.Render(&sb, "  "); err != nil {
		t.Fatalf("expected rendering to succeed, got %v", err)
	}
	expected := "<html>\n  <h1>\n    T\n  </h1>\n</html>\n"
	if sb.String() != expected {
		t.Errorf("expected rendered tree to be\n%q\ngot\n%q", expected, sb.String())
	}
}

func TestRenderHyperlinkScenario(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "htmltree.dom")
	defer teardown()
	//
	a := dom.NewElement("a")
	a.SetAttr("href", "http://example.org")
	if err := a.AppendChild(dom.NewText("X")); err != nil {
		t.Fatal(err)
	}
	var sb strings.Builder
	if err := a.Render(&sb, "  "); err != nil {
		t.Fatalf("expected rendering to succeed, got %v", err)
	}
	expected := "<a href=\"http://example.org\">\n  X\n</a>\n"
	if sb.String() != expected {
		t.Errorf("expected rendered hyperlink to be\n%q\ngot\n%q", expected, sb.String())
	}
}

func TestRenderIndentFollowsDepth(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "htmltree.dom")
	defer teardown()
	//
	root := dom.NewElement("html")
	node := root
	for _, tag := range []string{"body", "p", "b"} {
		ch := dom.NewElement(tag)
		if err := node.AppendChild(ch); err != nil {
			t.Fatal(err)
		}
		node = ch
	}
	var sb strings.Builder
	if err := root.Render(&sb, "\t"); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimRight(sb.String(), "\n"), "\n")
	// opening lines of html, body, p, b
	for depth, line := range lines[:4] {
		if strings.Count(line, "\t") != depth || !strings.HasPrefix(strings.TrimLeft(line, "\t"), "<") {
			t.Errorf("expected line %d to be indented %d units, is %q", depth, depth, line)
		}
	}
}

func TestStringRendersTree(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "htmltree.dom")
	defer teardown()
	//
	root := dom.NewElement("html")
	if err := root.AppendChild(dom.NewText("T")); err != nil {
		t.Fatal(err)
	}
	var sb strings.Builder
	if err := root.Render(&sb, dom.DefaultIndent); err != nil {
		t.Fatal(err)
	}
	if root.String() != sb.String() {
		t.Errorf("expected String to equal Render with the default indent, got\n%q\nvs\n%q",
			root.String(), sb.String())
	}
	var nilNode *dom.Node
	if s := nilNode.String(); !strings.Contains(s, "nil") {
		t.Errorf("expected formatting a nil node to yield a placeholder, got %q", s)
	}
}

func TestRenderAttributeOrder(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "htmltree.dom")
	defer teardown()
	//
	a := dom.NewElement("a")
	a.SetAttr("href", "http://example.org")
	a.SetAttr("class", "external")
	a.SetAttr("href", "https://example.org") // overwrites the first href
	if err := a.AppendChild(dom.NewText("X")); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(a.String(), "\n")
	expected := `<a href="https://example.org" class="external">`
	if lines[0] != expected {
		t.Errorf("expected opening tag line to be\n%q\ngot\n%q", expected, lines[0])
	}
	if strings.Count(lines[0], "href") != 1 {
		t.Errorf("expected exactly one rendered href occurrence, got %q", lines[0])
	}
}

func TestRenderIsIdempotent(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "htmltree.dom")
	defer teardown()
	//
	root := dom.NewElement("html")
	p := dom.NewElement("p").SetAttr("class", "intro")
	if err := root.AppendChild(p); err != nil {
		t.Fatal(err)
	}
	if err := p.AppendChild(dom.NewText("once")); err != nil {
		t.Fatal(err)
	}
	first := root.String()
	second := root.String()
	if first != second {
		t.Errorf("expected repeated rendering to be byte-identical:\n%q\n%q", first, second)
	}
}
