package dom_test

import (
	"errors"
	"testing"

	"github.com/npillmayer/htmltree/dom"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestNodeCreate(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "htmltree.dom")
	defer teardown()
	//
	el := dom.NewElement("p")
	if el.Type() != dom.ElementNode || el.Tag() != "p" {
		t.Errorf("expected an element node with tag 'p', got %s", el)
	}
	txt := dom.NewText("hello")
	if txt.Type() != dom.TextNode || txt.Text() != "hello" {
		t.Errorf("expected a text node carrying 'hello', got %s", txt)
	}
}

func TestNodeAppendChild(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "htmltree.dom")
	defer teardown()
	//
	body := dom.NewElement("body")
	p := dom.NewElement("p")
	if err := body.AppendChild(p); err != nil {
		t.Fatalf("expected appending <p> to <body> to succeed, got %v", err)
	}
	if body.ChildCount() != 1 || p.ParentNode() != body {
		t.Error("expected <p> to be the single child of <body>, isn't")
	}
}

func TestNodeAppendChildConstraints(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "htmltree.dom")
	defer teardown()
	//
	txt := dom.NewText("leaf")
	if err := txt.AppendChild(dom.NewElement("p")); !errors.Is(err, dom.ErrConstraintViolation) {
		t.Errorf("expected appending to a text node to violate constraints, got %v", err)
	}
	body := dom.NewElement("body")
	if err := body.AppendChild(nil); !errors.Is(err, dom.ErrConstraintViolation) {
		t.Errorf("expected appending nil to violate constraints, got %v", err)
	}
	p := dom.NewElement("p")
	if err := body.AppendChild(p); err != nil {
		t.Fatalf("expected appending <p> to <body> to succeed, got %v", err)
	}
	other := dom.NewElement("div")
	if err := other.AppendChild(p); !errors.Is(err, dom.ErrConstraintViolation) {
		t.Errorf("expected re-attaching an owned node to violate constraints, got %v", err)
	}
}

func TestNodeChildOrder(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "htmltree.dom")
	defer teardown()
	//
	body := dom.NewElement("body")
	tags := []string{"h1", "p", "a", "p"}
	for _, tag := range tags {
		if err := body.AppendChild(dom.NewElement(tag)); err != nil {
			t.Fatalf("cannot append <%s>: %v", tag, err)
		}
	}
	for i, tag := range tags {
		ch := body.ChildNode(i)
		if ch == nil || ch.Tag() != tag {
			t.Errorf("expected child #%d of <body> to be <%s>, is %s", i, tag, ch)
		}
	}
}

func TestAttributesLastWriteWins(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "htmltree.dom")
	defer teardown()
	//
	a := dom.NewElement("a")
	a.SetAttr("href", "http://example.org")
	a.SetAttr("class", "external")
	a.SetAttr("href", "https://example.org")
	attrs := a.Attributes()
	if len(attrs) != 2 {
		t.Fatalf("expected 2 attributes, got %v", attrs)
	}
	if attrs[0].Key != "href" || attrs[0].Value != "https://example.org" {
		t.Errorf("expected first attribute to be the overwritten href, is %s", attrs[0])
	}
	if attrs[1].Key != "class" {
		t.Errorf("expected attribute order to follow insertion order, got %v", attrs)
	}
}

func TestMustAttrMissing(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "htmltree.dom")
	defer teardown()
	//
	a := dom.NewElement("a")
	_, err := a.MustAttr("href")
	if !errors.Is(err, dom.ErrMissingAttribute) {
		t.Errorf("expected reading an unset attribute to return ErrMissingAttribute, got %v", err)
	}
	a.SetAttr("href", "http://example.org")
	href, err := a.MustAttr("href")
	if err != nil || href != "http://example.org" {
		t.Errorf("expected href to read back, got %q / %v", href, err)
	}
}
