package builder

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"

	"github.com/npillmayer/htmltree/dom"
)

// Document builds a document tree. It creates the root element (tag
// `html`), runs the initializer on it and returns the finished root node.
// The root element is the entry point of the DSL; all other elements are
// created through child operations of their parent.
//
// Errors occuring during construction are collected and returned here;
// the first error wins and the partially built tree is discarded. A nil
// initializer is a constraint violation, as an empty document is not
// a document.
func Document(init func(*HTML)) (*dom.Node, error) {
	if init == nil {
		return nil, errMissingInitializer("html")
	}
	d := &document{}
	root := &HTML{element{node: dom.NewElement("html"), doc: d}}
	init(root)
	if d.err != nil {
		tracer().Errorf("document construction failed: %v", d.err)
		return nil, d.err
	}
	return root.node, nil
}

// document collects construction-time errors for one document tree.
// Builder operations have no error return value of their own—error
// returns inside nested construction expressions would bury the document
// structure in plumbing—so failures are deferred until Document returns.
type document struct {
	err error // first error seen during construction
}

func (d *document) saw(err error) {
	if err == nil {
		return
	}
	tracer().Infof("document construction: %v", err)
	if d.err == nil {
		d.err = err
	}
}

func errMissingInitializer(tag string) error {
	return fmt.Errorf("%w: <%s> requires an initializer", dom.ErrConstraintViolation, tag)
}

// element is the shared base of all tag variants.
type element struct {
	node *dom.Node
	doc  *document
}

// Node returns the document node this builder element is constructing.
func (e element) Node() *dom.Node {
	return e.node
}

// SetAttr sets an attribute on the element under construction. Keys are
// unique, last write wins.
func (e element) SetAttr(key, value string) {
	e.node.SetAttr(key, value)
}

// derive creates a fresh, not yet attached child element.
func (e element) derive(tag string) element {
	return element{node: dom.NewElement(tag), doc: e.doc}
}

// adopt appends a fully initialized child element. Exactly one child is
// appended per builder operation.
func (e element) adopt(ch element) {
	e.doc.saw(e.node.AppendChild(ch.node))
}

// appendText appends a text leaf to the element's children.
func (e element) appendText(text string) {
	e.doc.saw(e.node.AppendChild(dom.NewText(text)))
}
