/*
Package htmltree builds HTML document trees with a type-checked,
fluent DSL and renders them as indented tag markup.

Overview

The heavy lifting is done by the sub-packages: package dom implements
the document node model and the renderer, package dom/builder the
construction DSL, package tree the generic tree substrate. This package
ties them together for the common case:

    page, err := htmltree.Build(func(h *builder.HTML) {
        h.Body(func(b *builder.Body) {
            b.H1(func(h1 *builder.H1) { h1.Text("Hello") })
        })
    })
    if err == nil {
        fmt.Print(htmltree.Render(page))
    }

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package htmltree

import (
	"io"

	"github.com/npillmayer/htmltree/dom"
	"github.com/npillmayer/htmltree/dom/builder"
)

// Build constructs a document tree, running the initializer on the root
// element. It returns the root node of the finished tree, or the first
// error seen during construction.
func Build(init func(*builder.HTML)) (*dom.Node, error) {
	return builder.Document(init)
}

// Render renders a document tree as indented tag markup, using the
// default indent unit.
func Render(root *dom.Node) string {
	return root.String()
}

// RenderTo renders a document tree to a Writer, one indent unit per
// nesting level.
func RenderTo(w io.Writer, root *dom.Node, indentUnit string) error {
	return root.Render(w, indentUnit)
}
