/*
Package builder implements a type-checked, fluent API for constructing
HTML document trees.

Overview

Every element variant (HTML, Head, Body, P, …) carries a fixed tag name
and offers exactly the child operations its content model permits: the
compiler rejects a title inside a paragraph. Child operations take an
initializer callback which receives the newly created element and
populates it; the initializer runs to completion before the element is
appended to its parent. A document is assembled in one nested expression:

    root, err := builder.Document(func(h *builder.HTML) {
        h.Body(func(b *builder.Body) {
            b.H1(func(h1 *builder.H1) { h1.Text("Hello") })
            b.P(func(p *builder.P) {
                p.Text("built with ")
                p.B(func(b *builder.B) { b.Text("htmltree") })
            })
        })
    })

In the source language of the well-known builder-pattern examples the
initializer would be a block with an implicit receiver; in Go we pass the
receiver explicitly as the callback's sole argument.

Construction errors (a missing initializer, an attribute read before it
was set) are collected per document and reported by Document; the first
error wins. Trees under construction are not safe for concurrent use.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package builder

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'htmltree.builder'.
func tracer() tracing.Trace {
	return tracing.Select("htmltree.builder")
}
