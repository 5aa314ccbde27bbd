/*
Package tree implements a general purpose tree of mutable nodes.

Status

Stable core, the walker API may still grow.

Overview

Document trees, styled trees and render trees all share the same shape:
a rooted ordered tree where every node knows its parent and keeps its
children in insertion order. We implement the various trees of this
module on top of one general purpose node type, carrying the concrete
node as a type parameter.

Besides the node type, the package offers a Walker to search a
(sub-)tree for nodes matching certain criteria. Walkers assemble a
small pipeline of filter stages which operate concurrently, the
results being collected through a Promise.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package tree

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'htmltree.tree'.
func tracer() tracing.Trace {
	return tracing.Select("htmltree.tree")
}
