/*
Package dom implements the node model for HTML document trees.

Status

Stable. The query API may still grow.

Overview

Document trees consist of just two kinds of nodes: element nodes, carrying
a tag name, attributes and children, and text nodes, carrying a string
payload. We deliberately model this as a closed set of node types instead
of an open class hierarchy: clients never subclass nodes, they compose
documents through package dom/builder.

Trees are implemented on top of a general purpose tree type
(package tree), which offers concurrent operations to search tree nodes.
In a fully object oriented programming language we would subclass the
generic tree type, but in Go we resort to composition, thus embedding a
generic tree node in the document node type. The downside of this approach
is that we have to provide an adapter (FromTreeNode) to get back the
document node from the generic type.

Nodes are mutable while a document is under construction and are treated
as read-only afterwards. Rendering and all query operations leave the
tree untouched.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package dom

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'htmltree.dom'.
func tracer() tracing.Trace {
	return tracing.Select("htmltree.dom")
}
