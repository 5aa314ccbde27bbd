package dom

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"

	"github.com/andybalholm/cascadia"
	"github.com/npillmayer/htmltree/tree"
	"golang.org/x/net/html"
)

// Walker creates a tree.Walker for the (sub-)tree rooted at n. Clients
// chain filter stages onto the walker and collect matching nodes through
// its Promise; FromTreeNode converts results back to document nodes.
//
// Walking is intended for built trees; walking a tree which is still under
// construction is unsupported.
func (n *Node) Walker() *tree.Walker[*Node] {
	if n == nil {
		return tree.NewWalker[*Node](nil)
	}
	return tree.NewWalker(n.TreeNode())
}

// QuerySelector returns all nodes of the (sub-)tree rooted at n which match
// a CSS selector expression, in document order. Selector syntax is the one
// supported by cascadia, e.g.
//
//    doc.QuerySelector(`a[href]`)
//
// Returns an error if the selector expression cannot be compiled.
func (n *Node) QuerySelector(selector string) ([]*Node, error) {
	sel, err := cascadia.Compile(selector)
	if err != nil {
		return nil, fmt.Errorf("cannot compile selector %q: %w", selector, err)
	}
	dict := make(map[*html.Node]*Node)
	matches := sel.MatchAll(n.exportHTML(dict))
	nodes := make([]*Node, 0, len(matches))
	for _, m := range matches {
		if d, ok := dict[m]; ok {
			nodes = append(nodes, d)
		}
	}
	tracer().Debugf("selector %q matched %d nodes", selector, len(nodes))
	return nodes, nil
}

// --- Predicates for walking document trees ---------------------------------

// NodeIsText is a predicate to match text-nodes of a document tree.
// It is intended to be used in a tree.Walker.
var NodeIsText tree.Predicate[*Node] = func(test *tree.Node[*Node]) (*tree.Node[*Node], error) {
	if FromTreeNode(test).Type() == TextNode {
		return test, nil
	}
	return nil, nil
}

// ElementWithTag returns a predicate to match element nodes with a given
// tag name. It is intended to be used in a tree.Walker.
func ElementWithTag(tag string) tree.Predicate[*Node] {
	return func(test *tree.Node[*Node]) (*tree.Node[*Node], error) {
		d := FromTreeNode(test)
		if d.Type() == ElementNode && d.Tag() == tag {
			return test, nil
		}
		return nil, nil
	}
}
