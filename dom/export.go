package dom

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"golang.org/x/net/html"
)

// HTMLNode exports the tree rooted at n as a tree of golang.org/x/net/html
// nodes, with attributes in insertion order. The export is a deep copy:
// further mutation of the document tree is not reflected in the HTML tree.
func (n *Node) HTMLNode() *html.Node {
	return n.exportHTML(nil)
}

// exportHTML converts the subtree below n. If dict is non-nil, every
// exported HTML node is associated with the document node it stems from.
// Query operations use the dictionary to map selector matches back onto
// the document tree.
func (n *Node) exportHTML(dict map[*html.Node]*Node) *html.Node {
	var h *html.Node
	switch n.ntype {
	case TextNode:
		h = &html.Node{
			Type: html.TextNode,
			Data: n.text,
		}
	case ElementNode:
		h = &html.Node{
			Type: html.ElementNode,
			Data: n.tag,
		}
		for _, a := range n.attrs {
			h.Attr = append(h.Attr, html.Attribute{Key: a.Key, Val: a.Value})
		}
		for _, ch := range n.ChildNodes() {
			h.AppendChild(ch.exportHTML(dict))
		}
	default:
		tracer().Errorf("cannot export node of type %d", n.ntype)
		return nil
	}
	if dict != nil {
		dict[h] = n
	}
	return h
}
