package dom

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"errors"
	"fmt"

	"github.com/npillmayer/htmltree/tree"
)

// ErrConstraintViolation is thrown if an operation would produce a tree
// shape the node model forbids, e.g. appending children to a text node or
// re-attaching a node that already has a parent.
var ErrConstraintViolation = errors.New("operation violates document tree constraints")

// NodeType discriminates the kinds of document nodes. The set is closed:
// there are element nodes and text nodes, nothing else.
type NodeType int8

const (
	// ElementNode is a node with a tag name, attributes and children.
	ElementNode NodeType = iota + 1
	// TextNode is a leaf node holding literal text.
	TextNode
)

func (t NodeType) String() string {
	switch t {
	case ElementNode:
		return "element"
	case TextNode:
		return "#text"
	}
	return "<illegal node type>"
}

// Node is a node of a document tree, the building block of documents.
// We build on top of the general purpose tree, with the payload pointing
// back to the node itself.
type Node struct {
	tree.Node[*Node]
	ntype NodeType
	tag   string      // tag name, immutable, element nodes only
	text  string      // text payload, immutable, text nodes only
	attrs []Attribute // attributes in insertion order, element nodes only
}

// NewElement creates an element node with a given tag name. The tag name
// cannot be changed afterwards.
func NewElement(tag string) *Node {
	n := &Node{ntype: ElementNode, tag: tag}
	n.Payload = n // Payload will always reference the node itself
	return n
}

// NewText creates a text leaf node holding the given text.
func NewText(text string) *Node {
	n := &Node{ntype: TextNode, text: text}
	n.Payload = n
	return n
}

// FromTreeNode gets the document node from a generic tree node.
func FromTreeNode(n *tree.Node[*Node]) *Node {
	if n == nil {
		return nil
	}
	return n.Payload
}

// Type returns the type of this node: ElementNode or TextNode.
func (n *Node) Type() NodeType {
	return n.ntype
}

// Tag returns the tag name of an element node, or the empty string for
// text nodes.
func (n *Node) Tag() string {
	return n.tag
}

// Text returns the text payload of a text node, or the empty string for
// element nodes.
func (n *Node) Text() string {
	return n.text
}

// debugString is a short one-line sketch of a node for error messages and
// trace output. Node.String (see render.go) renders the whole subtree and
// is unsuitable for either.
func (n *Node) debugString() string {
	if n == nil {
		return "<nil document node>"
	}
	if n.ntype == TextNode {
		return fmt.Sprintf("#text(%q)", n.text)
	}
	return fmt.Sprintf("<%s> #ch=%d", n.tag, n.ChildCount())
}

// AppendChild appends a child node to an element node, preserving order of
// insertion. The child must be parent-less: ownership of nodes is exclusive.
//
// Returns ErrConstraintViolation (wrapped) if n is not an element node, if
// ch is nil, or if ch is already part of a tree.
func (n *Node) AppendChild(ch *Node) error {
	if n.ntype != ElementNode {
		return fmt.Errorf("%w: %s cannot have children", ErrConstraintViolation, n.debugString())
	}
	if ch == nil {
		return fmt.Errorf("%w: cannot append nil-child to <%s>", ErrConstraintViolation, n.tag)
	}
	if ch.TreeNode().Parent() != nil {
		return fmt.Errorf("%w: node %s already has a parent", ErrConstraintViolation, ch.debugString())
	}
	n.AddChild(&ch.Node)
	return nil
}

// TreeNode returns the generic tree node this document node is built on.
// It is the hook for tree walking (see Walker).
func (n *Node) TreeNode() *tree.Node[*Node] {
	return &n.Node
}

// ParentNode returns the parent document node, or nil for the root of a
// document tree.
func (n *Node) ParentNode() *Node {
	return FromTreeNode(n.Node.Parent())
}

// ChildNode returns the child at position i, or nil if there is none.
func (n *Node) ChildNode(i int) *Node {
	ch, ok := n.Child(i)
	if !ok {
		return nil
	}
	return FromTreeNode(ch)
}

// ChildNodes returns all children of a node, in document order.
func (n *Node) ChildNodes() []*Node {
	children := n.Children()
	nodes := make([]*Node, len(children))
	for i, ch := range children {
		nodes[i] = FromTreeNode(ch)
	}
	return nodes
}
