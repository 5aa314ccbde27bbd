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
)

// ErrMissingAttribute is thrown if an attribute accessor is read before the
// attribute has been set.
var ErrMissingAttribute = errors.New("attribute has not been set")

// Attribute is a key/value entry of rendering metadata for an element node.
type Attribute struct {
	Key   string
	Value string
}

func (a Attribute) String() string {
	return fmt.Sprintf("%s=%q", a.Key, a.Value)
}

// SetAttr sets an attribute of an element node. Attribute keys are unique:
// setting a key twice overwrites the previous value in place (last write
// wins), keeping the position of the first write in the attribute order.
// Setting attributes on text nodes is a NOP.
//
// SetAttr returns the node to allow for chaining.
func (n *Node) SetAttr(key, value string) *Node {
	if n.ntype != ElementNode {
		tracer().Infof("set attribute %s on %s is a NOP", key, n.debugString())
		return n
	}
	for i, a := range n.attrs {
		if a.Key == key {
			n.attrs[i].Value = value
			return n
		}
	}
	n.attrs = append(n.attrs, Attribute{Key: key, Value: value})
	return n
}

// Attr returns the value of an attribute, together with a flag indicating
// whether the attribute has been set at all.
func (n *Node) Attr(key string) (string, bool) {
	for _, a := range n.attrs {
		if a.Key == key {
			return a.Value, true
		}
	}
	return "", false
}

// MustAttr returns the value of an attribute which is required for the
// element to function, e.g. the link target of a hyperlink. If the
// attribute has not been set, MustAttr returns ErrMissingAttribute
// (wrapped).
func (n *Node) MustAttr(key string) (string, error) {
	v, ok := n.Attr(key)
	if !ok {
		return "", fmt.Errorf("%w: %q of <%s>", ErrMissingAttribute, key, n.tag)
	}
	return v, nil
}

// Attributes returns a copy of the node's attributes, in insertion order.
func (n *Node) Attributes() []Attribute {
	if len(n.attrs) == 0 {
		return nil
	}
	attrs := make([]Attribute, len(n.attrs))
	copy(attrs, n.attrs)
	return attrs
}

// HasAttributes checks for the existence of attributes.
func (n *Node) HasAttributes() bool {
	return len(n.attrs) > 0
}
