package dom

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"io"
	"strings"
)

// DefaultIndent is the indent unit used by Node.String.
const DefaultIndent = "  "

// Render writes an indented text representation of the tree rooted at n.
//
// Every node produces at least one line: element nodes an opening tag line
// `<tag key="value" ...>` with attributes in insertion order, followed by
// their rendered children, followed by a matching closing tag line
// `</tag>`; text nodes their payload verbatim. Each line is prefixed by
// indentUnit repeated as often as the node's distance from n, and is
// terminated by a newline.
//
// Rendering is a read-only traversal: it never fails on a well-formed tree
// and rendering the same tree twice yields identical output.
func (n *Node) Render(w io.Writer, indentUnit string) error {
	return render(w, n, indentUnit, 0)
}

// String renders the tree rooted at n with the default indent unit.
// A nil node renders as a placeholder instead of panicking, so that nodes
// can be formatted with %s in logs and test failure messages.
func (n *Node) String() string {
	if n == nil {
		return "<nil document node>"
	}
	var sb strings.Builder
	if err := n.Render(&sb, DefaultIndent); err != nil {
		tracer().Errorf("cannot render document tree: %v", err)
		return ""
	}
	return sb.String()
}

func render(w io.Writer, node *Node, indentUnit string, depth int) error {
	indent := strings.Repeat(indentUnit, depth)
	if node.ntype == TextNode {
		return writeLine(w, indent, node.text)
	}
	var sb strings.Builder
	sb.WriteByte('<')
	sb.WriteString(node.tag)
	for _, a := range node.attrs {
		sb.WriteByte(' ')
		sb.WriteString(a.Key)
		sb.WriteString(`="`)
		sb.WriteString(a.Value)
		sb.WriteByte('"')
	}
	sb.WriteByte('>')
	if err := writeLine(w, indent, sb.String()); err != nil {
		return err
	}
	for _, ch := range node.ChildNodes() {
		if err := render(w, ch, indentUnit, depth+1); err != nil {
			return err
		}
	}
	return writeLine(w, indent, "</"+node.tag+">")
}

func writeLine(w io.Writer, indent, line string) error {
	_, err := io.WriteString(w, indent+line+"\n")
	return err
}
