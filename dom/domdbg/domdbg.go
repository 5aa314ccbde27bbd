/*
Package domdbg implements helpers to debug document trees.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package domdbg

import (
	"fmt"
	"io"
	"strings"
	"text/template"

	"github.com/npillmayer/htmltree/dom"
	tp "github.com/xlab/treeprint"
)

// Treeprint returns an ASCII-art sketch of a document tree, one line per
// node. Useful for logging trees in tests:
//
//    t.Logf("document =\n%s", domdbg.Treeprint(root))
//
func Treeprint(root *dom.Node) string {
	p := tp.New()
	ppn(p, root)
	return p.String()
}

func ppn(p tp.Tree, node *dom.Node) {
	if node == nil {
		return
	}
	if node.ChildCount() == 0 {
		p.AddNode(label(node))
		return
	}
	branch := p.AddBranch(label(node))
	for _, ch := range node.ChildNodes() {
		ppn(branch, ch)
	}
}

func label(node *dom.Node) string {
	if node.Type() == dom.TextNode {
		return fmt.Sprintf("%q", shortText(node.Text()))
	}
	l := "<" + node.Tag() + ">"
	if node.HasAttributes() {
		attrs := node.Attributes()
		strs := make([]string, len(attrs))
		for i, a := range attrs {
			strs[i] = a.String()
		}
		l += " [" + strings.Join(strs, " ") + "]"
	}
	return l
}

func shortText(text string) string {
	if len(text) > 20 {
		return text[:20] + "…"
	}
	return text
}

// Parameters for GraphViz drawing.
type graphParamsType struct {
	Fontname string
	NodeTmpl *template.Template
	EdgeTmpl *template.Template
}

// ToGraphViz outputs a diagram for a document tree. The diagram is in
// GraphViz (DOT) format. Clients have to provide the root node of the
// tree and a Writer; the output is suitable as input for the `dot`
// command.
func ToGraphViz(root *dom.Node, w io.Writer) {
	tmpl, err := template.New("dom").Parse(graphHeadTmpl)
	if err != nil {
		panic(err)
	}
	gparams := graphParamsType{Fontname: "Helvetica"}
	gparams.NodeTmpl = template.Must(template.New("domnode").Funcs(
		template.FuncMap{
			"label": label,
		}).Parse(domNodeTmpl))
	gparams.EdgeTmpl = template.Must(template.New("domedge").Parse(domEdgeTmpl))
	if err = tmpl.Execute(w, gparams); err != nil {
		panic(err)
	}
	dict := make(map[*dom.Node]string)
	nodes(root, w, dict, &gparams)
	w.Write([]byte("}\n"))
}

type node struct {
	N    *dom.Node
	Name string
}

func nodes(n *dom.Node, w io.Writer, dict map[*dom.Node]string, gparams *graphParamsType) {
	domNode(n, w, dict, gparams)
	for _, ch := range n.ChildNodes() {
		nodes(ch, w, dict, gparams)
		domEdge(n, ch, w, dict, gparams)
	}
}

func domNode(n *dom.Node, w io.Writer, dict map[*dom.Node]string, gparams *graphParamsType) {
	name := dict[n]
	if name == "" {
		name = fmt.Sprintf("node%05d", len(dict)+1)
		dict[n] = name
	}
	if err := gparams.NodeTmpl.Execute(w, &node{n, name}); err != nil {
		panic(err)
	}
}

type edge struct {
	N1, N2 node
}

func domEdge(n1 *dom.Node, n2 *dom.Node, w io.Writer, dict map[*dom.Node]string,
	gparams *graphParamsType) {
	//
	e := edge{node{n1, dict[n1]}, node{n2, dict[n2]}}
	if err := gparams.EdgeTmpl.Execute(w, e); err != nil {
		panic(err)
	}
}

// --- Templates --------------------------------------------------------

const graphHeadTmpl = `digraph g {
  graph [labelloc="t" label="" splines=true overlap=false rankdir = "LR"];
  graph [fontname = "{{ .Fontname }}" fontsize=14] ;
   node [fontname = "{{ .Fontname }}" fontsize=14] ;
   edge [fontname = "{{ .Fontname }}" fontsize=14] ;
`

const domNodeTmpl = `{{ if eq .N.Type.String "#text" }}
{{ .Name }}	[ label={{ printf "%q" .N.Text }} shape=box style=filled fillcolor=grey95 fontname="Courier" fontsize=11.0 ] ;
{{ else }}
{{ .Name }}	[ label={{ label .N | printf "%q" }} shape=ellipse style=filled fillcolor=lightblue3 ] ;
{{ end }}
`

const domEdgeTmpl = `{{ .N1.Name }} -> {{ .N2.Name }} [weight=1] ;
`
