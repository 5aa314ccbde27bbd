package builder

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

// The tag variants. Every variant has a fixed tag name and offers exactly
// the child operations its content model permits. Each child operation
// follows the same protocol: create the child element, run the caller's
// initializer on it, append the child to the receiver, return the child.

// HTML is the root element of a document.
type HTML struct {
	element
}

// Head appends the metadata section to the document root.
func (h *HTML) Head(init func(*Head)) *Head {
	hd := &Head{h.derive("head")}
	if init == nil {
		h.doc.saw(errMissingInitializer("head"))
	} else {
		init(hd)
	}
	h.adopt(hd.element)
	return hd
}

// Body appends the content section to the document root.
func (h *HTML) Body(init func(*Body)) *Body {
	b := &Body{mixed{h.derive("body")}}
	if init == nil {
		h.doc.saw(errMissingInitializer("body"))
	} else {
		init(b)
	}
	h.adopt(b.element)
	return b
}

// Head is the metadata section of a document. It permits a title and
// nothing else.
type Head struct {
	element
}

// Title appends the document title.
func (h *Head) Title(init func(*Title)) *Title {
	t := &Title{h.derive("title")}
	if init == nil {
		h.doc.saw(errMissingInitializer("title"))
	} else {
		init(t)
	}
	h.adopt(t.element)
	return t
}

// Title holds the document title. Text content only.
type Title struct {
	element
}

// Text appends literal text to the title.
func (t *Title) Text(text string) {
	t.appendText(text)
}

// mixed provides the child operations shared by all elements permitting
// mixed text and inline content.
type mixed struct {
	element
}

// Text appends a literal text leaf.
func (m *mixed) Text(text string) {
	m.appendText(text)
}

// B appends bold inline markup. The initializer may be nil for an
// empty element.
func (m *mixed) B(init func(*B)) *B {
	b := &B{mixed{m.derive("b")}}
	if init != nil {
		init(b)
	}
	m.adopt(b.element)
	return b
}

// I appends italic inline markup. The initializer may be nil for an
// empty element.
func (m *mixed) I(init func(*I)) *I {
	i := &I{mixed{m.derive("i")}}
	if init != nil {
		init(i)
	}
	m.adopt(i.element)
	return i
}

// A appends a hyperlink with the given target. An empty href is legal at
// construction time, but reading A.Href before setting one will fail.
func (m *mixed) A(href string, init func(*A)) *A {
	a := &A{mixed{m.derive("a")}}
	if href != "" {
		a.SetAttr("href", href)
	}
	if init == nil {
		m.doc.saw(errMissingInitializer("a"))
	} else {
		init(a)
	}
	m.adopt(a.element)
	return a
}

// Body is the content section of a document.
type Body struct {
	mixed
}

// H1 appends a section header.
func (b *Body) H1(init func(*H1)) *H1 {
	h := &H1{mixed{b.derive("h1")}}
	if init == nil {
		b.doc.saw(errMissingInitializer("h1"))
	} else {
		init(h)
	}
	b.adopt(h.element)
	return h
}

// P appends a paragraph.
func (b *Body) P(init func(*P)) *P {
	p := &P{mixed{b.derive("p")}}
	if init == nil {
		b.doc.saw(errMissingInitializer("p"))
	} else {
		init(p)
	}
	b.adopt(p.element)
	return p
}

// H1 is a section header with mixed content.
type H1 struct {
	mixed
}

// P is a paragraph with mixed content.
type P struct {
	mixed
}

// B is bold inline markup.
type B struct {
	mixed
}

// I is italic inline markup.
type I struct {
	mixed
}

// A is a hyperlink. Its target is kept in the element's `href` attribute.
type A struct {
	mixed
}

// Href returns the hyperlink target. A hyperlink without a target is
// incomplete: reading the accessor before the target has been set returns
// dom.ErrMissingAttribute (wrapped).
func (a *A) Href() (string, error) {
	return a.node.MustAttr("href")
}

// SetHref sets the hyperlink target, overwriting a previously set one.
func (a *A) SetHref(href string) {
	a.SetAttr("href", href)
}
