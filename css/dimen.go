/*
Package css provides CSS dimension values for style attributes.

Overview

Elements of a document tree may carry a `style` attribute. Attribute
values are plain strings, but clients composing styles from calculated
dimensions should not have to format CSS lengths by hand. Package css
offers an option type for CSS dimensions—auto, inherit, initial, a fixed
length, or a percentage—together with helpers to assemble style
attribute strings from them.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package css

import (
	"fmt"
	"strings"

	"github.com/npillmayer/tyse/core/dimen"
	"github.com/npillmayer/tyse/core/percent"
)

const (
	dimenNone uint8 = iota
	dimenAbsolute
	dimenAuto
	dimenInherit
	dimenInitial
	dimenPercent
)

// DimenT is an option type for CSS dimensions.
type DimenT struct {
	d    dimen.DU
	p    percent.Percent
	kind uint8
}

// Auto creates the CSS dimension value `auto`.
func Auto() DimenT {
	return DimenT{kind: dimenAuto}
}

// Inherit creates the CSS dimension value `inherit`.
func Inherit() DimenT {
	return DimenT{kind: dimenInherit}
}

// Initial creates the CSS dimension value `initial`.
func Initial() DimenT {
	return DimenT{kind: dimenInitial}
}

// JustDimen creates a CSS dimension with a fixed value of x.
func JustDimen(x dimen.DU) DimenT {
	return DimenT{d: x, kind: dimenAbsolute}
}

// Percentage creates a CSS dimension with a %-relative value.
func Percentage(p percent.Percent) DimenT {
	return DimenT{p: p, kind: dimenPercent}
}

// String returns the dimension formatted as a CSS attribute value.
func (d DimenT) String() string {
	switch d.kind {
	case dimenAuto:
		return "auto"
	case dimenInherit:
		return "inherit"
	case dimenInitial:
		return "initial"
	case dimenAbsolute:
		return fmt.Sprintf("%v", d.d)
	case dimenPercent:
		return fmt.Sprintf("%v", d.p)
	}
	return ""
}

// ---------------------------------------------------------------------------

// Match returns a matcher to decompose a dimension.
func (d DimenT) Match() *Matcher {
	return &Matcher{dimen: d}
}

// Matcher decomposes a DimenT, to be used in switch-statements:
//
//    var du dimen.DU
//    switch m := d.Match(); m {
//    case m.Just(&du):       // d is a fixed length, now in du
//    case m.IsKind(Auto()):  // d is `auto`
//    }
//
type Matcher struct {
	dimen DimenT
}

// IsKind matches if the dimension is of the same kind as d.
func (m *Matcher) IsKind(d DimenT) *Matcher {
	if m.dimen.kind == d.kind {
		return m
	}
	return nil
}

// Just matches a fixed dimension, storing its value into du.
func (m *Matcher) Just(du *dimen.DU) *Matcher {
	if m.dimen.kind == dimenAbsolute {
		if du != nil {
			*du = m.dimen.d
		}
		return m
	}
	return nil
}

// Percentage matches a %-relative dimension, storing its value into p.
func (m *Matcher) Percentage(p *percent.Percent) *Matcher {
	if m.dimen.kind == dimenPercent {
		if p != nil {
			*p = m.dimen.p
		}
		return m
	}
	return nil
}

// ---------------------------------------------------------------------------

// Property is one key/dimension pair of a style attribute value.
type Property struct {
	Key   string
	Value DimenT
}

// Style assembles a CSS style attribute value from dimension properties,
// in the order given:
//
//    p.SetAttr("style", css.Style(
//        css.Property{"width", css.Percentage(percent.FromInt(80))},
//        css.Property{"margin", css.Auto()},
//    ))
//
func Style(properties ...Property) string {
	strs := make([]string, len(properties))
	for i, p := range properties {
		strs[i] = p.Key + ": " + p.Value.String()
	}
	return strings.Join(strs, "; ")
}
