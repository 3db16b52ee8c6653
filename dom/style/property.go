package style

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"
	"strings"

	"github.com/npillmayer/schuko/tracing"
)

// tracer will return a tracer. We are tracing to 'minilayout.style'
func tracer() tracing.Trace {
	return tracing.Select("minilayout.style")
}

// Property is one of the style properties the engine knows about.
// The set is closed; unknown property names are dropped by the parser.
type Property uint8

// The known style properties. BorderXxxWidth is the thickness of a border edge.
const (
	FontSize Property = iota
	LineHeight
	Color
	Display
	MarginTop
	MarginBottom
	MarginLeft
	MarginRight
	PaddingTop
	PaddingBottom
	PaddingLeft
	PaddingRight
	BorderTopWidth
	BorderBottomWidth
	BorderLeftWidth
	BorderRightWidth
	propertyCount
)

var propertyNames = [propertyCount]string{
	"font-size",
	"line-height",
	"color",
	"display",
	"margin-top",
	"margin-bottom",
	"margin-left",
	"margin-right",
	"padding-top",
	"padding-bottom",
	"padding-left",
	"padding-right",
	"border-top-width",
	"border-bottom-width",
	"border-left-width",
	"border-right-width",
}

var propertyFromName map[string]Property

func init() {
	propertyFromName = make(map[string]Property, propertyCount)
	for i, name := range propertyNames {
		propertyFromName[name] = Property(i)
	}
}

// String returns the CSS name of a property, e.g. "margin-top".
func (p Property) String() string {
	if p < propertyCount {
		return propertyNames[p]
	}
	return fmt.Sprintf("Property(%d)", uint8(p))
}

// PropertyFromString finds a property by its CSS name. Surrounding
// whitespace is ignored, otherwise the name has to match exactly.
func PropertyFromString(name string) (Property, bool) {
	p, ok := propertyFromName[strings.TrimSpace(name)]
	return p, ok
}

// AllProperties returns all the known properties in declaration order.
func AllProperties() []Property {
	all := make([]Property, propertyCount)
	for i := range all {
		all[i] = Property(i)
	}
	return all
}

// --- Property Groups -------------------------------------------------------

// Symbolic names for groups of properties sharing a common topic.
const (
	PGMargins = "Margins"
	PGPadding = "Padding"
	PGBorder  = "Border"
	PGDisplay = "Display"
	PGColor   = "Color"
	PGText    = "Text"
)

// Group returns the name of the property group a property belongs to.
// Example:
//    MarginTop.Group() => "Margins"
//
func (p Property) Group() string {
	switch {
	case p >= MarginTop && p <= MarginRight:
		return PGMargins
	case p >= PaddingTop && p <= PaddingRight:
		return PGPadding
	case p >= BorderTopWidth && p <= BorderRightWidth:
		return PGBorder
	case p == Display:
		return PGDisplay
	case p == Color:
		return PGColor
	}
	return PGText
}

// IsBoxEdge is true for the twelve margin, padding and border properties.
func (p Property) IsBoxEdge() bool {
	return p >= MarginTop && p <= BorderRightWidth
}

// --- Declarations ----------------------------------------------------------

// Declaration is a property together with its value, e.g.
//
//     margin-top: 10px
//
type Declaration struct {
	Property Property
	Value    Value
}

func (d Declaration) String() string {
	return d.Property.String() + ": " + d.Value.String()
}

// Lookup finds the first declaration for a property in a list of
// declarations. Stylesheets accumulate declarations for a selector in source
// order, so the first match is the earliest declaration.
func Lookup(decls []Declaration, p Property) (Value, bool) {
	for _, d := range decls {
		if d.Property == p {
			return d.Value, true
		}
	}
	return MissingValue(), false
}

// LookupSize finds the first declaration for a property which has a size
// value. Declarations for the property with other kinds of values are
// passed over.
func LookupSize(decls []Declaration, p Property) (uint32, Unit, bool) {
	var n uint32
	var u Unit
	for _, d := range decls {
		if d.Property != p {
			continue
		}
		switch m := d.Value.Match(); m {
		case m.Size(&n, &u):
			return n, u, true
		}
	}
	return 0, Px, false
}
