package style

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
	"unicode"

	"github.com/npillmayer/minilayout/scanner"
)

// Unit is the unit of a size value.
type Unit uint8

// Units for sizes. Px is the default.
const (
	Px Unit = iota
	Em
)

func (u Unit) String() string {
	switch u {
	case Px:
		return "px"
	case Em:
		return "em"
	}
	return fmt.Sprintf("Unit(%d)", uint8(u))
}

// DisplayMode is the value of property "display".
type DisplayMode uint8

// Display modes.
const (
	Inline DisplayMode = iota
	Block
)

func (d DisplayMode) String() string {
	if d == Inline {
		return "inline"
	}
	return "block"
}

const (
	kindMissing uint8 = iota
	kindSize
	kindColor
	kindDisplay
)

// Value is an option type for the values of style properties.
/*
type Value
	= Missing
	| Size uint Unit
	| Color RGBA
	| Display DisplayMode
*/
type Value struct {
	kind    uint8
	n       uint32
	unit    Unit
	color   color.RGBA
	display DisplayMode
}

// MissingValue is the value of a declaration which could not be parsed.
// It is the zero value of Value.
func MissingValue() Value {
	return Value{}
}

// SizeValue creates a size value, e.g. 12px.
func SizeValue(n uint32, u Unit) Value {
	return Value{kind: kindSize, n: n, unit: u}
}

// ColorValue creates a color value.
func ColorValue(c color.RGBA) Value {
	return Value{kind: kindColor, color: c}
}

// DisplayValue creates a value for property "display".
func DisplayValue(d DisplayMode) Value {
	return Value{kind: kindDisplay, display: d}
}

// IsMissing is true for values which could not be parsed.
func (v Value) IsMissing() bool {
	return v.kind == kindMissing
}

func (v Value) String() string {
	switch v.kind {
	case kindSize:
		return fmt.Sprintf("%d%s", v.n, v.unit)
	case kindColor:
		return ColorString(v.color)
	case kindDisplay:
		return v.display.String()
	}
	return "<missing>"
}

// --- Matching --------------------------------------------------------------

// Match returns a matcher for pattern matching a value:
//
//     var n uint32
//     var u style.Unit
//     switch m := v.Match(); m {
//     case m.Size(&n, &u):
//         …
//     case m.Missing():
//         …
//     }
//
func (v Value) Match() *Matcher {
	return &Matcher{value: v}
}

// Matcher is a helper type for matching values. Every arm returns the
// matcher itself for a match and nil otherwise.
type Matcher struct {
	value Value
}

// Size matches size values and extracts magnitude and unit. Both arguments
// may be nil.
func (m *Matcher) Size(n *uint32, u *Unit) *Matcher {
	if m.value.kind != kindSize {
		return nil
	}
	if n != nil {
		*n = m.value.n
	}
	if u != nil {
		*u = m.value.unit
	}
	return m
}

// Color matches color values.
func (m *Matcher) Color(c *color.RGBA) *Matcher {
	if m.value.kind != kindColor {
		return nil
	}
	if c != nil {
		*c = m.value.color
	}
	return m
}

// Display matches values for property "display".
func (m *Matcher) Display(d *DisplayMode) *Matcher {
	if m.value.kind != kindDisplay {
		return nil
	}
	if d != nil {
		*d = m.value.display
	}
	return m
}

// Missing matches values which could not be parsed.
func (m *Matcher) Missing() *Matcher {
	if m.value.kind != kindMissing {
		return nil
	}
	return m
}

// --- Parsing ---------------------------------------------------------------

// ValueFromString parses the textual value of a declaration.
//
// A value is either a size, i.e. a run of digits followed by a two-letter
// unit ("12px", "15em"), or a keyword ("block", "inline"). Unknown units
// default to px, but a size without any unit characters is not accepted.
// Everything else results in a missing value.
func ValueFromString(s string) Value {
	s = strings.TrimSpace(s)
	scan := scanner.New(s)
	first, ok := scan.Peek()
	switch {
	case !ok || unicode.IsSpace(first):
		return MissingValue()
	case isDigit(first):
		digits := scan.ConsumeWhile(isDigit)
		n, err := strconv.ParseUint(digits, 10, 32)
		if err != nil {
			tracer().Debugf("size value %q out of range", s)
			return MissingValue()
		}
		u1, ok1 := scan.Peek()
		u2, ok2 := scan.PeekSecond()
		if !ok1 || !ok2 {
			return MissingValue()
		}
		unit := Px
		switch string([]rune{u1, u2}) {
		case "px":
		case "em":
			unit = Em
		default:
			tracer().Debugf("unknown unit in %q, assuming px", s)
		}
		return SizeValue(uint32(n), unit)
	case isASCIILetter(first):
		switch scan.ConsumeWhile(isASCIILetter) {
		case "block":
			return DisplayValue(Block)
		case "inline":
			return DisplayValue(Inline)
		}
	}
	return MissingValue()
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func isASCIILetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}
