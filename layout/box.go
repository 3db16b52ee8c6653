package layout

import (
	"fmt"
	"math"

	"github.com/npillmayer/tyse/core/dimen"
)

// CSSPixel is a CSS pixel in design units. A CSS pixel is 1/96 inch, i.e. 3/4
// of a big point (1/72 inch).
const CSSPixel = dimen.BP * 3 / 4

// Rect is a rectangle of CSS pixels. X and Y are absolute, starting at the
// top left corner of the viewport.
type Rect struct {
	X, Y          uint32
	Width, Height uint32
}

func (r Rect) String() string {
	return fmt.Sprintf("(%d,%d)+(%d×%d)", r.X, r.Y, r.Width, r.Height)
}

// Dimen converts a rectangle to design units, for painters working in
// typesetting coordinates.
func (r Rect) Dimen() (x, y, w, h dimen.DU) {
	return dimen.DU(r.X) * CSSPixel, dimen.DU(r.Y) * CSSPixel,
		dimen.DU(r.Width) * CSSPixel, dimen.DU(r.Height) * CSSPixel
}

// expandedBy returns a rectangle grown by edges e on all sides.
func (r Rect) expandedBy(e Edges) Rect {
	return Rect{
		X:      sub(r.X, e.Left),
		Y:      sub(r.Y, e.Top),
		Width:  add(r.Width, e.Horizontal()),
		Height: add(r.Height, e.Vertical()),
	}
}

// Edges are the widths of the four sides of a padding, border or margin.
type Edges struct {
	Top, Bottom, Left, Right uint32
}

// Horizontal is the sum of the left and right edge.
func (e Edges) Horizontal() uint32 {
	return add(e.Left, e.Right)
}

// Vertical is the sum of the top and bottom edge.
func (e Edges) Vertical() uint32 {
	return add(e.Top, e.Bottom)
}

// Box is a box in the CSS box model. The zero value is an empty box.
type Box struct {
	Content Rect
	Padding Edges
	Border  Edges
	Margin  Edges
}

// PaddingBox is the content area plus padding.
func (b Box) PaddingBox() Rect {
	return b.Content.expandedBy(b.Padding)
}

// BorderBox is the content area plus padding and borders.
func (b Box) BorderBox() Rect {
	return b.PaddingBox().expandedBy(b.Border)
}

// MarginBox is the area covered by a box, including its margins.
func (b Box) MarginBox() Rect {
	return b.BorderBox().expandedBy(b.Margin)
}

// OuterHeight is the height of the margin box.
func (b Box) OuterHeight() uint32 {
	return b.MarginBox().Height
}

func (b Box) String() string {
	return fmt.Sprintf("box%v p%v b%v m%v", b.Content, b.Padding, b.Border, b.Margin)
}

// add and sub saturate at the bounds of uint32.
func add(a, b uint32) uint32 {
	if s := uint64(a) + uint64(b); s <= math.MaxUint32 {
		return uint32(s)
	}
	return math.MaxUint32
}

func sub(a, b uint32) uint32 {
	if b > a {
		return 0
	}
	return a - b
}
