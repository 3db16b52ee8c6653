package style

import "image/color"

// Initial returns the value a property has if no declaration sets it.
// In real-world browsers these are the user-agent CSS values.
//
// Box edges default to zero and display defaults to block; font sizes are
// given in the usual user-agent defaults.
func Initial(p Property) Value {
	switch {
	case p.IsBoxEdge():
		return SizeValue(0, Px)
	case p == Display:
		return DisplayValue(Block)
	case p == Color:
		return ColorValue(color.RGBA{0, 0, 0, 0xff})
	case p == FontSize:
		return SizeValue(16, Px)
	case p == LineHeight:
		return SizeValue(1, Em)
	}
	return MissingValue()
}

// ValueOrInitial looks up the first declaration for p, falling back to the
// initial value of p.
func ValueOrInitial(decls []Declaration, p Property) Value {
	if v, ok := Lookup(decls, p); ok && !v.IsMissing() {
		return v
	}
	return Initial(p)
}
