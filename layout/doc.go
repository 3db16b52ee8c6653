/*
Package layout computes the geometry of boxes for a styled tree.

Overview

Every node of a styled tree gets a box in the CSS box model: a content
rectangle surrounded by padding, border and margin edges. Only block
layout is supported. Blocks stack vertically inside their parent's content
rectangle; inline nodes are kept in the layout tree but get no geometry.

Widths are computed top-down, heights bottom-up: a block is as high as its
children's margin boxes together. Leaves have no intrinsic height, unless
a TextMeasurer is configured.

All sizes are in CSS pixels and saturate instead of wrapping. Em sizes are
taken as pixels; there is no font context to resolve them against.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package layout

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'minilayout.layout'.
func tracer() tracing.Trace {
	return tracing.Select("minilayout.layout")
}
