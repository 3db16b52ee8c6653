/*
Package dom implements the document object model of the layout pipeline.

Status

The DOM knows a tiny, closed set of element types. It is meant as the
reference core of a layout engine, not as an HTML implementation.

Overview

A Document consists of a doctype declaration and a single-rooted tree of
Elements. Every element has a type, optional inline text and an ordered list
of children. Elements own their children exclusively and hold no reference
to their parent.

Trees are write-once: package markup builds them bottom-up during a single
parse, and no later stage of the pipeline changes them. Styled trees and
layout trees refer back to DOM elements, but never through a mutable alias.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package dom

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer will return a tracer. We are tracing to 'minilayout.dom'
func tracer() tracing.Trace {
	return tracing.Select("minilayout.dom")
}
