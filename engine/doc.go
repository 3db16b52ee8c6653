/*
Package engine runs the layout pipeline: markup and style text go in, a
laid out box tree comes out.

    res, err := engine.Run(markupText, styleText, engine.DefaultOptions())

Options may be read from any schuko.Configuration, e.g. a YAML file loaded
with package config.

Errors the parsers recovered from do not make Run fail. They are collected
in Result.Diagnostics.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package engine

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'minilayout.engine'.
func tracer() tracing.Trace {
	return tracing.Select("minilayout.engine")
}
