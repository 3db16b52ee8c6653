/*
Package scanner implements a cursor-based character reader.

Both parsers of this module, the markup parser and the stylesheet parser, are
recursive-descent parsers which look at most two characters ahead. Scanner
provides exactly this: a cursor over an immutable text buffer, addressing
runes (not bytes), together with a small set of operations to peek at and
consume characters.

All operations are total. At the end of input, peeking and advancing
report false and the cursor does not move any further.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package scanner

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'minilayout.scanner'.
func tracer() tracing.Trace {
	return tracing.Select("minilayout.scanner")
}
