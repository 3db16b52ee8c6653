/*
Package markup parses markup text into a DOM.

The parser is a hand-written recursive-descent parser on top of a
scanner.Scanner. It understands a deliberately small grammar:

    <!DOCTYPE html>
    <html> <head> <title>text</title> </head> <body>text</body> </html>

Attributes are skipped, there are no self-closing tags, comments or
entities. Known tags are html, head, title and body; the names are matched
case-sensitively.

Error Recovery

A malformed doctype is a structural failure and is reported to the caller.
An element with an unknown tag cannot be represented in the DOM. The parser
drops it together with all of its descendents, but resynchronizes to the
matching closing tag so that the element's siblings are parsed as usual. The
dropped subtree is reported as a *ParseError, available from
Parser.Diagnostics().

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package markup

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'minilayout.dom'.
func tracer() tracing.Trace {
	return tracing.Select("minilayout.dom")
}
