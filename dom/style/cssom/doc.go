/*
Package cssom provides the style sheet model and a parser for a small
subset of CSS.

Overview

CSSOM is the "CSS Object Model", similar to the DOM for HTML. We support
just the part of CSS needed to lay out blocks: type selectors and
declarations for the box model properties, font size, line height and
display mode. A style sheet looks like this:

    body  { margin-top: 10px; padding-left: 2em }
    title { display: inline }

Selectors are matched against element types only. There is no specificity,
no inheritance and no cascade. Declarations for a selector which is
repeated are appended in source order, and consumers pick the first
declaration for a property (see style.Lookup).

Parsing CSS from the real world is better done with a full CSS parser.
Package douceuradapter converts style sheets read by douceur into the
model of this package.

Recovery

The parser never fails. Declarations with an unknown property or an
unparsable value are dropped, as are rules with an unknown selector.
Every dropped item is recorded and may be inspected with Diagnostics().

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package cssom

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'minilayout.css'.
func tracer() tracing.Trace {
	return tracing.Select("minilayout.css")
}
