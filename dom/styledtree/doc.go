/*
Package styledtree builds the styled tree, a tree of style nodes which is
isomorphic to a DOM tree.

Overview

Every style node references its DOM element and the declarations the style
sheet holds for the element's type. Matching is by type selector only:
there is no specificity, no inheritance and no cascade. If a property is
declared more than once for an element type, the first declaration is the
one in effect.

Styled trees are built in a single pass and never modified afterwards.
They may be shared between goroutines for reading.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package styledtree

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'minilayout.style'.
func tracer() tracing.Trace {
	return tracing.Select("minilayout.style")
}
