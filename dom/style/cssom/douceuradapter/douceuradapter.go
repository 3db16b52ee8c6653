/*
Package douceuradapter reads style sheets with the douceur CSS parser and
converts them to cssom.Stylesheet.

Douceur understands the full CSS syntax, including comments, at-rules and
selector groups. Only qualified rules whose selectors are known to package
cssom survive the conversion, and every declaration is put through the
same property and value grammars the native parser uses.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package douceuradapter

import (
	"fmt"
	"strings"

	"github.com/aymerick/douceur/css"
	"github.com/aymerick/douceur/parser"
	"github.com/npillmayer/minilayout/dom/style"
	"github.com/npillmayer/minilayout/dom/style/cssom"
	"github.com/npillmayer/schuko/tracing"
	"go.uber.org/multierr"
)

// tracer traces with key 'minilayout.css'.
func tracer() tracing.Trace {
	return tracing.Select("minilayout.css")
}

// Parse reads a CSS text with douceur and converts it. If douceur cannot
// parse the text, no style sheet is returned. Otherwise the error holds the
// rules and declarations dropped during conversion.
func Parse(text string) (*cssom.Stylesheet, error) {
	sheet, err := parser.Parse(text)
	if err != nil {
		return nil, fmt.Errorf("douceur: %w", err)
	}
	return Convert(sheet)
}

// Convert converts a douceur style sheet. The result is always non-nil for
// a non-nil input; the error holds everything dropped on the way.
//
// A rule with a selector group, e.g. "title, body", is appended once for
// every selector in the group. At-rules are ignored.
func Convert(sheet *css.Stylesheet) (*cssom.Stylesheet, error) {
	if sheet == nil {
		return nil, fmt.Errorf("douceur: no style sheet to convert")
	}
	var diag error
	target := cssom.NewStylesheet()
	for _, r := range sheet.Rules {
		if r.Kind != css.QualifiedRule {
			tracer().Debugf("ignoring at-rule %s", r.Name)
			continue
		}
		decls, err := Declarations(r)
		diag = multierr.Append(diag, err)
		for _, s := range selectors(r) {
			sel, ok := cssom.SelectorFromString(s)
			if !ok {
				diag = multierr.Append(diag, &cssom.SelectorError{Selector: s})
				continue
			}
			target.Append(sel, decls...)
		}
	}
	return target, diag
}

// Declarations converts the declarations of a rule. Declarations with an
// unknown property or an unsupported value are dropped. "!important" is
// not interpreted.
func Declarations(r *css.Rule) ([]style.Declaration, error) {
	var diag error
	decls := make([]style.Declaration, 0, len(r.Declarations))
	for _, d := range r.Declarations {
		prop, ok := style.PropertyFromString(d.Property)
		if !ok {
			diag = multierr.Append(diag, &cssom.DeclarationError{
				Property: d.Property, Value: d.Value, Reason: "unknown property",
			})
			continue
		}
		v := style.ValueFromString(d.Value)
		if v.IsMissing() {
			diag = multierr.Append(diag, &cssom.DeclarationError{
				Property: d.Property, Value: d.Value, Reason: "invalid value",
			})
			continue
		}
		decls = append(decls, style.Declaration{Property: prop, Value: v})
	}
	return decls, diag
}

func selectors(r *css.Rule) []string {
	if len(r.Selectors) > 0 {
		return r.Selectors
	}
	var sels []string
	for _, s := range strings.Split(r.Prelude, ",") {
		if s = strings.TrimSpace(s); s != "" {
			sels = append(sels, s)
		}
	}
	return sels
}
