package cssom

import (
	"strings"

	"github.com/npillmayer/minilayout/dom/style"
	"github.com/npillmayer/minilayout/scanner"
	"go.uber.org/multierr"
)

// Parser is a recursive-descent parser for style sheets. A parser is not
// safe for concurrent use.
type Parser struct {
	scan *scanner.Scanner
	diag error
}

// NewParser creates a parser for a style sheet text.
func NewParser(text string) *Parser {
	return &Parser{scan: scanner.New(text)}
}

// Parse parses a style sheet text. The style sheet is always returned. The
// error holds every dropped declaration or rule and is nil for clean input.
func Parse(text string) (*Stylesheet, error) {
	p := NewParser(text)
	sheet := p.ParseStylesheet()
	return sheet, p.Diagnostics()
}

// Diagnostics returns all errors the parser recovered from, or nil.
func (p *Parser) Diagnostics() error {
	return p.diag
}

// ParseSelector reads a selector keyword up to the opening brace of a
// declaration block. The brace is not consumed.
func (p *Parser) ParseSelector() (Selector, bool) {
	p.scan.SkipWhitespace()
	start := p.scan.Pos()
	keyword := strings.TrimSpace(p.scan.ConsumeWhile(func(r rune) bool {
		return r != '{'
	}))
	sel, ok := SelectorFromString(keyword)
	if !ok {
		p.diag = multierr.Append(p.diag, &SelectorError{Pos: start, Selector: keyword})
		tracer().Debugf("unknown selector %q", keyword)
	}
	return sel, ok
}

// ParseDeclarationBlock parses a block
//
//     { property: value; property: value }
//
// and returns the declarations in source order. Pairs with an unknown
// property or a value which does not parse are dropped.
func (p *Parser) ParseDeclarationBlock() []style.Declaration {
	var decls []style.Declaration
	p.scan.ConsumeIf('{')
	for !p.scan.AtEnd() {
		name := strings.TrimSpace(p.scan.ConsumeWhile(func(r rune) bool {
			return r != ':' && r != '}'
		}))
		if p.scan.ConsumeIf('}') {
			if name != "" {
				p.drop(name, "", "missing value")
			}
			break
		}
		p.scan.ConsumeIf(':')
		raw := strings.TrimSpace(p.scan.ConsumeWhile(func(r rune) bool {
			return r != ';' && r != '}'
		}))
		if d, ok := p.declaration(name, raw); ok {
			decls = append(decls, d)
		}
		if p.scan.ConsumeIf(';') {
			continue
		}
		if p.scan.ConsumeIf('}') {
			break
		}
	}
	return decls
}

func (p *Parser) declaration(name, raw string) (style.Declaration, bool) {
	if name == "" && raw == "" { // empty pair, e.g. after a trailing ';'
		return style.Declaration{}, false
	}
	prop, ok := style.PropertyFromString(name)
	if !ok {
		p.drop(name, raw, "unknown property")
		return style.Declaration{}, false
	}
	v := style.ValueFromString(raw)
	if v.IsMissing() {
		p.drop(name, raw, "invalid value")
		return style.Declaration{}, false
	}
	return style.Declaration{Property: prop, Value: v}, true
}

func (p *Parser) drop(name, raw, reason string) {
	tracer().Debugf("dropping declaration %s: %s (%s)", name, raw, reason)
	p.diag = multierr.Append(p.diag, &DeclarationError{
		Pos:      p.scan.Pos(),
		Property: name,
		Value:    raw,
		Reason:   reason,
	})
}

// ParseStylesheet parses rules until the end of input. Rules with an
// unknown selector are skipped as a whole.
func (p *Parser) ParseStylesheet() *Stylesheet {
	sheet := NewStylesheet()
	for {
		p.scan.SkipWhitespace()
		if p.scan.AtEnd() {
			break
		}
		sel, ok := p.ParseSelector()
		if !ok {
			p.scan.SkipPast('}')
			continue
		}
		sheet.Append(sel, p.ParseDeclarationBlock()...)
	}
	tracer().P("rules", len(sheet.order)).Debugf("parsed style sheet")
	return sheet
}
