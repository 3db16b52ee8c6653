package markup

import (
	"unicode"

	"github.com/npillmayer/minilayout/dom"
	"github.com/npillmayer/minilayout/scanner"
	"go.uber.org/multierr"
	"golang.org/x/net/html/atom"
)

// DefaultMaxDepth is the nesting depth of elements a parser accepts unless
// configured otherwise.
const DefaultMaxDepth = 256

// Parser is a recursive-descent markup parser. A parser is not safe for
// concurrent use.
type Parser struct {
	scan     *scanner.Scanner
	maxDepth int
	diag     error
}

// Option configures a parser.
type Option func(*Parser)

// MaxDepth limits the nesting depth of elements. Values < 1 are ignored.
func MaxDepth(n int) Option {
	return func(p *Parser) {
		if n > 0 {
			p.maxDepth = n
		}
	}
}

// NewParser creates a parser for a markup text.
func NewParser(text string, opts ...Option) *Parser {
	p := &Parser{
		scan:     scanner.New(text),
		maxDepth: DefaultMaxDepth,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Parse parses a complete markup text, consisting of a doctype declaration
// and a root element.
func Parse(text string, opts ...Option) (*dom.Document, error) {
	return NewParser(text, opts...).Parse()
}

// Diagnostics returns all errors the parser recovered from, or nil.
func (p *Parser) Diagnostics() error {
	return p.diag
}

// Parse parses the doctype declaration followed by the root element.
// Errors the parser recovered from do not make Parse fail; they are
// available from Diagnostics().
func (p *Parser) Parse() (*dom.Document, error) {
	doc, err := p.ParseDoctype()
	if err != nil {
		return nil, err
	}
	p.scan.SkipWhitespace()
	if p.scan.AtEnd() {
		return nil, p.errorf("", ErrNoElement)
	}
	root, err := p.ParseElement()
	if err != nil {
		return nil, err
	}
	return doc.WithRoot(root), nil
}

// ParseDoctype parses a doctype declaration of the form
//
//     <!DOCTYPE html>
//
// Keywords are matched case-sensitively. On failure the scanner is left at
// the position where the parser stopped.
func (p *Parser) ParseDoctype() (*dom.Document, error) {
	if !p.scan.ConsumeIf('<') || !p.scan.ConsumeIf('!') {
		return nil, p.errorf("", ErrMalformedDoctype)
	}
	keyword := p.scan.ConsumeWhile(unicode.IsLetter)
	p.scan.SkipWhitespace()
	doctype := p.scan.ConsumeWhile(unicode.IsLetter)
	p.scan.SkipWhitespace()
	if !p.scan.ConsumeIf('>') || keyword != "DOCTYPE" || doctype != "html" {
		tracer().P("doctype", doctype).Debugf("rejecting doctype keyword %q", keyword)
		return nil, p.errorf("", ErrMalformedDoctype)
	}
	return dom.NewDocument(dom.HTML), nil
}

// ParseElement parses an element together with all of its descendents.
//
// If the element's tag is unknown, the element is skipped up to its
// matching closing tag and a *ParseError wrapping ErrUnknownElement is
// returned. Unknown descendents are dropped the same way, but do not make
// ParseElement fail.
func (p *Parser) ParseElement() (*dom.Element, error) {
	return p.parseElement(1)
}

func (p *Parser) parseElement(depth int) (*dom.Element, error) {
	p.scan.SkipPast('<')
	start := p.scan.Pos() - 1
	tag := p.scan.ConsumeWhile(isTagNameChar)
	p.scan.SkipPast('>') // attributes are skipped
	if tag == "" {
		return nil, &ParseError{Pos: start, Err: ErrNoElement}
	}
	etype, ok := elementTypeForTag(tag)
	if !ok {
		p.skipElement(tag)
		return nil, &ParseError{Pos: start, Tag: tag, Err: ErrUnknownElement}
	}
	if depth > p.maxDepth {
		p.skipElement(tag)
		return nil, &ParseError{Pos: start, Tag: tag, Err: ErrTooDeep}
	}
	text := p.scan.ConsumeWhile(notTagOpen)
	var children []*dom.Element
	for !p.scan.AtEnd() {
		p.scan.ConsumeWhile(notTagOpen) // text between children is not modelled
		if p.atClosingTag() {
			p.scan.SkipPast('>')
			break
		}
		if p.scan.AtEnd() {
			break
		}
		child, err := p.parseElement(depth + 1)
		if err != nil {
			tracer().Infof("dropping subtree: %v", err)
			p.diag = multierr.Append(p.diag, err)
			continue
		}
		children = append(children, child)
	}
	tracer().P("tag", tag).Debugf("parsed element with %d children", len(children))
	return dom.NewElement(etype, text, children...), nil
}

// atClosingTag checks for "</" at the cursor.
func (p *Parser) atClosingTag() bool {
	r1, ok1 := p.scan.Peek()
	r2, ok2 := p.scan.PeekSecond()
	return ok1 && ok2 && r1 == '<' && r2 == '/'
}

// skipElement resynchronizes the scanner after the opening tag of an element
// by skipping up to and including its matching closing tag. Nested elements
// with the same tag name are counted.
func (p *Parser) skipElement(tag string) {
	open := 1
	for open > 0 && !p.scan.AtEnd() {
		p.scan.ConsumeWhile(notTagOpen)
		if !p.scan.ConsumeIf('<') {
			break
		}
		closing := p.scan.ConsumeIf('/')
		name := p.scan.ConsumeWhile(isTagNameChar)
		p.scan.SkipPast('>')
		if name != tag {
			continue
		}
		if closing {
			open--
		} else {
			open++
		}
	}
	tracer().P("tag", tag).Debugf("resynchronized at position %d", p.scan.Pos())
}

func (p *Parser) errorf(tag string, err error) *ParseError {
	return &ParseError{Pos: p.scan.Pos(), Tag: tag, Err: err}
}

// elementTypeForTag maps tag names to element types.
func elementTypeForTag(tag string) (dom.ElementType, bool) {
	switch atom.Lookup([]byte(tag)) {
	case atom.Html:
		return dom.Root, true
	case atom.Head:
		return dom.Head, true
	case atom.Title:
		return dom.Title, true
	case atom.Body:
		return dom.Body, true
	}
	return 0, false
}

func isTagNameChar(r rune) bool {
	return !unicode.IsSpace(r) && r != '>'
}

func notTagOpen(r rune) bool {
	return r != '<'
}
