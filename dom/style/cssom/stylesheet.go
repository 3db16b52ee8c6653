package cssom

import (
	"fmt"
	"strings"

	"github.com/npillmayer/minilayout/dom"
	"github.com/npillmayer/minilayout/dom/style"
)

// SelectorKind is the kind of a selector. Currently there are only type
// selectors.
type SelectorKind uint8

// Kinds of selectors.
const (
	TypeSelector SelectorKind = iota
)

// Selector selects elements of a style sheet rule. Selectors are comparable
// and are used as map keys.
type Selector struct {
	Kind    SelectorKind
	Element dom.ElementType
}

// TypeSelectorFor creates a selector matching all elements of type t.
func TypeSelectorFor(t dom.ElementType) Selector {
	return Selector{Kind: TypeSelector, Element: t}
}

// Matches is true if a selector applies to an element.
func (sel Selector) Matches(el *dom.Element) bool {
	return el != nil && sel.Kind == TypeSelector && el.Type() == sel.Element
}

func (sel Selector) String() string {
	return strings.ToLower(sel.Element.String())
}

// selectorTable maps selector keywords to element types. Headings do not
// have an element type of their own and select <head>.
var selectorTable = map[string]dom.ElementType{
	"title": dom.Title,
	"body":  dom.Body,
	"h1":    dom.Head,
	"h2":    dom.Head,
	"h3":    dom.Head,
	"h4":    dom.Head,
}

// SelectorFromString finds the selector for a keyword, e.g. "body".
// Surrounding whitespace is ignored.
func SelectorFromString(s string) (Selector, bool) {
	t, ok := selectorTable[strings.TrimSpace(s)]
	if !ok {
		return Selector{}, false
	}
	return TypeSelectorFor(t), true
}

// --- Style sheet -----------------------------------------------------------

// Rule is a selector together with the declarations it carries.
type Rule struct {
	Selector     Selector
	Declarations []style.Declaration
}

func (r Rule) String() string {
	var b strings.Builder
	b.WriteString(r.Selector.String())
	b.WriteString(" {")
	for i, d := range r.Declarations {
		if i > 0 {
			b.WriteByte(';')
		}
		b.WriteByte(' ')
		b.WriteString(d.String())
	}
	b.WriteString(" }")
	return b.String()
}

// Stylesheet maps selectors to lists of declarations. Declarations from
// every rule with the same selector are appended in source order.
//
// The zero value is not usable; create style sheets with NewStylesheet.
type Stylesheet struct {
	decls map[Selector][]style.Declaration
	order []Selector
}

// NewStylesheet creates an empty style sheet.
func NewStylesheet() *Stylesheet {
	return &Stylesheet{decls: make(map[Selector][]style.Declaration)}
}

// Append adds declarations for a selector. A selector without declarations
// is registered nevertheless.
func (sheet *Stylesheet) Append(sel Selector, decls ...style.Declaration) {
	current, ok := sheet.decls[sel]
	if !ok {
		sheet.order = append(sheet.order, sel)
	}
	sheet.decls[sel] = append(current, decls...)
}

// Declarations returns the declarations for a selector. The returned slice
// is capacity-limited: appending to it will not modify the style sheet.
// Clients must not modify its elements.
func (sheet *Stylesheet) Declarations(sel Selector) ([]style.Declaration, bool) {
	decls, ok := sheet.decls[sel]
	if !ok {
		return nil, false
	}
	return decls[:len(decls):len(decls)], true
}

// Selectors returns the selectors of a style sheet in the order they were
// first encountered.
func (sheet *Stylesheet) Selectors() []Selector {
	sels := make([]Selector, len(sheet.order))
	copy(sels, sheet.order)
	return sels
}

// Empty checks if this style sheet contains any rules.
func (sheet *Stylesheet) Empty() bool {
	return len(sheet.order) == 0
}

// Rules returns one rule per selector, in encounter order of selectors.
func (sheet *Stylesheet) Rules() []Rule {
	rules := make([]Rule, 0, len(sheet.order))
	for _, sel := range sheet.order {
		decls, _ := sheet.Declarations(sel)
		rules = append(rules, Rule{Selector: sel, Declarations: decls})
	}
	return rules
}

// AppendRules appends rules from another style sheet. Declarations of
// selectors present in both sheets are appended behind the existing ones.
func (sheet *Stylesheet) AppendRules(other *Stylesheet) {
	if other == nil {
		return
	}
	for _, r := range other.Rules() {
		sheet.Append(r.Selector, r.Declarations...)
	}
}

func (sheet *Stylesheet) String() string {
	var b strings.Builder
	for _, r := range sheet.Rules() {
		fmt.Fprintln(&b, r.String())
	}
	return b.String()
}
