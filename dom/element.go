package dom

import (
	"fmt"

	"github.com/npillmayer/minilayout/maybe"
)

// ElementType is the closed set of element types a document may contain.
type ElementType uint8

// Element types. Root is the type of the <html> element.
const (
	Root ElementType = iota
	Head
	Title
	Body
)

var elementTypeNames = [...]string{"Root", "Head", "Title", "Body"}

func (et ElementType) String() string {
	if int(et) < len(elementTypeNames) {
		return elementTypeNames[et]
	}
	return fmt.Sprintf("ElementType(%d)", uint8(et))
}

// Doctype is the type of document declared by the doctype declaration.
type Doctype uint8

// HTML is the only supported doctype.
const HTML Doctype = 0

func (dt Doctype) String() string {
	if dt == HTML {
		return "html"
	}
	return fmt.Sprintf("Doctype(%d)", uint8(dt))
}

// Element is a node of the DOM tree.
type Element struct {
	etype    ElementType
	text     maybe.Maybe[string]
	children []*Element
}

// NewElement creates an element. An empty text is treated as no text.
// Children are copied and owned by the new element from now on; nil children
// are dropped.
func NewElement(t ElementType, text string, children ...*Element) *Element {
	el := &Element{etype: t}
	if text != "" {
		el.text = maybe.Just(text)
	}
	if len(children) > 0 {
		el.children = make([]*Element, 0, len(children))
		for _, ch := range children {
			if ch != nil {
				el.children = append(el.children, ch)
			}
		}
	}
	return el
}

// Type returns the element type.
func (el *Element) Type() ElementType {
	return el.etype
}

// Text returns the inline text of an element, if any.
func (el *Element) Text() maybe.Maybe[string] {
	return el.text
}

// ChildCount returns the number of children.
func (el *Element) ChildCount() int {
	if el == nil {
		return 0
	}
	return len(el.children)
}

// Child returns child number i.
func (el *Element) Child(i int) (*Element, bool) {
	if el == nil || i < 0 || i >= len(el.children) {
		return nil, false
	}
	return el.children[i], true
}

// Children returns the children of an element, in document order.
// The returned slice is a copy.
func (el *Element) Children() []*Element {
	if el == nil || len(el.children) == 0 {
		return nil
	}
	chs := make([]*Element, len(el.children))
	copy(chs, el.children)
	return chs
}

func (el *Element) String() string {
	if el == nil {
		return "(Element nil)"
	}
	if txt, ok := el.text.Get(); ok {
		return fmt.Sprintf("(Element %s %q #ch=%d)", el.etype, shortText(txt), len(el.children))
	}
	return fmt.Sprintf("(Element %s #ch=%d)", el.etype, len(el.children))
}

func shortText(s string) string {
	r := []rune(s)
	if len(r) > 20 {
		return string(r[:20]) + "…"
	}
	return s
}

// Document is the result of parsing a markup text.
type Document struct {
	Doctype Doctype
	Root    *Element // nil until the root element has been parsed
}

// NewDocument creates a document with no root element yet.
func NewDocument(dt Doctype) *Document {
	return &Document{Doctype: dt}
}

// WithRoot returns a copy of the document with root as its root element.
func (doc *Document) WithRoot(root *Element) *Document {
	return &Document{Doctype: doc.Doctype, Root: root}
}
