package styledtree

import (
	"errors"
	"fmt"

	"github.com/npillmayer/minilayout/dom"
	"github.com/npillmayer/minilayout/dom/style"
	"github.com/npillmayer/minilayout/dom/style/cssom"
)

// ErrTooDeep is returned if a DOM tree is nested deeper than allowed.
var ErrTooDeep = errors.New("styled tree nested too deeply")

// DefaultMaxDepth is the nesting depth Resolve accepts unless configured
// otherwise.
const DefaultMaxDepth = 256

// StyNode is a style node, the building block of the styled tree.
type StyNode struct {
	element      *dom.Element
	declarations []style.Declaration
	children     []*StyNode
}

// Element gets the DOM element corresponding to this styled node.
func (sn *StyNode) Element() *dom.Element {
	return sn.element
}

// Declarations returns the declarations in effect for this node, or nil if
// the style sheet has none for the node's element type. Clients must not
// modify the declarations.
func (sn *StyNode) Declarations() []style.Declaration {
	return sn.declarations
}

// Value returns the first declared value for a property.
func (sn *StyNode) Value(p style.Property) (style.Value, bool) {
	return style.Lookup(sn.declarations, p)
}

// ChildCount returns the number of children of this node.
func (sn *StyNode) ChildCount() int {
	return len(sn.children)
}

// Child returns the child at position i.
func (sn *StyNode) Child(i int) (*StyNode, bool) {
	if i < 0 || i >= len(sn.children) {
		return nil, false
	}
	return sn.children[i], true
}

// Children returns a copy of the children of this node.
func (sn *StyNode) Children() []*StyNode {
	chs := make([]*StyNode, len(sn.children))
	copy(chs, sn.children)
	return chs
}

func (sn *StyNode) String() string {
	return fmt.Sprintf("StyNode(%s, %d decls)", sn.element.Type(), len(sn.declarations))
}

// --- Resolving -------------------------------------------------------------

// Option configures Resolve.
type Option func(*resolver)

// MaxDepth limits the nesting depth of the tree. Values < 1 are ignored.
func MaxDepth(n int) Option {
	return func(r *resolver) {
		if n > 0 {
			r.maxDepth = n
		}
	}
}

type resolver struct {
	sheet    *cssom.Stylesheet
	maxDepth int
}

// Resolve creates a styled tree for a DOM tree. A nil style sheet is
// treated as an empty one.
func Resolve(root *dom.Element, sheet *cssom.Stylesheet, opts ...Option) (*StyNode, error) {
	if root == nil {
		return nil, errors.New("cannot style an empty DOM tree")
	}
	if sheet == nil {
		sheet = cssom.NewStylesheet()
	}
	r := &resolver{sheet: sheet, maxDepth: DefaultMaxDepth}
	for _, opt := range opts {
		opt(r)
	}
	return r.resolve(root, 1)
}

func (r *resolver) resolve(el *dom.Element, depth int) (*StyNode, error) {
	if depth > r.maxDepth {
		return nil, fmt.Errorf("element %s at depth %d: %w", el.Type(), depth, ErrTooDeep)
	}
	sn := &StyNode{element: el}
	sn.declarations, _ = r.sheet.Declarations(cssom.TypeSelectorFor(el.Type()))
	if n := el.ChildCount(); n > 0 {
		sn.children = make([]*StyNode, 0, n)
	}
	for _, ch := range el.Children() {
		chnode, err := r.resolve(ch, depth+1)
		if err != nil {
			return nil, err
		}
		sn.children = append(sn.children, chnode)
	}
	tracer().Debugf("styled %s with %d declarations", el.Type(), len(sn.declarations))
	return sn, nil
}
