package layout

import (
	"errors"
	"fmt"

	"github.com/npillmayer/minilayout/dom/style"
	"github.com/npillmayer/minilayout/dom/styledtree"
)

// ErrTooDeep is returned if a styled tree is nested deeper than allowed.
var ErrTooDeep = errors.New("layout tree nested too deeply")

// DefaultMaxDepth is the nesting depth the layout engine accepts unless
// configured otherwise.
const DefaultMaxDepth = 256

// Node is a node of the layout tree. Layout trees are isomorphic to the
// styled tree they are built from.
type Node struct {
	edges     Box // edges as declared; content is unused
	box       Box // used geometry, computed by Layout
	blockType BlockType
	styled    *styledtree.StyNode
	children  []*Node
}

// Box returns the box of a node. Before layout, this is the box with the
// declared edges and an empty content area.
func (n *Node) Box() Box {
	return n.box
}

// BlockType returns the block type of a node.
func (n *Node) BlockType() BlockType {
	return n.blockType
}

// StyNode returns the styled node this layout node has been built from.
func (n *Node) StyNode() *styledtree.StyNode {
	return n.styled
}

// ChildCount returns the number of children of this node.
func (n *Node) ChildCount() int {
	return len(n.children)
}

// Child returns the child at position i.
func (n *Node) Child(i int) (*Node, bool) {
	if i < 0 || i >= len(n.children) {
		return nil, false
	}
	return n.children[i], true
}

// Children returns a copy of the children of this node.
func (n *Node) Children() []*Node {
	chs := make([]*Node, len(n.children))
	copy(chs, n.children)
	return chs
}

func (n *Node) String() string {
	name := "?"
	if n.styled != nil && n.styled.Element() != nil {
		name = n.styled.Element().Type().String()
	}
	return fmt.Sprintf("%s %s %v", n.blockType.Symbol(), name, n.box.Content)
}

// text returns the text of the node's element, if any.
func (n *Node) text() string {
	if n.styled == nil || n.styled.Element() == nil {
		return ""
	}
	return n.styled.Element().Text().WithDefault("")
}

// --- Options ---------------------------------------------------------------

// TextMeasurer measures text set into a given width. Implementations
// provide the intrinsic height of leaf nodes.
type TextMeasurer interface {
	MeasureText(text string, width uint32) (height uint32)
}

// Option configures the layout engine.
type Option func(*engine)

// MaxDepth limits the nesting depth of the tree. Values < 1 are ignored.
func MaxDepth(n int) Option {
	return func(e *engine) {
		if n > 0 {
			e.maxDepth = n
		}
	}
}

// WithTextMeasurer sets a text measurer for leaf nodes.
func WithTextMeasurer(m TextMeasurer) Option {
	return func(e *engine) {
		e.measurer = m
	}
}

type engine struct {
	maxDepth int
	measurer TextMeasurer
}

func newEngine(opts []Option) *engine {
	e := &engine{maxDepth: DefaultMaxDepth}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// --- Building the tree -----------------------------------------------------

// BuildLayoutTree creates a layout node for every styled node. Edges are
// taken from the first size declaration for each edge property and default
// to 0. Geometry is not computed; call Layout for this.
func BuildLayoutTree(sn *styledtree.StyNode, opts ...Option) (*Node, error) {
	if sn == nil {
		return nil, errors.New("cannot lay out an empty styled tree")
	}
	return newEngine(opts).build(sn, 1)
}

func (e *engine) build(sn *styledtree.StyNode, depth int) (*Node, error) {
	if depth > e.maxDepth {
		return nil, fmt.Errorf("styled node at depth %d: %w", depth, ErrTooDeep)
	}
	decls := sn.Declarations()
	n := &Node{
		styled:    sn,
		blockType: blockTypeFrom(decls),
		edges: Box{
			Margin:  edgesFrom(decls, style.MarginTop, style.MarginBottom, style.MarginLeft, style.MarginRight),
			Padding: edgesFrom(decls, style.PaddingTop, style.PaddingBottom, style.PaddingLeft, style.PaddingRight),
			Border: edgesFrom(decls, style.BorderTopWidth, style.BorderBottomWidth,
				style.BorderLeftWidth, style.BorderRightWidth),
		},
	}
	n.box = n.edges
	if cnt := sn.ChildCount(); cnt > 0 {
		n.children = make([]*Node, 0, cnt)
	}
	for _, ch := range sn.Children() {
		chnode, err := e.build(ch, depth+1)
		if err != nil {
			return nil, err
		}
		n.children = append(n.children, chnode)
	}
	return n, nil
}

func edgesFrom(decls []style.Declaration, top, bottom, left, right style.Property) Edges {
	size := func(p style.Property) uint32 {
		n, _, _ := style.LookupSize(decls, p)
		return n
	}
	return Edges{Top: size(top), Bottom: size(bottom), Left: size(left), Right: size(right)}
}

// --- Layout ----------------------------------------------------------------

// Layout computes the geometry of a node and its descendants inside a
// containing rectangle. Nodes which are not blocks are skipped together with
// their subtrees; their boxes are empty after layout.
//
// Every call starts from the declared edges, so laying out a tree again
// yields the same result as laying out a fresh tree.
//
// The content width of a block is the sum of its horizontal edges. If this
// exceeds the width of the containing rectangle, the right margin is dropped
// and the width is clamped to the containing width. Children are stacked
// vertically; the content height of a block is the sum of the margin box
// heights of its children.
func (n *Node) Layout(containing Rect, opts ...Option) {
	newEngine(opts).layout(n, containing)
}

func (e *engine) layout(n *Node, containing Rect) {
	if !n.blockType.IsBlock() {
		tracer().Debugf("skipping layout of non-block %v", n)
		clearBoxes(n)
		return
	}
	n.box = n.edges
	b := &n.box
	width := add(add(b.Padding.Horizontal(), b.Border.Horizontal()), b.Margin.Horizontal())
	if width > containing.Width {
		tracer().Debugf("over-constrained width %d in %d, dropping right margin", width, containing.Width)
		b.Margin.Right = 0
		width = containing.Width
	}
	b.Content.Width = width
	b.Content.X = add(add(add(containing.X, b.Padding.Left), b.Border.Left), b.Margin.Left)
	b.Content.Y = add(add(add(containing.Y, b.Padding.Top), b.Border.Top), b.Margin.Top)
	//
	if len(n.children) == 0 {
		b.Content.Height = 0
		if e.measurer != nil {
			if text := n.text(); text != "" {
				b.Content.Height = e.measurer.MeasureText(text, b.Content.Width)
			}
		}
		return
	}
	var height uint32
	for _, ch := range n.children {
		cursor := b.Content
		cursor.Y = add(cursor.Y, height)
		e.layout(ch, cursor)
		if ch.blockType.IsBlock() {
			height = add(height, ch.box.OuterHeight())
		}
	}
	b.Content.Height = height
}

func clearBoxes(n *Node) {
	n.box = Box{}
	for _, ch := range n.children {
		clearBoxes(ch)
	}
}

// LayoutTree builds a layout tree for a styled tree and lays it out in a
// viewport.
func LayoutTree(sn *styledtree.StyNode, viewport Rect, opts ...Option) (*Node, error) {
	root, err := BuildLayoutTree(sn, opts...)
	if err != nil {
		return nil, err
	}
	root.Layout(viewport, opts...)
	return root, nil
}
