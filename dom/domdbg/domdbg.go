/*
Package domdbg implements helpers to debug the trees of the layout
pipeline: DOM trees, styled trees and layout trees.

Trees may be printed as text, using treeprint, or as a GraphViz digraph.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>


*/
package domdbg

import (
	"fmt"
	"strings"

	"github.com/npillmayer/minilayout/dom"
	"github.com/npillmayer/minilayout/dom/styledtree"
	"github.com/npillmayer/minilayout/layout"
	tp "github.com/xlab/treeprint"
)

// PrintDocument returns a textual tree for a document.
func PrintDocument(doc *dom.Document) string {
	if doc == nil {
		return "<nil document>\n"
	}
	p := tp.New()
	p.SetValue(fmt.Sprintf("<!DOCTYPE %s>", doc.Doctype))
	if doc.Root != nil {
		printElement(p, doc.Root)
	}
	return p.String()
}

func printElement(p tp.Tree, el *dom.Element) {
	label := el.Type().String()
	if text, ok := el.Text().Get(); ok {
		label += " " + shortText(text)
	}
	if el.ChildCount() == 0 {
		p.AddNode(label)
		return
	}
	branch := p.AddBranch(label)
	for _, ch := range el.Children() {
		printElement(branch, ch)
	}
}

// PrintStyledTree returns a textual tree for a styled tree. Every node lists
// its declarations.
func PrintStyledTree(sn *styledtree.StyNode) string {
	p := tp.New()
	if sn != nil {
		printStyNode(p, sn)
	}
	return p.String()
}

func printStyNode(p tp.Tree, sn *styledtree.StyNode) {
	branch := p.AddBranch(sn.Element().Type().String())
	for _, d := range sn.Declarations() {
		branch.AddMetaNode(d.Property.Group(), d.String())
	}
	for _, ch := range sn.Children() {
		printStyNode(branch, ch)
	}
}

// PrintLayoutTree returns a textual tree for a layout tree. Every node
// shows its block type symbol and its content rectangle.
func PrintLayoutTree(root *layout.Node) string {
	p := tp.New()
	if root != nil {
		printLayoutNode(p, root)
	}
	return p.String()
}

func printLayoutNode(p tp.Tree, n *layout.Node) {
	if n.ChildCount() == 0 {
		p.AddMetaNode(n.BlockType().Symbol(), layoutLabel(n))
		return
	}
	branch := p.AddMetaBranch(n.BlockType().Symbol(), layoutLabel(n))
	for _, ch := range n.Children() {
		printLayoutNode(branch, ch)
	}
}

func layoutLabel(n *layout.Node) string {
	name := "?"
	if n.StyNode() != nil {
		name = n.StyNode().Element().Type().String()
	}
	box := n.Box()
	return fmt.Sprintf("%s %v m=%d/%d/%d/%d", name, box.Content,
		box.Margin.Top, box.Margin.Right, box.Margin.Bottom, box.Margin.Left)
}

func shortText(s string) string {
	if r := []rune(s); len(r) > 10 {
		s = string(r[:10]) + "…"
	}
	s = strings.Replace(s, "\n", `\n`, -1)
	s = strings.Replace(s, "\t", `\t`, -1)
	return fmt.Sprintf("%q", s)
}
