package layout

// Painter renders boxes. Painters are called for block nodes in document
// order, parents before their children.
type Painter interface {
	PaintBox(n *Node, box Box) error
}

// Paint walks a laid out tree and hands every block node to a painter.
// Painting stops at the first error.
func Paint(root *Node, p Painter) error {
	if root == nil || !root.blockType.IsBlock() {
		return nil
	}
	if err := p.PaintBox(root, root.box); err != nil {
		return err
	}
	for _, ch := range root.children {
		if err := Paint(ch, p); err != nil {
			return err
		}
	}
	return nil
}
