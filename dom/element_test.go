package dom

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func buildTestTree() *Element {
	title := NewElement(Title, "x")
	head := NewElement(Head, "y",
		NewElement(Body, "a"), NewElement(Body, "b"), NewElement(Body, "c"))
	body := NewElement(Body, "z")
	return NewElement(Root, "", title, head, body)
}

func TestElementChildren(t *testing.T) {
	root := buildTestTree()
	assert.Equal(t, 3, root.ChildCount())
	assert.True(t, root.Text().IsNothing())

	title, _ := root.Child(0)
	head, _ := root.Child(1)
	body, _ := root.Child(2)
	assert.Equal(t, 0, title.ChildCount())
	assert.Equal(t, 3, head.ChildCount())
	assert.Equal(t, 0, body.ChildCount())

	assert.Equal(t, "x", title.Text().WithDefault(""))
	assert.Equal(t, "y", head.Text().WithDefault(""))
	assert.Equal(t, "z", body.Text().WithDefault(""))
	for i, want := range []string{"a", "b", "c"} {
		ch, ok := head.Child(i)
		if assert.True(t, ok) {
			assert.Equal(t, want, ch.Text().WithDefault(""))
		}
	}
	_, ok := head.Child(3)
	assert.False(t, ok)
}

func TestElementChildrenIsACopy(t *testing.T) {
	root := buildTestTree()
	chs := root.Children()
	chs[0] = nil
	first, _ := root.Child(0)
	if first == nil {
		t.Error("expected modification of Children() result not to affect the element")
	}
}

func TestNewElementDropsNilChildren(t *testing.T) {
	el := NewElement(Body, "", nil, NewElement(Title, ""), nil)
	if el.ChildCount() != 1 {
		t.Errorf("expected 1 child, have %d", el.ChildCount())
	}
}

func TestElementTypeString(t *testing.T) {
	assert.Equal(t, "Root", Root.String())
	assert.Equal(t, "Body", Body.String())
	assert.Equal(t, "ElementType(9)", ElementType(9).String())
}

func TestWalkFindCount(t *testing.T) {
	root := buildTestTree()
	assert.Equal(t, 7, Count(root))
	assert.Equal(t, 3, Depth(root))
	bodies := Find(root, IsOfType(Body))
	assert.Len(t, bodies, 4)
	withText := Find(root, HasText)
	assert.Len(t, withText, 6)

	var order []ElementType
	Walk(root, func(el *Element, depth int) bool {
		order = append(order, el.Type())
		return depth == 0 // do not descend below root's children
	})
	assert.Equal(t, []ElementType{Root, Title, Head, Body}, order)
}

func TestDocumentWithRoot(t *testing.T) {
	doc := NewDocument(HTML)
	assert.Nil(t, doc.Root)
	doc2 := doc.WithRoot(buildTestTree())
	assert.Nil(t, doc.Root)
	assert.NotNil(t, doc2.Root)
	assert.Equal(t, "html", doc2.Doctype.String())
}
