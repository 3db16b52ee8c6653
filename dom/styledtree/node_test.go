package styledtree

import (
	"errors"
	"testing"

	"github.com/npillmayer/minilayout/dom"
	"github.com/npillmayer/minilayout/dom/markup"
	"github.com/npillmayer/minilayout/dom/style"
	"github.com/npillmayer/minilayout/dom/style/cssom"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const aliens = `<html><head><title>Aliens?</title></head><body>A bunch of text that makes up the body</body></html>`

func TestResolveIsomorphic(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "minilayout.style")
	defer teardown()
	//
	p := markup.NewParser(aliens)
	root, err := p.ParseElement()
	require.NoError(t, err)
	sheet, _ := cssom.Parse("body { margin-top: 10px } h1 { padding-top: 2px } body { margin-top: 20px }")
	sn, err := Resolve(root, sheet)
	require.NoError(t, err)
	//
	var walk func(*dom.Element, *StyNode)
	walk = func(el *dom.Element, sn *StyNode) {
		if sn.Element() != el {
			t.Errorf("style node for %s does not reference its element", el.Type())
		}
		require.Equal(t, el.ChildCount(), sn.ChildCount())
		for i, ch := range el.Children() {
			sch, _ := sn.Child(i)
			walk(ch, sch)
		}
	}
	walk(root, sn)
	//
	assert.Nil(t, sn.Declarations(), "expected <html> to have no declarations")
	body, _ := sn.Child(1)
	assert.Equal(t, dom.Body, body.Element().Type())
	v, ok := body.Value(style.MarginTop)
	require.True(t, ok)
	assert.Equal(t, style.SizeValue(10, style.Px), v)
	head, _ := sn.Child(0)
	v, ok = head.Value(style.PaddingTop)
	assert.True(t, ok)
	assert.Equal(t, style.SizeValue(2, style.Px), v)
	_, ok = head.Value(style.MarginTop)
	assert.False(t, ok)
}

func TestResolveNilSheet(t *testing.T) {
	el := dom.NewElement(dom.Root, "", dom.NewElement(dom.Body, "x"))
	sn, err := Resolve(el, nil)
	require.NoError(t, err)
	assert.Equal(t, 1, sn.ChildCount())
	_, err = Resolve(nil, nil)
	assert.Error(t, err)
}

func TestResolveTooDeep(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "minilayout.style")
	defer teardown()
	//
	el := dom.NewElement(dom.Body, "")
	for i := 0; i < 9; i++ {
		el = dom.NewElement(dom.Body, "", el)
	}
	_, err := Resolve(el, cssom.NewStylesheet(), MaxDepth(10))
	assert.NoError(t, err)
	_, err = Resolve(el, cssom.NewStylesheet(), MaxDepth(9))
	assert.True(t, errors.Is(err, ErrTooDeep))
}

func TestDeclarationsNotAliased(t *testing.T) {
	sheet := cssom.NewStylesheet()
	sheet.Append(cssom.TypeSelectorFor(dom.Body),
		style.Declaration{Property: style.MarginTop, Value: style.SizeValue(1, style.Px)})
	sn, err := Resolve(dom.NewElement(dom.Body, ""), sheet)
	require.NoError(t, err)
	decls := sn.Declarations()
	assert.Equal(t, len(decls), cap(decls))
}
