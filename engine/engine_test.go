package engine

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/npillmayer/minilayout/config"
	"github.com/npillmayer/minilayout/dom/domdbg"
	"github.com/npillmayer/minilayout/dom/markup"
	"github.com/npillmayer/minilayout/dom/style/cssom"
	"github.com/npillmayer/minilayout/layout"
	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"
)

const aliens = `<!DOCTYPE html>
<html>
  <head><title>Aliens?</title></head>
  <body>A bunch of text that makes up the body</body>
</html>`

const styles = `
h1    { margin-top: 5px; padding-bottom: 3px }
title { display: inline }
body  { margin-left: 10px; margin-top: 2px; border-bottom-width: 1px }
`

type lineMeasurer uint32

func (m lineMeasurer) MeasureText(text string, width uint32) uint32 {
	return uint32(m)
}

func boxes(n *layout.Node) []layout.Box {
	bs := []layout.Box{n.Box()}
	for _, ch := range n.Children() {
		bs = append(bs, boxes(ch)...)
	}
	return bs
}

func TestRunAliens(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "minilayout.engine")
	defer teardown()
	//
	opts := DefaultOptions()
	opts.Measurer = lineMeasurer(16)
	res, err := Run(aliens, styles, opts)
	require.NoError(t, err)
	assert.NoError(t, res.Diagnostics)
	t.Logf("\n%s", domdbg.PrintLayoutTree(res.Layout))
	want := []layout.Box{
		{Content: layout.Rect{Width: 0, Height: 8 + 19}},
		{Content: layout.Rect{Y: 5}, Margin: layout.Edges{Top: 5}, Padding: layout.Edges{Bottom: 3}},
		{},
		{
			Content: layout.Rect{X: 10, Y: 10, Width: 0, Height: 16},
			Margin:  layout.Edges{Top: 2, Left: 10},
			Border:  layout.Edges{Bottom: 1},
		},
	}
	if diff := cmp.Diff(want, boxes(res.Layout)); diff != "" {
		t.Errorf("unexpected layout (-want +got):\n%s", diff)
	}
}

func TestRunParsersAgree(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "minilayout.engine")
	defer teardown()
	//
	native, err := Run(aliens, styles, DefaultOptions())
	require.NoError(t, err)
	opts := DefaultOptions()
	opts.StyleParser = DouceurParser
	imported, err := Run(aliens, styles, opts)
	require.NoError(t, err)
	if diff := cmp.Diff(boxes(native.Layout), boxes(imported.Layout)); diff != "" {
		t.Errorf("style parsers lead to different layouts (-native +douceur):\n%s", diff)
	}
}

func TestRunCollectsDiagnostics(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "minilayout.engine")
	defer teardown()
	//
	doc := `<!DOCTYPE html><html><div><head></head></div><body>x</body></html>`
	res, err := Run(doc, "body { color: red } p { margin-top: 1px }", DefaultOptions())
	require.NoError(t, err)
	errs := multierr.Errors(res.Diagnostics)
	require.Len(t, errs, 3)
	assert.True(t, errors.Is(errs[0], markup.ErrUnknownElement))
	var derr *cssom.DeclarationError
	assert.True(t, errors.As(errs[1], &derr))
	var serr *cssom.SelectorError
	assert.True(t, errors.As(errs[2], &serr))
	assert.Equal(t, 1, res.Layout.ChildCount(), "expected <body> to survive the unknown <div>")
}

func TestRunStructuralErrors(t *testing.T) {
	_, err := Run("<!DOCTYPE xml><html></html>", "", DefaultOptions())
	require.Error(t, err)
	assert.True(t, errors.Is(err, markup.ErrMalformedDoctype))
	res, err := Run(aliens, "", Options{MaxDepth: 2})
	require.NoError(t, err)
	assert.True(t, errors.Is(res.Diagnostics, markup.ErrTooDeep))
	head, _ := res.Layout.Child(0)
	assert.Equal(t, 0, head.ChildCount(), "expected <title> to be dropped")
}

func TestOptionsFromTestConfig(t *testing.T) {
	conf := testconfig.Conf{
		"layout.maxdepth":       32,
		"layout.viewport.width": "1024",
		"style.parser":          "douceur",
	}
	opts, err := OptionsFromConfig(conf)
	require.NoError(t, err)
	want := Options{
		MaxDepth:    32,
		Viewport:    layout.Rect{Width: 1024, Height: 600},
		StyleParser: DouceurParser,
	}
	if diff := cmp.Diff(want, opts); diff != "" {
		t.Errorf("unexpected options (-want +got):\n%s", diff)
	}
	conf["style.parser"] = "gorilla"
	_, err = OptionsFromConfig(conf)
	assert.Error(t, err)
	conf = testconfig.Conf{"layout.maxdepth": 0}
	_, err = OptionsFromConfig(conf)
	assert.Error(t, err)
}

func TestViewportOutOfRange(t *testing.T) {
	if uint64(math.MaxInt) <= math.MaxUint32 {
		t.Skip("int cannot hold values beyond 32 bits")
	}
	for _, v := range []string{"-1", "4294967296"} {
		conf := testconfig.Conf{"layout.viewport.width": v}
		_, err := OptionsFromConfig(conf)
		assert.Error(t, err, "expected %s to be rejected", v)
	}
	conf := testconfig.Conf{"layout.viewport.height": "4294967295"}
	opts, err := OptionsFromConfig(conf)
	require.NoError(t, err)
	assert.Equal(t, uint32(math.MaxUint32), opts.Viewport.Height)
}

func TestOptionsFromYAML(t *testing.T) {
	conf, err := config.Load(strings.NewReader(`
layout:
  maxdepth: 64
  viewport:
    width: 320
    height: 200
`))
	require.NoError(t, err)
	opts, err := OptionsFromConfig(conf)
	require.NoError(t, err)
	assert.Equal(t, 64, opts.MaxDepth)
	assert.Equal(t, layout.Rect{Width: 320, Height: 200}, opts.Viewport)
	assert.Equal(t, NativeParser, opts.StyleParser)
}
