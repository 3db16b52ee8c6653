package engine

import (
	"fmt"
	"math"
	"strings"

	"github.com/npillmayer/minilayout/dom"
	"github.com/npillmayer/minilayout/dom/markup"
	"github.com/npillmayer/minilayout/dom/style/cssom"
	"github.com/npillmayer/minilayout/dom/style/cssom/douceuradapter"
	"github.com/npillmayer/minilayout/dom/styledtree"
	"github.com/npillmayer/minilayout/layout"
	"github.com/npillmayer/schuko"
	"go.uber.org/multierr"
)

// StyleParser selects the parser for style sheets.
type StyleParser uint8

// Style parsers.
const (
	NativeParser  StyleParser = iota // package cssom
	DouceurParser                    // douceur, converted by package douceuradapter
)

// Options configure a pipeline run.
type Options struct {
	MaxDepth    int                 // maximum nesting depth of all trees
	Viewport    layout.Rect         // containing rectangle of the root box
	StyleParser StyleParser         // parser for style sheets
	Measurer    layout.TextMeasurer // optional, for the height of text leaves
}

// DefaultOptions returns options with a viewport of 800×600 pixels.
func DefaultOptions() Options {
	return Options{
		MaxDepth: markup.DefaultMaxDepth,
		Viewport: layout.Rect{Width: 800, Height: 600},
	}
}

// OptionsFromConfig reads options from a configuration. Recognized keys
// are
//
//     layout.maxdepth          nesting depth, default 256
//     layout.viewport.width    in pixels, default 800
//     layout.viewport.height   in pixels, default 600
//     style.parser             "native" or "douceur"
//
func OptionsFromConfig(conf schuko.Configuration) (Options, error) {
	opts := DefaultOptions()
	if conf == nil {
		return opts, nil
	}
	if conf.IsSet("layout.maxdepth") {
		if opts.MaxDepth = conf.GetInt("layout.maxdepth"); opts.MaxDepth < 1 {
			return opts, fmt.Errorf("engine: invalid layout.maxdepth %q", conf.GetString("layout.maxdepth"))
		}
	}
	for key, dim := range map[string]*uint32{
		"layout.viewport.width":  &opts.Viewport.Width,
		"layout.viewport.height": &opts.Viewport.Height,
	} {
		if !conf.IsSet(key) {
			continue
		}
		n := conf.GetInt(key)
		if n < 0 || uint64(n) > math.MaxUint32 {
			return opts, fmt.Errorf("engine: invalid %s %q", key, conf.GetString(key))
		}
		*dim = uint32(n)
	}
	switch p := strings.ToLower(conf.GetString("style.parser")); p {
	case "", "native":
	case "douceur":
		opts.StyleParser = DouceurParser
	default:
		return opts, fmt.Errorf("engine: unknown style parser %q", p)
	}
	return opts, nil
}

// Result holds the trees of a pipeline run.
type Result struct {
	Document    *dom.Document
	Stylesheet  *cssom.Stylesheet
	Styled      *styledtree.StyNode
	Layout      *layout.Node
	Diagnostics error // errors the parsers recovered from
}

// Run parses markup and style text, resolves styles and lays out the
// document. Structural errors in the markup make Run fail; dropped
// declarations, rules or elements are reported in Result.Diagnostics.
func Run(markupText, styleText string, opts Options) (*Result, error) {
	if opts.MaxDepth < 1 {
		opts.MaxDepth = markup.DefaultMaxDepth
	}
	res := &Result{}
	p := markup.NewParser(markupText, markup.MaxDepth(opts.MaxDepth))
	doc, err := p.Parse()
	if err != nil {
		return nil, fmt.Errorf("engine: %w", err)
	}
	res.Document = doc
	res.Diagnostics = p.Diagnostics()
	//
	var sdiag error
	switch opts.StyleParser {
	case DouceurParser:
		res.Stylesheet, sdiag = douceuradapter.Parse(styleText)
		if res.Stylesheet == nil {
			return nil, fmt.Errorf("engine: %w", sdiag)
		}
	default:
		res.Stylesheet, sdiag = cssom.Parse(styleText)
	}
	res.Diagnostics = multierr.Append(res.Diagnostics, sdiag)
	//
	res.Styled, err = styledtree.Resolve(doc.Root, res.Stylesheet, styledtree.MaxDepth(opts.MaxDepth))
	if err != nil {
		return nil, fmt.Errorf("engine: %w", err)
	}
	lopts := []layout.Option{layout.MaxDepth(opts.MaxDepth)}
	if opts.Measurer != nil {
		lopts = append(lopts, layout.WithTextMeasurer(opts.Measurer))
	}
	res.Layout, err = layout.LayoutTree(res.Styled, opts.Viewport, lopts...)
	if err != nil {
		return nil, fmt.Errorf("engine: %w", err)
	}
	tracer().P("diagnostics", len(multierr.Errors(res.Diagnostics))).
		Infof("laid out document in %v", opts.Viewport)
	return res, nil
}
