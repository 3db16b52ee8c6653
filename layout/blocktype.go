package layout

import (
	"strings"

	"github.com/npillmayer/minilayout/dom/style"
)

// BlockType is the kind of formatting context a layout node takes part in.
type BlockType uint16

// Flags for block types.
const (
	NoMode     BlockType = iota   // display none or not determined
	BlockMode  BlockType = 0x0002 // block context
	InlineMode BlockType = 0x0004 // inline context
)

var allBlockTypes = []BlockType{BlockMode, InlineMode}

// Contains checks if a block type contains a given atomic mode.
// Returns false for b = NoMode.
func (bt BlockType) Contains(b BlockType) bool {
	return b != NoMode && (bt&b > 0)
}

// IsBlock is true for nodes taking part in block layout.
func (bt BlockType) IsBlock() bool {
	return bt.Contains(BlockMode)
}

func (bt BlockType) String() string {
	if bt == NoMode {
		return "NoMode"
	}
	var names []string
	for _, m := range allBlockTypes {
		if bt.Contains(m) {
			switch m {
			case BlockMode:
				names = append(names, "BlockMode")
			case InlineMode:
				names = append(names, "InlineMode")
			}
		}
	}
	return strings.Join(names, " ")
}

// Symbol returns a Unicode symbol for a block type.
func (bt BlockType) Symbol() string {
	if bt.Contains(BlockMode) {
		return "▩"
	} else if bt.Contains(InlineMode) {
		return "►"
	}
	return "–"
}

// blockTypeFrom derives the block type from a list of declarations.
// Only "display: inline" makes a node inline; everything else is a block.
func blockTypeFrom(decls []style.Declaration) BlockType {
	v, ok := style.Lookup(decls, style.Display)
	if !ok {
		return BlockMode
	}
	var d style.DisplayMode
	if m := v.Match(); m.Display(&d) != nil && d == style.Inline {
		return InlineMode
	}
	return BlockMode
}
