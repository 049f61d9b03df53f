package img2oc

import (
	"fmt"
	"strings"
)

// Mode is a render strategy. It fixes how many source pixels one output
// cell covers, which bit each of those pixels sets in the cell's bit
// pattern, and how a bit pattern becomes a glyph. The clustering and
// dithering logic is shared by every mode.
type Mode interface {
	// Name returns the canonical name used in configuration.
	Name() string

	// CellSize returns the cell dimensions in source pixels.
	CellSize() (width, height int)

	// BitIndex returns the bit position set by the pixel at column x,
	// row y of a cell.
	BitIndex(x, y int) uint

	// Glyph maps a bit pattern to its code point.
	Glyph(bits uint8) rune

	// Blank returns the glyph used for flat fills.
	Blank() rune

	// Patterned reports whether cells carry a bit pattern. Modes without
	// one skip clustering, dithering and noise suppression.
	Patterned() bool
}

// brailleBase is the code point of the empty braille pattern.
const brailleBase = '⠀'

// brailleBitIndex maps [row][column] inside a 2x4 cell to a dot bit:
//
//	┌───┬───┐
//	│ 0 │ 3 │  row 0 (dots 1, 4)
//	│ 1 │ 4 │  row 1 (dots 2, 5)
//	│ 2 │ 5 │  row 2 (dots 3, 6)
//	│ 6 │ 7 │  row 3 (dots 7, 8)
//	└───┴───┘
var brailleBitIndex = [4][2]uint{
	{0, 3},
	{1, 4},
	{2, 5},
	{6, 7},
}

// Braille renders 2x4 pixel cells as U+2800..U+28FF dot patterns.
type Braille struct{}

func (Braille) Name() string {
	return "braille"
}

func (Braille) CellSize() (int, int) {
	return 2, 4
}

func (Braille) BitIndex(x, y int) uint {
	return brailleBitIndex[y][x]
}

func (Braille) Glyph(bits uint8) rune {
	return brailleBase + rune(bits)
}

func (Braille) Blank() rune {
	return brailleBase
}

func (Braille) Patterned() bool {
	return true
}

// quadrantBitIndex maps [row][column] inside a 2x2 cell to a bit, in the
// same order the quadrant block table is indexed by.
var quadrantBitIndex = [2][2]uint{
	{3, 2},
	{1, 0},
}

// Quadrant renders 2x2 pixel cells as one of the 16 quadrant block glyphs.
type Quadrant struct{}

func (Quadrant) Name() string {
	return "quad"
}

func (Quadrant) CellSize() (int, int) {
	return 2, 2
}

func (Quadrant) BitIndex(x, y int) uint {
	return quadrantBitIndex[y][x]
}

func (Quadrant) Glyph(bits uint8) rune {
	return blocks[bits&0x0f].Rune
}

func (Quadrant) Blank() rune {
	return blocks[0].Rune
}

func (Quadrant) Patterned() bool {
	return true
}

// upperHalfBlock is drawn for every half block cell: the foreground paints
// the top pixel and the background the bottom one.
const upperHalfBlock = '▀'

// HalfBlock renders 1x2 pixel cells as an upper half block.
type HalfBlock struct{}

func (HalfBlock) Name() string {
	return "half"
}

func (HalfBlock) CellSize() (int, int) {
	return 1, 2
}

func (HalfBlock) BitIndex(x, y int) uint {
	return 0
}

func (HalfBlock) Glyph(bits uint8) rune {
	return upperHalfBlock
}

func (HalfBlock) Blank() rune {
	return upperHalfBlock
}

func (HalfBlock) Patterned() bool {
	return false
}

var (
	ModeBraille   Mode = Braille{}
	ModeQuadrant  Mode = Quadrant{}
	ModeHalfBlock Mode = HalfBlock{}
)

// ParseMode returns the render mode for a configuration name. Names are
// case-insensitive; "quadrant" and "halfblock" are accepted as aliases.
func ParseMode(name string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "braille":
		return ModeBraille, nil
	case "quad", "quadrant":
		return ModeQuadrant, nil
	case "half", "halfblock":
		return ModeHalfBlock, nil
	}
	return nil, fmt.Errorf("%w: %q (options are braille, quad, half)",
		ErrUnknownMode, name)
}
