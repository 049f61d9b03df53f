package img2oc

import "math/bits"

// CellResult is the rendered form of one output cell.
type CellResult struct {
	Glyph rune
	Bits  uint8 // foreground bit pattern, zero for flat and half block cells
	FG    Color
	BG    Color
	Dots  int // number of set bits in Bits
}

// Inked reports whether the cell draws any foreground dots.
func (c CellResult) Inked() bool {
	return c.Bits != 0
}

// flatCell returns a blank cell filled with the average color of block.
func flatCell(mode Mode, block Block) CellResult {
	avg := averageColor(block.Pix)
	return CellResult{Glyph: mode.Blank(), FG: avg, BG: avg}
}

// MapCell renders one cell block in the given mode.
//
// Half block cells paint the top pixel as foreground and the bottom pixel
// as background. Patterned modes cluster the block into (bg, fg), and fall
// back to a flat average-color fill when the two colors are closer than
// MinContrast or when fewer than MinDots pixels (but at least one) were
// classified as foreground. Otherwise the glyph for the bit pattern is
// emitted with the clustered colors.
func MapCell(block Block, mode Mode, opts Options) CellResult {
	if !mode.Patterned() {
		return CellResult{
			Glyph: mode.Glyph(0),
			FG:    block.At(0, 0),
			BG:    block.At(0, block.H-1),
		}
	}

	bg, fg := ClusterTwo(block.Pix)
	if bg.Distance(fg) < opts.MinContrast {
		return flatCell(mode, block)
	}

	var pattern uint8
	on := 0
	for y := 0; y < block.H; y++ {
		for x := 0; x < block.W; x++ {
			if IsForeground(block.At(x, y), bg, fg, x, y, opts.Dither) {
				pattern |= 1 << mode.BitIndex(x, y)
				on++
			}
		}
	}

	dots := bits.OnesCount8(pattern)
	if pattern != 0 && dots < opts.MinDots {
		return flatCell(mode, block)
	}

	// One side of the split can end up empty (a flat-luminance block under
	// dithering, say); both colors then take the side that has pixels.
	switch on {
	case 0:
		fg = bg
	case len(block.Pix):
		bg = fg
	}

	return CellResult{
		Glyph: mode.Glyph(pattern),
		Bits:  pattern,
		FG:    fg,
		BG:    bg,
		Dots:  dots,
	}
}
