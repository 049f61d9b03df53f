package img2oc

import (
	"fmt"

	"github.com/wbrown/img2oc/imageutil"
)

// Block is the pixel block covered by one cell, stored row-major. Blocks
// are read-only inputs to clustering.
type Block struct {
	W, H int
	Pix  []Color
}

// At returns the color at column x, row y of the block.
func (b Block) At(x, y int) Color {
	return b.Pix[y*b.W+x]
}

// CellBlock extracts the block for cell (cx, cy) from img, compositing each
// pixel onto black. The image must already satisfy checkDimensions.
func CellBlock(img *imageutil.Image, mode Mode, cx, cy int) Block {
	w, h := mode.CellSize()
	block := Block{W: w, H: h, Pix: make([]Color, w*h)}
	x0, y0 := cx*w, cy*h
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := img.NRGBAAt(x0+x, y0+y)
			block.Pix[y*w+x] = ColorFromRGBA(c.R, c.G, c.B, c.A)
		}
	}
	return block
}

// gridSize returns the cell grid dimensions for img, failing when the image
// is not an exact multiple of the mode's cell size.
func gridSize(img *imageutil.Image, mode Mode) (width, height int, err error) {
	cw, ch := mode.CellSize()
	pw, ph := img.Width(), img.Height()
	if pw == 0 || ph == 0 {
		return 0, 0, fmt.Errorf("%w: image is empty", ErrDimensionMismatch)
	}
	if pw%cw != 0 || ph%ch != 0 {
		return 0, 0, fmt.Errorf("%w: %dx%d pixels, %s cells are %dx%d",
			ErrDimensionMismatch, pw, ph, mode.Name(), cw, ch)
	}
	return pw / cw, ph / ch, nil
}
