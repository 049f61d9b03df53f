package img2oc

import (
	"image"
	"image/color"

	"github.com/wbrown/img2oc/imageutil"
)

// subpixelIsForeground reports whether the sub-pixel at column x, row y of
// a cell is painted with the foreground color.
func subpixelIsForeground(mode Mode, cell CellResult, x, y int) bool {
	switch mode.(type) {
	case HalfBlock:
		return y == 0
	case Quadrant:
		return isQuadrantActive(quadrantsForBits(cell.Bits), x, y)
	}
	return cell.Bits&(1<<mode.BitIndex(x, y)) != 0
}

func toNRGBA(c Color) color.NRGBA {
	r, g, b := c.RGB8()
	return color.NRGBA{R: r, G: g, B: b, A: 255}
}

// RenderPreview draws f back into pixels. Each cell covers its mode's
// cell size multiplied by scale, and every sub-pixel takes the cell's
// foreground or background color according to the cell's bit pattern.
// With scale 1 the preview has the dimensions of the rendered image.
func RenderPreview(f *Frame, scale int) *imageutil.Image {
	scale = max(1, scale)
	cw, ch := f.Mode.CellSize()
	img := imageutil.NewImage(f.Width*cw*scale, f.Height*ch*scale)

	for cy, row := range f.Cells {
		for cx, cell := range row {
			fg, bg := toNRGBA(cell.FG), toNRGBA(cell.BG)
			for sy := 0; sy < ch; sy++ {
				for sx := 0; sx < cw; sx++ {
					c := bg
					if subpixelIsForeground(f.Mode, cell, sx, sy) {
						c = fg
					}
					x0 := (cx*cw + sx) * scale
					y0 := (cy*ch + sy) * scale
					fillRect(img, image.Rect(x0, y0, x0+scale, y0+scale), c)
				}
			}
		}
	}
	return img
}

// SavePreviewPNG writes RenderPreview(f, scale) to a PNG file.
func SavePreviewPNG(f *Frame, path string, scale int) error {
	return imageutil.SavePNG(RenderPreview(f, scale), path)
}

func fillRect(img *imageutil.Image, r image.Rectangle, c color.NRGBA) {
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
}
