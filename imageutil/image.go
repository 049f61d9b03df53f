// Package imageutil provides the pure Go image handling used ahead of cell
// conversion: decoding, resizing to a cell grid, channel extraction and
// sharpening.
package imageutil

import (
	"image"
	"image/color"
	"image/draw"
)

// RGB represents a color in the RGB color space with 8-bit channels.
type RGB struct {
	R, G, B uint8
}

// ToColor converts RGB to an opaque color.NRGBA.
func (rgb RGB) ToColor() color.NRGBA {
	return color.NRGBA{R: rgb.R, G: rgb.G, B: rgb.B, A: 255}
}

// Image wraps image.NRGBA. Channels are stored unpremultiplied so the
// converter can composite alpha itself.
type Image struct {
	*image.NRGBA
}

// NewImage creates a transparent image with the specified dimensions.
func NewImage(width, height int) *Image {
	return &Image{
		NRGBA: image.NewNRGBA(image.Rect(0, 0, width, height)),
	}
}

// NewFilledImage creates an image filled with a single color.
func NewFilledImage(width, height int, c color.NRGBA) *Image {
	img := NewImage(width, height)
	draw.Draw(img.NRGBA, img.Bounds(), image.NewUniform(c), image.Point{}, draw.Src)
	return img
}

// FromImage converts any image.Image to an Image whose bounds start at the
// origin.
func FromImage(src image.Image) *Image {
	bounds := src.Bounds()
	img := NewImage(bounds.Dx(), bounds.Dy())
	draw.Draw(img.NRGBA, img.Bounds(), src, bounds.Min, draw.Src)
	return img
}

// Width returns the image width.
func (img *Image) Width() int {
	return img.Bounds().Dx()
}

// Height returns the image height.
func (img *Image) Height() int {
	return img.Bounds().Dy()
}

// GetRGB returns the RGB value at (x, y), ignoring alpha.
func (img *Image) GetRGB(x, y int) RGB {
	c := img.NRGBAAt(x, y)
	return RGB{R: c.R, G: c.G, B: c.B}
}

// SetRGB sets an opaque RGB value at (x, y).
func (img *Image) SetRGB(x, y int, c RGB) {
	img.SetNRGBA(x, y, c.ToColor())
}

// Clone creates a deep copy of the image.
func (img *Image) Clone() *Image {
	clone := NewImage(img.Width(), img.Height())
	for y := 0; y < img.Height(); y++ {
		src := img.Pix[img.PixOffset(img.Rect.Min.X, img.Rect.Min.Y+y):]
		copy(clone.Pix[y*clone.Stride:(y+1)*clone.Stride], src)
	}
	return clone
}
