package img2oc

import (
	"math"
)

const epsilon = 0.000001 // For floating-point comparisons

// Color represents a color in linear RGB with each channel nominally in
// [0, 255]. Channels are real valued so that cluster means computed over a
// cell are not truncated between iterations; they are only rounded when a
// color is packed for output.
type Color struct {
	R, G, B float64
}

// Black is the zero color, returned for degenerate (empty) inputs.
var Black = Color{}

// ColorFromRGBA composites a straight-alpha pixel onto a black backdrop,
// scaling each channel by alpha/255 and truncating toward zero. The output
// format has no per-pixel transparency, so this happens before any
// clustering.
func ColorFromRGBA(r, g, b, a uint8) Color {
	alpha := float64(a) / 255.0
	return Color{
		R: math.Trunc(float64(r) * alpha),
		G: math.Trunc(float64(g) * alpha),
		B: math.Trunc(float64(b) * alpha),
	}
}

// colorFromUint32 unpacks a 0xRRGGBB value.
func colorFromUint32(c uint32) Color {
	return Color{
		R: float64(uint8(c >> 16)),
		G: float64(uint8(c >> 8)),
		B: float64(uint8(c)),
	}
}

// Luminance returns the Rec. 709 relative luminance of the color.
func (c Color) Luminance() float64 {
	return 0.2126*c.R + 0.7152*c.G + 0.0722*c.B
}

// DistanceSquared returns the squared Euclidean distance between two colors
// in RGB space.
func (c Color) DistanceSquared(other Color) float64 {
	dr := c.R - other.R
	dg := c.G - other.G
	db := c.B - other.B
	return dr*dr + dg*dg + db*db
}

// Distance returns the Euclidean distance between two colors. The largest
// possible value, between black and white, is about 441.67.
func (c Color) Distance(other Color) float64 {
	return math.Sqrt(c.DistanceSquared(other))
}

// Uint32 packs the color as (red<<16)|(green<<8)|blue. Channels are rounded
// half to even and clamped to [0, 255].
func (c Color) Uint32() uint32 {
	return uint32(channelByte(c.R))<<16 |
		uint32(channelByte(c.G))<<8 |
		uint32(channelByte(c.B))
}

// RGB8 returns the rounded 8-bit channels of the color.
func (c Color) RGB8() (r, g, b uint8) {
	return channelByte(c.R), channelByte(c.G), channelByte(c.B)
}

func channelByte(v float64) uint8 {
	v = math.RoundToEven(v)
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}

// averageColor returns the component-wise mean of colors, or Black when
// colors is empty.
func averageColor(colors []Color) Color {
	if len(colors) == 0 {
		return Black
	}
	var sum Color
	for _, c := range colors {
		sum.R += c.R
		sum.G += c.G
		sum.B += c.B
	}
	n := float64(len(colors))
	return Color{R: sum.R / n, G: sum.G / n, B: sum.B / n}
}
