package imageutil

import (
	"image"
	"image/color"
	"math"

	"golang.org/x/image/draw"
)

// Interpolation specifies the interpolation method for resizing.
type Interpolation int

const (
	// InterpolationArea uses Catmull-Rom for high-quality downscaling.
	InterpolationArea Interpolation = iota

	// InterpolationLinear uses bilinear interpolation.
	InterpolationLinear

	// InterpolationNearest uses nearest-neighbor interpolation.
	// Fastest but lowest quality.
	InterpolationNearest
)

func (interp Interpolation) scaler() draw.Scaler {
	switch interp {
	case InterpolationLinear:
		return draw.BiLinear
	case InterpolationNearest:
		return draw.NearestNeighbor
	default:
		return draw.CatmullRom
	}
}

// Resize resizes an image to the specified dimensions using the given
// interpolation method. Source pixels replace the destination, alpha
// included.
func Resize(img *Image, width, height int, interp Interpolation) *Image {
	dst := NewImage(width, height)
	interp.scaler().Scale(dst.NRGBA, dst.Bounds(), img.NRGBA, img.Bounds(), draw.Src, nil)
	return dst
}

// Letterbox scales img to fit inside width x height without changing its
// aspect ratio and centres it on an opaque black canvas of exactly that
// size. The scaled image is always at least one pixel on each side.
func Letterbox(img *Image, width, height int) *Image {
	scale := math.Min(float64(width)/float64(img.Width()),
		float64(height)/float64(img.Height()))
	scale = math.Max(scale, 1e-6)
	rw := max(1, int(float64(img.Width())*scale))
	rh := max(1, int(float64(img.Height())*scale))
	resized := Resize(img, rw, rh, InterpolationArea)

	canvas := NewFilledImage(width, height, color.NRGBA{A: 255})
	offset := image.Pt((width-rw)/2, (height-rh)/2)
	draw.Copy(canvas.NRGBA, offset, resized.NRGBA, resized.Bounds(), draw.Src, nil)
	return canvas
}

// AspectHeight returns the pixel height that keeps img's proportions on a
// display whose character cells are charAspect times taller than wide, for
// a pixel width of width and a cell of cellW x cellH pixels. The result is
// never less than cellH.
func AspectHeight(imgW, imgH, width, cellW, cellH int, charAspect float64) int {
	ratio := float64(imgH) / float64(imgW)
	h := int(math.RoundToEven(float64(width) * ratio *
		(float64(cellH) / float64(cellW)) / charAspect))
	return max(h, cellH)
}

// ResizeToAspect resizes img to width pixels wide, with the height chosen by
// AspectHeight, then stretches it with nearest-neighbor sampling up to the
// next multiple of the cell size.
func ResizeToAspect(img *Image, width, cellW, cellH int, charAspect float64) *Image {
	height := AspectHeight(img.Width(), img.Height(), width, cellW, cellH, charAspect)
	resized := Resize(img, width, height, InterpolationArea)
	return PadToMultiple(resized, cellW, cellH)
}

// PadToMultiple stretches img so both sides are multiples of cellW and
// cellH. Images that already fit are returned unchanged.
func PadToMultiple(img *Image, cellW, cellH int) *Image {
	w, h := img.Width(), img.Height()
	padW := (cellW - w%cellW) % cellW
	padH := (cellH - h%cellH) % cellH
	if padW == 0 && padH == 0 {
		return img
	}
	return Resize(img, w+padW, h+padH, InterpolationNearest)
}
