// Package img2oc converts raster images into character-cell art for
// OpenComputers-style terminals. Every output cell is one glyph (a braille
// dot pattern, a quadrant block or an upper half block) with a foreground
// and a background color chosen to approximate the source pixels under it.
//
// A conversion runs in two passes. The first pass is independent per cell:
// the cell's pixels are clustered into two colors, each pixel is assigned to
// one of them (nearest color or ordered dithering), and the resulting bit
// pattern is mapped to a glyph. The second pass needs the finished grid and
// flattens inked cells that have too few inked neighbors. The resulting
// Frame is serialized as a Lua scene table by EncodeScene.
package img2oc

import "errors"

var (
	// ErrInvalidCellSize is returned when the target grid width or height
	// is not positive.
	ErrInvalidCellSize = errors.New("cell grid width and height must be positive")

	// ErrDimensionMismatch is returned when a pixel buffer is not an exact
	// multiple of the render mode's cell size.
	ErrDimensionMismatch = errors.New("image size is not a multiple of the cell size")

	// ErrUnknownMode is returned by ParseMode for unrecognized names.
	ErrUnknownMode = errors.New("unknown render mode")

	// ErrUnknownFormat is returned by ParseFormat for unrecognized names
	// and by WriteFrame for formats that are not text.
	ErrUnknownFormat = errors.New("unknown output format")

	// ErrEmptyFrame is returned when encoding a frame without cells.
	ErrEmptyFrame = errors.New("frame has no cells")
)
