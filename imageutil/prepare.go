package imageutil

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidTarget is returned when a preparation target has no pixels.
var ErrInvalidTarget = errors.New("invalid target size")

// Fit selects how a source image is mapped onto the cell grid.
type Fit int

const (
	// FitLetterbox scales the image into a fixed chars_width x chars_height
	// grid and pads the rest with black.
	FitLetterbox Fit = iota

	// FitAspect resizes to a fixed pixel width and derives the grid height
	// from the image proportions and the display's character aspect.
	FitAspect
)

func (f Fit) String() string {
	if f == FitAspect {
		return "aspect"
	}
	return "letterbox"
}

// ParseFit accepts "letterbox" and "aspect".
func ParseFit(name string) (Fit, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "letterbox":
		return FitLetterbox, nil
	case "aspect":
		return FitAspect, nil
	}
	return FitLetterbox, fmt.Errorf("unknown fit %q (options are letterbox, aspect)", name)
}

// PrepareOptions describes how to bring a decoded image to a size the cell
// converter accepts.
type PrepareOptions struct {
	Fit Fit

	// CharsWidth and CharsHeight are the letterbox grid size in cells.
	CharsWidth  int
	CharsHeight int

	// PixelWidth and CharAspect drive FitAspect.
	PixelWidth int
	CharAspect float64

	Channel Channel
	Sharpen bool
}

// PrepareForCells resizes img so that it divides exactly into cells of
// cellW x cellH pixels, then applies the optional channel extraction and
// sharpening. The input image is never modified.
func PrepareForCells(img *Image, cellW, cellH int, opts PrepareOptions) (*Image, error) {
	if img.Width() == 0 || img.Height() == 0 {
		return nil, fmt.Errorf("%w: source image is empty", ErrInvalidTarget)
	}

	var prepared *Image
	switch opts.Fit {
	case FitAspect:
		if opts.PixelWidth <= 0 || opts.CharAspect <= 0 {
			return nil, fmt.Errorf("%w: pixel width %d, char aspect %g",
				ErrInvalidTarget, opts.PixelWidth, opts.CharAspect)
		}
		prepared = ResizeToAspect(img, opts.PixelWidth, cellW, cellH, opts.CharAspect)
	default:
		if opts.CharsWidth <= 0 || opts.CharsHeight <= 0 {
			return nil, fmt.Errorf("%w: %dx%d cells",
				ErrInvalidTarget, opts.CharsWidth, opts.CharsHeight)
		}
		prepared = Letterbox(img, opts.CharsWidth*cellW, opts.CharsHeight*cellH)
	}

	if opts.Channel != ChannelNone {
		prepared = ExtractChannel(prepared, opts.Channel)
	}
	if opts.Sharpen {
		prepared = Sharpen(prepared)
	}
	return prepared, nil
}
