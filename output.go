package img2oc

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/wbrown/img2oc/imageutil"
)

// Format names an output encoding for a frame.
type Format string

const (
	FormatScene   Format = "scene"   // Lua scene table
	FormatMakepic Format = "makepic" // OpenOS draw script
	FormatText    Format = "text"    // glyph rows only
	FormatANSI    Format = "ansi"    // truecolor terminal preview
	FormatPNG     Format = "png"     // pixel preview
)

// ParseFormat returns the format for a configuration name.
func ParseFormat(name string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(name))); f {
	case FormatScene, FormatMakepic, FormatText, FormatANSI, FormatPNG:
		return f, nil
	case "lua":
		return FormatScene, nil
	case "txt":
		return FormatText, nil
	}
	return "", fmt.Errorf("%w: %q (options are scene, makepic, text, ansi, png)",
		ErrUnknownFormat, name)
}

// FormatForPath guesses a format from a file extension, falling back to
// FormatScene.
func FormatForPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return FormatPNG
	case ".txt":
		return FormatText
	case ".ans", ".ansi":
		return FormatANSI
	}
	return FormatScene
}

// SaveOptions tunes the encoders used by WriteFrame and SaveFrame.
type SaveOptions struct {
	// PicPath is the OpenOS path the makepic script saves the screen to.
	PicPath string

	// PreviewScale multiplies the size of PNG previews.
	PreviewScale int

	// Fonts, when set, renders PNG previews through glyph bitmaps instead
	// of drawing the cell sub-pixels.
	Fonts *FontBitmaps
}

// WriteFrame encodes f to w in a text format.
func WriteFrame(w io.Writer, f *Frame, format Format, opts SaveOptions) error {
	switch format {
	case FormatScene:
		return EncodeScene(w, f)
	case FormatMakepic:
		return EncodeMakepic(w, f, opts.PicPath)
	case FormatText:
		return WriteText(w, f)
	case FormatANSI:
		return WriteANSI(w, f)
	}
	return fmt.Errorf("%w: %q cannot be written as text", ErrUnknownFormat, format)
}

// SaveFrame writes f to path in the given format.
func SaveFrame(path string, f *Frame, format Format, opts SaveOptions) error {
	if format == FormatPNG {
		if opts.Fonts != nil {
			return imageutil.SavePNG(opts.Fonts.RenderFrame(f, opts.PreviewScale), path)
		}
		return SavePreviewPNG(f, path, opts.PreviewScale)
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output: %w", err)
	}
	w := bufio.NewWriter(file)
	if err := WriteFrame(w, f, format, opts); err != nil {
		file.Close()
		return err
	}
	if err := w.Flush(); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}
