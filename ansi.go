package img2oc

import (
	"fmt"
	"io"
	"strings"
)

// ESC is the escape character that starts ANSI control sequences.
const ESC = "\u001b"

// ansiReset clears all attributes at the end of a line.
const ansiReset = ESC + "[0m"

// formatANSICode formats a 24-bit foreground and background color pair
// followed by the glyphs drawn in it.
func formatANSICode(fg, bg Color, glyphs string) string {
	fr, fgG, fb := fg.RGB8()
	br, bgG, bb := bg.RGB8()
	return fmt.Sprintf("%s[38;2;%d;%d;%d;48;2;%d;%d;%dm%s",
		ESC, fr, fgG, fb, br, bgG, bb, glyphs)
}

// ANSIString renders f as truecolor ANSI text for terminal preview.
// Adjacent cells on a line that share both colors are emitted under a
// single escape sequence, and every line ends with a reset.
func ANSIString(f *Frame) string {
	var out strings.Builder
	var run strings.Builder

	for _, row := range f.Cells {
		run.Reset()
		var currentFG, currentBG Color
		for x, cell := range row {
			if x > 0 && (cell.FG.Uint32() != currentFG.Uint32() ||
				cell.BG.Uint32() != currentBG.Uint32()) {
				out.WriteString(formatANSICode(currentFG, currentBG, run.String()))
				run.Reset()
			}
			if run.Len() == 0 {
				currentFG, currentBG = cell.FG, cell.BG
			}
			run.WriteRune(cell.Glyph)
		}
		if run.Len() > 0 {
			out.WriteString(formatANSICode(currentFG, currentBG, run.String()))
		}
		out.WriteString(ansiReset)
		out.WriteByte('\n')
	}

	return out.String()
}

// WriteANSI writes the ANSI rendering of f to w.
func WriteANSI(w io.Writer, f *Frame) error {
	_, err := io.WriteString(w, ANSIString(f))
	return err
}
