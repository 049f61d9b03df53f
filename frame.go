package img2oc

import "strings"

// Frame is a rendered grid of cells. Every row holds exactly Width cells
// and there are exactly Height rows.
type Frame struct {
	Mode   Mode
	Width  int
	Height int
	Cells  [][]CellResult

	// Suppressed counts the cells flattened by SuppressNoise.
	Suppressed int
}

// FrameStats summarizes a frame's content.
type FrameStats struct {
	Cells      int // total cells
	Inked      int // cells with a nonzero bit pattern
	Blank      int // cells drawn with the mode's blank glyph
	Dots       int // total foreground bits over all cells
	Suppressed int // cells flattened by noise suppression
}

// NewFrame allocates a width x height frame of zero cells.
func NewFrame(mode Mode, width, height int) *Frame {
	cells := make([][]CellResult, height)
	for y := range cells {
		cells[y] = make([]CellResult, width)
	}
	return &Frame{Mode: mode, Width: width, Height: height, Cells: cells}
}

// At returns the cell at column x, row y.
func (f *Frame) At(x, y int) CellResult {
	return f.Cells[y][x]
}

// Clone returns a deep copy of the frame.
func (f *Frame) Clone() *Frame {
	clone := NewFrame(f.Mode, f.Width, f.Height)
	for y, row := range f.Cells {
		copy(clone.Cells[y], row)
	}
	clone.Suppressed = f.Suppressed
	return clone
}

// Chars returns one string per row, each holding Width glyphs.
func (f *Frame) Chars() []string {
	lines := make([]string, f.Height)
	var sb strings.Builder
	for y, row := range f.Cells {
		sb.Reset()
		for _, cell := range row {
			sb.WriteRune(cell.Glyph)
		}
		lines[y] = sb.String()
	}
	return lines
}

// Foreground returns the packed 0xRRGGBB foreground color of every cell.
func (f *Frame) Foreground() [][]uint32 {
	return f.packed(func(c CellResult) Color { return c.FG })
}

// Background returns the packed 0xRRGGBB background color of every cell.
func (f *Frame) Background() [][]uint32 {
	return f.packed(func(c CellResult) Color { return c.BG })
}

func (f *Frame) packed(pick func(CellResult) Color) [][]uint32 {
	rows := make([][]uint32, f.Height)
	for y, row := range f.Cells {
		rows[y] = make([]uint32, len(row))
		for x, cell := range row {
			rows[y][x] = pick(cell).Uint32()
		}
	}
	return rows
}

// Stats counts inked and blank cells and the total number of dots.
func (f *Frame) Stats() FrameStats {
	stats := FrameStats{Cells: f.Width * f.Height, Suppressed: f.Suppressed}
	blank := f.Mode.Blank()
	for _, row := range f.Cells {
		for _, cell := range row {
			if cell.Inked() {
				stats.Inked++
			}
			if f.Mode.Patterned() && cell.Glyph == blank {
				stats.Blank++
			}
			stats.Dots += cell.Dots
		}
	}
	return stats
}
