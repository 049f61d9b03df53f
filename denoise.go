package img2oc

// neighborOffsets lists the 8-neighborhood of a cell.
var neighborOffsets = [8][2]int{
	{-1, -1}, {0, -1}, {1, -1},
	{-1, 0}, {1, 0},
	{-1, 1}, {0, 1}, {1, 1},
}

// inkedNeighbors counts the inked cells around (x, y), clipped at the frame
// edges.
func inkedNeighbors(f *Frame, x, y int) int {
	count := 0
	for _, off := range neighborOffsets {
		nx, ny := x+off[0], y+off[1]
		if nx < 0 || ny < 0 || nx >= f.Width || ny >= f.Height {
			continue
		}
		if f.Cells[ny][nx].Inked() {
			count++
		}
	}
	return count
}

// SuppressNoise flattens isolated marks. Every inked cell with fewer than
// minNeighbors inked neighbors loses its bit pattern: its glyph becomes the
// mode's blank glyph and its foreground takes its background color. Cells
// without bits are left untouched.
//
// Neighbors are always read from src, and the result is written to a new
// frame, so the outcome does not depend on visiting order. The number of
// flattened cells is returned alongside and added to the new frame's
// Suppressed count.
func SuppressNoise(src *Frame, minNeighbors int) (*Frame, int) {
	dst := src.Clone()
	if minNeighbors <= 0 || !src.Mode.Patterned() {
		return dst, 0
	}

	flattened := 0
	blank := src.Mode.Blank()
	for y := 0; y < src.Height; y++ {
		for x := 0; x < src.Width; x++ {
			cell := src.Cells[y][x]
			if !cell.Inked() || inkedNeighbors(src, x, y) >= minNeighbors {
				continue
			}
			dst.Cells[y][x] = CellResult{
				Glyph: blank,
				FG:    cell.BG,
				BG:    cell.BG,
			}
			flattened++
		}
	}
	dst.Suppressed += flattened
	return dst, flattened
}
