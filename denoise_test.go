package img2oc

import (
	"math/rand"
	"testing"
	"testing/quick"

	"github.com/google/go-cmp/cmp"
)

// inkedFrame builds a braille frame from a grid of bit patterns. Inked
// cells are white on black, empty cells are black.
func inkedFrame(grid [][]uint8) *Frame {
	f := NewFrame(ModeBraille, len(grid[0]), len(grid))
	for y, row := range grid {
		for x, b := range row {
			cell := CellResult{Glyph: ModeBraille.Glyph(b), Bits: b, BG: Black}
			if b != 0 {
				cell.FG = white
			}
			f.Cells[y][x] = cell
		}
	}
	return f
}

func TestSuppressNoiseIsolatedCell(t *testing.T) {
	src := inkedFrame([][]uint8{
		{0, 0, 0},
		{0, 0x09, 0},
		{0, 0, 0},
	})

	got, n := SuppressNoise(src, 2)
	if n != 1 || got.Suppressed != 1 {
		t.Fatalf("flattened %d (Suppressed %d), want 1", n, got.Suppressed)
	}
	want := CellResult{Glyph: '⠀', FG: Black, BG: Black}
	if diff := cmp.Diff(want, got.At(1, 1)); diff != "" {
		t.Errorf("center cell mismatch (-want +got):\n%s", diff)
	}
	if !src.At(1, 1).Inked() {
		t.Error("SuppressNoise modified its input")
	}
}

func TestSuppressNoiseKeepsSupportedCells(t *testing.T) {
	// Each cell of the L has exactly two inked neighbors.
	src := inkedFrame([][]uint8{
		{0x01, 0, 0},
		{0x01, 0x01, 0},
	})

	got, n := SuppressNoise(src, 2)
	if n != 0 {
		t.Errorf("flattened %d cells, want 0", n)
	}
	if diff := cmp.Diff(src, got); diff != "" {
		t.Errorf("frame changed (-want +got):\n%s", diff)
	}
}

func TestSuppressNoiseReadsOriginalGrid(t *testing.T) {
	// A horizontal run of three: the ends have one neighbor, the middle
	// has two. Only the ends are cleared. Clearing the first cell in place
	// would leave the middle with one inked neighbor and clear it too.
	src := inkedFrame([][]uint8{{0x03, 0x03, 0x03}})

	got, n := SuppressNoise(src, 2)
	if n != 2 {
		t.Fatalf("flattened %d cells, want 2", n)
	}
	want := []bool{false, true, false}
	for x, inked := range want {
		if got.At(x, 0).Inked() != inked {
			t.Errorf("cell %d inked = %v, want %v", x, got.At(x, 0).Inked(), inked)
		}
	}
	if !src.At(0, 0).Inked() {
		t.Error("source frame was modified")
	}
}

func TestSuppressNoiseDisabled(t *testing.T) {
	src := inkedFrame([][]uint8{{0, 0x09, 0}})
	got, n := SuppressNoise(src, 0)
	if n != 0 || !got.At(1, 0).Inked() {
		t.Error("min neighbors 0 should disable suppression")
	}
}

func TestSuppressNoiseLeavesBlankCells(t *testing.T) {
	// Cells without bits, including the ones a first pass flattened, come
	// through a second pass unchanged.
	f := func(seed int64, w, h uint8, minNeighbors uint8) bool {
		rng := rand.New(rand.NewSource(seed))
		width, height := int(w%12)+1, int(h%12)+1
		grid := make([][]uint8, height)
		for y := range grid {
			grid[y] = make([]uint8, width)
			for x := range grid[y] {
				if rng.Intn(3) == 0 {
					grid[y][x] = uint8(rng.Intn(255) + 1)
				}
			}
		}

		once, _ := SuppressNoise(inkedFrame(grid), int(minNeighbors%4))
		twice, _ := SuppressNoise(once, int(minNeighbors%4))
		for y := range once.Cells {
			for x, cell := range once.Cells[y] {
				if !cell.Inked() && twice.Cells[y][x] != cell {
					return false
				}
			}
		}
		return true
	}
	if err := quick.Check(f, nil); err != nil {
		t.Error(err)
	}
}

func TestSuppressNoiseSecondPassErodes(t *testing.T) {
	// A run of three: the ends have one neighbor each and go first, which
	// leaves the middle unsupported for the next pass.
	src := inkedFrame([][]uint8{{0x01, 0x01, 0x01}})

	once, n := SuppressNoise(src, 2)
	if n != 2 || !once.At(1, 0).Inked() {
		t.Fatalf("first pass flattened %d cells, want the two ends", n)
	}
	twice, n := SuppressNoise(once, 2)
	if n != 1 || twice.At(1, 0).Inked() {
		t.Errorf("second pass flattened %d cells, want the middle one", n)
	}
	if twice.Suppressed != 3 {
		t.Errorf("Suppressed = %d, want 3", twice.Suppressed)
	}
}
