package img2oc

// Quadrants represents the four quadrants of a 2x2 block glyph. Each
// quadrant is true when it is painted with the foreground color and false
// when it shows the background color.
type Quadrants struct {
	TopLeft     bool
	TopRight    bool
	BottomLeft  bool
	BottomRight bool
}

type blockDef struct {
	Rune rune
	Quad Quadrants
}

// blocks is indexed by quadrant bit pattern:
// bit 3: top-left, bit 2: top-right, bit 1: bottom-left, bit 0: bottom-right
var blocks = [16]blockDef{
	{' ', Quadrants{false, false, false, false}}, // 0000: Empty space
	{'▗', Quadrants{false, false, false, true}},  // 0001: Quadrant lower right
	{'▖', Quadrants{false, false, true, false}},  // 0010: Quadrant lower left
	{'▄', Quadrants{false, false, true, true}},   // 0011: Lower half block
	{'▝', Quadrants{false, true, false, false}},  // 0100: Quadrant upper right
	{'▐', Quadrants{false, true, false, true}},   // 0101: Right half block
	{'▞', Quadrants{false, true, true, false}},   // 0110: Diagonal upper right and lower left
	{'▟', Quadrants{false, true, true, true}},    // 0111: Three quadrants: upper right, lower left, lower right
	{'▘', Quadrants{true, false, false, false}},  // 1000: Quadrant upper left
	{'▚', Quadrants{true, false, false, true}},   // 1001: Diagonal upper left and lower right
	{'▌', Quadrants{true, false, true, false}},   // 1010: Left half block
	{'▙', Quadrants{true, false, true, true}},    // 1011: Three quadrants: upper left, lower left, lower right
	{'▀', Quadrants{true, true, false, false}},   // 1100: Upper half block
	{'▜', Quadrants{true, true, false, true}},    // 1101: Three quadrants: upper left, upper right, lower right
	{'▛', Quadrants{true, true, true, false}},    // 1110: Three quadrants: upper left, upper right, lower left
	{'█', Quadrants{true, true, true, true}},     // 1111: Full block
}

// quadrantsForBits returns the painted quadrants of a 4-bit pattern.
func quadrantsForBits(bits uint8) Quadrants {
	return blocks[bits&0x0f].Quad
}

// isQuadrantActive returns true if the quadrant at column x, row y of a
// 2x2 block is painted with the foreground color.
func isQuadrantActive(quad Quadrants, x, y int) bool {
	switch {
	case x == 0 && y == 0:
		return quad.TopLeft
	case x == 1 && y == 0:
		return quad.TopRight
	case x == 0 && y == 1:
		return quad.BottomLeft
	case x == 1 && y == 1:
		return quad.BottomRight
	}
	return false
}
