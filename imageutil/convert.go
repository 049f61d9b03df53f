package imageutil

import (
	"fmt"
	"strings"
)

// Channel selects a single component to convert in isolation.
type Channel int

const (
	ChannelNone Channel = iota
	ChannelLuma
	ChannelRed
	ChannelGreen
	ChannelBlue
)

var channelNames = map[Channel]string{
	ChannelNone:  "none",
	ChannelLuma:  "luma",
	ChannelRed:   "r",
	ChannelGreen: "g",
	ChannelBlue:  "b",
}

func (c Channel) String() string {
	if name, ok := channelNames[c]; ok {
		return name
	}
	return fmt.Sprintf("Channel(%d)", int(c))
}

// ParseChannel accepts none, luma, r, g, b and the long color names.
func ParseChannel(name string) (Channel, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "none":
		return ChannelNone, nil
	case "luma", "gray", "grey":
		return ChannelLuma, nil
	case "r", "red":
		return ChannelRed, nil
	case "g", "green":
		return ChannelGreen, nil
	case "b", "blue":
		return ChannelBlue, nil
	}
	return ChannelNone, fmt.Errorf("unknown channel %q (options are none, luma, r, g, b)", name)
}

// luma is the BT.601 luminance of an 8-bit pixel, rounded.
func luma(r, g, b uint8) uint8 {
	// Integer math scaled by 1000
	lum := (299*int(r) + 587*int(g) + 114*int(b) + 500) / 1000
	if lum > 255 {
		lum = 255
	}
	return uint8(lum)
}

// ExtractChannel returns a new grey image holding one channel of img,
// written to all three color components. Alpha is preserved. The source is
// not modified. ChannelNone returns a copy.
func ExtractChannel(img *Image, ch Channel) *Image {
	dst := img.Clone()
	if ch == ChannelNone {
		return dst
	}

	for y := 0; y < dst.Height(); y++ {
		for x := 0; x < dst.Width(); x++ {
			c := dst.NRGBAAt(x, y)
			var v uint8
			switch ch {
			case ChannelLuma:
				v = luma(c.R, c.G, c.B)
			case ChannelRed:
				v = c.R
			case ChannelGreen:
				v = c.G
			case ChannelBlue:
				v = c.B
			}
			c.R, c.G, c.B = v, v, v
			dst.SetNRGBA(x, y, c)
		}
	}
	return dst
}
