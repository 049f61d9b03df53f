package img2oc

import "math"

// bayer4x4 is the ordered dithering threshold matrix, indexed [row][column].
// Thresholds are bayer4x4[y%4][x%4] / 16.
var bayer4x4 = [4][4]int{
	{0, 8, 2, 10},
	{12, 4, 14, 6},
	{3, 11, 1, 9},
	{15, 7, 13, 5},
}

// bayerThreshold returns the normalized threshold in [0, 1) for the pixel
// at column x, row y.
func bayerThreshold(x, y int) float64 {
	return float64(bayer4x4[y%4][x%4]) / 16.0
}

// IsForeground decides whether a pixel belongs to the foreground color of
// its cell. x and y are the pixel's position inside the cell.
//
// When bg and fg are identical nothing can be distinguished and the pixel is
// background. Without dithering the pixel joins the nearer color, with ties
// going to the foreground. With dithering the pixel's luminance is placed
// on the bg..fg ramp, clamped to [0, 1], and compared against the Bayer
// threshold for its position.
func IsForeground(c, bg, fg Color, x, y int, dither bool) bool {
	if bg == fg {
		return false
	}

	if !dither {
		return c.DistanceSquared(fg) <= c.DistanceSquared(bg)
	}

	lumBG := bg.Luminance()
	delta := fg.Luminance() - lumBG
	if math.Abs(delta) < epsilon {
		delta = epsilon
	}
	t := (c.Luminance() - lumBG) / delta
	t = math.Max(0, math.Min(1, t))
	return t >= bayerThreshold(x, y)
}
