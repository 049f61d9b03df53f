package img2oc

import (
	"fmt"
	"image"
	"image/draw"
	"os"

	"github.com/golang/freetype"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"

	"github.com/wbrown/img2oc/imageutil"
)

const (
	// GlyphWidth and GlyphHeight define the character cell size of a
	// font rendered preview.
	GlyphWidth  = 8
	GlyphHeight = 16
)

// GlyphBitmap is a GlyphWidth x GlyphHeight character mask, one row per
// byte. A set bit is a foreground pixel.
type GlyphBitmap [GlyphHeight]uint8

func (g GlyphBitmap) getBit(x, y int) bool {
	if x < 0 || x >= GlyphWidth || y < 0 || y >= GlyphHeight {
		return false
	}
	return g[y]&(1<<x) != 0
}

func (g *GlyphBitmap) setBit(x, y int, value bool) {
	if x < 0 || x >= GlyphWidth || y < 0 || y >= GlyphHeight {
		return
	}
	if value {
		g[y] |= 1 << x
	} else {
		g[y] &^= 1 << x
	}
}

// FontBitmaps holds pre-rendered bitmaps for every glyph a frame can
// contain, rendered from a primary font and an optional fallback.
type FontBitmaps struct {
	glyphs   map[rune]GlyphBitmap
	fallback map[rune]GlyphBitmap
	name     string
}

// frameRunes lists every glyph the render modes produce.
func frameRunes() []rune {
	runes := make([]rune, 0, 256+len(blocks)+1)
	for bits := 0; bits < 256; bits++ {
		runes = append(runes, brailleBase+rune(bits))
	}
	for _, b := range blocks {
		runes = append(runes, b.Rune)
	}
	return append(runes, upperHalfBlock)
}

// LoadFontBitmaps pre-renders the frame glyphs from TrueType fonts.
// fallbackPath may be empty.
func LoadFontBitmaps(primaryPath, fallbackPath string) (*FontBitmaps, error) {
	primaryFont, err := loadFont(primaryPath)
	if err != nil {
		return nil, err
	}

	var fallbackFont *truetype.Font
	if fallbackPath != "" {
		if fallbackFont, err = loadFont(fallbackPath); err != nil {
			return nil, err
		}
	}

	fb := &FontBitmaps{
		glyphs:   make(map[rune]GlyphBitmap),
		fallback: make(map[rune]GlyphBitmap),
		name:     primaryPath,
	}
	for _, r := range frameRunes() {
		if primaryFont.Index(r) != 0 || r == ' ' {
			fb.glyphs[r] = renderGlyphToBitmap(primaryFont, r)
		} else if fallbackFont != nil && fallbackFont.Index(r) != 0 {
			fb.fallback[r] = renderGlyphToBitmap(fallbackFont, r)
		}
	}
	return fb, nil
}

func loadFont(path string) (*truetype.Font, error) {
	fontBytes, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read font: %w", err)
	}

	f, err := freetype.ParseFont(fontBytes)
	if err != nil {
		return nil, fmt.Errorf("failed to parse font %s: %w", path, err)
	}
	return f, nil
}

// renderGlyphToBitmap renders one glyph into a GlyphBitmap. Pixels above
// 25% coverage count as foreground so thin strokes and braille dots
// survive thresholding. The baseline is placed from the font's ascent and
// descent.
func renderGlyphToBitmap(ttfFont *truetype.Font, r rune) GlyphBitmap {
	face := truetype.NewFace(ttfFont, &truetype.Options{
		Size:    float64(GlyphHeight),
		DPI:     72,
		Hinting: font.HintingFull,
	})
	defer face.Close()

	img := image.NewAlpha(image.Rect(0, 0, GlyphWidth, GlyphHeight))

	ctx := freetype.NewContext()
	ctx.SetDPI(72)
	ctx.SetFont(ttfFont)
	ctx.SetFontSize(float64(GlyphHeight))
	ctx.SetClip(img.Bounds())
	ctx.SetDst(img)
	ctx.SetSrc(image.White)
	ctx.SetHinting(font.HintingFull)

	metrics := face.Metrics()
	ascent := metrics.Ascent.Round()
	descent := metrics.Descent.Round()
	baselineY := (GlyphHeight + ascent - descent) / 2

	if _, err := ctx.DrawString(string(r), freetype.Pt(0, baselineY)); err != nil {
		return GlyphBitmap{}
	}

	var bitmap GlyphBitmap
	for y := 0; y < GlyphHeight; y++ {
		for x := 0; x < GlyphWidth; x++ {
			if img.AlphaAt(x, y).A > 64 {
				bitmap.setBit(x, y, true)
			}
		}
	}
	return bitmap
}

// GetGlyph returns the bitmap for a character, checking the fallback font
// if the primary font lacks it.
func (fb *FontBitmaps) GetGlyph(r rune) (GlyphBitmap, bool) {
	if bitmap, exists := fb.glyphs[r]; exists {
		return bitmap, true
	}
	if bitmap, exists := fb.fallback[r]; exists {
		return bitmap, true
	}
	return GlyphBitmap{}, false
}

// Name returns the path of the primary font.
func (fb *FontBitmaps) Name() string {
	return fb.name
}

// RenderFrame draws f the way a terminal with this font would show it.
// Glyphs missing from both fonts are drawn as background.
func (fb *FontBitmaps) RenderFrame(f *Frame, scale int) *imageutil.Image {
	scale = max(1, scale)
	charW, charH := GlyphWidth*scale, GlyphHeight*scale
	img := imageutil.NewImage(f.Width*charW, f.Height*charH)

	for y, row := range f.Cells {
		for x, cell := range row {
			fb.renderChar(img, cell, x*charW, y*charH, scale)
		}
	}
	return img
}

func (fb *FontBitmaps) renderChar(img *imageutil.Image, cell CellResult, startX, startY, scale int) {
	fg, bg := toNRGBA(cell.FG), toNRGBA(cell.BG)

	bitmap, ok := fb.GetGlyph(cell.Glyph)
	if !ok {
		rect := image.Rect(startX, startY, startX+GlyphWidth*scale, startY+GlyphHeight*scale)
		draw.Draw(img.NRGBA, rect, image.NewUniform(bg), image.Point{}, draw.Src)
		return
	}

	for y := 0; y < GlyphHeight; y++ {
		for x := 0; x < GlyphWidth; x++ {
			c := bg
			if bitmap.getBit(x, y) {
				c = fg
			}
			x0, y0 := startX+x*scale, startY+y*scale
			fillRect(img, image.Rect(x0, y0, x0+scale, y0+scale), c)
		}
	}
}
