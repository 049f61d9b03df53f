package imageutil

import (
	"errors"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestNewImage(t *testing.T) {
	img := NewImage(100, 50)
	if img.Width() != 100 {
		t.Errorf("Expected width 100, got %d", img.Width())
	}
	if img.Height() != 50 {
		t.Errorf("Expected height 50, got %d", img.Height())
	}
}

func TestImageGetSetRGB(t *testing.T) {
	img := NewImage(10, 10)
	c := RGB{R: 100, G: 150, B: 200}
	img.SetRGB(5, 5, c)

	got := img.GetRGB(5, 5)
	if got != c {
		t.Errorf("Expected %v, got %v", c, got)
	}
	if a := img.NRGBAAt(5, 5).A; a != 255 {
		t.Errorf("SetRGB should write opaque pixels, got alpha %d", a)
	}
}

func TestImageClone(t *testing.T) {
	img := NewImage(10, 10)
	img.SetRGB(5, 5, RGB{R: 255, G: 0, B: 0})

	clone := img.Clone()
	if clone.GetRGB(5, 5) != img.GetRGB(5, 5) {
		t.Error("Clone should have same pixel values")
	}

	// Modify clone, original should be unchanged
	clone.SetRGB(5, 5, RGB{R: 0, G: 255, B: 0})
	if img.GetRGB(5, 5).G != 0 {
		t.Error("Modifying clone should not affect original")
	}
}

func TestFromImageKeepsStraightAlpha(t *testing.T) {
	src := image.NewNRGBA(image.Rect(3, 3, 5, 5))
	src.SetNRGBA(3, 3, color.NRGBA{R: 200, G: 100, B: 50, A: 128})

	img := FromImage(src)
	if img.Width() != 2 || img.Height() != 2 {
		t.Fatalf("Expected 2x2, got %dx%d", img.Width(), img.Height())
	}
	want := color.NRGBA{R: 200, G: 100, B: 50, A: 128}
	if got := img.NRGBAAt(0, 0); got != want {
		t.Errorf("Expected %v at origin, got %v", want, got)
	}
}

func TestResize(t *testing.T) {
	img := CreateGradientImage(100, 100)

	// Downscale
	resized := Resize(img, 50, 50, InterpolationArea)
	if resized.Width() != 50 || resized.Height() != 50 {
		t.Errorf("Expected 50x50, got %dx%d", resized.Width(), resized.Height())
	}

	// Upscale
	resized = Resize(img, 200, 200, InterpolationLinear)
	if resized.Width() != 200 || resized.Height() != 200 {
		t.Errorf("Expected 200x200, got %dx%d", resized.Width(), resized.Height())
	}
}

func TestLetterboxCentresOnBlack(t *testing.T) {
	// A 10x10 white square into a 40x20 canvas scales to 20x20 at x=10.
	img := CreateSolidImage(10, 10, RGB{255, 255, 255})
	boxed := Letterbox(img, 40, 20)

	if boxed.Width() != 40 || boxed.Height() != 20 {
		t.Fatalf("Expected 40x20, got %dx%d", boxed.Width(), boxed.Height())
	}

	tests := []struct {
		x, y int
		want color.NRGBA
	}{
		{0, 0, color.NRGBA{A: 255}},
		{9, 10, color.NRGBA{A: 255}},
		{20, 10, color.NRGBA{R: 255, G: 255, B: 255, A: 255}},
		{30, 0, color.NRGBA{A: 255}},
	}
	for _, tt := range tests {
		if got := boxed.NRGBAAt(tt.x, tt.y); got != tt.want {
			t.Errorf("At (%d,%d): expected %v, got %v", tt.x, tt.y, tt.want, got)
		}
	}
}

func TestLetterboxTinySource(t *testing.T) {
	img := CreateSolidImage(1000, 1, RGB{255, 0, 0})
	boxed := Letterbox(img, 4, 4)
	if boxed.Width() != 4 || boxed.Height() != 4 {
		t.Fatalf("Expected 4x4, got %dx%d", boxed.Width(), boxed.Height())
	}
}

func TestAspectHeight(t *testing.T) {
	tests := []struct {
		name              string
		imgW, imgH, width int
		cellW, cellH      int
		aspect            float64
		want              int
	}{
		{"square braille", 100, 100, 160, 2, 4, 2.0, 160},
		{"square quad", 100, 100, 160, 2, 2, 2.0, 80},
		{"wide half", 200, 100, 80, 1, 2, 2.0, 40},
		{"clamped to cell", 1000, 1, 10, 2, 4, 2.0, 4},
		{"half rounds down to even", 1, 1, 5, 1, 1, 2.0, 2},
		{"half rounds up to even", 1, 1, 7, 1, 1, 2.0, 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AspectHeight(tt.imgW, tt.imgH, tt.width, tt.cellW, tt.cellH, tt.aspect)
			if got != tt.want {
				t.Errorf("AspectHeight() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestResizeToAspect(t *testing.T) {
	img := CreateGradientImage(100, 50)

	// 41 * 0.5 * (4/2) / 2 = 20.5 rounds to 20; the width pads to 42.
	got := ResizeToAspect(img, 41, 2, 4, 2.0)
	if got.Width() != 42 || got.Height() != 20 {
		t.Errorf("Expected 42x20, got %dx%d", got.Width(), got.Height())
	}

	got = ResizeToAspect(img, 40, 2, 4, 2.0)
	if got.Width() != 40 || got.Height() != 20 {
		t.Errorf("Expected 40x20, got %dx%d", got.Width(), got.Height())
	}
}

func TestPadToMultiple(t *testing.T) {
	img := CreateGradientImage(5, 7)
	padded := PadToMultiple(img, 2, 4)
	if padded.Width() != 6 || padded.Height() != 8 {
		t.Errorf("Expected 6x8, got %dx%d", padded.Width(), padded.Height())
	}

	exact := CreateGradientImage(4, 8)
	if PadToMultiple(exact, 2, 4) != exact {
		t.Error("An image that already fits should be returned unchanged")
	}
}

func TestExtractChannel(t *testing.T) {
	img := NewImage(1, 1)
	img.SetNRGBA(0, 0, color.NRGBA{R: 255, G: 128, B: 0, A: 200})

	tests := []struct {
		ch   Channel
		want color.NRGBA
	}{
		{ChannelNone, color.NRGBA{R: 255, G: 128, B: 0, A: 200}},
		{ChannelRed, color.NRGBA{R: 255, G: 255, B: 255, A: 200}},
		{ChannelGreen, color.NRGBA{R: 128, G: 128, B: 128, A: 200}},
		{ChannelBlue, color.NRGBA{A: 200}},
		// 0.299*255 + 0.587*128 = 151.38
		{ChannelLuma, color.NRGBA{R: 151, G: 151, B: 151, A: 200}},
	}
	for _, tt := range tests {
		t.Run(tt.ch.String(), func(t *testing.T) {
			got := ExtractChannel(img, tt.ch).NRGBAAt(0, 0)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("ExtractChannel mismatch (-want +got):\n%s", diff)
			}
		})
	}

	if got := img.NRGBAAt(0, 0); got.G != 128 || got.B != 0 {
		t.Errorf("ExtractChannel modified its input: %v", got)
	}
}

func TestParseChannel(t *testing.T) {
	for name, want := range map[string]Channel{
		"": ChannelNone, "luma": ChannelLuma, "R": ChannelRed,
		"green": ChannelGreen, " b ": ChannelBlue,
	} {
		got, err := ParseChannel(name)
		if err != nil || got != want {
			t.Errorf("ParseChannel(%q) = %v, %v; want %v", name, got, err, want)
		}
	}
	if _, err := ParseChannel("alpha"); err == nil {
		t.Error("ParseChannel(alpha) should fail")
	}
}

func TestConvolve(t *testing.T) {
	img := CreateGradientImage(10, 10)

	// Identity kernel should produce the same image
	identity := NewKernel([][]float64{
		{0, 0, 0},
		{0, 1, 0},
		{0, 0, 0},
	})
	result := Convolve(img, identity)
	if mse := CalculateMSE(img, result); mse != 0 {
		t.Errorf("Identity kernel should not change image, MSE=%f", mse)
	}
}

func TestSharpenKeepsFlatRegionsAndAlpha(t *testing.T) {
	img := CreateTranslucentImage(6, 6, RGB{90, 120, 30}, 77)
	sharp := Sharpen(img)
	if diff := CalculateMaxDiff(img, sharp); diff != 0 {
		t.Errorf("Sharpen should not change a flat image, max diff %d", diff)
	}
	if a := sharp.NRGBAAt(3, 3).A; a != 77 {
		t.Errorf("Sharpen should keep alpha, got %d", a)
	}
}

func TestPrepareForCells(t *testing.T) {
	img := CreateColorBarsImage(64, 48)

	t.Run("letterbox", func(t *testing.T) {
		got, err := PrepareForCells(img, 2, 4, PrepareOptions{
			Fit: FitLetterbox, CharsWidth: 20, CharsHeight: 10,
		})
		if err != nil {
			t.Fatal(err)
		}
		if got.Width() != 40 || got.Height() != 40 {
			t.Errorf("Expected 40x40, got %dx%d", got.Width(), got.Height())
		}
	})

	t.Run("aspect", func(t *testing.T) {
		got, err := PrepareForCells(img, 2, 4, PrepareOptions{
			Fit: FitAspect, PixelWidth: 41, CharAspect: 2.0,
		})
		if err != nil {
			t.Fatal(err)
		}
		if got.Width()%2 != 0 || got.Height()%4 != 0 {
			t.Errorf("Expected a multiple of 2x4, got %dx%d", got.Width(), got.Height())
		}
	})

	t.Run("invalid", func(t *testing.T) {
		_, err := PrepareForCells(img, 2, 4, PrepareOptions{Fit: FitLetterbox})
		if !errors.Is(err, ErrInvalidTarget) {
			t.Errorf("Expected ErrInvalidTarget, got %v", err)
		}
	})

	t.Run("input untouched", func(t *testing.T) {
		before := img.Clone()
		_, err := PrepareForCells(img, 2, 2, PrepareOptions{
			Fit: FitLetterbox, CharsWidth: 8, CharsHeight: 8,
			Channel: ChannelLuma, Sharpen: true,
		})
		if err != nil {
			t.Fatal(err)
		}
		if CalculateMSE(before, img) != 0 {
			t.Error("PrepareForCells modified its input")
		}
	})
}

func TestSavePNGRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bars.png")

	img := CreateColorBarsImage(16, 4)
	if err := SavePNG(img, path); err != nil {
		t.Fatalf("SavePNG failed: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("PNG not written: %v", err)
	}

	loaded, err := LoadImage(path)
	if err != nil {
		t.Fatalf("LoadImage failed: %v", err)
	}
	if CalculateMaxDiff(img, loaded) != 0 {
		t.Error("Loaded PNG differs from saved image")
	}
}

func TestLoadImageMissing(t *testing.T) {
	if _, err := LoadImage(filepath.Join(t.TempDir(), "nope.png")); err == nil {
		t.Error("Expected an error for a missing file")
	}
}
