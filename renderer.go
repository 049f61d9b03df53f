package img2oc

import (
	"context"
	"fmt"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/wbrown/img2oc/imageutil"
)

// Renderer converts prepared images into frames. The zero value is not
// usable; create one with NewRenderer. A Renderer holds configuration only
// and is safe for concurrent use.
type Renderer struct {
	Mode    Mode
	Options Options

	// Workers bounds the number of rows converted concurrently in the
	// first pass. Values below 1 mean one worker.
	Workers int
}

// RendererOption is a functional option for configuring a Renderer.
type RendererOption func(*Renderer)

// NewRenderer creates a new Renderer with the given options.
// Default values: Mode=ModeBraille, Dither=true, MinContrast=12, MinDots=2,
// MinNeighbors=2, Workers=GOMAXPROCS.
func NewRenderer(opts ...RendererOption) *Renderer {
	r := &Renderer{
		Mode:    ModeBraille,
		Options: DefaultOptions(),
		Workers: runtime.GOMAXPROCS(0),
	}

	for _, opt := range opts {
		opt(r)
	}

	r.Options = r.Options.Clamped()
	return r
}

// WithMode sets the render mode.
func WithMode(mode Mode) RendererOption {
	return func(r *Renderer) {
		r.Mode = mode
	}
}

// WithOptions replaces all quantization thresholds at once.
func WithOptions(opts Options) RendererOption {
	return func(r *Renderer) {
		r.Options = opts
	}
}

// WithDither toggles ordered dithering.
func WithDither(dither bool) RendererOption {
	return func(r *Renderer) {
		r.Options.Dither = dither
	}
}

// WithMinContrast sets the RGB distance below which cells are flat filled.
// Negative values are treated as zero.
func WithMinContrast(contrast float64) RendererOption {
	return func(r *Renderer) {
		r.Options.MinContrast = contrast
	}
}

// WithMinDots sets the minimum number of dots a patterned cell must keep.
// Negative values are treated as zero.
func WithMinDots(dots int) RendererOption {
	return func(r *Renderer) {
		r.Options.MinDots = dots
	}
}

// WithMinNeighbors sets the inked neighbor count below which a cell is
// cleared by noise suppression. Zero disables the pass.
func WithMinNeighbors(n int) RendererOption {
	return func(r *Renderer) {
		r.Options.MinNeighbors = n
	}
}

// WithWorkers sets the number of concurrent row workers.
func WithWorkers(n int) RendererOption {
	return func(r *Renderer) {
		r.Workers = n
	}
}

// Render converts img into a frame. img must be an exact multiple of the
// mode's cell size; anything else fails with ErrDimensionMismatch.
func (r *Renderer) Render(img *imageutil.Image) (*Frame, error) {
	return r.RenderContext(context.Background(), img)
}

// RenderContext is Render with cancellation between rows.
//
// Every cell is mapped independently in the first pass, which fans rows out
// to at most Workers goroutines. Noise suppression needs the complete grid,
// so it only starts once every row is done.
func (r *Renderer) RenderContext(ctx context.Context, img *imageutil.Image) (*Frame, error) {
	width, height, err := gridSize(img, r.Mode)
	if err != nil {
		return nil, err
	}

	frame := NewFrame(r.Mode, width, height)
	opts := r.Options.Clamped()

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(max(1, r.Workers))
	for cy := 0; cy < height; cy++ {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			row := frame.Cells[cy]
			for cx := range row {
				row[cx] = MapCell(CellBlock(img, r.Mode, cx, cy), r.Mode, opts)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if r.Mode.Patterned() && opts.MinNeighbors > 0 {
		frame, _ = SuppressNoise(frame, opts.MinNeighbors)
	}
	return frame, nil
}

// validateTarget rejects non-positive output sizes before any work starts.
func validateTarget(prep imageutil.PrepareOptions) error {
	switch prep.Fit {
	case imageutil.FitAspect:
		if prep.PixelWidth <= 0 {
			return fmt.Errorf("%w: pixel width %d", ErrInvalidCellSize, prep.PixelWidth)
		}
	default:
		if prep.CharsWidth <= 0 || prep.CharsHeight <= 0 {
			return fmt.Errorf("%w: %dx%d", ErrInvalidCellSize, prep.CharsWidth, prep.CharsHeight)
		}
	}
	return nil
}

// Prepare brings img to a size the renderer's mode divides exactly.
func (r *Renderer) Prepare(img *imageutil.Image, prep imageutil.PrepareOptions) (*imageutil.Image, error) {
	if err := validateTarget(prep); err != nil {
		return nil, err
	}
	cw, ch := r.Mode.CellSize()
	return imageutil.PrepareForCells(img, cw, ch, prep)
}

// Convert prepares and renders img.
func (r *Renderer) Convert(img *imageutil.Image, prep imageutil.PrepareOptions) (*Frame, error) {
	prepared, err := r.Prepare(img, prep)
	if err != nil {
		return nil, err
	}
	return r.Render(prepared)
}

// ConvertFile loads, prepares and renders the image at path. The target
// size is validated before the file is opened.
func (r *Renderer) ConvertFile(path string, prep imageutil.PrepareOptions) (*Frame, RenderStats, error) {
	if err := validateTarget(prep); err != nil {
		return nil, RenderStats{}, err
	}

	start := time.Now()

	img, err := imageutil.LoadImage(path)
	if err != nil {
		return nil, RenderStats{}, err
	}
	loaded := time.Now()

	frame, err := r.Convert(img, prep)
	if err != nil {
		return nil, RenderStats{}, err
	}
	return frame, RenderStats{
		SourceWidth:  img.Width(),
		SourceHeight: img.Height(),
		LoadTime:     loaded.Sub(start),
		RenderTime:   time.Since(loaded),
	}, nil
}

// RenderStats describes one ConvertFile call.
type RenderStats struct {
	SourceWidth  int
	SourceHeight int
	LoadTime     time.Duration
	RenderTime   time.Duration
}
