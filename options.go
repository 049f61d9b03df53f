package img2oc

// Defaults for Options.
const (
	DefaultDither       = true
	DefaultMinContrast  = 12.0
	DefaultMinDots      = 2
	DefaultMinNeighbors = 2

	// MaxContrast is the largest possible RGB distance, black to white.
	MaxContrast = 441.6729559300637
)

// Options holds the per-cell quantization thresholds. It is passed
// explicitly to every stage.
type Options struct {
	// Dither selects ordered dithering instead of nearest-color
	// classification.
	Dither bool

	// MinContrast is the RGB distance below which a cell's two clustered
	// colors are treated as one flat fill.
	MinContrast float64

	// MinDots flattens cells with at least one but fewer than MinDots
	// foreground bits.
	MinDots int

	// MinNeighbors flattens inked cells with fewer inked neighbors than
	// this in the noise suppression pass. Zero disables the pass.
	MinNeighbors int
}

// DefaultOptions returns dithering on with the default thresholds.
func DefaultOptions() Options {
	return Options{
		Dither:       DefaultDither,
		MinContrast:  DefaultMinContrast,
		MinDots:      DefaultMinDots,
		MinNeighbors: DefaultMinNeighbors,
	}
}

// Clamped returns a copy of o with negative thresholds raised to zero.
func (o Options) Clamped() Options {
	if o.MinContrast < 0 {
		o.MinContrast = 0
	}
	if o.MinDots < 0 {
		o.MinDots = 0
	}
	if o.MinNeighbors < 0 {
		o.MinNeighbors = 0
	}
	return o
}
