// Package config loads converter settings from YAML files.
package config

import (
	"errors"
	"fmt"
	"os"
	"runtime"

	"gopkg.in/yaml.v3"

	"github.com/wbrown/img2oc"
	"github.com/wbrown/img2oc/imageutil"
)

// Config represents the converter configuration.
type Config struct {
	Output   OutputConfig   `yaml:"output"`
	Quantize QuantizeConfig `yaml:"quantize"`
	Prepare  PrepareConfig  `yaml:"prepare"`
	Runtime  RuntimeConfig  `yaml:"runtime"`
}

// OutputConfig describes the cell grid and how it is written. The grid
// size fields are pointers so an explicit zero is rejected instead of being
// replaced by the default.
type OutputConfig struct {
	CharsWidth   *int    `yaml:"chars_width"`
	CharsHeight  *int    `yaml:"chars_height"`
	Mode         string  `yaml:"mode"`
	Fit          string  `yaml:"fit"`
	CharAspect   float64 `yaml:"char_aspect"`
	PixelWidth   int     `yaml:"pixel_width"`
	Format       string  `yaml:"format"`
	PicPath      string  `yaml:"pic_path"`
	PreviewScale int     `yaml:"preview_scale"`
	Font         string  `yaml:"font"`
}

// QuantizeConfig holds the per-cell thresholds. Fields are pointers so an
// explicit zero can be told apart from an omitted value.
type QuantizeConfig struct {
	Dither       *bool    `yaml:"dither"`
	MinContrast  *float64 `yaml:"min_contrast"`
	MinDots      *int     `yaml:"min_dots"`
	MinNeighbors *int     `yaml:"min_neighbors"`
}

// PrepareConfig selects optional image preprocessing.
type PrepareConfig struct {
	Channel string `yaml:"channel"`
	Sharpen bool   `yaml:"sharpen"`
}

// RuntimeConfig contains execution settings.
type RuntimeConfig struct {
	Workers int `yaml:"workers"`
}

// Default values for optional configuration fields.
const (
	DefaultCharsWidth   = 160
	DefaultCharsHeight  = 50
	DefaultMode         = "braille"
	DefaultFit          = "letterbox"
	DefaultCharAspect   = 2.0
	DefaultPixelWidth   = 320
	DefaultFormat       = "scene"
	DefaultPreviewScale = 4
)

// Chars returns the configured grid size. Unset fields read as zero.
func (o OutputConfig) Chars() (width, height int) {
	if o.CharsWidth != nil {
		width = *o.CharsWidth
	}
	if o.CharsHeight != nil {
		height = *o.CharsHeight
	}
	return width, height
}

// Load reads and parses the configuration from the specified file path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	return Parse(data)
}

// Parse parses a YAML document, applies defaults and validates the result.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Default returns a configuration with every field at its default.
func Default() *Config {
	var cfg Config
	cfg.applyDefaults()
	return &cfg
}

// applyDefaults sets default values for optional configuration fields.
func (c *Config) applyDefaults() {
	if c.Output.CharsWidth == nil {
		width := DefaultCharsWidth
		c.Output.CharsWidth = &width
	}
	if c.Output.CharsHeight == nil {
		height := DefaultCharsHeight
		c.Output.CharsHeight = &height
	}
	if c.Output.Mode == "" {
		c.Output.Mode = DefaultMode
	}
	if c.Output.Fit == "" {
		c.Output.Fit = DefaultFit
	}
	if c.Output.CharAspect == 0 {
		c.Output.CharAspect = DefaultCharAspect
	}
	if c.Output.PixelWidth == 0 {
		c.Output.PixelWidth = DefaultPixelWidth
	}
	if c.Output.Format == "" {
		c.Output.Format = DefaultFormat
	}
	if c.Output.PreviewScale == 0 {
		c.Output.PreviewScale = DefaultPreviewScale
	}

	defaults := img2oc.DefaultOptions()
	if c.Quantize.Dither == nil {
		c.Quantize.Dither = &defaults.Dither
	}
	if c.Quantize.MinContrast == nil {
		c.Quantize.MinContrast = &defaults.MinContrast
	}
	if c.Quantize.MinDots == nil {
		c.Quantize.MinDots = &defaults.MinDots
	}
	if c.Quantize.MinNeighbors == nil {
		c.Quantize.MinNeighbors = &defaults.MinNeighbors
	}

	if c.Runtime.Workers == 0 {
		c.Runtime.Workers = runtime.GOMAXPROCS(0)
	}
}

// Validate checks every field that can be wrong after defaults are applied.
// Negative thresholds are not errors; they are clamped to zero when the
// renderer is built.
func (c *Config) Validate() error {
	var errs []error
	if width, height := c.Output.Chars(); width <= 0 || height <= 0 {
		errs = append(errs, fmt.Errorf("output.chars_width and output.chars_height: %w (got %dx%d)",
			img2oc.ErrInvalidCellSize, width, height))
	}
	if _, err := img2oc.ParseMode(c.Output.Mode); err != nil {
		errs = append(errs, fmt.Errorf("output.mode: %w", err))
	}
	if _, err := imageutil.ParseFit(c.Output.Fit); err != nil {
		errs = append(errs, fmt.Errorf("output.fit: %w", err))
	}
	if c.Output.CharAspect <= 0 {
		errs = append(errs, fmt.Errorf("output.char_aspect must be positive, got %g", c.Output.CharAspect))
	}
	if c.Output.PixelWidth <= 0 {
		errs = append(errs, fmt.Errorf("output.pixel_width: %w (got %d)",
			img2oc.ErrInvalidCellSize, c.Output.PixelWidth))
	}
	if _, err := img2oc.ParseFormat(c.Output.Format); err != nil {
		errs = append(errs, fmt.Errorf("output.format: %w", err))
	}
	if c.Output.PreviewScale < 0 {
		errs = append(errs, fmt.Errorf("output.preview_scale must not be negative, got %d", c.Output.PreviewScale))
	}
	if _, err := imageutil.ParseChannel(c.Prepare.Channel); err != nil {
		errs = append(errs, fmt.Errorf("prepare.channel: %w", err))
	}
	if c.Runtime.Workers < 0 {
		errs = append(errs, fmt.Errorf("runtime.workers must not be negative, got %d", c.Runtime.Workers))
	}
	return errors.Join(errs...)
}

// Options returns the quantization thresholds, clamped to be non-negative.
func (c *Config) Options() img2oc.Options {
	opts := img2oc.DefaultOptions()
	if c.Quantize.Dither != nil {
		opts.Dither = *c.Quantize.Dither
	}
	if c.Quantize.MinContrast != nil {
		opts.MinContrast = *c.Quantize.MinContrast
	}
	if c.Quantize.MinDots != nil {
		opts.MinDots = *c.Quantize.MinDots
	}
	if c.Quantize.MinNeighbors != nil {
		opts.MinNeighbors = *c.Quantize.MinNeighbors
	}
	return opts.Clamped()
}

// Renderer builds a renderer for the configured mode and thresholds.
func (c *Config) Renderer() (*img2oc.Renderer, error) {
	mode, err := img2oc.ParseMode(c.Output.Mode)
	if err != nil {
		return nil, err
	}
	return img2oc.NewRenderer(
		img2oc.WithMode(mode),
		img2oc.WithOptions(c.Options()),
		img2oc.WithWorkers(c.Runtime.Workers),
	), nil
}

// PrepareOptions returns the image preparation settings.
func (c *Config) PrepareOptions() (imageutil.PrepareOptions, error) {
	fit, err := imageutil.ParseFit(c.Output.Fit)
	if err != nil {
		return imageutil.PrepareOptions{}, err
	}
	channel, err := imageutil.ParseChannel(c.Prepare.Channel)
	if err != nil {
		return imageutil.PrepareOptions{}, err
	}
	width, height := c.Output.Chars()
	return imageutil.PrepareOptions{
		Fit:         fit,
		CharsWidth:  width,
		CharsHeight: height,
		PixelWidth:  c.Output.PixelWidth,
		CharAspect:  c.Output.CharAspect,
		Channel:     channel,
		Sharpen:     c.Prepare.Sharpen,
	}, nil
}

// SaveOptions returns the encoder settings. Fonts are loaded by the
// caller.
func (c *Config) SaveOptions() img2oc.SaveOptions {
	return img2oc.SaveOptions{
		PicPath:      c.Output.PicPath,
		PreviewScale: c.Output.PreviewScale,
	}
}
