package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/wbrown/img2oc"
	"github.com/wbrown/img2oc/config"
)

func main() {
	inputFile := flag.String("input", "",
		"Path to the input image file (required)")
	outputFile := flag.String("output", "",
		"Path to save the output (if not specified, prints to stdout)")
	configFile := flag.String("config", "",
		"Path to a YAML configuration file")
	mode := flag.String("mode", config.DefaultMode,
		"Render mode: braille, quad or half")
	width := flag.Int("width", config.DefaultCharsWidth,
		"Output width in characters")
	height := flag.Int("height", config.DefaultCharsHeight,
		"Output height in characters")
	fit := flag.String("fit", config.DefaultFit,
		"Fit strategy: letterbox or aspect")
	pixelWidth := flag.Int("pixelwidth", config.DefaultPixelWidth,
		"Intermediate pixel width for the aspect fit")
	charAspect := flag.Float64("aspect", config.DefaultCharAspect,
		"Height to width ratio of one character cell")
	dither := flag.Bool("dither", img2oc.DefaultDither,
		"Use ordered dithering instead of nearest color")
	minContrast := flag.Float64("mincontrast", img2oc.DefaultMinContrast,
		"RGB distance below which a cell becomes a flat fill")
	minDots := flag.Int("mindots", img2oc.DefaultMinDots,
		"Cells with fewer dots than this are flattened")
	minNeighbors := flag.Int("minneighbors", img2oc.DefaultMinNeighbors,
		"Inked cells with fewer inked neighbors are cleared, 0 to disable")
	channel := flag.String("channel", "none",
		"Single channel preprocessing: none, luma, red, green, blue")
	sharpen := flag.Bool("sharpen", false,
		"Sharpen the image before conversion")
	format := flag.String("format", config.DefaultFormat,
		"Output format: scene, makepic, text, ansi, png")
	picPath := flag.String("pic", "",
		"OpenOS path the makepic script saves the screen to")
	fontPath := flag.String("font", "",
		"TTF file used to render PNG output (default: sub-pixel preview)")
	scale := flag.Int("scale", config.DefaultPreviewScale,
		"Scale factor for PNG output")
	workers := flag.Int("workers", 0,
		"Number of render workers (default: GOMAXPROCS)")
	flag.Parse()

	if *inputFile == "" {
		fmt.Fprintln(os.Stderr, "Please specify an input file using the -input flag")
		flag.Usage()
		os.Exit(1)
	}

	beginInit := time.Now()
	cfg := config.Default()
	if *configFile != "" {
		var err error
		cfg, err = config.Load(*configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}

	// Flags override the configuration only when given explicitly.
	set := make(map[string]bool)
	flag.Visit(func(f *flag.Flag) {
		set[f.Name] = true
	})
	overrides := map[string]func(){
		"mode":         func() { cfg.Output.Mode = *mode },
		"width":        func() { cfg.Output.CharsWidth = width },
		"height":       func() { cfg.Output.CharsHeight = height },
		"fit":          func() { cfg.Output.Fit = *fit },
		"pixelwidth":   func() { cfg.Output.PixelWidth = *pixelWidth },
		"aspect":       func() { cfg.Output.CharAspect = *charAspect },
		"dither":       func() { cfg.Quantize.Dither = dither },
		"mincontrast":  func() { cfg.Quantize.MinContrast = minContrast },
		"mindots":      func() { cfg.Quantize.MinDots = minDots },
		"minneighbors": func() { cfg.Quantize.MinNeighbors = minNeighbors },
		"channel":      func() { cfg.Prepare.Channel = *channel },
		"sharpen":      func() { cfg.Prepare.Sharpen = *sharpen },
		"format":       func() { cfg.Output.Format = *format },
		"pic":          func() { cfg.Output.PicPath = *picPath },
		"font":         func() { cfg.Output.Font = *fontPath },
		"scale":        func() { cfg.Output.PreviewScale = *scale },
		"workers":      func() { cfg.Runtime.Workers = *workers },
	}
	for name, apply := range overrides {
		if set[name] {
			apply()
		}
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error in options: %v\n", err)
		os.Exit(1)
	}

	outFormat, err := outputFormat(cfg, *outputFile, set["format"])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error in options: %v\n", err)
		os.Exit(1)
	}
	if *outputFile == "" && outFormat == img2oc.FormatPNG {
		fmt.Fprintln(os.Stderr, "PNG output needs an -output file")
		os.Exit(1)
	}

	renderer, err := cfg.Renderer()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error in options: %v\n", err)
		os.Exit(1)
	}
	prep, err := cfg.PrepareOptions()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error in options: %v\n", err)
		os.Exit(1)
	}

	saveOpts := cfg.SaveOptions()
	if outFormat == img2oc.FormatPNG && cfg.Output.Font != "" {
		fonts, err := img2oc.LoadFontBitmaps(cfg.Output.Font, "")
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading font: %v\n", err)
			// Continue with the sub-pixel preview
		} else {
			saveOpts.Fonts = fonts
		}
	}
	endInit := time.Now()

	frame, stats, err := renderer.ConvertFile(*inputFile, prep)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error processing image: %v\n", err)
		os.Exit(1)
	}

	if *outputFile != "" {
		if err := img2oc.SaveFrame(*outputFile, frame, outFormat, saveOpts); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing output: %v\n", err)
			os.Exit(1)
		}
		fmt.Fprintf(os.Stderr, "%s output written to %s\n", outFormat, *outputFile)
	} else {
		w := bufio.NewWriter(os.Stdout)
		if err := img2oc.WriteFrame(w, frame, outFormat, saveOpts); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing output: %v\n", err)
			os.Exit(1)
		}
		if outFormat == img2oc.FormatScene || outFormat == img2oc.FormatMakepic {
			w.WriteByte('\n')
		}
		if err := w.Flush(); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing output: %v\n", err)
			os.Exit(1)
		}
	}

	fs := frame.Stats()
	fmt.Fprintf(os.Stderr, "Source: %dx%d pixels, output: %dx%d %s cells\n",
		stats.SourceWidth, stats.SourceHeight, frame.Width, frame.Height,
		renderer.Mode.Name())
	fmt.Fprintf(os.Stderr, "Cells: %d inked, %d blank, %d dots, %d suppressed\n",
		fs.Inked, fs.Blank, fs.Dots, fs.Suppressed)
	fmt.Fprintf(os.Stderr, "Init time: %v\n", endInit.Sub(beginInit))
	fmt.Fprintf(os.Stderr, "Load time: %v\n", stats.LoadTime)
	fmt.Fprintf(os.Stderr, "Render time: %v\n", stats.RenderTime)
}

// outputFormat picks the encoding: an explicit -format wins, then a
// recognised output extension, then the configured format.
func outputFormat(cfg *config.Config, output string, explicit bool) (img2oc.Format, error) {
	if !explicit && output != "" {
		switch strings.ToLower(filepath.Ext(output)) {
		case ".png", ".txt", ".ans", ".ansi":
			return img2oc.FormatForPath(output), nil
		}
	}
	return img2oc.ParseFormat(cfg.Output.Format)
}
