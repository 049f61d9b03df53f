// Package mcpserver exposes the converter as an MCP tool server.
package mcpserver

import (
	"context"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/wbrown/img2oc"
	"github.com/wbrown/img2oc/config"
)

// ToolName is the name of the conversion tool.
const ToolName = "convert_image"

// Server hosts the conversion tool. Every call starts from the base
// configuration and applies the call's arguments on top.
type Server struct {
	base   *config.Config
	outDir string
}

// New creates a Server. Outputs without an explicit output_path are written
// to outDir, or to the system temp directory when outDir is empty.
func New(base *config.Config, outDir string) *Server {
	if base == nil {
		base = config.Default()
	}
	if outDir == "" {
		outDir = os.TempDir()
	}
	return &Server{base: base, outDir: outDir}
}

// Name returns the unique identifier for this server.
func (s *Server) Name() string {
	return "img2oc"
}

// Description returns a human-readable description of the server.
func (s *Server) Description() string {
	return "Converts images to OpenComputers character-cell art"
}

// Tool returns the convert_image tool definition.
func (s *Server) Tool() mcplib.Tool {
	return mcplib.NewTool(ToolName,
		mcplib.WithDescription("Convert an image file into braille, quadrant or half block "+
			"character art with per-cell colors, written as an OpenComputers Lua scene"),
		mcplib.WithString("path",
			mcplib.Required(),
			mcplib.Description("Path of the source image (PNG, JPEG, GIF, BMP, TIFF or WebP)"),
		),
		mcplib.WithString("mode",
			mcplib.Description("Render mode: braille, quad or half"),
			mcplib.Enum("braille", "quad", "half"),
		),
		mcplib.WithNumber("chars_width",
			mcplib.Description("Output width in characters"),
		),
		mcplib.WithNumber("chars_height",
			mcplib.Description("Output height in characters"),
		),
		mcplib.WithBoolean("dither",
			mcplib.Description("Use ordered dithering instead of nearest color"),
		),
		mcplib.WithNumber("min_contrast",
			mcplib.Description("RGB distance (0-441) below which a cell becomes a flat fill"),
		),
		mcplib.WithNumber("min_dots",
			mcplib.Description("Cells with fewer dots than this are flattened"),
		),
		mcplib.WithNumber("min_neighbors",
			mcplib.Description("Inked cells with fewer inked neighbors are cleared; 0 disables"),
		),
		mcplib.WithString("format",
			mcplib.Description("Output format: scene, makepic, text, ansi or png"),
			mcplib.Enum("scene", "makepic", "text", "ansi", "png"),
		),
		mcplib.WithString("output_path",
			mcplib.Description("Where to write the result; defaults to a new file in the temp directory"),
		),
		mcplib.WithBoolean("inline",
			mcplib.Description("Return the encoded result in the response instead of writing a file (text formats only)"),
		),
	)
}

// Setup adds the tool to an MCP server.
func (s *Server) Setup(srv *server.MCPServer) error {
	srv.AddTool(s.Tool(), s.handleConvert)
	return nil
}

// NewMCPServer creates an MCP server hosting the conversion tool.
func NewMCPServer(s *Server, version string) *server.MCPServer {
	srv := server.NewMCPServer(s.Name(), version, server.WithToolCapabilities(false))
	s.Setup(srv)
	return srv
}

// requestConfig applies the call's arguments to a copy of the base
// configuration.
func (s *Server) requestConfig(args map[string]any) (*config.Config, error) {
	cfg := *s.base

	cfg.Output.Mode = GetOptionalStringArg(args, "mode", cfg.Output.Mode)
	cfg.Output.Format = GetOptionalStringArg(args, "format", cfg.Output.Format)

	if v, ok, err := GetOptionalBoolArg(args, "dither"); err != nil {
		return nil, err
	} else if ok {
		cfg.Quantize.Dither = &v
	}
	if v, ok, err := GetOptionalNumberArg(args, "min_contrast"); err != nil {
		return nil, err
	} else if ok {
		cfg.Quantize.MinContrast = &v
	}
	// Fields are replaced, never written through, so the shared base
	// configuration stays untouched.
	for name, dst := range map[string]**int{
		"chars_width":   &cfg.Output.CharsWidth,
		"chars_height":  &cfg.Output.CharsHeight,
		"min_dots":      &cfg.Quantize.MinDots,
		"min_neighbors": &cfg.Quantize.MinNeighbors,
	} {
		v, ok, err := GetOptionalNumberArg(args, name)
		if err != nil {
			return nil, err
		}
		if ok {
			n := int(math.Round(v))
			*dst = &n
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// outputPath returns the requested path, or a fresh one in the output
// directory.
func (s *Server) outputPath(args map[string]any, format img2oc.Format) string {
	if p := GetOptionalStringArg(args, "output_path", ""); p != "" {
		return p
	}
	ext := map[img2oc.Format]string{
		img2oc.FormatScene:   ".lua",
		img2oc.FormatMakepic: ".lua",
		img2oc.FormatText:    ".txt",
		img2oc.FormatANSI:    ".ans",
		img2oc.FormatPNG:     ".png",
	}[format]
	return filepath.Join(s.outDir, uuid.NewString()+ext)
}

func (s *Server) handleConvert(ctx context.Context, req mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
	args, err := GetArgs(req)
	if err != nil {
		return nil, err
	}
	path, err := GetStringArg(args, "path")
	if err != nil {
		return nil, err
	}

	cfg, err := s.requestConfig(args)
	if err != nil {
		return mcplib.NewToolResultError(fmt.Sprintf("invalid options: %v", err)), nil
	}
	format, err := img2oc.ParseFormat(cfg.Output.Format)
	if err != nil {
		return mcplib.NewToolResultError(err.Error()), nil
	}
	inline, _, err := GetOptionalBoolArg(args, "inline")
	if err != nil {
		return nil, err
	}
	if inline && format == img2oc.FormatPNG {
		return mcplib.NewToolResultError("png output cannot be returned inline"), nil
	}

	renderer, err := cfg.Renderer()
	if err != nil {
		return mcplib.NewToolResultError(err.Error()), nil
	}
	prep, err := cfg.PrepareOptions()
	if err != nil {
		return mcplib.NewToolResultError(err.Error()), nil
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	frame, _, err := renderer.ConvertFile(path, prep)
	if err != nil {
		return mcplib.NewToolResultError(fmt.Sprintf("conversion failed: %v", err)), nil
	}

	saveOpts := cfg.SaveOptions()
	if inline {
		var sb strings.Builder
		if err := img2oc.WriteFrame(&sb, frame, format, saveOpts); err != nil {
			return mcplib.NewToolResultError(err.Error()), nil
		}
		return mcplib.NewToolResultText(sb.String()), nil
	}

	out := s.outputPath(args, format)
	if err := img2oc.SaveFrame(out, frame, format, saveOpts); err != nil {
		return mcplib.NewToolResultError(fmt.Sprintf("failed to write output: %v", err)), nil
	}

	stats := frame.Stats()
	return mcplib.NewToolResultText(fmt.Sprintf(
		"Saved %s %s to %s (chars: %dx%d, inked cells: %d, suppressed: %d)",
		renderer.Mode.Name(), format, out, frame.Width, frame.Height,
		stats.Inked, stats.Suppressed)), nil
}
