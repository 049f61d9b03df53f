package main

import (
	"flag"
	"log"
	"os"

	"github.com/mark3labs/mcp-go/server"

	"github.com/wbrown/img2oc/config"
	"github.com/wbrown/img2oc/mcpserver"
)

const version = "0.1.0"

func main() {
	configFile := flag.String("config", "",
		"Path to a YAML configuration file with the default settings")
	outDir := flag.String("outdir", "",
		"Directory for converted files (default: system temp directory)")
	flag.Parse()

	// stdout carries the protocol; logs go to stderr.
	logger := log.New(os.Stderr, "img2oc-mcp: ", log.LstdFlags)

	cfg := config.Default()
	if *configFile != "" {
		var err error
		cfg, err = config.Load(*configFile)
		if err != nil {
			logger.Fatalf("loading config: %v", err)
		}
	}

	srv := mcpserver.NewMCPServer(mcpserver.New(cfg, *outDir), version)
	logger.Printf("serving %s on stdio", mcpserver.ToolName)
	if err := server.ServeStdio(srv); err != nil {
		logger.Fatalf("server error: %v", err)
	}
}
