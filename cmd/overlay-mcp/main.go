package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog/log"

	"github.com/ironsheep/detection-overlay-mcp/internal/config"
	"github.com/ironsheep/detection-overlay-mcp/internal/logging"
	"github.com/ironsheep/detection-overlay-mcp/internal/server"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	// Handle --version and -v flags
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "--version", "-v", "version":
			fmt.Printf("overlay-mcp %s\n", Version)
			fmt.Printf("  Build time: %s\n", BuildTime)
			fmt.Printf("  Git commit: %s\n", GitCommit)
			return
		case "--help", "-h", "help":
			fmt.Println("overlay-mcp - MCP server that draws object detection results onto frames")
			fmt.Println()
			fmt.Println("Usage: overlay-mcp [options]")
			fmt.Println()
			fmt.Println("Options:")
			fmt.Println("  --version, -v    Print version information")
			fmt.Println("  --help, -h       Print this help message")
			fmt.Println()
			fmt.Println("Environment variables (also read from .env):")
			fmt.Println("  OVERLAY_MCP_LOG_LEVEL=info       debug, info, warn or error")
			fmt.Println("  OVERLAY_MCP_LOG_FORMAT=console   console or json")
			fmt.Println("  OVERLAY_MCP_OUTPUT_DIR=          Base directory for relative output paths")
			fmt.Println("  OVERLAY_MCP_JPEG_QUALITY=90      Quality for .jpg output")
			fmt.Println()
			fmt.Println("This server communicates via MCP protocol over stdin/stdout.")
			return
		}
	}

	// Log to stderr until the configured logger is installed
	logging.Setup("info", "console")

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("Invalid configuration")
	}
	logging.Setup(cfg.LogLevel, cfg.LogFormat)

	log.Debug().
		Str("version", Version).
		Str("build_time", BuildTime).
		Str("commit", GitCommit).
		Msg("Overlay MCP server starting")

	srv := server.New(cfg)
	if err := srv.Run(); err != nil {
		log.Fatal().Err(err).Msg("Server error")
	}
}
