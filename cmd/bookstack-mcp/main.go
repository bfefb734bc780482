// bookstack-mcp: BookStack MCP Server
//
// An MCP server exposing a BookStack wiki to AI clients: searching,
// reading and writing content with style-guide-driven page assembly,
// automatic tagging and duplicate detection.
//
// Usage:
//
//	bookstack-mcp serve    # Start MCP server (stdio transport)
//
// Configuration comes from the environment; see printUsage.
package main

import (
	"fmt"
	"os"

	"github.com/mark3labs/mcp-go/server"

	"github.com/alpenlexikon/bookstack-mcp/internal/logging"
	bsserver "github.com/alpenlexikon/bookstack-mcp/internal/server"
)

func main() {
	command := "serve"
	if len(os.Args) > 1 {
		command = os.Args[1]
	}

	switch command {
	case "serve":
		if err := run(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "--help", "-h", "help":
		printUsage()
	case "--version", "-v", "version":
		fmt.Printf("bookstack-mcp v%s\n", bsserver.Version)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", command)
		printUsage()
		os.Exit(1)
	}
}

func run() error {
	log, err := logging.New()
	if err != nil {
		return fmt.Errorf("creating logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	s, err := bsserver.New(log)
	if err != nil {
		return fmt.Errorf("creating server: %w", err)
	}

	log.Info("starting MCP server on stdio")
	return server.ServeStdio(s)
}

func printUsage() {
	fmt.Fprintf(os.Stderr, `bookstack-mcp v%s - BookStack MCP Server

Usage:
  bookstack-mcp serve    Start the MCP server (stdio transport, default)

Environment:
  BOOKSTACK_API_URL             Base URL of the BookStack instance (required)
  BOOKSTACK_API_TOKEN           API token id (required)
  BOOKSTACK_API_KEY             API token secret (required)
  STYLEGUIDE_HEADING_LEVEL_1    Page title marker (default "##")
  STYLEGUIDE_HEADING_LEVEL_2    Section title marker (default "###")
  STYLEGUIDE_LOGO_MARKDOWN      Logo block for include_logo
  STYLEGUIDE_INFO_PREFIX        Heading prefix for info sections
  STYLEGUIDE_WARN_PREFIX        Heading prefix for warning sections
  STYLEGUIDE_SUCCESS_PREFIX     Heading prefix for success sections
  STYLEGUIDE_DANGER_PREFIX      Heading prefix for danger sections
  STYLEGUIDE_LEGAL_FOOTER_MD    Footer block appended when enabled
  AUTO_LEGAL_FOOTER_ENABLED     Append footer + attribution line (default false)
  AUTO_TAGS_ENABLED             Derive tags from keywords (default false)
  AUTO_TAGS_KEYWORDS            Comma-separated keyword list
`, bsserver.Version)
}
