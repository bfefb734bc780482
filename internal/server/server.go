// Package server wires configuration, the BookStack API client and all
// MCP tools into a server instance.
//
// This is the composition root: it creates the concrete client and
// injects it into the tools, which depend only on the bookstack.API
// interface. No business logic lives here.
package server

import (
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"go.uber.org/zap"

	"github.com/alpenlexikon/bookstack-mcp/internal/bookstack"
	"github.com/alpenlexikon/bookstack-mcp/internal/config"
	"github.com/alpenlexikon/bookstack-mcp/internal/tools"
)

// Version is set at build time via ldflags.
var Version = "dev"

// New creates and configures the MCP server with all BookStack tools
// registered. Configuration is read from the environment once, here.
func New(log *zap.Logger) (*server.MCPServer, error) {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("loading configuration: %w", err)
	}

	api := bookstack.NewClient(cfg.BaseURL, cfg.APIToken, cfg.APISecret, nil, log)

	s := server.NewMCPServer(
		"bookstack-mcp",
		Version,
		server.WithToolCapabilities(false),
		server.WithRecovery(),
	)

	createPage := tools.NewCreatePageTool(api, cfg.Style, log)
	s.AddTool(createPage.Definition(), mcp.NewTypedToolHandler(createPage.Handle))

	updatePage := tools.NewUpdatePageTool(api, cfg.Style, log)
	s.AddTool(updatePage.Definition(), mcp.NewTypedToolHandler(updatePage.Handle))

	createBook := tools.NewCreateBookTool(api, log)
	s.AddTool(createBook.Definition(), mcp.NewTypedToolHandler(createBook.Handle))

	getPageContent := tools.NewGetPageContentTool(api)
	s.AddTool(getPageContent.Definition(), mcp.NewTypedToolHandler(getPageContent.Handle))

	searchPages := tools.NewSearchPagesTool(api)
	s.AddTool(searchPages.Definition(), mcp.NewTypedToolHandler(searchPages.Handle))

	searchBooks := tools.NewSearchBooksTool(api)
	s.AddTool(searchBooks.Definition(), mcp.NewTypedToolHandler(searchBooks.Handle))

	searchShelves := tools.NewSearchShelvesTool(api)
	s.AddTool(searchShelves.Definition(), mcp.NewTypedToolHandler(searchShelves.Handle))

	searchAll := tools.NewSearchAllTool(api)
	s.AddTool(searchAll.Definition(), mcp.NewTypedToolHandler(searchAll.Handle))

	searchTemplates := tools.NewSearchTemplatesTool(api)
	s.AddTool(searchTemplates.Definition(), mcp.NewTypedToolHandler(searchTemplates.Handle))

	return s, nil
}
