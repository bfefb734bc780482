package tools

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/alpenlexikon/bookstack-mcp/internal/bookstack"
)

// SearchShelvesTool handles the search_shelves MCP tool. Without a query
// it falls back to the full shelf listing.
type SearchShelvesTool struct {
	api bookstack.API
}

// NewSearchShelvesTool creates a SearchShelvesTool.
func NewSearchShelvesTool(api bookstack.API) *SearchShelvesTool {
	return &SearchShelvesTool{api: api}
}

// Definition returns the MCP tool definition for registration.
func (t *SearchShelvesTool) Definition() mcp.Tool {
	return mcp.NewTool("search_shelves",
		mcp.WithDescription("Search BookStack shelves by query, or list all shelves when no query is given."),
		mcp.WithString("query",
			mcp.Description("Search query. Empty lists all shelves."),
		),
		mcp.WithNumber("page",
			mcp.DefaultNumber(1),
			mcp.Description("Result page number."),
		),
		mcp.WithNumber("count",
			mcp.DefaultNumber(defaultSearchCount),
			mcp.Description("Results per page (1-100)."),
		),
	)
}

// Handle processes one search_shelves call.
func (t *SearchShelvesTool) Handle(ctx context.Context, req mcp.CallToolRequest, args SearchArgs) (*mcp.CallToolResult, error) {
	page, count := normalizePaging(args.Page, args.Count)

	var (
		result *bookstack.SearchResult
		err    error
	)
	if args.Query == "" {
		result, err = t.api.ListShelves(ctx)
	} else {
		result, err = t.api.SearchShelves(ctx, args.Query, page, count)
	}
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if len(result.Data) == 0 {
		return mcp.NewToolResultText("No shelves found matching the query."), nil
	}

	text := formatCollectionItems(result.Data)
	if result.Total > 0 {
		text += fmt.Sprintf("\n\nTotal: %d shelf/shelves found.", result.Total)
	}
	return mcp.NewToolResultText(text), nil
}
