package tools

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/alpenlexikon/bookstack-mcp/internal/bookstack"
	"github.com/alpenlexikon/bookstack-mcp/internal/htmltext"
)

// SearchAllTool handles the search_all MCP tool, covering shelves, books,
// chapters and pages in one query.
type SearchAllTool struct {
	api bookstack.API
}

// NewSearchAllTool creates a SearchAllTool.
func NewSearchAllTool(api bookstack.API) *SearchAllTool {
	return &SearchAllTool{api: api}
}

// Definition returns the MCP tool definition for registration.
func (t *SearchAllTool) Definition() mcp.Tool {
	return mcp.NewTool("search_all",
		mcp.WithDescription("Search all BookStack content types (shelves, books, chapters and pages) in one query."),
		mcp.WithString("query",
			mcp.Required(),
			mcp.Description("Search query. Supports BookStack search syntax."),
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

// Handle processes one search_all call.
func (t *SearchAllTool) Handle(ctx context.Context, req mcp.CallToolRequest, args SearchArgs) (*mcp.CallToolResult, error) {
	if args.Query == "" {
		return mcp.NewToolResultError("'query' is required"), nil
	}
	page, count := normalizePaging(args.Page, args.Count)

	result, err := t.api.SearchAll(ctx, args.Query, page, count)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if len(result.Data) == 0 {
		return mcp.NewToolResultText("No content found matching the query."), nil
	}

	entries := make([]string, len(result.Data))
	for i, item := range result.Data {
		var b strings.Builder
		fmt.Fprintf(&b, "### %s (ID: %d)\n", item.Name, item.ID)
		fmt.Fprintf(&b, "**Type:** %s\n", contentTypeName(item.Type))
		if item.URL != "" {
			fmt.Fprintf(&b, "**URL:** %s\n", item.URL)
		}
		if item.Type == "page" && item.Book != nil {
			fmt.Fprintf(&b, "**Book:** %s\n", item.Book.Name)
		}
		if item.PreviewHTML != nil && item.PreviewHTML.Content != "" {
			fmt.Fprintf(&b, "**Preview:** %s\n", htmltext.Excerpt(item.PreviewHTML.Content, previewLimit))
		}
		b.WriteString("---")
		entries[i] = b.String()
	}
	return mcp.NewToolResultText(strings.Join(entries, "\n\n")), nil
}

func contentTypeName(itemType string) string {
	switch itemType {
	case "bookshelf":
		return "Shelf"
	case "book":
		return "Book"
	case "chapter":
		return "Chapter"
	case "page":
		return "Page"
	default:
		return itemType
	}
}
