package tools

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/alpenlexikon/bookstack-mcp/internal/bookstack"
)

// SearchBooksTool handles the search_books MCP tool. Without a query it
// falls back to the full book listing.
type SearchBooksTool struct {
	api bookstack.API
}

// NewSearchBooksTool creates a SearchBooksTool.
func NewSearchBooksTool(api bookstack.API) *SearchBooksTool {
	return &SearchBooksTool{api: api}
}

// Definition returns the MCP tool definition for registration.
func (t *SearchBooksTool) Definition() mcp.Tool {
	return mcp.NewTool("search_books",
		mcp.WithDescription("Search BookStack books by query, or list all books when no query is given."),
		mcp.WithString("query",
			mcp.Description("Search query. Empty lists all books."),
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

// Handle processes one search_books call.
func (t *SearchBooksTool) Handle(ctx context.Context, req mcp.CallToolRequest, args SearchArgs) (*mcp.CallToolResult, error) {
	page, count := normalizePaging(args.Page, args.Count)

	var (
		result *bookstack.SearchResult
		err    error
	)
	if args.Query == "" {
		result, err = t.api.ListBooks(ctx)
	} else {
		result, err = t.api.SearchBooks(ctx, args.Query, page, count)
	}
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if len(result.Data) == 0 {
		return mcp.NewToolResultText("No books found matching the query."), nil
	}

	text := formatCollectionItems(result.Data)
	if result.Total > 0 {
		text += fmt.Sprintf("\n\nTotal: %d book(s) found.", result.Total)
	}
	return mcp.NewToolResultText(text), nil
}

// formatCollectionItems renders book and shelf entries, which share the
// same fields.
func formatCollectionItems(items []bookstack.SearchItem) string {
	entries := make([]string, len(items))
	for i, item := range items {
		var b strings.Builder
		fmt.Fprintf(&b, "### %s (ID: %d)\n", item.Name, item.ID)
		if item.Description != "" {
			fmt.Fprintf(&b, "**Description:** %s\n", item.Description)
		}
		if item.URL != "" {
			fmt.Fprintf(&b, "**URL:** %s\n", item.URL)
		}
		if len(item.Tags) > 0 {
			fmt.Fprintf(&b, "**Tags:** %s\n", tagList(item.Tags))
		}
		if item.CreatedAt != "" {
			fmt.Fprintf(&b, "**Created:** %s\n", item.CreatedAt)
		}
		if item.UpdatedAt != "" {
			fmt.Fprintf(&b, "**Updated:** %s\n", item.UpdatedAt)
		}
		b.WriteString("---")
		entries[i] = b.String()
	}
	return strings.Join(entries, "\n\n")
}
