package tools

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/alpenlexikon/bookstack-mcp/internal/bookstack"
	"github.com/alpenlexikon/bookstack-mcp/internal/htmltext"
)

// SearchPagesTool handles the search_pages MCP tool.
type SearchPagesTool struct {
	api bookstack.API
}

// NewSearchPagesTool creates a SearchPagesTool.
func NewSearchPagesTool(api bookstack.API) *SearchPagesTool {
	return &SearchPagesTool{api: api}
}

// SearchArgs are the shared arguments of the search tools.
type SearchArgs struct {
	Query string `json:"query,omitempty"`
	Page  int    `json:"page,omitempty"`
	Count int    `json:"count,omitempty"`
}

// Definition returns the MCP tool definition for registration.
func (t *SearchPagesTool) Definition() mcp.Tool {
	return mcp.NewTool("search_pages",
		mcp.WithDescription("Search BookStack pages. Returns titles, URLs and preview snippets. "+
			"The query supports BookStack search syntax like [tag=value] or [book=slug]."),
		mcp.WithString("query",
			mcp.Description("Search query. Empty lists recent pages."),
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

// Handle processes one search_pages call.
func (t *SearchPagesTool) Handle(ctx context.Context, req mcp.CallToolRequest, args SearchArgs) (*mcp.CallToolResult, error) {
	page, count := normalizePaging(args.Page, args.Count)

	result, err := t.api.SearchPages(ctx, args.Query, page, count)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if len(result.Data) == 0 {
		return mcp.NewToolResultText("No pages found matching the query."), nil
	}

	entries := make([]string, len(result.Data))
	for i, item := range result.Data {
		var b strings.Builder
		fmt.Fprintf(&b, "### %s (ID: %d)\n", item.Name, item.ID)
		if item.Book != nil {
			fmt.Fprintf(&b, "**Book:** %s\n", item.Book.Name)
		}
		if item.URL != "" {
			fmt.Fprintf(&b, "**URL:** %s\n", item.URL)
		}
		if item.PreviewHTML != nil && item.PreviewHTML.Content != "" {
			fmt.Fprintf(&b, "**Preview:** %s\n", htmltext.Excerpt(item.PreviewHTML.Content, previewLimit))
		}
		b.WriteString("---")
		entries[i] = b.String()
	}

	text := strings.Join(entries, "\n\n")
	if result.Total > 0 {
		text += fmt.Sprintf("\n\nTotal: %d page(s) found.", result.Total)
	}
	return mcp.NewToolResultText(text), nil
}
