package tools

import (
	"context"
	"fmt"
	"math"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/alpenlexikon/bookstack-mcp/internal/bookstack"
	"github.com/alpenlexikon/bookstack-mcp/internal/htmltext"
)

// templateTagFilter marks template pages in the wiki. It is forced into
// every template search so plain queries only return actual templates.
const templateTagFilter = "[tag=template]"

// SearchTemplatesTool handles the search_templates MCP tool: a page
// search constrained to pages tagged as templates, whose IDs can be fed
// into create_page's template_id.
type SearchTemplatesTool struct {
	api bookstack.API
}

// NewSearchTemplatesTool creates a SearchTemplatesTool.
func NewSearchTemplatesTool(api bookstack.API) *SearchTemplatesTool {
	return &SearchTemplatesTool{api: api}
}

// Definition returns the MCP tool definition for registration.
func (t *SearchTemplatesTool) Definition() mcp.Tool {
	return mcp.NewTool("search_templates",
		mcp.WithDescription("Search template pages (pages tagged 'template'). "+
			"Use a result's ID as template_id in create_page to seed a new page from it."),
		mcp.WithString("query",
			mcp.Description("Additional search terms. The template tag filter is always applied."),
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

// Handle processes one search_templates call.
func (t *SearchTemplatesTool) Handle(ctx context.Context, req mcp.CallToolRequest, args SearchArgs) (*mcp.CallToolResult, error) {
	page, count := normalizePaging(args.Page, args.Count)

	query := args.Query
	if !strings.Contains(query, templateTagFilter) {
		if query == "" {
			query = templateTagFilter
		} else {
			query += " " + templateTagFilter
		}
	}

	result, err := t.api.SearchPages(ctx, query, page, count)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if len(result.Data) == 0 {
		return mcp.NewToolResultText("No templates found."), nil
	}

	total := result.Total
	if total == 0 {
		total = len(result.Data)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%d template(s) found:\n\n", total)
	for i, item := range result.Data {
		fmt.Fprintf(&b, "%d. **%s** (ID: %d)\n", i+1, item.Name, item.ID)
		if len(item.Tags) > 0 {
			fmt.Fprintf(&b, "   Tags: %s\n", tagList(item.Tags))
		}
		if item.PreviewHTML != nil && item.PreviewHTML.Content != "" {
			fmt.Fprintf(&b, "   Preview: %s\n", htmltext.Excerpt(item.PreviewHTML.Content, excerptLimit))
		}
		b.WriteString("\n")
	}
	if total > len(result.Data) {
		fmt.Fprintf(&b, "More results available. Current page: %d of %d",
			page, int(math.Ceil(float64(total)/float64(count))))
	}
	return mcp.NewToolResultText(strings.TrimRight(b.String(), "\n")), nil
}
