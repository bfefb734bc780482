package tools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/alpenlexikon/bookstack-mcp/internal/bookstack"
	"github.com/alpenlexikon/bookstack-mcp/internal/htmltext"
)

// GetPageContentTool handles the get_page_content MCP tool.
type GetPageContentTool struct {
	api bookstack.API
}

// NewGetPageContentTool creates a GetPageContentTool.
func NewGetPageContentTool(api bookstack.API) *GetPageContentTool {
	return &GetPageContentTool{api: api}
}

// GetPageContentArgs are the caller-supplied arguments for get_page_content.
type GetPageContentArgs struct {
	PageID int `json:"page_id"`
}

// PageContentResponse is the JSON document returned to the caller.
// Markdown is preferred; pages authored in the WYSIWYG editor only have
// HTML, which is flattened to plain text.
type PageContentResponse struct {
	PageID  int    `json:"page_id"`
	Format  string `json:"format"`
	Content string `json:"content"`
	Name    string `json:"name"`
	URL     string `json:"url"`
}

// Definition returns the MCP tool definition for registration.
func (t *GetPageContentTool) Definition() mcp.Tool {
	return mcp.NewTool("get_page_content",
		mcp.WithDescription("Get the full content of a BookStack page by its ID, preferring markdown over HTML."),
		mcp.WithNumber("page_id",
			mcp.Required(),
			mcp.Description("ID of the page to read."),
		),
	)
}

// Handle processes one get_page_content call.
func (t *GetPageContentTool) Handle(ctx context.Context, req mcp.CallToolRequest, args GetPageContentArgs) (*mcp.CallToolResult, error) {
	if args.PageID <= 0 {
		return mcp.NewToolResultError("'page_id' is required"), nil
	}

	page, err := t.api.GetPage(ctx, args.PageID)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	content := page.Markdown
	format := "markdown"
	if content == "" {
		raw := page.HTML
		if raw == "" {
			raw = page.RawHTML
		}
		content = htmltext.PlainText(raw)
		format = "plaintext"
	}

	response := PageContentResponse{
		PageID:  args.PageID,
		Format:  format,
		Content: content,
		Name:    page.Name,
		URL:     naIfEmpty(page.URL),
	}
	data, err := json.Marshal(response)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("encoding response: %v", err)), nil
	}
	return mcp.NewToolResultText(string(data)), nil
}
