package tools

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"go.uber.org/zap"

	"github.com/alpenlexikon/bookstack-mcp/internal/autotag"
	"github.com/alpenlexikon/bookstack-mcp/internal/bookstack"
	"github.com/alpenlexikon/bookstack-mcp/internal/config"
	"github.com/alpenlexikon/bookstack-mcp/internal/markdown"
	"github.com/alpenlexikon/bookstack-mcp/internal/similarity"
)

// UpdatePageTool handles the update_page MCP tool. It rebuilds the whole
// page body from the supplied sections; BookStack has no partial update.
type UpdatePageTool struct {
	api   bookstack.API
	style config.Style
	log   *zap.Logger
}

// NewUpdatePageTool creates an UpdatePageTool with its dependencies.
func NewUpdatePageTool(api bookstack.API, style config.Style, log *zap.Logger) *UpdatePageTool {
	if log == nil {
		log = zap.NewNop()
	}
	return &UpdatePageTool{api: api, style: style, log: log}
}

// UpdatePageArgs are the caller-supplied arguments for update_page.
// PageTitle is optional: when absent the existing name is preserved.
type UpdatePageArgs struct {
	PageID              int          `json:"page_id"`
	PageTitle           string       `json:"page_title,omitempty"`
	Sections            []SectionArg `json:"sections"`
	Tags                []TagArg     `json:"tags,omitempty"`
	IncludeLogo         bool         `json:"include_logo,omitempty"`
	CheckSimilar        *bool        `json:"check_similar,omitempty"`
	SimilarityThreshold float64      `json:"similarity_threshold,omitempty"`
	CreatedBy           string       `json:"created_by,omitempty"`
	ClientName          string       `json:"client_name,omitempty"`
	AIModel             string       `json:"ai_model,omitempty"`
}

// Definition returns the MCP tool definition for registration.
func (t *UpdatePageTool) Definition() mcp.Tool {
	return mcp.NewTool("update_page",
		mcp.WithDescription(
			"Update an existing BookStack page from structured sections, applying the configured style guide. "+
				"Replaces the entire page content; tags are replaced only when the computed tag set is non-empty. "+
				"Unless check_similar is false, a new page_title matching another existing page is reported instead of writing.",
		),
		mcp.WithNumber("page_id",
			mcp.Required(),
			mcp.Description("ID of the page to update."),
		),
		mcp.WithString("page_title",
			mcp.Description("New title for the page. Omit to keep the current one."),
		),
		mcp.WithArray("sections",
			mcp.Required(),
			mcp.Description("New content sections. The old content is replaced."),
			mcp.Items(sectionItemSchema()),
		),
		mcp.WithArray("tags",
			mcp.Description("Manual tags. Together with generated tags they replace the page's tag set."),
			mcp.Items(tagItemSchema()),
		),
		mcp.WithBoolean("include_logo",
			mcp.Description("Prepend the style guide logo block."),
		),
		mcp.WithBoolean("check_similar",
			mcp.DefaultBool(true),
			mcp.Description("When page_title is given, look for other pages with a similar title before updating."),
		),
		mcp.WithNumber("similarity_threshold",
			mcp.DefaultNumber(similarity.DefaultThreshold),
			mcp.Description("Score in (0,1] at or above which another page counts as a duplicate."),
		),
		mcp.WithString("created_by",
			mcp.Description("Name of the user the change is attributed to."),
		),
		mcp.WithString("client_name",
			mcp.Description("Client or machine the request came from."),
		),
		mcp.WithString("ai_model",
			mcp.Description("AI model involved in writing the content, if any."),
		),
	)
}

// Handle processes one update_page call.
func (t *UpdatePageTool) Handle(ctx context.Context, req mcp.CallToolRequest, args UpdatePageArgs) (*mcp.CallToolResult, error) {
	if args.PageID <= 0 {
		return mcp.NewToolResultError("'page_id' is required"), nil
	}
	if len(args.Sections) == 0 {
		return mcp.NewToolResultError("'sections' must contain at least one section"), nil
	}

	threshold := args.SimilarityThreshold
	if threshold <= 0 {
		threshold = similarity.DefaultThreshold
	}

	// Without a new title there is nothing to score against, so the
	// check only runs on retitling updates.
	if args.PageTitle != "" && (args.CheckSimilar == nil || *args.CheckSimilar) {
		candidates := similarity.FindSimilarPages(ctx, t.api, args.PageTitle, 0, threshold, t.log)
		others := candidates[:0]
		for _, c := range candidates {
			// the page being updated is not its own duplicate
			if c.Item.ID == args.PageID {
				continue
			}
			others = append(others, c)
		}
		if len(others) > 0 {
			return mcp.NewToolResultText(formatCandidates("page(s)", others,
				"To update one of these pages instead, call update_page with its page ID.",
				"To apply this update anyway, set check_similar to false.",
			)), nil
		}
	}

	body := markdown.Generate(markdown.Document{
		Title:       args.PageTitle,
		Sections:    toSections(args.Sections),
		IncludeLogo: args.IncludeLogo,
		Meta: markdown.Metadata{
			CreatedBy: args.CreatedBy,
			Client:    args.ClientName,
			AIModel:   args.AIModel,
		},
	}, t.style)

	tags := autotag.Merge(toTags(args.Tags), autotag.Generate(args.PageTitle, body, t.style))

	page, err := t.api.UpdatePage(ctx, args.PageID, bookstack.UpdatePageRequest{
		Name:     args.PageTitle,
		Markdown: body,
		Tags:     tags,
	})
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return mcp.NewToolResultText(fmt.Sprintf(
		"Page %d updated successfully.\nName: %s\nURL: %s",
		page.ID, page.Name, naIfEmpty(page.URL),
	)), nil
}
