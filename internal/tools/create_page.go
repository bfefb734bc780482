package tools

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"go.uber.org/zap"

	"github.com/alpenlexikon/bookstack-mcp/internal/autotag"
	"github.com/alpenlexikon/bookstack-mcp/internal/bookstack"
	"github.com/alpenlexikon/bookstack-mcp/internal/config"
	"github.com/alpenlexikon/bookstack-mcp/internal/htmltext"
	"github.com/alpenlexikon/bookstack-mcp/internal/markdown"
	"github.com/alpenlexikon/bookstack-mcp/internal/similarity"
)

// CreatePageTool handles the create_page MCP tool: duplicate check,
// optional template seed, styled assembly, tag merge, remote create.
type CreatePageTool struct {
	api   bookstack.API
	style config.Style
	log   *zap.Logger
}

// NewCreatePageTool creates a CreatePageTool with its dependencies.
func NewCreatePageTool(api bookstack.API, style config.Style, log *zap.Logger) *CreatePageTool {
	if log == nil {
		log = zap.NewNop()
	}
	return &CreatePageTool{api: api, style: style, log: log}
}

// CreatePageArgs are the caller-supplied arguments for create_page.
type CreatePageArgs struct {
	BookID              int          `json:"book_id"`
	PageTitle           string       `json:"page_title"`
	Sections            []SectionArg `json:"sections"`
	Tags                []TagArg     `json:"tags,omitempty"`
	IncludeLogo         bool         `json:"include_logo,omitempty"`
	ChapterID           int          `json:"chapter_id,omitempty"`
	CheckSimilar        *bool        `json:"check_similar,omitempty"`
	SimilarityThreshold float64      `json:"similarity_threshold,omitempty"`
	TemplateID          int          `json:"template_id,omitempty"`
	CreatedBy           string       `json:"created_by,omitempty"`
	ClientName          string       `json:"client_name,omitempty"`
	AIModel             string       `json:"ai_model,omitempty"`
}

// Definition returns the MCP tool definition for registration.
func (t *CreatePageTool) Definition() mcp.Tool {
	return mcp.NewTool("create_page",
		mcp.WithDescription(
			"Create a new page in BookStack from structured sections, applying the configured style guide. "+
				"Unless check_similar is false, existing pages with a similar title are reported instead of creating a duplicate.",
		),
		mcp.WithNumber("book_id",
			mcp.Required(),
			mcp.Description("ID of the book the page is created in."),
		),
		mcp.WithString("page_title",
			mcp.Required(),
			mcp.Description("Main title of the new page."),
		),
		mcp.WithArray("sections",
			mcp.Required(),
			mcp.Description("Ordered content sections of the page."),
			mcp.Items(sectionItemSchema()),
		),
		mcp.WithArray("tags",
			mcp.Description("Manual tags. On a name collision they win over generated tags."),
			mcp.Items(tagItemSchema()),
		),
		mcp.WithBoolean("include_logo",
			mcp.Description("Prepend the style guide logo block."),
		),
		mcp.WithNumber("chapter_id",
			mcp.Description("Optional chapter within the book to file the page under."),
		),
		mcp.WithBoolean("check_similar",
			mcp.DefaultBool(true),
			mcp.Description("Look for pages with a similar title before creating."),
		),
		mcp.WithNumber("similarity_threshold",
			mcp.DefaultNumber(similarity.DefaultThreshold),
			mcp.Description("Score in (0,1] at or above which an existing page counts as a duplicate."),
		),
		mcp.WithNumber("template_id",
			mcp.Description("Page ID of a template whose body seeds the new page."),
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

// Handle processes one create_page call.
func (t *CreatePageTool) Handle(ctx context.Context, req mcp.CallToolRequest, args CreatePageArgs) (*mcp.CallToolResult, error) {
	if args.BookID <= 0 {
		return mcp.NewToolResultError("'book_id' is required"), nil
	}
	if args.PageTitle == "" {
		return mcp.NewToolResultError("'page_title' is required"), nil
	}
	if len(args.Sections) == 0 {
		return mcp.NewToolResultError("'sections' must contain at least one section"), nil
	}

	threshold := args.SimilarityThreshold
	if threshold <= 0 {
		threshold = similarity.DefaultThreshold
	}

	if args.CheckSimilar == nil || *args.CheckSimilar {
		candidates := similarity.FindSimilarPages(ctx, t.api, args.PageTitle, args.BookID, threshold, t.log)
		if len(candidates) > 0 {
			return mcp.NewToolResultText(formatCandidates("page(s)", candidates,
				"To update one of these pages instead, call update_page with its page ID.",
				"To create a new page anyway, set check_similar to false.",
			)), nil
		}
	}

	base, errResult := t.loadTemplate(ctx, args.TemplateID)
	if errResult != nil {
		return errResult, nil
	}

	body := markdown.Generate(markdown.Document{
		Title:        args.PageTitle,
		Sections:     toSections(args.Sections),
		IncludeLogo:  args.IncludeLogo,
		BaseDocument: base,
		Meta: markdown.Metadata{
			CreatedBy: args.CreatedBy,
			Client:    args.ClientName,
			AIModel:   args.AIModel,
		},
	}, t.style)

	tags := autotag.Merge(toTags(args.Tags), autotag.Generate(args.PageTitle, body, t.style))

	page, err := t.api.CreatePage(ctx, bookstack.CreatePageRequest{
		BookID:    args.BookID,
		ChapterID: args.ChapterID,
		Name:      args.PageTitle,
		Markdown:  body,
		Tags:      tags,
	})
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return mcp.NewToolResultText(fmt.Sprintf(
		"Page created successfully in book %d.\nID: %d\nName: %s\nURL: %s",
		page.BookID, page.ID, page.Name, naIfEmpty(page.URL),
	)), nil
}

// loadTemplate fetches the template page body when templateID is set.
// Unlike the duplicate check this is fatal on failure: the caller asked
// for specific content to seed from, so a missing body aborts the create.
func (t *CreatePageTool) loadTemplate(ctx context.Context, templateID int) (string, *mcp.CallToolResult) {
	if templateID <= 0 {
		return "", nil
	}
	tmpl, err := t.api.GetPage(ctx, templateID)
	if err != nil {
		return "", mcp.NewToolResultError(fmt.Sprintf("loading template %d: %v", templateID, err))
	}

	base := tmpl.Markdown
	if base == "" {
		raw := tmpl.HTML
		if raw == "" {
			raw = tmpl.RawHTML
		}
		if raw != "" {
			converted, convErr := htmltext.ToMarkdown(raw)
			if convErr != nil {
				return "", mcp.NewToolResultError(fmt.Sprintf("converting template %d to markdown: %v", templateID, convErr))
			}
			base = converted
		}
	}
	if strings.TrimSpace(base) == "" {
		return "", mcp.NewToolResultError(fmt.Sprintf("template page %d has no retrievable content", templateID))
	}
	return base, nil
}
