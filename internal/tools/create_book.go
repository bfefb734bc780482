package tools

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"go.uber.org/zap"

	"github.com/alpenlexikon/bookstack-mcp/internal/bookstack"
	"github.com/alpenlexikon/bookstack-mcp/internal/similarity"
)

// CreateBookTool handles the create_book MCP tool.
type CreateBookTool struct {
	api bookstack.API
	log *zap.Logger
}

// NewCreateBookTool creates a CreateBookTool with its dependencies.
func NewCreateBookTool(api bookstack.API, log *zap.Logger) *CreateBookTool {
	if log == nil {
		log = zap.NewNop()
	}
	return &CreateBookTool{api: api, log: log}
}

// CreateBookArgs are the caller-supplied arguments for create_book.
type CreateBookArgs struct {
	Name                string   `json:"name"`
	Description         string   `json:"description,omitempty"`
	Tags                []TagArg `json:"tags,omitempty"`
	CheckSimilar        *bool    `json:"check_similar,omitempty"`
	SimilarityThreshold float64  `json:"similarity_threshold,omitempty"`
}

// Definition returns the MCP tool definition for registration.
func (t *CreateBookTool) Definition() mcp.Tool {
	return mcp.NewTool("create_book",
		mcp.WithDescription(
			"Create a new book in BookStack. Unless check_similar is false, "+
				"existing books with a similar name are reported instead of creating a duplicate.",
		),
		mcp.WithString("name",
			mcp.Required(),
			mcp.Description("Name of the new book."),
		),
		mcp.WithString("description",
			mcp.Description("Optional description (markdown)."),
		),
		mcp.WithArray("tags",
			mcp.Description("Optional tags for the book."),
			mcp.Items(tagItemSchema()),
		),
		mcp.WithBoolean("check_similar",
			mcp.DefaultBool(true),
			mcp.Description("Look for books with a similar name before creating."),
		),
		mcp.WithNumber("similarity_threshold",
			mcp.DefaultNumber(similarity.DefaultThreshold),
			mcp.Description("Score in (0,1] at or above which an existing book counts as a duplicate."),
		),
	)
}

// Handle processes one create_book call.
func (t *CreateBookTool) Handle(ctx context.Context, req mcp.CallToolRequest, args CreateBookArgs) (*mcp.CallToolResult, error) {
	if args.Name == "" {
		return mcp.NewToolResultError("'name' is required"), nil
	}

	threshold := args.SimilarityThreshold
	if threshold <= 0 {
		threshold = similarity.DefaultThreshold
	}

	if args.CheckSimilar == nil || *args.CheckSimilar {
		candidates := similarity.FindSimilarBooks(ctx, t.api, args.Name, threshold, t.log)
		if len(candidates) > 0 {
			return mcp.NewToolResultText(formatCandidates("book(s)", candidates,
				"To add pages to one of these books instead, pass its ID as book_id to create_page.",
				"To create a new book anyway, set check_similar to false.",
			)), nil
		}
	}

	book, err := t.api.CreateBook(ctx, bookstack.CreateBookRequest{
		Name:        args.Name,
		Description: args.Description,
		Tags:        toTags(args.Tags),
	})
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return mcp.NewToolResultText(fmt.Sprintf(
		"Book created successfully.\nID: %d\nName: %s\nURL: %s",
		book.ID, book.Name, naIfEmpty(book.URL),
	)), nil
}
