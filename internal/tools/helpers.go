// Package tools implements the MCP tool handlers for the BookStack
// server.
//
// Each file holds one tool: the tool struct carries its dependencies
// (the bookstack.API interface, style configuration, logger), Definition
// returns the mcp-go schema and the typed handler does the work. Caller
// argument problems are returned as tool errors and never reach the
// remote API.
package tools

import (
	"fmt"
	"strings"

	"github.com/alpenlexikon/bookstack-mcp/internal/bookstack"
	"github.com/alpenlexikon/bookstack-mcp/internal/htmltext"
	"github.com/alpenlexikon/bookstack-mcp/internal/markdown"
	"github.com/alpenlexikon/bookstack-mcp/internal/similarity"
)

const (
	defaultSearchCount = 10
	maxSearchCount     = 100
	previewLimit       = 200
	excerptLimit       = 100
)

// SectionArg mirrors one content section as supplied by the caller.
type SectionArg struct {
	Title   string `json:"title"`
	Content string `json:"content"`
	Type    string `json:"type,omitempty"`
}

// TagArg mirrors one manual tag as supplied by the caller.
type TagArg struct {
	Name  string `json:"name"`
	Value string `json:"value,omitempty"`
}

// sectionItemSchema is the JSON schema for one section entry, shared by
// create_page and update_page.
func sectionItemSchema() map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"title": map[string]any{
				"type":        "string",
				"description": "Section heading. An empty title suppresses the heading line.",
			},
			"content": map[string]any{
				"type":        "string",
				"description": "Section body in markdown.",
			},
			"type": map[string]any{
				"type":        "string",
				"enum":        []string{"normal", "info", "warning", "success", "danger"},
				"description": "Section styling. Defaults to normal.",
			},
		},
		"required": []string{"title", "content"},
	}
}

// tagItemSchema is the JSON schema for one tag entry.
func tagItemSchema() map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"name":  map[string]any{"type": "string", "description": "Tag name."},
			"value": map[string]any{"type": "string", "description": "Optional tag value."},
		},
		"required": []string{"name"},
	}
}

func toSections(args []SectionArg) []markdown.Section {
	sections := make([]markdown.Section, len(args))
	for i, arg := range args {
		kind := markdown.SectionKind(arg.Type)
		if kind == "" {
			kind = markdown.KindNormal
		}
		sections[i] = markdown.Section{Title: arg.Title, Content: arg.Content, Kind: kind}
	}
	return sections
}

func toTags(args []TagArg) []bookstack.Tag {
	if len(args) == 0 {
		return nil
	}
	tags := make([]bookstack.Tag, len(args))
	for i, arg := range args {
		tags[i] = bookstack.Tag{Name: arg.Name, Value: arg.Value}
	}
	return tags
}

// normalizePaging applies the shared defaults and bounds for search
// tools: page ≥ 1 (default 1), count 1–100 (default 10).
func normalizePaging(page, count int) (int, int) {
	if page < 1 {
		page = 1
	}
	if count < 1 {
		count = defaultSearchCount
	}
	if count > maxSearchCount {
		count = maxSearchCount
	}
	return page, count
}

func naIfEmpty(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}

func tagList(tags []bookstack.Tag) string {
	parts := make([]string, len(tags))
	for i, tag := range tags {
		if tag.Value != "" {
			parts[i] = tag.Name + "=" + tag.Value
		} else {
			parts[i] = tag.Name
		}
	}
	return strings.Join(parts, ", ")
}

// formatCandidates renders the duplicate-candidate report shared by
// create_page and create_book. The hint lines tell the caller how to
// proceed instead of (or despite) the match.
func formatCandidates(noun string, candidates []similarity.Candidate, hints ...string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Found %d similar %s:\n\n", len(candidates), noun)
	for i, c := range candidates {
		fmt.Fprintf(&b, "%d. **%s** (ID: %d, similarity %.2f)\n", i+1, c.Item.Name, c.Item.ID, c.Score)
		if c.Item.Book != nil {
			fmt.Fprintf(&b, "   Book: %s (ID: %d)\n", c.Item.Book.Name, c.Item.Book.ID)
		}
		if c.Item.PreviewHTML != nil && c.Item.PreviewHTML.Content != "" {
			fmt.Fprintf(&b, "   Preview: %s\n", htmltext.Excerpt(c.Item.PreviewHTML.Content, excerptLimit))
		}
		if c.Item.URL != "" {
			fmt.Fprintf(&b, "   URL: %s\n", c.Item.URL)
		}
		b.WriteString("\n")
	}
	b.WriteString(strings.Join(hints, "\n"))
	return b.String()
}
