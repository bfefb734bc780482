package tools

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/alpenlexikon/bookstack-mcp/internal/bookstack"
)

func TestUpdatePage_ValidatesArguments(t *testing.T) {
	tests := []struct {
		name string
		args UpdatePageArgs
	}{
		{"missing page_id", UpdatePageArgs{Sections: []SectionArg{{Title: "A", Content: "b"}}}},
		{"missing sections", UpdatePageArgs{PageID: 42}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api := &mockAPI{}
			tool := NewUpdatePageTool(api, testStyle(), nil)

			result, err := tool.Handle(context.Background(), mcp.CallToolRequest{}, tt.args)
			if err != nil {
				t.Fatalf("handler error: %v", err)
			}
			if !isErrorResult(result) {
				t.Error("expected error result")
			}
			if api.updatePageCalls != 0 {
				t.Error("invalid arguments must not reach the API")
			}
		})
	}
}

func TestUpdatePage_ReplacesBody(t *testing.T) {
	api := &mockAPI{}
	tool := NewUpdatePageTool(api, testStyle(), nil)

	_, err := tool.Handle(context.Background(), mcp.CallToolRequest{}, UpdatePageArgs{
		PageID:    42,
		PageTitle: "Peak",
		Sections:  []SectionArg{{Title: "Intro", Content: "Body.", Type: "warning"}},
	})
	if err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if api.updatePageCalls != 1 || api.updatePageID != 42 {
		t.Fatalf("expected 1 update of page 42, got %d calls on %d", api.updatePageCalls, api.updatePageID)
	}

	want := "## Peak\n\n### :warning: Intro\n\nBody."
	if api.updatePageReq.Markdown != want {
		t.Errorf("Markdown = %q, want %q", api.updatePageReq.Markdown, want)
	}
	if api.updatePageReq.Name != "Peak" {
		t.Errorf("Name = %q, want Peak", api.updatePageReq.Name)
	}
}

func TestUpdatePage_OmittedTitleAndTagsStayUntouched(t *testing.T) {
	api := &mockAPI{}
	tool := NewUpdatePageTool(api, testStyle(), nil)

	_, err := tool.Handle(context.Background(), mcp.CallToolRequest{}, UpdatePageArgs{
		PageID:   42,
		Sections: []SectionArg{{Title: "Intro", Content: "Body."}},
	})
	if err != nil {
		t.Fatalf("handler error: %v", err)
	}

	// empty Name and nil Tags carry omitempty, so BookStack keeps the
	// current title and tag set
	if api.updatePageReq.Name != "" {
		t.Errorf("Name = %q, want empty", api.updatePageReq.Name)
	}
	if api.updatePageReq.Tags != nil {
		t.Errorf("Tags = %v, want nil", api.updatePageReq.Tags)
	}
}

func TestUpdatePage_ComputedTagsReplaceSet(t *testing.T) {
	style := testStyle()
	style.AutoTagsEnabled = true
	style.AutoTagsKeywords = []string{"Glacier"}

	api := &mockAPI{}
	tool := NewUpdatePageTool(api, style, nil)

	_, err := tool.Handle(context.Background(), mcp.CallToolRequest{}, UpdatePageArgs{
		PageID:   42,
		Sections: []SectionArg{{Title: "Intro", Content: "Crossing the glacier."}},
		Tags:     []TagArg{{Name: "Region", Value: "Valais"}},
	})
	if err != nil {
		t.Fatalf("handler error: %v", err)
	}

	want := []bookstack.Tag{{Name: "Region", Value: "Valais"}, {Name: "Glacier"}}
	got := api.updatePageReq.Tags
	if len(got) != len(want) {
		t.Fatalf("tags = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("tag %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestUpdatePage_DuplicateTitleShortCircuits(t *testing.T) {
	api := &mockAPI{searchPagesResult: &bookstack.SearchResult{Data: []bookstack.SearchItem{
		{ID: 7, Name: "Peak", URL: "https://wiki.example/peak"},
	}}}
	tool := NewUpdatePageTool(api, testStyle(), nil)

	result, err := tool.Handle(context.Background(), mcp.CallToolRequest{}, UpdatePageArgs{
		PageID:    42,
		PageTitle: "Peak",
		Sections:  []SectionArg{{Title: "Intro", Content: "Body."}},
	})
	if err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if isErrorResult(result) {
		t.Fatalf("duplicate report is not an error: %s", getResultText(t, result))
	}

	text := getResultText(t, result)
	if !strings.Contains(text, "Found 1 similar page(s):") {
		t.Errorf("missing candidate header:\n%s", text)
	}
	if !strings.Contains(text, "set check_similar to false") {
		t.Errorf("missing override hint:\n%s", text)
	}
	if api.updatePageCalls != 0 {
		t.Errorf("page must not be updated, got %d update calls", api.updatePageCalls)
	}
}

func TestUpdatePage_OwnPageIsNotADuplicate(t *testing.T) {
	api := &mockAPI{searchPagesResult: &bookstack.SearchResult{Data: []bookstack.SearchItem{
		{ID: 42, Name: "Peak"},
	}}}
	tool := NewUpdatePageTool(api, testStyle(), nil)

	result, err := tool.Handle(context.Background(), mcp.CallToolRequest{}, UpdatePageArgs{
		PageID:    42,
		PageTitle: "Peak",
		Sections:  []SectionArg{{Title: "Intro", Content: "Body."}},
	})
	if err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if isErrorResult(result) {
		t.Fatalf("unexpected error result: %s", getResultText(t, result))
	}
	if api.updatePageCalls != 1 {
		t.Errorf("keeping the own title must update, got %d update calls", api.updatePageCalls)
	}
}

func TestUpdatePage_NoTitleSkipsDuplicateCheck(t *testing.T) {
	api := &mockAPI{}
	tool := NewUpdatePageTool(api, testStyle(), nil)

	_, err := tool.Handle(context.Background(), mcp.CallToolRequest{}, UpdatePageArgs{
		PageID:   42,
		Sections: []SectionArg{{Title: "Intro", Content: "Body."}},
	})
	if err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if api.searchPagesCalls != 0 {
		t.Errorf("no proposed title, nothing to score: %d search calls", api.searchPagesCalls)
	}
	if api.updatePageCalls != 1 {
		t.Errorf("expected 1 update call, got %d", api.updatePageCalls)
	}
}

func TestUpdatePage_CheckSimilarDisabled(t *testing.T) {
	api := &mockAPI{searchPagesResult: &bookstack.SearchResult{Data: []bookstack.SearchItem{
		{ID: 7, Name: "Peak"},
	}}}
	tool := NewUpdatePageTool(api, testStyle(), nil)

	_, err := tool.Handle(context.Background(), mcp.CallToolRequest{}, UpdatePageArgs{
		PageID:       42,
		PageTitle:    "Peak",
		Sections:     []SectionArg{{Title: "Intro", Content: "Body."}},
		CheckSimilar: boolPtr(false),
	})
	if err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if api.searchPagesCalls != 0 {
		t.Errorf("duplicate check ran despite check_similar=false, %d search calls", api.searchPagesCalls)
	}
	if api.updatePageCalls != 1 {
		t.Errorf("expected 1 update call, got %d", api.updatePageCalls)
	}
}

func TestUpdatePage_DuplicateCheckFailsOpen(t *testing.T) {
	api := &mockAPI{searchPagesErr: errors.New("connection refused")}
	tool := NewUpdatePageTool(api, testStyle(), nil)

	result, err := tool.Handle(context.Background(), mcp.CallToolRequest{}, UpdatePageArgs{
		PageID:    42,
		PageTitle: "Peak",
		Sections:  []SectionArg{{Title: "Intro", Content: "Body."}},
	})
	if err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if isErrorResult(result) {
		t.Fatalf("search failure must not block the update: %s", getResultText(t, result))
	}
	if api.updatePageCalls != 1 {
		t.Errorf("expected 1 update call, got %d", api.updatePageCalls)
	}
}

func TestUpdatePage_RemoteFailure(t *testing.T) {
	api := &mockAPI{updatePageErr: errors.New("update failed")}
	tool := NewUpdatePageTool(api, testStyle(), nil)

	result, err := tool.Handle(context.Background(), mcp.CallToolRequest{}, UpdatePageArgs{
		PageID:   42,
		Sections: []SectionArg{{Title: "Intro", Content: "Body."}},
	})
	if err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !isErrorResult(result) {
		t.Error("expected error result")
	}
}

func TestUpdatePage_Success(t *testing.T) {
	api := &mockAPI{updatePageResult: &bookstack.Page{
		ID: 42, Name: "Peak", URL: "https://wiki.example/peak",
	}}
	tool := NewUpdatePageTool(api, testStyle(), nil)

	result, err := tool.Handle(context.Background(), mcp.CallToolRequest{}, UpdatePageArgs{
		PageID:    42,
		PageTitle: "Peak",
		Sections:  []SectionArg{{Title: "Intro", Content: "Body."}},
	})
	if err != nil {
		t.Fatalf("handler error: %v", err)
	}

	text := getResultText(t, result)
	if !strings.HasPrefix(text, "Page 42 updated successfully.") {
		t.Errorf("unexpected result: %q", text)
	}
	if !strings.Contains(text, "URL: https://wiki.example/peak") {
		t.Errorf("missing URL: %q", text)
	}
}
