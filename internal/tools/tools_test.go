package tools

import (
	"context"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/alpenlexikon/bookstack-mcp/internal/bookstack"
)

// mockAPI implements bookstack.API for handler tests. Each method records
// its calls and arguments and returns the configured result or error.
type mockAPI struct {
	searchPagesResult *bookstack.SearchResult
	searchPagesErr    error
	searchPagesCalls  int
	searchPagesQuery  string

	searchBooksResult *bookstack.SearchResult
	searchBooksErr    error
	searchBooksCalls  int

	searchShelvesResult *bookstack.SearchResult
	searchShelvesErr    error

	searchAllResult *bookstack.SearchResult
	searchAllErr    error

	getPageResult *bookstack.Page
	getPageErr    error
	getPageCalls  int
	getPageID     int

	listBooksResult *bookstack.SearchResult
	listBooksErr    error
	listBooksCalls  int

	listShelvesResult *bookstack.SearchResult
	listShelvesErr    error
	listShelvesCalls  int

	createPageResult *bookstack.Page
	createPageErr    error
	createPageCalls  int
	createPageReq    bookstack.CreatePageRequest

	updatePageResult *bookstack.Page
	updatePageErr    error
	updatePageCalls  int
	updatePageID     int
	updatePageReq    bookstack.UpdatePageRequest

	createBookResult *bookstack.Book
	createBookErr    error
	createBookCalls  int
	createBookReq    bookstack.CreateBookRequest
}

var _ bookstack.API = (*mockAPI)(nil)

func emptyResult(r *bookstack.SearchResult) *bookstack.SearchResult {
	if r == nil {
		return &bookstack.SearchResult{}
	}
	return r
}

func (m *mockAPI) SearchPages(ctx context.Context, query string, page, count int) (*bookstack.SearchResult, error) {
	m.searchPagesCalls++
	m.searchPagesQuery = query
	if m.searchPagesErr != nil {
		return nil, m.searchPagesErr
	}
	return emptyResult(m.searchPagesResult), nil
}

func (m *mockAPI) SearchBooks(ctx context.Context, query string, page, count int) (*bookstack.SearchResult, error) {
	m.searchBooksCalls++
	if m.searchBooksErr != nil {
		return nil, m.searchBooksErr
	}
	return emptyResult(m.searchBooksResult), nil
}

func (m *mockAPI) SearchShelves(ctx context.Context, query string, page, count int) (*bookstack.SearchResult, error) {
	if m.searchShelvesErr != nil {
		return nil, m.searchShelvesErr
	}
	return emptyResult(m.searchShelvesResult), nil
}

func (m *mockAPI) SearchAll(ctx context.Context, query string, page, count int) (*bookstack.SearchResult, error) {
	if m.searchAllErr != nil {
		return nil, m.searchAllErr
	}
	return emptyResult(m.searchAllResult), nil
}

func (m *mockAPI) GetPage(ctx context.Context, id int) (*bookstack.Page, error) {
	m.getPageCalls++
	m.getPageID = id
	if m.getPageErr != nil {
		return nil, m.getPageErr
	}
	if m.getPageResult == nil {
		return &bookstack.Page{ID: id}, nil
	}
	return m.getPageResult, nil
}

func (m *mockAPI) ListBooks(ctx context.Context) (*bookstack.SearchResult, error) {
	m.listBooksCalls++
	if m.listBooksErr != nil {
		return nil, m.listBooksErr
	}
	return emptyResult(m.listBooksResult), nil
}

func (m *mockAPI) ListShelves(ctx context.Context) (*bookstack.SearchResult, error) {
	m.listShelvesCalls++
	if m.listShelvesErr != nil {
		return nil, m.listShelvesErr
	}
	return emptyResult(m.listShelvesResult), nil
}

func (m *mockAPI) CreatePage(ctx context.Context, req bookstack.CreatePageRequest) (*bookstack.Page, error) {
	m.createPageCalls++
	m.createPageReq = req
	if m.createPageErr != nil {
		return nil, m.createPageErr
	}
	if m.createPageResult == nil {
		return &bookstack.Page{ID: 1, BookID: req.BookID, Name: req.Name}, nil
	}
	return m.createPageResult, nil
}

func (m *mockAPI) UpdatePage(ctx context.Context, id int, req bookstack.UpdatePageRequest) (*bookstack.Page, error) {
	m.updatePageCalls++
	m.updatePageID = id
	m.updatePageReq = req
	if m.updatePageErr != nil {
		return nil, m.updatePageErr
	}
	if m.updatePageResult == nil {
		return &bookstack.Page{ID: id, Name: req.Name}, nil
	}
	return m.updatePageResult, nil
}

func (m *mockAPI) CreateBook(ctx context.Context, req bookstack.CreateBookRequest) (*bookstack.Book, error) {
	m.createBookCalls++
	m.createBookReq = req
	if m.createBookErr != nil {
		return nil, m.createBookErr
	}
	if m.createBookResult == nil {
		return &bookstack.Book{ID: 1, Name: req.Name}, nil
	}
	return m.createBookResult, nil
}

func isErrorResult(result *mcp.CallToolResult) bool {
	return result != nil && result.IsError
}

func getResultText(t *testing.T, result *mcp.CallToolResult) string {
	t.Helper()
	if result == nil || len(result.Content) == 0 {
		t.Fatal("result has no content")
	}
	tc, ok := mcp.AsTextContent(result.Content[0])
	if !ok {
		t.Fatalf("result content is not text: %T", result.Content[0])
	}
	return tc.Text
}

func boolPtr(b bool) *bool { return &b }
