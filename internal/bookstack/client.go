// Package bookstack implements the BookStack REST API client used by the
// MCP tools.
//
// Tools depend on the API interface (DIP): tests substitute a mock, the
// server wires the HTTP Client. All methods take a context and surface
// failures as *APIError with a kind and the attempted action.
package bookstack

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"go.uber.org/zap"
)

// API is the remote content surface the MCP tools depend on.
type API interface {
	SearchPages(ctx context.Context, query string, page, count int) (*SearchResult, error)
	SearchBooks(ctx context.Context, query string, page, count int) (*SearchResult, error)
	SearchShelves(ctx context.Context, query string, page, count int) (*SearchResult, error)
	SearchAll(ctx context.Context, query string, page, count int) (*SearchResult, error)
	GetPage(ctx context.Context, id int) (*Page, error)
	ListBooks(ctx context.Context) (*SearchResult, error)
	ListShelves(ctx context.Context) (*SearchResult, error)
	CreatePage(ctx context.Context, req CreatePageRequest) (*Page, error)
	UpdatePage(ctx context.Context, id int, req UpdatePageRequest) (*Page, error)
	CreateBook(ctx context.Context, req CreateBookRequest) (*Book, error)
}

const userAgent = "bookstack-mcp"

// Client talks to one BookStack instance with a static token pair.
type Client struct {
	baseURL    string
	token      string
	secret     string
	httpClient *http.Client
	log        *zap.Logger
}

var _ API = (*Client)(nil)

// NewClient creates a Client. httpClient may be nil (http.DefaultClient),
// log may be nil (no logging).
func NewClient(baseURL, token, secret string, httpClient *http.Client, log *zap.Logger) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		token:      token,
		secret:     secret,
		httpClient: httpClient,
		log:        log,
	}
}

func (c *Client) SearchPages(ctx context.Context, query string, page, count int) (*SearchResult, error) {
	return c.search(ctx, query, "page", page, count, fmt.Sprintf("search pages with query %q", query))
}

func (c *Client) SearchBooks(ctx context.Context, query string, page, count int) (*SearchResult, error) {
	return c.search(ctx, query, "book", page, count, fmt.Sprintf("search books with query %q", query))
}

func (c *Client) SearchShelves(ctx context.Context, query string, page, count int) (*SearchResult, error) {
	return c.search(ctx, query, "bookshelf", page, count, fmt.Sprintf("search shelves with query %q", query))
}

func (c *Client) SearchAll(ctx context.Context, query string, page, count int) (*SearchResult, error) {
	return c.search(ctx, query, "", page, count, fmt.Sprintf("search content with query %q", query))
}

// search runs one /api/search call. A non-empty itemType appends the
// BookStack type filter ({type:page} etc.) to the query.
func (c *Client) search(ctx context.Context, query, itemType string, page, count int, action string) (*SearchResult, error) {
	q := query
	if itemType != "" {
		q += "{type:" + itemType + "}"
	}
	vals := url.Values{}
	vals.Set("query", q)
	vals.Set("page", strconv.Itoa(page))
	vals.Set("count", strconv.Itoa(count))

	var out SearchResult
	if err := c.do(ctx, http.MethodGet, "/api/search", vals, nil, &out, action); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) GetPage(ctx context.Context, id int) (*Page, error) {
	var out Page
	action := fmt.Sprintf("read page %d", id)
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/pages/%d", id), nil, nil, &out, action); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ListBooks(ctx context.Context) (*SearchResult, error) {
	var out SearchResult
	if err := c.do(ctx, http.MethodGet, "/api/books", nil, nil, &out, "list books"); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ListShelves(ctx context.Context) (*SearchResult, error) {
	var out SearchResult
	if err := c.do(ctx, http.MethodGet, "/api/shelves", nil, nil, &out, "list shelves"); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreatePage(ctx context.Context, req CreatePageRequest) (*Page, error) {
	var out Page
	action := fmt.Sprintf("create page %q in book %d", req.Name, req.BookID)
	if err := c.do(ctx, http.MethodPost, "/api/pages", nil, req, &out, action); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdatePage(ctx context.Context, id int, req UpdatePageRequest) (*Page, error) {
	var out Page
	action := fmt.Sprintf("update page %d", id)
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/api/pages/%d", id), nil, req, &out, action); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreateBook(ctx context.Context, req CreateBookRequest) (*Book, error) {
	var out Book
	action := fmt.Sprintf("create book %q", req.Name)
	if err := c.do(ctx, http.MethodPost, "/api/books", nil, req, &out, action); err != nil {
		return nil, err
	}
	return &out, nil
}

// do performs one request/response cycle: build URL, marshal payload,
// set auth headers, map the status code, decode into out.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, payload, out any, action string) error {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return &APIError{Kind: KindSchemaMismatch, Action: action, Message: "encoding payload: " + err.Error()}
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return &APIError{Kind: KindRemote, Action: action, Message: err.Error()}
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Cache-Control", "no-cache")
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Authorization", "Token "+c.token+":"+c.secret)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	c.log.Debug("bookstack request", zap.String("method", method), zap.String("url", endpoint))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &APIError{Kind: KindRemote, Action: action, Message: err.Error()}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := c.statusError(resp, action)
		c.log.Warn("bookstack request failed",
			zap.String("url", endpoint),
			zap.Int("status", resp.StatusCode),
			zap.String("kind", string(apiErr.Kind)),
		)
		return apiErr
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &APIError{Kind: KindSchemaMismatch, Action: action, Message: "decoding response: " + err.Error()}
	}
	return nil
}

// statusError maps a non-2xx response to an APIError, pulling the API's
// own error message out of the body when it has one.
func (c *Client) statusError(resp *http.Response, action string) *APIError {
	kind := KindRemote
	switch resp.StatusCode {
	case http.StatusUnauthorized, http.StatusForbidden:
		kind = KindUnauthorized
	case http.StatusNotFound:
		kind = KindNotFound
	}

	message := resp.Status
	data, err := io.ReadAll(io.LimitReader(resp.Body, 64*1024))
	if err == nil && len(data) > 0 {
		var apiBody struct {
			Error struct {
				Message string `json:"message"`
			} `json:"error"`
		}
		if json.Unmarshal(data, &apiBody) == nil && apiBody.Error.Message != "" {
			message = apiBody.Error.Message
		}
	}
	return &APIError{Kind: kind, Action: action, Status: resp.StatusCode, Message: message}
}
