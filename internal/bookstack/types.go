package bookstack

// Tag is a name/value label on any BookStack content item. Value may be
// empty; names are unique case-insensitively within one item.
type Tag struct {
	Name  string `json:"name"`
	Value string `json:"value,omitempty"`
}

// BookRef is the abbreviated book reference embedded in search results.
type BookRef struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// PreviewHTML is the highlighted snippet BookStack attaches to search hits.
type PreviewHTML struct {
	Name    string `json:"name"`
	Content string `json:"content"`
}

// SearchItem is one entry of a /api/search (or listing) response.
// Type is one of "bookshelf", "book", "chapter" or "page"; listing
// endpoints leave it empty.
type SearchItem struct {
	ID          int          `json:"id"`
	BookID      int          `json:"book_id,omitempty"`
	Name        string       `json:"name"`
	Slug        string       `json:"slug"`
	Type        string       `json:"type,omitempty"`
	URL         string       `json:"url,omitempty"`
	Description string       `json:"description,omitempty"`
	CreatedAt   string       `json:"created_at,omitempty"`
	UpdatedAt   string       `json:"updated_at,omitempty"`
	Tags        []Tag        `json:"tags,omitempty"`
	Book        *BookRef     `json:"book,omitempty"`
	PreviewHTML *PreviewHTML `json:"preview_html,omitempty"`
}

// SearchResult is the envelope of search and listing endpoints.
type SearchResult struct {
	Data  []SearchItem `json:"data"`
	Total int          `json:"total,omitempty"`
}

// Page is the detailed page representation returned by /api/pages/{id}
// and by the create/update calls. Markdown is empty for pages authored in
// the WYSIWYG editor; HTML (or RawHTML) is the fallback body.
type Page struct {
	ID        int    `json:"id"`
	BookID    int    `json:"book_id"`
	ChapterID int    `json:"chapter_id,omitempty"`
	Name      string `json:"name"`
	Slug      string `json:"slug"`
	Markdown  string `json:"markdown,omitempty"`
	HTML      string `json:"html,omitempty"`
	RawHTML   string `json:"raw_html,omitempty"`
	Template  bool   `json:"template,omitempty"`
	Tags      []Tag  `json:"tags,omitempty"`
	URL       string `json:"url,omitempty"`
}

// Book is the detailed book representation returned by /api/books calls.
type Book struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Description string `json:"description,omitempty"`
	Tags        []Tag  `json:"tags,omitempty"`
	URL         string `json:"url,omitempty"`
}

// CreatePageRequest is the payload of POST /api/pages.
type CreatePageRequest struct {
	BookID    int    `json:"book_id"`
	ChapterID int    `json:"chapter_id,omitempty"`
	Name      string `json:"name"`
	Markdown  string `json:"markdown"`
	Tags      []Tag  `json:"tags,omitempty"`
}

// UpdatePageRequest is the payload of PUT /api/pages/{id}. Name is only
// sent when set, preserving the existing page name by omission. Tags are
// only sent when non-empty: BookStack replaces the full tag set when the
// field is present, so omitting it means "leave tags untouched".
type UpdatePageRequest struct {
	Name     string `json:"name,omitempty"`
	Markdown string `json:"markdown"`
	Tags     []Tag  `json:"tags,omitempty"`
}

// CreateBookRequest is the payload of POST /api/books.
type CreateBookRequest struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Tags        []Tag  `json:"tags,omitempty"`
}
