// Package markdown assembles styled page documents from structured
// sections according to the configured style guide. Output is
// deterministic: identical inputs (including Metadata.Timestamp) produce
// byte-identical documents.
package markdown

import (
	"strings"
	"time"

	"github.com/alpenlexikon/bookstack-mcp/internal/config"
)

// SectionKind selects the styling prefix for a section heading.
type SectionKind string

const (
	KindNormal  SectionKind = "normal"
	KindInfo    SectionKind = "info"
	KindWarning SectionKind = "warning"
	KindSuccess SectionKind = "success"
	KindDanger  SectionKind = "danger"
)

// Section is one titled, typed block of page content. Content is taken
// verbatim; an empty (after trim) Title suppresses the heading line but
// never the content.
type Section struct {
	Title   string
	Content string
	Kind    SectionKind
}

// Metadata describes who and what produced a document. All fields are
// optional. A zero Timestamp means "now".
type Metadata struct {
	CreatedBy string
	Client    string
	AIModel   string
	Timestamp time.Time
}

// Document is the input to Generate: the shared create/update
// substructure plus an optional title.
type Document struct {
	Title        string // empty suppresses the H1 line
	Sections     []Section
	IncludeLogo  bool
	BaseDocument string // template body, emitted before the assembled content
	Meta         Metadata
}

// Generate renders doc into a single markdown string following the style
// rules in cfg. When a base document is present it comes first, separated
// from the assembled sections by a blank line; its own headings are kept
// as-is.
func Generate(doc Document, cfg config.Style) string {
	var b strings.Builder

	if base := strings.TrimSpace(doc.BaseDocument); base != "" {
		b.WriteString(base)
		b.WriteString("\n\n")
	}
	if doc.IncludeLogo && cfg.LogoMarkdown != "" {
		b.WriteString(cfg.LogoMarkdown)
		b.WriteString("\n\n")
	}
	if doc.Title != "" {
		b.WriteString(cfg.HeadingLevel1 + " " + doc.Title)
		b.WriteString("\n\n")
	}
	for _, section := range doc.Sections {
		if title := strings.TrimSpace(section.Title); title != "" {
			b.WriteString(cfg.HeadingLevel2 + " " + kindPrefix(section.Kind, cfg) + title)
			b.WriteString("\n\n")
		}
		b.WriteString(section.Content)
		b.WriteString("\n\n")
	}
	if cfg.AutoLegalFooterEnabled {
		if cfg.LegalFooterMarkdown != "" {
			b.WriteString(cfg.LegalFooterMarkdown)
			b.WriteString("\n\n")
		}
		b.WriteString(attributionLine(doc.Meta))
		b.WriteString("\n")
	}

	return strings.TrimSpace(b.String())
}

func kindPrefix(kind SectionKind, cfg config.Style) string {
	switch kind {
	case KindInfo:
		return cfg.InfoPrefix
	case KindWarning:
		return cfg.WarningPrefix
	case KindSuccess:
		return cfg.SuccessPrefix
	case KindDanger:
		return cfg.DangerPrefix
	default:
		return ""
	}
}

// attributionLine renders the trailing metadata quote. Clauses for
// creator, client and AI model appear only when the field was supplied.
func attributionLine(meta Metadata) string {
	ts := meta.Timestamp
	if ts.IsZero() {
		ts = time.Now()
	}
	line := "> Last modified/created: " + ts.Format("02.01.2006 15:04")
	if meta.CreatedBy != "" {
		line += " by " + meta.CreatedBy
	}
	if meta.Client != "" {
		line += " (client: " + meta.Client + ")"
	}
	if meta.AIModel != "" {
		line += " (AI: " + meta.AIModel + ")"
	}
	return line
}
