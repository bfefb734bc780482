// Package htmltext converts BookStack HTML bodies into the text formats
// the tools return: markdown for full page content, plain text for search
// previews and duplicate-report excerpts.
package htmltext

import (
	"regexp"
	"strings"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"
	"golang.org/x/net/html"
)

// ToMarkdown converts an HTML fragment to markdown.
func ToMarkdown(fragment string) (string, error) {
	return htmltomarkdown.ConvertString(fragment)
}

var (
	spaceRuns   = regexp.MustCompile(`[ \t]+`)
	newlineRuns = regexp.MustCompile(`\n{3,}`)
)

// PlainText strips an HTML fragment down to readable text: paragraphs and
// headings become blank lines, list items get a bullet, script and style
// bodies are dropped entirely. Entities are decoded by the tokenizer.
func PlainText(fragment string) string {
	if fragment == "" {
		return ""
	}

	z := html.NewTokenizer(strings.NewReader(fragment))
	var b strings.Builder
	skipDepth := 0
	for {
		tt := z.Next()
		switch tt {
		case html.ErrorToken:
			return collapse(b.String())
		case html.StartTagToken, html.SelfClosingTagToken:
			name, _ := z.TagName()
			switch string(name) {
			case "script", "style":
				// a self-closing script has no end tag to pop
				if tt == html.StartTagToken {
					skipDepth++
				}
			case "br":
				b.WriteString("\n")
			case "li":
				b.WriteString("• ")
			}
		case html.EndTagToken:
			name, _ := z.TagName()
			switch string(name) {
			case "script", "style":
				if skipDepth > 0 {
					skipDepth--
				}
			case "p", "h1", "h2", "h3", "h4", "h5", "h6":
				b.WriteString("\n\n")
			case "div", "li":
				b.WriteString("\n")
			}
		case html.TextToken:
			if skipDepth == 0 {
				b.Write(z.Text())
			}
		}
	}
}

// Excerpt returns the plain text of fragment truncated to limit runes,
// with an ellipsis when something was cut.
func Excerpt(fragment string, limit int) string {
	text := strings.ReplaceAll(PlainText(fragment), "\n", " ")
	runes := []rune(text)
	if len(runes) <= limit {
		return text
	}
	return strings.TrimSpace(string(runes[:limit])) + "..."
}

func collapse(s string) string {
	s = spaceRuns.ReplaceAllString(s, " ")
	s = newlineRuns.ReplaceAllString(s, "\n\n")
	return strings.TrimSpace(s)
}
