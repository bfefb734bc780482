// Package autotag derives tags from page content against the configured
// keyword list and merges manual and generated tag sets.
package autotag

import (
	"strings"

	"github.com/alpenlexikon/bookstack-mcp/internal/bookstack"
	"github.com/alpenlexikon/bookstack-mcp/internal/config"
)

// Generate returns one valueless tag per configured keyword that occurs
// in title or content. Matching is case-insensitive substring
// containment; the tag name keeps the keyword's configured casing and
// tags come out in configured order.
func Generate(title, content string, cfg config.Style) []bookstack.Tag {
	if !cfg.AutoTagsEnabled || len(cfg.AutoTagsKeywords) == 0 {
		return nil
	}

	haystack := strings.ToLower(title) + " " + strings.ToLower(content)
	var tags []bookstack.Tag
	for _, keyword := range cfg.AutoTagsKeywords {
		if keyword == "" {
			continue
		}
		if strings.Contains(haystack, strings.ToLower(keyword)) {
			tags = append(tags, bookstack.Tag{Name: keyword})
		}
	}
	return tags
}

// Merge concatenates manual and generated tags and de-duplicates by
// case-insensitive name, keeping the first occurrence. Manual tags come
// first, so they win over generated tags with the same name.
func Merge(manual, auto []bookstack.Tag) []bookstack.Tag {
	seen := make(map[string]struct{}, len(manual)+len(auto))
	var merged []bookstack.Tag
	for _, tags := range [][]bookstack.Tag{manual, auto} {
		for _, tag := range tags {
			key := strings.ToLower(tag.Name)
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}
			merged = append(merged, tag)
		}
	}
	return merged
}
