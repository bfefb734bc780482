package similarity

import (
	"context"

	"go.uber.org/zap"

	"github.com/alpenlexikon/bookstack-mcp/internal/bookstack"
)

// DefaultThreshold is the score above which an existing item counts as a
// duplicate candidate unless the caller chose another cutoff.
const DefaultThreshold = 0.7

// searchCount caps the single search call the page check issues. More
// results are never fetched; duplicate detection is advisory.
const searchCount = 50

// Candidate pairs an existing item with its similarity to a proposed title.
type Candidate struct {
	Item  bookstack.SearchItem
	Score float64
}

// PageSearcher is the slice of the BookStack API the page duplicate check
// needs.
type PageSearcher interface {
	SearchPages(ctx context.Context, query string, page, count int) (*bookstack.SearchResult, error)
}

// BookLister is the slice of the BookStack API the book duplicate check
// needs.
type BookLister interface {
	ListBooks(ctx context.Context) (*bookstack.SearchResult, error)
}

// FindSimilarPages searches for pages whose name scores at or above
// threshold against title. A non-zero bookID restricts candidates to that
// book. A failing remote call is logged and collapsed to no candidates:
// the duplicate check must never block the write it guards.
func FindSimilarPages(ctx context.Context, searcher PageSearcher, title string, bookID int, threshold float64, log *zap.Logger) []Candidate {
	if log == nil {
		log = zap.NewNop()
	}
	result, err := searcher.SearchPages(ctx, title, 1, searchCount)
	if err != nil {
		log.Warn("similar page check failed, proceeding without candidates", zap.Error(err))
		return nil
	}
	return filterCandidates(result.Data, title, bookID, threshold)
}

// FindSimilarBooks lists all books and scores their names against name.
// Same fail-open policy as FindSimilarPages.
func FindSimilarBooks(ctx context.Context, lister BookLister, name string, threshold float64, log *zap.Logger) []Candidate {
	if log == nil {
		log = zap.NewNop()
	}
	result, err := lister.ListBooks(ctx)
	if err != nil {
		log.Warn("similar book check failed, proceeding without candidates", zap.Error(err))
		return nil
	}
	return filterCandidates(result.Data, name, 0, threshold)
}

// filterCandidates keeps the remote result order; ties are not broken.
// The book scope only applies to items that carry a book id at all.
func filterCandidates(items []bookstack.SearchItem, title string, bookID int, threshold float64) []Candidate {
	var candidates []Candidate
	for _, item := range items {
		if bookID != 0 && item.BookID != 0 && item.BookID != bookID {
			continue
		}
		if score := Score(item.Name, title); score >= threshold {
			candidates = append(candidates, Candidate{Item: item, Score: score})
		}
	}
	return candidates
}
