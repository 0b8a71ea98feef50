// Package search provides the fuzzy title index behind the omnibar.
// It supplements the shelf's plain substring search; it never replaces it.
package search

import (
	"sort"
	"strings"

	"github.com/fxrdhan/bookshelf/internal/domain"
	"github.com/lithammer/fuzzysearch/fuzzy"
	sahilm "github.com/sahilm/fuzzy"
)

// Result is one omnibar hit with match metadata for highlighting.
type Result struct {
	Book           domain.Book
	MatchedIndexes []int // Character positions in the title that matched
	Score          int   // Higher is better (sahilm scoring)
}

// Index implements sahilm/fuzzy.Source over book titles so matching
// runs without per-query allocations.
type Index struct {
	books       []domain.Book
	lowerTitles []string
}

// NewIndex builds a fresh index. Rebuild after any collection change;
// the collection is small enough that rebuilding beats bookkeeping.
func NewIndex(books []domain.Book) *Index {
	lower := make([]string, len(books))
	for i, b := range books {
		lower[i] = strings.ToLower(b.Title)
	}
	return &Index{books: books, lowerTitles: lower}
}

// String returns the lowercase title at i (implements fuzzy.Source)
func (idx *Index) String(i int) string { return idx.lowerTitles[i] }

// Len returns the number of indexed books (implements fuzzy.Source)
func (idx *Index) Len() int { return len(idx.books) }

// Query returns ranked matches for q, best first.
func (idx *Index) Query(q string) []Result {
	q = strings.ToLower(strings.TrimSpace(q))
	if q == "" {
		return nil
	}

	matches := sahilm.FindFrom(q, idx)
	if len(matches) > 0 {
		results := make([]Result, len(matches))
		for i, m := range matches {
			results[i] = Result{
				Book:           idx.books[m.Index],
				MatchedIndexes: m.MatchedIndexes,
				Score:          m.Score,
			}
		}
		return results
	}

	// Subsequence matching found nothing; retry with unicode-folding
	// rank matching so accented titles still surface (no positions).
	ranks := fuzzy.RankFindNormalizedFold(q, idx.lowerTitles)
	sort.Sort(ranks)
	results := make([]Result, 0, len(ranks))
	for _, r := range ranks {
		results = append(results, Result{
			Book:  idx.books[r.OriginalIndex],
			Score: -r.Distance,
		})
	}
	return results
}
