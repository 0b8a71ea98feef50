package search

import (
	"testing"

	"github.com/fxrdhan/bookshelf/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testBooks() []domain.Book {
	return []domain.Book{
		{ID: "1", Title: "Bumi"},
		{ID: "2", Title: "Bintang"},
		{ID: "3", Title: "Matahari"},
		{ID: "4", Title: "Ceros dan Batozar"},
	}
}

func TestQueryMatchesSubsequence(t *testing.T) {
	idx := NewIndex(testBooks())

	results := idx.Query("bmi")
	require.NotEmpty(t, results)
	assert.Equal(t, "Bumi", results[0].Book.Title)
	assert.NotEmpty(t, results[0].MatchedIndexes)
}

func TestQueryIsCaseInsensitive(t *testing.T) {
	idx := NewIndex(testBooks())

	results := idx.Query("MATAHARI")
	require.NotEmpty(t, results)
	assert.Equal(t, "Matahari", results[0].Book.Title)
}

func TestQueryEmptyTermReturnsNothing(t *testing.T) {
	idx := NewIndex(testBooks())
	assert.Nil(t, idx.Query(""))
	assert.Nil(t, idx.Query("   "))
}

func TestQueryNoMatch(t *testing.T) {
	idx := NewIndex(testBooks())
	assert.Empty(t, idx.Query("zzzzzz"))
}

func TestQueryEmptyIndex(t *testing.T) {
	idx := NewIndex(nil)
	assert.Empty(t, idx.Query("bumi"))
}

func TestQueryFoldsDiacritics(t *testing.T) {
	idx := NewIndex([]domain.Book{
		{ID: "1", Title: "Bümi"},
		{ID: "2", Title: "Bintang"},
	})

	// No plain subsequence match; the normalized-fold fallback must
	// surface the accented title, ranked, without match positions
	results := idx.Query("bumi")
	require.Len(t, results, 1)
	assert.Equal(t, "Bümi", results[0].Book.Title)
	assert.Empty(t, results[0].MatchedIndexes)
}

func TestQueryRanksCloserMatchesFirst(t *testing.T) {
	idx := NewIndex([]domain.Book{
		{ID: "1", Title: "Shadow of the Moon"},
		{ID: "2", Title: "Moon"},
	})

	// A match at the start of the title beats one buried behind
	// unmatched leading characters
	results := idx.Query("moon")
	require.Len(t, results, 2)
	assert.Equal(t, "Moon", results[0].Book.Title)
}
