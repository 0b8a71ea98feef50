package shelf

import (
	"errors"
	"testing"

	"github.com/fxrdhan/bookshelf/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memStore is an in-memory domain.BookStore for service tests
type memStore struct {
	books    []domain.Book
	saves    int
	saveErr  error
	viewMode domain.ViewMode
	theme    string
}

func (m *memStore) Load() []domain.Book { return m.books }

func (m *memStore) Save(books []domain.Book) error {
	m.saves++
	if m.saveErr != nil {
		return m.saveErr
	}
	m.books = make([]domain.Book, len(books))
	copy(m.books, books)
	return nil
}

func (m *memStore) ViewMode() domain.ViewMode {
	if m.viewMode == "" {
		return domain.ViewModeGrid
	}
	return m.viewMode
}

func (m *memStore) SetViewMode(mode domain.ViewMode) error {
	m.viewMode = mode
	return nil
}

func (m *memStore) Theme() string {
	if m.theme == "" {
		return "dark"
	}
	return m.theme
}

func (m *memStore) SetTheme(theme string) error {
	m.theme = theme
	return nil
}

func (m *memStore) Close() error { return nil }

func newTestService(t *testing.T, books ...domain.Book) (*Service, *memStore) {
	t.Helper()
	store := &memStore{books: books}
	return NewService(store, nil), store
}

func book(id, title string, opts ...func(*domain.Book)) domain.Book {
	b := domain.Book{ID: id, Title: title, Author: "Tere Liye", Year: 2014}
	for _, opt := range opts {
		opt(&b)
	}
	return b
}

func finished(b *domain.Book) { b.IsComplete = true }
func favorite(b *domain.Book) { b.IsFavorite = true }

func TestSeedsDefaultShelfWhenEmpty(t *testing.T) {
	svc, store := newTestService(t)

	books := svc.Books()
	require.Len(t, books, 7)
	assert.Equal(t, 1, store.saves)

	// Seeded books start unread, get fresh IDs, and one arrives favorited
	favorites := 0
	for _, b := range books {
		assert.NotEmpty(t, b.ID)
		assert.False(t, b.IsComplete)
		if b.IsFavorite {
			favorites++
		}
	}
	assert.Equal(t, 1, favorites)
}

func TestDoesNotSeedNonEmptyShelf(t *testing.T) {
	svc, store := newTestService(t, book("1", "Bumi"))
	assert.Len(t, svc.Books(), 1)
	assert.Zero(t, store.saves)
}

func TestAddAppendsAndPersists(t *testing.T) {
	svc, store := newTestService(t, book("1", "Bumi"))

	added, err := svc.Add(AddInput{Title: "Nebula", Author: "Tere Liye", Year: 2021})
	require.NoError(t, err)

	assert.NotEmpty(t, added.ID)
	assert.False(t, added.IsComplete)
	assert.False(t, added.IsFavorite)
	assert.NotZero(t, added.AddedAt)
	assert.Equal(t, added.AddedAt, added.UpdatedAt)
	assert.Len(t, svc.Books(), 2)
	assert.Len(t, store.books, 2)
}

func TestAddValidationLeavesShelfUntouched(t *testing.T) {
	svc, store := newTestService(t, book("1", "Bumi"))

	cases := []AddInput{
		{Title: "", Author: "Tere Liye", Year: 2014},
		{Title: "   ", Author: "Tere Liye", Year: 2014},
		{Title: "Bumi", Author: "", Year: 2014},
		{Title: "Bumi", Author: "Tere Liye", Year: -1},
	}
	for _, in := range cases {
		_, err := svc.Add(in)
		assert.True(t, domain.IsValidation(err), "input %+v", in)
	}

	assert.Len(t, svc.Books(), 1)
	assert.Zero(t, store.saves)
}

func TestUpdatePreservesUnsetFields(t *testing.T) {
	svc, _ := newTestService(t, book("1", "Bumi", favorite))

	title := "Bumi (revised)"
	updated, err := svc.Update("1", UpdateInput{Title: &title})
	require.NoError(t, err)

	assert.Equal(t, "Bumi (revised)", updated.Title)
	assert.Equal(t, "Tere Liye", updated.Author)
	assert.Equal(t, 2014, updated.Year)
	assert.True(t, updated.IsFavorite)
	assert.Equal(t, "1", updated.ID)
}

func TestUpdateValidatesMergedResult(t *testing.T) {
	svc, _ := newTestService(t, book("1", "Bumi"))

	empty := ""
	_, err := svc.Update("1", UpdateInput{Title: &empty})
	assert.True(t, domain.IsValidation(err))

	got, err := svc.Get("1")
	require.NoError(t, err)
	assert.Equal(t, "Bumi", got.Title)
}

func TestUpdateUnknownBook(t *testing.T) {
	svc, _ := newTestService(t, book("1", "Bumi"))
	title := "x"
	_, err := svc.Update("ghost", UpdateInput{Title: &title})
	assert.ErrorIs(t, err, domain.ErrBookNotFound)
}

func TestDeleteRemovesBook(t *testing.T) {
	svc, store := newTestService(t, book("1", "Bumi"), book("2", "Moon"))

	require.NoError(t, svc.Delete("1"))
	books := svc.Books()
	require.Len(t, books, 1)
	assert.Equal(t, "2", books[0].ID)
	assert.Len(t, store.books, 1)

	assert.ErrorIs(t, svc.Delete("1"), domain.ErrBookNotFound)
}

func TestDeleteCancelsPendingEdit(t *testing.T) {
	svc, _ := newTestService(t, book("1", "Bumi"), book("2", "Moon"))

	svc.BeginEdit("1")
	require.NoError(t, svc.Delete("1"))
	_, editing := svc.CurrentEdit()
	assert.False(t, editing)

	// Deleting an unrelated book leaves the edit alone
	svc.BeginEdit("2")
	_, err := svc.Add(AddInput{Title: "Nebula", Author: "Tere Liye", Year: 2021})
	require.NoError(t, err)
	id, editing := svc.CurrentEdit()
	assert.True(t, editing)
	assert.Equal(t, "2", id)
}

func TestTogglePairsRestoreState(t *testing.T) {
	svc, _ := newTestService(t, book("1", "Bumi"))

	b, err := svc.ToggleComplete("1")
	require.NoError(t, err)
	assert.True(t, b.IsComplete)

	b, err = svc.ToggleComplete("1")
	require.NoError(t, err)
	assert.False(t, b.IsComplete)

	b, err = svc.ToggleFavorite("1")
	require.NoError(t, err)
	assert.True(t, b.IsFavorite)

	b, err = svc.ToggleFavorite("1")
	require.NoError(t, err)
	assert.False(t, b.IsFavorite)
}

func TestSaveFailureIsReported(t *testing.T) {
	svc, store := newTestService(t, book("1", "Bumi"))
	store.saveErr = errors.New("disk full")

	_, err := svc.Add(AddInput{Title: "Nebula", Author: "Tere Liye", Year: 2021})
	assert.EqualError(t, err, "disk full")

	// The working copy keeps the mutation; only durability failed
	assert.Len(t, svc.Books(), 2)
}

func TestSetPDFRef(t *testing.T) {
	svc, _ := newTestService(t, book("1", "Bumi"))

	require.NoError(t, svc.SetPDFRef("1", "1"))
	got, err := svc.Get("1")
	require.NoError(t, err)
	assert.True(t, got.HasPDF())

	require.NoError(t, svc.SetPDFRef("1", ""))
	got, err = svc.Get("1")
	require.NoError(t, err)
	assert.False(t, got.HasPDF())

	assert.ErrorIs(t, svc.SetPDFRef("ghost", "x"), domain.ErrBookNotFound)
}

func TestSearchMatchesTitleSubstring(t *testing.T) {
	svc, _ := newTestService(t, book("1", "Matahari"), book("2", "Mirai"), book("3", "Bumi"))

	titles := func(books []domain.Book) []string {
		out := make([]string, len(books))
		for i, b := range books {
			out[i] = b.Title
		}
		return out
	}

	assert.Equal(t, []string{"Matahari"}, titles(svc.Search("mat")))
	assert.Equal(t, []string{"Mirai"}, titles(svc.Search("RA")))
	assert.Empty(t, svc.Search("tere")) // Authors are not searched
	assert.Len(t, svc.Search(""), 3)
	assert.Len(t, svc.Search("   "), 3)
}

func TestSectionFiltersAndSorts(t *testing.T) {
	svc, _ := newTestService(t,
		book("1", "Moon"),
		book("2", "Bumi"),
		book("3", "Nebula", finished),
		book("4", "Matahari", finished, favorite),
	)

	unread := svc.Section(domain.SectionUnread, domain.SortAscending)
	require.Len(t, unread, 2)
	assert.Equal(t, "Bumi", unread[0].Title)
	assert.Equal(t, "Moon", unread[1].Title)

	unreadDesc := svc.Section(domain.SectionUnread, domain.SortDescending)
	assert.Equal(t, "Moon", unreadDesc[0].Title)
	assert.Equal(t, "Bumi", unreadDesc[1].Title)

	finishedBooks := svc.Section(domain.SectionFinished, domain.SortAscending)
	require.Len(t, finishedBooks, 2)
	assert.Equal(t, "Matahari", finishedBooks[0].Title)

	// A favorite shows in its favorite section and its completion section
	favorites := svc.Section(domain.SectionFavorite, domain.SortAscending)
	require.Len(t, favorites, 1)
	assert.Equal(t, "Matahari", favorites[0].Title)
}

func TestSectionOfRespectsActiveSearch(t *testing.T) {
	svc, _ := newTestService(t,
		book("1", "Matahari"),
		book("2", "Mirai", finished),
		book("3", "Bumi"),
	)

	// "mi" hits Bumi (unread) and Mirai (finished); the section
	// projection must keep only the unread one
	hits := svc.Search("mi")
	require.Len(t, hits, 2)
	unread := svc.SectionOf(hits, domain.SectionUnread, domain.SortAscending)
	require.Len(t, unread, 1)
	assert.Equal(t, "Bumi", unread[0].Title)
}

func TestToggleSortIsPerSection(t *testing.T) {
	svc, _ := newTestService(t, book("1", "Bumi"))

	assert.Equal(t, domain.SortAscending, svc.SortOrder(domain.SectionUnread))
	assert.Equal(t, domain.SortDescending, svc.ToggleSort(domain.SectionUnread))
	assert.Equal(t, domain.SortDescending, svc.SortOrder(domain.SectionUnread))

	// Other sections keep their own order
	assert.Equal(t, domain.SortAscending, svc.SortOrder(domain.SectionFinished))

	assert.Equal(t, domain.SortAscending, svc.ToggleSort(domain.SectionUnread))
}

func TestBooksReturnsACopy(t *testing.T) {
	svc, _ := newTestService(t, book("1", "Bumi"))

	snapshot := svc.Books()
	snapshot[0].Title = "Mangled"

	got, err := svc.Get("1")
	require.NoError(t, err)
	assert.Equal(t, "Bumi", got.Title)
}
