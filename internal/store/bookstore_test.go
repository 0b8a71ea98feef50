package store

import (
	"path/filepath"
	"testing"

	"github.com/fxrdhan/bookshelf/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	bolt "go.etcd.io/bbolt"
)

func newTestStore(t *testing.T) (*BookStore, string) {
	t.Helper()
	dir := t.TempDir()
	s, err := NewBookStore(dir)
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s, dir
}

func TestLoadEmptyStore(t *testing.T) {
	s, _ := newTestStore(t)
	assert.Nil(t, s.Load())
}

func TestSaveLoadRoundTrip(t *testing.T) {
	s, _ := newTestStore(t)

	books := []domain.Book{
		{ID: "1", Title: "Bumi", Author: "Tere Liye", Year: 2014, AddedAt: 100, UpdatedAt: 100},
		{ID: "2", Title: "Mirai", Author: "Mamoru Hosoda", Year: 2000, IsFavorite: true, AddedAt: 200, UpdatedAt: 300},
	}
	require.NoError(t, s.Save(books))
	assert.Equal(t, books, s.Load())

	// Saving again with the same content keeps the store unchanged
	require.NoError(t, s.Save(books))
	assert.Equal(t, books, s.Load())
}

func TestSaveSurvivesReopen(t *testing.T) {
	s, dir := newTestStore(t)

	books := []domain.Book{{ID: "1", Title: "Nebula", Author: "Tere Liye", Year: 2021}}
	require.NoError(t, s.Save(books))
	require.NoError(t, s.Close())

	reopened, err := NewBookStore(dir)
	require.NoError(t, err)
	defer reopened.Close()
	assert.Equal(t, books, reopened.Load())
}

func TestSaveNilPersistsEmptyList(t *testing.T) {
	s, _ := newTestStore(t)

	require.NoError(t, s.Save([]domain.Book{{ID: "1", Title: "Bumi", Author: "Tere Liye"}}))
	require.NoError(t, s.Save(nil))

	// A deliberately emptied shelf stays empty, it does not fall back
	// to "nothing stored"
	assert.Empty(t, s.Load())
}

func TestLoadCorruptDataReturnsEmpty(t *testing.T) {
	s, dir := newTestStore(t)
	require.NoError(t, s.Save([]domain.Book{{ID: "1", Title: "Bumi", Author: "Tere Liye"}}))
	require.NoError(t, s.Close())

	// Scribble over the stored collection out-of-band
	db, err := bolt.Open(filepath.Join(dir, "books.db"), 0600, nil)
	require.NoError(t, err)
	err = db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte("books")).Put([]byte("list"), []byte("{not json"))
	})
	require.NoError(t, err)
	require.NoError(t, db.Close())

	reopened, err := NewBookStore(dir)
	require.NoError(t, err)
	defer reopened.Close()
	assert.Nil(t, reopened.Load())
}

func TestViewModeDefaultsToGrid(t *testing.T) {
	s, _ := newTestStore(t)
	assert.Equal(t, domain.ViewModeGrid, s.ViewMode())
}

func TestViewModePersistsAcrossReopen(t *testing.T) {
	s, dir := newTestStore(t)
	require.NoError(t, s.SetViewMode(domain.ViewModeCover))
	require.NoError(t, s.Close())

	reopened, err := NewBookStore(dir)
	require.NoError(t, err)
	defer reopened.Close()
	assert.Equal(t, domain.ViewModeCover, reopened.ViewMode())
}

func TestUnknownViewModeFallsBackToGrid(t *testing.T) {
	s, _ := newTestStore(t)
	require.NoError(t, s.SetViewMode(domain.ViewMode("sideways")))
	assert.Equal(t, domain.ViewModeGrid, s.ViewMode())
}

func TestThemeDefaultsToDark(t *testing.T) {
	s, _ := newTestStore(t)
	assert.Equal(t, "dark", s.Theme())

	require.NoError(t, s.SetTheme("light"))
	assert.Equal(t, "light", s.Theme())

	require.NoError(t, s.SetTheme("blorange"))
	assert.Equal(t, "dark", s.Theme())
}
