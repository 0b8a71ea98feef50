package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fxrdhan/bookshelf/internal/domain"
	bolt "go.etcd.io/bbolt"
)

// Bucket names
var (
	bucketBooks = []byte("books")
	bucketPrefs = []byte("prefs")
)

// Fixed keys
const (
	keyCollection = "list"
	keyViewMode   = "viewMode"
	keyTheme      = "theme"
)

// BookStore implements domain.BookStore using BoltDB.
// The whole collection lives under a single key, rewritten on every save.
type BookStore struct {
	db *bolt.DB
}

// NewBookStore opens (or creates) the book database at dataDir/books.db.
func NewBookStore(dataDir string) (*BookStore, error) {
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, err
	}

	dbPath := filepath.Join(dataDir, "books.db")
	db, err := bolt.Open(dbPath, 0600, &bolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("failed to open bolt db: %w", err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		for _, bucket := range [][]byte{bucketBooks, bucketPrefs} {
			if _, err := tx.CreateBucketIfNotExists(bucket); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		db.Close()
		return nil, err
	}

	return &BookStore{db: db}, nil
}

func (s *BookStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// === Generic helpers ===

func (s *BookStore) get(bucket []byte, key string) []byte {
	var data []byte
	s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucket)
		if b == nil {
			return nil
		}
		if v := b.Get([]byte(key)); v != nil {
			data = make([]byte, len(v))
			copy(data, v)
		}
		return nil
	})
	return data
}

func (s *BookStore) set(bucket []byte, key string, data []byte) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucket)
		return b.Put([]byte(key), data)
	})
}

// === Collection ===

// Load returns the stored collection. Absent or malformed data is
// treated as an empty shelf, never as an error.
func (s *BookStore) Load() []domain.Book {
	data := s.get(bucketBooks, keyCollection)
	if data == nil {
		return nil
	}

	var books []domain.Book
	if err := json.Unmarshal(data, &books); err != nil {
		return nil
	}
	return books
}

// Save serializes and overwrites the stored collection.
func (s *BookStore) Save(books []domain.Book) error {
	if books == nil {
		books = []domain.Book{}
	}
	data, err := json.Marshal(books)
	if err != nil {
		return fmt.Errorf("failed to serialize collection: %w", err)
	}
	return s.set(bucketBooks, keyCollection, data)
}

// === Preferences ===

func (s *BookStore) ViewMode() domain.ViewMode {
	switch domain.ViewMode(s.get(bucketPrefs, keyViewMode)) {
	case domain.ViewModeCover:
		return domain.ViewModeCover
	default:
		return domain.ViewModeGrid
	}
}

func (s *BookStore) SetViewMode(mode domain.ViewMode) error {
	return s.set(bucketPrefs, keyViewMode, []byte(mode))
}

func (s *BookStore) Theme() string {
	if theme := s.get(bucketPrefs, keyTheme); string(theme) == "light" {
		return "light"
	}
	return "dark"
}

func (s *BookStore) SetTheme(theme string) error {
	return s.set(bucketPrefs, keyTheme, []byte(theme))
}
