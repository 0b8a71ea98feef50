// Package shelf holds the in-memory book collection and all mutation
// and query logic over it. Every mutation is written through to the
// book store before returning; the durable copy is always a
// strictly-after image of the in-memory one once a save succeeds.
package shelf

import (
	"log/slog"
	"strings"
	"time"

	"github.com/fxrdhan/bookshelf/internal/domain"
	"github.com/google/uuid"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Service owns the working copy of the collection plus the session
// view state: per-section sort direction and the ID of the book being
// edited. All methods run on the UI goroutine.
type Service struct {
	store  domain.BookStore
	logger *slog.Logger

	books      []domain.Book
	sortOrders map[domain.Section]domain.SortDirection
	editingID  string

	collator *collate.Collator
}

// NewService loads the collection from the store and seeds the default
// shelf when it is empty.
func NewService(store domain.BookStore, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}

	s := &Service{
		store:  store,
		logger: logger,
		sortOrders: map[domain.Section]domain.SortDirection{
			domain.SectionUnread:   domain.SortAscending,
			domain.SectionFinished: domain.SortAscending,
			domain.SectionFavorite: domain.SortAscending,
		},
		collator: collate.New(language.Und, collate.IgnoreCase),
	}

	s.books = store.Load()
	if len(s.books) == 0 {
		s.books = defaultBooks()
		if err := store.Save(s.books); err != nil {
			logger.Error("failed to persist seeded shelf", "error", err)
		}
		logger.Info("seeded default shelf", "count", len(s.books))
	} else {
		logger.Debug("loaded shelf", "count", len(s.books))
	}

	return s
}

// AddInput carries the fields for a new book.
type AddInput struct {
	Title      string
	Author     string
	Year       int
	IsComplete bool
	Cover      string
}

// UpdateInput carries the replacement fields for an edit.
// Nil fields are preserved.
type UpdateInput struct {
	Title  *string
	Author *string
	Year   *int
	Cover  *string
}

func validate(title, author string, year int) error {
	if strings.TrimSpace(title) == "" {
		return &domain.ValidationError{Field: "title", Reason: "must not be empty"}
	}
	if strings.TrimSpace(author) == "" {
		return &domain.ValidationError{Field: "author", Reason: "must not be empty"}
	}
	if year < 0 {
		return &domain.ValidationError{Field: "year", Reason: "must not be negative"}
	}
	return nil
}

// Add validates the input, appends a new book to the collection, and
// persists. On a validation failure nothing changes.
func (s *Service) Add(in AddInput) (domain.Book, error) {
	if err := validate(in.Title, in.Author, in.Year); err != nil {
		return domain.Book{}, err
	}

	now := time.Now().Unix()
	book := domain.Book{
		ID:         uuid.NewString(),
		Title:      in.Title,
		Author:     in.Author,
		Year:       in.Year,
		IsComplete: in.IsComplete,
		Cover:      in.Cover,
		AddedAt:    now,
		UpdatedAt:  now,
	}

	s.books = append(s.books, book)
	if err := s.save(); err != nil {
		return book, err
	}
	s.logger.Info("added book", "id", book.ID, "title", book.Title)
	return book, nil
}

// Update replaces the supplied fields on the matching book and persists.
func (s *Service) Update(id string, in UpdateInput) (domain.Book, error) {
	idx := s.indexOf(id)
	if idx < 0 {
		return domain.Book{}, domain.ErrBookNotFound
	}

	book := s.books[idx]
	if in.Title != nil {
		book.Title = *in.Title
	}
	if in.Author != nil {
		book.Author = *in.Author
	}
	if in.Year != nil {
		book.Year = *in.Year
	}
	if in.Cover != nil {
		book.Cover = *in.Cover
	}
	if err := validate(book.Title, book.Author, book.Year); err != nil {
		return domain.Book{}, err
	}
	book.UpdatedAt = time.Now().Unix()

	s.books[idx] = book
	if err := s.save(); err != nil {
		return book, err
	}
	s.logger.Info("updated book", "id", id)
	return book, nil
}

// Delete removes the matching book and persists. A pending edit of the
// same book is cancelled.
func (s *Service) Delete(id string) error {
	idx := s.indexOf(id)
	if idx < 0 {
		return domain.ErrBookNotFound
	}

	s.books = append(s.books[:idx], s.books[idx+1:]...)
	if s.editingID == id {
		s.editingID = ""
	}
	if err := s.save(); err != nil {
		return err
	}
	s.logger.Info("deleted book", "id", id)
	return nil
}

// ToggleComplete flips the finished flag and persists.
func (s *Service) ToggleComplete(id string) (domain.Book, error) {
	return s.toggle(id, func(b *domain.Book) { b.IsComplete = !b.IsComplete })
}

// ToggleFavorite flips the favorite flag and persists.
func (s *Service) ToggleFavorite(id string) (domain.Book, error) {
	return s.toggle(id, func(b *domain.Book) { b.IsFavorite = !b.IsFavorite })
}

func (s *Service) toggle(id string, flip func(*domain.Book)) (domain.Book, error) {
	idx := s.indexOf(id)
	if idx < 0 {
		return domain.Book{}, domain.ErrBookNotFound
	}
	flip(&s.books[idx])
	s.books[idx].UpdatedAt = time.Now().Unix()
	if err := s.save(); err != nil {
		return s.books[idx], err
	}
	return s.books[idx], nil
}

// SetPDFRef records (or clears, with an empty ref) a book's PDF
// attachment reference and persists.
func (s *Service) SetPDFRef(id, ref string) error {
	idx := s.indexOf(id)
	if idx < 0 {
		return domain.ErrBookNotFound
	}
	s.books[idx].PDFRef = ref
	return s.save()
}

// Get returns the book with the given ID.
func (s *Service) Get(id string) (domain.Book, error) {
	idx := s.indexOf(id)
	if idx < 0 {
		return domain.Book{}, domain.ErrBookNotFound
	}
	return s.books[idx], nil
}

// Books returns a snapshot of the full collection.
func (s *Service) Books() []domain.Book {
	out := make([]domain.Book, len(s.books))
	copy(out, s.books)
	return out
}

// === Edit tracking ===

// BeginEdit marks id as the book currently being edited.
func (s *Service) BeginEdit(id string) { s.editingID = id }

// EndEdit clears the pending edit.
func (s *Service) EndEdit() { s.editingID = "" }

// CurrentEdit returns the pending edit ID, if any.
func (s *Service) CurrentEdit() (string, bool) {
	return s.editingID, s.editingID != ""
}

// === Preferences ===

func (s *Service) ViewMode() domain.ViewMode { return s.store.ViewMode() }

func (s *Service) SetViewMode(mode domain.ViewMode) error {
	if err := s.store.SetViewMode(mode); err != nil {
		s.logger.Error("failed to save view mode", "error", err)
		return err
	}
	return nil
}

func (s *Service) Theme() string { return s.store.Theme() }

func (s *Service) SetTheme(theme string) error {
	if err := s.store.SetTheme(theme); err != nil {
		s.logger.Error("failed to save theme", "error", err)
		return err
	}
	return nil
}

// === Private helpers ===

func (s *Service) indexOf(id string) int {
	for i, b := range s.books {
		if b.ID == id {
			return i
		}
	}
	return -1
}

func (s *Service) save() error {
	if err := s.store.Save(s.books); err != nil {
		// The in-memory copy is now ahead of the durable one. That
		// divergence is surfaced to the caller, not resolved here.
		s.logger.Error("failed to save shelf", "error", err)
		return err
	}
	return nil
}
