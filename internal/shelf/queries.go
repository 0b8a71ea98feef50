package shelf

import (
	"sort"
	"strings"

	"github.com/fxrdhan/bookshelf/internal/domain"
)

// Search returns the books whose title contains term, case-insensitive.
// An empty term returns the full collection.
func (s *Service) Search(term string) []domain.Book {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return s.Books()
	}

	var out []domain.Book
	for _, b := range s.books {
		if strings.Contains(strings.ToLower(b.Title), term) {
			out = append(out, b)
		}
	}
	return out
}

// Section returns the books of one shelf section sorted by title.
func (s *Service) Section(section domain.Section, dir domain.SortDirection) []domain.Book {
	return s.sortByTitle(s.filterSection(s.books, section), dir)
}

// SectionOf filters and sorts an already-searched subset. Used when a
// search term is active so the section views reflect it.
func (s *Service) SectionOf(books []domain.Book, section domain.Section, dir domain.SortDirection) []domain.Book {
	return s.sortByTitle(s.filterSection(books, section), dir)
}

// SortOrder returns the current direction for a section.
func (s *Service) SortOrder(section domain.Section) domain.SortDirection {
	return s.sortOrders[section]
}

// ToggleSort flips a section's sort direction and returns the new one.
// Sort state is session-scoped and never persisted.
func (s *Service) ToggleSort(section domain.Section) domain.SortDirection {
	s.sortOrders[section] = s.sortOrders[section].Toggle()
	return s.sortOrders[section]
}

func (s *Service) filterSection(books []domain.Book, section domain.Section) []domain.Book {
	var out []domain.Book
	for _, b := range books {
		if b.InSection(section) {
			out = append(out, b)
		}
	}
	return out
}

// sortByTitle sorts a copy of books by locale-aware title comparison.
// The sort is stable so equal titles keep their collection order.
func (s *Service) sortByTitle(books []domain.Book, dir domain.SortDirection) []domain.Book {
	out := make([]domain.Book, len(books))
	copy(out, books)

	sort.SliceStable(out, func(i, j int) bool {
		cmp := s.collator.CompareString(out[i].Title, out[j].Title)
		if dir == domain.SortDescending {
			return cmp > 0
		}
		return cmp < 0
	})
	return out
}
