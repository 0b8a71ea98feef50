package domain

import "fmt"

// Section identifies one of the shelf display categories
type Section int

const (
	SectionUnread Section = iota
	SectionFinished
	SectionFavorite
)

// String returns a human-readable representation of the section
func (s Section) String() string {
	switch s {
	case SectionUnread:
		return "Unread"
	case SectionFinished:
		return "Finished"
	case SectionFavorite:
		return "Favorite"
	default:
		return "Unknown"
	}
}

// Sections lists all shelf sections in display order
var Sections = []Section{SectionUnread, SectionFinished, SectionFavorite}

// SortDirection is the per-section title sort order
type SortDirection int

const (
	SortAscending SortDirection = iota
	SortDescending
)

// String returns a human-readable representation of the sort direction
func (d SortDirection) String() string {
	if d == SortDescending {
		return "desc"
	}
	return "asc"
}

// Toggle flips between ascending and descending
func (d SortDirection) Toggle() SortDirection {
	if d == SortAscending {
		return SortDescending
	}
	return SortAscending
}

// ViewMode is the book display preference
type ViewMode string

const (
	ViewModeGrid  ViewMode = "grid"
	ViewModeCover ViewMode = "cover"
)

// Toggle flips between grid and cover display
func (v ViewMode) Toggle() ViewMode {
	if v == ViewModeGrid {
		return ViewModeCover
	}
	return ViewModeGrid
}

// Book represents one tracked book
type Book struct {
	ID         string `json:"id"`         // Unique identifier, immutable once created
	Title      string `json:"title"`      // Required, non-empty
	Author     string `json:"author"`     // Required, non-empty
	Year       int    `json:"year"`       // Publication year, >= 0
	IsComplete bool   `json:"isComplete"` // Finished reading
	IsFavorite bool   `json:"isFavorite"` // Marked as favorite
	Cover      string `json:"cover,omitempty"`  // Cover image URI or data URI, empty = placeholder
	PDFRef     string `json:"pdfRef,omitempty"` // Key into the PDF store, empty = no attachment
	AddedAt    int64  `json:"addedAt"`    // Unix timestamp when added
	UpdatedAt  int64  `json:"updatedAt"`  // Unix timestamp of last edit
}

// InSection reports whether the book belongs to the given section
func (b Book) InSection(s Section) bool {
	switch s {
	case SectionUnread:
		return !b.IsComplete
	case SectionFinished:
		return b.IsComplete
	case SectionFavorite:
		return b.IsFavorite
	default:
		return false
	}
}

// HasCover reports whether a cover image is attached
func (b Book) HasCover() bool {
	return b.Cover != ""
}

// HasPDF reports whether a PDF attachment is recorded
func (b Book) HasPDF() bool {
	return b.PDFRef != ""
}

// Description returns secondary info for display
func (b Book) Description() string {
	if b.Year > 0 {
		return fmt.Sprintf("%s · %d", b.Author, b.Year)
	}
	return b.Author
}

// PDFRecord represents one stored PDF attachment.
// Keyed by book ID; the payload is a data URI with a base64 body.
type PDFRecord struct {
	BookID    string `json:"bookId"`
	PDFData   string `json:"pdfData"`
	Timestamp int64  `json:"timestamp"`
}

// PDFDataPrefix is the required payload prefix for stored PDFs
const PDFDataPrefix = "data:application/pdf;base64,"

// MaxPDFSize caps the decoded size of a stored PDF payload
const MaxPDFSize = 50 << 20
