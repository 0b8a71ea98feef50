package domain

import "context"

// BookStore handles durable storage of the book collection and display
// preferences. Reads never fail: absent or unparsable data degrades to
// the zero value. Writes report storage errors to the caller.
type BookStore interface {
	// Load returns the stored collection, empty when absent or corrupt
	Load() []Book

	// Save serializes and overwrites the stored collection.
	// Must be called after every mutation to the in-memory copy.
	Save(books []Book) error

	// ViewMode returns the persisted display preference (default grid)
	ViewMode() ViewMode
	SetViewMode(mode ViewMode) error

	// Theme returns the persisted theme preference (default dark)
	Theme() string
	SetTheme(theme string) error

	Close() error
}

// PDFStore handles binary PDF attachments keyed by book ID, independent
// of the book collection. Operations are the only asynchronous path in
// the application; each opens its own transaction and holds no
// connection between calls.
type PDFStore interface {
	// Open idempotently initializes the underlying store
	Open(ctx context.Context) error

	// Put validates and writes/overwrites the record for bookID.
	// Rejects payloads without PDFDataPrefix (ErrInvalidPDFData) and
	// payloads whose decoded size exceeds MaxPDFSize (ErrPDFTooLarge).
	Put(ctx context.Context, bookID, dataURI string) error

	// Get returns the exact stored payload. ErrPDFNotFound when no
	// record exists, ErrCorruptedPDF when the payload fails decoding.
	Get(ctx context.Context, bookID string) (string, error)

	// Delete removes the record; deleting a missing record is not an error
	Delete(ctx context.Context, bookID string) error
}
