// Package pdfstore holds binary PDF attachments keyed by book ID,
// separate from the book collection so attachments never bloat the
// primary collection blob.
package pdfstore

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fxrdhan/bookshelf/internal/domain"
	bolt "go.etcd.io/bbolt"
)

var bucketPDFs = []byte("pdfs")

// probeSize bounds how much of the base64 body Get decodes when
// checking for corruption. Decoding the full payload on every read
// would cost tens of MB for nothing.
const probeSize = 4096

// Store implements domain.PDFStore using BoltDB. Every operation opens
// the database, runs a single transaction, and closes it again — no
// connection is held between calls. That trades a little latency for
// the absence of connection-lifecycle bugs.
type Store struct {
	path   string
	logger *slog.Logger
}

// New creates a PDF store backed by dataDir/pdfs.db.
func New(dataDir string, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{path: filepath.Join(dataDir, "pdfs.db"), logger: logger}
}

// Open idempotently initializes the database file and its bucket.
// Safe to call repeatedly.
func (s *Store) Open(ctx context.Context) error {
	db, err := s.open(ctx)
	if err != nil {
		return err
	}
	return db.Close()
}

// open creates the file and bucket if needed and returns a live handle.
func (s *Store) open(ctx context.Context) (*bolt.DB, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return nil, err
	}

	db, err := bolt.Open(s.path, 0600, &bolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("failed to open pdf db: %w", err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketPDFs)
		return err
	})
	if err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}

// Put validates and writes/overwrites the record for bookID.
func (s *Store) Put(ctx context.Context, bookID, dataURI string) error {
	if !strings.HasPrefix(dataURI, domain.PDFDataPrefix) {
		return domain.ErrInvalidPDFData
	}
	body := dataURI[len(domain.PDFDataPrefix):]
	if body == "" {
		return domain.ErrInvalidPDFData
	}
	if base64.StdEncoding.DecodedLen(len(body)) > domain.MaxPDFSize {
		return domain.ErrPDFTooLarge
	}

	record := domain.PDFRecord{
		BookID:    bookID,
		PDFData:   dataURI,
		Timestamp: time.Now().Unix(),
	}
	data, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to serialize pdf record: %w", err)
	}

	db, err := s.open(ctx)
	if err != nil {
		return err
	}
	defer db.Close()

	err = db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketPDFs).Put([]byte(bookID), data)
	})
	if err != nil {
		s.logger.Error("failed to store pdf", "bookID", bookID, "error", err)
		return err
	}
	s.logger.Debug("stored pdf", "bookID", bookID, "size", len(body))
	return nil
}

// Get returns the exact payload stored for bookID.
func (s *Store) Get(ctx context.Context, bookID string) (string, error) {
	db, err := s.open(ctx)
	if err != nil {
		return "", err
	}
	defer db.Close()

	var data []byte
	db.View(func(tx *bolt.Tx) error {
		if v := tx.Bucket(bucketPDFs).Get([]byte(bookID)); v != nil {
			data = make([]byte, len(v))
			copy(data, v)
		}
		return nil
	})
	if data == nil {
		return "", domain.ErrPDFNotFound
	}

	var record domain.PDFRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return "", domain.ErrCorruptedPDF
	}

	body, ok := strings.CutPrefix(record.PDFData, domain.PDFDataPrefix)
	if !ok || body == "" {
		return "", domain.ErrCorruptedPDF
	}

	// Decode a probe of the body to catch truncated or mangled base64.
	probe := body
	if len(probe) > probeSize {
		probe = probe[:probeSize-probeSize%4]
	}
	if _, err := base64.StdEncoding.DecodeString(probe); err != nil {
		return "", domain.ErrCorruptedPDF
	}

	return record.PDFData, nil
}

// Delete removes the record for bookID. Missing records are not an error.
func (s *Store) Delete(ctx context.Context, bookID string) error {
	db, err := s.open(ctx)
	if err != nil {
		return err
	}
	defer db.Close()

	err = db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketPDFs).Delete([]byte(bookID))
	})
	if err != nil {
		s.logger.Error("failed to delete pdf", "bookID", bookID, "error", err)
		return err
	}
	return nil
}
