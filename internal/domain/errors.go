package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for shelf and store operations
var (
	// ErrBookNotFound indicates the requested book does not exist in the collection
	ErrBookNotFound = errors.New("book not found")

	// ErrPDFNotFound indicates no PDF is stored under the given book ID
	ErrPDFNotFound = errors.New("pdf not found")

	// ErrInvalidPDFData indicates the payload is not a base64 PDF data URI
	ErrInvalidPDFData = errors.New("invalid pdf data format")

	// ErrPDFTooLarge indicates the decoded payload exceeds MaxPDFSize
	ErrPDFTooLarge = errors.New("pdf exceeds maximum size")

	// ErrCorruptedPDF indicates the stored payload failed base64 decoding
	ErrCorruptedPDF = errors.New("corrupted pdf data")
)

// ValidationError reports a rejected field on add/edit.
// The operation that returned it changed nothing.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// IsValidation reports whether err is a field validation failure
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
