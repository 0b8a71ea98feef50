package tui

// Message types for the TUI

// ErrMsg represents an error surfaced on the status line
type ErrMsg struct {
	Err     error
	Context string
}

// Error implements the error interface
func (e ErrMsg) Error() string {
	if e.Context != "" {
		return e.Context + ": " + e.Err.Error()
	}
	return e.Err.Error()
}

// PDFAttachedMsg signals that a PDF was stored for a book
type PDFAttachedMsg struct {
	BookID string
	Title  string
}

// PDFDetachedMsg signals that a book's PDF was removed
type PDFDetachedMsg struct {
	BookID string
}

// PDFOpenedMsg signals that the external viewer was launched
type PDFOpenedMsg struct {
	BookID string
	Path   string
}

// StatusClearMsg clears the transient status line
type StatusClearMsg struct{}
