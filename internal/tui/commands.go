package tui

import (
	"bytes"
	"context"
	"encoding/base64"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fxrdhan/bookshelf/internal/domain"
	"github.com/fxrdhan/bookshelf/internal/reader"
)

// The PDF store is the only asynchronous path in the application, so
// every call to it runs inside a tea.Cmd and reports back via messages.

var pdfMagic = []byte("%PDF-")

// attachPDFCmd reads a PDF from disk, encodes it, and stores it under
// the book's ID.
func attachPDFCmd(store domain.PDFStore, bookID, title, path string) tea.Cmd {
	return func() tea.Msg {
		raw, err := os.ReadFile(path)
		if err != nil {
			return ErrMsg{Err: err, Context: "read pdf"}
		}
		if !bytes.HasPrefix(raw, pdfMagic) {
			return ErrMsg{Err: domain.ErrInvalidPDFData, Context: path}
		}

		dataURI := domain.PDFDataPrefix + base64.StdEncoding.EncodeToString(raw)
		if err := store.Put(context.Background(), bookID, dataURI); err != nil {
			return ErrMsg{Err: err, Context: "store pdf"}
		}
		return PDFAttachedMsg{BookID: bookID, Title: title}
	}
}

// openPDFCmd loads a stored PDF and hands it to the external viewer.
func openPDFCmd(store domain.PDFStore, launcher *reader.Launcher, bookID string) tea.Cmd {
	return func() tea.Msg {
		dataURI, err := store.Get(context.Background(), bookID)
		if err != nil {
			return ErrMsg{Err: err, Context: "load pdf"}
		}
		path, err := launcher.Open(bookID, dataURI)
		if err != nil {
			return ErrMsg{Err: err, Context: "open pdf"}
		}
		return PDFOpenedMsg{BookID: bookID, Path: path}
	}
}

// detachPDFCmd removes a book's stored PDF.
func detachPDFCmd(store domain.PDFStore, bookID string) tea.Cmd {
	return func() tea.Msg {
		if err := store.Delete(context.Background(), bookID); err != nil {
			return ErrMsg{Err: err, Context: "delete pdf"}
		}
		return PDFDetachedMsg{BookID: bookID}
	}
}

// clearStatusCmd expires the status line after a short delay.
func clearStatusCmd() tea.Cmd {
	return tea.Tick(4*time.Second, func(time.Time) tea.Msg {
		return StatusClearMsg{}
	})
}
