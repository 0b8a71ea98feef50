package reader

import (
	"encoding/base64"
	"os"
	"testing"

	"github.com/fxrdhan/bookshelf/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenRejectsNonPDFPayload(t *testing.T) {
	l := NewLauncher("true", nil, nil)
	_, err := l.Open("book-1", "data:image/png;base64,aGVsbG8=")
	assert.ErrorIs(t, err, domain.ErrInvalidPDFData)
}

func TestOpenRejectsMangledBase64(t *testing.T) {
	l := NewLauncher("true", nil, nil)
	_, err := l.Open("book-1", domain.PDFDataPrefix+"!!!not base64!!!")
	assert.ErrorIs(t, err, domain.ErrCorruptedPDF)
}

func TestOpenWritesDecodedTempFile(t *testing.T) {
	// "true" accepts any argument and exits immediately
	l := NewLauncher("true", nil, nil)

	raw := []byte("%PDF-1.4 tiny body")
	dataURI := domain.PDFDataPrefix + base64.StdEncoding.EncodeToString(raw)

	path, err := l.Open("book-1", dataURI)
	require.NoError(t, err)
	t.Cleanup(func() { os.Remove(path) })

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, raw, got)
}

func TestOpenFailsWhenViewerIsMissing(t *testing.T) {
	l := NewLauncher("definitely-not-a-real-viewer-binary", nil, nil)

	dataURI := domain.PDFDataPrefix + base64.StdEncoding.EncodeToString([]byte("%PDF-1.4"))
	_, err := l.Open("book-1", dataURI)
	assert.Error(t, err)
}

func TestResolveCommandPrefersConfigured(t *testing.T) {
	l := NewLauncher("zathura", []string{"--fork"}, nil)
	command, args := l.resolveCommand()
	assert.Equal(t, "zathura", command)
	assert.Equal(t, []string{"--fork"}, args)
}
