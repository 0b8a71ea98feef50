// Package reader hands attached PDFs to an external viewer. The
// application stores and retrieves payloads only; it never parses PDF
// content itself.
package reader

import (
	"encoding/base64"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/fxrdhan/bookshelf/internal/domain"
)

// Launcher opens PDF payloads in an external viewer process.
type Launcher struct {
	command string   // configured viewer command, empty for system default
	args    []string // additional arguments for the viewer
	logger  *slog.Logger
}

// NewLauncher creates a launcher for the configured viewer command.
func NewLauncher(command string, args []string, logger *slog.Logger) *Launcher {
	if logger == nil {
		logger = slog.Default()
	}
	return &Launcher{command: command, args: args, logger: logger}
}

// Open decodes dataURI to a temp file and starts the viewer on it.
// The viewer process is detached; its exit status is not observed.
func (l *Launcher) Open(bookID, dataURI string) (string, error) {
	body, ok := strings.CutPrefix(dataURI, domain.PDFDataPrefix)
	if !ok {
		return "", domain.ErrInvalidPDFData
	}

	raw, err := base64.StdEncoding.DecodeString(body)
	if err != nil {
		return "", domain.ErrCorruptedPDF
	}

	path := filepath.Join(os.TempDir(), fmt.Sprintf("bookshelf-%s.pdf", bookID))
	if err := os.WriteFile(path, raw, 0600); err != nil {
		return "", fmt.Errorf("failed to write pdf temp file: %w", err)
	}

	command, args := l.resolveCommand()
	args = append(args, path)

	cmd := exec.Command(command, args...)
	if err := cmd.Start(); err != nil {
		return "", fmt.Errorf("failed to launch viewer %q: %w", command, err)
	}
	go cmd.Wait() // Reap the child; we don't care about the result

	l.logger.Info("opened pdf", "bookID", bookID, "viewer", command, "path", path)
	return path, nil
}

// resolveCommand picks the configured viewer or the platform opener.
func (l *Launcher) resolveCommand() (string, []string) {
	if l.command != "" {
		return l.command, append([]string(nil), l.args...)
	}
	switch runtime.GOOS {
	case "darwin":
		return "open", nil
	case "windows":
		return "rundll32", []string{"url.dll,FileProtocolHandler"}
	default:
		return "xdg-open", nil
	}
}
