package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fxrdhan/bookshelf/internal/config"
	"github.com/fxrdhan/bookshelf/internal/log"
	"github.com/fxrdhan/bookshelf/internal/pdfstore"
	"github.com/fxrdhan/bookshelf/internal/reader"
	"github.com/fxrdhan/bookshelf/internal/shelf"
	"github.com/fxrdhan/bookshelf/internal/store"
	"github.com/fxrdhan/bookshelf/internal/tui"
	"golang.org/x/term"
)

// Version is set at build time via -ldflags
var Version = "dev"

func main() {
	// Handle version flag
	var showVersion bool
	flag.BoolVar(&showVersion, "v", false, "print version")
	flag.BoolVar(&showVersion, "version", false, "print version")
	flag.Parse()

	if showVersion {
		fmt.Printf("bookshelf %s\n", Version)
		return
	}

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("bookshelf needs an interactive terminal")
	}

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Setup logger
	logger, err := log.SetupLogger(&cfg.Logging)
	if err != nil {
		// Fall back to null logger if file logging fails
		logger = log.NullLogger()
	}
	slog.SetDefault(logger)

	logger.Info("starting bookshelf", "version", Version)

	// Open the book store
	bookStore, err := store.NewBookStore(cfg.Data.Dir)
	if err != nil {
		return fmt.Errorf("failed to open book store: %w", err)
	}
	defer bookStore.Close()

	// PDF store opens its database per operation; touch it once up
	// front so a broken data dir fails fast instead of mid-session.
	pdfStore := pdfstore.New(cfg.Data.Dir, logger)
	if err := pdfStore.Open(context.Background()); err != nil {
		return fmt.Errorf("failed to open pdf store: %w", err)
	}

	// Create services
	svc := shelf.NewService(bookStore, logger)

	launcher := reader.NewLauncher(cfg.Viewer.Command, cfg.Viewer.Args, logger)

	// Create TUI model
	model := tui.NewModel(svc, pdfStore, launcher, cfg.UI.GridColumns, logger)

	// Run the TUI
	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	logger.Info("starting TUI")

	if _, err := p.Run(); err != nil {
		logger.Error("TUI error", "error", err)
		return fmt.Errorf("TUI error: %w", err)
	}

	logger.Info("shutting down")
	return nil
}
