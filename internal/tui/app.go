package tui

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/fxrdhan/bookshelf/internal/domain"
	"github.com/fxrdhan/bookshelf/internal/reader"
	"github.com/fxrdhan/bookshelf/internal/search"
	"github.com/fxrdhan/bookshelf/internal/shelf"
	"github.com/fxrdhan/bookshelf/internal/tui/components"
	"github.com/fxrdhan/bookshelf/internal/tui/styles"
)

// ApplicationState represents the current state of the application
type ApplicationState int

const (
	StateBrowsing ApplicationState = iota
	StateSearching
	StateConfirmDelete
	StateHelp
)

// Model is the main Bubble Tea model for the application
type Model struct {
	State ApplicationState
	Ready bool

	keys     KeyMap
	svc      *shelf.Service
	pdfs     domain.PDFStore
	launcher *reader.Launcher
	logger   *slog.Logger

	theme   styles.Theme
	section domain.Section

	// Components
	grid      components.ShelfGrid
	form      components.BookForm
	omnibar   components.Omnibar
	pathModal components.InputModal

	// Substring title search
	searchInput textinput.Model
	searchTerm  string

	// Pending actions
	confirmDeleteID    string
	confirmDeleteTitle string
	attachTargetID     string
	attachTargetTitle  string

	// Dimensions
	Width  int
	Height int

	// Status line
	StatusMsg   string
	StatusIsErr bool
}

// NewModel creates the application model
func NewModel(svc *shelf.Service, pdfs domain.PDFStore, launcher *reader.Launcher, gridColumns int, logger *slog.Logger) Model {
	if logger == nil {
		logger = slog.Default()
	}
	theme := styles.ForName(svc.Theme())

	si := textinput.New()
	si.Placeholder = "search titles..."
	si.Prompt = "/ "
	si.CharLimit = 80

	m := Model{
		keys:        DefaultKeyMap(),
		svc:         svc,
		pdfs:        pdfs,
		launcher:    launcher,
		logger:      logger,
		theme:       theme,
		section:     domain.SectionUnread,
		grid:        components.NewShelfGrid(gridColumns, svc.ViewMode(), theme),
		form:        components.NewBookForm(theme),
		omnibar:     components.NewOmnibar(theme),
		pathModal:   components.NewInputModal(theme),
		searchInput: si,
	}
	m.refreshGrid()
	return m
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.grid.SetSize(msg.Width-sidebarWidth-2, msg.Height-chromeHeight)
		m.Ready = true
		return m, nil

	case ErrMsg:
		m.logger.Error("ui error", "context", msg.Context, "error", msg.Err)
		m.setStatus(m.friendlyError(msg), true)
		return m, clearStatusCmd()

	case PDFAttachedMsg:
		if err := m.svc.SetPDFRef(msg.BookID, msg.BookID); err != nil {
			m.setStatus("pdf stored but shelf save failed", true)
			return m, clearStatusCmd()
		}
		m.refreshGrid()
		m.setStatus(fmt.Sprintf("attached pdf to %q", msg.Title), false)
		return m, clearStatusCmd()

	case PDFDetachedMsg:
		err := m.svc.SetPDFRef(msg.BookID, "")
		switch {
		case errors.Is(err, domain.ErrBookNotFound):
			// The detach was the tail end of a delete
			return m, nil
		case err != nil:
			m.setStatus("pdf removed but shelf save failed", true)
			return m, clearStatusCmd()
		}
		m.refreshGrid()
		m.setStatus("pdf detached", false)
		return m, clearStatusCmd()

	case PDFOpenedMsg:
		m.setStatus("opened in external viewer", false)
		return m, clearStatusCmd()

	case StatusClearMsg:
		m.StatusMsg = ""
		m.StatusIsErr = false
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

// handleKey routes key events to the active modal or state handler
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Modals swallow input while visible
	if m.form.IsVisible() {
		return m.updateForm(msg)
	}
	if m.omnibar.IsVisible() {
		return m.updateOmnibar(msg)
	}
	if m.pathModal.IsVisible() {
		return m.updatePathModal(msg)
	}

	switch m.State {
	case StateSearching:
		return m.updateSearch(msg)
	case StateConfirmDelete:
		return m.updateConfirmDelete(msg)
	case StateHelp:
		if key.Matches(msg, m.keys.Escape, m.keys.Help, m.keys.Quit) {
			m.State = StateBrowsing
		}
		return m, nil
	default:
		return m.updateBrowsing(msg)
	}
}

func (m Model) updateBrowsing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.State = StateHelp
		return m, nil

	case key.Matches(msg, m.keys.Up):
		m.grid.MoveUp()
	case key.Matches(msg, m.keys.Down):
		m.grid.MoveDown()
	case key.Matches(msg, m.keys.Left):
		m.grid.MoveLeft()
	case key.Matches(msg, m.keys.Right):
		m.grid.MoveRight()

	case key.Matches(msg, m.keys.NextTab):
		m.section = domain.Sections[(int(m.section)+1)%len(domain.Sections)]
		m.refreshGrid()
	case key.Matches(msg, m.keys.PrevTab):
		m.section = domain.Sections[(int(m.section)+len(domain.Sections)-1)%len(domain.Sections)]
		m.refreshGrid()

	case key.Matches(msg, m.keys.Add):
		m.form.ShowAdd()

	case key.Matches(msg, m.keys.Edit):
		if book, ok := m.grid.Selected(); ok {
			m.svc.BeginEdit(book.ID)
			m.form.ShowEdit(book)
		}

	case key.Matches(msg, m.keys.Delete):
		if book, ok := m.grid.Selected(); ok {
			m.confirmDeleteID = book.ID
			m.confirmDeleteTitle = book.Title
			m.State = StateConfirmDelete
		}

	case key.Matches(msg, m.keys.ToggleComplete):
		if book, ok := m.grid.Selected(); ok {
			if _, err := m.svc.ToggleComplete(book.ID); err != nil {
				return m.reportError("toggle finished", err)
			}
			m.refreshGrid()
		}

	case key.Matches(msg, m.keys.ToggleFavorite):
		if book, ok := m.grid.Selected(); ok {
			if _, err := m.svc.ToggleFavorite(book.ID); err != nil {
				return m.reportError("toggle favorite", err)
			}
			m.refreshGrid()
		}

	case key.Matches(msg, m.keys.Sort):
		dir := m.svc.ToggleSort(m.section)
		m.refreshGrid()
		m.setStatus(fmt.Sprintf("%s sorted %s", m.section, dir), false)
		return m, clearStatusCmd()

	case key.Matches(msg, m.keys.ToggleView):
		mode := m.grid.ViewMode().Toggle()
		m.grid.SetViewMode(mode)
		if err := m.svc.SetViewMode(mode); err != nil {
			return m.reportError("save view mode", err)
		}

	case key.Matches(msg, m.keys.ToggleTheme):
		return m.toggleTheme()

	case key.Matches(msg, m.keys.Filter):
		m.State = StateSearching
		m.searchInput.SetValue(m.searchTerm)
		m.searchInput.Focus()
		return m, textinput.Blink

	case key.Matches(msg, m.keys.GlobalSearch):
		m.omnibar.Show(search.NewIndex(m.svc.Books()))

	case key.Matches(msg, m.keys.AttachPDF):
		if book, ok := m.grid.Selected(); ok {
			m.attachTargetID = book.ID
			m.attachTargetTitle = book.Title
			m.pathModal.Show(fmt.Sprintf("Attach PDF to %q", book.Title))
		}

	case key.Matches(msg, m.keys.DetachPDF):
		if book, ok := m.grid.Selected(); ok && book.HasPDF() {
			return m, detachPDFCmd(m.pdfs, book.ID)
		}

	case key.Matches(msg, m.keys.OpenPDF):
		if book, ok := m.grid.Selected(); ok {
			if !book.HasPDF() {
				m.setStatus("no pdf attached", true)
				return m, clearStatusCmd()
			}
			m.setStatus("opening pdf...", false)
			return m, openPDFCmd(m.pdfs, m.launcher, book.ID)
		}

	case key.Matches(msg, m.keys.Escape):
		if m.searchTerm != "" {
			m.searchTerm = ""
			m.refreshGrid()
		}
	}

	return m, nil
}

func (m Model) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		m.State = StateBrowsing
		m.searchInput.Blur()
		return m, nil
	case "esc":
		m.State = StateBrowsing
		m.searchTerm = ""
		m.searchInput.SetValue("")
		m.searchInput.Blur()
		m.refreshGrid()
		return m, nil
	}

	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	m.searchTerm = m.searchInput.Value()
	m.refreshGrid()
	return m, cmd
}

func (m Model) updateConfirmDelete(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Confirm):
		id := m.confirmDeleteID
		hadPDF := false
		if book, err := m.svc.Get(id); err == nil {
			hadPDF = book.HasPDF()
		}
		m.State = StateBrowsing
		m.confirmDeleteID = ""
		if err := m.svc.Delete(id); err != nil && !errors.Is(err, domain.ErrBookNotFound) {
			return m.reportError("delete book", err)
		}
		m.refreshGrid()
		m.setStatus(fmt.Sprintf("deleted %q", m.confirmDeleteTitle), false)
		if hadPDF {
			// The blob is detached on its own async path.
			return m, tea.Batch(detachPDFCmd(m.pdfs, id), clearStatusCmd())
		}
		return m, clearStatusCmd()

	case key.Matches(msg, m.keys.Deny):
		m.State = StateBrowsing
		m.confirmDeleteID = ""
		return m, nil
	}
	return m, nil
}

func (m Model) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	var submitted bool
	m.form, cmd, submitted = m.form.Update(msg)
	if !m.form.IsVisible() {
		// Dismissed with esc
		m.svc.EndEdit()
		return m, cmd
	}
	if !submitted {
		return m, cmd
	}

	v := m.form.Values()
	if m.form.EditID() == "" {
		book, err := m.svc.Add(shelf.AddInput{
			Title:      v.Title,
			Author:     v.Author,
			Year:       v.Year,
			IsComplete: v.IsComplete,
			Cover:      v.Cover,
		})
		if err != nil {
			return m.reportError("add book", err)
		}
		m.setStatus(fmt.Sprintf("added %q", book.Title), false)
	} else {
		_, err := m.svc.Update(m.form.EditID(), shelf.UpdateInput{
			Title:  &v.Title,
			Author: &v.Author,
			Year:   &v.Year,
			Cover:  &v.Cover,
		})
		if err != nil {
			return m.reportError("edit book", err)
		}
		m.svc.EndEdit()
		m.setStatus(fmt.Sprintf("updated %q", v.Title), false)
	}

	m.form.Hide()
	m.refreshGrid()
	return m, tea.Batch(cmd, clearStatusCmd())
}

func (m Model) updateOmnibar(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	var selectedID string
	m.omnibar, cmd, selectedID = m.omnibar.Update(msg)
	if selectedID == "" {
		return m, cmd
	}

	// Jump to the selected book's home section and put the cursor on it
	book, err := m.svc.Get(selectedID)
	if err != nil {
		return m, cmd
	}
	m.section = homeSection(book)
	m.searchTerm = ""
	m.refreshGrid()
	m.grid.Select(selectedID)
	return m, cmd
}

func (m Model) updatePathModal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	var submitted bool
	m.pathModal, cmd, submitted = m.pathModal.Update(msg)
	if !submitted {
		return m, cmd
	}

	path := strings.TrimSpace(m.pathModal.Value())
	m.pathModal.Hide()
	if path == "" {
		return m, cmd
	}
	m.setStatus("attaching pdf...", false)
	return m, tea.Batch(cmd, attachPDFCmd(m.pdfs, m.attachTargetID, m.attachTargetTitle, path))
}

func (m Model) toggleTheme() (tea.Model, tea.Cmd) {
	name := "dark"
	if m.theme.Name == "dark" {
		name = "light"
	}
	m.theme = styles.ForName(name)
	m.grid.SetTheme(m.theme)
	m.form.SetTheme(m.theme)
	m.omnibar.SetTheme(m.theme)
	m.pathModal.SetTheme(m.theme)
	if err := m.svc.SetTheme(name); err != nil {
		return m.reportError("save theme", err)
	}
	return m, nil
}

// refreshGrid recomputes the active section view from the collection,
// applying the search term, section filter, and sort order.
func (m *Model) refreshGrid() {
	books := m.svc.Search(m.searchTerm)
	m.grid.SetBooks(m.svc.SectionOf(books, m.section, m.svc.SortOrder(m.section)))
}

// homeSection picks the section a book naturally lives in
func homeSection(book domain.Book) domain.Section {
	if book.IsComplete {
		return domain.SectionFinished
	}
	return domain.SectionUnread
}

func (m *Model) setStatus(msg string, isErr bool) {
	m.StatusMsg = msg
	m.StatusIsErr = isErr
}

func (m Model) reportError(context string, err error) (tea.Model, tea.Cmd) {
	m.logger.Error(context, "error", err)
	m.setStatus(m.friendlyError(ErrMsg{Err: err, Context: context}), true)
	return m, clearStatusCmd()
}

// friendlyError maps known failures to short status-line text
func (m Model) friendlyError(e ErrMsg) string {
	switch {
	case domain.IsValidation(e.Err):
		return e.Err.Error()
	case errors.Is(e.Err, domain.ErrInvalidPDFData):
		return "not a valid pdf"
	case errors.Is(e.Err, domain.ErrPDFTooLarge):
		return "pdf is larger than 50 MB"
	case errors.Is(e.Err, domain.ErrPDFNotFound):
		return "no pdf stored for this book"
	case errors.Is(e.Err, domain.ErrCorruptedPDF):
		return "stored pdf is corrupted"
	default:
		return e.Error()
	}
}
