package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/fxrdhan/bookshelf/internal/domain"
	"github.com/fxrdhan/bookshelf/internal/tui/styles"
)

// ShelfGrid renders one section's books in either grid or cover view
// and tracks the cursor within it.
type ShelfGrid struct {
	books   []domain.Book
	cursor  int
	columns int

	viewMode domain.ViewMode
	width    int
	height   int
	theme    styles.Theme
}

// NewShelfGrid creates the grid component
func NewShelfGrid(columns int, viewMode domain.ViewMode, theme styles.Theme) ShelfGrid {
	if columns < 1 {
		columns = 3
	}
	return ShelfGrid{columns: columns, viewMode: viewMode, theme: theme}
}

// SetTheme swaps the color scheme
func (g *ShelfGrid) SetTheme(theme styles.Theme) { g.theme = theme }

// SetViewMode switches between grid and cover display
func (g *ShelfGrid) SetViewMode(mode domain.ViewMode) { g.viewMode = mode }

// ViewMode returns the current display mode
func (g ShelfGrid) ViewMode() domain.ViewMode { return g.viewMode }

// SetSize updates the component dimensions
func (g *ShelfGrid) SetSize(width, height int) {
	g.width = width
	g.height = height
}

// SetBooks replaces the displayed books, clamping the cursor so a
// delete or filter change never leaves it out of range.
func (g *ShelfGrid) SetBooks(books []domain.Book) {
	g.books = books
	if g.cursor >= len(books) {
		g.cursor = len(books) - 1
	}
	if g.cursor < 0 {
		g.cursor = 0
	}
}

// Len returns the number of displayed books
func (g ShelfGrid) Len() int { return len(g.books) }

// Select moves the cursor to the book with the given ID, in either
// direction. Reports whether the book is currently displayed.
func (g *ShelfGrid) Select(id string) bool {
	for i, b := range g.books {
		if b.ID == id {
			g.cursor = i
			return true
		}
	}
	return false
}

// Selected returns the book under the cursor
func (g ShelfGrid) Selected() (domain.Book, bool) {
	if g.cursor < 0 || g.cursor >= len(g.books) {
		return domain.Book{}, false
	}
	return g.books[g.cursor], true
}

// Cursor movement

func (g *ShelfGrid) MoveUp() {
	if g.cursor-g.columns >= 0 {
		g.cursor -= g.columns
	}
}

func (g *ShelfGrid) MoveDown() {
	if g.cursor+g.columns < len(g.books) {
		g.cursor += g.columns
	}
}

func (g *ShelfGrid) MoveLeft() {
	if g.cursor > 0 {
		g.cursor--
	}
}

func (g *ShelfGrid) MoveRight() {
	if g.cursor < len(g.books)-1 {
		g.cursor++
	}
}

// View renders the grid
func (g ShelfGrid) View() string {
	if len(g.books) == 0 {
		return g.theme.DimStyle.Padding(1, 2).Render("nothing on this shelf")
	}

	cellWidth := g.width/g.columns - 2
	if cellWidth < 16 {
		cellWidth = 16
	}

	var rows []string
	for start := 0; start < len(g.books); start += g.columns {
		end := start + g.columns
		if end > len(g.books) {
			end = len(g.books)
		}
		cells := make([]string, 0, g.columns)
		for i := start; i < end; i++ {
			cells = append(cells, g.renderCell(g.books[i], i == g.cursor, cellWidth))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}

	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (g ShelfGrid) renderCell(book domain.Book, selected bool, width int) string {
	if g.viewMode == domain.ViewModeCover {
		return g.renderCoverCell(book, selected, width)
	}
	return g.renderGridCell(book, selected, width)
}

// renderGridCell is the compact row-style cell: title, author · year, badges.
func (g ShelfGrid) renderGridCell(book domain.Book, selected bool, width int) string {
	t := g.theme

	title := truncate(book.Title, width-2)
	desc := truncate(book.Description(), width-2)

	lines := []string{
		t.Title.Render(title),
		t.Subtitle.Render(desc),
		g.badges(book),
	}
	content := lipgloss.JoinVertical(lipgloss.Left, lines...)

	border := t.InactiveBorder
	if selected {
		border = t.ActiveBorder
	}
	return border.Width(width).Padding(0, 1).Render(content)
}

// renderCoverCell is the taller cover-style cell. Without an attached
// cover it renders the placeholder frame.
func (g ShelfGrid) renderCoverCell(book domain.Book, selected bool, width int) string {
	t := g.theme

	var body string
	if book.HasCover() {
		body = t.AccentTxt.Render("▞▚ cover ▚▞")
	} else {
		body = t.DimStyle.Render("· no cover ·")
	}

	lines := []string{
		"",
		lipgloss.PlaceHorizontal(width-2, lipgloss.Center, body),
		"",
		lipgloss.PlaceHorizontal(width-2, lipgloss.Center, t.Title.Render(truncate(book.Title, width-4))),
		lipgloss.PlaceHorizontal(width-2, lipgloss.Center, t.Subtitle.Render(fmt.Sprintf("%d", book.Year))),
		lipgloss.PlaceHorizontal(width-2, lipgloss.Center, g.badges(book)),
	}
	content := lipgloss.JoinVertical(lipgloss.Left, lines...)

	border := t.InactiveBorder
	if selected {
		border = t.ActiveBorder
	}
	return border.Width(width).Render(content)
}

// badges renders the status indicators for a book
func (g ShelfGrid) badges(book domain.Book) string {
	t := g.theme
	var parts []string

	if book.IsComplete {
		parts = append(parts, t.Success.Render(styles.FinishedChar))
	} else {
		parts = append(parts, t.DimStyle.Render(styles.UnreadChar))
	}
	if book.IsFavorite {
		parts = append(parts, t.Favorite.Render(styles.FavoriteChar))
	}
	if book.HasPDF() {
		parts = append(parts, t.AccentTxt.Render(styles.PDFChar))
	}
	return strings.Join(parts, " ")
}

func truncate(s string, max int) string {
	if max < 1 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-1]) + "…"
}
