package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/fxrdhan/bookshelf/internal/search"
	"github.com/fxrdhan/bookshelf/internal/tui/styles"
)

const maxOmnibarResults = 8

// Omnibar is the fuzzy-find modal over all book titles.
type Omnibar struct {
	visible bool
	input   textinput.Model
	index   *search.Index
	results []search.Result
	cursor  int
	theme   styles.Theme
}

// NewOmnibar creates the omnibar component
func NewOmnibar(theme styles.Theme) Omnibar {
	ti := textinput.New()
	ti.Placeholder = "fuzzy find a book..."
	ti.Prompt = "> "
	ti.CharLimit = 80
	ti.Width = 40

	return Omnibar{input: ti, theme: theme}
}

// SetTheme swaps the color scheme
func (o *Omnibar) SetTheme(theme styles.Theme) { o.theme = theme }

// Show opens the omnibar against a fresh index
func (o *Omnibar) Show(index *search.Index) {
	o.visible = true
	o.index = index
	o.results = nil
	o.cursor = 0
	o.input.SetValue("")
	o.input.Focus()
}

// Hide dismisses the omnibar
func (o *Omnibar) Hide() {
	o.visible = false
	o.input.Blur()
}

// IsVisible returns whether the omnibar is shown
func (o Omnibar) IsVisible() bool { return o.visible }

// Update handles input events, returns (omnibar, cmd, selected book ID)
func (o Omnibar) Update(msg tea.Msg) (Omnibar, tea.Cmd, string) {
	if !o.visible {
		return o, nil, ""
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc":
			o.Hide()
			return o, nil, ""
		case "up", "ctrl+k":
			if o.cursor > 0 {
				o.cursor--
			}
			return o, nil, ""
		case "down", "ctrl+j":
			if o.cursor < len(o.results)-1 {
				o.cursor++
			}
			return o, nil, ""
		case "enter":
			if o.cursor < len(o.results) {
				id := o.results[o.cursor].Book.ID
				o.Hide()
				return o, nil, id
			}
			return o, nil, ""
		}
	}

	var cmd tea.Cmd
	o.input, cmd = o.input.Update(msg)
	o.results = o.index.Query(o.input.Value())
	if len(o.results) > maxOmnibarResults {
		o.results = o.results[:maxOmnibarResults]
	}
	if o.cursor >= len(o.results) {
		o.cursor = 0
	}
	return o, cmd, ""
}

// View renders the omnibar modal
func (o Omnibar) View() string {
	if !o.visible {
		return ""
	}

	t := o.theme
	rows := []string{o.input.View(), ""}

	if len(o.results) == 0 && o.input.Value() != "" {
		rows = append(rows, t.DimStyle.Render("no matches"))
	}
	for i, r := range o.results {
		line := o.highlightTitle(r)
		line += t.DimStyle.Render(fmt.Sprintf("  %s", r.Book.Author))
		if i == o.cursor {
			line = t.AccentTxt.Render("▶ ") + line
		} else {
			line = "  " + line
		}
		rows = append(rows, line)
	}

	content := lipgloss.JoinVertical(lipgloss.Left, rows...)
	return t.ActiveBorder.Padding(1, 2).Render(content)
}

// highlightTitle renders a result title with matched runes accented
func (o Omnibar) highlightTitle(r search.Result) string {
	if len(r.MatchedIndexes) == 0 {
		return o.theme.Title.Render(r.Book.Title)
	}

	matched := make(map[int]bool, len(r.MatchedIndexes))
	for _, idx := range r.MatchedIndexes {
		matched[idx] = true
	}

	var b strings.Builder
	for i, ch := range []rune(r.Book.Title) {
		s := string(ch)
		if matched[i] {
			b.WriteString(o.theme.AccentTxt.Bold(true).Render(s))
		} else {
			b.WriteString(o.theme.Title.Render(s))
		}
	}
	return b.String()
}
