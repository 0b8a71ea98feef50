package components

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/fxrdhan/bookshelf/internal/domain"
	"github.com/fxrdhan/bookshelf/internal/tui/styles"
)

// Form field indexes
const (
	fieldTitle = iota
	fieldAuthor
	fieldYear
	fieldCover
	fieldFinished
	fieldCount
)

// FormValues carries the submitted form state back to the app.
type FormValues struct {
	Title      string
	Author     string
	Year       int
	YearRaw    string
	Cover      string
	IsComplete bool
}

// BookForm is the add/edit modal. The same component serves both
// flows; edit mode pre-fills the inputs and remembers the book ID.
type BookForm struct {
	visible bool
	editID  string // empty = add mode

	inputs   []textinput.Model
	finished bool
	focus    int

	theme styles.Theme
}

// NewBookForm creates the form component
func NewBookForm(theme styles.Theme) BookForm {
	labels := []string{"Title", "Author", "Year", "Cover URL"}
	inputs := make([]textinput.Model, 4)
	for i := range inputs {
		ti := textinput.New()
		ti.Placeholder = labels[i]
		ti.CharLimit = 200
		ti.Width = 38
		ti.Prompt = ""
		inputs[i] = ti
	}
	inputs[fieldYear].CharLimit = 4

	return BookForm{inputs: inputs, theme: theme}
}

// SetTheme swaps the color scheme
func (f *BookForm) SetTheme(theme styles.Theme) { f.theme = theme }

// ShowAdd displays an empty form
func (f *BookForm) ShowAdd() {
	f.visible = true
	f.editID = ""
	f.finished = false
	for i := range f.inputs {
		f.inputs[i].SetValue("")
	}
	f.setFocus(fieldTitle)
}

// ShowEdit displays the form pre-filled with an existing book
func (f *BookForm) ShowEdit(book domain.Book) {
	f.visible = true
	f.editID = book.ID
	f.finished = book.IsComplete
	f.inputs[fieldTitle].SetValue(book.Title)
	f.inputs[fieldAuthor].SetValue(book.Author)
	f.inputs[fieldYear].SetValue(strconv.Itoa(book.Year))
	f.inputs[fieldCover].SetValue(book.Cover)
	f.setFocus(fieldTitle)
}

// Hide dismisses the form
func (f *BookForm) Hide() {
	f.visible = false
	for i := range f.inputs {
		f.inputs[i].Blur()
	}
}

// IsVisible returns whether the form is shown
func (f BookForm) IsVisible() bool { return f.visible }

// EditID returns the book being edited ("" in add mode)
func (f BookForm) EditID() string { return f.editID }

// Values returns the current form state. Year parsing failures leave
// Year at -1 so validation downstream rejects them.
func (f BookForm) Values() FormValues {
	raw := strings.TrimSpace(f.inputs[fieldYear].Value())
	year := -1
	if n, err := strconv.Atoi(raw); err == nil {
		year = n
	}
	return FormValues{
		Title:      strings.TrimSpace(f.inputs[fieldTitle].Value()),
		Author:     strings.TrimSpace(f.inputs[fieldAuthor].Value()),
		Year:       year,
		YearRaw:    raw,
		Cover:      strings.TrimSpace(f.inputs[fieldCover].Value()),
		IsComplete: f.finished,
	}
}

func (f *BookForm) setFocus(i int) {
	f.focus = i
	for j := range f.inputs {
		if j == i {
			f.inputs[j].Focus()
		} else {
			f.inputs[j].Blur()
		}
	}
}

// Update handles input events, returns (form, cmd, submitted)
func (f BookForm) Update(msg tea.Msg) (BookForm, tea.Cmd, bool) {
	if !f.visible {
		return f, nil, false
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc":
			f.Hide()
			return f, nil, false
		case "tab", "down":
			f.setFocus((f.focus + 1) % fieldCount)
			return f, nil, false
		case "shift+tab", "up":
			f.setFocus((f.focus + fieldCount - 1) % fieldCount)
			return f, nil, false
		case "enter":
			if f.focus == fieldFinished || f.focus == fieldCover {
				return f, nil, true
			}
			f.setFocus(f.focus + 1)
			return f, nil, false
		case " ":
			if f.focus == fieldFinished {
				f.finished = !f.finished
				return f, nil, false
			}
		case "ctrl+s":
			return f, nil, true
		}
	}

	if f.focus < len(f.inputs) {
		var cmd tea.Cmd
		f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
		return f, cmd, false
	}
	return f, nil, false
}

// View renders the form modal
func (f BookForm) View() string {
	if !f.visible {
		return ""
	}

	t := f.theme
	title := "Add Book"
	if f.editID != "" {
		title = "Edit Book"
	}

	labels := []string{"Title", "Author", "Year", "Cover URL"}
	rows := []string{t.Title.Render(title), ""}
	for i, in := range f.inputs {
		label := t.Subtitle.Render(labels[i])
		if f.focus == i {
			label = t.AccentTxt.Render(labels[i])
		}
		rows = append(rows, label, in.View())
	}

	check := "[ ]"
	if f.finished {
		check = "[x]"
	}
	finishedRow := t.Subtitle.Render(check + " Finished reading")
	if f.focus == fieldFinished {
		finishedRow = t.AccentTxt.Render(check + " Finished reading")
	}
	rows = append(rows, "", finishedRow, "",
		t.DimStyle.Render("enter submit · tab next · esc cancel"))

	content := lipgloss.JoinVertical(lipgloss.Left, rows...)
	return t.ActiveBorder.Padding(1, 2).Render(content)
}
