package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/fxrdhan/bookshelf/internal/domain"
)

const (
	sidebarWidth = 22
	chromeHeight = 5 // header + status line + borders
)

// View implements tea.Model
func (m Model) View() string {
	if !m.Ready {
		return "loading bookshelf..."
	}

	var overlay string
	switch {
	case m.form.IsVisible():
		overlay = m.form.View()
	case m.omnibar.IsVisible():
		overlay = m.omnibar.View()
	case m.pathModal.IsVisible():
		overlay = m.pathModal.View()
	case m.State == StateConfirmDelete:
		overlay = m.confirmDeleteView()
	case m.State == StateHelp:
		overlay = m.helpView()
	}
	if overlay != "" {
		// Keep the status line visible so validation errors show
		// under the modal
		if m.StatusMsg != "" {
			overlay = lipgloss.JoinVertical(lipgloss.Center, overlay, m.statusView())
		}
		return lipgloss.Place(m.Width, m.Height, lipgloss.Center, lipgloss.Center, overlay)
	}

	body := lipgloss.JoinHorizontal(lipgloss.Top, m.sidebarView(), m.gridView())
	return lipgloss.JoinVertical(lipgloss.Left, m.headerView(), body, m.statusView())
}

func (m Model) headerView() string {
	title := m.theme.Title.Render("Bookshelf")
	mode := m.theme.DimStyle.Render(fmt.Sprintf("view:%s", m.grid.ViewMode()))
	sort := m.theme.DimStyle.Render(fmt.Sprintf("sort:%s", m.svc.SortOrder(m.section)))

	left := lipgloss.JoinHorizontal(lipgloss.Center, title, "  ", mode, " ", sort)
	if m.State == StateSearching {
		return lipgloss.JoinHorizontal(lipgloss.Center, left, "  ", m.searchInput.View())
	}
	if m.searchTerm != "" {
		filter := m.theme.AccentTxt.Render(fmt.Sprintf("/%s", m.searchTerm))
		return lipgloss.JoinHorizontal(lipgloss.Center, left, "  ", filter)
	}
	return left
}

func (m Model) sidebarView() string {
	var b strings.Builder
	b.WriteString(m.theme.Subtitle.Render("Sections"))
	b.WriteString("\n\n")

	for _, section := range domain.Sections {
		count := len(m.svc.Section(section, m.svc.SortOrder(section)))
		line := fmt.Sprintf("%s (%d)", section, count)
		if section == m.section {
			b.WriteString(m.theme.Selected.Render("▸ " + line))
		} else {
			b.WriteString(m.theme.DimStyle.Render("  " + line))
		}
		b.WriteString("\n")
	}

	border := m.theme.InactiveBorder
	return border.
		Width(sidebarWidth).
		Height(m.Height - chromeHeight).
		Render(b.String())
}

func (m Model) gridView() string {
	return m.theme.ActiveBorder.
		Width(max(m.Width-sidebarWidth-4, 20)).
		Height(m.Height - chromeHeight).
		Render(m.grid.View())
}

func (m Model) statusView() string {
	if m.StatusMsg != "" {
		if m.StatusIsErr {
			return m.theme.Error.Render("✗ " + m.StatusMsg)
		}
		return m.theme.Success.Render("✓ " + m.StatusMsg)
	}
	hint := "a add • e edit • d delete • space finished • f favorite • / search • ? help • q quit"
	return m.theme.DimStyle.Render(hint)
}

func (m Model) confirmDeleteView() string {
	var b strings.Builder
	b.WriteString(m.theme.Title.Render("Delete book"))
	b.WriteString("\n\n")
	b.WriteString(fmt.Sprintf("Remove %q from the shelf?\n", m.confirmDeleteTitle))
	b.WriteString("Any attached pdf is removed too.\n\n")
	b.WriteString(m.theme.DimStyle.Render("y confirm • n cancel"))
	return m.theme.ActiveBorder.Padding(1, 2).Render(b.String())
}

func (m Model) helpView() string {
	rows := []struct{ key, desc string }{
		{"↑/↓/←/→ hjkl", "move cursor"},
		{"tab / shift+tab", "switch section"},
		{"a", "add book"},
		{"e", "edit book"},
		{"d", "delete book"},
		{"space", "toggle finished"},
		{"f", "toggle favorite"},
		{"/", "filter titles"},
		{"ctrl+p", "fuzzy find everywhere"},
		{"s", "reverse sort order"},
		{"v", "grid / cover view"},
		{"t", "light / dark theme"},
		{"p", "attach pdf"},
		{"o / enter", "open pdf"},
		{"P", "detach pdf"},
		{"q", "quit"},
	}

	var b strings.Builder
	b.WriteString(m.theme.Title.Render("Keys"))
	b.WriteString("\n\n")
	for _, r := range rows {
		b.WriteString(m.theme.AccentTxt.Width(18).Render(r.key))
		b.WriteString(" " + r.desc + "\n")
	}
	b.WriteString("\n")
	b.WriteString(m.theme.DimStyle.Render("esc to close"))
	return m.theme.ActiveBorder.Padding(1, 2).Render(b.String())
}
