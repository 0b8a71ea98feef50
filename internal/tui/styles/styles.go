package styles

import "github.com/charmbracelet/lipgloss"

// Theme holds the resolved style set for one color scheme. The theme
// toggles at runtime, so styles hang off a struct instead of package vars.
type Theme struct {
	Name string

	// Palette
	Accent  lipgloss.Color
	Text    lipgloss.Color
	Subtle  lipgloss.Color
	Dim     lipgloss.Color
	Red     lipgloss.Color
	Green   lipgloss.Color
	Surface lipgloss.Color

	// Borders
	ActiveBorder   lipgloss.Style
	InactiveBorder lipgloss.Style

	// Text styles
	Title     lipgloss.Style
	Subtitle  lipgloss.Style
	DimStyle  lipgloss.Style
	AccentTxt lipgloss.Style
	Error     lipgloss.Style
	Success   lipgloss.Style
	Selected  lipgloss.Style
	Favorite  lipgloss.Style
}

// Section status characters
const (
	UnreadChar   = "○"
	FinishedChar = "✓"
	FavoriteChar = "★"
	PDFChar      = "⎘"
)

// Dark returns the default dark theme
func Dark() Theme {
	t := Theme{
		Name:    "dark",
		Accent:  lipgloss.Color("#7C3AED"),
		Text:    lipgloss.Color("#F9FAFB"),
		Subtle:  lipgloss.Color("#9CA3AF"),
		Dim:     lipgloss.Color("#6B7280"),
		Red:     lipgloss.Color("#EF4444"),
		Green:   lipgloss.Color("#10B981"),
		Surface: lipgloss.Color("#1F2937"),
	}
	return t.build()
}

// Light returns the light theme
func Light() Theme {
	t := Theme{
		Name:    "light",
		Accent:  lipgloss.Color("#6D28D9"),
		Text:    lipgloss.Color("#111827"),
		Subtle:  lipgloss.Color("#4B5563"),
		Dim:     lipgloss.Color("#9CA3AF"),
		Red:     lipgloss.Color("#DC2626"),
		Green:   lipgloss.Color("#059669"),
		Surface: lipgloss.Color("#E5E7EB"),
	}
	return t.build()
}

// ForName resolves a persisted theme preference
func ForName(name string) Theme {
	if name == "light" {
		return Light()
	}
	return Dark()
}

func (t Theme) build() Theme {
	t.ActiveBorder = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Accent)
	t.InactiveBorder = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Dim)

	t.Title = lipgloss.NewStyle().Foreground(t.Text).Bold(true)
	t.Subtitle = lipgloss.NewStyle().Foreground(t.Subtle)
	t.DimStyle = lipgloss.NewStyle().Foreground(t.Dim)
	t.AccentTxt = lipgloss.NewStyle().Foreground(t.Accent)
	t.Error = lipgloss.NewStyle().Foreground(t.Red)
	t.Success = lipgloss.NewStyle().Foreground(t.Green)
	t.Selected = lipgloss.NewStyle().
		Foreground(t.Text).
		Background(t.Accent).
		Padding(0, 1)
	t.Favorite = lipgloss.NewStyle().Foreground(lipgloss.Color("#F59E0B"))
	return t
}
