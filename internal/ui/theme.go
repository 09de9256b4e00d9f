package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/Makepad-fr/tada/internal/model"
)

// Theme bundles palette + symbols + box borders for one ThemeMode.
// CLI helpers pull from `current`; the TUI keeps its own copy.
type Theme struct {
	Mode model.ThemeMode

	Title, Muted, Accent, Success, Error, Pending lipgloss.Style
	Selected, Grabbed, Done, Help                 lipgloss.Style
	Border                                        lipgloss.Color

	BoxUnchecked, BoxChecked string
	SymDone, SymPending      string
}

var current = For(model.ThemeLight)

// For returns the palette for mode. Anything but dark gets the light palette.
func For(mode model.ThemeMode) Theme {
	t := Theme{
		Mode:         model.ThemeLight,
		BoxUnchecked: "☐",
		BoxChecked:   "☑",
		SymDone:      "✔",
		SymPending:   "•",
	}
	if mode.IsDark() {
		t.Mode = model.ThemeDark
		t.Title = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("255"))
		t.Muted = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
		t.Accent = lipgloss.NewStyle().Foreground(lipgloss.Color("111"))
		t.Success = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
		t.Error = lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Bold(true)
		t.Pending = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
		t.Selected = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("255")).Background(lipgloss.Color("238"))
		t.Grabbed = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("235")).Background(lipgloss.Color("214"))
		t.Done = lipgloss.NewStyle().Faint(true).Strikethrough(true)
		t.Help = lipgloss.NewStyle().Faint(true)
		t.Border = lipgloss.Color("240")
		return t
	}
	t.Title = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("235"))
	t.Muted = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	t.Accent = lipgloss.NewStyle().Foreground(lipgloss.Color("27"))
	t.Success = lipgloss.NewStyle().Foreground(lipgloss.Color("28"))
	t.Error = lipgloss.NewStyle().Foreground(lipgloss.Color("160")).Bold(true)
	t.Pending = lipgloss.NewStyle().Foreground(lipgloss.Color("130"))
	t.Selected = lipgloss.NewStyle().Bold(true).Reverse(true)
	t.Grabbed = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("255")).Background(lipgloss.Color("27"))
	// faint text is unreadable on light backgrounds
	t.Done = lipgloss.NewStyle().Foreground(lipgloss.Color("246")).Strikethrough(true)
	t.Help = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	t.Border = lipgloss.Color("250")
	return t
}

func SetTheme(mode model.ThemeMode) { current = For(mode) }

// Expose what renderers need
func Current() Theme { return current }
