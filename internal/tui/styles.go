package tui

import "github.com/charmbracelet/lipgloss"

// palette bundles the styles of one display theme
type palette struct {
	title, count, status, err, muted, box lipgloss.Style
}

var (
	lightPalette = palette{
		title:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#570df8")),
		count:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#570df8")),
		status: lipgloss.NewStyle().Foreground(lipgloss.Color("#002b3d")).Background(lipgloss.Color("#3abff8")).Padding(0, 1),
		err:    lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		muted:  lipgloss.NewStyle().Faint(true),
		box: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#570df8")).
			Padding(1, 3),
	}
	darkPalette = palette{
		title:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#a991f7")),
		count:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#d926aa")),
		status: lipgloss.NewStyle().Foreground(lipgloss.Color("#a6adbb")).Background(lipgloss.Color("#2a303c")).Padding(0, 1),
		err:    lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Bold(true),
		muted:  lipgloss.NewStyle().Faint(true),
		box: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#661ae6")).
			Padding(1, 3),
	}
)
