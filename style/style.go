package style

import (
	"charm.land/lipgloss/v2"
)

var (
	BorderStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240")) // Subtle warm grey border
	HlRowStyle    = lipgloss.NewStyle().Background(lipgloss.Color("235")) // Very subtle warm grey row
	SelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("215"))
	ExcludedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("167"))
	TitleStyle    = lipgloss.NewStyle().Bold(true)
	MutedStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("246")) // Warm muted grey text
	ErrorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
	UnStyle       = lipgloss.NewStyle()
)

// Dialog returns the bordered box screens are drawn in.
func Dialog(width int) lipgloss.Style {
	style := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(1, 2)

	if width > 0 {
		style = style.Width(width)
	}
	return style
}

// RowStyler returns the style for a list row, highlighting the focused one.
func RowStyler(focused int) func(row int) lipgloss.Style {
	return func(row int) lipgloss.Style {
		if row == focused {
			return HlRowStyle
		}
		return UnStyle
	}
}
