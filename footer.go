package soshiki

import (
	"strings"

	"charm.land/lipgloss/v2"

	"soshiki/style"
)

// RenderFooter renders a footer with the breadcrumb on the left and status on the right.
func RenderFooter(crumbs []string, status string, width int) string {

	left := strings.Join(crumbs, " › ")
	right := status

	// Calculate padding
	padding := width - lipgloss.Width(left) - lipgloss.Width(right)
	if padding < 0 {
		padding = 0
	}

	return style.BorderStyle.Render(left + strings.Repeat(" ", padding) + right)
}
