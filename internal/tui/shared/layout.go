package shared

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// CenterContent centers content horizontally in width and vertically in height.
func CenterContent(content string, width, height int) string {
	content = strings.TrimRight(content, "\n")
	if width <= 0 || height <= 0 {
		return content
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

// JoinCells joins pre-rendered cells of a row without separators
func JoinCells(cells []string) string {
	return lipgloss.JoinHorizontal(lipgloss.Top, cells...)
}
