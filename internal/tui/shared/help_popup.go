package shared

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
	"batchcal/internal/tui/theme"
)

// HelpSection represents a group of related keybinds
type HelpSection struct {
	Title string
	Binds []key.Binding
}

var (
	helpKeyStyle  = lipgloss.NewStyle().Bold(true).Foreground(theme.Secondary).Width(14)
	helpDescStyle = lipgloss.NewStyle().Foreground(theme.Text)
)

// RenderHelpPopup renders a centered help popup listing every enabled binding
func RenderHelpPopup(title string, sections []HelpSection, width, height int) string {
	var sb strings.Builder
	sb.WriteString(theme.ModalTitle.Render(title))
	sb.WriteString("\n")

	for _, section := range sections {
		sb.WriteString("\n")
		sb.WriteString(theme.Title.Render(section.Title))
		sb.WriteString("\n")
		for _, b := range section.Binds {
			if !b.Enabled() {
				continue
			}
			h := b.Help()
			sb.WriteString("  " + helpKeyStyle.Render(h.Key) + helpDescStyle.Render(h.Desc) + "\n")
		}
	}

	sb.WriteString("\n" + theme.HelpHint.Render("Press any key to close"))

	box := theme.ModalBox.Render(sb.String())
	return CenterContent(box, width, height)
}
