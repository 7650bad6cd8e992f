package calendar

import (
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"
	calpkg "batchcal/internal/calendar"
	"batchcal/internal/tui/theme"
)

const (
	glyphDefault   = "○"
	glyphCompleted = "✓"
	glyphSelected  = "●"
)

func (m Model) renderers() calpkg.Renderers {
	return calpkg.Renderers{
		Header: renderHeader,
		Cell: func(d calpkg.Date, deco calpkg.DecorationState) string {
			return renderDay(d, deco, d == m.cursor)
		},
		Blank: func() string { return theme.Blank.Render("") },
	}
}

func renderHeader(wd time.Weekday) string {
	return theme.DayHeader.Render(calpkg.DayAbbrev(wd))
}

// renderDay draws a theme.CellWidth cell split into two halves. Each half gets
// the band background when its connector is on, so adjacent attended days read
// as one continuous strip.
func renderDay(d calpkg.Date, deco calpkg.DecorationState, isCursor bool) string {
	glyph, style := glyphDefault, theme.IconDefault
	switch deco.Icon {
	case calpkg.IconSelected:
		glyph, style = glyphSelected, theme.IconSelected
	case calpkg.IconCompleted:
		glyph, style = glyphCompleted, theme.IconCompleted
	}

	text := []rune(fmt.Sprintf(" %s%2d", glyph, d.Day))
	for len(text) < theme.CellWidth {
		text = append(text, ' ')
	}
	half := theme.CellWidth / 2
	left, right := string(text[:half]), string(text[half:])

	leftStyle, rightStyle := style, style
	if deco.ShowLeftConnector {
		leftStyle = leftStyle.Inherit(theme.BandOn)
	}
	if deco.ShowRightConnector {
		rightStyle = rightStyle.Inherit(theme.BandOn)
	}
	if isCursor {
		leftStyle = leftStyle.Inherit(theme.Cursor)
		rightStyle = rightStyle.Inherit(theme.Cursor)
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, leftStyle.Render(left), rightStyle.Render(right))
}
