package theme

import "github.com/charmbracelet/lipgloss"

// ---------------------------------------------------------------------------
// Color palette — ANSI 0-15 + two 256-color accents
// ---------------------------------------------------------------------------

var (
	Text      = lipgloss.Color("7")
	TextMuted = lipgloss.Color("8")

	Primary   = lipgloss.Color("4")   // blue
	Secondary = lipgloss.Color("6")   // cyan
	Success   = lipgloss.Color("2")   // green
	Warning   = lipgloss.Color("3")   // yellow
	Danger    = lipgloss.Color("1")   // red
	Border    = lipgloss.Color("8")   // dim
	Band      = lipgloss.Color("223") // pale orange, attended-day connector
	BandText  = lipgloss.Color("0")
)

// ---------------------------------------------------------------------------
// Semantic text styles
// ---------------------------------------------------------------------------

var (
	Title    = lipgloss.NewStyle().Bold(true).Foreground(Primary)
	Subtitle = lipgloss.NewStyle().Bold(true).Foreground(Secondary)
	Muted    = lipgloss.NewStyle().Foreground(TextMuted)
	Bold     = lipgloss.NewStyle().Bold(true)

	Error = lipgloss.NewStyle().Bold(true).Foreground(Danger)
)

// ---------------------------------------------------------------------------
// Day cell styles
// ---------------------------------------------------------------------------

// CellWidth is the column width of every grid cell, header included.
// Day cells split it into two halves, one per connector.
const CellWidth = 6

var (
	DayHeader = lipgloss.NewStyle().Bold(true).Foreground(TextMuted).Width(CellWidth).Align(lipgloss.Center)
	Blank     = lipgloss.NewStyle().Width(CellWidth)

	IconDefault   = lipgloss.NewStyle().Foreground(Text)
	IconCompleted = lipgloss.NewStyle().Bold(true).Foreground(Success)
	IconSelected  = lipgloss.NewStyle().Bold(true).Foreground(Warning)

	// BandOn is layered over an icon style on a half cell with a connector
	BandOn = lipgloss.NewStyle().Background(Band).Foreground(BandText)
	Cursor = lipgloss.NewStyle().Underline(true)
)

// ---------------------------------------------------------------------------
// Reusable component helpers
// ---------------------------------------------------------------------------

var (
	ModalBox = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Primary).
			Padding(1, 2)

	ModalTitle = lipgloss.NewStyle().Bold(true).Foreground(Warning)

	StatusBar = lipgloss.NewStyle().
			Foreground(TextMuted).
			BorderStyle(lipgloss.NormalBorder()).
			BorderTop(true).
			BorderForeground(Border)

	HelpHint = lipgloss.NewStyle().Foreground(TextMuted)
)
