package calendar

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	calpkg "batchcal/internal/calendar"
	"batchcal/internal/logs"
	"batchcal/internal/tui/shared"
	"batchcal/internal/tui/theme"
)

// DateSelectedMsg is emitted whenever the user picks a day
type DateSelectedMsg struct {
	Date calpkg.Date
}

// Model is the month/week calendar view
type Model struct {
	state  calpkg.State
	cursor calpkg.Date // day under the cursor, always visible
	clock  calpkg.Clock
	batch  calpkg.BatchWindow
	keys   KeyMap
	help   help.Model

	// Jump prompt
	jumping   bool
	jumpInput textinput.Model
	jumpErr   string

	width  int
	height int
}

// New creates a calendar view centered on today
func New(clock calpkg.Clock, batch calpkg.BatchWindow, mode calpkg.ViewMode) Model {
	ji := textinput.New()
	ji.Placeholder = "2026-03-14 or mar 2026"
	ji.CharLimit = 32
	ji.Width = 24

	today := clock.Today()
	return Model{
		state:     calpkg.NewState(today, mode),
		cursor:    today,
		clock:     clock,
		batch:     batch,
		keys:      DefaultKeyMap(),
		help:      help.New(),
		jumpInput: ji,
	}
}

// State returns the current widget state
func (m Model) State() calpkg.State {
	return m.state
}

// Cursor returns the day under the cursor
func (m Model) Cursor() calpkg.Date {
	return m.cursor
}

// Keys returns the bindings, for help rendering
func (m Model) Keys() KeyMap {
	return m.keys
}

// IsJumping reports whether the jump prompt owns the keyboard
func (m Model) IsJumping() bool {
	return m.jumping
}

// SetSize updates the view dimensions
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.help.Width = width
}

// Update handles key events for the calendar
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	if m.jumping {
		return m.updateJump(keyMsg)
	}

	switch {
	case key.Matches(keyMsg, m.keys.Prev):
		m.state = m.state.GoPrevious()
		m.cursor = m.state.Reference
	case key.Matches(keyMsg, m.keys.Next):
		m.state = m.state.GoNext()
		m.cursor = m.state.Reference
	case key.Matches(keyMsg, m.keys.Toggle):
		m.state = m.state.ToggleView()
		if !m.cursorVisible() {
			m.cursor = m.state.Reference
		}
	case key.Matches(keyMsg, m.keys.Left):
		m.moveCursor(-1)
	case key.Matches(keyMsg, m.keys.Right):
		m.moveCursor(1)
	case key.Matches(keyMsg, m.keys.Up):
		m.moveCursor(-7)
	case key.Matches(keyMsg, m.keys.Down):
		m.moveCursor(7)
	case key.Matches(keyMsg, m.keys.Today):
		today := m.clock.Today()
		m.state = m.state.GoToday(today)
		m.cursor = today
	case key.Matches(keyMsg, m.keys.Clear):
		m.state = m.state.ClearSelection()
	case key.Matches(keyMsg, m.keys.Select):
		d := m.cursor
		m.state = m.state.SelectDate(d)
		logs.Logger.Printf("Selected %s", d)
		return m, func() tea.Msg { return DateSelectedMsg{Date: d} }
	case key.Matches(keyMsg, m.keys.Jump):
		m.jumping = true
		m.jumpErr = ""
		m.jumpInput.SetValue("")
		return m, m.jumpInput.Focus()
	}
	return m, nil
}

func (m Model) updateJump(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.jumping = false
		m.jumpErr = ""
		m.jumpInput.Blur()
		return m, nil
	case "enter":
		target, err := ParseJumpTarget(m.jumpInput.Value(), m.state.Reference)
		if err != nil {
			logs.Logger.Printf("Jump failed: %v", err)
			m.jumpErr = err.Error()
			return m, nil
		}
		m.jumping = false
		m.jumpErr = ""
		m.jumpInput.Blur()
		m.state = m.state.JumpTo(target)
		m.cursor = target
		return m, nil
	}

	var cmd tea.Cmd
	m.jumpInput, cmd = m.jumpInput.Update(msg)
	return m, cmd
}

func (m *Model) moveCursor(days int) {
	m.cursor = calpkg.AddDays(m.cursor, days)
	m.ensureCursorInView()
}

func (m *Model) ensureCursorInView() {
	if !m.cursorVisible() {
		m.state = m.state.JumpTo(m.cursor)
	}
}

func (m Model) cursorVisible() bool {
	for _, c := range m.state.Cells() {
		if !c.Blank && c.Date == m.cursor {
			return true
		}
	}
	return false
}

// View renders the calendar view
func (m Model) View() string {
	frame := calpkg.Render(m.state, m.clock.Today(), m.batch, m.renderers())

	var sb strings.Builder
	sb.WriteString(theme.Title.Render(frame.Title))
	sb.WriteString("  ")
	sb.WriteString(theme.Muted.Render("[" + m.state.Mode.String() + "]"))
	sb.WriteString("\n\n")

	sb.WriteString(shared.JoinCells(frame.Headers))
	sb.WriteString("\n")
	for _, row := range frame.Rows {
		sb.WriteString(shared.JoinCells(row))
		sb.WriteString("\n")
	}
	sb.WriteString("\n")

	if m.state.Selected != nil {
		sb.WriteString(theme.Subtitle.Render("Selected: ") + m.state.Selected.String())
	} else {
		sb.WriteString(theme.Muted.Render("Selected: None"))
	}
	sb.WriteString("\n")

	if m.jumping {
		sb.WriteString("\n" + theme.Bold.Render("Go to: ") + m.jumpInput.View())
		if m.jumpErr != "" {
			sb.WriteString("\n" + theme.Error.Render(m.jumpErr))
		}
		sb.WriteString("\n")
	}

	sb.WriteString("\n" + m.help.View(m.keys))
	return sb.String()
}
