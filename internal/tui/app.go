package tui

import (
	"batchcal/internal/calendar"
	"batchcal/internal/config"
	"batchcal/internal/logs"
	"batchcal/internal/tui/shared"
	"batchcal/internal/tui/theme"
	calendarview "batchcal/internal/tui/calendar"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type globalKeys struct {
	Help      key.Binding
	Quit      key.Binding
	ForceQuit key.Binding
}

var appKeys = globalKeys{
	Help:      key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "show this help")),
	Quit:      key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
	ForceQuit: key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "force quit")),
}

// AppModel is the root model hosting the calendar view
type AppModel struct {
	cfg          *config.Config
	calendarView calendarview.Model
	showHelp     bool
	width        int
	height       int
	ready        bool
}

// NewAppModel creates the root application model
func NewAppModel(cfg *config.Config, clock calendar.Clock) AppModel {
	return AppModel{
		cfg:          cfg,
		calendarView: calendarview.New(clock, cfg.Batch(), cfg.DefaultView),
	}
}

func (m AppModel) Init() tea.Cmd {
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.calendarView.SetSize(msg.Width, msg.Height-3) // Reserve space for status bar
		return m, nil

	case calendarview.DateSelectedMsg:
		logs.Logger.Printf("Date selected: %s", msg.Date)
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, appKeys.ForceQuit) {
			return m, tea.Quit
		}

		// Dismiss help overlay on any key
		if m.showHelp {
			m.showHelp = false
			return m, nil
		}

		// The jump prompt takes every other key
		if !m.calendarView.IsJumping() {
			switch {
			case key.Matches(msg, appKeys.Quit):
				return m, tea.Quit
			case key.Matches(msg, appKeys.Help):
				m.showHelp = true
				return m, nil
			}
		}
	}

	var cmd tea.Cmd
	m.calendarView, cmd = m.calendarView.Update(msg)
	return m, cmd
}

func (m AppModel) View() string {
	if !m.ready {
		return "Loading..."
	}

	if m.showHelp {
		return m.renderHelpOverlay()
	}

	content := shared.CenterContent(m.calendarView.View(), m.width, m.height-3)

	batch := m.cfg.Batch()
	statusText := "batch " + batch.Start.String() + " → " + batch.End.String() + " | ?:help | q:quit"
	statusBar := theme.StatusBar.Width(m.width).Render(theme.HelpHint.Render(statusText))

	return lipgloss.JoinVertical(lipgloss.Left, content, statusBar)
}

func (m AppModel) renderHelpOverlay() string {
	keys := m.calendarView.Keys()
	sections := []shared.HelpSection{
		{Title: "Global", Binds: []key.Binding{appKeys.Help, appKeys.Quit, appKeys.ForceQuit}},
		{Title: "Navigation", Binds: []key.Binding{keys.Prev, keys.Next, keys.Toggle, keys.Today, keys.Jump}},
		{Title: "Days", Binds: []key.Binding{keys.Left, keys.Right, keys.Up, keys.Down, keys.Select, keys.Clear}},
	}
	return shared.RenderHelpPopup("batchcal - Keyboard Shortcuts", sections, m.width, m.height)
}
