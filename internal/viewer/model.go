package viewer

import (
	tea "github.com/charmbracelet/bubbletea"

	"sedecim/internal/buffer"
	"sedecim/internal/config"
	"sedecim/internal/events"
)

type eventMsg struct {
	ev events.Event
}

// Model runs the viewer inside a bubbletea program. Keys are fed through the
// event source and dispatched one at a time as they come back out of it.
type Model struct {
	nav    *Navigator
	source *events.Source
	styles *config.Styles
	width  int
	height int
}

func NewModel(win *buffer.Window, source *events.Source, styles *config.Styles) *Model {
	return &Model{
		nav:    NewNavigator(win),
		source: source,
		styles: styles,
	}
}

func (m *Model) Navigator() *Navigator {
	return m.nav
}

func (m *Model) Init() tea.Cmd {
	return m.waitForEvent()
}

func (m *Model) waitForEvent() tea.Cmd {
	return func() tea.Msg {
		return eventMsg{ev: m.source.Next()}
	}
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		m.source.Push(events.FromTea(msg))
		return m, nil

	case eventMsg:
		if m.nav.Dispatch(msg.ev) {
			return m, tea.Quit
		}
		return m, m.waitForEvent()
	}

	return m, nil
}

func (m *Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}
	layout := Render(m.nav.State(), m.nav.Window())
	return Draw(layout, m.styles, m.width, m.height)
}
