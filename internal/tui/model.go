// Package tui provides the BubbleTea front end driving a widget tree.
package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jmylchreest/subwin/internal/theme"
	"github.com/jmylchreest/subwin/internal/widget"
)

// ThemeReloadedMsg carries a theme rebuilt on the watcher goroutine. The
// model installs it here, on the same goroutine that paints, so no frame
// ever reads styles mid-rewrite.
type ThemeReloadedMsg struct {
	Theme theme.Theme
}

// Model hosts a widget App inside a BubbleTea program, translating
// terminal input into widget events. The bottom line of the terminal is
// reserved for the help view.
type Model[T widget.Value[T]] struct {
	app      *widget.App[T]
	loader   *theme.Loader
	keys     KeyMap
	help     help.Model
	showHelp bool
	width    int
	height   int
	ready    bool
}

// NewModel wraps an already started App.
func NewModel[T widget.Value[T]](app *widget.App[T]) Model[T] {
	return Model[T]{
		app:  app,
		keys: DefaultKeyMap(),
		help: help.New(),
	}
}

// WithLoader attaches the theme loader that rebuilt themes are installed
// through.
func (m Model[T]) WithLoader(l *theme.Loader) Model[T] {
	m.loader = l
	return m
}

// Init implements tea.Model.
func (m Model[T]) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model[T]) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.showHelp = !m.showHelp
			return m, nil
		}
		m.app.Dispatch(widget.KeyEvent{Key: msg.String()})
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.app.Resize(msg.Width, msg.Height-1)
		m.ready = true
		return m, nil

	case tea.MouseMsg:
		if ev, ok := translateMouse(msg); ok {
			m.app.Dispatch(ev)
		}
		return m, nil

	case ThemeReloadedMsg:
		if m.loader != nil {
			m.loader.Install(msg.Theme)
		}
		return m, nil
	}

	return m, nil
}

// translateMouse maps a terminal mouse message to a widget event. The
// surface starts at the terminal's top-left, so coordinates pass through
// unchanged; the event's local position is refined as it descends the
// tree.
func translateMouse(msg tea.MouseMsg) (widget.Event, bool) {
	pos := widget.Point{X: msg.X, Y: msg.Y}
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return nil, false
		}
		return widget.MouseDownEvent{Pos: pos, WindowPos: pos}, true
	case tea.MouseActionRelease:
		return widget.MouseUpEvent{Pos: pos, WindowPos: pos}, true
	case tea.MouseActionMotion:
		return widget.MouseMoveEvent{Pos: pos, WindowPos: pos}, true
	}
	return nil, false
}

// View implements tea.Model.
func (m Model[T]) View() string {
	if !m.ready {
		return "Initializing..."
	}

	surface := m.app.Render()
	if m.showHelp {
		return surface + "\n" + m.help.FullHelpView(m.keys.FullHelp())
	}
	return surface + "\n" + m.help.ShortHelpView(m.keys.ShortHelp())
}
