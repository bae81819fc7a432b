package tui

import (
	"io"
	"log/slog"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmylchreest/subwin/internal/theme"
	"github.com/jmylchreest/subwin/internal/widget"
)

type testData struct{ Keys int }

func (d testData) Same(o testData) bool { return d == o }
func (d testData) Clone() testData      { return d }

// keySink counts the key events reaching the widget tree.
type keySink struct {
	mouse []widget.Event
}

func (s *keySink) ID() widget.NodeID { return "" }

func (s *keySink) Event(_ *widget.EventCtx, ev widget.Event, data *testData) {
	switch ev.(type) {
	case widget.KeyEvent:
		data.Keys++
	case widget.MouseDownEvent, widget.MouseUpEvent, widget.MouseMoveEvent:
		s.mouse = append(s.mouse, ev)
	}
}

func (s *keySink) Lifecycle(*widget.LifecycleCtx, widget.LifecycleEvent, testData) {}
func (s *keySink) Update(*widget.UpdateCtx, testData, testData)                    {}

func (s *keySink) Layout(_ *widget.LayoutCtx, cs widget.Constraints, _ testData) widget.Size {
	return cs.Max
}

func (s *keySink) Paint(ctx *widget.PaintCtx, _ testData) {
	ctx.DrawText(widget.Point{}, "surface", nil)
}

func newTestModel() (Model[testData], *keySink) {
	sink := &keySink{}
	app := widget.NewApp[testData](sink, testData{}, slog.New(slog.NewTextHandler(io.Discard, nil)))
	app.Start()
	return NewModel(app), sink
}

func resize(m Model[testData], w, h int) Model[testData] {
	next, _ := m.Update(tea.WindowSizeMsg{Width: w, Height: h})
	return next.(Model[testData])
}

func TestModel_NotReadyBeforeFirstResize(t *testing.T) {
	m, _ := newTestModel()
	assert.Equal(t, "Initializing...", m.View())
}

func TestModel_ResizeReservesHelpLine(t *testing.T) {
	m, _ := newTestModel()
	m = resize(m, 20, 6)

	view := m.View()
	lines := strings.Split(view, "\n")
	// 5 surface rows plus the help line.
	assert.Len(t, lines, 6)
	assert.Contains(t, lines[0], "surface")
}

func TestModel_QuitKey(t *testing.T) {
	m, _ := newTestModel()
	m = resize(m, 20, 6)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestModel_HelpToggle(t *testing.T) {
	m, _ := newTestModel()
	m = resize(m, 20, 6)

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'?'}})
	assert.Nil(t, cmd)
	assert.True(t, next.(Model[testData]).showHelp)

	next, _ = next.(Model[testData]).Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'?'}})
	assert.False(t, next.(Model[testData]).showHelp)
}

func TestModel_UnboundKeysReachTree(t *testing.T) {
	m, _ := newTestModel()
	m = resize(m, 20, 6)

	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}})
	assert.Equal(t, 1, m.app.Data().Keys)

	// Bound keys are not forwarded.
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'?'}})
	assert.Equal(t, 1, m.app.Data().Keys)
}

func TestModel_ThemeReloadInstallsOnUpdate(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	loader := theme.NewLoader(slog.New(slog.NewTextHandler(io.Discard, nil)))
	before := loader.Theme().Name

	m, _ := newTestModel()
	m = m.WithLoader(loader)
	m = resize(m, 20, 6)

	rebuilt := theme.Theme{Name: "rebuilt"}
	next, cmd := m.Update(ThemeReloadedMsg{Theme: rebuilt})
	assert.Nil(t, cmd)
	assert.NotEqual(t, before, loader.Theme().Name)
	assert.Equal(t, "rebuilt", loader.Theme().Name, "the update loop publishes the rebuilt theme")
	assert.NotNil(t, next)
}

func TestModel_ThemeReloadWithoutLoaderIsNoop(t *testing.T) {
	m, _ := newTestModel()
	m = resize(m, 20, 6)

	_, cmd := m.Update(ThemeReloadedMsg{Theme: theme.Theme{Name: "rebuilt"}})
	assert.Nil(t, cmd)
}

func TestModel_MouseForwarding(t *testing.T) {
	m, sink := newTestModel()
	m = resize(m, 20, 6)

	m.Update(tea.MouseMsg{X: 3, Y: 2, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	m.Update(tea.MouseMsg{X: 4, Y: 2, Action: tea.MouseActionMotion})
	m.Update(tea.MouseMsg{X: 4, Y: 2, Action: tea.MouseActionRelease})

	require.Len(t, sink.mouse, 3)
	down, ok := sink.mouse[0].(widget.MouseDownEvent)
	require.True(t, ok)
	assert.Equal(t, widget.Point{X: 3, Y: 2}, down.Pos)
	assert.IsType(t, widget.MouseMoveEvent{}, sink.mouse[1])
	assert.IsType(t, widget.MouseUpEvent{}, sink.mouse[2])
}

func TestTranslateMouse(t *testing.T) {
	tests := []struct {
		name string
		msg  tea.MouseMsg
		want widget.Event
		ok   bool
	}{
		{
			name: "left press",
			msg:  tea.MouseMsg{X: 1, Y: 2, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft},
			want: widget.MouseDownEvent{Pos: widget.Point{X: 1, Y: 2}, WindowPos: widget.Point{X: 1, Y: 2}},
			ok:   true,
		},
		{
			name: "right press ignored",
			msg:  tea.MouseMsg{X: 1, Y: 2, Action: tea.MouseActionPress, Button: tea.MouseButtonRight},
			ok:   false,
		},
		{
			name: "release",
			msg:  tea.MouseMsg{X: 5, Y: 0, Action: tea.MouseActionRelease},
			want: widget.MouseUpEvent{Pos: widget.Point{X: 5, Y: 0}, WindowPos: widget.Point{X: 5, Y: 0}},
			ok:   true,
		},
		{
			name: "motion",
			msg:  tea.MouseMsg{X: 7, Y: 3, Action: tea.MouseActionMotion},
			want: widget.MouseMoveEvent{Pos: widget.Point{X: 7, Y: 3}, WindowPos: widget.Point{X: 7, Y: 3}},
			ok:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ev, ok := translateMouse(tt.msg)
			require.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, ev)
			}
		})
	}
}
