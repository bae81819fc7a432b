package swm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmylchreest/subwin/internal/widget"
)

// mutateOnKey returns a stub that applies fn to its data copy when the
// given key arrives.
func mutateOnKey(key string, fn func(*syncState)) *stub {
	s := newStub(8, 2)
	s.onEvent = func(_ *widget.EventCtx, ev widget.Event, data *syncState) {
		if e, ok := ev.(widget.KeyEvent); ok && e.Key == key {
			fn(data)
		}
	}
	return s
}

func TestSync_MainChangeReachesEveryWindow(t *testing.T) {
	f := newFixture(t)
	a := newStub(8, 2)
	b := newStub(8, 2)
	f.open(a, NewConfig().WithPosition(At(1, 1)))
	f.open(b, NewConfig().WithPosition(At(20, 1)))

	f.toolbar.onEvent = func(_ *widget.EventCtx, ev widget.Event, data *syncState) {
		if e, ok := ev.(widget.KeyEvent); ok && e.Key == "m" {
			data.Count = 7
			data.Text = "changed"
		}
	}
	f.app.Dispatch(widget.KeyEvent{Key: "m"})

	want := syncState{Text: "changed", Count: 7}
	assert.Equal(t, want, f.app.Data())

	got, ok := a.lastUpdate()
	require.True(t, ok)
	assert.Equal(t, want, got)

	got, ok = b.lastUpdate()
	require.True(t, ok)
	assert.Equal(t, want, got)
}

func TestSync_WindowMutationRoundTrips(t *testing.T) {
	f := newFixture(t)
	a := mutateOnKey("a", func(s *syncState) { s.Count = 5 })
	b := newStub(8, 2)
	f.open(a, NewConfig().WithPosition(At(1, 1)))
	f.open(b, NewConfig().WithPosition(At(20, 1)))

	f.app.Dispatch(widget.KeyEvent{Key: "a"})

	want := syncState{Count: 5}
	assert.Equal(t, want, f.app.Data(), "window-local mutation reaches the main data")

	got, ok := b.lastUpdate()
	require.True(t, ok)
	assert.Equal(t, want, got, "sibling window converges on the same value")
}

func TestSync_SequentialMutationsConverge(t *testing.T) {
	f := newFixture(t)
	a := mutateOnKey("a", func(s *syncState) { s.Count++ })
	b := mutateOnKey("b", func(s *syncState) { s.Count *= 10 })
	f.open(a, NewConfig().WithPosition(At(1, 1)))
	f.open(b, NewConfig().WithPosition(At(20, 1)))

	f.app.Dispatch(widget.KeyEvent{Key: "a"})
	f.app.Dispatch(widget.KeyEvent{Key: "b"})
	f.app.Dispatch(widget.KeyEvent{Key: "a"})

	want := syncState{Count: 11}
	assert.Equal(t, want, f.app.Data())

	got, ok := a.lastUpdate()
	require.True(t, ok)
	assert.Equal(t, want, got)
	got, ok = b.lastUpdate()
	require.True(t, ok)
	assert.Equal(t, want, got)
}

func TestSync_MismatchedDataTypeDropped(t *testing.T) {
	f := newFixture(t)
	a := newStub(8, 2)
	id := f.open(a, NewConfig().WithPosition(At(1, 1)))

	updatesBefore := len(a.updates)
	SubmitHostUpdate(f.app, id, 42)

	assert.Len(t, a.updates, updatesBefore, "wrong-typed payload never refreshes the subtree")
	assert.Equal(t, syncState{}, f.app.Data())
}

func TestSync_EnvPayloadAcceptedNotApplied(t *testing.T) {
	f := newFixture(t)
	a := newStub(8, 2)
	id := f.open(a, NewConfig().WithPosition(At(1, 1)))

	updatesBefore := len(a.updates)
	f.app.Submit(widget.Command{
		Selector: SelectorProxyToHost,
		Target:   widget.TargetNode(id),
		Payload:  HostUpdate{Env: "anything"},
	})

	assert.Len(t, a.updates, updatesBefore)
}

func TestSync_ProxyTracksConnectedWindows(t *testing.T) {
	f := newFixture(t)
	assert.Empty(t, f.proxy.Connected())

	a := f.open(newStub(8, 2), NewConfig().WithPosition(At(1, 1)))
	b := f.open(newStub(8, 2), NewConfig().WithPosition(At(20, 1)))
	assert.ElementsMatch(t, []widget.NodeID{a, b}, f.proxy.Connected())

	f.close(a)
	assert.ElementsMatch(t, []widget.NodeID{b}, f.proxy.Connected())
}
