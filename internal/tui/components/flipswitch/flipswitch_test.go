package flipswitch_test

import (
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tuikit/flipswitch/internal/toggle"
	"github.com/tuikit/flipswitch/internal/tui/components/flipswitch"
	"github.com/tuikit/flipswitch/internal/tui/gesture"
)

//nolint:gochecknoinits // recommended for CI by bubbletea folks
func init() {
	lipgloss.SetColorProfile(termenv.Ascii)
	zone.NewGlobal()
}

func TestNew_SettledAtInitialValue(t *testing.T) {
	t.Parallel()

	t.Run("off", func(t *testing.T) {
		m := flipswitch.New(false, nil)

		assert.False(t, m.Value())
		assert.Equal(t, 0.0, m.Progress())
		assert.Nil(t, m.Init(), "no animation until the first toggle")
		assert.Contains(t, m.View(), "Off")
	})

	t.Run("on", func(t *testing.T) {
		m := flipswitch.New(true, nil)

		assert.True(t, m.Value())
		assert.Equal(t, 1.0, m.Progress())
	})
}

func TestUpdate_TapTogglesAndNotifiesImmediately(t *testing.T) {
	t.Parallel()

	var changes []bool
	m := flipswitch.New(false, func(v bool) { changes = append(changes, v) })

	m, cmd := m.Update(gesture.TapMsg{ID: m.ZoneID()})

	assert.Equal(t, []bool{true}, changes, "intent is notified before the run completes")
	assert.True(t, m.Value())
	assert.NotNil(t, cmd, "a frame tick must be scheduled")
	assert.Equal(t, 0.0, m.Progress(), "the visual has not caught up yet")
}

func TestUpdate_GestureForOtherZoneIgnored(t *testing.T) {
	t.Parallel()

	var changes []bool
	m := flipswitch.New(false, func(v bool) { changes = append(changes, v) })

	m, cmd := m.Update(gesture.TapMsg{ID: "someone-else"})

	assert.Empty(t, changes)
	assert.False(t, m.Value())
	assert.Nil(t, cmd)
}

func TestUpdate_GestureHooks(t *testing.T) {
	t.Parallel()

	var order []string

	m := flipswitch.New(false,
		func(bool) { order = append(order, "changed") },
		flipswitch.WithOnTap(func() { order = append(order, "tap") }),
		flipswitch.WithOnDoubleTap(func() { order = append(order, "double") }),
		flipswitch.WithOnSwipe(func() { order = append(order, "swipe") }),
	)

	m, _ = m.Update(gesture.TapMsg{ID: m.ZoneID()})
	m, _ = m.Update(gesture.DoubleTapMsg{ID: m.ZoneID()})
	_, _ = m.Update(gesture.SwipeMsg{ID: m.ZoneID()})

	// The machine's own callback always runs before the gesture hook.
	assert.Equal(t, []string{"changed", "tap", "changed", "double", "changed", "swipe"}, order)
}

func TestUpdate_AbsentHooksAreSkipped(t *testing.T) {
	t.Parallel()

	m := flipswitch.New(false, nil)

	assert.NotPanics(t, func() {
		m, _ = m.Update(gesture.TapMsg{ID: m.ZoneID()})
		m, _ = m.Update(gesture.DoubleTapMsg{ID: m.ZoneID()})
		_, _ = m.Update(gesture.SwipeMsg{ID: m.ZoneID()})
	})
}

func TestUpdate_FrameAdvancesProgress(t *testing.T) {
	t.Parallel()

	m := flipswitch.New(false, nil,
		flipswitch.WithDuration(600*time.Millisecond),
		flipswitch.WithCurve(toggle.Linear),
	)

	t0 := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	m.Machine().ToggleAt(t0)

	m, cmd := m.Update(flipswitch.FrameMsg{ID: m.ID(), Time: t0.Add(300 * time.Millisecond)})
	assert.Equal(t, 0.5, m.Progress())
	assert.NotNil(t, cmd, "mid-run frames keep ticking")

	m, cmd = m.Update(flipswitch.FrameMsg{ID: m.ID(), Time: t0.Add(600 * time.Millisecond)})
	assert.Equal(t, 1.0, m.Progress())
	assert.Nil(t, cmd, "a settled switch goes idle")
}

func TestUpdate_FrameForOtherInstanceIgnored(t *testing.T) {
	t.Parallel()

	m := flipswitch.New(false, nil, flipswitch.WithCurve(toggle.Linear))

	t0 := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	m.Machine().ToggleAt(t0)

	m, cmd := m.Update(flipswitch.FrameMsg{ID: m.ID() + 1, Time: t0.Add(300 * time.Millisecond)})
	assert.Equal(t, 0.0, m.Progress())
	assert.Nil(t, cmd)
}

func TestUpdate_RapidTogglesReverseOneRun(t *testing.T) {
	t.Parallel()

	var changes []bool
	m := flipswitch.New(false, func(v bool) { changes = append(changes, v) },
		flipswitch.WithDuration(600*time.Millisecond),
		flipswitch.WithCurve(toggle.Linear),
	)

	t0 := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	m.Machine().ToggleAt(t0)

	mid := t0.Add(300 * time.Millisecond)
	m, _ = m.Update(flipswitch.FrameMsg{ID: m.ID(), Time: mid})
	require.Equal(t, 0.5, m.Progress())

	m.Machine().ToggleAt(mid)
	require.Equal(t, []bool{true, false}, changes)

	// The run reverses from its current progress, not from an endpoint.
	m, _ = m.Update(flipswitch.FrameMsg{ID: m.ID(), Time: mid.Add(300 * time.Millisecond)})
	assert.Equal(t, 0.25, m.Progress())

	m, _ = m.Update(flipswitch.FrameMsg{ID: m.ID(), Time: mid.Add(600 * time.Millisecond)})
	assert.Equal(t, 0.0, m.Progress())
	assert.False(t, m.Value())
}

func TestClose_StopsFrameLoop(t *testing.T) {
	t.Parallel()

	m := flipswitch.New(false, nil,
		flipswitch.WithDuration(600*time.Millisecond),
		flipswitch.WithCurve(toggle.Linear),
	)

	t0 := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	m.Machine().ToggleAt(t0)

	mid := t0.Add(300 * time.Millisecond)
	m, _ = m.Update(flipswitch.FrameMsg{ID: m.ID(), Time: mid})
	require.Equal(t, 0.5, m.Progress())

	m.Close()

	m, cmd := m.Update(flipswitch.FrameMsg{ID: m.ID(), Time: mid.Add(time.Second)})
	assert.Nil(t, cmd, "no frames are scheduled after close")
	assert.Equal(t, 0.5, m.Progress(), "progress freezes at disposal")
}

func TestView_ThumbTracksState(t *testing.T) {
	t.Parallel()

	m := flipswitch.New(false, nil, flipswitch.WithText("No", "Yes"))

	off := m.View()
	assert.Contains(t, off, "⚑", "settled off shows the off icon")
	assert.Contains(t, off, "No")
	assert.Contains(t, off, "Yes")

	on := flipswitch.New(true, nil)
	assert.Contains(t, on.View(), "✓", "settled on shows the on icon")

	t.Run("thumb sits left when off and right when on", func(t *testing.T) {
		// Ascii color profile means the views carry no escape codes.
		offIdx := strings.IndexRune(off, '⚑')
		onIdx := strings.IndexRune(on.View(), '✓')
		assert.Less(t, offIdx, onIdx)
	})
}

func TestView_MidRunShowsRotationFrame(t *testing.T) {
	t.Parallel()

	m := flipswitch.New(false, nil, flipswitch.WithCurve(toggle.Linear))

	t0 := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	m.Machine().ToggleAt(t0)
	m, _ = m.Update(flipswitch.FrameMsg{ID: m.ID(), Time: t0.Add(300 * time.Millisecond)})

	view := m.View()
	assert.True(t, strings.ContainsAny(view, "◴◷◶◵"), "mid-run thumb spins: %q", view)
}
