package trace_test

import (
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tuikit/flipswitch/internal/tui/components/trace"
)

func init() {
	lipgloss.SetColorProfile(termenv.Ascii)
}

// mockFader implements uictl.Fader for testing.
type mockFader struct {
	position float64
}

func (f *mockFader) Position() float64 {
	return f.position
}

func tick() trace.TickMsg {
	return trace.TickMsg{Time: time.Now()}
}

func TestTrace_EmptyView(t *testing.T) {
	t.Parallel()

	m := trace.New(&mockFader{}, 5, 1)

	assert.Contains(t, m.View(), "▁▁▁▁▁")
}

func TestTrace_NilFader(t *testing.T) {
	t.Parallel()

	m := trace.New(nil, 5, 1)
	m, cmd := m.Update(tick())

	assert.NotNil(t, cmd, "ticking continues without a fader")
	assert.Contains(t, m.View(), "▁▁▁▁▁")
}

func TestTrace_FullProgressFillsColumn(t *testing.T) {
	t.Parallel()

	f := &mockFader{position: 1}
	m := trace.New(f, 3, 1)

	for range 3 {
		m, _ = m.Update(tick())
	}

	assert.Contains(t, m.View(), "███")
}

func TestTrace_ZeroProgressIsEmpty(t *testing.T) {
	t.Parallel()

	f := &mockFader{position: 0}
	m := trace.New(f, 3, 1)

	for range 3 {
		m, _ = m.Update(tick())
	}

	assert.Contains(t, m.View(), "   ")
}

func TestTrace_RisingProgressRises(t *testing.T) {
	t.Parallel()

	f := &mockFader{}
	m := trace.New(f, 4, 1)

	for _, p := range []float64{0.1, 0.4, 0.7, 1.0} {
		f.position = p
		m, _ = m.Update(tick())
	}

	view := m.View()
	runes := []rune(view)
	require.GreaterOrEqual(t, len(runes), 4)

	blocks := " ▁▂▃▄▅▆▇█"
	prev := -1
	for _, r := range runes {
		idx := strings.IndexRune(blocks, r)
		if idx < 0 {
			continue
		}
		assert.GreaterOrEqual(t, idx, prev, "columns must rise with progress")
		prev = idx
	}
}

func TestTrace_HistoryIsBounded(t *testing.T) {
	t.Parallel()

	f := &mockFader{position: 0.5}
	m := trace.New(f, 3, 1)

	for range 10 {
		m, _ = m.Update(tick())
	}

	view := m.View()
	assert.LessOrEqual(t, len([]rune(view)), 3, "history never exceeds the width")
}
