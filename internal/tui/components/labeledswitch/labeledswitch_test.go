package labeledswitch_test

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"

	"github.com/tuikit/flipswitch/internal/tui/components/flipswitch"
	"github.com/tuikit/flipswitch/internal/tui/components/labeledswitch"
	"github.com/tuikit/flipswitch/internal/tui/gesture"
)

//nolint:gochecknoinits // recommend for CI by bubbletea folks
func init() {
	lipgloss.SetColorProfile(termenv.Ascii)
	zone.NewGlobal()
}

func TestLabeledSwitch(t *testing.T) {
	sw := flipswitch.New(false, nil, flipswitch.WithText("Quiet", "Loud"))
	m := labeledswitch.New(sw, "Volume", "space to toggle")

	t.Run("initial state", func(t *testing.T) {
		assert.Equal(t, "Volume", m.Title)
		assert.Equal(t, "space to toggle", m.Help)
		assert.False(t, m.Switch.Machine().Read())
	})

	v0 := m.View()
	t.Run("view output", func(t *testing.T) {
		assert.Contains(t, v0, "Volume")
		assert.Contains(t, v0, "space to toggle")
		assert.Contains(t, v0, "Quiet")
		assert.Contains(t, v0, "off")
	})

	t.Run("focus marker", func(t *testing.T) {
		assert.NotContains(t, v0, "»")
		assert.Contains(t, m.ViewFocused(true), "»")
	})

	t.Run("forwards messages", func(t *testing.T) {
		m, _ = m.Update(gesture.TapMsg{ID: m.Switch.ZoneID()})
		assert.True(t, m.Switch.Machine().Read())
		assert.Contains(t, m.View(), "turning-on")
	})
}
