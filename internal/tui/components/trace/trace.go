// Package trace provides a TUI component plotting a control's recent
// progress as a block-character strip, so the easing shape of a transition
// is visible over time (left=older, right=newer).
package trace

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/tuikit/flipswitch/internal/tui/style"
	"github.com/tuikit/flipswitch/pkg/uictl"
)

// Block characters for progress visualization (8 levels, bottom to top).
// Index 0 = empty (space), 1-8 = increasing fill levels.
const blockChars = " ▁▂▃▄▅▆▇█"

// TickMsg triggers a sample and redraw.
type TickMsg struct{ Time time.Time }

// Model samples a Fader on a fixed cadence and renders the sample history.
type Model struct {
	fader   uictl.Fader
	width   int
	height  int
	samples []float64
}

// New creates a trace over the given fader. Width fixes both the number of
// columns and the sample history length; height is in rows.
func New(fader uictl.Fader, width, height int) Model {
	if height < 1 {
		height = 1
	}
	if width < 1 {
		width = 1
	}

	return Model{
		fader:  fader,
		width:  width,
		height: height,
	}
}

// Init returns the initial tick command.
func (m Model) Init() tea.Cmd {
	return m.tick()
}

// Update samples the fader on tick messages.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if _, ok := msg.(TickMsg); ok {
		if m.fader != nil {
			m.samples = append(m.samples, m.fader.Position())
			if len(m.samples) > m.width {
				m.samples = m.samples[len(m.samples)-m.width:]
			}
		}

		return m, m.tick()
	}

	return m, nil
}

// View renders the sample history as ASCII art.
func (m Model) View() string {
	if len(m.samples) == 0 {
		return m.renderEmpty()
	}

	return m.renderSamples()
}

// tick schedules the next sample at ~20 FPS.
func (m Model) tick() tea.Cmd {
	return tea.Tick(50*time.Millisecond, func(t time.Time) tea.Msg {
		return TickMsg{Time: t}
	})
}

// renderSamples renders the history as vertical bars across rows.
func (m Model) renderSamples() string {
	runes := []rune(blockChars)

	var sb strings.Builder

	for row := 0; row < m.height; row++ {
		if row > 0 {
			sb.WriteString("\n")
		}

		var rowSB strings.Builder

		pad := m.width - len(m.samples)
		for col := 0; col < m.width; col++ {
			if col < pad {
				rowSB.WriteRune(' ')

				continue
			}

			level := progressToLevel(m.samples[col-pad], m.height*8)
			rowSB.WriteRune(runes[blockIndexForRow(level, row, m.height)])
		}

		sb.WriteString(style.Trace.Render(rowSB.String()))
	}

	return sb.String()
}

// blockIndexForRow returns the block character index (0-8) for a column
// level at a row. Row 0 is the top, row (height-1) the bottom.
func blockIndexForRow(level, row, height int) int {
	rowFromBottom := height - 1 - row
	baseLevel := rowFromBottom * 8

	fillAmount := level - baseLevel

	if fillAmount <= 0 {
		return 0
	}

	if fillAmount >= 8 {
		return 8
	}

	return fillAmount
}

// progressToLevel maps a progress value in [0,1] to a display level in
// [0,maxLevel]. The mapping is linear: the trace is meant to show the
// easing shape, so no perceptual correction is applied.
func progressToLevel(p float64, maxLevel int) int {
	if p <= 0 {
		return 0
	}
	if p >= 1 {
		return maxLevel
	}

	return int(p * float64(maxLevel))
}

// renderEmpty renders a baseline for when there are no samples yet.
func (m Model) renderEmpty() string {
	var sb strings.Builder

	for row := 0; row < m.height; row++ {
		if row > 0 {
			sb.WriteString("\n")
		}

		var rowSB strings.Builder

		for i := 0; i < m.width; i++ {
			if row == m.height-1 {
				rowSB.WriteRune('▁')
			} else {
				rowSB.WriteRune(' ')
			}
		}

		sb.WriteString(style.Muted.Render(rowSB.String()))
	}

	return sb.String()
}
