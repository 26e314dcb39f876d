// Package tui implements the flipswitch demo application: a column of
// animated switches driven by mouse gestures and keyboard input.
package tui

import (
	"log/slog"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"

	"github.com/tuikit/flipswitch/internal/config"
	"github.com/tuikit/flipswitch/internal/tui/components/flipswitch"
	"github.com/tuikit/flipswitch/internal/tui/components/labeledswitch"
	"github.com/tuikit/flipswitch/internal/tui/components/trace"
	"github.com/tuikit/flipswitch/internal/tui/gesture"
	"github.com/tuikit/flipswitch/internal/tui/style"
)

// Model is the demo application's root model.
type Model struct {
	switches []labeledswitch.Model
	focus    int
	detector *gesture.Detector
	trace    trace.Model
	showTrace   bool
	keys     KeyMap
	quitting bool
}

// New builds the demo from configuration. The first switch uses the
// configured theme; the others show off independent instances.
func New(cfg *config.Config) (Model, error) {
	colorOff, colorOn, err := cfg.Colors()
	if err != nil {
		return Model{}, err
	}

	power := flipswitch.New(false,
		func(v bool) { slog.Info("power changed", "on", v) },
		flipswitch.WithText(cfg.TextOff, cfg.TextOn),
		flipswitch.WithColors(colorOff, colorOn),
		flipswitch.WithTextSize(cfg.TextSize),
		flipswitch.WithDuration(cfg.Duration),
		flipswitch.WithOnTap(func() { slog.Debug("gesture", "kind", "tap") }),
		flipswitch.WithOnDoubleTap(func() { slog.Debug("gesture", "kind", "double-tap") }),
		flipswitch.WithOnSwipe(func() { slog.Debug("gesture", "kind", "swipe") }),
	)

	mute := flipswitch.New(true,
		func(v bool) { slog.Info("mute changed", "on", v) },
		flipswitch.WithText("Loud", "Mute"),
		flipswitch.WithIcons('♪', '♭'),
		flipswitch.WithDuration(cfg.Duration),
	)

	m := Model{
		switches: []labeledswitch.Model{
			labeledswitch.New(power, "Power", "click to flip, double-click or drag across to flip back"),
			labeledswitch.New(mute, "Mute", "same gestures; every switch animates independently"),
		},
		detector: gesture.NewDetector(),
		trace:    trace.New(power.Machine(), 48, 3),
		showTrace:   true,
		keys:     DefaultKeyMap(),
	}

	return m, nil
}

// Init starts the trace sampler; switches are settled and idle until the
// first toggle request.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.trace.Init()}
	for _, ls := range m.switches {
		cmds = append(cmds, ls.Init())
	}

	return tea.Batch(cmds...)
}

// Update routes input, gesture outcomes, and animation frames.
func (m Model) Update(teaMsg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := teaMsg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		if outcome := m.detector.Mouse(time.Now(), m.zoneAt(msg), msg); outcome != nil {
			return m.updateSwitches(outcome)
		}

		return m, nil

	case trace.TickMsg:
		var cmd tea.Cmd
		m.trace, cmd = m.trace.Update(msg)

		return m, cmd
	}

	return m.updateSwitches(teaMsg)
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		for _, ls := range m.switches {
			ls.Switch.Close()
		}

		m.quitting = true

		return m, tea.Quit

	case key.Matches(msg, m.keys.Next):
		m.focus = (m.focus + 1) % len(m.switches)

		return m, nil

	case key.Matches(msg, m.keys.Toggle):
		var cmd tea.Cmd
		m.switches[m.focus].Switch, cmd = m.switches[m.focus].Switch.Toggle()

		return m, cmd

	case key.Matches(msg, m.keys.Trace):
		m.showTrace = !m.showTrace

		return m, nil
	}

	return m, nil
}

// updateSwitches forwards a message to every switch; frame messages are
// instance-scoped and gesture outcomes zone-scoped, so only the addressee
// reacts.
func (m Model) updateSwitches(teaMsg tea.Msg) (tea.Model, tea.Cmd) {
	cmds := make([]tea.Cmd, 0, len(m.switches))

	for i := range m.switches {
		var cmd tea.Cmd
		m.switches[i], cmd = m.switches[i].Update(teaMsg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

// zoneAt resolves which switch zone a mouse event landed in, if any.
func (m Model) zoneAt(msg tea.MouseMsg) string {
	for i := range m.switches {
		id := m.switches[i].Switch.ZoneID()
		if z := zone.Get(id); z != nil && z.InBounds(msg) {
			return id
		}
	}

	return ""
}

// View renders the demo. The whole frame passes through zone.Scan so the
// switch zones stay registered for mouse hit testing.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var sb strings.Builder

	sb.WriteString(style.Title.Render("flipswitch"))
	sb.WriteString("\n\n")

	for i, ls := range m.switches {
		sb.WriteString(ls.ViewFocused(i == m.focus))
		sb.WriteString("\n\n")
	}

	if m.showTrace {
		sb.WriteString(style.Subtitle.Render("progress trace"))
		sb.WriteString("\n")
		sb.WriteString(m.trace.View())
		sb.WriteString("\n\n")
	}

	sb.WriteString(renderHelp(m.keys))

	return zone.Scan(sb.String())
}

func renderHelp(keys KeyMap) string {
	parts := make([]string, 0, 4)
	for _, b := range keys.ShortHelp() {
		parts = append(parts,
			style.Key.Render(b.Help().Key)+" "+style.Help.Render(b.Help().Desc))
	}

	return strings.Join(parts, style.Help.Render(" · "))
}
