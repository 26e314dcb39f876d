// Package flipswitch provides the animated on/off switch TUI component.
// It owns a toggle.Machine and renders one row: a color-blended track,
// cross-faded labels, and a thumb that slides and spins as the switch
// flips. Gesture outcomes (tap, double tap, swipe) arrive as messages from
// the owning model; each one requests exactly one toggle.
package flipswitch

import (
	"fmt"
	"math"
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/tuikit/flipswitch/internal/toggle"
	"github.com/tuikit/flipswitch/internal/tui/gesture"
)

// FPS is the frame cadence while a transition run is active. The component
// stays completely idle between transitions.
const FPS = 30

const frameInterval = time.Second / FPS

// Terminals cannot rotate a glyph, so the mapper's 0..2π rotation angle
// selects a frame from this quarter-turn set instead. A full transition
// walks the set exactly once: one full turn.
var rotationFrames = []rune{'◴', '◷', '◶', '◵'}

var white = colorful.Color{R: 1, G: 1, B: 1}

// lastID scopes frame messages per instance, so ticks from one switch
// never advance another.
var lastID int64

func nextID() int {
	return int(atomic.AddInt64(&lastID, 1))
}

// FrameMsg advances one switch's animation by one frame.
type FrameMsg struct {
	ID   int
	Time time.Time
}

// Hook is an optional gesture callback. Absent hooks are silently skipped.
type Hook func()

// Model is the switch component. Use it like any bubbletea child model:
// route Update messages through it and splice View into the parent view.
type Model struct {
	id      int
	machine *toggle.Machine
	theme   toggle.Theme

	progress float64
	running  bool

	duration time.Duration
	curve    toggle.Curve

	onTap       Hook
	onDoubleTap Hook
	onSwipe     Hook
}

// Option configures a switch at construction.
type Option func(*Model)

// WithTheme replaces the whole visual theme.
func WithTheme(t toggle.Theme) Option {
	return func(m *Model) { m.theme = t }
}

// WithText sets the off and on label strings.
func WithText(off, on string) Option {
	return func(m *Model) {
		m.theme.TextOff = off
		m.theme.TextOn = on
	}
}

// WithColors sets the track interpolation endpoints.
func WithColors(off, on colorful.Color) Option {
	return func(m *Model) {
		m.theme.ColorOff = off
		m.theme.ColorOn = on
	}
}

// WithIcons sets the thumb glyphs shown when settled.
func WithIcons(off, on rune) Option {
	return func(m *Model) {
		m.theme.IconOff = off
		m.theme.IconOn = on
	}
}

// WithTextSize sets the label size, which also fixes the track width.
func WithTextSize(size float64) Option {
	return func(m *Model) { m.theme.TextSize = size }
}

// WithOnTap runs after a tap-triggered toggle.
func WithOnTap(h Hook) Option {
	return func(m *Model) { m.onTap = h }
}

// WithOnDoubleTap runs after a double-tap-triggered toggle.
func WithOnDoubleTap(h Hook) Option {
	return func(m *Model) { m.onDoubleTap = h }
}

// WithOnSwipe runs after a swipe-triggered toggle.
func WithOnSwipe(h Hook) Option {
	return func(m *Model) { m.onSwipe = h }
}

// WithDuration sets the length of one full off-to-on transition.
func WithDuration(d time.Duration) Option {
	return func(m *Model) { m.duration = d }
}

// WithCurve overrides the transition's shaping curve.
func WithCurve(c toggle.Curve) Option {
	return func(m *Model) { m.curve = c }
}

// New creates a switch settled at the initial value. onChanged is invoked
// with the new target state the moment a toggle is requested, before the
// animation completes.
func New(initial bool, onChanged func(bool), opts ...Option) Model {
	m := Model{
		id:       nextID(),
		theme:    toggle.DefaultTheme(),
		duration: toggle.DefaultDuration,
		curve:    toggle.EaseInOut,
	}

	for _, opt := range opts {
		opt(&m)
	}

	m.machine = toggle.NewMachine(initial, onChanged,
		toggle.WithDuration(m.duration), toggle.WithCurve(m.curve))

	if initial {
		m.progress = 1
	}

	return m
}

// Init implements tea.Model. The switch is settled at construction, so no
// frame ticks are scheduled until the first toggle request.
func (m Model) Init() tea.Cmd {
	return nil
}

// ID is the instance id scoping this switch's frame messages.
func (m Model) ID() int {
	return m.id
}

// ZoneID is the bubblezone id the rendered switch is marked with. The
// owning model resolves mouse events against it.
func (m Model) ZoneID() string {
	return fmt.Sprintf("flipswitch-%d", m.id)
}

// Machine exposes the underlying state machine, e.g. to subscribe to its
// progress stream or drive it as a uictl.Knob.
func (m Model) Machine() *toggle.Machine {
	return m.machine
}

// Progress is the last progress value the component rendered.
func (m Model) Progress() float64 {
	return m.progress
}

// Value is the logical state: the endpoint the switch is at or heading to.
func (m Model) Value() bool {
	return m.machine.Read()
}

// Toggle requests a flip and starts the frame loop if it is idle.
func (m Model) Toggle() (Model, tea.Cmd) {
	m.machine.Toggle()

	return m.animate()
}

// Close disposes the switch: the in-flight run is cancelled and no further
// progress updates are emitted or rendered.
func (m Model) Close() {
	m.machine.Close()
}

// Update handles frame ticks and gesture outcomes addressed to this switch.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case FrameMsg:
		if msg.ID != m.id {
			return m, nil
		}

		m.progress = m.machine.ProgressAt(msg.Time)

		if m.machine.Settled() || m.machine.Closed() {
			m.running = false

			return m, nil
		}

		return m, m.frame()

	case gesture.TapMsg:
		if msg.ID != m.ZoneID() {
			return m, nil
		}

		return m.toggleWith(m.onTap)

	case gesture.DoubleTapMsg:
		if msg.ID != m.ZoneID() {
			return m, nil
		}

		return m.toggleWith(m.onDoubleTap)

	case gesture.SwipeMsg:
		if msg.ID != m.ZoneID() {
			return m, nil
		}

		return m.toggleWith(m.onSwipe)
	}

	return m, nil
}

// toggleWith requests a toggle, then runs the gesture's optional hook.
// The machine's own onChanged fires first, inside Toggle.
func (m Model) toggleWith(hook Hook) (Model, tea.Cmd) {
	m.machine.Toggle()

	if hook != nil {
		hook()
	}

	return m.animate()
}

func (m Model) animate() (Model, tea.Cmd) {
	if m.running {
		// A frame tick is already in flight; the run was redirected in
		// place and the existing cadence carries it.
		return m, nil
	}

	m.running = true

	return m, m.frame()
}

func (m Model) frame() tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg {
		return FrameMsg{ID: m.id, Time: t}
	})
}

// View renders the switch as a single marked row.
func (m Model) View() string {
	params := toggle.Params(m.progress, m.theme)
	width := trackWidth(m.theme)

	row := make([]rune, width)
	for i := range row {
		row[i] = ' '
	}

	// Labels drift sideways as they cross-fade.
	offCol := 1 + int(math.Round(params.OffLabelOffset))
	placeLabel(row, m.theme.TextOff, offCol)

	onCol := width - len([]rune(m.theme.TextOn)) - 1 - int(math.Round(params.OnLabelOffset))
	placeLabel(row, m.theme.TextOn, onCol)

	thumbCol := thumbColumn(params.ThumbOffset, m.theme.Travel(), width)

	bg := lipgloss.Color(params.Blended.Clamped().Hex())
	offLabelStyle := labelStyle(bg, params.Blended, params.OffLabelOpacity)
	onLabelStyle := labelStyle(bg, params.Blended, params.OnLabelOpacity)

	out := ""
	onStart := onCol

	for col, ch := range row {
		switch {
		case col == thumbCol:
			out += thumbCell(m, params)
		case col >= onStart && ch != ' ':
			out += onLabelStyle.Render(string(ch))
		case ch != ' ':
			out += offLabelStyle.Render(string(ch))
		default:
			out += lipgloss.NewStyle().Background(bg).Render(" ")
		}
	}

	return zone.Mark(m.ZoneID(), out)
}

// thumbCell renders the thumb glyph: a rotation frame while in motion, the
// cross-faded state icon when settled (the dominant-opacity icon wins; the
// terminal cannot truly overlay two translucent glyphs).
func thumbCell(m Model, params toggle.VisualParams) string {
	glyph := m.theme.IconOff
	if params.OnIconOpacity >= params.OffIconOpacity {
		glyph = m.theme.IconOn
	}

	if m.progress > 0 && m.progress < 1 {
		idx := int(params.ThumbRotation/toggle.FullTurn*float64(len(rotationFrames))) % len(rotationFrames)
		glyph = rotationFrames[idx]
	}

	st := lipgloss.NewStyle().
		Background(lipgloss.Color(white.Hex())).
		Foreground(lipgloss.Color(params.ThumbContrast.Clamped().Hex()))

	return st.Render(string(glyph))
}

// labelStyle fades a label toward the track color: terminal "opacity" is a
// blend of the text color into the background.
func labelStyle(bg lipgloss.Color, track colorful.Color, opacity float64) lipgloss.Style {
	fg := toggle.BlendColor(track, white, opacity)

	return lipgloss.NewStyle().
		Background(bg).
		Foreground(lipgloss.Color(fg.Clamped().Hex()))
}

func placeLabel(row []rune, text string, col int) {
	for i, ch := range []rune(text) {
		at := col + i
		if at >= 0 && at < len(row) {
			row[at] = ch
		}
	}
}

// trackWidth fixes the rendered row width from the theme's text size.
func trackWidth(t toggle.Theme) int {
	w := int(t.TextSize) + 2
	if w < 8 {
		w = 8
	}

	return w
}

// thumbColumn maps the mapper's continuous offset onto a cell column.
func thumbColumn(offset, travel float64, width int) int {
	if travel <= 0 {
		return 0
	}

	col := int(math.Round(offset / travel * float64(width-1)))
	if col < 0 {
		col = 0
	}
	if col > width-1 {
		col = width - 1
	}

	return col
}
