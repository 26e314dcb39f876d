package toggle

import (
	"context"
	"sync"
	"time"

	"github.com/tuikit/flipswitch/pkg/stream"
)

// DefaultDuration is the length of one full off-to-on run.
const DefaultDuration = 600 * time.Millisecond

// State classifies where the machine is in its transition lifecycle.
type State int

const (
	// StateOff is settled: progress 0, no run active.
	StateOff State = iota
	// StateOn is settled: progress 1, no run active.
	StateOn
	// StateTurningOn has a run converging to 1.
	StateTurningOn
	// StateTurningOff has a run converging to 0.
	StateTurningOff
)

func (s State) String() string {
	switch s {
	case StateOff:
		return "off"
	case StateOn:
		return "on"
	case StateTurningOn:
		return "turning-on"
	default:
		return "turning-off"
	}
}

// Update is one progress sample published to stream subscribers.
type Update struct {
	Progress float64
	Target   bool
}

// Option configures a Machine at construction.
type Option func(*Machine)

// WithDuration sets the length of one full 0-to-1 run.
func WithDuration(d time.Duration) Option {
	return func(m *Machine) { m.duration = d }
}

// WithCurve sets the shaping curve for runs.
func WithCurve(c Curve) Option {
	return func(m *Machine) { m.curve = c }
}

// Machine owns the switch's logical on/off state and the progress value
// that animates between them. A toggle request flips the logical state and
// notifies the onChanged callback immediately; progress then catches up
// over a timed run sampled by the renderer via ProgressAt.
//
// Machine satisfies uictl.Knob and uictl.Fader.
type Machine struct {
	mu        sync.Mutex
	on        bool    // logical state: the endpoint we are at or heading to
	progress  float64 // last sampled progress in [0,1]
	run       *Run
	duration  time.Duration
	curve     Curve
	onChanged func(bool)
	closed    bool

	bcast *stream.Broadcaster[Update]
	out   chan<- Update
}

// NewMachine creates a settled machine at the initial value, with no run
// active. onChanged may be nil; when set it is invoked synchronously with
// the new target state on every toggle request.
func NewMachine(initial bool, onChanged func(bool), opts ...Option) *Machine {
	m := &Machine{
		on:        initial,
		duration:  DefaultDuration,
		curve:     EaseInOut,
		onChanged: onChanged,
		bcast:     stream.NewBroadcaster[Update](),
	}

	if initial {
		m.progress = 1
	}

	for _, opt := range opts {
		opt(m)
	}

	return m
}

// Read returns the logical state: the endpoint the machine is settled at
// or currently heading to.
func (m *Machine) Read() bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.on
}

// Toggle requests a flip to the opposite logical state.
func (m *Machine) Toggle() {
	m.ToggleAt(time.Now())
}

// On requests the on state.
func (m *Machine) On() {
	m.SetAt(time.Now(), true)
}

// Off requests the off state.
func (m *Machine) Off() {
	m.SetAt(time.Now(), false)
}

// ToggleAt is Toggle with an explicit clock reading.
func (m *Machine) ToggleAt(now time.Time) {
	m.mu.Lock()
	target := !m.on
	m.mu.Unlock()

	m.SetAt(now, target)
}

// SetAt requests a specific target state at the given time. The logical
// state flips and onChanged fires immediately; the visual transition runs
// (or is redirected) from the current progress toward the target over the
// configured duration. Requesting a target the active run is already
// converging to leaves the run alone but still re-notifies onChanged.
func (m *Machine) SetAt(now time.Time, target bool) {
	m.mu.Lock()

	if m.closed {
		m.mu.Unlock()
		return
	}

	m.on = target

	end := 0.0
	if target {
		end = 1.0
	}

	switch {
	case m.run != nil && m.run.Target() == end:
		// Already converging there; keep the run.
	case m.run != nil:
		redirected := m.run.Redirect(now, end)
		m.run = &redirected
	case m.progress != end:
		r := StartRun(now, m.progress, end, m.duration, m.curve)
		m.run = &r
	}

	cb := m.onChanged
	m.mu.Unlock()

	if cb != nil {
		cb(target)
	}
}

// ProgressAt samples the machine at the given time, advancing any active
// run and publishing the sample to stream subscribers. Samples within one
// run are monotonic toward its target.
func (m *Machine) ProgressAt(now time.Time) float64 {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.run != nil {
		p, done := m.run.At(now)
		m.progress = p

		if done {
			m.run = nil
		}

		m.publishLocked()
	}

	return m.progress
}

// Position reports the current progress using the wall clock.
func (m *Machine) Position() float64 {
	return m.ProgressAt(time.Now())
}

// State reports the machine's lifecycle state.
func (m *Machine) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.run == nil {
		if m.on {
			return StateOn
		}

		return StateOff
	}

	if m.on {
		return StateTurningOn
	}

	return StateTurningOff
}

// Settled reports whether progress rests at an endpoint with no run active.
func (m *Machine) Settled() bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.run == nil && (m.progress == 0 || m.progress == 1)
}

// Subscribe registers a channel to receive progress updates once Stream
// has been started. Must be called before Stream.
func (m *Machine) Subscribe(ch chan<- Update) error {
	return m.bcast.Subscribe(ch)
}

// Stream starts publishing progress updates to subscribers. The stream
// shuts down and drains when ctx is cancelled.
func (m *Machine) Stream(ctx context.Context) error {
	out, err := m.bcast.Run(ctx)
	if err != nil {
		return err
	}

	m.mu.Lock()
	m.out = out
	m.mu.Unlock()

	return nil
}

// Closed reports whether the machine has been disposed.
func (m *Machine) Closed() bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.closed
}

// Close disposes the machine: any in-flight run is cancelled and no
// further updates are published. Progress freezes at its last sample.
func (m *Machine) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.closed = true
	m.run = nil
	m.out = nil
}

func (m *Machine) publishLocked() {
	if m.out == nil || m.closed {
		return
	}

	// Lossy on purpose: a stalled subscriber must never block a frame.
	_ = stream.SendNonBlock(m.out, Update{Progress: m.progress, Target: m.on})
}
