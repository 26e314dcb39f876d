// Package gesture turns low-level terminal mouse events into the discrete
// outcomes a control consumes: tap, double tap, and swipe. Recognition here
// is deliberately minimal; controls only ever see an all-or-nothing outcome
// aimed at a zone, never partial drag progress.
package gesture

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// DefaultDoubleTapWindow is how close two taps must land to count as a
// double tap.
const DefaultDoubleTapWindow = 300 * time.Millisecond

// DefaultSwipeThreshold is the horizontal displacement, in cells, between
// press and release that upgrades a tap to a swipe.
const DefaultSwipeThreshold = 2

// TapMsg is a single tap released inside the named zone.
type TapMsg struct{ ID string }

// DoubleTapMsg is a second tap inside the same zone within the double-tap
// window.
type DoubleTapMsg struct{ ID string }

// SwipeMsg is a press dragged horizontally across the zone and released.
type SwipeMsg struct{ ID string }

// Detector accumulates press/release pairs per zone and emits outcomes.
// It is owned and driven by the top-level model, which resolves zone hits
// (via bubblezone) before handing events over.
type Detector struct {
	doubleTapWindow time.Duration
	swipeThreshold  int

	pressID string
	pressX  int

	lastTapID string
	lastTapAt time.Time
}

// DetectorOption configures a Detector.
type DetectorOption func(*Detector)

// WithDoubleTapWindow overrides the double-tap window.
func WithDoubleTapWindow(d time.Duration) DetectorOption {
	return func(det *Detector) { det.doubleTapWindow = d }
}

// WithSwipeThreshold overrides the swipe displacement threshold.
func WithSwipeThreshold(cells int) DetectorOption {
	return func(det *Detector) { det.swipeThreshold = cells }
}

// NewDetector creates a Detector with the default windows.
func NewDetector(opts ...DetectorOption) *Detector {
	d := &Detector{
		doubleTapWindow: DefaultDoubleTapWindow,
		swipeThreshold:  DefaultSwipeThreshold,
	}

	for _, opt := range opts {
		opt(d)
	}

	return d
}

// Mouse consumes one mouse event already resolved to a zone id (empty when
// the event landed outside every zone) and returns the gesture outcome it
// completes, or nil.
func (d *Detector) Mouse(now time.Time, id string, msg tea.MouseMsg) tea.Msg {
	if msg.Button != tea.MouseButtonLeft {
		return nil
	}

	switch msg.Action {
	case tea.MouseActionPress:
		d.pressID = id
		d.pressX = msg.X

		return nil

	case tea.MouseActionRelease:
		pressID, pressX := d.pressID, d.pressX
		d.pressID = ""

		if pressID == "" || pressID != id {
			return nil
		}

		dx := msg.X - pressX
		if dx < 0 {
			dx = -dx
		}

		if dx >= d.swipeThreshold {
			d.lastTapID = ""

			return SwipeMsg{ID: id}
		}

		if d.lastTapID == id && now.Sub(d.lastTapAt) <= d.doubleTapWindow {
			d.lastTapID = ""

			return DoubleTapMsg{ID: id}
		}

		d.lastTapID = id
		d.lastTapAt = now

		return TapMsg{ID: id}
	}

	return nil
}
