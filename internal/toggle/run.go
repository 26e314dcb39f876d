package toggle

import "time"

// Run is a single timed transition: a pure function of wall-clock time
// advancing progress from a start value toward an endpoint (0 or 1) over a
// fixed duration, shaped by a curve. A Run holds no timer of its own; the
// caller samples it with At on whatever cadence it redraws.
type Run struct {
	from     float64
	to       float64
	start    time.Time
	duration time.Duration
	curve    Curve
}

// StartRun begins a run at now from the given progress toward the endpoint
// to, taking duration to get there. A nil curve means EaseInOut.
func StartRun(now time.Time, from, to float64, duration time.Duration, curve Curve) Run {
	if curve == nil {
		curve = EaseInOut
	}

	return Run{
		from:     Clamp01(from),
		to:       Clamp01(to),
		start:    now,
		duration: duration,
		curve:    curve,
	}
}

// At returns the run's progress at the given time and whether the run has
// reached its endpoint. Progress is monotonic in time toward the endpoint.
// A nonpositive duration settles immediately.
func (r Run) At(now time.Time) (progress float64, done bool) {
	if r.duration <= 0 {
		return r.to, true
	}

	elapsed := now.Sub(r.start)
	if elapsed >= r.duration {
		return r.to, true
	}

	t := float64(elapsed) / float64(r.duration)
	if t < 0 {
		t = 0
	}

	return r.from + (r.to-r.from)*r.curve(t), false
}

// Target returns the endpoint the run is converging to.
func (r Run) Target() float64 {
	return r.to
}

// Redirect re-targets the run toward a new endpoint, keeping the progress
// at now as the new starting point. The visual never jumps: the redirected
// run begins exactly where the old one left off.
func (r Run) Redirect(now time.Time, to float64) Run {
	p, _ := r.At(now)

	return StartRun(now, p, to, r.duration, r.curve)
}
