// Package toggle implements the animated two-state switch core: a logical
// on/off value, a timed transition run that converts state flips into a
// continuous progress value, and pure mappings from progress to visual
// parameters. Rendering is left to consumers (see internal/tui).
package toggle

// Curve shapes a run's normalized elapsed time t in [0,1] into progress
// space. Curves must be monotonic and map 0 to 0 and 1 to 1.
type Curve func(t float64) float64

// EaseInOut is the cubic ease-in-ease-out curve used by default: progress
// moves slowly near both endpoints and fastest at the midpoint.
func EaseInOut(t float64) float64 {
	switch {
	case t <= 0:
		return 0
	case t >= 1:
		return 1
	case t < 0.5:
		return 4 * t * t * t
	default:
		u := 2*t - 2
		return 1 + u*u*u/2
	}
}

// Linear maps time to progress unchanged. Useful in tests where the
// shaping would get in the way of exact assertions.
func Linear(t float64) float64 {
	return Clamp01(t)
}

// Clamp01 clamps v to the closed interval [0,1].
func Clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
