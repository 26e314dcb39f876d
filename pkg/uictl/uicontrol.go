// Package uictl defines small generic interfaces for UI controls, so
// renderers can consume a control's value without knowing its concrete
// implementation.
package uictl

import "golang.org/x/exp/constraints"

type Number interface {
	constraints.Integer | constraints.Float
}

// Knob is a simple on/off toggle control.
type Knob interface {
	Read() bool
	On()
	Off()
	Toggle()
}

// Fader is a control whose position glides through a normalized range:
// 0 is fully off, 1 is fully on, values between are mid-transition.
type Fader interface {
	Position() float64
}

// Dial is a control that can read some value.
type Dial[N Number] interface {
	Read() N
}

// Levels is a control that can read multiple recent values, oldest first.
type Levels[N Number] interface {
	Read() []N
}
