// Package stream provides small channel-based publishing primitives: lossy
// sends and a Broadcaster that fans a single producer out to many
// subscribers. The toggle machine uses it to publish progress updates to
// renderers that are not driven by the TUI frame loop.
package stream

import (
	"errors"
	"time"
)

var (
	ErrClosed  = errors.New("channel closed")
	ErrTimeout = errors.New("send timeout")
	ErrFull    = errors.New("channel full")
)

// SendNonBlock attempts to send a value without blocking.
// Returns ErrFull if the channel is full, ErrClosed if it is closed.
func SendNonBlock[T any](ch chan<- T, v T) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = ErrClosed
		}
	}()

	select {
	case ch <- v:
		return nil
	default:
		return ErrFull
	}
}

// SendWithTimeout sends a value, giving up after the timeout expires.
// Returns ErrTimeout on expiry, ErrClosed if the channel is closed.
func SendWithTimeout[T any](ch chan<- T, v T, timeout time.Duration) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = ErrClosed
		}
	}()

	select {
	case ch <- v:
		return nil
	case <-time.After(timeout):
		return ErrTimeout
	}
}
