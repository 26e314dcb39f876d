package stream

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"
)

// subscriber holds a channel and its send strategy.
type subscriber[T any] struct {
	ch       chan<- T
	timeout  *time.Duration // nil means non-blocking
	inactive atomic.Bool
	dropped  atomic.Int32
}

func (s *subscriber[T]) send(v T) {
	if s.inactive.Load() {
		s.dropped.Add(1)
		return
	}

	var err error
	if s.timeout != nil {
		err = SendWithTimeout(s.ch, v, *s.timeout)
	} else {
		err = SendNonBlock(s.ch, v)
	}

	if err != nil {
		// A closed channel marks the subscriber inactive; anything else
		// just counts as a dropped value.
		s.dropped.Add(1)
		if errors.Is(err, ErrClosed) {
			s.inactive.Store(true)
		}
	}
}

// Broadcaster fans values from a single input channel out to multiple
// subscriber channels. It owns the input channel and shuts down when its
// context is cancelled, draining remaining values to subscribers first.
//
// Slow subscribers never stall the producer: values are dropped per
// subscriber according to its send strategy (non-blocking by default,
// or bounded by a timeout).
type Broadcaster[T any] struct {
	subscribers []*subscriber[T]
	input       chan T
	started     atomic.Bool
	wg          sync.WaitGroup
}

// NewBroadcaster creates an empty Broadcaster for values of type T.
func NewBroadcaster[T any]() *Broadcaster[T] {
	return &Broadcaster[T]{}
}

// Subscribe adds a channel that receives broadcast values in non-blocking
// mode; values are dropped for this subscriber while its channel is full.
// Must be called before Run. Not safe for concurrent use with Run.
func (b *Broadcaster[T]) Subscribe(ch chan<- T) error {
	if ch == nil {
		return fmt.Errorf("subscriber channel cannot be nil")
	}

	b.subscribers = append(b.subscribers, &subscriber[T]{ch: ch})

	return nil
}

// SubscribeWithTimeout adds a channel that receives broadcast values with a
// bounded send; values are dropped when the send times out.
// Must be called before Run. Not safe for concurrent use with Run.
func (b *Broadcaster[T]) SubscribeWithTimeout(ch chan<- T, timeout time.Duration) error {
	if ch == nil {
		return fmt.Errorf("subscriber channel cannot be nil")
	}
	if timeout <= 0 {
		return fmt.Errorf("timeout must be positive")
	}

	b.subscribers = append(b.subscribers, &subscriber[T]{ch: ch, timeout: &timeout})

	return nil
}

// Run starts the broadcaster and returns the input channel for publishing.
//
// The returned channel is owned by the Broadcaster and is closed when ctx
// is cancelled; remaining values are drained to subscribers afterwards.
// Returns an error if already started or if no subscribers exist.
func (b *Broadcaster[T]) Run(ctx context.Context) (chan<- T, error) {
	if b.started.Load() {
		return nil, fmt.Errorf("broadcaster already started")
	}

	if len(b.subscribers) == 0 {
		return nil, fmt.Errorf("no subscribers available")
	}

	b.input = make(chan T, len(b.subscribers)*2)

	b.wg.Go(func() {
		for v := range b.input {
			for _, sub := range b.subscribers {
				sub.send(v)
			}
		}
	})

	b.started.Store(true)

	// Shutdown handler: close input and wait for the drain to complete.
	go func() {
		<-ctx.Done()
		close(b.input)
		b.wg.Wait()
	}()

	return b.input, nil
}

// Wait blocks until the broadcaster has drained after shutdown. Safe to
// call from multiple goroutines.
func (b *Broadcaster[T]) Wait() {
	b.wg.Wait()
}

// SubscriberStats reports per-subscriber delivery health.
type SubscriberStats struct {
	Dropped  int
	Inactive bool
}

// Stats returns delivery stats in subscription order.
func (b *Broadcaster[T]) Stats() []SubscriberStats {
	stats := make([]SubscriberStats, 0, len(b.subscribers))
	for _, sub := range b.subscribers {
		stats = append(stats, SubscriberStats{
			Dropped:  int(sub.dropped.Load()),
			Inactive: sub.inactive.Load(),
		})
	}

	return stats
}
