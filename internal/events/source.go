package events

import (
	"context"
	"time"
)

// DefaultTickRate is how long the source waits for a key before emitting a
// Tick.
const DefaultTickRate = 200 * time.Millisecond

// Source is a single-producer, single-consumer event stream. Keys handed to
// Push come out of Next in order; a Tick is produced whenever a full tick
// period passes without a key. Ticks that cannot be queued are dropped.
type Source struct {
	keys chan Key
	out  chan Event
	done <-chan struct{}
	rate time.Duration
}

// NewSource starts the producer goroutine. It runs until ctx is cancelled.
func NewSource(ctx context.Context, rate time.Duration) *Source {
	if rate <= 0 {
		rate = DefaultTickRate
	}
	s := &Source{
		keys: make(chan Key, 64),
		out:  make(chan Event, 16),
		done: ctx.Done(),
		rate: rate,
	}
	go s.run(ctx)
	return s
}

func (s *Source) run(ctx context.Context) {
	defer close(s.out)

	timer := time.NewTimer(s.rate)
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case k := <-s.keys:
			select {
			case s.out <- Input{Key: k}:
			case <-ctx.Done():
				return
			}
			timer.Reset(s.rate)
		case <-timer.C:
			select {
			case s.out <- Tick{}:
			default:
			}
			timer.Reset(s.rate)
		}
	}
}

// Push hands a keystroke to the producer.
func (s *Source) Push(k Key) {
	select {
	case s.keys <- k:
	case <-s.done:
	}
}

// Next blocks until an event is available. Once the source has stopped it
// returns Tick.
func (s *Source) Next() Event {
	ev, ok := <-s.out
	if !ok {
		return Tick{}
	}
	return ev
}
