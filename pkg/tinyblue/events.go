package tinyblue

import (
	"time"

	"github.com/BrandonKowalski/tinyblue/pkg/tinyblue/constants"
	"go.uber.org/atomic"
)

// Event is a navigation request produced by an input source.
type Event int32

const (
	EventNone Event = iota
	EventScrollDown
	EventScrollUp
	EventSelect
	EventBack
)

func (e Event) String() string {
	switch e {
	case EventNone:
		return "none"
	case EventScrollDown:
		return "scroll_down"
	case EventScrollUp:
		return "scroll_up"
	case EventSelect:
		return "select"
	case EventBack:
		return "back"
	default:
		return "unknown"
	}
}

// EventQueue is a single-slot mailbox between input sources and the main loop.
//
// Post may be called from any goroutine or interrupt handler; it never
// blocks and never touches navigation state. Triggers closer together than
// the debounce interval are dropped, and so are triggers that arrive while
// an event is still pending.
type EventQueue struct {
	pending  *atomic.Int32
	last     *atomic.Int64 // UnixNano of the previous trigger, 0 if none
	debounce time.Duration
	now      func() time.Time
}

// NewEventQueue creates a queue with the given debounce interval.
// A zero interval uses constants.DefaultDebounce; a negative one disables debouncing.
func NewEventQueue(debounce time.Duration) *EventQueue {
	if debounce == 0 {
		debounce = constants.DefaultDebounce
	}
	if debounce < 0 {
		debounce = 0
	}
	return &EventQueue{
		pending:  atomic.NewInt32(int32(EventNone)),
		last:     atomic.NewInt64(0),
		debounce: debounce,
		now:      time.Now,
	}
}

// Post offers an event. Returns true if it was queued.
func (q *EventQueue) Post(e Event) bool {
	if e == EventNone {
		return false
	}

	now := q.now().UnixNano()
	prev := q.last.Swap(now)
	if q.debounce > 0 && prev != 0 && time.Duration(now-prev) <= q.debounce {
		return false
	}

	return q.pending.CompareAndSwap(int32(EventNone), int32(e))
}

// Take removes and returns the pending event, or EventNone.
func (q *EventQueue) Take() Event {
	return Event(q.pending.Swap(int32(EventNone)))
}

// Pending reports whether an event is waiting.
func (q *EventQueue) Pending() bool {
	return Event(q.pending.Load()) != EventNone
}

// Debounce returns the minimum interval between accepted triggers.
func (q *EventQueue) Debounce() time.Duration {
	return q.debounce
}
