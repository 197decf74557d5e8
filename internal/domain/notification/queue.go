package notification

import (
	"time"

	"scheduling-core/internal/domain/booking"
)

const compactThreshold = 64

// Queue is a FIFO of events presented one at a time. Only the head is visible.
// It is not safe for concurrent use; callers serialize access.
type Queue struct {
	items []Event
	head  int
	seq   uint64
}

func NewQueue() *Queue {
	return &Queue{}
}

// Append assigns the next sequence number and adds the event at the tail.
func (q *Queue) Append(kind Kind, snapshot *booking.Booking, at time.Time) Event {
	q.seq++
	e := Event{Sequence: q.seq, Kind: kind, Booking: snapshot, ReceivedAt: at}
	q.items = append(q.items, e)
	return e
}

// Head returns the currently visible event.
func (q *Queue) Head() (Event, bool) {
	if q.Len() == 0 {
		return Event{}, false
	}
	return q.items[q.head], true
}

// Pop removes and returns the head. Popping an empty queue reports false.
func (q *Queue) Pop() (Event, bool) {
	if q.Len() == 0 {
		return Event{}, false
	}
	e := q.items[q.head]
	q.items[q.head] = Event{}
	q.head++
	if q.head == len(q.items) {
		q.items = q.items[:0]
		q.head = 0
	} else if q.head >= compactThreshold && q.head*2 >= len(q.items) {
		n := copy(q.items, q.items[q.head:])
		clear(q.items[n:])
		q.items = q.items[:n]
		q.head = 0
	}
	return e, true
}

func (q *Queue) Len() int {
	return len(q.items) - q.head
}

// Pending returns a copy of the queued events, head first.
func (q *Queue) Pending() []Event {
	out := make([]Event, q.Len())
	copy(out, q.items[q.head:])
	return out
}
