package realtime

import (
	"context"
	"log/slog"
	"sync"

	"scheduling-core/internal/domain/booking"
	"scheduling-core/internal/domain/notification"
	"scheduling-core/internal/pkg/clock"

	"github.com/google/uuid"
)

// Session is the notification queue of one provider plus the local booking
// cache it builds snapshots from. All methods are safe for concurrent use.
type Session struct {
	providerID uuid.UUID
	deleter    HardDeleter
	clock      clock.Clock

	mu    sync.Mutex
	queue *notification.Queue
	known map[uuid.UUID]*booking.Booking

	// cancelled holds ids whose cancelled event is queued or was shown, so a
	// later update or delete of the same booking does not announce it again.
	cancelled map[uuid.UUID]struct{}

	// withheld holds ids this process is deleting itself; their delete event
	// is absorbed silently whichever side of the local Forget it arrives on.
	withheld map[uuid.UUID]struct{}

	// while seeding, changes are parked in backlog and replayed on top of the seed.
	seeding bool
	backlog []parkedChange
}

type parkedChange struct {
	ev       ChangeEvent
	snapshot *booking.Booking
}

func NewSession(providerID uuid.UUID, deleter HardDeleter, clk clock.Clock) *Session {
	return &Session{
		providerID: providerID,
		deleter:    deleter,
		clock:      clk,
		queue:      notification.NewQueue(),
		known:      map[uuid.UUID]*booking.Booking{},
		cancelled:  map[uuid.UUID]struct{}{},
		withheld:   map[uuid.UUID]struct{}{},
	}
}

func (s *Session) ProviderID() uuid.UUID {
	return s.providerID
}

// Apply folds one change into the cache and queues the notification it calls
// for. For inserts, snapshot is the resolved booking; it is ignored otherwise.
func (s *Session) Apply(ev ChangeEvent, snapshot *booking.Booking) (notification.Event, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.seeding {
		s.backlog = append(s.backlog, parkedChange{ev: ev, snapshot: snapshot})
		return notification.Event{}, false
	}
	return s.apply(ev, snapshot)
}

func (s *Session) apply(ev ChangeEvent, snapshot *booking.Booking) (notification.Event, bool) {
	switch ev.Op {
	case OpInsert:
		return s.applyInsert(ev, snapshot)
	case OpUpdate:
		return s.applyUpdate(ev)
	case OpDelete:
		return s.applyDelete(ev)
	default:
		return notification.Event{}, false
	}
}

func (s *Session) applyInsert(ev ChangeEvent, snapshot *booking.Booking) (notification.Event, bool) {
	if ev.Record == nil {
		return notification.Event{}, false
	}
	if snapshot == nil {
		snapshot = ev.Record.Clone()
	}
	s.known[snapshot.ID()] = snapshot
	if snapshot.IsBlocked() || snapshot.IsCancelled() {
		return notification.Event{}, false
	}
	return s.queue.Append(notification.KindCreated, snapshot, s.clock.Now()), true
}

func (s *Session) applyUpdate(ev ChangeEvent) (notification.Event, bool) {
	if ev.Record == nil {
		return notification.Event{}, false
	}
	id := ev.Record.ID()
	prev, held := s.known[id]
	if !held {
		return notification.Event{}, false
	}
	next := ev.Record.Clone()
	if next.DisplayName() == "" {
		next = next.WithDisplayName(prev.DisplayName())
	}
	s.known[id] = next

	if !next.IsCancelled() || next.IsBlocked() {
		return notification.Event{}, false
	}
	return s.announceCancel(prev)
}

func (s *Session) applyDelete(ev ChangeEvent) (notification.Event, bool) {
	prev, held := s.known[ev.OldID]
	if !held {
		return notification.Event{}, false
	}
	delete(s.known, ev.OldID)
	if _, local := s.withheld[ev.OldID]; local {
		delete(s.withheld, ev.OldID)
		return notification.Event{}, false
	}
	if prev.IsBlocked() {
		return notification.Event{}, false
	}
	return s.announceCancel(prev)
}

func (s *Session) announceCancel(prev *booking.Booking) (notification.Event, bool) {
	if _, done := s.cancelled[prev.ID()]; done {
		return notification.Event{}, false
	}
	s.cancelled[prev.ID()] = struct{}{}
	now := s.clock.Now()
	return s.queue.Append(notification.KindCancelled, prev.AsCancelled(now), now), true
}

// Remember records a booking written through this process so later cancel
// and delete events can be announced with its details.
func (s *Session) Remember(b *booking.Booking) {
	if b == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.known[b.ID()] = b.Clone()
}

// Forget drops a booking from the cache; events for it are ignored from then on.
func (s *Session) Forget(id uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.known, id)
	delete(s.withheld, id)
}

// Withhold marks a booking this process is about to delete, so the delete
// event is not announced even if it arrives before Forget.
func (s *Session) Withhold(id uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.withheld[id] = struct{}{}
}

// Release undoes Withhold after a delete that did not happen.
func (s *Session) Release(id uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.withheld, id)
}

// beginSeed parks incoming changes until finishSeed.
func (s *Session) beginSeed() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seeding = true
}

// finishSeed loads the seed under anything already cached, then replays the
// changes parked while the seed was read. It returns how many were replayed.
func (s *Session) finishSeed(seeded []*booking.Booking) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, b := range seeded {
		if _, ok := s.known[b.ID()]; !ok {
			s.known[b.ID()] = b.Clone()
		}
	}
	parked := s.backlog
	s.backlog = nil
	s.seeding = false
	for _, p := range parked {
		s.apply(p.ev, p.snapshot)
	}
	return len(parked)
}

func (s *Session) Knows(id uuid.UUID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.known[id]
	return ok
}

// Head returns the visible event and how many are queued in total.
func (s *Session) Head() (notification.Event, int, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.queue.Head()
	return e, s.queue.Len(), ok
}

func (s *Session) Pending() []notification.Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.queue.Pending()
}

// Acknowledge pops the head. For a cancelled event the booking is forgotten
// and hard-deleted once; a failed delete is logged and does not block the queue.
// Acknowledging an empty queue does nothing.
func (s *Session) Acknowledge(ctx context.Context) (notification.Event, bool) {
	s.mu.Lock()
	e, ok := s.queue.Pop()
	if ok && e.RequiresHardDelete() {
		delete(s.known, e.Booking.ID())
		delete(s.cancelled, e.Booking.ID())
	}
	s.mu.Unlock()

	if !ok {
		return notification.Event{}, false
	}
	if e.RequiresHardDelete() && s.deleter != nil {
		if err := s.deleter.HardDelete(ctx, e.Booking.ID()); err != nil {
			slog.Warn("hard delete after acknowledge failed",
				"provider_id", s.providerID,
				"booking_id", e.Booking.ID(),
				"error", err)
		}
	}
	return e, true
}
