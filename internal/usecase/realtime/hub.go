package realtime

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"scheduling-core/internal/domain/booking"
	"scheduling-core/internal/domain/notification"
	"scheduling-core/internal/domain/timerange"
	"scheduling-core/internal/pkg/clock"
	"scheduling-core/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrNoSession = errs.New("no notification session for provider")

const (
	seedLookback = 24 * time.Hour
	seedHorizon  = 366 * 24 * time.Hour
)

// Notifications is what the HTTP layer needs from the hub.
type Notifications interface {
	Open(ctx context.Context, providerID uuid.UUID) (*Session, error)
	Head(providerID uuid.UUID) (notification.Event, int, error)
	Acknowledge(ctx context.Context, providerID uuid.UUID) (notification.Event, bool, error)
	Remember(b *booking.Booking)
	Forget(providerID, id uuid.UUID)
	Withhold(providerID, id uuid.UUID)
	Release(providerID, id uuid.UUID)
}

// Hub routes change events to the open provider sessions. Events for
// providers without a session are dropped.
type Hub struct {
	deleter  HardDeleter
	resolver SnapshotResolver
	seed     ActiveBookings
	clock    clock.Clock

	mu       sync.Mutex
	sessions map[uuid.UUID]*Session
}

func NewHub(deleter HardDeleter, resolver SnapshotResolver, seed ActiveBookings, clk clock.Clock) *Hub {
	return &Hub{
		deleter:  deleter,
		resolver: resolver,
		seed:     seed,
		clock:    clk,
		sessions: map[uuid.UUID]*Session{},
	}
}

// Open returns the provider's session, creating it on first use. A new
// session is registered before it is seeded with the provider's upcoming
// confirmed bookings, so no change dispatched during the seed read is lost.
func (h *Hub) Open(ctx context.Context, providerID uuid.UUID) (*Session, error) {
	h.mu.Lock()
	if s, ok := h.sessions[providerID]; ok {
		h.mu.Unlock()
		return s, nil
	}
	s := NewSession(providerID, h.deleter, h.clock)
	s.beginSeed()
	h.sessions[providerID] = s
	h.mu.Unlock()

	var seeded []*booking.Booking
	if h.seed != nil {
		now := h.clock.Now()
		window := timerange.Interval{Start: now.Add(-seedLookback), End: now.Add(seedHorizon)}
		bs, err := h.seed.ListActiveOverlapping(ctx, providerID, window)
		if err != nil {
			h.mu.Lock()
			if h.sessions[providerID] == s {
				delete(h.sessions, providerID)
			}
			h.mu.Unlock()
			return nil, err
		}
		seeded = bs
	}

	replayed := s.finishSeed(seeded)
	slog.Info("notification session opened", "provider_id", providerID, "seeded", len(seeded), "replayed", replayed)
	return s, nil
}

func (h *Hub) Session(providerID uuid.UUID) (*Session, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	s, ok := h.sessions[providerID]
	return s, ok
}

func (h *Hub) Close(providerID uuid.UUID) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.sessions, providerID)
}

// Dispatch applies one change event. It must be called from a single
// goroutine so that events reach each session in feed order.
func (h *Hub) Dispatch(ctx context.Context, ev ChangeEvent) {
	if !ev.Op.IsValid() {
		slog.Warn("dropping change event with unknown op", "op", ev.Op)
		return
	}
	s, ok := h.Session(ev.ProviderID)
	if !ok {
		return
	}

	var snapshot *booking.Booking
	if ev.Op == OpInsert && ev.Record != nil && !ev.Record.IsBlocked() && h.resolver != nil {
		snapshot = h.resolver.Resolve(ctx, ev.Record)
	}

	if e, queued := s.Apply(ev, snapshot); queued {
		slog.Debug("notification queued",
			"provider_id", ev.ProviderID,
			"booking_id", ev.BookingID(),
			"kind", e.Kind,
			"sequence", e.Sequence)
	}
}

func (h *Hub) Head(providerID uuid.UUID) (notification.Event, int, error) {
	s, ok := h.Session(providerID)
	if !ok {
		return notification.Event{}, 0, ErrNoSession
	}
	e, n, _ := s.Head()
	return e, n, nil
}

func (h *Hub) Acknowledge(ctx context.Context, providerID uuid.UUID) (notification.Event, bool, error) {
	s, ok := h.Session(providerID)
	if !ok {
		return notification.Event{}, false, ErrNoSession
	}
	e, popped := s.Acknowledge(ctx)
	return e, popped, nil
}

// Remember passes a locally written booking to its provider's session, if open.
func (h *Hub) Remember(b *booking.Booking) {
	if b == nil {
		return
	}
	if s, ok := h.Session(b.ProviderID()); ok {
		s.Remember(b)
	}
}

func (h *Hub) Forget(providerID, id uuid.UUID) {
	if s, ok := h.Session(providerID); ok {
		s.Forget(id)
	}
}

func (h *Hub) Withhold(providerID, id uuid.UUID) {
	if s, ok := h.Session(providerID); ok {
		s.Withhold(id)
	}
}

func (h *Hub) Release(providerID, id uuid.UUID) {
	if s, ok := h.Session(providerID); ok {
		s.Release(id)
	}
}
