//go:build unit

package commands_test

import (
	"context"
	"sort"
	"sync"
	"time"

	"scheduling-core/internal/domain/booking"
	"scheduling-core/internal/domain/schedule"
	"scheduling-core/internal/domain/timerange"
	"scheduling-core/internal/infra"
	"scheduling-core/internal/infra/sqlstore"
	"scheduling-core/internal/usecase/shared"

	"github.com/google/uuid"
)

// memoryStore is an in-memory UnitOfWork. Within runs fn against a copy of the
// rows and only publishes the copy when fn succeeds.
type memoryStore struct {
	mu        sync.Mutex
	bookings  map[uuid.UUID]*booking.Booking
	schedules map[uuid.UUID]*schedule.Schedule
	locks     []uuid.UUID
	failWith  error
	deletes   int
}

func newMemoryStore(seed ...*booking.Booking) *memoryStore {
	s := &memoryStore{
		bookings:  map[uuid.UUID]*booking.Booking{},
		schedules: map[uuid.UUID]*schedule.Schedule{},
	}
	for _, b := range seed {
		s.bookings[b.ID()] = b.Clone()
	}
	return s
}

func (s *memoryStore) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx := &memoryTx{store: s, bookings: map[uuid.UUID]*booking.Booking{}, schedules: map[uuid.UUID]*schedule.Schedule{}}
	for id, b := range s.bookings {
		tx.bookings[id] = b.Clone()
	}
	for id, sc := range s.schedules {
		tx.schedules[id] = sc
	}
	if err := fn(ctx, tx); err != nil {
		return err
	}
	s.bookings = tx.bookings
	s.schedules = tx.schedules
	s.deletes += tx.deletes
	return nil
}

func (s *memoryStore) WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db sqlstore.DBTX) error) error {
	return fn(ctx, nil)
}

func (s *memoryStore) WithDB(ctx context.Context, fn func(ctx context.Context, db sqlstore.DBTX) error) error {
	return fn(ctx, nil)
}

func (s *memoryStore) get(id uuid.UUID) *booking.Booking {
	s.mu.Lock()
	defer s.mu.Unlock()
	if b, ok := s.bookings[id]; ok {
		return b.Clone()
	}
	return nil
}

func (s *memoryStore) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.bookings)
}

// FindByID, ListByProvider and ListActiveOverlapping make the store usable as a read store.
func (s *memoryStore) FindByID(_ context.Context, id uuid.UUID) (*booking.Booking, error) {
	if b := s.get(id); b != nil {
		return b, nil
	}
	return nil, infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
}

func (s *memoryStore) ListByProvider(_ context.Context, providerID uuid.UUID, r timerange.Interval, includeCancelled bool) ([]*booking.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return filterBookings(s.bookings, providerID, r, includeCancelled), nil
}

func (s *memoryStore) ListActiveOverlapping(_ context.Context, providerID uuid.UUID, r timerange.Interval) ([]*booking.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return filterBookings(s.bookings, providerID, r, false), nil
}

func filterBookings(all map[uuid.UUID]*booking.Booking, providerID uuid.UUID, r timerange.Interval, includeCancelled bool) []*booking.Booking {
	var out []*booking.Booking
	for _, b := range all {
		if b.ProviderID() != providerID || !b.Interval().Overlaps(r) {
			continue
		}
		if b.IsCancelled() && !includeCancelled {
			continue
		}
		out = append(out, b.Clone())
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Start().Before(out[j].Start()) })
	return out
}

type memoryTx struct {
	store     *memoryStore
	bookings  map[uuid.UUID]*booking.Booking
	schedules map[uuid.UUID]*schedule.Schedule
	deletes   int
}

func (t *memoryTx) LockProvider(_ context.Context, providerID uuid.UUID) error {
	t.store.locks = append(t.store.locks, providerID)
	return nil
}

func (t *memoryTx) Bookings() shared.BookingRepository   { return memoryBookings{t} }
func (t *memoryTx) Schedules() shared.ScheduleRepository { return memorySchedules{t} }
func (t *memoryTx) DB() sqlstore.DBTX                    { return nil }

type memoryBookings struct{ tx *memoryTx }

func (r memoryBookings) Create(_ context.Context, _ sqlstore.DBTX, b *booking.Booking) error {
	if err := r.tx.store.failWith; err != nil {
		return err
	}
	r.tx.bookings[b.ID()] = b.Clone()
	return nil
}

func (r memoryBookings) Update(_ context.Context, _ sqlstore.DBTX, b *booking.Booking) error {
	if err := r.tx.store.failWith; err != nil {
		return err
	}
	if _, ok := r.tx.bookings[b.ID()]; !ok {
		return infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	r.tx.bookings[b.ID()] = b.Clone()
	return nil
}

func (r memoryBookings) Delete(_ context.Context, _ sqlstore.DBTX, id uuid.UUID) (bool, error) {
	if err := r.tx.store.failWith; err != nil {
		return false, err
	}
	if _, ok := r.tx.bookings[id]; !ok {
		return false, nil
	}
	delete(r.tx.bookings, id)
	r.tx.deletes++
	return true, nil
}

func (r memoryBookings) FindByID(_ context.Context, _ sqlstore.DBTX, id uuid.UUID) (*booking.Booking, error) {
	b, ok := r.tx.bookings[id]
	if !ok {
		return nil, infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	return b.Clone(), nil
}

func (r memoryBookings) ListActiveOverlapping(_ context.Context, _ sqlstore.DBTX, providerID uuid.UUID, rng timerange.Interval) ([]*booking.Booking, error) {
	return filterBookings(r.tx.bookings, providerID, rng, false), nil
}

type memorySchedules struct{ tx *memoryTx }

func (r memorySchedules) Find(_ context.Context, _ sqlstore.DBTX, providerID uuid.UUID) (*schedule.Schedule, error) {
	return r.tx.schedules[providerID], nil
}

func (r memorySchedules) Replace(_ context.Context, _ sqlstore.DBTX, s *schedule.Schedule, at time.Time) error {
	if err := r.tx.store.failWith; err != nil {
		return err
	}
	r.tx.schedules[s.ProviderID()] = schedule.Reconstruct(s.ProviderID(), s.SlotDuration(), s.Location(), s.Days(), at)
	return nil
}

type staticDirectory map[uuid.UUID]string

func (d staticDirectory) DisplayName(_ context.Context, id uuid.UUID) (string, error) {
	name, ok := d[id]
	if !ok {
		return "", infra.WrapRepoErr("client not found", nil, infra.KindNotFound)
	}
	return name, nil
}
