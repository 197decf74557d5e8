package shared

import (
	"context"
	"time"

	"scheduling-core/internal/domain/booking"
	"scheduling-core/internal/domain/schedule"
	"scheduling-core/internal/domain/timerange"
	"scheduling-core/internal/infra/sqlstore"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: Read-only transaction for multi-table consistent reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db sqlstore.DBTX) error) error
	// WithDB: Single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, db sqlstore.DBTX) error) error
}

type Tx interface {
	// LockProvider holds a per-provider write lock until the transaction ends.
	LockProvider(ctx context.Context, providerID uuid.UUID) error
	Bookings() BookingRepository
	Schedules() ScheduleRepository
	DB() sqlstore.DBTX
}

type BookingRepository interface {
	Create(ctx context.Context, tx sqlstore.DBTX, b *booking.Booking) error
	Update(ctx context.Context, tx sqlstore.DBTX, b *booking.Booking) error
	// Delete reports whether a row was removed.
	Delete(ctx context.Context, tx sqlstore.DBTX, id uuid.UUID) (bool, error)
	FindByID(ctx context.Context, tx sqlstore.DBTX, id uuid.UUID) (*booking.Booking, error)
	// ListActiveOverlapping returns confirmed bookings of the provider overlapping r.
	ListActiveOverlapping(ctx context.Context, tx sqlstore.DBTX, providerID uuid.UUID, r timerange.Interval) ([]*booking.Booking, error)
}

type ScheduleRepository interface {
	// Find returns nil without error when the provider has no schedule yet.
	Find(ctx context.Context, tx sqlstore.DBTX, providerID uuid.UUID) (*schedule.Schedule, error)
	// Replace swaps the whole weekly schedule.
	Replace(ctx context.Context, tx sqlstore.DBTX, s *schedule.Schedule, at time.Time) error
}

// ClientDirectory resolves the name shown for a client on bookings and notifications.
type ClientDirectory interface {
	DisplayName(ctx context.Context, clientID uuid.UUID) (string, error)
}
