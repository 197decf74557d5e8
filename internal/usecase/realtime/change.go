package realtime

import (
	"context"
	"log/slog"
	"time"

	"scheduling-core/internal/domain/booking"
	"scheduling-core/internal/domain/timerange"
	"scheduling-core/internal/usecase/shared"

	"github.com/google/uuid"
)

type Op string

const (
	OpInsert Op = "insert"
	OpUpdate Op = "update"
	OpDelete Op = "delete"
)

func (o Op) IsValid() bool {
	switch o {
	case OpInsert, OpUpdate, OpDelete:
		return true
	default:
		return false
	}
}

// ChangeEvent is one row change from the change feed. Record is set for insert
// and update, OldID for delete.
type ChangeEvent struct {
	Op         Op
	ProviderID uuid.UUID
	Record     *booking.Booking
	OldID      uuid.UUID
}

func (e ChangeEvent) BookingID() uuid.UUID {
	if e.Record != nil {
		return e.Record.ID()
	}
	return e.OldID
}

type HardDeleter interface {
	HardDelete(ctx context.Context, id uuid.UUID) error
}

// SnapshotResolver fills in what a notification shows for a booking.
type SnapshotResolver interface {
	Resolve(ctx context.Context, b *booking.Booking) *booking.Booking
}

// ActiveBookings lists the bookings a new session starts out knowing about.
type ActiveBookings interface {
	ListActiveOverlapping(ctx context.Context, providerID uuid.UUID, r timerange.Interval) ([]*booking.Booking, error)
}

// DirectoryResolver takes the display name from the client directory, keeping
// the stored name when the lookup fails.
type DirectoryResolver struct {
	clients shared.ClientDirectory
	timeout time.Duration
}

func NewDirectoryResolver(clients shared.ClientDirectory) *DirectoryResolver {
	return &DirectoryResolver{clients: clients, timeout: 2 * time.Second}
}

func (r *DirectoryResolver) Resolve(ctx context.Context, b *booking.Booking) *booking.Booking {
	if b.ClientID() == nil || r.clients == nil {
		return b.Clone()
	}
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	name, err := r.clients.DisplayName(ctx, *b.ClientID())
	if err != nil || name == "" {
		if err != nil {
			slog.Warn("display name lookup failed, using stored name", "booking_id", b.ID(), "error", err)
		}
		return b.Clone()
	}
	return b.WithDisplayName(name)
}

// Feed delivers change events in commit order until ctx is cancelled.
type Feed interface {
	Run(ctx context.Context, handle func(context.Context, ChangeEvent)) error
}
