package queries

import (
	"context"
	"time"

	"scheduling-core/internal/domain/booking"
	"scheduling-core/internal/domain/timerange"
	"scheduling-core/internal/infra"
	"scheduling-core/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrInvalidRange = errs.New("from must be before to")

// maxListWindow bounds ListByProvider so a single request cannot scan a provider's whole history.
const maxListWindow = 93 * 24 * time.Hour

type BookingReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error)
	ListByProvider(ctx context.Context, providerID uuid.UUID, r timerange.Interval, includeCancelled bool) ([]*booking.Booking, error)
	ListActiveOverlapping(ctx context.Context, providerID uuid.UUID, r timerange.Interval) ([]*booking.Booking, error)
}

type BookingQueries interface {
	GetByID(ctx context.Context, providerID, id uuid.UUID) (*BookingView, error)
	ListByProvider(ctx context.Context, providerID uuid.UUID, from, to time.Time, includeCancelled bool) ([]*BookingView, error)
}

type bookingQueriesImpl struct {
	store BookingReadStore
}

func NewBookingQueries(store BookingReadStore) BookingQueries {
	return &bookingQueriesImpl{store: store}
}

func (q *bookingQueriesImpl) GetByID(ctx context.Context, providerID, id uuid.UUID) (*BookingView, error) {
	b, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrBookingNotFound
		}
		return nil, err
	}
	if b.ProviderID() != providerID {
		return nil, errs.ErrBookingNotFound
	}
	return BookingViewFromDomain(b), nil
}

func (q *bookingQueriesImpl) ListByProvider(ctx context.Context, providerID uuid.UUID, from, to time.Time, includeCancelled bool) ([]*BookingView, error) {
	r, err := timerange.New(from, to)
	if err != nil {
		return nil, ErrInvalidRange
	}
	if r.Duration() > maxListWindow {
		r.End = r.Start.Add(maxListWindow)
	}
	bs, err := q.store.ListByProvider(ctx, providerID, r, includeCancelled)
	if err != nil {
		return nil, err
	}
	return BookingViewsFromDomain(bs), nil
}
