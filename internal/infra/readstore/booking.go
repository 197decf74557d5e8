package readstore

import (
	"context"

	"scheduling-core/internal/domain/booking"
	"scheduling-core/internal/domain/timerange"
	"scheduling-core/internal/infra"
	"scheduling-core/internal/infra/repository/converter"
	"scheduling-core/internal/infra/sqlstore"
	"scheduling-core/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type BookingViewQueries interface {
	GetBookingByID(ctx context.Context, db sqlstore.DBTX, id uuid.UUID) (sqlstore.Bookings, error)
	ListBookingsByProvider(ctx context.Context, db sqlstore.DBTX, arg sqlstore.ListBookingsByProviderParams) ([]sqlstore.Bookings, error)
	ListActiveBookingsOverlapping(ctx context.Context, db sqlstore.DBTX, arg sqlstore.ListActiveBookingsOverlappingParams) ([]sqlstore.Bookings, error)
}

// BookingReadStore serves booking reads outside any write transaction.
type BookingReadStore struct {
	queries BookingViewQueries
	db      sqlstore.DBTX
}

func NewBookingReadStore(queries BookingViewQueries, db sqlstore.DBTX) *BookingReadStore {
	return &BookingReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *BookingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	row, err := r.queries.GetBookingByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get booking by id", err)
	}
	return converter.BookingFromRow(row), nil
}

func (r *BookingReadStore) ListByProvider(ctx context.Context, providerID uuid.UUID, rng timerange.Interval, includeCancelled bool) ([]*booking.Booking, error) {
	rows, err := r.queries.ListBookingsByProvider(ctx, r.db, sqlstore.ListBookingsByProviderParams{
		ProviderID:       providerID,
		From:             pgconv.TimeToPgtype(rng.Start),
		To:               pgconv.TimeToPgtype(rng.End),
		IncludeCancelled: includeCancelled,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings by provider", err)
	}
	return converter.BookingsFromRows(rows), nil
}

func (r *BookingReadStore) ListActiveOverlapping(ctx context.Context, providerID uuid.UUID, rng timerange.Interval) ([]*booking.Booking, error) {
	rows, err := r.queries.ListActiveBookingsOverlapping(ctx, r.db, sqlstore.ListActiveBookingsOverlappingParams{
		ProviderID: providerID,
		From:       pgconv.TimeToPgtype(rng.Start),
		To:         pgconv.TimeToPgtype(rng.End),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list overlapping bookings", err)
	}
	return converter.BookingsFromRows(rows), nil
}

