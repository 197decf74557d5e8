package repository

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

type BookingWriteQueries interface {
	CreateBooking(ctx context.Context, db sqlstore.DBTX, arg sqlstore.CreateBookingParams) (sqlstore.Bookings, error)
	UpdateBooking(ctx context.Context, db sqlstore.DBTX, arg sqlstore.UpdateBookingParams) (int64, error)
	DeleteBooking(ctx context.Context, db sqlstore.DBTX, id uuid.UUID) (int64, error)
	GetBookingByID(ctx context.Context, db sqlstore.DBTX, id uuid.UUID) (sqlstore.Bookings, error)
	ListActiveBookingsOverlapping(ctx context.Context, db sqlstore.DBTX, arg sqlstore.ListActiveBookingsOverlappingParams) ([]sqlstore.Bookings, error)
}

type BookingRepository struct {
	queries BookingWriteQueries
}

func NewBookingRepository(queries BookingWriteQueries) *BookingRepository {
	return &BookingRepository{queries: queries}
}

func (r *BookingRepository) Create(ctx context.Context, tx sqlstore.DBTX, b *booking.Booking) error {
	if _, err := r.queries.CreateBooking(ctx, tx, converter.BookingToCreateParams(b)); err != nil {
		return infra.WrapRepoErr("failed to create booking", err)
	}
	return nil
}

func (r *BookingRepository) Update(ctx context.Context, tx sqlstore.DBTX, b *booking.Booking) error {
	n, err := r.queries.UpdateBooking(ctx, tx, converter.BookingToUpdateParams(b))
	if err != nil {
		return infra.WrapRepoErr("failed to update booking", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *BookingRepository) Delete(ctx context.Context, tx sqlstore.DBTX, id uuid.UUID) (bool, error) {
	n, err := r.queries.DeleteBooking(ctx, tx, id)
	if err != nil {
		return false, infra.WrapRepoErr("failed to delete booking", err)
	}
	return n > 0, nil
}

func (r *BookingRepository) FindByID(ctx context.Context, tx sqlstore.DBTX, id uuid.UUID) (*booking.Booking, error) {
	row, err := r.queries.GetBookingByID(ctx, tx, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get booking by id", err)
	}
	return converter.BookingFromRow(row), nil
}

func (r *BookingRepository) ListActiveOverlapping(ctx context.Context, tx sqlstore.DBTX, providerID uuid.UUID, rng timerange.Interval) ([]*booking.Booking, error) {
	rows, err := r.queries.ListActiveBookingsOverlapping(ctx, tx, sqlstore.ListActiveBookingsOverlappingParams{
		ProviderID: providerID,
		From:       pgconv.TimeToPgtype(rng.Start),
		To:         pgconv.TimeToPgtype(rng.End),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list overlapping bookings", err)
	}
	return converter.BookingsFromRows(rows), nil
}
