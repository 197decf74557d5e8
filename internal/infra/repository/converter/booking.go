package converter

import (
	"scheduling-core/internal/domain/booking"
	"scheduling-core/internal/domain/timerange"
	"scheduling-core/internal/infra/sqlstore"
	"scheduling-core/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5/pgtype"
)

func BookingToCreateParams(b *booking.Booking) sqlstore.CreateBookingParams {
	return sqlstore.CreateBookingParams{
		ID:          b.ID(),
		ProviderID:  b.ProviderID(),
		ClientID:    pgconv.UUIDPtrToPgtype(b.ClientID()),
		StartTime:   pgconv.TimeToPgtype(b.Start()),
		EndTime:     pgconv.TimeToPgtype(b.End()),
		Status:      b.Status().String(),
		Type:        b.Type().String(),
		DisplayName: b.DisplayName(),
		Notes:       notesToPgtype(b.Notes()),
		CreatedAt:   pgconv.TimeToPgtype(b.CreatedAt()),
		UpdatedAt:   pgconv.TimeToPgtype(b.UpdatedAt()),
		CancelledAt: pgconv.TimePtrToPgtype(b.CancelledAt()),
	}
}

func BookingToUpdateParams(b *booking.Booking) sqlstore.UpdateBookingParams {
	return sqlstore.UpdateBookingParams{
		ID:          b.ID(),
		ClientID:    pgconv.UUIDPtrToPgtype(b.ClientID()),
		StartTime:   pgconv.TimeToPgtype(b.Start()),
		EndTime:     pgconv.TimeToPgtype(b.End()),
		Status:      b.Status().String(),
		Type:        b.Type().String(),
		DisplayName: b.DisplayName(),
		Notes:       notesToPgtype(b.Notes()),
		UpdatedAt:   pgconv.TimeToPgtype(b.UpdatedAt()),
		CancelledAt: pgconv.TimePtrToPgtype(b.CancelledAt()),
	}
}

func BookingFromRow(row sqlstore.Bookings) *booking.Booking {
	var notes string
	if row.Notes.Valid {
		notes = row.Notes.String
	}
	return booking.Reconstruct(
		row.ID,
		row.ProviderID,
		pgconv.UUIDPtrFromPgtype(row.ClientID),
		timerange.Interval{Start: row.StartTime.Time, End: row.EndTime.Time},
		booking.Status(row.Status),
		booking.Type(row.Type),
		row.DisplayName,
		notes,
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
		pgconv.TimePtrFromPgtype(row.CancelledAt),
	)
}

func BookingsFromRows(rows []sqlstore.Bookings) []*booking.Booking {
	out := make([]*booking.Booking, len(rows))
	for i, row := range rows {
		out[i] = BookingFromRow(row)
	}
	return out
}

func notesToPgtype(notes string) pgtype.Text {
	if notes == "" {
		return pgtype.Text{Valid: false}
	}
	return pgconv.StringToPgtype(notes)
}
