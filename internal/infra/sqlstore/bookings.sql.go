package sqlstore

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const bookingColumns = `id, provider_id, client_id, start_time, end_time, status, type, display_name, notes, created_at, updated_at, cancelled_at`

func scanBooking(row pgx.Row) (Bookings, error) {
	var i Bookings
	err := row.Scan(
		&i.ID,
		&i.ProviderID,
		&i.ClientID,
		&i.StartTime,
		&i.EndTime,
		&i.Status,
		&i.Type,
		&i.DisplayName,
		&i.Notes,
		&i.CreatedAt,
		&i.UpdatedAt,
		&i.CancelledAt,
	)
	return i, err
}

func collectBookings(rows pgx.Rows) ([]Bookings, error) {
	defer rows.Close()
	var items []Bookings
	for rows.Next() {
		i, err := scanBooking(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const createBooking = `-- name: CreateBooking :one
INSERT INTO bookings (id, provider_id, client_id, start_time, end_time, status, type, display_name, notes, created_at, updated_at, cancelled_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
RETURNING ` + bookingColumns

type CreateBookingParams struct {
	ID          uuid.UUID          `json:"id"`
	ProviderID  uuid.UUID          `json:"provider_id"`
	ClientID    pgtype.UUID        `json:"client_id"`
	StartTime   pgtype.Timestamptz `json:"start_time"`
	EndTime     pgtype.Timestamptz `json:"end_time"`
	Status      string             `json:"status"`
	Type        string             `json:"type"`
	DisplayName string             `json:"display_name"`
	Notes       pgtype.Text        `json:"notes"`
	CreatedAt   pgtype.Timestamptz `json:"created_at"`
	UpdatedAt   pgtype.Timestamptz `json:"updated_at"`
	CancelledAt pgtype.Timestamptz `json:"cancelled_at"`
}

func (q *Queries) CreateBooking(ctx context.Context, db DBTX, arg CreateBookingParams) (Bookings, error) {
	row := db.QueryRow(ctx, createBooking,
		arg.ID,
		arg.ProviderID,
		arg.ClientID,
		arg.StartTime,
		arg.EndTime,
		arg.Status,
		arg.Type,
		arg.DisplayName,
		arg.Notes,
		arg.CreatedAt,
		arg.UpdatedAt,
		arg.CancelledAt,
	)
	return scanBooking(row)
}

const updateBooking = `-- name: UpdateBooking :execrows
UPDATE bookings
SET client_id = $2, start_time = $3, end_time = $4, status = $5, type = $6,
    display_name = $7, notes = $8, updated_at = $9, cancelled_at = $10
WHERE id = $1`

type UpdateBookingParams struct {
	ID          uuid.UUID          `json:"id"`
	ClientID    pgtype.UUID        `json:"client_id"`
	StartTime   pgtype.Timestamptz `json:"start_time"`
	EndTime     pgtype.Timestamptz `json:"end_time"`
	Status      string             `json:"status"`
	Type        string             `json:"type"`
	DisplayName string             `json:"display_name"`
	Notes       pgtype.Text        `json:"notes"`
	UpdatedAt   pgtype.Timestamptz `json:"updated_at"`
	CancelledAt pgtype.Timestamptz `json:"cancelled_at"`
}

func (q *Queries) UpdateBooking(ctx context.Context, db DBTX, arg UpdateBookingParams) (int64, error) {
	result, err := db.Exec(ctx, updateBooking,
		arg.ID,
		arg.ClientID,
		arg.StartTime,
		arg.EndTime,
		arg.Status,
		arg.Type,
		arg.DisplayName,
		arg.Notes,
		arg.UpdatedAt,
		arg.CancelledAt,
	)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

const deleteBooking = `-- name: DeleteBooking :execrows
DELETE FROM bookings WHERE id = $1`

func (q *Queries) DeleteBooking(ctx context.Context, db DBTX, id uuid.UUID) (int64, error) {
	result, err := db.Exec(ctx, deleteBooking, id)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

const getBookingByID = `-- name: GetBookingByID :one
SELECT ` + bookingColumns + ` FROM bookings WHERE id = $1`

func (q *Queries) GetBookingByID(ctx context.Context, db DBTX, id uuid.UUID) (Bookings, error) {
	return scanBooking(db.QueryRow(ctx, getBookingByID, id))
}

const listActiveBookingsOverlapping = `-- name: ListActiveBookingsOverlapping :many
SELECT ` + bookingColumns + `
FROM bookings
WHERE provider_id = $1
  AND status = 'confirmed'
  AND start_time < $3
  AND end_time > $2
ORDER BY start_time, id`

type ListActiveBookingsOverlappingParams struct {
	ProviderID uuid.UUID          `json:"provider_id"`
	From       pgtype.Timestamptz `json:"from"`
	To         pgtype.Timestamptz `json:"to"`
}

// Half-open overlap with [From, To).
func (q *Queries) ListActiveBookingsOverlapping(ctx context.Context, db DBTX, arg ListActiveBookingsOverlappingParams) ([]Bookings, error) {
	rows, err := db.Query(ctx, listActiveBookingsOverlapping, arg.ProviderID, arg.From, arg.To)
	if err != nil {
		return nil, err
	}
	return collectBookings(rows)
}

const listBookingsByProvider = `-- name: ListBookingsByProvider :many
SELECT ` + bookingColumns + `
FROM bookings
WHERE provider_id = $1
  AND start_time < $3
  AND end_time > $2
  AND ($4::boolean OR status = 'confirmed')
ORDER BY start_time, id`

type ListBookingsByProviderParams struct {
	ProviderID       uuid.UUID          `json:"provider_id"`
	From             pgtype.Timestamptz `json:"from"`
	To               pgtype.Timestamptz `json:"to"`
	IncludeCancelled bool               `json:"include_cancelled"`
}

func (q *Queries) ListBookingsByProvider(ctx context.Context, db DBTX, arg ListBookingsByProviderParams) ([]Bookings, error) {
	rows, err := db.Query(ctx, listBookingsByProvider, arg.ProviderID, arg.From, arg.To, arg.IncludeCancelled)
	if err != nil {
		return nil, err
	}
	return collectBookings(rows)
}

const lockProvider = `-- name: LockProvider :exec
SELECT pg_advisory_xact_lock(hashtextextended($1::text, 0))`

// LockProvider serializes writers for one provider until the surrounding transaction ends.
func (q *Queries) LockProvider(ctx context.Context, db DBTX, providerID uuid.UUID) error {
	_, err := db.Exec(ctx, lockProvider, providerID.String())
	return err
}
