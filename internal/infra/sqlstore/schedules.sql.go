package sqlstore

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const getProviderSchedule = `-- name: GetProviderSchedule :one
SELECT provider_id, slot_duration_minutes, time_zone, updated_at
FROM provider_schedules
WHERE provider_id = $1`

func (q *Queries) GetProviderSchedule(ctx context.Context, db DBTX, providerID uuid.UUID) (ProviderSchedules, error) {
	row := db.QueryRow(ctx, getProviderSchedule, providerID)
	var i ProviderSchedules
	err := row.Scan(
		&i.ProviderID,
		&i.SlotDurationMinutes,
		&i.TimeZone,
		&i.UpdatedAt,
	)
	return i, err
}

const listProviderScheduleDays = `-- name: ListProviderScheduleDays :many
SELECT provider_id, weekday, active, start_time, end_time, lunch_start, lunch_end
FROM provider_schedule_days
WHERE provider_id = $1
ORDER BY weekday`

func (q *Queries) ListProviderScheduleDays(ctx context.Context, db DBTX, providerID uuid.UUID) ([]ProviderScheduleDays, error) {
	rows, err := db.Query(ctx, listProviderScheduleDays, providerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []ProviderScheduleDays
	for rows.Next() {
		var i ProviderScheduleDays
		if err := rows.Scan(
			&i.ProviderID,
			&i.Weekday,
			&i.Active,
			&i.StartTime,
			&i.EndTime,
			&i.LunchStart,
			&i.LunchEnd,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const upsertProviderSchedule = `-- name: UpsertProviderSchedule :exec
INSERT INTO provider_schedules (provider_id, slot_duration_minutes, time_zone, updated_at)
VALUES ($1, $2, $3, $4)
ON CONFLICT (provider_id) DO UPDATE
SET slot_duration_minutes = EXCLUDED.slot_duration_minutes,
    time_zone = EXCLUDED.time_zone,
    updated_at = EXCLUDED.updated_at`

type UpsertProviderScheduleParams struct {
	ProviderID          uuid.UUID          `json:"provider_id"`
	SlotDurationMinutes int32              `json:"slot_duration_minutes"`
	TimeZone            string             `json:"time_zone"`
	UpdatedAt           pgtype.Timestamptz `json:"updated_at"`
}

func (q *Queries) UpsertProviderSchedule(ctx context.Context, db DBTX, arg UpsertProviderScheduleParams) error {
	_, err := db.Exec(ctx, upsertProviderSchedule,
		arg.ProviderID,
		arg.SlotDurationMinutes,
		arg.TimeZone,
		arg.UpdatedAt,
	)
	return err
}

const deleteProviderScheduleDays = `-- name: DeleteProviderScheduleDays :exec
DELETE FROM provider_schedule_days WHERE provider_id = $1`

func (q *Queries) DeleteProviderScheduleDays(ctx context.Context, db DBTX, providerID uuid.UUID) error {
	_, err := db.Exec(ctx, deleteProviderScheduleDays, providerID)
	return err
}

const insertProviderScheduleDay = `-- name: InsertProviderScheduleDay :exec
INSERT INTO provider_schedule_days (provider_id, weekday, active, start_time, end_time, lunch_start, lunch_end)
VALUES ($1, $2, $3, $4, $5, $6, $7)`

func (q *Queries) InsertProviderScheduleDay(ctx context.Context, db DBTX, arg ProviderScheduleDays) error {
	_, err := db.Exec(ctx, insertProviderScheduleDay,
		arg.ProviderID,
		arg.Weekday,
		arg.Active,
		arg.StartTime,
		arg.EndTime,
		arg.LunchStart,
		arg.LunchEnd,
	)
	return err
}
