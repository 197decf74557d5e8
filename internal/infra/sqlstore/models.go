package sqlstore

import (
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type Bookings struct {
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

type ProviderSchedules struct {
	ProviderID          uuid.UUID          `json:"provider_id"`
	SlotDurationMinutes int32              `json:"slot_duration_minutes"`
	TimeZone            string             `json:"time_zone"`
	UpdatedAt           pgtype.Timestamptz `json:"updated_at"`
}

type ProviderScheduleDays struct {
	ProviderID uuid.UUID   `json:"provider_id"`
	Weekday    int16       `json:"weekday"`
	Active     bool        `json:"active"`
	StartTime  pgtype.Time `json:"start_time"`
	EndTime    pgtype.Time `json:"end_time"`
	LunchStart pgtype.Time `json:"lunch_start"`
	LunchEnd   pgtype.Time `json:"lunch_end"`
}

type Clients struct {
	ID          uuid.UUID          `json:"id"`
	DisplayName string             `json:"display_name"`
	Email       pgtype.Text        `json:"email"`
	Phone       pgtype.Text        `json:"phone"`
	CreatedAt   pgtype.Timestamptz `json:"created_at"`
}
