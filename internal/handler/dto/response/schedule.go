package response

import (
	"time"

	"scheduling-core/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type DayHoursResponse struct {
	Weekday    int     `json:"weekday"`
	Name       string  `json:"name"`
	Active     bool    `json:"active"`
	Start      string  `json:"start,omitempty"`
	End        string  `json:"end,omitempty"`
	LunchStart *string `json:"lunch_start,omitempty"`
	LunchEnd   *string `json:"lunch_end,omitempty"`
}

type ScheduleResponse struct {
	ProviderID          uuid.UUID          `json:"provider_id"`
	SlotDurationMinutes int                `json:"slot_duration_minutes"`
	TimeZone            string             `json:"time_zone"`
	Days                []DayHoursResponse `json:"days"`
	IsDefault           bool               `json:"is_default"`
	UpdatedAt           *time.Time         `json:"updated_at,omitempty"`
}

func FromScheduleView(v *queries.ScheduleView) *ScheduleResponse {
	var res ScheduleResponse
	_ = copier.CopyWithOption(&res, v, copier.Option{DeepCopy: true})
	return &res
}

type SlotsResponse struct {
	ProviderID          uuid.UUID   `json:"provider_id"`
	Date                string      `json:"date"`
	TimeZone            string      `json:"time_zone"`
	SlotDurationMinutes int         `json:"slot_duration_minutes"`
	Slots               []time.Time `json:"slots"`
}

func FromSlotsView(v *queries.SlotsView) *SlotsResponse {
	res := SlotsResponse{Slots: []time.Time{}}
	_ = copier.Copy(&res, v)
	return &res
}
