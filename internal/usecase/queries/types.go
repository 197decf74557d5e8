package queries

import (
	"time"

	"scheduling-core/internal/domain/booking"
	"scheduling-core/internal/domain/schedule"

	"github.com/google/uuid"
)

// BookingView represents read-optimized booking data
type BookingView struct {
	ID              uuid.UUID  `json:"id"`
	ProviderID      uuid.UUID  `json:"provider_id"`
	ClientID        *uuid.UUID `json:"client_id,omitempty"`
	StartTime       time.Time  `json:"start_time"`
	EndTime         time.Time  `json:"end_time"`
	DurationMinutes int        `json:"duration_minutes"`
	Status          string     `json:"status"`
	Type            string     `json:"type"`
	DisplayName     string     `json:"display_name"`
	Notes           string     `json:"notes,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
	CancelledAt     *time.Time `json:"cancelled_at,omitempty"`
}

// ScheduleView represents a provider's weekly hours as HH:MM strings
type ScheduleView struct {
	ProviderID          uuid.UUID  `json:"provider_id"`
	SlotDurationMinutes int        `json:"slot_duration_minutes"`
	TimeZone            string     `json:"time_zone"`
	Days                []DayView  `json:"days"`
	IsDefault           bool       `json:"is_default"`
	UpdatedAt           *time.Time `json:"updated_at,omitempty"`
}

type DayView struct {
	Weekday    int     `json:"weekday"`
	Name       string  `json:"name"`
	Active     bool    `json:"active"`
	Start      string  `json:"start,omitempty"`
	End        string  `json:"end,omitempty"`
	LunchStart *string `json:"lunch_start,omitempty"`
	LunchEnd   *string `json:"lunch_end,omitempty"`
}

// SlotsView is the free slot list of one provider on one calendar date
type SlotsView struct {
	ProviderID          uuid.UUID   `json:"provider_id"`
	Date                string      `json:"date"`
	TimeZone            string      `json:"time_zone"`
	SlotDurationMinutes int         `json:"slot_duration_minutes"`
	Slots               []time.Time `json:"slots"`
}

func BookingViewFromDomain(b *booking.Booking) *BookingView {
	if b == nil {
		return nil
	}
	return &BookingView{
		ID:              b.ID(),
		ProviderID:      b.ProviderID(),
		ClientID:        b.ClientID(),
		StartTime:       b.Start(),
		EndTime:         b.End(),
		DurationMinutes: int(b.Duration() / time.Minute),
		Status:          b.Status().String(),
		Type:            b.Type().String(),
		DisplayName:     b.DisplayName(),
		Notes:           b.Notes(),
		CreatedAt:       b.CreatedAt(),
		UpdatedAt:       b.UpdatedAt(),
		CancelledAt:     b.CancelledAt(),
	}
}

func BookingViewsFromDomain(bs []*booking.Booking) []*BookingView {
	out := make([]*BookingView, 0, len(bs))
	for _, b := range bs {
		out = append(out, BookingViewFromDomain(b))
	}
	return out
}

func ScheduleViewFromDomain(s *schedule.Schedule, isDefault bool) *ScheduleView {
	v := &ScheduleView{
		ProviderID:          s.ProviderID(),
		SlotDurationMinutes: s.SlotMinutes(),
		TimeZone:            s.Location().String(),
		Days:                make([]DayView, 0, schedule.DaysPerWeek),
		IsDefault:           isDefault,
	}
	if at := s.UpdatedAt(); !at.IsZero() {
		v.UpdatedAt = &at
	}
	for i, d := range s.Days() {
		day := DayView{Weekday: i, Name: time.Weekday(i).String(), Active: d.Active}
		if d.Active {
			day.Start = d.Start.String()
			day.End = d.End.String()
			if d.HasLunch {
				ls, le := d.LunchStart.String(), d.LunchEnd.String()
				day.LunchStart = &ls
				day.LunchEnd = &le
			}
		}
		v.Days = append(v.Days, day)
	}
	return v
}
