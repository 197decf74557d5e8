package request

import (
	"strings"
	"time"

	"scheduling-core/internal/domain/booking"

	"github.com/google/uuid"
)

type BookingRequest struct {
	ClientID     *uuid.UUID `json:"client_id,omitempty"`
	StartTime    time.Time  `json:"start_time" binding:"required"`
	EndTime      time.Time  `json:"end_time" binding:"required"`
	Type         string     `json:"type,omitempty" binding:"omitempty,oneof=appointment blocked"`
	DisplayName  string     `json:"display_name,omitempty" binding:"max=120"`
	Notes        string     `json:"notes,omitempty" binding:"max=1000"`
	ForceConfirm bool       `json:"force_confirm,omitempty"`
}

func (r BookingRequest) ToDraft(providerID uuid.UUID) booking.Draft {
	kind := booking.TypeAppointment
	if r.Type != "" {
		kind = booking.Type(r.Type)
	}
	return booking.Draft{
		ProviderID:  providerID,
		ClientID:    r.ClientID,
		Start:       r.StartTime,
		End:         r.EndTime,
		Type:        kind,
		DisplayName: strings.TrimSpace(r.DisplayName),
		Notes:       strings.TrimSpace(r.Notes),
	}
}

type UpdateBookingRequest struct {
	BookingRequest
	Mode string `json:"mode" binding:"required,oneof=self_service manual_override"`
}

func (r UpdateBookingRequest) GetMode() booking.Mode {
	return booking.Mode(r.Mode)
}

type CollisionCheckRequest struct {
	StartTime time.Time  `json:"start_time" binding:"required"`
	EndTime   time.Time  `json:"end_time" binding:"required"`
	ExcludeID *uuid.UUID `json:"exclude_id,omitempty"`
}

func (r CollisionCheckRequest) ToDraft(providerID uuid.UUID) booking.Draft {
	return booking.Draft{ProviderID: providerID, Start: r.StartTime, End: r.EndTime, Type: booking.TypeAppointment}
}

func (r CollisionCheckRequest) GetExcludeID() uuid.UUID {
	if r.ExcludeID == nil {
		return uuid.Nil
	}
	return *r.ExcludeID
}
