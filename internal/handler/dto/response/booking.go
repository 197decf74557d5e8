package response

import (
	"time"

	"scheduling-core/internal/domain/booking"
	"scheduling-core/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type BookingResponse struct {
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

func FromBookingView(v *queries.BookingView) *BookingResponse {
	if v == nil {
		return nil
	}
	var res BookingResponse
	// field names and types match the view one to one
	_ = copier.CopyWithOption(&res, v, copier.Option{DeepCopy: true})
	return &res
}

func FromBookingViews(vs []*queries.BookingView) []*BookingResponse {
	res := make([]*BookingResponse, len(vs))
	for i, v := range vs {
		res[i] = FromBookingView(v)
	}
	return res
}

func FromBooking(b *booking.Booking) *BookingResponse {
	return FromBookingView(queries.BookingViewFromDomain(b))
}

func FromBookings(bs []*booking.Booking) []*BookingResponse {
	return FromBookingViews(queries.BookingViewsFromDomain(bs))
}

// BookingWriteResponse answers a create or update. Overridden lists the
// bookings a confirmed manual override was allowed to overlap.
type BookingWriteResponse struct {
	Booking    *BookingResponse   `json:"booking"`
	Overridden []*BookingResponse `json:"overridden,omitempty"`
}

type CollisionsResponse struct {
	Conflicts []*BookingResponse `json:"conflicts"`
}

func NewCollisionsResponse(bs []*booking.Booking) *CollisionsResponse {
	return &CollisionsResponse{Conflicts: FromBookings(bs)}
}
