package shared

import (
	"scheduling-core/internal/domain/booking"
)

// BookingChange is the outcome of a successful lifecycle command, handed back
// so the caller can update its local view without waiting for the change feed.
type BookingChange struct {
	Booking *booking.Booking
	// Accepted holds the collisions a confirmed manual override was allowed to overlap.
	Accepted []*booking.Booking
}
