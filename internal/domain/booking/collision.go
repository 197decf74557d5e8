package booking

import (
	"scheduling-core/internal/domain/timerange"

	"github.com/google/uuid"
)

// Overlaps is the half-open overlap test used everywhere a booking is compared to a range.
func Overlaps(a, b timerange.Interval) bool {
	return timerange.Overlaps(a, b)
}

// FindCollisions returns the active bookings in existing that overlap candidate,
// in input order. A booking whose id equals exclude is skipped so an edit does
// not collide with itself; pass uuid.Nil to exclude nothing.
func FindCollisions(candidate timerange.Interval, existing []*Booking, exclude uuid.UUID) []*Booking {
	var out []*Booking
	for _, b := range existing {
		if b == nil || b.IsCancelled() {
			continue
		}
		if exclude != uuid.Nil && b.id == exclude {
			continue
		}
		if Overlaps(candidate, b.interval) {
			out = append(out, b)
		}
	}
	return out
}
