//go:build unit

package booking_test

import (
	"testing"
	"time"

	"scheduling-core/internal/domain/booking"
	"scheduling-core/internal/domain/timerange"
	"scheduling-core/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stored(start, end time.Time) *booking.Booking {
	return builder.NewBookingBuilder().WithRange(start, end).BuildStored()
}

func TestFindCollisions(t *testing.T) {
	a := stored(builder.At(9, 0), builder.At(10, 0))
	b := stored(builder.At(10, 0), builder.At(11, 0))
	c := stored(builder.At(9, 30), builder.At(10, 30))
	cancelled := builder.NewBookingBuilder().WithRange(builder.At(9, 0), builder.At(12, 0)).AsCancelled().BuildStored()
	existing := []*booking.Booking{a, cancelled, b, c}

	t.Run("returns overlapping active bookings in input order", func(t *testing.T) {
		got := booking.FindCollisions(timerange.Interval{Start: builder.At(9, 45), End: builder.At(10, 15)}, existing, uuid.Nil)
		assert.Equal(t, []*booking.Booking{a, b, c}, got)
	})

	t.Run("touching ranges do not collide", func(t *testing.T) {
		got := booking.FindCollisions(timerange.Interval{Start: builder.At(11, 0), End: builder.At(12, 0)}, existing, uuid.Nil)
		assert.Empty(t, got)
	})

	t.Run("excluded id is skipped", func(t *testing.T) {
		got := booking.FindCollisions(timerange.Interval{Start: builder.At(9, 0), End: builder.At(9, 15)}, existing, a.ID())
		assert.Empty(t, got)
	})

	t.Run("multi-day block collides with anything inside it", func(t *testing.T) {
		block := builder.NewBookingBuilder().AsBlocked().WithRange(builder.At(0, 0), builder.At(0, 0).AddDate(0, 0, 2)).BuildStored()
		got := booking.FindCollisions(timerange.Interval{Start: builder.At(0, 0).AddDate(0, 0, 1), End: builder.At(0, 30).AddDate(0, 0, 1)}, []*booking.Booking{block}, uuid.Nil)
		require.Len(t, got, 1)
		assert.Same(t, block, got[0])
	})
}

func TestOverlaps_Symmetric(t *testing.T) {
	points := []time.Time{builder.At(9, 0), builder.At(9, 30), builder.At(10, 0), builder.At(10, 30)}
	var ranges []timerange.Interval
	for i := range points {
		for j := i + 1; j < len(points); j++ {
			ranges = append(ranges, timerange.Interval{Start: points[i], End: points[j]})
		}
	}
	for _, x := range ranges {
		for _, y := range ranges {
			assert.Equal(t, booking.Overlaps(x, y), booking.Overlaps(y, x), "%s vs %s", x, y)
		}
	}
}
