//go:build unit

package booking_test

import (
	"testing"

	"scheduling-core/internal/domain/booking"
	"scheduling-core/internal/domain/timerange"
	"scheduling-core/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdmit(t *testing.T) {
	existing := stored(builder.At(10, 0), builder.At(11, 0))
	all := []*booking.Booking{existing}
	overlapping := timerange.Interval{Start: builder.At(10, 30), End: builder.At(11, 30)}
	free := timerange.Interval{Start: builder.At(11, 0), End: builder.At(11, 30)}

	t.Run("self-service into a free range", func(t *testing.T) {
		conflicts, err := booking.Admit(free, all, booking.Admission{Mode: booking.ModeSelfService})
		require.NoError(t, err)
		assert.Empty(t, conflicts)
	})

	t.Run("self-service collision is rejected", func(t *testing.T) {
		_, err := booking.Admit(overlapping, all, booking.Admission{Mode: booking.ModeSelfService})
		require.ErrorIs(t, err, booking.ErrSlotUnavailable)

		var slotErr *booking.SlotUnavailableError
		require.ErrorAs(t, err, &slotErr)
		assert.Equal(t, []*booking.Booking{existing}, slotErr.Conflicts)
	})

	t.Run("self-service ignores force confirm", func(t *testing.T) {
		_, err := booking.Admit(overlapping, all, booking.Admission{Mode: booking.ModeSelfService, ForceConfirm: true})
		require.ErrorIs(t, err, booking.ErrSlotUnavailable)
	})

	t.Run("manual override asks for confirmation", func(t *testing.T) {
		_, err := booking.Admit(overlapping, all, booking.Admission{Mode: booking.ModeManualOverride})
		require.ErrorIs(t, err, booking.ErrCollisionConfirmationRequired)

		var confirmErr *booking.CollisionConfirmationRequiredError
		require.ErrorAs(t, err, &confirmErr)
		assert.Equal(t, []*booking.Booking{existing}, confirmErr.Conflicts)
	})

	t.Run("confirmed manual override is accepted with its conflicts", func(t *testing.T) {
		conflicts, err := booking.Admit(overlapping, all, booking.Admission{Mode: booking.ModeManualOverride, ForceConfirm: true})
		require.NoError(t, err)
		assert.Equal(t, []*booking.Booking{existing}, conflicts)
	})

	t.Run("editing a booking does not collide with itself", func(t *testing.T) {
		moved := timerange.Interval{Start: builder.At(10, 15), End: builder.At(11, 15)}
		_, err := booking.Admit(moved, all, booking.Admission{Mode: booking.ModeSelfService, ExcludeID: existing.ID()})
		require.NoError(t, err)
	})

	t.Run("empty range is invalid before any collision check", func(t *testing.T) {
		empty := timerange.Interval{Start: builder.At(10, 30), End: builder.At(10, 30)}
		_, err := booking.Admit(empty, all, booking.Admission{Mode: booking.ModeSelfService})
		require.ErrorIs(t, err, booking.ErrInvalidInterval)
	})

	t.Run("unknown mode", func(t *testing.T) {
		_, err := booking.Admit(free, all, booking.Admission{Mode: "walk_in", ExcludeID: uuid.Nil})
		require.ErrorIs(t, err, booking.ErrInvalidMode)
	})
}
