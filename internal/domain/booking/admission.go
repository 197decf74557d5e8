package booking

import (
	"scheduling-core/internal/domain/timerange"

	"github.com/google/uuid"
)

// Admission describes how a candidate range is checked against the provider's bookings.
type Admission struct {
	Mode         Mode
	ForceConfirm bool
	// ExcludeID is the booking being edited, uuid.Nil on create.
	ExcludeID uuid.UUID
}

// Admit applies the collision policy of the mode. On success it returns the
// conflicts that were accepted, which is only ever non-empty for a confirmed
// manual override.
func Admit(candidate timerange.Interval, existing []*Booking, a Admission) ([]*Booking, error) {
	if !a.Mode.IsValid() {
		return nil, ErrInvalidMode
	}
	if !candidate.IsValid() {
		return nil, ErrInvalidInterval
	}
	conflicts := FindCollisions(candidate, existing, a.ExcludeID)
	if len(conflicts) == 0 {
		return nil, nil
	}
	switch a.Mode {
	case ModeSelfService:
		return nil, &SlotUnavailableError{Conflicts: conflicts}
	case ModeManualOverride:
		if !a.ForceConfirm {
			return nil, &CollisionConfirmationRequiredError{Conflicts: conflicts}
		}
	}
	return conflicts, nil
}
