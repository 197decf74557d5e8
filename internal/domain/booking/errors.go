package booking

import (
	"fmt"

	"scheduling-core/internal/pkg/errs"
)

var (
	ErrInvalidInterval               = errs.New("booking start must be before end")
	ErrInvalidType                   = errs.New("invalid booking type")
	ErrInvalidMode                   = errs.New("invalid booking mode")
	ErrBlockedWithClient             = errs.New("blocked period cannot reference a client")
	ErrBlockedRequiresManual         = errs.New("blocked periods can only be entered manually")
	ErrClientRequired                = errs.New("self-service booking requires a client")
	ErrAlreadyCancelled              = errs.New("booking is already cancelled")
	ErrSlotUnavailable               = errs.New("slot unavailable")
	ErrCollisionConfirmationRequired = errs.New("collision confirmation required")
)

// SlotUnavailableError rejects a self-service booking that collides with existing ones.
type SlotUnavailableError struct {
	Conflicts []*Booking
}

func (e *SlotUnavailableError) Error() string {
	return fmt.Sprintf("slot unavailable: collides with %d booking(s)", len(e.Conflicts))
}

func (e *SlotUnavailableError) Is(target error) bool {
	return target == ErrSlotUnavailable
}

// CollisionConfirmationRequiredError carries the conflicting set so the caller
// can prompt and re-invoke with forceConfirm, or abandon.
type CollisionConfirmationRequiredError struct {
	Conflicts []*Booking
}

func (e *CollisionConfirmationRequiredError) Error() string {
	return fmt.Sprintf("collision confirmation required: collides with %d booking(s)", len(e.Conflicts))
}

func (e *CollisionConfirmationRequiredError) Is(target error) bool {
	return target == ErrCollisionConfirmationRequired
}
