package schedule

import (
	"fmt"
	"time"

	"scheduling-core/internal/pkg/errs"
)

var ErrInvalidSchedule = errs.New("invalid schedule")

// InvalidScheduleError reports a per-weekday entry that breaks the ordering rules.
// It is never auto-corrected.
type InvalidScheduleError struct {
	Weekday time.Weekday
	Reason  string
}

func (e *InvalidScheduleError) Error() string {
	if e.Weekday < 0 {
		return fmt.Sprintf("invalid schedule: %s", e.Reason)
	}
	return fmt.Sprintf("invalid schedule for %s: %s", e.Weekday, e.Reason)
}

func (e *InvalidScheduleError) Is(target error) bool {
	return target == ErrInvalidSchedule
}

func invalid(day time.Weekday, format string, args ...any) error {
	return &InvalidScheduleError{Weekday: day, Reason: fmt.Sprintf(format, args...)}
}
