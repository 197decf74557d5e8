package availability

import (
	"time"

	"scheduling-core/internal/domain/booking"
	"scheduling-core/internal/domain/schedule"
	"scheduling-core/internal/domain/timerange"
	"scheduling-core/internal/pkg/errs"
)

var ErrUnknownBoundary = errs.New("unknown slot boundary")

// Boundary decides whether a slot that starts before closing but ends after it is offered.
type Boundary int

const (
	// BoundarySlotEnd offers a slot only if it ends at or before closing: floor(W/D) slots.
	BoundarySlotEnd Boundary = iota
	// BoundarySlotStart offers every slot that starts before closing: ceil(W/D) slots.
	BoundarySlotStart
)

const DefaultBoundary = BoundarySlotEnd

func (b Boundary) String() string {
	switch b {
	case BoundarySlotStart:
		return "start"
	default:
		return "end"
	}
}

func ParseBoundary(s string) (Boundary, error) {
	switch s {
	case "", "end":
		return BoundarySlotEnd, nil
	case "start":
		return BoundarySlotStart, nil
	default:
		return 0, errs.Mark(errs.Newf("unknown slot boundary %q", s), ErrUnknownBoundary)
	}
}

// Policy holds the values used when a provider has no schedule.
type Policy struct {
	Boundary     Boundary
	SlotDuration time.Duration
	Open         schedule.TimeOfDay
	Close        schedule.TimeOfDay
	Location     *time.Location
}

func DefaultPolicy() Policy {
	return Policy{
		Boundary:     DefaultBoundary,
		SlotDuration: schedule.DefaultSlotDuration,
		Open:         schedule.DefaultOpen,
		Close:        schedule.DefaultClose,
		Location:     time.UTC,
	}
}

// GenerateSlots lists the free slot starts on date under the default policy.
func GenerateSlots(sched *schedule.Schedule, weekday time.Weekday, date time.Time, existing []*booking.Booking, now time.Time) []time.Time {
	return DefaultPolicy().Generate(sched, weekday, date, existing, now)
}

// Generate walks the opening window of weekday, anchored to the calendar date of
// date, in slot-duration steps. A candidate [t, t+d) is dropped if t is before
// now, or if it overlaps lunch or any non-cancelled booking. The result is
// ascending; the inputs are not modified.
func (p Policy) Generate(sched *schedule.Schedule, weekday time.Weekday, date time.Time, existing []*booking.Booking, now time.Time) []time.Time {
	window, lunch, hasLunch, d, loc, ok := p.resolve(sched, weekday)
	if !ok || d <= 0 {
		return nil
	}

	day := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, loc)
	open := window.On(day, loc)
	var lunchRange timerange.Interval
	if hasLunch {
		lunchRange = lunch.On(day, loc)
	}

	busy := make([]timerange.Interval, 0, len(existing))
	for _, b := range existing {
		if b == nil || b.IsCancelled() {
			continue
		}
		busy = append(busy, b.Interval())
	}

	var slots []time.Time
	for t := open.Start; p.fits(t, d, open.End); t = t.Add(d) {
		if t.Before(now) {
			continue
		}
		candidate := timerange.Of(t, d)
		if hasLunch && candidate.Overlaps(lunchRange) {
			continue
		}
		if overlapsAny(candidate, busy) {
			continue
		}
		slots = append(slots, t)
	}
	return slots
}

func (p Policy) fits(t time.Time, d time.Duration, closing time.Time) bool {
	if p.Boundary == BoundarySlotStart {
		return t.Before(closing)
	}
	return !t.Add(d).After(closing)
}

func (p Policy) resolve(sched *schedule.Schedule, weekday time.Weekday) (window, lunch schedule.TimeRange, hasLunch bool, d time.Duration, loc *time.Location, ok bool) {
	if sched == nil {
		loc = p.Location
		if loc == nil {
			loc = time.UTC
		}
		d = p.SlotDuration
		if d <= 0 {
			d = schedule.DefaultSlotDuration
		}
		open, closing := p.Open, p.Close
		if open >= closing {
			open, closing = schedule.DefaultOpen, schedule.DefaultClose
		}
		return schedule.TimeRange{Start: open, End: closing}, schedule.TimeRange{}, false, d, loc, true
	}

	window, ok = sched.WindowFor(weekday)
	if !ok {
		return
	}
	lunch, hasLunch = sched.LunchFor(weekday)
	d = sched.SlotDuration()
	if d <= 0 {
		d = schedule.DefaultSlotDuration
	}
	return window, lunch, hasLunch, d, sched.Location(), true
}

func overlapsAny(candidate timerange.Interval, busy []timerange.Interval) bool {
	for _, b := range busy {
		if timerange.Overlaps(candidate, b) {
			return true
		}
	}
	return false
}
