package timerange

import (
	"fmt"
	"time"

	"scheduling-core/internal/pkg/errs"
)

var ErrEmptyInterval = errs.New("start time must be before end time")

// Interval is the half-open range [Start, End).
type Interval struct {
	Start time.Time
	End   time.Time
}

func New(start, end time.Time) (Interval, error) {
	if !start.Before(end) {
		return Interval{}, ErrEmptyInterval
	}
	return Interval{Start: start, End: end}, nil
}

// Of builds an interval from a start and a length.
func Of(start time.Time, d time.Duration) Interval {
	return Interval{Start: start, End: start.Add(d)}
}

// Overlaps reports whether [s1,e1) and [s2,e2) share any instant.
// Touching intervals (e1 == s2) do not overlap.
func Overlaps(a, b Interval) bool {
	return a.Start.Before(b.End) && b.Start.Before(a.End)
}

func (i Interval) Overlaps(other Interval) bool {
	return Overlaps(i, other)
}

func (i Interval) Duration() time.Duration {
	return i.End.Sub(i.Start)
}

func (i Interval) IsValid() bool {
	return i.Start.Before(i.End)
}

func (i Interval) Contains(t time.Time) bool {
	return !t.Before(i.Start) && t.Before(i.End)
}

func (i Interval) String() string {
	return fmt.Sprintf("[%s,%s)", i.Start.Format(time.RFC3339), i.End.Format(time.RFC3339))
}

// Day returns the calendar day containing date in loc as [00:00, next 00:00).
// DST transitions are handled by building both ends with time.Date.
func Day(date time.Time, loc *time.Location) Interval {
	d := date.In(loc)
	start := time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, loc)
	end := time.Date(d.Year(), d.Month(), d.Day()+1, 0, 0, 0, 0, loc)
	return Interval{Start: start, End: end}
}

// Steps counts how many whole steps of d fit into the interval.
func (i Interval) Steps(d time.Duration) int {
	if d <= 0 || !i.IsValid() {
		return 0
	}
	return int(i.Duration() / d)
}
