package queries

import (
	"context"
	"time"

	"scheduling-core/internal/domain/availability"
	"scheduling-core/internal/domain/schedule"
	"scheduling-core/internal/domain/timerange"
	"scheduling-core/internal/pkg/clock"

	"github.com/google/uuid"
)

const DateLayout = "2006-01-02"

type AvailabilityQueries interface {
	// Slots lists the free slot starts of providerID on the calendar date of date.
	Slots(ctx context.Context, providerID uuid.UUID, date time.Time) (*SlotsView, error)
}

type availabilityQueriesImpl struct {
	schedules ScheduleReadStore
	bookings  BookingReadStore
	policy    availability.Policy
	clock     clock.Clock
}

func NewAvailabilityQueries(schedules ScheduleReadStore, bookings BookingReadStore, policy availability.Policy, clk clock.Clock) AvailabilityQueries {
	return &availabilityQueriesImpl{schedules: schedules, bookings: bookings, policy: policy, clock: clk}
}

func (q *availabilityQueriesImpl) Slots(ctx context.Context, providerID uuid.UUID, date time.Time) (*SlotsView, error) {
	sched, err := q.schedules.Find(ctx, providerID)
	if err != nil {
		return nil, err
	}

	loc := q.policy.Location
	d := q.policy.SlotDuration
	if sched != nil {
		loc = sched.Location()
		d = sched.SlotDuration()
	}
	if loc == nil {
		loc = time.UTC
	}
	if d <= 0 {
		d = schedule.DefaultSlotDuration
	}

	day := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, loc)
	existing, err := q.bookings.ListActiveOverlapping(ctx, providerID, timerange.Day(day, loc))
	if err != nil {
		return nil, err
	}

	slots := q.policy.Generate(sched, day.Weekday(), day, existing, q.clock.Now())
	if slots == nil {
		slots = []time.Time{}
	}
	return &SlotsView{
		ProviderID:          providerID,
		Date:                day.Format(DateLayout),
		TimeZone:            loc.String(),
		SlotDurationMinutes: int(d / time.Minute),
		Slots:               slots,
	}, nil
}
