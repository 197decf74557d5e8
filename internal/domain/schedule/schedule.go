package schedule

import (
	"time"

	"scheduling-core/internal/domain/timerange"

	"github.com/google/uuid"
)

const (
	DefaultSlotDuration = 30 * time.Minute
	DaysPerWeek         = 7
)

var (
	DefaultOpen  = MustTimeOfDay(9, 0)
	DefaultClose = MustTimeOfDay(17, 0)
)

type DayHours struct {
	Active     bool
	Start      TimeOfDay
	End        TimeOfDay
	HasLunch   bool
	LunchStart TimeOfDay
	LunchEnd   TimeOfDay
}

func (d DayHours) validate(day time.Weekday) error {
	if !d.Active {
		return nil
	}
	if d.Start >= d.End {
		return invalid(day, "start %s must be before end %s", d.Start, d.End)
	}
	if !d.HasLunch {
		return nil
	}
	if d.LunchStart >= d.LunchEnd {
		return invalid(day, "lunch start %s must be before lunch end %s", d.LunchStart, d.LunchEnd)
	}
	if d.LunchStart < d.Start || d.LunchEnd > d.End {
		return invalid(day, "lunch %s-%s must fall within %s-%s", d.LunchStart, d.LunchEnd, d.Start, d.End)
	}
	return nil
}

// Schedule is a provider's weekly opening hours. It is replaced as a whole,
// never patched per weekday.
type Schedule struct {
	providerID   uuid.UUID
	slotDuration time.Duration
	location     *time.Location
	days         [DaysPerWeek]DayHours
	updatedAt    time.Time
}

// New validates every weekday and fails with InvalidScheduleError on the first violation.
func New(providerID uuid.UUID, slotMinutes int, loc *time.Location, days [DaysPerWeek]DayHours) (*Schedule, error) {
	if slotMinutes <= 0 {
		return nil, invalid(-1, "slot duration must be positive, got %d minutes", slotMinutes)
	}
	for i, d := range days {
		if err := d.validate(time.Weekday(i)); err != nil {
			return nil, err
		}
	}
	if loc == nil {
		loc = time.UTC
	}
	return &Schedule{
		providerID:   providerID,
		slotDuration: time.Duration(slotMinutes) * time.Minute,
		location:     loc,
		days:         days,
	}, nil
}

// Default is the schedule a provider gets at onboarding: weekdays 09:00-17:00, 30 minute slots.
func Default(providerID uuid.UUID, loc *time.Location) *Schedule {
	var days [DaysPerWeek]DayHours
	for d := time.Monday; d <= time.Friday; d++ {
		days[d] = DayHours{Active: true, Start: DefaultOpen, End: DefaultClose}
	}
	s, _ := New(providerID, int(DefaultSlotDuration/time.Minute), loc, days)
	return s
}

func Reconstruct(providerID uuid.UUID, slotDuration time.Duration, loc *time.Location, days [DaysPerWeek]DayHours, updatedAt time.Time) *Schedule {
	if loc == nil {
		loc = time.UTC
	}
	return &Schedule{
		providerID:   providerID,
		slotDuration: slotDuration,
		location:     loc,
		days:         days,
		updatedAt:    updatedAt,
	}
}

// TimeRange is an open/close pair on a single day.
type TimeRange struct {
	Start TimeOfDay
	End   TimeOfDay
}

// On anchors the range to a calendar day.
func (r TimeRange) On(day time.Time, loc *time.Location) timerange.Interval {
	return timerange.Interval{Start: r.Start.On(day, loc), End: r.End.On(day, loc)}
}

// WindowFor returns the opening window, or false if the weekday is inactive.
func (s *Schedule) WindowFor(day time.Weekday) (TimeRange, bool) {
	d := s.days[day]
	if !d.Active {
		return TimeRange{}, false
	}
	return TimeRange{Start: d.Start, End: d.End}, true
}

// LunchFor returns the lunch break, or false if the weekday is inactive or has none.
func (s *Schedule) LunchFor(day time.Weekday) (TimeRange, bool) {
	d := s.days[day]
	if !d.Active || !d.HasLunch {
		return TimeRange{}, false
	}
	return TimeRange{Start: d.LunchStart, End: d.LunchEnd}, true
}

func (s *Schedule) ProviderID() uuid.UUID       { return s.providerID }
func (s *Schedule) SlotDuration() time.Duration { return s.slotDuration }
func (s *Schedule) Location() *time.Location    { return s.location }
func (s *Schedule) Days() [DaysPerWeek]DayHours { return s.days }
func (s *Schedule) Day(d time.Weekday) DayHours { return s.days[d] }
func (s *Schedule) UpdatedAt() time.Time        { return s.updatedAt }
func (s *Schedule) SlotMinutes() int            { return int(s.slotDuration / time.Minute) }

// LoadLocation resolves an IANA zone name; an empty name means UTC.
func LoadLocation(name string) (*time.Location, error) {
	if name == "" {
		return time.UTC, nil
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, invalid(-1, "unknown time zone %q", name)
	}
	return loc, nil
}
