package request

import (
	"errors"
	"time"

	"scheduling-core/internal/domain/schedule"
	"scheduling-core/internal/usecase/commands"
)

type DayHoursRequest struct {
	Weekday    int     `json:"weekday" binding:"min=0,max=6"`
	Active     bool    `json:"active"`
	Start      string  `json:"start,omitempty"`
	End        string  `json:"end,omitempty"`
	LunchStart *string `json:"lunch_start,omitempty"`
	LunchEnd   *string `json:"lunch_end,omitempty"`
}

type ReplaceScheduleRequest struct {
	SlotDurationMinutes int               `json:"slot_duration_minutes" binding:"required,min=5,max=480"`
	TimeZone            string            `json:"time_zone,omitempty" binding:"max=64"`
	Days                []DayHoursRequest `json:"days" binding:"required,len=7,dive"`
}

// ToInput parses the HH:MM fields. Each weekday must appear exactly once.
func (r ReplaceScheduleRequest) ToInput() (commands.ReplaceScheduleInput, error) {
	in := commands.ReplaceScheduleInput{SlotMinutes: r.SlotDurationMinutes, TimeZone: r.TimeZone}

	var seen [schedule.DaysPerWeek]bool
	for _, d := range r.Days {
		day := time.Weekday(d.Weekday)
		if seen[d.Weekday] {
			return in, &schedule.InvalidScheduleError{Weekday: day, Reason: "weekday listed more than once"}
		}
		seen[d.Weekday] = true

		hours, err := d.toDomain()
		if err != nil {
			return in, &schedule.InvalidScheduleError{Weekday: day, Reason: err.Error()}
		}
		in.Days[d.Weekday] = hours
	}
	return in, nil
}

func (d DayHoursRequest) toDomain() (schedule.DayHours, error) {
	if !d.Active {
		return schedule.DayHours{}, nil
	}
	start, err := schedule.ParseTimeOfDay(d.Start)
	if err != nil {
		return schedule.DayHours{}, err
	}
	end, err := schedule.ParseTimeOfDay(d.End)
	if err != nil {
		return schedule.DayHours{}, err
	}
	hours := schedule.DayHours{Active: true, Start: start, End: end}

	if d.LunchStart == nil && d.LunchEnd == nil {
		return hours, nil
	}
	if d.LunchStart == nil || d.LunchEnd == nil {
		return schedule.DayHours{}, errors.New("lunch needs both start and end")
	}
	if hours.LunchStart, err = schedule.ParseTimeOfDay(*d.LunchStart); err != nil {
		return schedule.DayHours{}, err
	}
	if hours.LunchEnd, err = schedule.ParseTimeOfDay(*d.LunchEnd); err != nil {
		return schedule.DayHours{}, err
	}
	hours.HasLunch = true
	return hours, nil
}
