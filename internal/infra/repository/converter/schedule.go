package converter

import (
	"fmt"
	"time"

	"scheduling-core/internal/domain/schedule"
	"scheduling-core/internal/infra/sqlstore"
	"scheduling-core/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5/pgtype"
)

func ScheduleToParams(s *schedule.Schedule, at time.Time) (sqlstore.UpsertProviderScheduleParams, []sqlstore.ProviderScheduleDays) {
	head := sqlstore.UpsertProviderScheduleParams{
		ProviderID:          s.ProviderID(),
		SlotDurationMinutes: int32(s.SlotMinutes()),
		TimeZone:            s.Location().String(),
		UpdatedAt:           pgconv.TimeToPgtype(at),
	}

	days := make([]sqlstore.ProviderScheduleDays, 0, schedule.DaysPerWeek)
	for i, d := range s.Days() {
		row := sqlstore.ProviderScheduleDays{
			ProviderID: s.ProviderID(),
			Weekday:    int16(i),
			Active:     d.Active,
		}
		if d.Active {
			row.StartTime = timeOfDayToPgtype(d.Start)
			row.EndTime = timeOfDayToPgtype(d.End)
			if d.HasLunch {
				row.LunchStart = timeOfDayToPgtype(d.LunchStart)
				row.LunchEnd = timeOfDayToPgtype(d.LunchEnd)
			}
		}
		days = append(days, row)
	}
	return head, days
}

// ScheduleFromRows rebuilds a schedule. Weekdays missing from days stay inactive.
func ScheduleFromRows(head sqlstore.ProviderSchedules, days []sqlstore.ProviderScheduleDays) (*schedule.Schedule, error) {
	loc, err := time.LoadLocation(head.TimeZone)
	if err != nil {
		return nil, fmt.Errorf("provider %s has invalid time zone %q: %w", head.ProviderID, head.TimeZone, err)
	}

	var week [schedule.DaysPerWeek]schedule.DayHours
	for _, row := range days {
		if row.Weekday < 0 || int(row.Weekday) >= schedule.DaysPerWeek {
			continue
		}
		d := schedule.DayHours{Active: row.Active}
		if row.Active {
			d.Start = timeOfDayFromPgtype(row.StartTime)
			d.End = timeOfDayFromPgtype(row.EndTime)
			if row.LunchStart.Valid && row.LunchEnd.Valid {
				d.HasLunch = true
				d.LunchStart = timeOfDayFromPgtype(row.LunchStart)
				d.LunchEnd = timeOfDayFromPgtype(row.LunchEnd)
			}
		}
		week[row.Weekday] = d
	}

	return schedule.Reconstruct(
		head.ProviderID,
		time.Duration(head.SlotDurationMinutes)*time.Minute,
		loc,
		week,
		pgconv.TimeFromPgtype(head.UpdatedAt),
	), nil
}

func timeOfDayToPgtype(t schedule.TimeOfDay) pgtype.Time {
	return pgtype.Time{Microseconds: int64(t) * int64(time.Minute/time.Microsecond), Valid: true}
}

func timeOfDayFromPgtype(t pgtype.Time) schedule.TimeOfDay {
	if !t.Valid {
		return 0
	}
	return schedule.TimeOfDay(t.Microseconds / int64(time.Minute/time.Microsecond))
}
