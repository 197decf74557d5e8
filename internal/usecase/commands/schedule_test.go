//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"scheduling-core/internal/domain/schedule"
	"scheduling-core/internal/pkg/clock"
	"scheduling-core/internal/usecase/commands"
	"scheduling-core/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func weekdays(open, closing schedule.TimeOfDay) [schedule.DaysPerWeek]schedule.DayHours {
	var days [schedule.DaysPerWeek]schedule.DayHours
	for d := time.Monday; d <= time.Friday; d++ {
		days[d] = schedule.DayHours{Active: true, Start: open, End: closing}
	}
	return days
}

func TestScheduleCommands_Replace(t *testing.T) {
	ctx := context.Background()
	now := builder.At(7, 0)

	t.Run("valid schedule replaces the stored one", func(t *testing.T) {
		store := newMemoryStore()
		cmds := commands.NewScheduleUseCase(store, clock.NewMockClock(now), "UTC")
		days := weekdays(schedule.MustTimeOfDay(8, 0), schedule.MustTimeOfDay(12, 0))
		days[time.Wednesday].HasLunch = true
		days[time.Wednesday].LunchStart = schedule.MustTimeOfDay(10, 0)
		days[time.Wednesday].LunchEnd = schedule.MustTimeOfDay(10, 30)

		saved, err := cmds.Replace(ctx, builder.DefaultProviderID, commands.ReplaceScheduleInput{
			SlotMinutes: 20,
			TimeZone:    "Asia/Tokyo",
			Days:        days,
		})

		require.NoError(t, err)
		assert.Equal(t, 20, saved.SlotMinutes())
		assert.Equal(t, "Asia/Tokyo", saved.Location().String())
		assert.True(t, now.Equal(saved.UpdatedAt()))

		stored := store.schedules[builder.DefaultProviderID]
		require.NotNil(t, stored)
		lunch, ok := stored.LunchFor(time.Wednesday)
		require.True(t, ok)
		assert.Equal(t, schedule.MustTimeOfDay(10, 0), lunch.Start)
		assert.Equal(t, []uuid.UUID{builder.DefaultProviderID}, store.locks)
	})

	t.Run("empty time zone falls back to default", func(t *testing.T) {
		store := newMemoryStore()
		cmds := commands.NewScheduleUseCase(store, clock.NewMockClock(now), "Europe/Paris")

		saved, err := cmds.Replace(ctx, builder.DefaultProviderID, commands.ReplaceScheduleInput{
			SlotMinutes: 30,
			Days:        weekdays(schedule.DefaultOpen, schedule.DefaultClose),
		})

		require.NoError(t, err)
		assert.Equal(t, "Europe/Paris", saved.Location().String())
	})

	t.Run("invalid weekday is rejected before writing", func(t *testing.T) {
		store := newMemoryStore()
		cmds := commands.NewScheduleUseCase(store, clock.NewMockClock(now), "UTC")
		days := weekdays(schedule.DefaultOpen, schedule.DefaultClose)
		days[time.Thursday].HasLunch = true
		days[time.Thursday].LunchStart = schedule.MustTimeOfDay(16, 30)
		days[time.Thursday].LunchEnd = schedule.MustTimeOfDay(17, 30)

		_, err := cmds.Replace(ctx, builder.DefaultProviderID, commands.ReplaceScheduleInput{SlotMinutes: 30, Days: days})

		require.Error(t, err)
		var invalid *schedule.InvalidScheduleError
		require.True(t, errors.As(err, &invalid))
		assert.Equal(t, time.Thursday, invalid.Weekday)
		assert.Empty(t, store.schedules)
		assert.Empty(t, store.locks)
	})

	t.Run("unknown time zone", func(t *testing.T) {
		store := newMemoryStore()
		cmds := commands.NewScheduleUseCase(store, clock.NewMockClock(now), "UTC")

		_, err := cmds.Replace(ctx, builder.DefaultProviderID, commands.ReplaceScheduleInput{
			SlotMinutes: 30,
			TimeZone:    "Atlantis/Central",
			Days:        weekdays(schedule.DefaultOpen, schedule.DefaultClose),
		})

		assert.ErrorIs(t, err, schedule.ErrInvalidSchedule)
	})
}

