//go:build unit

package repository_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"scheduling-core/internal/domain/schedule"
	"scheduling-core/internal/infra"
	"scheduling-core/internal/infra/repository"
	"scheduling-core/internal/infra/sqlstore"
	"scheduling-core/internal/pkg/pgconv"
	"scheduling-core/tests/common/builder"
	repositorymock "scheduling-core/tests/mock/repository"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func clock(h, m int) pgtype.Time {
	return pgtype.Time{Microseconds: int64(h*60+m) * int64(time.Minute/time.Microsecond), Valid: true}
}

func TestScheduleRepository_Find(t *testing.T) {
	ctx := context.Background()
	providerID := builder.DefaultProviderID

	t.Run("success: rows rebuilt into a schedule", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockScheduleQueries(ctrl)
		mockDB := &mockDBTX{}

		mockQueries.EXPECT().GetProviderSchedule(ctx, mockDB, providerID).Return(sqlstore.ProviderSchedules{
			ProviderID:          providerID,
			SlotDurationMinutes: 45,
			TimeZone:            "America/New_York",
			UpdatedAt:           pgconv.TimeToPgtype(builder.At(8, 0)),
		}, nil)
		mockQueries.EXPECT().ListProviderScheduleDays(ctx, mockDB, providerID).Return([]sqlstore.ProviderScheduleDays{
			{ProviderID: providerID, Weekday: int16(time.Monday), Active: true, StartTime: clock(8, 0), EndTime: clock(16, 0), LunchStart: clock(12, 0), LunchEnd: clock(13, 0)},
			{ProviderID: providerID, Weekday: int16(time.Tuesday), Active: true, StartTime: clock(10, 0), EndTime: clock(14, 0)},
			{ProviderID: providerID, Weekday: int16(time.Sunday), Active: false},
		}, nil)

		got, err := repository.NewScheduleRepository(mockQueries).Find(ctx, mockDB, providerID)

		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, 45, got.SlotMinutes())
		assert.Equal(t, "America/New_York", got.Location().String())

		monday := got.Day(time.Monday)
		assert.True(t, monday.Active)
		assert.Equal(t, schedule.MustTimeOfDay(8, 0), monday.Start)
		assert.Equal(t, schedule.MustTimeOfDay(16, 0), monday.End)
		assert.True(t, monday.HasLunch)
		assert.Equal(t, schedule.MustTimeOfDay(12, 0), monday.LunchStart)

		assert.False(t, got.Day(time.Tuesday).HasLunch)
		assert.False(t, got.Day(time.Wednesday).Active)
		assert.False(t, got.Day(time.Sunday).Active)
	})

	t.Run("success: no schedule yet returns nil", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockScheduleQueries(ctrl)
		mockDB := &mockDBTX{}
		mockQueries.EXPECT().GetProviderSchedule(ctx, mockDB, providerID).Return(sqlstore.ProviderSchedules{}, pgx.ErrNoRows)

		got, err := repository.NewScheduleRepository(mockQueries).Find(ctx, mockDB, providerID)

		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("error: unknown time zone", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockScheduleQueries(ctrl)
		mockDB := &mockDBTX{}
		mockQueries.EXPECT().GetProviderSchedule(ctx, mockDB, providerID).Return(sqlstore.ProviderSchedules{
			ProviderID: providerID, SlotDurationMinutes: 30, TimeZone: "Mars/Olympus_Mons",
		}, nil)
		mockQueries.EXPECT().ListProviderScheduleDays(ctx, mockDB, providerID).Return(nil, nil)

		_, err := repository.NewScheduleRepository(mockQueries).Find(ctx, mockDB, providerID)

		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}

func TestScheduleRepository_Replace(t *testing.T) {
	ctx := context.Background()
	providerID := builder.DefaultProviderID
	s := schedule.Default(providerID, time.UTC)
	at := builder.At(7, 30)

	t.Run("success: head upserted and all seven days rewritten", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockScheduleQueries(ctrl)
		mockDB := &mockDBTX{}

		var inserted []sqlstore.ProviderScheduleDays
		gomock.InOrder(
			mockQueries.EXPECT().UpsertProviderSchedule(ctx, mockDB, gomock.Any()).
				DoAndReturn(func(_ context.Context, _ sqlstore.DBTX, arg sqlstore.UpsertProviderScheduleParams) error {
					assert.Equal(t, int32(30), arg.SlotDurationMinutes)
					assert.Equal(t, "UTC", arg.TimeZone)
					assert.True(t, arg.UpdatedAt.Time.Equal(at))
					return nil
				}),
			mockQueries.EXPECT().DeleteProviderScheduleDays(ctx, mockDB, providerID).Return(nil),
			mockQueries.EXPECT().InsertProviderScheduleDay(ctx, mockDB, gomock.Any()).
				DoAndReturn(func(_ context.Context, _ sqlstore.DBTX, arg sqlstore.ProviderScheduleDays) error {
					inserted = append(inserted, arg)
					return nil
				}).Times(schedule.DaysPerWeek),
		)

		err := repository.NewScheduleRepository(mockQueries).Replace(ctx, mockDB, s, at)

		require.NoError(t, err)
		require.Len(t, inserted, schedule.DaysPerWeek)
		assert.False(t, inserted[time.Sunday].Active)
		assert.True(t, inserted[time.Monday].Active)
		assert.Equal(t, clock(9, 0), inserted[time.Monday].StartTime)
		assert.Equal(t, clock(17, 0), inserted[time.Monday].EndTime)
		assert.False(t, inserted[time.Monday].LunchStart.Valid)
	})

	t.Run("error: day insert fails", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockScheduleQueries(ctrl)
		mockDB := &mockDBTX{}
		mockQueries.EXPECT().UpsertProviderSchedule(ctx, mockDB, gomock.Any()).Return(nil)
		mockQueries.EXPECT().DeleteProviderScheduleDays(ctx, mockDB, providerID).Return(nil)
		mockQueries.EXPECT().InsertProviderScheduleDay(ctx, mockDB, gomock.Any()).Return(errors.New("check constraint"))

		err := repository.NewScheduleRepository(mockQueries).Replace(ctx, mockDB, s, at)

		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}
