package commands

import (
	"context"

	"scheduling-core/internal/domain/schedule"
	"scheduling-core/internal/pkg/clock"
	"scheduling-core/internal/usecase/shared"

	"github.com/google/uuid"
)

type ReplaceScheduleInput struct {
	SlotMinutes int
	// TimeZone is an IANA zone name; empty keeps the configured default.
	TimeZone string
	Days     [schedule.DaysPerWeek]schedule.DayHours
}

type ScheduleCommands interface {
	// Replace swaps the provider's whole weekly schedule in one transaction.
	Replace(ctx context.Context, providerID uuid.UUID, in ReplaceScheduleInput) (*schedule.Schedule, error)
}

type scheduleUseCaseImpl struct {
	uow       shared.UnitOfWork
	clock     clock.Clock
	defaultTZ string
}

func NewScheduleUseCase(uow shared.UnitOfWork, clk clock.Clock, defaultTZ string) ScheduleCommands {
	return &scheduleUseCaseImpl{uow: uow, clock: clk, defaultTZ: defaultTZ}
}

func (uc *scheduleUseCaseImpl) Replace(ctx context.Context, providerID uuid.UUID, in ReplaceScheduleInput) (*schedule.Schedule, error) {
	tz := in.TimeZone
	if tz == "" {
		tz = uc.defaultTZ
	}
	loc, err := schedule.LoadLocation(tz)
	if err != nil {
		return nil, err
	}
	s, err := schedule.New(providerID, in.SlotMinutes, loc, in.Days)
	if err != nil {
		return nil, err
	}

	now := uc.clock.Now()
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if derr := tx.LockProvider(ctx, providerID); derr != nil {
			return derr
		}
		return tx.Schedules().Replace(ctx, tx.DB(), s, now)
	})
	if err != nil {
		return nil, err
	}
	return schedule.Reconstruct(providerID, s.SlotDuration(), loc, s.Days(), now), nil
}
