package repository

import (
	"context"
	"time"

	"scheduling-core/internal/domain/schedule"
	"scheduling-core/internal/infra"
	"scheduling-core/internal/infra/repository/converter"
	"scheduling-core/internal/infra/sqlstore"
	"scheduling-core/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type ScheduleQueries interface {
	GetProviderSchedule(ctx context.Context, db sqlstore.DBTX, providerID uuid.UUID) (sqlstore.ProviderSchedules, error)
	ListProviderScheduleDays(ctx context.Context, db sqlstore.DBTX, providerID uuid.UUID) ([]sqlstore.ProviderScheduleDays, error)
	UpsertProviderSchedule(ctx context.Context, db sqlstore.DBTX, arg sqlstore.UpsertProviderScheduleParams) error
	DeleteProviderScheduleDays(ctx context.Context, db sqlstore.DBTX, providerID uuid.UUID) error
	InsertProviderScheduleDay(ctx context.Context, db sqlstore.DBTX, arg sqlstore.ProviderScheduleDays) error
}

type ScheduleRepository struct {
	queries ScheduleQueries
}

func NewScheduleRepository(queries ScheduleQueries) *ScheduleRepository {
	return &ScheduleRepository{queries: queries}
}

func (r *ScheduleRepository) Find(ctx context.Context, tx sqlstore.DBTX, providerID uuid.UUID) (*schedule.Schedule, error) {
	head, err := r.queries.GetProviderSchedule(ctx, tx, providerID)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, nil
		}
		return nil, infra.WrapRepoErr("failed to get provider schedule", err)
	}
	days, err := r.queries.ListProviderScheduleDays(ctx, tx, providerID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list provider schedule days", err)
	}
	s, err := converter.ScheduleFromRows(head, days)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to decode provider schedule", err)
	}
	return s, nil
}

// Replace must run inside a transaction: the day rows are deleted and re-inserted.
func (r *ScheduleRepository) Replace(ctx context.Context, tx sqlstore.DBTX, s *schedule.Schedule, at time.Time) error {
	head, days := converter.ScheduleToParams(s, at)
	if err := r.queries.UpsertProviderSchedule(ctx, tx, head); err != nil {
		return infra.WrapRepoErr("failed to upsert provider schedule", err)
	}
	if err := r.queries.DeleteProviderScheduleDays(ctx, tx, s.ProviderID()); err != nil {
		return infra.WrapRepoErr("failed to clear provider schedule days", err)
	}
	for _, d := range days {
		if err := r.queries.InsertProviderScheduleDay(ctx, tx, d); err != nil {
			return infra.WrapRepoErr("failed to insert provider schedule day", err)
		}
	}
	return nil
}
