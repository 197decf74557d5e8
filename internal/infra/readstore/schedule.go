package readstore

import (
	"context"

	"scheduling-core/internal/domain/schedule"
	"scheduling-core/internal/infra"
	"scheduling-core/internal/infra/repository/converter"
	"scheduling-core/internal/infra/sqlstore"
	"scheduling-core/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type ScheduleViewQueries interface {
	GetProviderSchedule(ctx context.Context, db sqlstore.DBTX, providerID uuid.UUID) (sqlstore.ProviderSchedules, error)
	ListProviderScheduleDays(ctx context.Context, db sqlstore.DBTX, providerID uuid.UUID) ([]sqlstore.ProviderScheduleDays, error)
}

type ScheduleReadStore struct {
	queries ScheduleViewQueries
	db      sqlstore.DBTX
}

func NewScheduleReadStore(queries ScheduleViewQueries, db sqlstore.DBTX) *ScheduleReadStore {
	return &ScheduleReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *ScheduleReadStore) Find(ctx context.Context, providerID uuid.UUID) (*schedule.Schedule, error) {
	head, err := r.queries.GetProviderSchedule(ctx, r.db, providerID)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, nil
		}
		return nil, infra.WrapRepoErr("failed to get provider schedule", err)
	}
	days, err := r.queries.ListProviderScheduleDays(ctx, r.db, providerID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list provider schedule days", err)
	}
	s, err := converter.ScheduleFromRows(head, days)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to decode provider schedule", err)
	}
	return s, nil
}
