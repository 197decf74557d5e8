package queries

import (
	"context"
	"time"

	"scheduling-core/internal/domain/schedule"

	"github.com/google/uuid"
)

type ScheduleReadStore interface {
	// Find returns nil without error when the provider has not saved a schedule.
	Find(ctx context.Context, providerID uuid.UUID) (*schedule.Schedule, error)
}

type ScheduleQueries interface {
	Get(ctx context.Context, providerID uuid.UUID) (*ScheduleView, error)
}

type scheduleQueriesImpl struct {
	store ScheduleReadStore
	loc   *time.Location
}

// NewScheduleQueries answers with the onboarding schedule in loc for providers without one.
func NewScheduleQueries(store ScheduleReadStore, loc *time.Location) ScheduleQueries {
	return &scheduleQueriesImpl{store: store, loc: loc}
}

func (q *scheduleQueriesImpl) Get(ctx context.Context, providerID uuid.UUID) (*ScheduleView, error) {
	s, err := q.store.Find(ctx, providerID)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return ScheduleViewFromDomain(schedule.Default(providerID, q.loc), true), nil
	}
	return ScheduleViewFromDomain(s, false), nil
}
