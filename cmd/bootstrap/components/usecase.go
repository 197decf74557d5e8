package components

import (
	"fmt"
	"strings"
	"time"

	"scheduling-core/internal/domain/availability"
	"scheduling-core/internal/domain/schedule"
	"scheduling-core/internal/pkg/clock"
	"scheduling-core/internal/pkg/config"
	"scheduling-core/internal/usecase"
	"scheduling-core/internal/usecase/commands"
	"scheduling-core/internal/usecase/queries"
	"scheduling-core/internal/usecase/shared"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	NewLocation,
	NewAvailabilityPolicy,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewBookingUseCase,
		func(uow shared.UnitOfWork, clk clock.Clock, cfg config.Config) commands.ScheduleCommands {
			return commands.NewScheduleUseCase(uow, clk, cfg.Scheduling.DefaultTimeZone)
		},
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewBookingQueries,
		queries.NewScheduleQueries,
		queries.NewAvailabilityQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)

func NewLocation(cfg config.Config) (*time.Location, error) {
	return cfg.Scheduling.Location()
}

// NewAvailabilityPolicy builds the fallback used for providers without a saved schedule.
func NewAvailabilityPolicy(cfg config.Config, loc *time.Location) (availability.Policy, error) {
	sc := cfg.Scheduling
	policy := availability.DefaultPolicy()
	policy.Location = loc

	boundary, err := availability.ParseBoundary(strings.TrimSpace(sc.SlotBoundary))
	if err != nil {
		return availability.Policy{}, fmt.Errorf("invalid SLOT_BOUNDARY: %w", err)
	}
	policy.Boundary = boundary

	if sc.DefaultSlotMinutes > 0 {
		policy.SlotDuration = time.Duration(sc.DefaultSlotMinutes) * time.Minute
	}
	if sc.DefaultOpen != "" {
		if policy.Open, err = schedule.ParseTimeOfDay(sc.DefaultOpen); err != nil {
			return availability.Policy{}, fmt.Errorf("invalid DEFAULT_OPEN: %w", err)
		}
	}
	if sc.DefaultClose != "" {
		if policy.Close, err = schedule.ParseTimeOfDay(sc.DefaultClose); err != nil {
			return availability.Policy{}, fmt.Errorf("invalid DEFAULT_CLOSE: %w", err)
		}
	}
	if policy.Open >= policy.Close {
		return availability.Policy{}, fmt.Errorf("DEFAULT_OPEN %s must be before DEFAULT_CLOSE %s", policy.Open, policy.Close)
	}
	return policy, nil
}
