package components

import (
	"scheduling-core/internal/infra/cache"
	"scheduling-core/internal/infra/readstore"
	"scheduling-core/internal/infra/repository"
	"scheduling-core/internal/infra/sqlstore"
	"scheduling-core/internal/infra/uow"
	"scheduling-core/internal/pkg/config"
	"scheduling-core/internal/usecase/queries"
	"scheduling-core/internal/usecase/realtime"
	"scheduling-core/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
	repositoryModule,
)

var baseOption = fx.Provide(
	NewSQLQueries,
	NewDBTX,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		// Booking
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.BookingViewQueries)),
		),
		fx.Annotate(
			readstore.NewBookingReadStore,
			fx.As(new(queries.BookingReadStore)),
			fx.As(new(realtime.ActiveBookings)),
		),
		// Schedule
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.ScheduleViewQueries)),
		),
		fx.Annotate(
			readstore.NewScheduleReadStore,
			fx.As(new(queries.ScheduleReadStore)),
		),
	),
)

var repositoryModule = fx.Module("persistence/repository",
	fx.Provide(
		// UnitOfWork
		uow.NewPostgresUoW,
		// Client directory
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(repository.ClientQueries)),
		),
		repository.NewClientDirectory,
		NewClientDirectory,
	),
)

func NewSQLQueries(_ *pgxpool.Pool) *sqlstore.Queries {
	return sqlstore.New()
}

func NewDBTX(pool *pgxpool.Pool) sqlstore.DBTX {
	return pool
}

// NewClientDirectory puts the Redis cache in front of postgres when a client is configured.
func NewClientDirectory(db *repository.ClientDirectory, rdb *redis.Client, cfg config.Config) shared.ClientDirectory {
	if rdb == nil {
		return db
	}
	return cache.NewClientDirectory(db, rdb, cfg.Redis.TTL, "")
}
