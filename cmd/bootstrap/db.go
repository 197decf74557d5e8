package bootstrap

import (
	"context"
	"log/slog"

	"scheduling-core/internal/infra/db"
	"scheduling-core/internal/pkg/config"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var DBModule = fx.Module("db",
	fx.Provide(
		NewDB,
	),
)

// NewDB opens the pool shared by the stores and the LISTEN change feed.
// The feed holds one connection for its lifetime, so MaxConns must leave room for it.
func NewDB(lc fx.Lifecycle, cfg config.Config) (*pgxpool.Pool, error) {
	pool, cleanup, err := db.Connect(cfg.DB)
	if err != nil {
		return nil, err
	}
	if cfg.Realtime.Driver == "postgres" && cfg.DB.MaxConns < 2 {
		slog.Warn("DB_MAX_CONNS leaves no connection for requests while the change feed listens",
			"max_conns", cfg.DB.MaxConns)
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			if cleanup != nil {
				cleanup()
			}
			return nil
		},
	})

	return pool, nil
}
