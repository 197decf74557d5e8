package components

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"scheduling-core/internal/infra/changefeed"
	"scheduling-core/internal/pkg/config"
	"scheduling-core/internal/usecase/commands"
	"scheduling-core/internal/usecase/realtime"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var RealtimeModule = fx.Module("realtime",
	fx.Provide(
		func(c commands.BookingCommands) realtime.HardDeleter { return c },
		fx.Annotate(
			realtime.NewDirectoryResolver,
			fx.As(new(realtime.SnapshotResolver)),
		),
		realtime.NewHub,
		func(h *realtime.Hub) realtime.Notifications { return h },
		NewChangeFeed,
	),
	fx.Invoke(runChangeFeed),
)

// NewChangeFeed returns nil for the "none" driver; the hub then only sees local writes.
func NewChangeFeed(cfg config.Config, pool *pgxpool.Pool) (realtime.Feed, error) {
	rc := cfg.Realtime
	switch rc.Driver {
	case "postgres", "":
		return changefeed.NewPostgresFeed(pool, rc.Channel, rc.RetryBackoff), nil
	case "kafka":
		return changefeed.NewKafkaFeed(changefeed.KafkaConfig{
			Brokers: rc.KafkaBrokers,
			GroupID: rc.KafkaGroupID,
			Topic:   rc.KafkaTopic,
			Backoff: rc.RetryBackoff,
		}), nil
	case "none":
		return nil, nil
	default:
		return nil, fmt.Errorf("unknown CHANGEFEED_DRIVER %q", rc.Driver)
	}
}

// runChangeFeed dispatches from a single goroutine so events reach the hub in feed order.
func runChangeFeed(lc fx.Lifecycle, feed realtime.Feed, hub *realtime.Hub, cfg config.Config) {
	if feed == nil {
		slog.Info("change feed disabled")
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	var wg sync.WaitGroup

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			wg.Add(1)
			go func() {
				defer wg.Done()
				slog.Info("change feed started", "driver", cfg.Realtime.Driver)
				if err := feed.Run(ctx, hub.Dispatch); err != nil {
					slog.Error("change feed stopped", "error", err)
				}
			}()
			return nil
		},
		OnStop: func(stopCtx context.Context) error {
			cancel()
			done := make(chan struct{})
			go func() {
				wg.Wait()
				close(done)
			}()
			select {
			case <-done:
				return nil
			case <-stopCtx.Done():
				return stopCtx.Err()
			}
		},
	})
}
