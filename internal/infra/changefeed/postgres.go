package changefeed

import (
	"context"
	"log/slog"
	"time"

	"scheduling-core/internal/usecase/realtime"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresFeed listens on a NOTIFY channel fed by the bookings trigger. It
// holds one dedicated connection and reconnects after backoff when it drops.
type PostgresFeed struct {
	pool    *pgxpool.Pool
	channel string
	backoff time.Duration
}

func NewPostgresFeed(pool *pgxpool.Pool, channel string, backoff time.Duration) *PostgresFeed {
	if backoff <= 0 {
		backoff = 2 * time.Second
	}
	return &PostgresFeed{pool: pool, channel: channel, backoff: backoff}
}

func (f *PostgresFeed) Run(ctx context.Context, handle func(context.Context, realtime.ChangeEvent)) error {
	for {
		err := f.listen(ctx, handle)
		if ctx.Err() != nil {
			return nil
		}
		slog.Error("change feed listener stopped, reconnecting",
			"channel", f.channel,
			"backoff", f.backoff.String(),
			"error", err)

		select {
		case <-ctx.Done():
			return nil
		case <-time.After(f.backoff):
		}
	}
}

func (f *PostgresFeed) listen(ctx context.Context, handle func(context.Context, realtime.ChangeEvent)) error {
	pooled, err := f.pool.Acquire(ctx)
	if err != nil {
		return err
	}
	// The LISTEN registration must not leak back into the pool.
	conn := pooled.Hijack()
	defer func() {
		closeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = conn.Close(closeCtx)
	}()

	if _, err := conn.Exec(ctx, "LISTEN "+pgx.Identifier{f.channel}.Sanitize()); err != nil {
		return err
	}
	slog.Info("change feed listening", "channel", f.channel)

	for {
		n, err := conn.WaitForNotification(ctx)
		if err != nil {
			return err
		}
		ev, err := Decode([]byte(n.Payload))
		if err != nil {
			slog.Warn("dropping undecodable change notification", "channel", n.Channel, "error", err)
			continue
		}
		handle(ctx, ev)
	}
}
