package cache

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"scheduling-core/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	defaultTTL    = 10 * time.Minute
	defaultPrefix = "client:name"
)

// Store is the subset of redis.Cmdable the directory needs.
type Store interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
}

// ClientDirectory keeps client display names in Redis in front of the store.
// Redis failures fall through to the underlying directory.
type ClientDirectory struct {
	next   shared.ClientDirectory
	rdb    Store
	ttl    time.Duration
	prefix string
}

func NewClientDirectory(next shared.ClientDirectory, rdb Store, ttl time.Duration, prefix string) *ClientDirectory {
	if ttl <= 0 {
		ttl = defaultTTL
	}
	prefix = strings.TrimSpace(prefix)
	if prefix == "" {
		prefix = defaultPrefix
	}
	return &ClientDirectory{next: next, rdb: rdb, ttl: ttl, prefix: prefix}
}

func (d *ClientDirectory) DisplayName(ctx context.Context, clientID uuid.UUID) (string, error) {
	key := d.key(clientID)

	name, err := d.rdb.Get(ctx, key).Result()
	switch {
	case err == nil:
		return name, nil
	case !errors.Is(err, redis.Nil):
		slog.Warn("client name cache read failed", "client_id", clientID, "error", err)
	}

	name, err = d.next.DisplayName(ctx, clientID)
	if err != nil {
		return "", err
	}

	if err := d.rdb.Set(ctx, key, name, d.ttl).Err(); err != nil {
		slog.Warn("client name cache write failed", "client_id", clientID, "error", err)
	}
	return name, nil
}

func (d *ClientDirectory) key(clientID uuid.UUID) string {
	return d.prefix + ":" + clientID.String()
}
