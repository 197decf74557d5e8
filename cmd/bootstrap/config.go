package bootstrap

import (
	"log/slog"

	"scheduling-core/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
	),
	fx.Invoke(logEffectiveConfig),
)

// secrets are left out
func logEffectiveConfig(cfg config.Config, logger *slog.Logger) {
	logger.Info("configuration loaded",
		"port", cfg.Server.Port,
		"db_host", cfg.DB.Host,
		"db_name", cfg.DB.DBName,
		"slot_boundary", cfg.Scheduling.SlotBoundary,
		"default_slot_minutes", cfg.Scheduling.DefaultSlotMinutes,
		"default_timezone", cfg.Scheduling.DefaultTimeZone,
		"changefeed_driver", cfg.Realtime.Driver,
		"redis_enabled", cfg.Redis.Addr != "")
}
