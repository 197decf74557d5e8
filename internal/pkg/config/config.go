package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, etc.), security settings
// - default: Values common across all environments (timezone, timeout, etc.), standard settings
// -----------------------------------------------------------------------------

type Config struct {
	Server     ServerConfig
	DB         DBConfig
	CORS       CORSConfig
	Log        LogConfig
	JWT        JWTConfig
	Scheduling SchedulingConfig
	Realtime   RealtimeConfig
	Redis      RedisConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" required:"true"`
	Password string `envconfig:"DB_PASSWORD" required:"true"`
	DBName   string `envconfig:"DB_NAME" required:"true"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone string `envconfig:"DB_TIMEZONE" default:"UTC"`
	MaxConns int32  `envconfig:"DB_MAX_CONNS" default:"10"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"UTC"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"0"`
}

// Tokens are issued by the identity service; this service only validates them.
type JWTConfig struct {
	Secret   string `envconfig:"JWT_SECRET" required:"true"`
	Duration string `envconfig:"JWT_DURATION" default:"24h"`
}

type SchedulingConfig struct {
	DefaultSlotMinutes int    `envconfig:"DEFAULT_SLOT_MINUTES" default:"30"`
	DefaultOpen        string `envconfig:"DEFAULT_OPEN" default:"09:00"`
	DefaultClose       string `envconfig:"DEFAULT_CLOSE" default:"17:00"`
	SlotBoundary       string `envconfig:"SLOT_BOUNDARY" default:"end"`
	DefaultTimeZone    string `envconfig:"DEFAULT_TIMEZONE" default:"UTC"`
}

type RealtimeConfig struct {
	// postgres | kafka | none
	Driver       string        `envconfig:"CHANGEFEED_DRIVER" default:"postgres"`
	Channel      string        `envconfig:"CHANGEFEED_CHANNEL" default:"booking_changes"`
	KafkaBrokers string        `envconfig:"KAFKA_BROKERS" default:"localhost:9092"`
	KafkaTopic   string        `envconfig:"KAFKA_TOPIC" default:"booking-changes"`
	KafkaGroupID string        `envconfig:"KAFKA_GROUP_ID" default:"scheduling-core"`
	RetryBackoff time.Duration `envconfig:"CHANGEFEED_RETRY_BACKOFF" default:"2s"`
}

// An empty Addr disables the display-name cache.
type RedisConfig struct {
	Addr     string        `envconfig:"REDIS_ADDR" default:""`
	Password string        `envconfig:"REDIS_PASSWORD" default:""`
	DB       int           `envconfig:"REDIS_DB" default:"0"`
	TTL      time.Duration `envconfig:"REDIS_TTL" default:"10m"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

func (c *SchedulingConfig) Location() (*time.Location, error) {
	if c.DefaultTimeZone == "" {
		return time.UTC, nil
	}
	loc, err := time.LoadLocation(c.DefaultTimeZone)
	if err != nil {
		return nil, fmt.Errorf("invalid DEFAULT_TIMEZONE %q: %w", c.DefaultTimeZone, err)
	}
	return loc, nil
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433", // Test DB port
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
			TimeZone: "UTC",
			MaxConns: 5,
		},
		Log: LogConfig{
			Level:      "error", // Error level only for tests
			TimeZone:   "UTC",
			TimeFormat: "2006-01-02 15:04:05.000",
		},
		JWT: JWTConfig{
			Secret:   "test-secret",
			Duration: "1h",
		},
		Scheduling: SchedulingConfig{
			DefaultSlotMinutes: 30,
			DefaultOpen:        "09:00",
			DefaultClose:       "17:00",
			SlotBoundary:       "end",
			DefaultTimeZone:    "UTC",
		},
		Realtime: RealtimeConfig{
			Driver:       "postgres",
			Channel:      "booking_changes",
			RetryBackoff: 100 * time.Millisecond,
		},
	}
}
