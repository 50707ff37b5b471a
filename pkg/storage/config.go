package storage

import (
	"context"
	"fmt"
	"time"
)

// Driver names accepted by Config.Driver.
const (
	DriverMemory = "memory"
	DriverFile   = "file"
	DriverRedis  = "redis"
)

// Config selects and configures the storage backend.
type Config struct {
	Driver string `env:"STORAGE_DRIVER" envDefault:"memory"` // memory, file or redis

	// File driver settings.
	FileDir string `env:"STORAGE_FILE_DIR" envDefault:"./data"`

	// Redis driver settings.
	RedisURL            string        `env:"STORAGE_REDIS_URL" envDefault:"redis://localhost:6379/0"`
	RedisRetryAttempts  int           `env:"STORAGE_REDIS_RETRY_ATTEMPTS" envDefault:"3"`
	RedisRetryInterval  time.Duration `env:"STORAGE_REDIS_RETRY_INTERVAL" envDefault:"5s"`
	RedisConnectTimeout time.Duration `env:"STORAGE_REDIS_CONNECT_TIMEOUT" envDefault:"30s"`
}

// New constructs the backend selected by cfg.Driver.
func New(ctx context.Context, cfg Config) (Backend, error) {
	switch cfg.Driver {
	case DriverMemory:
		return NewMemoryBackend(), nil
	case DriverFile:
		return NewFileBackend(cfg.FileDir)
	case DriverRedis:
		client, err := connectRedis(ctx, cfg)
		if err != nil {
			return nil, err
		}
		return NewRedisBackend(client), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownDriver, cfg.Driver)
	}
}
