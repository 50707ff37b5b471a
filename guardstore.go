package guardstore

import (
	"context"

	"github.com/dmitrymomot/guardstore/pkg/config"
	"github.com/dmitrymomot/guardstore/pkg/guard"
	"github.com/dmitrymomot/guardstore/pkg/storage"
)

// New builds a guarded store from environment configuration: the storage
// driver is selected by STORAGE_DRIVER (memory, file or redis) and the chosen
// backend is wrapped with allow-list enforcement and sanitization. Options
// are passed through to guard.New.
func New(ctx context.Context, opts ...guard.Option) (*guard.Store, error) {
	var cfg storage.Config
	if err := config.Load(&cfg); err != nil {
		return nil, err
	}

	backend, err := storage.New(ctx, cfg)
	if err != nil {
		return nil, err
	}

	return guard.New(backend, opts...), nil
}
