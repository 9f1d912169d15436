package cache

import (
	"context"
	"log/slog"

	"accounts/config"
	"accounts/internal/domain/entity"
	"accounts/internal/domain/service"

	"go.uber.org/fx"
)

// noopCache is used when Redis is not configured; every lookup misses.
type noopCache struct{}

// NewNoopCache returns a cache that stores nothing.
func NewNoopCache() service.AccountCache {
	return noopCache{}
}

func (noopCache) Get(context.Context, string) (*entity.PublicAccount, uint64, error) {
	return nil, 0, service.ErrCacheMiss
}

func (noopCache) Set(context.Context, *entity.PublicAccount, uint64) error { return nil }

func (noopCache) Delete(context.Context, string) error { return nil }

// Params holds dependencies for the cache, injected by Fx
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewAccountCache creates an AccountCache based on configuration
func NewAccountCache(params Params) (service.AccountCache, error) {
	cfg := params.Config.Redis
	if cfg == nil || cfg.Addr == "" {
		params.Logger.Info("Redis not configured, account cache disabled")

		return NewNoopCache(), nil
	}

	client, err := Connect(params.Ctx, cfg.Addr, cfg.Password, cfg.DB)
	if err != nil {
		return nil, err
	}

	params.Logger.Info("Redis account cache enabled",
		slog.String("addr", cfg.Addr),
		slog.Duration("ttl", cfg.TTL),
	)

	params.Lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			params.Logger.Info("Closing Redis client")

			return client.Close()
		},
	})

	return NewRedisAccountCache(client, cfg.TTL), nil
}

// Module provides the cache FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewAccountCache),
)
