package main

import (
	"context"
	"fmt"

	"hh-vacancy-search/internal/api/headhunter"
	"hh-vacancy-search/internal/config"
	"hh-vacancy-search/internal/regions"
	"hh-vacancy-search/internal/search"
	"hh-vacancy-search/internal/storage"
	"hh-vacancy-search/internal/storage/jsonfile"
	"hh-vacancy-search/internal/storage/postgres"
	"hh-vacancy-search/internal/storage/redis"

	"go.uber.org/zap"
)

// deps holds everything a command needs. close releases connections.
type deps struct {
	client  *headhunter.Client
	loader  *regions.Loader
	service *search.Service
	closers []func() error
}

func newDeps(ctx context.Context, cfg *config.Config, log *zap.Logger) (*deps, error) {
	d := &deps{}

	store, err := d.openStore(ctx, cfg, log)
	if err != nil {
		d.close()
		return nil, err
	}

	d.client = headhunter.New(cfg.HHAPI.BaseURL, cfg.HHAPI.Timeout, log)
	log.Debug("HeadHunter API client created", zap.String("base_url", cfg.HHAPI.BaseURL))

	var (
		tableCache  regions.TableCache
		resultCache search.ResultCache
	)
	if cfg.Redis.Addr != "" {
		log.Info("connecting to Redis...")
		cache, err := redis.New(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB, log)
		if err != nil {
			// Caching is optional, run without it.
			log.Warn("redis unavailable, caching disabled", zap.Error(err))
		} else {
			d.closers = append(d.closers, cache.Close)
			tableCache, resultCache = cache, cache
		}
	}

	d.loader = regions.NewLoader(d.client, tableCache, log)
	d.service = search.New(d.client, resultCache, store, log)
	return d, nil
}

func (d *deps) openStore(ctx context.Context, cfg *config.Config, log *zap.Logger) (storage.Store, error) {
	switch cfg.Storage.Backend {
	case config.BackendPostgres:
		log.Info("connecting to PostgreSQL...")
		store, err := postgres.New(cfg.Storage.PostgresDSN, log)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to PostgreSQL: %w", err)
		}
		d.closers = append(d.closers, store.Close)

		if err := store.EnsureSchema(ctx); err != nil {
			return nil, fmt.Errorf("failed to prepare schema: %w", err)
		}
		return store, nil

	default:
		store, err := jsonfile.New(cfg.Storage.Path, log)
		if err != nil {
			return nil, fmt.Errorf("failed to open storage file: %w", err)
		}
		log.Debug("json storage opened", zap.String("path", store.Path()))
		return store, nil
	}
}

// resolver loads the region table on first use.
func (d *deps) resolver(ctx context.Context) (*regions.Resolver, error) {
	r, err := regions.NewResolver(ctx, d.loader)
	if err != nil {
		return nil, fmt.Errorf("failed to load regions: %w", err)
	}
	return r, nil
}

func (d *deps) close() {
	for i := len(d.closers) - 1; i >= 0; i-- {
		if err := d.closers[i](); err != nil && log != nil {
			log.Warn("failed to close resource", zap.Error(err))
		}
	}
}
