package cmd

import (
	"fmt"

	"sitemap-sync/core/cloudflare"
	"sitemap-sync/core/config"
	"sitemap-sync/core/database"
	"sitemap-sync/core/httpclient"
	"sitemap-sync/core/logger"
	"sitemap-sync/core/sitemap"
	"sitemap-sync/core/storage"
	"sitemap-sync/feature/urlsync"

	"go.uber.org/zap"
)

// bootstrap is the configuration and logger shared by every command.
type bootstrap struct {
	cfg    *config.Config
	logger *zap.Logger
}

// loadBootstrap loads and validates configuration and builds the logger.
func loadBootstrap() (*bootstrap, error) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return &bootstrap{cfg: cfg, logger: logg}, nil
}

// components are the clients and services built from a bootstrap.
type components struct {
	kv   *cloudflare.KVClient
	sync *urlsync.Service
}

// buildComponents wires the Cloudflare clients, the sitemap fetcher and the
// optional history and archive into a sync service.
func (r *bootstrap) buildComponents(extra ...urlsync.Option) *components {
	client := httpclient.New()
	kv := cloudflare.NewKVClient(client, r.cfg.Cloudflare)
	rules := cloudflare.NewRulesClient(client, r.cfg.Cloudflare)

	opts := append(r.optionalStores(), extra...)
	svc := urlsync.NewService(
		kv,
		sitemap.NewFetcher(client, r.logger),
		urlsync.NewRedirectSource(rules, r.logger),
		r.cfg.Sitemap.URL,
		r.logger,
		opts...,
	)
	return &components{kv: kv, sync: svc}
}

// optionalStores connects the history database and the snapshot archive
// when enabled. Failures are logged and the store is left out.
func (r *bootstrap) optionalStores() []urlsync.Option {
	var opts []urlsync.Option

	if r.cfg.Database.Enabled {
		if conn, err := database.Connect(r.cfg.Database); err != nil {
			r.logger.Warn("Optional database connection failed", zap.Error(err))
		} else {
			history := urlsync.NewHistory(conn)
			if err := history.Migrate(); err != nil {
				r.logger.Warn("Sync history disabled", zap.Error(err))
			} else {
				opts = append(opts, urlsync.WithHistory(history))
				r.logger.Info("Sync history enabled", zap.String("database", r.cfg.Database.Name))
			}
		}
	}

	if r.cfg.Storage.Enabled {
		if client, err := storage.NewClient(r.cfg.Storage); err != nil {
			r.logger.Warn("Optional storage client failed", zap.Error(err))
		} else {
			opts = append(opts, urlsync.WithArchive(urlsync.NewArchive(client, r.cfg.Storage.Bucket, r.cfg.Storage.Prefix)))
			r.logger.Info("Snapshot archive enabled", zap.String("bucket", r.cfg.Storage.Bucket))
		}
	}

	return opts
}
