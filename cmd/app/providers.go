package main

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/valkey-io/valkey-go"

	"github.com/yanqian/astro-profile/internal/domain/astro"
	"github.com/yanqian/astro-profile/internal/domain/auth"
	"github.com/yanqian/astro-profile/internal/domain/post"
	"github.com/yanqian/astro-profile/internal/infra/config"
	"github.com/yanqian/astro-profile/internal/infra/daylight"
	"github.com/yanqian/astro-profile/internal/infra/ephemeris/meeus"
	"github.com/yanqian/astro-profile/internal/infra/postrepo"
	"github.com/yanqian/astro-profile/internal/infra/profilerepo"
	"github.com/yanqian/astro-profile/internal/infra/signstats"
	"github.com/yanqian/astro-profile/internal/infra/userrepo"
)

func provideAuthConfig(cfg *config.Config) auth.Config {
	return auth.Config{
		Secret:   cfg.Auth.Secret,
		TokenTTL: cfg.Auth.TokenTTL,
	}
}

func provideAstroConfig(cfg *config.Config) astro.Config {
	return astro.Config{
		DefaultTimezone: cfg.Astro.DefaultTimezone,
		HistoryLimit:    cfg.Astro.HistoryLimit,
		TrendingLimit:   cfg.Astro.TrendingLimit,
	}
}

func providePostConfig(cfg *config.Config) post.Config {
	return post.Config{
		MaxContentLength: cfg.Posts.MaxContentLength,
		ListLimit:        cfg.Posts.ListLimit,
	}
}

func provideEphemeris() astro.Ephemeris {
	return meeus.NewProvider()
}

func provideDaylightClock() astro.DaylightClock {
	return daylight.NewSunriseClock()
}

// providePostgresPool returns a nil pool when no DSN is configured or the
// database is unreachable; repositories then fall back.
func providePostgresPool(cfg *config.Config, logger *slog.Logger) (*pgxpool.Pool, func()) {
	noop := func() {}
	dsn := strings.TrimSpace(cfg.Storage.Postgres.DSN)
	if dsn == "" {
		logger.Info("postgres dsn not set")
		return nil, noop
	}
	poolConfig, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		logger.Error("invalid postgres dsn", "error", err)
		return nil, noop
	}
	if cfg.Storage.Postgres.MaxConns > 0 {
		poolConfig.MaxConns = cfg.Storage.Postgres.MaxConns
	}
	if cfg.Storage.Postgres.MinConns > 0 {
		poolConfig.MinConns = cfg.Storage.Postgres.MinConns
	}
	pool, err := pgxpool.NewWithConfig(context.Background(), poolConfig)
	if err != nil {
		logger.Error("failed to initialize postgres pool", "error", err)
		return nil, noop
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := pool.Ping(ctx); err != nil {
		logger.Error("postgres ping failed", "error", err)
		pool.Close()
		return nil, noop
	}
	logger.Info("postgres pool ready")
	return pool, pool.Close
}

func provideAuthRepository(pool *pgxpool.Pool, logger *slog.Logger) auth.Repository {
	if pool == nil {
		logger.Info("using memory user repository")
		return userrepo.NewMemoryRepository()
	}
	logger.Info("postgres user repository enabled")
	return userrepo.NewPostgresRepository(pool)
}

func providePostRepository(pool *pgxpool.Pool, logger *slog.Logger) post.Repository {
	if pool == nil {
		logger.Info("using memory post repository")
		return postrepo.NewMemoryRepository()
	}
	logger.Info("postgres post repository enabled")
	return postrepo.NewPostgresRepository(pool)
}

func provideProfileRepository(cfg *config.Config, pool *pgxpool.Pool, logger *slog.Logger) (astro.Repository, func()) {
	noop := func() {}
	if pool != nil {
		logger.Info("postgres profile repository enabled")
		return profilerepo.NewPostgresRepository(pool), noop
	}
	if path := strings.TrimSpace(cfg.Storage.SQLite.Path); path != "" {
		repo, err := profilerepo.NewSQLiteRepository(path)
		if err != nil {
			logger.Error("failed to open sqlite, using memory profile repository", "path", path, "error", err)
			return profilerepo.NewMemoryRepository(), noop
		}
		logger.Info("sqlite profile repository enabled", "path", repo.Path())
		return repo, func() { _ = repo.Close() }
	}
	logger.Info("using memory profile repository")
	return profilerepo.NewMemoryRepository(), noop
}

func provideStatsStore(cfg *config.Config, logger *slog.Logger) (astro.StatsStore, func()) {
	noop := func() {}
	if !cfg.Stats.Valkey.Enabled {
		return signstats.NewMemoryStore(), noop
	}
	opt, err := buildValkeyOptions(cfg.Stats.Valkey.Addr)
	if err != nil {
		logger.Error("invalid valkey configuration, falling back to memory store", "error", err)
		return signstats.NewMemoryStore(), noop
	}
	client, err := valkey.NewClient(opt)
	if err != nil {
		logger.Error("failed to create valkey client, falling back to memory store", "error", err)
		return signstats.NewMemoryStore(), noop
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Do(ctx, client.B().Ping().Build()).Error(); err != nil {
		logger.Error("valkey ping failed, falling back to memory store", "error", err)
		client.Close()
		return signstats.NewMemoryStore(), noop
	}
	logger.Info("valkey sign statistics enabled", "addr", cfg.Stats.Valkey.Addr)
	return signstats.NewValkeyStore(client, cfg.Stats.Valkey.Prefix), client.Close
}

func buildValkeyOptions(addr string) (valkey.ClientOption, error) {
	if strings.Contains(addr, "://") {
		return valkey.ParseURL(addr)
	}
	return valkey.ClientOption{InitAddress: []string{addr}}, nil
}
