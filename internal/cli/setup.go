package cli

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/frankasd12/NibbleCheck/internal/catalog"
	"github.com/frankasd12/NibbleCheck/internal/client"
	"github.com/frankasd12/NibbleCheck/internal/config"
	"github.com/frankasd12/NibbleCheck/internal/db"
	"github.com/frankasd12/NibbleCheck/internal/logging"
	"github.com/frankasd12/NibbleCheck/internal/service"
	"github.com/go-redis/redis/v8"
	_ "github.com/lib/pq"
)

// backend is what the query commands need; both the local service and the
// HTTP client provide it.
type backend interface {
	Resolve(ctx context.Context, text string) (service.Resolution, error)
	Search(ctx context.Context, query string, limit int) (service.SearchResult, error)
	Food(ctx context.Context, id int64) (catalog.Food, error)
}

var (
	_ backend = (*service.Service)(nil)
	_ backend = (*client.Client)(nil)
)

type cleanupFunc func()

func loadRuntime() (config.Config, cleanupFunc, error) {
	cfg, err := config.Load()
	if err != nil {
		return config.Config{}, nil, err
	}
	closeLog, err := logging.Setup(logging.ParseLevel(cfg.LogLevel), cfg.LogFile)
	if err != nil {
		return config.Config{}, nil, err
	}
	return cfg, func() { _ = closeLog() }, nil
}

func openBackend(ctx context.Context, opts *RootOptions) (backend, cleanupFunc, error) {
	if opts.Server != "" {
		return client.New(opts.Server, opts.Timeout), func() {}, nil
	}
	cfg, closeLog, err := loadRuntime()
	if err != nil {
		return nil, nil, err
	}
	svc, closeSvc, err := buildService(ctx, cfg)
	if err != nil {
		closeLog()
		return nil, nil, err
	}
	return svc, func() { closeSvc(); closeLog() }, nil
}

// buildService assembles the catalog chain described by cfg: a YAML file or
// Postgres, optionally fronted by redis.
func buildService(ctx context.Context, cfg config.Config) (*service.Service, cleanupFunc, error) {
	cat, closeCat, err := buildCatalog(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}
	svc := service.New(cat, service.Config{
		Floor:        cfg.SimilarityFloor,
		QueryTimeout: cfg.QueryTimeout,
		Concurrency:  cfg.ResolveConcurrency,
	})
	return svc, closeCat, nil
}

func buildCatalog(ctx context.Context, cfg config.Config) (catalog.Catalog, cleanupFunc, error) {
	var (
		cat     catalog.Catalog
		cleanup []func()
	)
	closeAll := func() {
		for i := len(cleanup) - 1; i >= 0; i-- {
			cleanup[i]()
		}
	}

	if cfg.CatalogFile != "" {
		mem, err := catalog.LoadFile(cfg.CatalogFile, cfg.SimilarityFloor)
		if err != nil {
			return nil, nil, err
		}
		slog.Info("using file catalog", "path", cfg.CatalogFile, "foods", mem.Len())
		cat = mem
	} else {
		sqlDB, err := openDB(ctx, cfg)
		if err != nil {
			return nil, nil, err
		}
		cleanup = append(cleanup, func() { _ = sqlDB.Close() })
		cat = catalog.NewPostgres(sqlDB, cfg.SimilarityFloor)
	}

	if cfg.RedisURL != "" {
		redisOpts, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			closeAll()
			return nil, nil, fmt.Errorf("parse REDIS_URL: %w", err)
		}
		rdb := redis.NewClient(redisOpts)
		cleanup = append(cleanup, func() { _ = rdb.Close() })
		if err := rdb.Ping(ctx).Err(); err != nil {
			slog.Warn("redis unreachable; search cache will fall through", "error", err)
		}
		cat = catalog.NewCached(cat, rdb, cfg.CacheTTL)
	}

	return cat, closeAll, nil
}

func openDB(ctx context.Context, cfg config.Config) (*sql.DB, error) {
	sqlDB, err := sql.Open("postgres", cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	sqlDB.SetMaxOpenConns(cfg.ResolveConcurrency * 4)
	sqlDB.SetConnMaxIdleTime(5 * time.Minute)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := sqlDB.PingContext(pingCtx); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	if cfg.AutoMigrate {
		if err := db.Migrate(sqlDB); err != nil {
			_ = sqlDB.Close()
			return nil, err
		}
	}
	return sqlDB, nil
}
