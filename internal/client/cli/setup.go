package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/dmitrijs2005/craftconnect/internal/client/client"
	"github.com/dmitrijs2005/craftconnect/internal/client/config"
	"github.com/dmitrijs2005/craftconnect/internal/client/services"
	"github.com/dmitrijs2005/craftconnect/internal/client/sessionstore"
	"github.com/dmitrijs2005/craftconnect/internal/filex"
	"github.com/dmitrijs2005/craftconnect/internal/logging"
	"github.com/redis/go-redis/v9"
)

// Setup builds the App described by cfg: logger, session store, API client
// and session manager. The returned cleanup closes what Setup opened.
func Setup(ctx context.Context, cfg *config.Config, logOut io.Writer) (*App, func(), error) {
	log, syncLog, err := newLogger(cfg, logOut)
	if err != nil {
		return nil, nil, err
	}

	store, closeStore, err := openStore(ctx, cfg, log)
	if err != nil {
		syncLog()
		return nil, nil, err
	}

	api := client.NewHTTPClient(cfg.APIBaseURL, client.WithLogger(log.With("component", "api")))
	session := services.NewSessionManager(api, store, log.With("component", "session"))
	api.Bind(session, session.Invalidate)

	cleanup := func() {
		if err := closeStore(); err != nil {
			log.Error(ctx, "failed to close session store", "error", err)
		}
		syncLog()
	}
	return NewApp(api, session), cleanup, nil
}

func newLogger(cfg *config.Config, w io.Writer) (logging.Logger, func(), error) {
	switch cfg.LogFormat {
	case "", "text":
		return logging.NewText(w, cfg.LogLevel), func() {}, nil
	case "json":
		return logging.NewJSON(w, cfg.LogLevel), func() {}, nil
	case "zap":
		z, err := logging.NewZapProduction(cfg.LogLevel)
		if err != nil {
			return nil, nil, fmt.Errorf("zap logger: %w", err)
		}
		return z, func() { _ = z.Sync() }, nil
	default:
		return nil, nil, fmt.Errorf("unknown log format %q", cfg.LogFormat)
	}
}

func openStore(ctx context.Context, cfg *config.Config, log logging.Logger) (sessionstore.Store, func() error, error) {
	log = log.With("component", "store", "backend", cfg.StoreBackend)

	switch cfg.StoreBackend {
	case config.StoreSQLite:
		path, err := filex.SessionDBPath(cfg.StoreDSN)
		if err != nil {
			return nil, nil, err
		}
		db, err := sessionstore.OpenSQLite(ctx, path)
		if err != nil {
			return nil, nil, fmt.Errorf("open sqlite session store: %w", err)
		}
		return sessionstore.NewSQLiteStore(db, log), db.Close, nil

	case config.StorePostgres:
		db, err := sessionstore.OpenPostgres(ctx, cfg.StoreDSN)
		if err != nil {
			return nil, nil, fmt.Errorf("open postgres session store: %w", err)
		}
		return sessionstore.NewPostgresStore(db, log), db.Close, nil

	case config.StoreRedis:
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		if err := rdb.Ping(ctx).Err(); err != nil {
			_ = rdb.Close()
			return nil, nil, fmt.Errorf("redis ping: %w", err)
		}
		return sessionstore.NewRedisStore(rdb, cfg.RedisPrefix, log), rdb.Close, nil

	case config.StoreMemory:
		return sessionstore.NewMemoryStore(log), func() error { return nil }, nil

	default:
		return nil, nil, fmt.Errorf("unknown store backend %q", cfg.StoreBackend)
	}
}
