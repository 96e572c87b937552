package db

import (
	"context"
	"log/slog"
	"time"

	"civic-hub/internal/pkg/config"
	"civic-hub/internal/pkg/errs"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const connectTimeout = 10 * time.Second

// Connect opens a pool and pings it. The returned cleanup closes the pool.
func Connect(ctx context.Context, cfg config.DBConfig) (*pgxpool.Pool, func(), error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.BuildDSN())
	if err != nil {
		return nil, nil, errs.Wrap(err, "parse database config")
	}

	poolCfg.MaxConns = cfg.MaxConns
	poolCfg.MinConns = cfg.MinConns
	poolCfg.MaxConnLifetime = cfg.MaxConnLifetime
	// booking windows are compared as timestamptz; keep sessions on the
	// configured zone even when the server default differs
	tz := cfg.TimeZone
	poolCfg.AfterConnect = func(ctx context.Context, conn *pgx.Conn) error {
		if tz == "" {
			return nil
		}
		_, err := conn.Exec(ctx, "SELECT set_config('TimeZone', $1, false)", tz)
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, nil, errs.Wrap(err, "open database")
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, nil, errs.Wrapf(err, "ping database %s", cfg.DBName)
	}

	cleanup := func() {
		pool.Close()
		slog.Info("database pool closed", "db", cfg.DBName)
	}

	return pool, cleanup, nil
}
