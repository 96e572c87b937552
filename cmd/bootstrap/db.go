package bootstrap

import (
	"context"
	"log/slog"

	"civic-hub/internal/infra/db"
	"civic-hub/internal/pkg/config"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var DBModule = fx.Module("db",
	fx.Provide(
		NewDB,
	),
)

func NewDB(lc fx.Lifecycle, cfg config.DBConfig, logger *slog.Logger) (*pgxpool.Pool, error) {
	pool, cleanup, err := db.Connect(context.Background(), cfg)
	if err != nil {
		return nil, err
	}
	logger.Info("database pool ready", "host", cfg.Host, "db", cfg.DBName, "max_conns", cfg.MaxConns)

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			cleanup()
			return nil
		},
	})

	return pool, nil
}
