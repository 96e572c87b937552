package bootstrap

import (
	"log/slog"

	"civic-hub/internal/handler/middleware"
	"civic-hub/internal/pkg/config"

	"go.uber.org/fx"
)

var LoggerModule = fx.Module("logger",
	fx.Provide(
		NewLogger,
		func(l *middleware.Logger) *slog.Logger { return l.Slog() },
	),
)

// NewLogger also installs the logger as slog's default.
func NewLogger(cfg config.LogConfig) *middleware.Logger {
	return middleware.NewLogger(cfg)
}
