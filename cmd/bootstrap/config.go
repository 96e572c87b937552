package bootstrap

import (
	"civic-hub/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
	),
	ConfigSections,
)

// ConfigSections lets constructors depend on the part of the configuration
// they use. Requires a config.Config in the graph.
var ConfigSections = fx.Provide(
	func(cfg config.Config) config.ServerConfig { return cfg.Server },
	func(cfg config.Config) config.DBConfig { return cfg.DB },
	func(cfg config.Config) config.CORSConfig { return cfg.CORS },
	func(cfg config.Config) config.LogConfig { return cfg.Log },
	func(cfg config.Config) config.JWTConfig { return cfg.JWT },
	func(cfg config.Config) config.SessionConfig { return cfg.Session },
	func(cfg config.Config) config.CalendarConfig { return cfg.Calendar },
)
