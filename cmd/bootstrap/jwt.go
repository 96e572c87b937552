package bootstrap

import (
	"time"

	"civic-hub/internal/pkg/config"
	"civic-hub/internal/pkg/errs"
	"civic-hub/internal/pkg/jwt"

	"go.uber.org/fx"
)

var JWTModule = fx.Module("jwt",
	fx.Provide(
		NewJWTService,
	),
)

// NewJWTService only verifies tokens in production; the duration is used by
// test helpers that issue them.
func NewJWTService(cfg config.JWTConfig) (*jwt.Service, error) {
	duration, err := time.ParseDuration(cfg.Duration)
	if err != nil {
		return nil, errs.Wrap(err, "invalid JWT_DURATION")
	}
	return jwt.NewService(cfg.Secret, cfg.Issuer, duration), nil
}
