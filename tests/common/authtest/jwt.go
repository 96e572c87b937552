//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	"civic-hub/internal/domain/user"
	"civic-hub/internal/pkg/config"
	"civic-hub/internal/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// JWTHelper plays the external session service: it issues tokens the API
// accepts.
type JWTHelper struct {
	cfg config.JWTConfig
}

func NewJWTHelper(cfg config.JWTConfig) *JWTHelper {
	return &JWTHelper{cfg: cfg}
}

func (h *JWTHelper) GenerateToken(t *testing.T, userID uuid.UUID, role user.Role) string {
	t.Helper()
	duration, err := time.ParseDuration(h.cfg.Duration)
	require.NoError(t, err)
	token, err := jwt.NewService(h.cfg.Secret, h.cfg.Issuer, duration).GenerateToken(userID, role)
	require.NoError(t, err)
	return token
}

func (h *JWTHelper) CreateExpiredToken(t *testing.T, userID uuid.UUID, role user.Role) string {
	t.Helper()
	token, err := jwt.NewService(h.cfg.Secret, h.cfg.Issuer, time.Millisecond).GenerateToken(userID, role)
	require.NoError(t, err)
	time.Sleep(10 * time.Millisecond)
	return token
}

// Actor returns a fresh identity together with a token for it.
func (h *JWTHelper) Actor(t *testing.T, role user.Role) (user.Actor, string) {
	t.Helper()
	actor := user.NewActor(uuid.New(), role)
	return actor, h.GenerateToken(t, actor.ID, role)
}
