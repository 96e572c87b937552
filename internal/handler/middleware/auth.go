package middleware

import (
	"log/slog"
	"net/http"

	"civic-hub/internal/domain/user"
	"civic-hub/internal/handler/httperr"
	"civic-hub/internal/pkg/config"
	"civic-hub/internal/pkg/cookie"
	"civic-hub/internal/pkg/errs"
	"civic-hub/internal/usecase"

	"github.com/gin-gonic/gin"
)

type AuthMiddleware struct {
	sessions   usecase.SessionValidator
	cookieName string
}

const ctxActorKey = "actor"

var errMissingSession = errs.Mark(errs.New("session token required"), errs.ErrUnauthorized)

func NewAuthMiddleware(sessions usecase.SessionValidator, cfg config.SessionConfig) *AuthMiddleware {
	return &AuthMiddleware{
		sessions:   sessions,
		cookieName: cfg.CookieName,
	}
}

func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := cookie.SessionToken(c, m.cookieName)
		if token == "" {
			httperr.Abort(c, errMissingSession)
			return
		}

		actor, err := m.sessions.Authenticate(token)
		if err != nil {
			slog.Warn("session validation failed", "error", err.Error())
			httperr.Abort(c, usecase.ErrInvalidSession)
			return
		}

		SetActor(c, actor)
		c.Next()
	}
}

// RequireAdmin must run after RequireAuth.
func (m *AuthMiddleware) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		actor, ok := GetActor(c)
		if !ok {
			httperr.AbortWithError(c, http.StatusInternalServerError, errs.New("RequireAdmin used without RequireAuth"), "Internal server error", errs.KindInternal)
			return
		}
		if err := actor.RequireAdmin(); err != nil {
			httperr.Abort(c, err)
			return
		}
		c.Next()
	}
}

// SetActor also records the claims the request logger reports.
func SetActor(c *gin.Context, actor user.Actor) {
	c.Set(ctxActorKey, actor)
	c.Set("jwt_claims", map[string]any{
		"user_id": actor.ID.String(),
		"role":    actor.Role.String(),
	})
}

func GetActor(c *gin.Context) (user.Actor, bool) {
	v, exists := c.Get(ctxActorKey)
	if !exists {
		return user.Actor{}, false
	}
	actor, ok := v.(user.Actor)
	return actor, ok
}
