//go:build unit

package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"civic-hub/internal/domain/user"
	"civic-hub/internal/handler/middleware"
	"civic-hub/internal/pkg/config"
	"civic-hub/internal/pkg/jwt"
	"civic-hub/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthRouter(t *testing.T) (*gin.Engine, *jwt.Service) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	svc := jwt.NewService("secret", "civic-hub", time.Hour)
	auth := middleware.NewAuthMiddleware(usecase.NewSessionValidator(svc), config.SessionConfig{CookieName: "session"})

	r := gin.New()
	r.GET("/me", auth.RequireAuth(), func(c *gin.Context) {
		actor, ok := middleware.GetActor(c)
		require.True(t, ok)
		c.JSON(http.StatusOK, gin.H{"id": actor.ID.String(), "role": actor.Role.String()})
	})
	r.GET("/admin", auth.RequireAuth(), auth.RequireAdmin(), func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})
	return r, svc
}

func TestRequireAuth(t *testing.T) {
	r, svc := newAuthRouter(t)
	userID := uuid.New()
	token, err := svc.GenerateToken(userID, user.RoleResident)
	require.NoError(t, err)

	t.Run("success: bearer header", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()

		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), userID.String())
	})

	t.Run("success: session cookie", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.AddCookie(&http.Cookie{Name: "session", Value: token})
		w := httptest.NewRecorder()

		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("error: missing token", func(t *testing.T) {
		w := httptest.NewRecorder()

		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/me", nil))

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.JSONEq(t, `{"message":"session token required","kind":"Unauthorized"}`, w.Body.String())
	})

	t.Run("error: tampered token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.Header.Set("Authorization", "Bearer "+token+"x")
		w := httptest.NewRecorder()

		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), `"kind":"Unauthorized"`)
	})
}

func TestRequireAdmin(t *testing.T) {
	r, svc := newAuthRouter(t)

	tests := []struct {
		name string
		role user.Role
		want int
	}{
		{name: "success: admin passes", role: user.RoleAdmin, want: http.StatusNoContent},
		{name: "error: resident is forbidden", role: user.RoleResident, want: http.StatusForbidden},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := svc.GenerateToken(uuid.New(), tt.role)
			require.NoError(t, err)
			req := httptest.NewRequest(http.MethodGet, "/admin", nil)
			req.Header.Set("Authorization", "Bearer "+token)
			w := httptest.NewRecorder()

			r.ServeHTTP(w, req)

			assert.Equal(t, tt.want, w.Code)
		})
	}
}
