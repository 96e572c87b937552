//go:build unit

package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"civic-hub/internal/domain/user"
	"civic-hub/internal/handler/middleware"
	"civic-hub/internal/pkg/config"
	httptestutil "civic-hub/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestLoggerMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	logger := middleware.NewLogger(config.LogConfig{Level: "error", TimeZone: "UTC", TimeFormat: "2006-01-02T15:04:05"})

	r := gin.New()
	r.Use(logger.Middleware())
	r.GET("/ping", func(c *gin.Context) {
		middleware.SetActor(c, user.NewActor(uuid.New(), user.RoleResident))
		c.String(http.StatusOK, middleware.GetRequestID(c))
	})

	t.Run("success: echoes the caller's request id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set("X-Request-ID", "req-42")
		w := httptest.NewRecorder()

		r.ServeHTTP(w, req)

		httptestutil.AssertHeaders(t, w, map[string]string{"X-Request-ID": "req-42"})
		assert.Equal(t, "req-42", w.Body.String())
	})

	t.Run("success: generates a request id", func(t *testing.T) {
		w := httptest.NewRecorder()

		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))

		id := w.Header().Get("X-Request-ID")
		assert.NotEmpty(t, id)
		assert.Equal(t, id, w.Body.String())
	})
}
