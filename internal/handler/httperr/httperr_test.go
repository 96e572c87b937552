//go:build unit

package httperr_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"civic-hub/internal/handler/httperr"
	"civic-hub/internal/pkg/errs"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestStatusOf(t *testing.T) {
	tests := []struct {
		kind errs.Kind
		want int
	}{
		{errs.KindValidation, http.StatusBadRequest},
		{errs.KindUnknownRequestType, http.StatusBadRequest},
		{errs.KindUnauthorized, http.StatusUnauthorized},
		{errs.KindForbidden, http.StatusForbidden},
		{errs.KindNotFound, http.StatusNotFound},
		{errs.KindConflict, http.StatusConflict},
		{errs.KindInsufficientStock, http.StatusConflict},
		{errs.KindAssetUnavailable, http.StatusConflict},
		{errs.KindInvalidStateTransition, http.StatusConflict},
		{errs.KindHandlerFailed, http.StatusUnprocessableEntity},
		{errs.KindInternal, http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, httperr.StatusOf(tt.kind))
		})
	}
}

func TestAbort(t *testing.T) {
	gin.SetMode(gin.TestMode)

	run := func(err error) *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		httperr.Abort(c, err)
		return w
	}

	t.Run("success: classified errors keep their message", func(t *testing.T) {
		err := errs.Mark(errs.New("asset not found"), errs.ErrNotFound)

		w := run(err)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.JSONEq(t, `{"message":"asset not found","kind":"NotFound"}`, w.Body.String())
	})

	t.Run("success: internal errors are masked", func(t *testing.T) {
		w := run(errors.New("pq: connection refused"))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.JSONEq(t, `{"message":"Internal server error","kind":"InternalError"}`, w.Body.String())
	})
}
