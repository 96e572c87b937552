package api

import (
	"net/http"
	"strconv"
	"time"

	"civic-hub/internal/domain/user"
	"civic-hub/internal/handler/httperr"
	"civic-hub/internal/handler/middleware"
	"civic-hub/internal/pkg/errs"
	"civic-hub/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

var (
	errInvalidID    = errs.Mark(errs.New("id must be a UUID"), errs.ErrValidation)
	errInvalidQuery = errs.Mark(errs.New("invalid query parameter"), errs.ErrValidation)
)

// actorOf is only false when a route was registered outside RequireAuth.
func actorOf(c *gin.Context) (user.Actor, bool) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errs.New("no actor in context"), "Unauthorized", errs.KindUnauthorized)
	}
	return actor, ok
}

func pathID(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		httperr.Abort(c, errs.Wrapf(errInvalidID, "%s %q", name, c.Param(name)))
		return uuid.Nil, false
	}
	return id, true
}

func bindJSON(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request: "+err.Error(), errs.KindValidation)
		return false
	}
	return true
}

func optionalQuery(c *gin.Context, key string) *string {
	if v, ok := c.GetQuery(key); ok && v != "" {
		return &v
	}
	return nil
}

func optionalUUIDQuery(c *gin.Context, key string) (*uuid.UUID, bool) {
	v := optionalQuery(c, key)
	if v == nil {
		return nil, true
	}
	id, err := uuid.Parse(*v)
	if err != nil {
		httperr.Abort(c, errs.Wrapf(errInvalidQuery, "%s must be a UUID", key))
		return nil, false
	}
	return &id, true
}

func boolQuery(c *gin.Context, key string) bool {
	v, err := strconv.ParseBool(c.Query(key))
	return err == nil && v
}

func timeQuery(c *gin.Context, key string) (time.Time, bool) {
	t, err := time.Parse(time.RFC3339, c.Query(key))
	if err != nil {
		httperr.Abort(c, errs.Wrapf(errInvalidQuery, "%s must be an RFC 3339 timestamp", key))
		return time.Time{}, false
	}
	return t, true
}

// pageQuery reads limit and after. Unparseable limits fall back to the default.
func pageQuery(c *gin.Context) (*queries.Cursor, int) {
	limit := queries.DefaultListLimit
	if v := c.Query("limit"); v != "" {
		if iv, err := strconv.Atoi(v); err == nil {
			limit = queries.ValidateLimit(iv)
		}
	}
	var cursor *queries.Cursor
	if after := c.Query("after"); after != "" {
		cursor = &queries.Cursor{After: after}
	}
	return cursor, limit
}
