package middleware

import (
	"fmt"
	"log/slog"
	"net/http"

	"civic-hub/internal/handler/httperr"
	"civic-hub/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

const stackDepth = 12

// ErrorHandler logs server-side failures and writes a {message, kind} body for
// handlers that recorded an error without responding.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}
		last := c.Errors.Last()
		resp, classified := last.Meta.(httperr.Response)
		if !classified {
			kind := errs.KindOf(last.Err)
			resp = httperr.Response{Status: httperr.StatusOf(kind), Message: last.Err.Error(), Kind: kind.String()}
			if kind == errs.KindInternal {
				resp = httperr.InternalResponse()
			}
		}

		if resp.Status >= http.StatusInternalServerError {
			slog.Error("request failed",
				"request_id", GetRequestID(c),
				"method", c.Request.Method,
				"path", c.FullPath(),
				"error", last.Err.Error(),
				"stack", errs.ExtractStackLines(last.Err, stackDepth))
		}

		if c.Writer.Written() {
			return
		}
		c.AbortWithStatusJSON(resp.Status, resp)
	}
}

func CustomRecovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if rec := recover(); rec != nil {
				slog.Error("recovered from panic",
					"request_id", GetRequestID(c),
					"panic", fmt.Sprint(rec),
					"path", c.Request.URL.Path)
				c.AbortWithStatusJSON(http.StatusInternalServerError, httperr.InternalResponse())
			}
		}()
		c.Next()
	}
}
