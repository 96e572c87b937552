package httperr

import (
	"net/http"

	"civic-hub/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

const internalMessage = "Internal server error"

type Response struct {
	Status  int    `json:"-"`
	Message string `json:"message"`
	Kind    string `json:"kind"`
}

var statusByKind = map[errs.Kind]int{
	errs.KindValidation:             http.StatusBadRequest,
	errs.KindUnknownRequestType:     http.StatusBadRequest,
	errs.KindUnauthorized:           http.StatusUnauthorized,
	errs.KindForbidden:              http.StatusForbidden,
	errs.KindNotFound:               http.StatusNotFound,
	errs.KindConflict:               http.StatusConflict,
	errs.KindInsufficientStock:      http.StatusConflict,
	errs.KindAssetUnavailable:       http.StatusConflict,
	errs.KindInvalidStateTransition: http.StatusConflict,
	errs.KindHandlerFailed:          http.StatusUnprocessableEntity,
}

func StatusOf(kind errs.Kind) int {
	if status, ok := statusByKind[kind]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// Abort classifies err and responds with its kind. Internal errors never
// expose their message.
func Abort(c *gin.Context, err error) {
	kind := errs.KindOf(err)
	msg := internalMessage
	if kind != errs.KindInternal {
		msg = err.Error()
	}
	AbortWithError(c, StatusOf(kind), err, msg, kind)
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, msg string, kind errs.Kind) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := Response{Status: status, Message: msg, Kind: kind.String()}

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

func InternalResponse() Response {
	return Response{
		Status:  http.StatusInternalServerError,
		Message: internalMessage,
		Kind:    errs.KindInternal.String(),
	}
}
