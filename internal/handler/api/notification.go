package api

import (
	"net/http"
	"strconv"

	resdto "civic-hub/internal/handler/dto/response"
	"civic-hub/internal/handler/httperr"
	"civic-hub/internal/usecase/commands"
	"civic-hub/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type NotificationHandler struct {
	cmds commands.NotificationCommands
	q    queries.NotificationQueries
}

func NewNotificationHandler(cmds commands.NotificationCommands, q queries.NotificationQueries) *NotificationHandler {
	return &NotificationHandler{cmds: cmds, q: q}
}

// @Summary List my notifications
// @Tags notifications
// @Produce json
// @Security BearerAuth
// @Param unread query bool false "Only unread notifications"
// @Param limit query int false "Max items (default 20)"
// @Success 200 {object} resdto.NotificationListResponse
// @Router /api/notifications [get]
func (h *NotificationHandler) List(c *gin.Context) {
	actor, ok := actorOf(c)
	if !ok {
		return
	}
	limit := queries.DefaultListLimit
	if v, err := strconv.Atoi(c.Query("limit")); err == nil {
		limit = v
	}
	view, err := h.q.List(c.Request.Context(), actor, boolQuery(c, "unread"), limit)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromNotificationList(view))
}

// @Summary Mark notification as read
// @Tags notifications
// @Security BearerAuth
// @Param id path string true "Notification ID"
// @Success 204 "No Content"
// @Failure 404 {object} httperr.Response
// @Router /api/notifications/{id}/read [patch]
func (h *NotificationHandler) MarkRead(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	actor, ok := actorOf(c)
	if !ok {
		return
	}
	if err := h.cmds.MarkRead(c.Request.Context(), actor, id); err != nil {
		httperr.Abort(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Mark all notifications as read
// @Tags notifications
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.MarkAllReadResponse
// @Router /api/notifications/read-all [patch]
func (h *NotificationHandler) MarkAllRead(c *gin.Context) {
	actor, ok := actorOf(c)
	if !ok {
		return
	}
	n, err := h.cmds.MarkAllRead(c.Request.Context(), actor)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.MarkAllReadResponse{Updated: n})
}
