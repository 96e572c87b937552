package api

import (
	"net/http"

	reqdto "civic-hub/internal/handler/dto/request"
	resdto "civic-hub/internal/handler/dto/response"
	"civic-hub/internal/handler/httperr"
	"civic-hub/internal/usecase/commands"
	"civic-hub/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type RequestHandler struct {
	cmds commands.RequestCommands
	q    queries.RequestQueries
}

func NewRequestHandler(cmds commands.RequestCommands, q queries.RequestQueries) *RequestHandler {
	return &RequestHandler{cmds: cmds, q: q}
}

// @Summary Submit change request
// @Description The payload is stored as-is and only interpreted when approved
// @Tags requests
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.SubmitChangeRequest true "Change request"
// @Success 201 {object} resdto.ChangeRequestResponse
// @Failure 400 {object} httperr.Response
// @Router /api/requests [post]
func (h *RequestHandler) Submit(c *gin.Context) {
	actor, ok := actorOf(c)
	if !ok {
		return
	}
	var req reqdto.SubmitChangeRequest
	if !bindJSON(c, &req) {
		return
	}
	result, err := h.cmds.Submit(c.Request.Context(), actor, req.ToCommand())
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), actor, result.RequestID)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromRequestView(view))
}

// @Summary List change requests
// @Tags requests
// @Produce json
// @Security BearerAuth
// @Param status query string false "PENDING, APPROVED or REJECTED"
// @Param type query string false "Request type"
// @Param limit query int false "Max items (default 20)"
// @Param after query string false "Cursor for keyset pagination"
// @Success 200 {object} resdto.PageResponse[resdto.ChangeRequestResponse]
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /api/requests [get]
func (h *RequestHandler) List(c *gin.Context) {
	actor, ok := actorOf(c)
	if !ok {
		return
	}
	cursor, limit := pageQuery(c)
	filter := queries.RequestFilter{Status: optionalQuery(c, "status"), Type: optionalQuery(c, "type")}
	views, next, err := h.q.List(c.Request.Context(), actor, filter, cursor, limit)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromRequestPage(views, next))
}

// @Summary List my change requests
// @Tags requests
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Max items (default 20)"
// @Param after query string false "Cursor for keyset pagination"
// @Success 200 {object} resdto.PageResponse[resdto.ChangeRequestResponse]
// @Router /api/my-requests [get]
func (h *RequestHandler) ListMine(c *gin.Context) {
	actor, ok := actorOf(c)
	if !ok {
		return
	}
	cursor, limit := pageQuery(c)
	views, next, err := h.q.ListMine(c.Request.Context(), actor, cursor, limit)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromRequestPage(views, next))
}

// @Summary Get change request
// @Tags requests
// @Produce json
// @Security BearerAuth
// @Param id path string true "Request ID"
// @Success 200 {object} resdto.ChangeRequestResponse
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/requests/{id} [get]
func (h *RequestHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	actor, ok := actorOf(c)
	if !ok {
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), actor, id)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromRequestView(view))
}

// @Summary Approve or reject change request
// @Description Approval runs the handler registered for the request type in the
// @Description same transaction. A failing handler leaves the request PENDING.
// @Tags requests
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Request ID"
// @Param request body reqdto.DecisionRequest true "APPROVED or REJECTED"
// @Success 200 {object} resdto.ChangeRequestResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /api/requests/{id}/status [patch]
func (h *RequestHandler) Decide(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	actor, ok := actorOf(c)
	if !ok {
		return
	}
	var req reqdto.DecisionRequest
	if !bindJSON(c, &req) {
		return
	}
	decision, err := req.ToDecision()
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	if err := h.cmds.Decide(c.Request.Context(), actor, id, decision); err != nil {
		httperr.Abort(c, err)
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), actor, id)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromRequestView(view))
}
