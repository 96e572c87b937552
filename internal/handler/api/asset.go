package api

import (
	"net/http"
	"strconv"

	reqdto "civic-hub/internal/handler/dto/request"
	resdto "civic-hub/internal/handler/dto/response"
	"civic-hub/internal/handler/httperr"
	"civic-hub/internal/usecase/commands"
	"civic-hub/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type AssetHandler struct {
	cmds commands.AssetCommands
	q    queries.AssetQueries
}

func NewAssetHandler(cmds commands.AssetCommands, q queries.AssetQueries) *AssetHandler {
	return &AssetHandler{cmds: cmds, q: q}
}

// @Summary List assets
// @Description Available quantity is derived from open borrow logs
// @Tags assets
// @Produce json
// @Security BearerAuth
// @Param category query string false "Category"
// @Param status query string false "Status"
// @Param q query string false "Name search"
// @Success 200 {array} resdto.AssetResponse
// @Failure 400 {object} httperr.Response
// @Router /api/assets [get]
func (h *AssetHandler) List(c *gin.Context) {
	filter := queries.AssetFilter{
		Category: optionalQuery(c, "category"),
		Status:   optionalQuery(c, "status"),
		Search:   optionalQuery(c, "q"),
	}
	views, err := h.q.List(c.Request.Context(), filter)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromAssetList(views))
}

// @Summary Get asset
// @Tags assets
// @Produce json
// @Security BearerAuth
// @Param id path string true "Asset ID"
// @Success 200 {object} resdto.AssetResponse
// @Failure 404 {object} httperr.Response
// @Router /api/assets/{id} [get]
func (h *AssetHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromAssetView(view))
}

// @Summary Create asset
// @Tags assets
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.AssetRequest true "Asset"
// @Success 201 {object} resdto.AssetResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /api/assets [post]
func (h *AssetHandler) Create(c *gin.Context) {
	actor, ok := actorOf(c)
	if !ok {
		return
	}
	var req reqdto.AssetRequest
	if !bindJSON(c, &req) {
		return
	}
	result, err := h.cmds.Create(c.Request.Context(), actor, req.ToInput())
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), result.AssetID)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromAssetView(view))
}

// @Summary Update asset
// @Description The total cannot drop below the borrowed quantity
// @Tags assets
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Asset ID"
// @Param request body reqdto.AssetRequest true "Asset"
// @Success 200 {object} resdto.AssetResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/assets/{id} [put]
func (h *AssetHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	actor, ok := actorOf(c)
	if !ok {
		return
	}
	var req reqdto.AssetRequest
	if !bindJSON(c, &req) {
		return
	}
	if err := h.cmds.Update(c.Request.Context(), actor, id, req.ToInput()); err != nil {
		httperr.Abort(c, err)
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromAssetView(view))
}

// @Summary Delete asset
// @Description Assets with ledger history are retired instead
// @Tags assets
// @Security BearerAuth
// @Param id path string true "Asset ID"
// @Success 204 "No Content"
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/assets/{id} [delete]
func (h *AssetHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	actor, ok := actorOf(c)
	if !ok {
		return
	}
	if err := h.cmds.Delete(c.Request.Context(), actor, id); err != nil {
		httperr.Abort(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Borrow asset
// @Tags assets
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.BorrowRequest true "Borrow"
// @Success 201 {object} resdto.BorrowLogResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/assets/borrow [post]
func (h *AssetHandler) Borrow(c *gin.Context) {
	actor, ok := actorOf(c)
	if !ok {
		return
	}
	var req reqdto.BorrowRequest
	if !bindJSON(c, &req) {
		return
	}
	result, err := h.cmds.Borrow(c.Request.Context(), actor, req.ToCommand())
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	view, err := h.q.GetBorrowLog(c.Request.Context(), actor, result.BorrowLogID)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromBorrowLogView(view))
}

// @Summary Return asset
// @Description Closes an open borrow log as RETURNED or DAMAGED
// @Tags assets
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.ReturnRequest true "Return"
// @Success 200 {object} resdto.BorrowLogResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/assets/return [post]
func (h *AssetHandler) Return(c *gin.Context) {
	actor, ok := actorOf(c)
	if !ok {
		return
	}
	var req reqdto.ReturnRequest
	if !bindJSON(c, &req) {
		return
	}
	if err := h.cmds.Return(c.Request.Context(), actor, req.ToCommand()); err != nil {
		httperr.Abort(c, err)
		return
	}
	view, err := h.q.GetBorrowLog(c.Request.Context(), actor, req.BorrowLogID)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBorrowLogView(view))
}

// @Summary List borrow logs
// @Description Residents see their own logs
// @Tags assets
// @Produce json
// @Security BearerAuth
// @Param status query string false "BORROWED, RETURNED or DAMAGED"
// @Param assetId query string false "Asset ID"
// @Param limit query int false "Max items (default 20)"
// @Success 200 {array} resdto.BorrowLogResponse
// @Failure 400 {object} httperr.Response
// @Router /api/assets/borrow-logs [get]
func (h *AssetHandler) ListBorrowLogs(c *gin.Context) {
	actor, ok := actorOf(c)
	if !ok {
		return
	}
	assetID, ok := optionalUUIDQuery(c, "assetId")
	if !ok {
		return
	}
	limit := queries.DefaultListLimit
	if v, err := strconv.Atoi(c.Query("limit")); err == nil {
		limit = v
	}
	filter := queries.BorrowLogFilter{Status: optionalQuery(c, "status"), AssetID: assetID}
	views, err := h.q.ListBorrowLogs(c.Request.Context(), actor, filter, limit)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBorrowLogList(views))
}

// @Summary Get borrow log
// @Tags assets
// @Produce json
// @Security BearerAuth
// @Param id path string true "Borrow log ID"
// @Success 200 {object} resdto.BorrowLogResponse
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/assets/borrow-logs/{id} [get]
func (h *AssetHandler) GetBorrowLog(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	actor, ok := actorOf(c)
	if !ok {
		return
	}
	view, err := h.q.GetBorrowLog(c.Request.Context(), actor, id)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBorrowLogView(view))
}
