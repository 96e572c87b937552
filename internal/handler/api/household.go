package api

import (
	"net/http"

	"civic-hub/internal/domain/user"
	reqdto "civic-hub/internal/handler/dto/request"
	resdto "civic-hub/internal/handler/dto/response"
	"civic-hub/internal/handler/httperr"
	"civic-hub/internal/usecase/commands"
	"civic-hub/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type HouseholdHandler struct {
	cmds commands.HouseholdCommands
	q    queries.HouseholdQueries
}

func NewHouseholdHandler(cmds commands.HouseholdCommands, q queries.HouseholdQueries) *HouseholdHandler {
	return &HouseholdHandler{cmds: cmds, q: q}
}

// @Summary Get my household
// @Tags households
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.HouseholdResponse
// @Failure 404 {object} httperr.Response
// @Router /api/my-household [get]
func (h *HouseholdHandler) Mine(c *gin.Context) {
	actor, ok := actorOf(c)
	if !ok {
		return
	}
	view, err := h.q.Mine(c.Request.Context(), actor)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromHouseholdView(view))
}

// @Summary List persons of my household
// @Tags households
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.PersonResponse
// @Failure 404 {object} httperr.Response
// @Router /api/my-household/persons [get]
func (h *HouseholdHandler) MyPersons(c *gin.Context) {
	actor, ok := actorOf(c)
	if !ok {
		return
	}
	views, err := h.q.MyPersons(c.Request.Context(), actor)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromPersonList(views))
}

// @Summary List households
// @Tags households
// @Produce json
// @Security BearerAuth
// @Param q query string false "Code or address search"
// @Success 200 {array} resdto.HouseholdResponse
// @Failure 403 {object} httperr.Response
// @Router /api/households [get]
func (h *HouseholdHandler) List(c *gin.Context) {
	actor, ok := actorOf(c)
	if !ok {
		return
	}
	views, err := h.q.List(c.Request.Context(), actor, optionalQuery(c, "q"))
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromHouseholdList(views))
}

// @Summary Get household
// @Description Includes the household's persons
// @Tags households
// @Produce json
// @Security BearerAuth
// @Param id path string true "Household ID"
// @Success 200 {object} resdto.HouseholdResponse
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/households/{id} [get]
func (h *HouseholdHandler) Get(c *gin.Context) {
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
	c.JSON(http.StatusOK, resdto.FromHouseholdView(view))
}

// @Summary Create household
// @Tags households
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateHouseholdRequest true "Household"
// @Success 201 {object} resdto.HouseholdResponse
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/households [post]
func (h *HouseholdHandler) Create(c *gin.Context) {
	actor, ok := actorOf(c)
	if !ok {
		return
	}
	var req reqdto.CreateHouseholdRequest
	if !bindJSON(c, &req) {
		return
	}
	result, err := h.cmds.Create(c.Request.Context(), actor, req.ToCommand())
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	h.respond(c, http.StatusCreated, actor, result.HouseholdID)
}

// @Summary Add member to household
// @Description Links a user account to the household
// @Tags households
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Household ID"
// @Param request body reqdto.AddMemberRequest true "Member"
// @Success 200 {object} resdto.HouseholdResponse
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/households/{id}/members [post]
func (h *HouseholdHandler) AddMember(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	actor, ok := actorOf(c)
	if !ok {
		return
	}
	var req reqdto.AddMemberRequest
	if !bindJSON(c, &req) {
		return
	}
	if err := h.cmds.AddMember(c.Request.Context(), actor, id, req.UserID); err != nil {
		httperr.Abort(c, err)
		return
	}
	h.respond(c, http.StatusOK, actor, id)
}

func (h *HouseholdHandler) respond(c *gin.Context, status int, actor user.Actor, id uuid.UUID) {
	view, err := h.q.GetByID(c.Request.Context(), actor, id)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(status, resdto.FromHouseholdView(view))
}
