package api

import (
	"net/http"

	"civic-hub/internal/domain/user"
	reqdto "civic-hub/internal/handler/dto/request"
	resdto "civic-hub/internal/handler/dto/response"
	"civic-hub/internal/handler/httperr"
	"civic-hub/internal/pkg/errs"
	"civic-hub/internal/usecase/commands"
	"civic-hub/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type BookingHandler struct {
	cmds commands.BookingCommands
	q    queries.BookingQueries
}

func NewBookingHandler(cmds commands.BookingCommands, q queries.BookingQueries) *BookingHandler {
	return &BookingHandler{cmds: cmds, q: q}
}

// @Summary List bookings
// @Description Newest first. Residents see public bookings and their own.
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param status query string false "PENDING, APPROVED or REJECTED"
// @Param resourceId query string false "Resource ID"
// @Param mine query bool false "Only the caller's bookings"
// @Param limit query int false "Max items (default 20)"
// @Param after query string false "Cursor for keyset pagination"
// @Success 200 {object} resdto.PageResponse[resdto.BookingResponse]
// @Failure 400 {object} httperr.Response
// @Router /api/bookings [get]
func (h *BookingHandler) List(c *gin.Context) {
	actor, ok := actorOf(c)
	if !ok {
		return
	}
	resourceID, ok := optionalUUIDQuery(c, "resourceId")
	if !ok {
		return
	}
	cursor, limit := pageQuery(c)
	filter := queries.BookingFilter{
		Status:     optionalQuery(c, "status"),
		ResourceID: resourceID,
		Mine:       boolQuery(c, "mine"),
	}
	views, next, err := h.q.List(c.Request.Context(), actor, filter, cursor, limit)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookingPage(views, next))
}

// @Summary Get booking
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 404 {object} httperr.Response
// @Router /api/bookings/{id} [get]
func (h *BookingHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	actor, ok := actorOf(c)
	if !ok {
		return
	}
	h.respond(c, http.StatusOK, actor, id)
}

// @Summary Submit booking
// @Description Creates a PENDING booking. Overlaps are only checked at approval.
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.SubmitBookingRequest true "Booking"
// @Success 201 {object} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/bookings [post]
func (h *BookingHandler) Submit(c *gin.Context) {
	actor, ok := actorOf(c)
	if !ok {
		return
	}
	var req reqdto.SubmitBookingRequest
	if !bindJSON(c, &req) {
		return
	}
	result, err := h.cmds.Submit(c.Request.Context(), actor, req.ToCommand())
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	h.respond(c, http.StatusCreated, actor, result.BookingID)
}

// @Summary Edit booking
// @Description Owner or admin, only while PENDING
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Param request body reqdto.EditBookingRequest true "Fields to change"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/bookings/{id} [put]
func (h *BookingHandler) Edit(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	actor, ok := actorOf(c)
	if !ok {
		return
	}
	var req reqdto.EditBookingRequest
	if !bindJSON(c, &req) {
		return
	}
	if err := h.cmds.Edit(c.Request.Context(), actor, id, req.ToCommand()); err != nil {
		httperr.Abort(c, err)
		return
	}
	h.respond(c, http.StatusOK, actor, id)
}

// @Summary Approve or reject booking
// @Description Approval fails with a conflict when an approved booking overlaps
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Param request body reqdto.DecisionRequest true "APPROVED or REJECTED"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/bookings/{id}/status [patch]
func (h *BookingHandler) Decide(c *gin.Context) {
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
	h.respond(c, http.StatusOK, actor, id)
}

// @Summary Record handover checklist
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Param request body reqdto.HandoverRequest true "Checklist"
// @Success 200 {object} resdto.BookingResponse
// @Failure 403 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/bookings/{id}/handover [patch]
func (h *BookingHandler) RecordHandover(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	actor, ok := actorOf(c)
	if !ok {
		return
	}
	var req reqdto.HandoverRequest
	if !bindJSON(c, &req) {
		return
	}
	if err := h.cmds.RecordHandover(c.Request.Context(), actor, id, req.ToCommand()); err != nil {
		httperr.Abort(c, err)
		return
	}
	h.respond(c, http.StatusOK, actor, id)
}

// @Summary Delete booking
// @Tags bookings
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 204 "No Content"
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/bookings/{id} [delete]
func (h *BookingHandler) Delete(c *gin.Context) {
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

// @Summary Availability calendar
// @Description Hourly grid from 08:00 to 22:00 built from approved bookings
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param date query string true "YYYY-MM-DD"
// @Param resource query []string false "Resource IDs" collectionFormat(multi)
// @Param building query string false "Building"
// @Param showPrivate query bool false "Admins only: reveal private bookings"
// @Success 200 {object} resdto.CalendarResponse
// @Failure 400 {object} httperr.Response
// @Router /api/bookings/calendar [get]
func (h *BookingHandler) Calendar(c *gin.Context) {
	actor, ok := actorOf(c)
	if !ok {
		return
	}
	req := queries.CalendarRequest{
		Date:        c.Query("date"),
		Building:    optionalQuery(c, "building"),
		ShowPrivate: boolQuery(c, "showPrivate"),
	}
	for _, raw := range c.QueryArray("resource") {
		id, err := uuid.Parse(raw)
		if err != nil {
			httperr.Abort(c, errs.Wrap(errInvalidQuery, "resource must be a UUID"))
			return
		}
		req.ResourceIDs = append(req.ResourceIDs, id)
	}
	view, err := h.q.Calendar(c.Request.Context(), actor, req)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCalendarView(view))
}

// @Summary Check resource availability
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param resourceId query string true "Resource ID"
// @Param start query string true "RFC 3339 start"
// @Param end query string true "RFC 3339 end"
// @Success 200 {object} resdto.AvailabilityResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/bookings/availability [get]
func (h *BookingHandler) Availability(c *gin.Context) {
	resourceID, err := uuid.Parse(c.Query("resourceId"))
	if err != nil {
		httperr.Abort(c, errs.Wrap(errInvalidQuery, "resourceId must be a UUID"))
		return
	}
	start, ok := timeQuery(c, "start")
	if !ok {
		return
	}
	end, ok := timeQuery(c, "end")
	if !ok {
		return
	}
	view, err := h.q.IsResourceFree(c.Request.Context(), resourceID, start, end)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromAvailabilityView(view))
}

func (h *BookingHandler) respond(c *gin.Context, status int, actor user.Actor, id uuid.UUID) {
	view, err := h.q.GetByID(c.Request.Context(), actor, id)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(status, resdto.FromBookingView(view))
}
