package api

import (
	"errors"
	"net/http"

	"timeshare-portal/internal/domain/reservation"
	reqdto "timeshare-portal/internal/handler/dto/request"
	resdto "timeshare-portal/internal/handler/dto/response"
	"timeshare-portal/internal/handler/httperr"
	"timeshare-portal/internal/handler/middleware"
	"timeshare-portal/internal/usecase/commands"
	"timeshare-portal/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ReservationHandler struct {
	reservationCommands commands.ReservationCommands
	calendarQueries     queries.CalendarQueries
}

func NewReservationHandler(reservationCommands commands.ReservationCommands, calendarQueries queries.CalendarQueries) *ReservationHandler {
	return &ReservationHandler{
		reservationCommands: reservationCommands,
		calendarQueries:     calendarQueries,
	}
}

func requireActor(c *gin.Context) (commands.Actor, bool) {
	ownerID, ok := middleware.GetOwnerID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return commands.Actor{}, false
	}
	role, ok := middleware.GetOwnerRole(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return commands.Actor{}, false
	}
	return commands.Actor{ID: ownerID, Role: role}, true
}

// @Summary Create reservation
// @Description Book arbitrary dates on a property
// @Tags reservations
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body reqdto.CreateReservationRequest true "Reservation request"
// @Success 201 {object} resdto.CreateReservationResponse
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} httperr.Response
// @Router /reservations [post]
func (h *ReservationHandler) Create(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	var req reqdto.CreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	dates, err := req.ToDateRange()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid date range",
		})
		return
	}

	result, err := h.reservationCommands.CreateAdHoc(c.Request.Context(), actor, req.PropertyID, req.BookingOwner(actor.ID), dates)
	if err != nil {
		abortReservationError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.CreateReservationResponse{ID: result.ReservationID})
}

// @Summary Get calendar entry
// @Description Get one reservation of any kind by ID
// @Tags reservations
// @Security BearerAuth
// @Produce json
// @Param id path string true "Reservation ID"
// @Success 200 {object} resdto.CalendarEntryResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /reservations/{id} [get]
func (h *ReservationHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid reservation ID format",
		})
		return
	}

	view, err := h.calendarQueries.GetEntry(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Reservation not found",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromCalendarEntryView(view))
}

// @Summary Get own reservations
// @Description List every reservation of the authenticated owner, any kind
// @Tags reservations
// @Security BearerAuth
// @Produce json
// @Success 200 {array} resdto.CalendarEntryResponse
// @Failure 401 {object} map[string]string
// @Router /reservations [get]
func (h *ReservationHandler) ListMine(c *gin.Context) {
	ownerID, ok := middleware.GetOwnerID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	views, err := h.calendarQueries.ListByOwner(c.Request.Context(), ownerID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromCalendarEntryViews(views))
}

// @Summary Property calendar
// @Description List every reservation booked on a property, any kind
// @Tags reservations
// @Security BearerAuth
// @Produce json
// @Param id path string true "Property ID"
// @Success 200 {array} resdto.CalendarEntryResponse
// @Failure 400 {object} map[string]string
// @Router /properties/{id}/calendar [get]
func (h *ReservationHandler) ListForProperty(c *gin.Context) {
	propertyID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid property ID format",
		})
		return
	}

	views, err := h.calendarQueries.ListByProperty(c.Request.Context(), propertyID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromCalendarEntryViews(views))
}

// @Summary Set reservation status
// @Description Move an ad-hoc reservation through its lifecycle
// @Tags reservations
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Reservation ID"
// @Param request body reqdto.SetStatusRequest true "Status request"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /reservations/{id}/status [patch]
func (h *ReservationHandler) SetStatus(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid reservation ID format",
		})
		return
	}

	var req reqdto.SetStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	if err := h.reservationCommands.SetStatus(c.Request.Context(), actor, id, reservation.Status(req.Status)); err != nil {
		abortReservationError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Delete reservation
// @Description Remove a reservation outright
// @Tags reservations
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /reservations/{id} [delete]
func (h *ReservationHandler) Delete(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid reservation ID format",
		})
		return
	}

	if err := h.reservationCommands.Delete(c.Request.Context(), actor, id); err != nil {
		abortReservationError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// abortReservationError maps workflow errors onto HTTP statuses. A conflict
// answers 409 and names the blocking reservations in the detail.
func abortReservationError(c *gin.Context, err error) {
	var conflict *commands.ConflictError
	switch {
	case errors.As(err, &conflict):
		httperr.AbortWithError(c, http.StatusConflict, err, "Requested dates are already reserved", conflict.Blocking)
	case errors.Is(err, commands.ErrReservationConflict):
		httperr.AbortWithError(c, http.StatusConflict, err, "Requested dates are already reserved", nil)
	case errors.Is(err, commands.ErrReservationNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Reservation not found",
		})
	case errors.Is(err, commands.ErrPropertyNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Property not found",
		})
	case errors.Is(err, commands.ErrOwnerNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Owner not found",
		})
	case errors.Is(err, commands.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{
			"error": "Insufficient permissions",
		})
	case errors.Is(err, commands.ErrIllegalTransition):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error": "Illegal status transition",
		})
	case errors.Is(err, commands.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid reservation request",
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
	}
}
