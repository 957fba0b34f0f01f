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

type ExchangeHandler struct {
	exchangeCommands commands.ExchangeCommands
	ownerQueries     queries.OwnerQueries
}

func NewExchangeHandler(exchangeCommands commands.ExchangeCommands, ownerQueries queries.OwnerQueries) *ExchangeHandler {
	return &ExchangeHandler{
		exchangeCommands: exchangeCommands,
		ownerQueries:     ownerQueries,
	}
}

// @Summary Quote an exchange
// @Description Price a candidate date range in points without booking
// @Tags exchanges
// @Security BearerAuth
// @Produce json
// @Param property_id query string true "Property ID"
// @Param start_date query string true "Start date (YYYY-MM-DD)"
// @Param end_date query string true "End date (YYYY-MM-DD)"
// @Success 200 {object} resdto.QuoteResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /exchanges/quote [get]
func (h *ExchangeHandler) Quote(c *gin.Context) {
	var req reqdto.QuoteRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	propertyID, err := uuid.Parse(req.PropertyID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid property ID format",
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

	view, err := h.exchangeCommands.Quote(c.Request.Context(), propertyID, dates)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrPropertyNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Property not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromQuoteView(view))
}

// @Summary Book an exchange
// @Description Book a property for points; checks conflicts, prices the range and debits the balance atomically
// @Tags exchanges
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body reqdto.BookExchangeRequest true "Exchange request"
// @Success 201 {object} resdto.BookExchangeResponse
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /exchanges [post]
func (h *ExchangeHandler) Book(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	var req reqdto.BookExchangeRequest
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

	result, err := h.exchangeCommands.Book(c.Request.Context(), actor, req.PropertyID, req.BookingOwner(actor.ID), dates)
	if err != nil {
		abortExchangeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromBookExchangeResult(result))
}

// @Summary Set exchange status
// @Description Move an exchange reservation through its lifecycle
// @Tags exchanges
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Exchange reservation ID"
// @Param request body reqdto.SetStatusRequest true "Status request"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /exchanges/{id}/status [patch]
func (h *ExchangeHandler) SetStatus(c *gin.Context) {
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

	if err := h.exchangeCommands.SetStatus(c.Request.Context(), actor, id, reservation.Status(req.Status)); err != nil {
		abortExchangeError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Delete exchange
// @Description Remove an exchange reservation outright
// @Tags exchanges
// @Security BearerAuth
// @Param id path string true "Exchange reservation ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /exchanges/{id} [delete]
func (h *ExchangeHandler) Delete(c *gin.Context) {
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

	if err := h.exchangeCommands.Delete(c.Request.Context(), actor, id); err != nil {
		abortExchangeError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Get points balance
// @Description Get the authenticated owner's guest point balance
// @Tags exchanges
// @Security BearerAuth
// @Produce json
// @Success 200 {object} resdto.BalanceResponse
// @Failure 401 {object} map[string]string
// @Router /owners/me/points [get]
func (h *ExchangeHandler) Balance(c *gin.Context) {
	ownerID, ok := middleware.GetOwnerID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	view, err := h.ownerQueries.GetBalance(c.Request.Context(), ownerID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Owner not found",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromBalanceView(view))
}

func abortExchangeError(c *gin.Context, err error) {
	var insufficient *commands.InsufficientPointsError
	if errors.As(err, &insufficient) {
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Insufficient points balance", gin.H{
			"price":   insufficient.Price,
			"balance": insufficient.Balance,
		})
		return
	}
	if errors.Is(err, commands.ErrInsufficientPoints) {
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Insufficient points balance", nil)
		return
	}
	abortReservationError(c, err)
}
