package api

import (
	"errors"
	"net/http"
	"strconv"

	reqdto "timeshare-portal/internal/handler/dto/request"
	resdto "timeshare-portal/internal/handler/dto/response"
	"timeshare-portal/internal/usecase/commands"
	"timeshare-portal/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type PropertyHandler struct {
	shareCommands   commands.ShareCommands
	propertyQueries queries.PropertyQueries
}

func NewPropertyHandler(shareCommands commands.ShareCommands, propertyQueries queries.PropertyQueries) *PropertyHandler {
	return &PropertyHandler{
		shareCommands:   shareCommands,
		propertyQueries: propertyQueries,
	}
}

// @Summary List properties
// @Description List every property with its four shares
// @Tags properties
// @Security BearerAuth
// @Produce json
// @Success 200 {array} resdto.PropertyResponse
// @Failure 401 {object} map[string]string
// @Router /properties [get]
func (h *PropertyHandler) List(c *gin.Context) {
	views, err := h.propertyQueries.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	response := make([]*resdto.PropertyResponse, len(views))
	for i, v := range views {
		response[i] = resdto.FromPropertyView(v)
	}
	c.JSON(http.StatusOK, response)
}

// @Summary Get property
// @Description Get a property with its four shares
// @Tags properties
// @Security BearerAuth
// @Produce json
// @Param id path string true "Property ID"
// @Success 200 {object} resdto.PropertyResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /properties/{id} [get]
func (h *PropertyHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid property ID format",
		})
		return
	}

	view, err := h.propertyQueries.GetByID(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Property not found",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromPropertyView(view))
}

// @Summary Create property
// @Description Create a property with four unowned shares at 25% of the price each
// @Tags properties
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body reqdto.CreatePropertyRequest true "Property request"
// @Success 201 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /properties [post]
func (h *PropertyHandler) Create(c *gin.Context) {
	var req reqdto.CreatePropertyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	id, err := h.shareCommands.CreateProperty(c.Request.Context(), req.Name, req.PriceCents)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrInvalidPrice):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid property price",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": id.String()})
}

// @Summary Update property price
// @Description Update the property price; share prices follow at 25% each
// @Tags properties
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Property ID"
// @Param request body reqdto.UpdatePriceRequest true "Price request"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /properties/{id}/price [put]
func (h *PropertyHandler) UpdatePrice(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid property ID format",
		})
		return
	}

	var req reqdto.UpdatePriceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	if err := h.shareCommands.UpdatePropertyPrice(c.Request.Context(), id, req.PriceCents); err != nil {
		switch {
		case errors.Is(err, commands.ErrPropertyNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Property not found",
			})
		case errors.Is(err, commands.ErrInvalidPrice):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid property price",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Assign share
// @Description Set or clear a share's owner and regenerate fixed allocations
// @Tags properties
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Property ID"
// @Param index path int true "Share index (1-4)"
// @Param request body reqdto.AssignShareRequest true "Assignment request"
// @Success 200 {object} resdto.AssignShareResponse
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /properties/{id}/shares/{index} [put]
func (h *PropertyHandler) AssignShare(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid property ID format",
		})
		return
	}

	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid share index",
		})
		return
	}

	var req reqdto.AssignShareRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	result, err := h.shareCommands.AssignShare(c.Request.Context(), id, index, req.OwnerID, req.AcquisitionKind())
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrPropertyNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Property not found",
			})
		case errors.Is(err, commands.ErrOwnerNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Owner not found",
			})
		case errors.Is(err, commands.ErrInvalidShare), errors.Is(err, commands.ErrInvalidAcquisition):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid share assignment",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromAssignShareResult(result))
}

// @Summary Regenerate allocations
// @Description Rerun fixed allocation reconciliation for a property
// @Tags properties
// @Security BearerAuth
// @Produce json
// @Param id path string true "Property ID"
// @Success 200 {object} resdto.AssignShareResponse
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /properties/{id}/allocations [post]
func (h *PropertyHandler) RegenerateAllocations(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid property ID format",
		})
		return
	}

	result, err := h.shareCommands.RegenerateAllocations(c.Request.Context(), id)
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

	c.JSON(http.StatusOK, resdto.FromAssignShareResult(result))
}
