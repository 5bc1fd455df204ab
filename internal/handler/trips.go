package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/TaravanaApp/travel-service/internal/dto"
	"github.com/TaravanaApp/travel-service/internal/model"
	"github.com/gin-gonic/gin"
)

func (h *Handler) tripsCreate(c *gin.Context) {
	user := h.getCachedUserFromRequest(c)

	var input dto.CreateTripRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewBasicResponse(false, err.Error()))
		return
	}

	createdTrip, err := h.services.Trip.Create(c.Request.Context(), principalOf(user), input)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, *createdTrip)
}

func (h *Handler) tripsGetMy(c *gin.Context) {
	user := h.getCachedUserFromRequest(c)

	limit, offset, err := parseLimitOffset(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.NewBasicResponse(false, err.Error()))
		return
	}

	var status *model.TripStatus
	statusString := strings.TrimSpace(c.Query("status"))
	if statusString != "" {
		tripStatus := model.TripStatus(statusString)
		status = &tripStatus
	}

	trips, err := h.services.Trip.FindMy(c.Request.Context(), principalOf(user), status, limit, offset)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, trips)
}

func (h *Handler) tripsEdit(c *gin.Context) {
	user := h.getCachedUserFromRequest(c)

	tripIDString := strings.TrimSpace(c.Param("tripID"))
	tripID, err := strconv.Atoi(tripIDString)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.NewBasicResponse(false, errInvalidID.Error()))
		return
	}

	var input dto.EditTripRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewBasicResponse(false, err.Error()))
		return
	}

	if err := h.services.Trip.Edit(c.Request.Context(), principalOf(user), int64(tripID), input); err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewBasicResponse(true, ""))
}

func (h *Handler) tripsDelete(c *gin.Context) {
	user := h.getCachedUserFromRequest(c)

	tripIDString := strings.TrimSpace(c.Param("tripID"))
	tripID, err := strconv.Atoi(tripIDString)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.NewBasicResponse(false, errInvalidID.Error()))
		return
	}

	if err := h.services.Trip.Delete(c.Request.Context(), principalOf(user), int64(tripID)); err != nil {
		respondServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
