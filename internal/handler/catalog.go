package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/TaravanaApp/travel-service/internal/dto"
	"github.com/gin-gonic/gin"
)

func (h *Handler) countriesCreate(c *gin.Context) {
	var input dto.CreateCountryRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewBasicResponse(false, err.Error()))
		return
	}

	createdCountry, err := h.services.Country.Create(c.Request.Context(), input)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, *createdCountry)
}

func (h *Handler) countriesGet(c *gin.Context) {
	limit, offset, err := parseLimitOffset(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.NewBasicResponse(false, err.Error()))
		return
	}

	countries, err := h.services.Country.FindAll(c.Request.Context(), limit, offset)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, countries)
}

func (h *Handler) countriesGetByID(c *gin.Context) {
	countryIDString := strings.TrimSpace(c.Param("countryID"))
	countryID, err := strconv.Atoi(countryIDString)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.NewBasicResponse(false, errInvalidID.Error()))
		return
	}

	country, err := h.services.Country.FindByID(c.Request.Context(), int64(countryID))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, country)
}

func (h *Handler) countriesEdit(c *gin.Context) {
	countryIDString := strings.TrimSpace(c.Param("countryID"))
	countryID, err := strconv.Atoi(countryIDString)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.NewBasicResponse(false, errInvalidID.Error()))
		return
	}

	var input dto.EditCountryRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewBasicResponse(false, err.Error()))
		return
	}

	if err := h.services.Country.Edit(c.Request.Context(), int64(countryID), input); err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewBasicResponse(true, ""))
}

func (h *Handler) countriesDelete(c *gin.Context) {
	countryIDString := strings.TrimSpace(c.Param("countryID"))
	countryID, err := strconv.Atoi(countryIDString)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.NewBasicResponse(false, errInvalidID.Error()))
		return
	}

	if err := h.services.Country.Delete(c.Request.Context(), int64(countryID)); err != nil {
		respondServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *Handler) placesCreate(c *gin.Context) {
	var input dto.CreatePlaceRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewBasicResponse(false, err.Error()))
		return
	}

	createdPlace, err := h.services.Place.Create(c.Request.Context(), input)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, *createdPlace)
}

func (h *Handler) placesGet(c *gin.Context) {
	limit, offset, err := parseLimitOffset(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.NewBasicResponse(false, err.Error()))
		return
	}

	var countryID *int64
	countryIDString := strings.TrimSpace(c.Query("country_id"))
	if countryIDString != "" {
		id, err := strconv.Atoi(countryIDString)
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.NewBasicResponse(false, errInvalidID.Error()))
			return
		}
		id64 := int64(id)
		countryID = &id64
	}

	places, err := h.services.Place.FindAll(c.Request.Context(), countryID, limit, offset)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, places)
}

func (h *Handler) placesGetByID(c *gin.Context) {
	placeIDString := strings.TrimSpace(c.Param("placeID"))
	placeID, err := strconv.Atoi(placeIDString)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.NewBasicResponse(false, errInvalidID.Error()))
		return
	}

	place, err := h.services.Place.FindByID(c.Request.Context(), int64(placeID))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, place)
}

func (h *Handler) placesEdit(c *gin.Context) {
	placeIDString := strings.TrimSpace(c.Param("placeID"))
	placeID, err := strconv.Atoi(placeIDString)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.NewBasicResponse(false, errInvalidID.Error()))
		return
	}

	var input dto.EditPlaceRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewBasicResponse(false, err.Error()))
		return
	}

	if err := h.services.Place.Edit(c.Request.Context(), int64(placeID), input); err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewBasicResponse(true, ""))
}

func (h *Handler) placesDelete(c *gin.Context) {
	placeIDString := strings.TrimSpace(c.Param("placeID"))
	placeID, err := strconv.Atoi(placeIDString)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.NewBasicResponse(false, errInvalidID.Error()))
		return
	}

	if err := h.services.Place.Delete(c.Request.Context(), int64(placeID)); err != nil {
		respondServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
