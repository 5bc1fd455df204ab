package handler

import (
	"errors"
	"net/http"

	"github.com/TaravanaApp/travel-service/internal/dto"
	"github.com/TaravanaApp/travel-service/internal/service"
	"github.com/gin-gonic/gin"
)

var (
	errNotAuthorized           = errors.New("user is not authorized")
	errInvalidPostID           = errors.New("invalid post ID")
	errInvalidCommentID        = errors.New("invalid comment ID")
	errInvalidID               = errors.New("invalid ID")
	errInvalidAuthorID         = errors.New("invalid author ID")
	errLimitAndOffsetMustBeInt = errors.New("limit and offset must be int")
)

// respondServiceError maps service sentinel errors to distinct client-visible
// statuses: not-found, forbidden, and validation failures are never collapsed
// into 500s.
func respondServiceError(c *gin.Context, err error) {
	status := http.StatusInternalServerError

	switch {
	case errors.Is(err, service.ErrPostNotFound),
		errors.Is(err, service.ErrCommentNotFound),
		errors.Is(err, service.ErrCountryNotFound),
		errors.Is(err, service.ErrPlaceNotFound),
		errors.Is(err, service.ErrTripNotFound),
		errors.Is(err, service.ErrUserNotFound):
		status = http.StatusNotFound
	case errors.Is(err, service.ErrNoAccess):
		status = http.StatusForbidden
	case errors.Is(err, service.ErrNotAuthorized):
		status = http.StatusUnauthorized
	case errors.Is(err, service.ErrCommentContentBlank),
		errors.Is(err, service.ErrInvalidTripDates),
		errors.Is(err, service.ErrFileMustBeImage):
		status = http.StatusBadRequest
	}

	c.JSON(status, dto.NewBasicResponse(false, err.Error()))
}
