package handler

import (
	"net/http"

	"github.com/TaravanaApp/travel-service/internal/dto"
	"github.com/gin-gonic/gin"
)

func (h *Handler) usersGetMe(c *gin.Context) {
	user := h.getCachedUserFromRequest(c)

	me, err := h.services.UserCache.GetMe(c.Request.Context(), principalOf(user))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, me)
}

func (h *Handler) usersUpdateProfile(c *gin.Context) {
	user := h.getCachedUserFromRequest(c)

	var input dto.UpdateProfileRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewBasicResponse(false, err.Error()))
		return
	}

	if err := h.services.UserCache.UpdateProfile(c.Request.Context(), principalOf(user), input); err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewBasicResponse(true, ""))
}
