package handler

import (
	"net/http"
	"strings"

	"github.com/TaravanaApp/travel-service/internal/dto"
	"github.com/TaravanaApp/travel-service/internal/model"
	"github.com/gin-gonic/gin"
)

func (h *Handler) adminMiddleware(c *gin.Context) {
	header := c.GetHeader("Authorization")
	if !strings.HasPrefix(header, "Bearer ") {
		c.JSON(http.StatusUnauthorized, dto.NewBasicResponse(false, errNotAuthorized.Error()))
		c.Abort()
		return
	}

	accessToken := strings.Split(header, " ")[1]
	if accessToken == "" {
		c.JSON(http.StatusUnauthorized, dto.NewBasicResponse(false, errNotAuthorized.Error()))
		c.Abort()
		return
	}

	user, err := h.getUserDataFromAccessTokenClaims(c.Request.Context(), accessToken)
	if err != nil {
		c.JSON(http.StatusUnauthorized, dto.NewBasicResponse(false, errNotAuthorized.Error()))
		c.Abort()
		return
	}

	if user.Role != model.RoleAdmin {
		c.JSON(http.StatusForbidden, dto.NewBasicResponse(false, "no access"))
		c.Abort()
		return
	}

	c.Set("cached-user", *user)

	c.Next()
}
