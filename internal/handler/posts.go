package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/TaravanaApp/travel-service/internal/dto"
	"github.com/TaravanaApp/travel-service/internal/model"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func parseLimitOffset(c *gin.Context) (int, int, error) {
	limit, err0 := strconv.Atoi(c.DefaultQuery("limit", "0"))
	offset, err1 := strconv.Atoi(c.DefaultQuery("offset", "0"))
	if err0 != nil || err1 != nil {
		return 0, 0, errLimitAndOffsetMustBeInt
	}

	return limit, offset, nil
}

func (h *Handler) postsUploadImage(c *gin.Context) {
	file, fileHeader, err := c.Request.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.NewBasicResponse(false, err.Error()))
		return
	}

	url, err := h.services.Post.UploadTempPostImage(c.Request.Context(), file, fileHeader)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, url)
}

func (h *Handler) postsCreate(c *gin.Context) {
	user := h.getCachedUserFromRequest(c)

	var input dto.CreatePostRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewBasicResponse(false, err.Error()))
		return
	}

	createdPost, err := h.services.Post.Create(c.Request.Context(), principalOf(user), input)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, *createdPost)
}

func (h *Handler) postsFeed(c *gin.Context) {
	user := h.getCachedUserFromRequest(c)

	limit, offset, err := parseLimitOffset(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.NewBasicResponse(false, err.Error()))
		return
	}

	authorIDString := strings.TrimSpace(c.Query("author_id"))
	if authorIDString != "" {
		authorID, err := uuid.Parse(authorIDString)
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.NewBasicResponse(false, errInvalidAuthorID.Error()))
			return
		}

		posts, err := h.services.Post.FindAuthorPosts(c.Request.Context(), principalOf(user), authorID, limit, offset)
		if err != nil {
			respondServiceError(c, err)
			return
		}

		c.JSON(http.StatusOK, posts)
		return
	}

	posts, err := h.services.Post.FindFeed(c.Request.Context(), principalOf(user), limit, offset)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, posts)
}

func (h *Handler) postsGetByID(c *gin.Context) {
	user := h.getCachedUserFromRequest(c)

	postIDString := strings.TrimSpace(c.Param("postID"))
	postID, err := strconv.Atoi(postIDString)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.NewBasicResponse(false, errInvalidPostID.Error()))
		return
	}

	post, err := h.services.Post.FindByID(c.Request.Context(), principalOf(user), int64(postID))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, post)
}

func (h *Handler) postsEdit(c *gin.Context) {
	user := h.getCachedUserFromRequest(c)

	postIDString := strings.TrimSpace(c.Param("postID"))
	postID, err := strconv.Atoi(postIDString)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.NewBasicResponse(false, errInvalidPostID.Error()))
		return
	}

	var input dto.EditPostRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewBasicResponse(false, err.Error()))
		return
	}

	if err := h.services.Post.Edit(c.Request.Context(), principalOf(user), int64(postID), input); err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewBasicResponse(true, ""))
}

func (h *Handler) postsDelete(c *gin.Context) {
	user := h.getCachedUserFromRequest(c)

	postIDString := strings.TrimSpace(c.Param("postID"))
	postID, err := strconv.Atoi(postIDString)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.NewBasicResponse(false, errInvalidPostID.Error()))
		return
	}

	if err := h.services.Post.Delete(c.Request.Context(), principalOf(user), int64(postID)); err != nil {
		respondServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *Handler) postsLike(c *gin.Context) {
	user := h.getCachedUserFromRequest(c)

	postIDString := strings.TrimSpace(c.Param("postID"))
	postID, err := strconv.Atoi(postIDString)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.NewBasicResponse(false, errInvalidPostID.Error()))
		return
	}

	result, err := h.services.Engagement.Toggle(c.Request.Context(), model.KindLike, principalOf(user), int64(postID))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	message := "post unliked"
	if result.Active {
		message = "post liked"
	}

	c.JSON(http.StatusOK, dto.LikeResponse{
		Message:    message,
		Liked:      result.Active,
		LikesCount: result.Count,
	})
}

func (h *Handler) postsSave(c *gin.Context) {
	user := h.getCachedUserFromRequest(c)

	postIDString := strings.TrimSpace(c.Param("postID"))
	postID, err := strconv.Atoi(postIDString)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.NewBasicResponse(false, errInvalidPostID.Error()))
		return
	}

	result, err := h.services.Engagement.Toggle(c.Request.Context(), model.KindSave, principalOf(user), int64(postID))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	message := "post unsaved"
	if result.Active {
		message = "post saved"
	}

	c.JSON(http.StatusOK, dto.SaveResponse{
		Message:   message,
		Saved:     result.Active,
		SaveCount: result.Count,
	})
}

func (h *Handler) postsGetSaved(c *gin.Context) {
	user := h.getCachedUserFromRequest(c)

	limit, offset, err := parseLimitOffset(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.NewBasicResponse(false, err.Error()))
		return
	}

	posts, err := h.services.Post.FindSaved(c.Request.Context(), principalOf(user), limit, offset)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, posts)
}
