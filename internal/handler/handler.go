package handler

import (
	"context"
	"os"

	"github.com/TaravanaApp/travel-service/internal/auth"
	"github.com/TaravanaApp/travel-service/internal/model"
	"github.com/TaravanaApp/travel-service/internal/service"
	"github.com/TaravanaApp/travel-service/pkg/utils"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/spf13/viper"
)

type Handler struct {
	services *service.Service
}

func New(services *service.Service) *Handler {
	return &Handler{
		services: services,
	}
}

func (h *Handler) InitRoutes() *gin.Engine {
	r := gin.New()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{viper.GetString("client.origin")},
		AllowMethods:     []string{"POST", "GET", "PATCH", "DELETE"},
		AllowCredentials: true,
	}))

	v1 := r.Group("/api/v1")
	{
		posts := v1.Group("/posts")
		{
			posts.POST("/uploadImage", h.authMiddleware, h.postsUploadImage)
			posts.POST("", h.authMiddleware, h.postsCreate)
			posts.GET("", h.notRequiredAuthMiddleware, h.postsFeed)
			posts.GET("/saved", h.authMiddleware, h.postsGetSaved)

			post := posts.Group("/:postID")
			{
				post.GET("", h.notRequiredAuthMiddleware, h.postsGetByID)
				post.PATCH("", h.authMiddleware, h.postsEdit)
				post.DELETE("", h.authMiddleware, h.postsDelete)
				post.POST("/like", h.authMiddleware, h.postsLike)
				post.POST("/save", h.authMiddleware, h.postsSave)
				post.POST("/comments", h.authMiddleware, h.commentsCreate)
				post.GET("/comments", h.commentsGet)
			}
		}

		comments := v1.Group("/comments")
		{
			comments.DELETE("/:commentID", h.authMiddleware, h.commentsDelete)
		}

		countries := v1.Group("/countries")
		{
			countries.GET("", h.countriesGet)
			countries.GET("/:countryID", h.countriesGetByID)
			countries.POST("", h.adminMiddleware, h.countriesCreate)
			countries.PATCH("/:countryID", h.adminMiddleware, h.countriesEdit)
			countries.DELETE("/:countryID", h.adminMiddleware, h.countriesDelete)
		}

		places := v1.Group("/places")
		{
			places.GET("", h.placesGet)
			places.GET("/:placeID", h.placesGetByID)
			places.POST("", h.adminMiddleware, h.placesCreate)
			places.PATCH("/:placeID", h.adminMiddleware, h.placesEdit)
			places.DELETE("/:placeID", h.adminMiddleware, h.placesDelete)
		}

		trips := v1.Group("/trips")
		{
			trips.POST("", h.authMiddleware, h.tripsCreate)
			trips.GET("/my", h.authMiddleware, h.tripsGetMy)
			trips.PATCH("/:tripID", h.authMiddleware, h.tripsEdit)
			trips.DELETE("/:tripID", h.authMiddleware, h.tripsDelete)
		}

		users := v1.Group("/users")
		{
			users.GET("/me", h.authMiddleware, h.usersGetMe)
			users.PATCH("/me/profile", h.authMiddleware, h.usersUpdateProfile)
		}
	}

	return r
}

func (h *Handler) getUserDataFromAccessTokenClaims(ctx context.Context, accessToken string) (*model.CachedUser, error) {
	claims, err := utils.DecodeJWT(accessToken, []byte(os.Getenv("ACCESS_SECRET")))
	if err != nil {
		return nil, err
	}

	idString, ok := claims["id"].(string)
	if !ok {
		return nil, errNotAuthorized
	}
	id, err := uuid.Parse(idString)
	if err != nil {
		return nil, err
	}

	user, err := h.services.UserCache.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	return user, nil
}

func (h *Handler) getCachedUserFromRequest(c *gin.Context) *model.CachedUser {
	userReq, _ := c.Get("cached-user")

	user, ok := userReq.(model.CachedUser)
	if !ok {
		return nil
	}

	return &user
}

func principalOf(user *model.CachedUser) auth.Principal {
	if user == nil {
		return auth.Principal{}
	}

	return auth.Principal{
		ID:            user.ID,
		Role:          user.Role,
		Authenticated: true,
	}
}
