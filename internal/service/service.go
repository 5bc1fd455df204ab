package service

import (
	"context"
	"mime/multipart"

	"github.com/TaravanaApp/travel-service/internal/auth"
	"github.com/TaravanaApp/travel-service/internal/dto"
	"github.com/TaravanaApp/travel-service/internal/model"
	"github.com/TaravanaApp/travel-service/internal/rabbitmq"
	"github.com/TaravanaApp/travel-service/internal/repository"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const MAX_LIMIT = 20

func maxLimit(limit *int) {
	if *limit <= 0 || *limit > MAX_LIMIT {
		*limit = MAX_LIMIT
	}
}

type Post interface {
	Create(ctx context.Context, principal auth.Principal, input dto.CreatePostRequest) (*model.Post, error)
	FindByID(ctx context.Context, principal auth.Principal, id int64) (*model.FeedPost, error)
	FindFeed(ctx context.Context, principal auth.Principal, limit int, offset int) ([]*model.FeedPost, error)
	FindAuthorPosts(ctx context.Context, principal auth.Principal, authorID uuid.UUID, limit int, offset int) ([]*model.FeedPost, error)
	FindSaved(ctx context.Context, principal auth.Principal, limit int, offset int) ([]*model.FeedPost, error)
	Edit(ctx context.Context, principal auth.Principal, id int64, input dto.EditPostRequest) error
	Delete(ctx context.Context, principal auth.Principal, id int64) error
	UploadTempPostImage(ctx context.Context, file multipart.File, fileHeader *multipart.FileHeader) (string, error)
}

type Engagement interface {
	Toggle(ctx context.Context, kind model.EngagementKind, principal auth.Principal, postID int64) (*dto.ToggleResult, error)
}

type Comment interface {
	Create(ctx context.Context, principal auth.Principal, postID int64, input dto.CreateCommentRequest) (*model.Comment, error)
	FindPostComments(ctx context.Context, postID int64, limit int, offset int) ([]*model.FullComment, error)
	Delete(ctx context.Context, principal auth.Principal, commentID int64) error
}

type Country interface {
	Create(ctx context.Context, input dto.CreateCountryRequest) (*model.Country, error)
	FindAll(ctx context.Context, limit int, offset int) ([]*model.Country, error)
	FindByID(ctx context.Context, id int64) (*model.Country, error)
	Edit(ctx context.Context, id int64, input dto.EditCountryRequest) error
	Delete(ctx context.Context, id int64) error
}

type Place interface {
	Create(ctx context.Context, input dto.CreatePlaceRequest) (*model.Place, error)
	FindAll(ctx context.Context, countryID *int64, limit int, offset int) ([]*model.Place, error)
	FindByID(ctx context.Context, id int64) (*model.Place, error)
	Edit(ctx context.Context, id int64, input dto.EditPlaceRequest) error
	Delete(ctx context.Context, id int64) error
}

type Trip interface {
	Create(ctx context.Context, principal auth.Principal, input dto.CreateTripRequest) (*model.Trip, error)
	FindMy(ctx context.Context, principal auth.Principal, status *model.TripStatus, limit int, offset int) ([]*model.Trip, error)
	Edit(ctx context.Context, principal auth.Principal, id int64, input dto.EditTripRequest) error
	Delete(ctx context.Context, principal auth.Principal, id int64) error
}

type UserCache interface {
	FindByID(ctx context.Context, id uuid.UUID) (*model.CachedUser, error)
	GetMe(ctx context.Context, principal auth.Principal) (*dto.Me, error)
	UpdateProfile(ctx context.Context, principal auth.Principal, input dto.UpdateProfileRequest) error
	StartConsumeAll(ctx context.Context)
}

type Service struct {
	Post
	Engagement
	Comment
	Country
	Place
	Trip
	UserCache
}

func New(logger *zap.Logger, repo *repository.Repository, mq *rabbitmq.MQConn) *Service {
	return &Service{
		Post:       newPostService(logger, repo),
		Engagement: newEngagementService(logger, repo),
		Comment:    newCommentService(logger, repo),
		Country:    newCountryService(logger, repo),
		Place:      newPlaceService(logger, repo),
		Trip:       newTripService(logger, repo),
		UserCache:  newUserCacheService(logger, repo, mq),
	}
}
