package postgres

import (
	"context"
	"errors"
	"strconv"

	"github.com/TaravanaApp/travel-service/internal/model"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const MAX_LIMIT = 20

var ErrFieldsNotAllowedToUpdate = errors.New("fields are not allowed to update")

func maxLimit(limit *int) {
	if *limit <= 0 || *limit > MAX_LIMIT {
		*limit = MAX_LIMIT
	}
}

// Querier is the minimal pgx surface the repositories need. Both *pgxpool.Pool
// and pgxmock pools satisfy it.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Begin(ctx context.Context) (pgx.Tx, error)
}

type Post interface {
	Create(ctx context.Context, post model.Post, images []*model.PostImage) (*model.Post, error)
	FindByID(ctx context.Context, id int64, viewerID uuid.UUID) (*model.FeedPost, error)
	FindFeed(ctx context.Context, viewerID uuid.UUID, limit int, offset int) ([]*model.FeedPost, error)
	FindAuthorPosts(ctx context.Context, authorID uuid.UUID, viewerID uuid.UUID, limit int, offset int) ([]*model.FeedPost, error)
	FindSaved(ctx context.Context, userID uuid.UUID, limit int, offset int) ([]*model.FeedPost, error)
	FindAuthorID(ctx context.Context, id int64) (uuid.UUID, error)
	Update(ctx context.Context, id int64, updates map[string]interface{}) error
	Delete(ctx context.Context, id int64) error
}

type Engagement interface {
	Toggle(ctx context.Context, kind model.EngagementKind, userID uuid.UUID, postID int64) (bool, int64, error)
}

type Comment interface {
	Create(ctx context.Context, comment model.Comment) (*model.Comment, error)
	FindPostComments(ctx context.Context, postID int64, limit int, offset int) ([]*model.FullComment, error)
	FindByID(ctx context.Context, id int64) (*model.Comment, error)
	Delete(ctx context.Context, id int64) error
}

type Country interface {
	Create(ctx context.Context, country model.Country) (*model.Country, error)
	FindAll(ctx context.Context, limit int, offset int) ([]*model.Country, error)
	FindByID(ctx context.Context, id int64) (*model.Country, error)
	Update(ctx context.Context, id int64, updates map[string]interface{}) error
	Delete(ctx context.Context, id int64) error
}

type Place interface {
	Create(ctx context.Context, place model.Place) (*model.Place, error)
	FindAll(ctx context.Context, countryID *int64, limit int, offset int) ([]*model.Place, error)
	FindByID(ctx context.Context, id int64) (*model.Place, error)
	Update(ctx context.Context, id int64, updates map[string]interface{}) error
	Delete(ctx context.Context, id int64) error
}

type Trip interface {
	Create(ctx context.Context, trip model.Trip) (*model.Trip, error)
	FindUserTrips(ctx context.Context, userID uuid.UUID, status *model.TripStatus, limit int, offset int) ([]*model.Trip, error)
	FindByID(ctx context.Context, id int64) (*model.Trip, error)
	Update(ctx context.Context, id int64, updates map[string]interface{}) error
	Delete(ctx context.Context, id int64) error
}

type UserCache interface {
	CreateWithProfile(ctx context.Context, cachedUser model.CachedUser, bio string) error
	Update(ctx context.Context, id uuid.UUID, updates map[string]interface{}) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.CachedUser, error)
	FindProfile(ctx context.Context, userID uuid.UUID) (*model.Profile, error)
	UpdateProfileBio(ctx context.Context, userID uuid.UUID, bio string) error
}

type PostgresRepository struct {
	Post
	Engagement
	Comment
	Country
	Place
	Trip
	UserCache
}

func New(db Querier) *PostgresRepository {
	return &PostgresRepository{
		Post:       newPostRepo(db),
		Engagement: newEngagementRepo(db),
		Comment:    newCommentRepo(db),
		Country:    newCountryRepo(db),
		Place:      newPlaceRepo(db),
		Trip:       newTripRepo(db),
		UserCache:  newUserCacheRepo(db),
	}
}

func updateByID(ctx context.Context, db Querier, table string, idColumn string, id interface{}, allowedFields []string, updates map[string]interface{}) error {
	if len(updates) == 0 {
		return nil
	}

	allowedFieldsSet := make(map[string]struct{}, len(allowedFields))
	for _, field := range allowedFields {
		allowedFieldsSet[field] = struct{}{}
	}

	for field := range updates {
		if _, ok := allowedFieldsSet[field]; !ok {
			return ErrFieldsNotAllowedToUpdate
		}
	}

	query := "UPDATE " + table + " SET "
	args := []interface{}{}
	i := 1

	for column, value := range updates {
		query += (column + " = $" + strconv.Itoa(i) + ", ")
		args = append(args, value)
		i++
	}

	query = query[:len(query)-2] + " WHERE " + idColumn + " = $" + strconv.Itoa(i)
	args = append(args, id)

	_, err := db.Exec(ctx, query, args...)
	return err
}
