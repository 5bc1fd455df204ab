package service

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/TaravanaApp/travel-service/internal/auth"
	"github.com/TaravanaApp/travel-service/internal/dto"
	"github.com/TaravanaApp/travel-service/internal/model"
	"github.com/TaravanaApp/travel-service/internal/repository"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

type postService struct {
	logger     *zap.Logger
	repo       *repository.Repository
	httpClient *http.Client
}

func newPostService(logger *zap.Logger, repo *repository.Repository) Post {
	return &postService{
		logger:     logger,
		repo:       repo,
		httpClient: &http.Client{},
	}
}

func (s *postService) Create(ctx context.Context, principal auth.Principal, input dto.CreatePostRequest) (*model.Post, error) {
	if !principal.Authenticated {
		return nil, ErrNotAuthorized
	}

	if input.PlaceID != nil {
		if _, err := s.repo.Postgres.Place.FindByID(ctx, *input.PlaceID); err != nil {
			if err == pgx.ErrNoRows {
				return nil, ErrPlaceNotFound
			}
			s.logger.Sugar().Errorf("failed to find place(%d): %s", *input.PlaceID, err.Error())
			return nil, ErrInternal
		}
	}

	visibility := model.VisibilityPublic
	if input.Visibility != "" {
		visibility = model.Visibility(input.Visibility)
	}

	post := model.Post{
		AuthorID:   principal.ID,
		PlaceID:    input.PlaceID,
		Content:    input.Content,
		Visibility: visibility,
	}

	var images []*model.PostImage
	for _, img := range input.Images {
		images = append(images, &model.PostImage{URL: img.URL, Position: img.Position})
	}

	createdPost, err := s.repo.Postgres.Post.Create(ctx, post, images)
	if err != nil {
		s.logger.Sugar().Errorf("failed to create user(%s) post: %s", principal.ID.String(), err.Error())
		return nil, ErrInternal
	}

	return createdPost, nil
}

func (s *postService) FindByID(ctx context.Context, principal auth.Principal, id int64) (*model.FeedPost, error) {
	post, err := s.repo.Postgres.Post.FindByID(ctx, id, principal.ID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, ErrPostNotFound
		}
		s.logger.Sugar().Errorf("failed to find post(%d) from postgres: %s", id, err.Error())
		return nil, ErrInternal
	}

	return post, nil
}

// FindFeed composes the discovery feed: public posts only, excluding the
// viewer's own, newest first.
func (s *postService) FindFeed(ctx context.Context, principal auth.Principal, limit int, offset int) ([]*model.FeedPost, error) {
	maxLimit(&limit)

	posts, err := s.repo.Postgres.Post.FindFeed(ctx, principal.ID, limit, offset)
	if err != nil && err != pgx.ErrNoRows {
		s.logger.Sugar().Errorf("failed to find feed for viewer(%s) from postgres: %s", principal.ID.String(), err.Error())
		return nil, ErrInternal
	}

	return posts, nil
}

func (s *postService) FindAuthorPosts(ctx context.Context, principal auth.Principal, authorID uuid.UUID, limit int, offset int) ([]*model.FeedPost, error) {
	maxLimit(&limit)

	posts, err := s.repo.Postgres.Post.FindAuthorPosts(ctx, authorID, principal.ID, limit, offset)
	if err != nil && err != pgx.ErrNoRows {
		s.logger.Sugar().Errorf("failed to find author(%s) posts from postgres: %s", authorID.String(), err.Error())
		return nil, ErrInternal
	}

	return posts, nil
}

func (s *postService) FindSaved(ctx context.Context, principal auth.Principal, limit int, offset int) ([]*model.FeedPost, error) {
	if !principal.Authenticated {
		return nil, ErrNotAuthorized
	}

	maxLimit(&limit)

	posts, err := s.repo.Postgres.Post.FindSaved(ctx, principal.ID, limit, offset)
	if err != nil && err != pgx.ErrNoRows {
		s.logger.Sugar().Errorf("failed to find user(%s) saved posts from postgres: %s", principal.ID.String(), err.Error())
		return nil, ErrInternal
	}

	return posts, nil
}

func (s *postService) Edit(ctx context.Context, principal auth.Principal, id int64, input dto.EditPostRequest) error {
	authorID, err := s.repo.Postgres.Post.FindAuthorID(ctx, id)
	if err != nil {
		if err == pgx.ErrNoRows {
			return ErrPostNotFound
		}
		s.logger.Sugar().Errorf("failed to find post(%d): %s", id, err.Error())
		return ErrInternal
	}

	if !auth.Allow(auth.ActionWrite, principal, authorID) {
		return ErrNoAccess
	}

	updates := make(map[string]interface{})
	if input.PlaceID != nil {
		updates["place_id"] = *input.PlaceID
	}
	if input.Content != nil {
		updates["content"] = *input.Content
	}
	if input.Visibility != nil {
		updates["visibility"] = *input.Visibility
	}

	if err := s.repo.Postgres.Post.Update(ctx, id, updates); err != nil {
		s.logger.Sugar().Errorf("failed to update post(%d): %s", id, err.Error())
		return ErrInternal
	}

	return nil
}

func (s *postService) Delete(ctx context.Context, principal auth.Principal, id int64) error {
	authorID, err := s.repo.Postgres.Post.FindAuthorID(ctx, id)
	if err != nil {
		if err == pgx.ErrNoRows {
			return ErrPostNotFound
		}
		s.logger.Sugar().Errorf("failed to find post(%d): %s", id, err.Error())
		return ErrInternal
	}

	if !auth.Allow(auth.ActionWrite, principal, authorID) {
		return ErrNoAccess
	}

	if err := s.repo.Postgres.Post.Delete(ctx, id); err != nil {
		if err == pgx.ErrNoRows {
			return ErrPostNotFound
		}
		s.logger.Sugar().Errorf("failed to delete post(%d): %s", id, err.Error())
		return ErrInternal
	}

	return nil
}

func (s *postService) UploadTempPostImage(ctx context.Context, file multipart.File, fileHeader *multipart.FileHeader) (string, error) {
	contentType := fileHeader.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "image/") {
		return "", ErrFileMustBeImage
	}

	return s.uploadImageToCDN("post-images", file, fileHeader)
}

func (s *postService) uploadImageToCDN(path string, file multipart.File, fileHeader *multipart.FileHeader) (string, error) {
	endpoint := "/upload"
	url := viper.GetString("cdn.origin") + endpoint

	var requestBody bytes.Buffer
	writer := multipart.NewWriter(&requestBody)

	fileWriter, err := writer.CreateFormFile("file", fileHeader.Filename)
	if err != nil {
		s.logger.Sugar().Errorf("failed to create file part for CDN request: %s", err.Error())
		return "", ErrInternal
	}

	if _, err := file.Seek(0, io.SeekStart); err != nil {
		s.logger.Sugar().Errorf("failed to seek to the start of the file: %s", err.Error())
		return "", ErrInternal
	}

	if _, err := io.Copy(fileWriter, file); err != nil {
		s.logger.Sugar().Errorf("failed to copy file content for CDN request: %s", err.Error())
		return "", ErrInternal
	}

	if err := writer.WriteField("path", path); err != nil {
		s.logger.Sugar().Errorf("failed to write path field for CDN request: %s", err.Error())
		return "", ErrInternal
	}

	if err := writer.Close(); err != nil {
		s.logger.Sugar().Errorf("failed to close writer for CDN request: %s", err.Error())
		return "", ErrInternal
	}

	req, err := http.NewRequest(http.MethodPost, url, &requestBody)
	if err != nil {
		s.logger.Sugar().Errorf("failed to create CDN request: %s", err.Error())
		return "", ErrInternal
	}

	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.Header.Add("type", "IMAGE")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		s.logger.Sugar().Errorf("failed to do CDN request: %s", err.Error())
		return "", ErrInternal
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		s.logger.Sugar().Errorf("failed to read response body from CDN: %s", err.Error())
		return "", ErrInternal
	}

	if resp.StatusCode != http.StatusOK {
		var bodyJSON map[string]interface{}
		if err := json.Unmarshal(body, &bodyJSON); err != nil {
			s.logger.Sugar().Errorf("failed to decode error response from CDN: %s", err.Error())
		} else {
			s.logger.Sugar().Errorf("ERROR from CDN endpoint(%s), code(%d), details: %s", endpoint, resp.StatusCode, bodyJSON["details"])
		}
		return "", ErrFailedToUploadPostImageToCDN
	}

	return string(body), nil
}
