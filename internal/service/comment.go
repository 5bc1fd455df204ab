package service

import (
	"context"
	"strings"

	"github.com/TaravanaApp/travel-service/internal/auth"
	"github.com/TaravanaApp/travel-service/internal/dto"
	"github.com/TaravanaApp/travel-service/internal/model"
	"github.com/TaravanaApp/travel-service/internal/repository"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type commentService struct {
	logger *zap.Logger
	repo   *repository.Repository
}

func newCommentService(logger *zap.Logger, repo *repository.Repository) Comment {
	return &commentService{
		logger: logger,
		repo:   repo,
	}
}

func (s *commentService) Create(ctx context.Context, principal auth.Principal, postID int64, input dto.CreateCommentRequest) (*model.Comment, error) {
	if !principal.Authenticated {
		return nil, ErrNotAuthorized
	}

	content := strings.TrimSpace(input.Content)
	if content == "" {
		return nil, ErrCommentContentBlank
	}

	if _, err := s.repo.Postgres.Post.FindAuthorID(ctx, postID); err != nil {
		if err == pgx.ErrNoRows {
			return nil, ErrPostNotFound
		}
		s.logger.Sugar().Errorf("failed to find post(%d): %s", postID, err.Error())
		return nil, ErrInternal
	}

	comment := model.Comment{
		PostID:   postID,
		AuthorID: principal.ID,
		Content:  content,
	}

	createdComment, err := s.repo.Postgres.Comment.Create(ctx, comment)
	if err != nil {
		s.logger.Sugar().Errorf("failed to create user(%s) comment on post(%d): %s", principal.ID.String(), postID, err.Error())
		return nil, ErrInternal
	}

	return createdComment, nil
}

func (s *commentService) FindPostComments(ctx context.Context, postID int64, limit int, offset int) ([]*model.FullComment, error) {
	maxLimit(&limit)

	comments, err := s.repo.Postgres.Comment.FindPostComments(ctx, postID, limit, offset)
	if err != nil && err != pgx.ErrNoRows {
		s.logger.Sugar().Errorf("failed to find post(%d) comments from postgres: %s", postID, err.Error())
		return nil, ErrInternal
	}

	return comments, nil
}

// Delete removes the comment permanently. Only the comment's author or an
// admin may delete it.
func (s *commentService) Delete(ctx context.Context, principal auth.Principal, commentID int64) error {
	comment, err := s.repo.Postgres.Comment.FindByID(ctx, commentID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return ErrCommentNotFound
		}
		s.logger.Sugar().Errorf("failed to find comment(%d): %s", commentID, err.Error())
		return ErrInternal
	}

	if !auth.Allow(auth.ActionWrite, principal, comment.AuthorID) {
		return ErrNoAccess
	}

	if err := s.repo.Postgres.Comment.Delete(ctx, commentID); err != nil {
		s.logger.Sugar().Errorf("failed to delete comment(%d): %s", commentID, err.Error())
		return ErrInternal
	}

	return nil
}
