package service

import (
	"context"

	"github.com/TaravanaApp/travel-service/internal/auth"
	"github.com/TaravanaApp/travel-service/internal/dto"
	"github.com/TaravanaApp/travel-service/internal/model"
	"github.com/TaravanaApp/travel-service/internal/repository"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type engagementService struct {
	logger *zap.Logger
	repo   *repository.Repository
}

func newEngagementService(logger *zap.Logger, repo *repository.Repository) Engagement {
	return &engagementService{
		logger: logger,
		repo:   repo,
	}
}

// Toggle flips the principal's like/save membership on the post and returns
// the new state with the live count. Toggling twice restores the prior state.
func (s *engagementService) Toggle(ctx context.Context, kind model.EngagementKind, principal auth.Principal, postID int64) (*dto.ToggleResult, error) {
	if !auth.Allow(auth.ActionToggle, principal, uuid.Nil) {
		return nil, ErrNotAuthorized
	}

	if _, err := s.repo.Postgres.Post.FindAuthorID(ctx, postID); err != nil {
		if err == pgx.ErrNoRows {
			return nil, ErrPostNotFound
		}
		s.logger.Sugar().Errorf("failed to find post(%d): %s", postID, err.Error())
		return nil, ErrInternal
	}

	active, count, err := s.repo.Postgres.Engagement.Toggle(ctx, kind, principal.ID, postID)
	if err != nil {
		s.logger.Sugar().Errorf("failed to toggle %s for user(%s) on post(%d): %s", kind, principal.ID.String(), postID, err.Error())
		return nil, ErrInternal
	}

	return &dto.ToggleResult{Active: active, Count: count}, nil
}
