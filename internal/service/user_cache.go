package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/TaravanaApp/travel-service/internal/auth"
	"github.com/TaravanaApp/travel-service/internal/dto"
	"github.com/TaravanaApp/travel-service/internal/model"
	"github.com/TaravanaApp/travel-service/internal/rabbitmq"
	"github.com/TaravanaApp/travel-service/internal/repository"
	"github.com/TaravanaApp/travel-service/internal/repository/redisrepo"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type userCacheService struct {
	logger   *zap.Logger
	repo     *repository.Repository
	rabbitmq *rabbitmq.MQConn
}

func newUserCacheService(logger *zap.Logger, repo *repository.Repository, mq *rabbitmq.MQConn) UserCache {
	return &userCacheService{
		logger:   logger,
		repo:     repo,
		rabbitmq: mq,
	}
}

func (s *userCacheService) FindByID(ctx context.Context, id uuid.UUID) (*model.CachedUser, error) {
	cachedUser, err := redisrepo.Get[model.CachedUser](s.repo.Redis.Default, ctx, redisrepo.UserCacheKey(id.String()))
	if err == nil && cachedUser != nil {
		return cachedUser, nil
	}
	if err != nil && err != redis.Nil {
		s.logger.Sugar().Errorf("failed to get cached user(%s) from redis: %s", id.String(), err.Error())
		return nil, ErrInternal
	}

	user, err := s.repo.Postgres.UserCache.FindByID(ctx, id)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, ErrUserNotFound
		}
		s.logger.Sugar().Errorf("failed to get cached user(%s) from postgres: %s", id.String(), err.Error())
		return nil, ErrInternal
	}

	if err := s.repo.Redis.Default.SetJSON(ctx, redisrepo.UserCacheKey(id.String()), user, time.Hour); err != nil {
		s.logger.Sugar().Errorf("failed to set user(%s) in redis: %s", id.String(), err.Error())
		return nil, ErrInternal
	}

	return user, nil
}

func (s *userCacheService) GetMe(ctx context.Context, principal auth.Principal) (*dto.Me, error) {
	if !principal.Authenticated {
		return nil, ErrNotAuthorized
	}

	user, err := s.FindByID(ctx, principal.ID)
	if err != nil {
		return nil, err
	}

	profile, err := s.repo.Postgres.UserCache.FindProfile(ctx, principal.ID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, ErrUserNotFound
		}
		s.logger.Sugar().Errorf("failed to get user(%s) profile from postgres: %s", principal.ID.String(), err.Error())
		return nil, ErrInternal
	}

	return &dto.Me{User: *user, Profile: *profile}, nil
}

func (s *userCacheService) UpdateProfile(ctx context.Context, principal auth.Principal, input dto.UpdateProfileRequest) error {
	if !principal.Authenticated {
		return ErrNotAuthorized
	}

	if err := s.repo.Postgres.UserCache.UpdateProfileBio(ctx, principal.ID, input.Bio); err != nil {
		s.logger.Sugar().Errorf("failed to update user(%s) profile: %s", principal.ID.String(), err.Error())
		return ErrInternal
	}

	return nil
}

// StartConsumeAll launches the broker consumers that keep the local user
// projection in sync with the identity service.
func (s *userCacheService) StartConsumeAll(ctx context.Context) {
	go s.consumeUserCreations(ctx)
	go s.consumeUserUpdates(ctx)
}

func (s *userCacheService) consumeUserCreations(ctx context.Context) {
	queue := rabbitmq.USER_CREATED_QUEUE
	msgs, err := s.rabbitmq.Consume(queue)
	if err != nil {
		s.logger.Sugar().Fatalf("failed to start consume from queue(%s): %s", queue, err.Error())
	}

	for msg := range msgs {
		var data dto.MQUserCreatedMsg
		if err := json.Unmarshal(msg.Body, &data); err != nil {
			s.logger.Sugar().Errorf("failed to unmarshal json in queue(%s): %s", queue, err.Error())
			msg.Nack(false, false)
			continue
		}

		role := model.Role(data.Role)
		if role != model.RoleAdmin {
			role = model.RoleUser
		}

		cachedUser := model.CachedUser{
			ID:          data.ID,
			Username:    data.Username,
			DisplayName: data.DisplayName,
			AvatarURL:   data.AvatarURL,
			Role:        role,
		}

		if err := s.repo.Postgres.UserCache.CreateWithProfile(ctx, cachedUser, data.Bio); err != nil {
			s.logger.Sugar().Errorf("failed to create cached user(%s): %s", data.ID.String(), err.Error())
			msg.Nack(false, true)
			continue
		}

		msg.Ack(false)
	}
}

func (s *userCacheService) consumeUserUpdates(ctx context.Context) {
	queue := rabbitmq.USER_INFO_UPDATED_QUEUE
	msgs, err := s.rabbitmq.Consume(queue)
	if err != nil {
		s.logger.Sugar().Fatalf("failed to start consume from queue(%s): %s", queue, err.Error())
	}

	for msg := range msgs {
		var data dto.MQUserUpdatedMsg
		if err := json.Unmarshal(msg.Body, &data); err != nil {
			s.logger.Sugar().Errorf("failed to unmarshal json in queue(%s): %s", queue, err.Error())
			msg.Nack(false, false)
			continue
		}

		if data.ID == uuid.Nil || len(data.Updates) == 0 {
			s.logger.Sugar().Errorf("invalid user update message in queue(%s)", queue)
			msg.Nack(false, false)
			continue
		}

		if err := s.update(ctx, data.ID, data.Updates); err != nil {
			msg.Nack(false, true)
			continue
		}

		msg.Ack(false)
	}
}

func (s *userCacheService) update(ctx context.Context, id uuid.UUID, updates map[string]interface{}) error {
	if err := s.repo.Postgres.UserCache.Update(ctx, id, updates); err != nil {
		s.logger.Sugar().Errorf("failed to update cached user(%s): %s", id.String(), err.Error())
		return ErrInternal
	}

	if err := s.repo.Redis.Default.Del(ctx, redisrepo.UserCacheKey(id.String())).Err(); err != nil {
		s.logger.Sugar().Errorf("failed to delete cached user(%s) from redis: %s", id.String(), err.Error())
	}

	return nil
}
