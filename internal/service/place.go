package service

import (
	"context"
	"time"

	"github.com/TaravanaApp/travel-service/internal/dto"
	"github.com/TaravanaApp/travel-service/internal/model"
	"github.com/TaravanaApp/travel-service/internal/repository"
	"github.com/TaravanaApp/travel-service/internal/repository/redisrepo"
	"github.com/jackc/pgx/v5"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type placeService struct {
	logger *zap.Logger
	repo   *repository.Repository
}

func newPlaceService(logger *zap.Logger, repo *repository.Repository) Place {
	return &placeService{
		logger: logger,
		repo:   repo,
	}
}

func (s *placeService) Create(ctx context.Context, input dto.CreatePlaceRequest) (*model.Place, error) {
	if _, err := s.repo.Postgres.Country.FindByID(ctx, input.CountryID); err != nil {
		if err == pgx.ErrNoRows {
			return nil, ErrCountryNotFound
		}
		s.logger.Sugar().Errorf("failed to find country(%d): %s", input.CountryID, err.Error())
		return nil, ErrInternal
	}

	place := model.Place{
		CountryID:   input.CountryID,
		Name:        input.Name,
		Description: input.Description,
		ImageURL:    input.ImageURL,
		Tags:        input.Tags,
		Priority:    input.Priority,
	}

	createdPlace, err := s.repo.Postgres.Place.Create(ctx, place)
	if err != nil {
		s.logger.Sugar().Errorf("failed to create place: %s", err.Error())
		return nil, ErrInternal
	}

	s.invalidateCache(ctx)

	return createdPlace, nil
}

func (s *placeService) FindAll(ctx context.Context, countryID *int64, limit int, offset int) ([]*model.Place, error) {
	maxLimit(&limit)

	cachedPlaces, err := redisrepo.GetMany[model.Place](s.repo.Redis.Default, ctx, redisrepo.PlacesKey(countryID, limit, offset))
	if err == nil {
		return cachedPlaces, nil
	}
	if err != redis.Nil {
		s.logger.Sugar().Errorf("failed to get places from redis: %s", err.Error())
		return nil, ErrInternal
	}

	places, err := s.repo.Postgres.Place.FindAll(ctx, countryID, limit, offset)
	if err != nil && err != pgx.ErrNoRows {
		s.logger.Sugar().Errorf("failed to find places from postgres: %s", err.Error())
		return nil, ErrInternal
	}

	if err := s.repo.Redis.Default.SetJSON(ctx, redisrepo.PlacesKey(countryID, limit, offset), places, time.Hour); err != nil {
		s.logger.Sugar().Errorf("failed to set places in redis: %s", err.Error())
		return nil, ErrInternal
	}

	return places, nil
}

func (s *placeService) FindByID(ctx context.Context, id int64) (*model.Place, error) {
	cachedPlace, err := redisrepo.Get[model.Place](s.repo.Redis.Default, ctx, redisrepo.PlaceKey(id))
	if err == nil && cachedPlace != nil {
		return cachedPlace, nil
	}
	if err != nil && err != redis.Nil {
		s.logger.Sugar().Errorf("failed to get place(%d) from redis: %s", id, err.Error())
		return nil, ErrInternal
	}

	place, err := s.repo.Postgres.Place.FindByID(ctx, id)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, ErrPlaceNotFound
		}
		s.logger.Sugar().Errorf("failed to find place(%d) from postgres: %s", id, err.Error())
		return nil, ErrInternal
	}

	if err := s.repo.Redis.Default.SetJSON(ctx, redisrepo.PlaceKey(id), place, time.Hour); err != nil {
		s.logger.Sugar().Errorf("failed to set place(%d) in redis: %s", id, err.Error())
		return nil, ErrInternal
	}

	return place, nil
}

func (s *placeService) Edit(ctx context.Context, id int64, input dto.EditPlaceRequest) error {
	if _, err := s.repo.Postgres.Place.FindByID(ctx, id); err != nil {
		if err == pgx.ErrNoRows {
			return ErrPlaceNotFound
		}
		s.logger.Sugar().Errorf("failed to find place(%d): %s", id, err.Error())
		return ErrInternal
	}

	updates := make(map[string]interface{})
	if input.CountryID != nil {
		updates["country_id"] = *input.CountryID
	}
	if input.Name != nil {
		updates["name"] = *input.Name
	}
	if input.Description != nil {
		updates["description"] = *input.Description
	}
	if input.ImageURL != nil {
		updates["image_url"] = *input.ImageURL
	}
	if input.Tags != nil {
		updates["tags"] = *input.Tags
	}
	if input.Priority != nil {
		updates["priority"] = *input.Priority
	}

	if err := s.repo.Postgres.Place.Update(ctx, id, updates); err != nil {
		s.logger.Sugar().Errorf("failed to update place(%d): %s", id, err.Error())
		return ErrInternal
	}

	s.invalidateCache(ctx)

	return nil
}

func (s *placeService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Postgres.Place.Delete(ctx, id); err != nil {
		s.logger.Sugar().Errorf("failed to delete place(%d): %s", id, err.Error())
		return ErrInternal
	}

	s.invalidateCache(ctx)

	return nil
}

func (s *placeService) invalidateCache(ctx context.Context) {
	for _, pattern := range []string{"places:*", "place:*"} {
		keys, err := s.repo.Redis.Default.Keys(ctx, pattern).Result()
		if err != nil {
			s.logger.Sugar().Errorf("failed to get redis keys(%s): %s", pattern, err.Error())
			continue
		}
		if len(keys) == 0 {
			continue
		}
		if err := s.repo.Redis.Default.Del(ctx, keys...).Err(); err != nil {
			s.logger.Sugar().Errorf("failed to delete redis keys(%s): %s", pattern, err.Error())
		}
	}
}
