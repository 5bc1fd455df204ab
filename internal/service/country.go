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

type countryService struct {
	logger *zap.Logger
	repo   *repository.Repository
}

func newCountryService(logger *zap.Logger, repo *repository.Repository) Country {
	return &countryService{
		logger: logger,
		repo:   repo,
	}
}

func (s *countryService) Create(ctx context.Context, input dto.CreateCountryRequest) (*model.Country, error) {
	country := model.Country{
		Name:        input.Name,
		Description: input.Description,
		ImageURL:    input.ImageURL,
	}

	createdCountry, err := s.repo.Postgres.Country.Create(ctx, country)
	if err != nil {
		s.logger.Sugar().Errorf("failed to create country: %s", err.Error())
		return nil, ErrInternal
	}

	s.invalidateCache(ctx)

	return createdCountry, nil
}

func (s *countryService) FindAll(ctx context.Context, limit int, offset int) ([]*model.Country, error) {
	maxLimit(&limit)

	cachedCountries, err := redisrepo.GetMany[model.Country](s.repo.Redis.Default, ctx, redisrepo.CountriesKey(limit, offset))
	if err == nil {
		return cachedCountries, nil
	}
	if err != redis.Nil {
		s.logger.Sugar().Errorf("failed to get countries from redis: %s", err.Error())
		return nil, ErrInternal
	}

	countries, err := s.repo.Postgres.Country.FindAll(ctx, limit, offset)
	if err != nil && err != pgx.ErrNoRows {
		s.logger.Sugar().Errorf("failed to find countries from postgres: %s", err.Error())
		return nil, ErrInternal
	}

	if err := s.repo.Redis.Default.SetJSON(ctx, redisrepo.CountriesKey(limit, offset), countries, time.Hour); err != nil {
		s.logger.Sugar().Errorf("failed to set countries in redis: %s", err.Error())
		return nil, ErrInternal
	}

	return countries, nil
}

func (s *countryService) FindByID(ctx context.Context, id int64) (*model.Country, error) {
	cachedCountry, err := redisrepo.Get[model.Country](s.repo.Redis.Default, ctx, redisrepo.CountryKey(id))
	if err == nil && cachedCountry != nil {
		return cachedCountry, nil
	}
	if err != nil && err != redis.Nil {
		s.logger.Sugar().Errorf("failed to get country(%d) from redis: %s", id, err.Error())
		return nil, ErrInternal
	}

	country, err := s.repo.Postgres.Country.FindByID(ctx, id)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, ErrCountryNotFound
		}
		s.logger.Sugar().Errorf("failed to find country(%d) from postgres: %s", id, err.Error())
		return nil, ErrInternal
	}

	if err := s.repo.Redis.Default.SetJSON(ctx, redisrepo.CountryKey(id), country, time.Hour); err != nil {
		s.logger.Sugar().Errorf("failed to set country(%d) in redis: %s", id, err.Error())
		return nil, ErrInternal
	}

	return country, nil
}

func (s *countryService) Edit(ctx context.Context, id int64, input dto.EditCountryRequest) error {
	if _, err := s.repo.Postgres.Country.FindByID(ctx, id); err != nil {
		if err == pgx.ErrNoRows {
			return ErrCountryNotFound
		}
		s.logger.Sugar().Errorf("failed to find country(%d): %s", id, err.Error())
		return ErrInternal
	}

	updates := make(map[string]interface{})
	if input.Name != nil {
		updates["name"] = *input.Name
	}
	if input.Description != nil {
		updates["description"] = *input.Description
	}
	if input.ImageURL != nil {
		updates["image_url"] = *input.ImageURL
	}

	if err := s.repo.Postgres.Country.Update(ctx, id, updates); err != nil {
		s.logger.Sugar().Errorf("failed to update country(%d): %s", id, err.Error())
		return ErrInternal
	}

	s.invalidateCache(ctx)

	return nil
}

func (s *countryService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Postgres.Country.Delete(ctx, id); err != nil {
		s.logger.Sugar().Errorf("failed to delete country(%d): %s", id, err.Error())
		return ErrInternal
	}

	s.invalidateCache(ctx)

	return nil
}

func (s *countryService) invalidateCache(ctx context.Context) {
	for _, pattern := range []string{"countries:*", "country:*"} {
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
