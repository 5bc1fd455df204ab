package service

import (
	"context"
	"time"

	"github.com/TaravanaApp/travel-service/internal/auth"
	"github.com/TaravanaApp/travel-service/internal/dto"
	"github.com/TaravanaApp/travel-service/internal/model"
	"github.com/TaravanaApp/travel-service/internal/repository"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

const tripDateLayout = "2006-01-02"

type tripService struct {
	logger *zap.Logger
	repo   *repository.Repository
}

func newTripService(logger *zap.Logger, repo *repository.Repository) Trip {
	return &tripService{
		logger: logger,
		repo:   repo,
	}
}

func (s *tripService) Create(ctx context.Context, principal auth.Principal, input dto.CreateTripRequest) (*model.Trip, error) {
	if !principal.Authenticated {
		return nil, ErrNotAuthorized
	}

	startDate, err0 := time.Parse(tripDateLayout, input.StartDate)
	endDate, err1 := time.Parse(tripDateLayout, input.EndDate)
	if err0 != nil || err1 != nil || endDate.Before(startDate) {
		return nil, ErrInvalidTripDates
	}

	if _, err := s.repo.Postgres.Place.FindByID(ctx, input.PlaceID); err != nil {
		if err == pgx.ErrNoRows {
			return nil, ErrPlaceNotFound
		}
		s.logger.Sugar().Errorf("failed to find place(%d): %s", input.PlaceID, err.Error())
		return nil, ErrInternal
	}

	status := model.TripPlanned
	if input.Status != "" {
		status = model.TripStatus(input.Status)
	}

	trip := model.Trip{
		UserID:    principal.ID,
		PlaceID:   input.PlaceID,
		StartDate: startDate,
		EndDate:   endDate,
		ImageURL:  input.ImageURL,
		Status:    status,
		Notes:     input.Notes,
	}

	createdTrip, err := s.repo.Postgres.Trip.Create(ctx, trip)
	if err != nil {
		s.logger.Sugar().Errorf("failed to create user(%s) trip: %s", principal.ID.String(), err.Error())
		return nil, ErrInternal
	}

	return createdTrip, nil
}

// FindMy lists only the caller's trips; trips are never visible to other users.
func (s *tripService) FindMy(ctx context.Context, principal auth.Principal, status *model.TripStatus, limit int, offset int) ([]*model.Trip, error) {
	if !principal.Authenticated {
		return nil, ErrNotAuthorized
	}

	maxLimit(&limit)

	trips, err := s.repo.Postgres.Trip.FindUserTrips(ctx, principal.ID, status, limit, offset)
	if err != nil && err != pgx.ErrNoRows {
		s.logger.Sugar().Errorf("failed to find user(%s) trips from postgres: %s", principal.ID.String(), err.Error())
		return nil, ErrInternal
	}

	return trips, nil
}

func (s *tripService) Edit(ctx context.Context, principal auth.Principal, id int64, input dto.EditTripRequest) error {
	trip, err := s.repo.Postgres.Trip.FindByID(ctx, id)
	if err != nil {
		if err == pgx.ErrNoRows {
			return ErrTripNotFound
		}
		s.logger.Sugar().Errorf("failed to find trip(%d): %s", id, err.Error())
		return ErrInternal
	}

	if !auth.Allow(auth.ActionWrite, principal, trip.UserID) {
		return ErrNoAccess
	}

	updates := make(map[string]interface{})
	if input.PlaceID != nil {
		updates["place_id"] = *input.PlaceID
	}
	if input.StartDate != nil {
		startDate, err := time.Parse(tripDateLayout, *input.StartDate)
		if err != nil {
			return ErrInvalidTripDates
		}
		updates["start_date"] = startDate
	}
	if input.EndDate != nil {
		endDate, err := time.Parse(tripDateLayout, *input.EndDate)
		if err != nil {
			return ErrInvalidTripDates
		}
		updates["end_date"] = endDate
	}
	if input.ImageURL != nil {
		updates["image_url"] = *input.ImageURL
	}
	if input.Status != nil {
		updates["status"] = *input.Status
	}
	if input.Notes != nil {
		updates["notes"] = *input.Notes
	}

	if err := s.repo.Postgres.Trip.Update(ctx, id, updates); err != nil {
		s.logger.Sugar().Errorf("failed to update trip(%d): %s", id, err.Error())
		return ErrInternal
	}

	return nil
}

func (s *tripService) Delete(ctx context.Context, principal auth.Principal, id int64) error {
	trip, err := s.repo.Postgres.Trip.FindByID(ctx, id)
	if err != nil {
		if err == pgx.ErrNoRows {
			return ErrTripNotFound
		}
		s.logger.Sugar().Errorf("failed to find trip(%d): %s", id, err.Error())
		return ErrInternal
	}

	if !auth.Allow(auth.ActionWrite, principal, trip.UserID) {
		return ErrNoAccess
	}

	if err := s.repo.Postgres.Trip.Delete(ctx, id); err != nil {
		s.logger.Sugar().Errorf("failed to delete trip(%d): %s", id, err.Error())
		return ErrInternal
	}

	return nil
}
