package service

import (
	"context"
	"testing"
	"time"

	"github.com/TaravanaApp/travel-service/internal/auth"
	"github.com/TaravanaApp/travel-service/internal/dto"
	"github.com/TaravanaApp/travel-service/internal/model"
	"github.com/google/uuid"
	"github.com/pashagolub/pgxmock/v3"
	"go.uber.org/zap"
)

func TestCreateTripUnauthenticated(t *testing.T) {
	_, repo := newMockRepo(t)
	s := newTripService(zap.NewNop(), repo)

	_, err := s.Create(context.Background(), auth.Principal{}, dto.CreateTripRequest{
		PlaceID:   1,
		StartDate: "2026-09-01",
		EndDate:   "2026-09-10",
	})
	if err != ErrNotAuthorized {
		t.Fatalf("err = %v, want ErrNotAuthorized", err)
	}
}

func TestCreateTripInvalidDates(t *testing.T) {
	_, repo := newMockRepo(t)
	s := newTripService(zap.NewNop(), repo)

	principal := auth.Principal{ID: uuid.New(), Role: model.RoleUser, Authenticated: true}

	tests := []struct {
		name  string
		start string
		end   string
	}{
		{"end before start", "2026-09-10", "2026-09-01"},
		{"malformed start", "next monday", "2026-09-10"},
		{"malformed end", "2026-09-01", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := s.Create(context.Background(), principal, dto.CreateTripRequest{
				PlaceID:   1,
				StartDate: tt.start,
				EndDate:   tt.end,
			})
			if err != ErrInvalidTripDates {
				t.Fatalf("err = %v, want ErrInvalidTripDates", err)
			}
		})
	}
}

func TestCreateTripDefaultsToPlanned(t *testing.T) {
	mock, repo := newMockRepo(t)
	s := newTripService(zap.NewNop(), repo)

	principal := auth.Principal{ID: uuid.New(), Role: model.RoleUser, Authenticated: true}

	mock.ExpectQuery(`FROM places p WHERE p\.id = \$1`).
		WithArgs(int64(2)).
		WillReturnRows(pgxmock.NewRows([]string{"id", "country_id", "name", "description", "image_url", "tags", "priority", "created_at"}).
			AddRow(int64(2), int64(5), "Torres del Paine", "national park", (*string)(nil), (*string)(nil), (*string)(nil), time.Now()))
	mock.ExpectQuery(`INSERT INTO trips`).
		WithArgs(principal.ID, int64(2), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), model.TripPlanned, pgxmock.AnyArg(), pgxmock.AnyArg()).
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(31)))

	trip, err := s.Create(context.Background(), principal, dto.CreateTripRequest{
		PlaceID:   2,
		StartDate: "2026-09-01",
		EndDate:   "2026-09-10",
	})
	if err != nil {
		t.Fatalf("create trip: %v", err)
	}
	if trip.Status != model.TripPlanned {
		t.Fatalf("status = %q, want planned", trip.Status)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestFindMyRequiresAuthentication(t *testing.T) {
	_, repo := newMockRepo(t)
	s := newTripService(zap.NewNop(), repo)

	if _, err := s.FindMy(context.Background(), auth.Principal{}, nil, 0, 0); err != ErrNotAuthorized {
		t.Fatalf("err = %v, want ErrNotAuthorized", err)
	}
}

func TestDeleteTripByStranger(t *testing.T) {
	mock, repo := newMockRepo(t)
	s := newTripService(zap.NewNop(), repo)

	stranger := auth.Principal{ID: uuid.New(), Role: model.RoleUser, Authenticated: true}
	notes := "bring sunscreen"

	mock.ExpectQuery(`FROM trips t WHERE t\.id = \$1`).
		WithArgs(int64(31)).
		WillReturnRows(pgxmock.NewRows([]string{"id", "user_id", "place_id", "start_date", "end_date", "image_url", "status", "notes", "created_at"}).
			AddRow(int64(31), uuid.New(), int64(2), time.Now(), time.Now(), (*string)(nil), model.TripPlanned, &notes, time.Now()))

	if err := s.Delete(context.Background(), stranger, 31); err != ErrNoAccess {
		t.Fatalf("err = %v, want ErrNoAccess", err)
	}
}
