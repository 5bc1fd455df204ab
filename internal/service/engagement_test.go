package service

import (
	"context"
	"testing"

	"github.com/TaravanaApp/travel-service/internal/auth"
	"github.com/TaravanaApp/travel-service/internal/model"
	"github.com/TaravanaApp/travel-service/internal/repository"
	"github.com/TaravanaApp/travel-service/internal/repository/postgres"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v3"
	"go.uber.org/zap"
)

func newMockRepo(t *testing.T) (pgxmock.PgxPoolIface, *repository.Repository) {
	t.Helper()

	mock, err := pgxmock.NewPool(pgxmock.QueryMatcherOption(pgxmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("mock pool: %v", err)
	}
	t.Cleanup(mock.Close)

	return mock, &repository.Repository{Postgres: postgres.New(mock)}
}

func expectToggle(mock pgxmock.PgxPoolIface, table string, userID uuid.UUID, postID int64, deleted int64, count int64) {
	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM `+table+` WHERE user_id = \$1 AND post_id = \$2`).
		WithArgs(userID, postID).
		WillReturnResult(pgxmock.NewResult("DELETE", deleted))
	if deleted == 0 {
		mock.ExpectExec(`INSERT INTO `+table).
			WithArgs(userID, postID).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))
	}
	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM `+table).
		WithArgs(postID).
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(count))
	mock.ExpectCommit()
}

func TestToggleRequiresAuthentication(t *testing.T) {
	_, repo := newMockRepo(t)
	s := newEngagementService(zap.NewNop(), repo)

	if _, err := s.Toggle(context.Background(), model.KindLike, auth.Principal{}, 1); err != ErrNotAuthorized {
		t.Fatalf("err = %v, want ErrNotAuthorized", err)
	}
}

func TestTogglePostNotFound(t *testing.T) {
	mock, repo := newMockRepo(t)
	s := newEngagementService(zap.NewNop(), repo)

	principal := auth.Principal{ID: uuid.New(), Role: model.RoleUser, Authenticated: true}

	mock.ExpectQuery(`SELECT p\.author_id FROM posts p WHERE p\.id = \$1`).
		WithArgs(int64(404)).
		WillReturnError(pgx.ErrNoRows)

	if _, err := s.Toggle(context.Background(), model.KindLike, principal, 404); err != ErrPostNotFound {
		t.Fatalf("err = %v, want ErrPostNotFound", err)
	}
}

func TestToggleLikeRoundTrip(t *testing.T) {
	mock, repo := newMockRepo(t)
	s := newEngagementService(zap.NewNop(), repo)

	principal := auth.Principal{ID: uuid.New(), Role: model.RoleUser, Authenticated: true}
	authorID := uuid.New()

	mock.ExpectQuery(`SELECT p\.author_id FROM posts p WHERE p\.id = \$1`).
		WithArgs(int64(7)).
		WillReturnRows(pgxmock.NewRows([]string{"author_id"}).AddRow(authorID))
	expectToggle(mock, "post_likes", principal.ID, 7, 0, 1)

	result, err := s.Toggle(context.Background(), model.KindLike, principal, 7)
	if err != nil {
		t.Fatalf("toggle on: %v", err)
	}
	if !result.Active || result.Count != 1 {
		t.Fatalf("unexpected result after toggle on: %+v", result)
	}

	mock.ExpectQuery(`SELECT p\.author_id FROM posts p WHERE p\.id = \$1`).
		WithArgs(int64(7)).
		WillReturnRows(pgxmock.NewRows([]string{"author_id"}).AddRow(authorID))
	expectToggle(mock, "post_likes", principal.ID, 7, 1, 0)

	result, err = s.Toggle(context.Background(), model.KindLike, principal, 7)
	if err != nil {
		t.Fatalf("toggle off: %v", err)
	}
	if result.Active || result.Count != 0 {
		t.Fatalf("unexpected result after toggle off: %+v", result)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestToggleSaveOwnPostAllowed(t *testing.T) {
	mock, repo := newMockRepo(t)
	s := newEngagementService(zap.NewNop(), repo)

	principal := auth.Principal{ID: uuid.New(), Role: model.RoleUser, Authenticated: true}

	mock.ExpectQuery(`SELECT p\.author_id FROM posts p WHERE p\.id = \$1`).
		WithArgs(int64(5)).
		WillReturnRows(pgxmock.NewRows([]string{"author_id"}).AddRow(principal.ID))
	expectToggle(mock, "post_saves", principal.ID, 5, 0, 1)

	result, err := s.Toggle(context.Background(), model.KindSave, principal, 5)
	if err != nil {
		t.Fatalf("toggle: %v", err)
	}
	if !result.Active {
		t.Fatalf("expected save to be active")
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
