package service

import (
	"context"
	"testing"
	"time"

	"github.com/TaravanaApp/travel-service/internal/auth"
	"github.com/TaravanaApp/travel-service/internal/dto"
	"github.com/TaravanaApp/travel-service/internal/model"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v3"
	"go.uber.org/zap"
)

func TestCreateCommentUnauthenticated(t *testing.T) {
	_, repo := newMockRepo(t)
	s := newCommentService(zap.NewNop(), repo)

	_, err := s.Create(context.Background(), auth.Principal{}, 1, dto.CreateCommentRequest{Content: "hi"})
	if err != ErrNotAuthorized {
		t.Fatalf("err = %v, want ErrNotAuthorized", err)
	}
}

func TestCreateCommentBlankContent(t *testing.T) {
	_, repo := newMockRepo(t)
	s := newCommentService(zap.NewNop(), repo)

	principal := auth.Principal{ID: uuid.New(), Role: model.RoleUser, Authenticated: true}

	for _, content := range []string{"", "   ", "\n\t "} {
		if _, err := s.Create(context.Background(), principal, 1, dto.CreateCommentRequest{Content: content}); err != ErrCommentContentBlank {
			t.Fatalf("content %q: err = %v, want ErrCommentContentBlank", content, err)
		}
	}
}

func TestCreateCommentTrimsContent(t *testing.T) {
	mock, repo := newMockRepo(t)
	s := newCommentService(zap.NewNop(), repo)

	principal := auth.Principal{ID: uuid.New(), Role: model.RoleUser, Authenticated: true}
	authorID := uuid.New()

	mock.ExpectQuery(`SELECT p\.author_id FROM posts p WHERE p\.id = \$1`).
		WithArgs(int64(3)).
		WillReturnRows(pgxmock.NewRows([]string{"author_id"}).AddRow(authorID))
	mock.ExpectQuery(`INSERT INTO comments`).
		WithArgs(int64(3), principal.ID, "great view!", pgxmock.AnyArg(), pgxmock.AnyArg()).
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(21)))

	comment, err := s.Create(context.Background(), principal, 3, dto.CreateCommentRequest{Content: "  great view!  "})
	if err != nil {
		t.Fatalf("create comment: %v", err)
	}
	if comment.Content != "great view!" {
		t.Fatalf("content = %q, want trimmed", comment.Content)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestCreateCommentPostNotFound(t *testing.T) {
	mock, repo := newMockRepo(t)
	s := newCommentService(zap.NewNop(), repo)

	principal := auth.Principal{ID: uuid.New(), Role: model.RoleUser, Authenticated: true}

	mock.ExpectQuery(`SELECT p\.author_id FROM posts p WHERE p\.id = \$1`).
		WithArgs(int64(404)).
		WillReturnError(pgx.ErrNoRows)

	if _, err := s.Create(context.Background(), principal, 404, dto.CreateCommentRequest{Content: "hi"}); err != ErrPostNotFound {
		t.Fatalf("err = %v, want ErrPostNotFound", err)
	}
}

func expectFindComment(mock pgxmock.PgxPoolIface, commentID int64, authorID uuid.UUID) {
	now := time.Now()
	mock.ExpectQuery(`FROM comments c WHERE c\.id = \$1`).
		WithArgs(commentID).
		WillReturnRows(pgxmock.NewRows([]string{"id", "post_id", "author_id", "content", "created_at", "updated_at"}).
			AddRow(commentID, int64(3), authorID, "great view!", now, now))
}

func TestDeleteCommentByOwner(t *testing.T) {
	mock, repo := newMockRepo(t)
	s := newCommentService(zap.NewNop(), repo)

	owner := auth.Principal{ID: uuid.New(), Role: model.RoleUser, Authenticated: true}

	expectFindComment(mock, 21, owner.ID)
	mock.ExpectExec(`DELETE FROM comments WHERE id = \$1`).
		WithArgs(int64(21)).
		WillReturnResult(pgxmock.NewResult("DELETE", 1))

	if err := s.Delete(context.Background(), owner, 21); err != nil {
		t.Fatalf("delete: %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestDeleteCommentByAdmin(t *testing.T) {
	mock, repo := newMockRepo(t)
	s := newCommentService(zap.NewNop(), repo)

	admin := auth.Principal{ID: uuid.New(), Role: model.RoleAdmin, Authenticated: true}

	expectFindComment(mock, 21, uuid.New())
	mock.ExpectExec(`DELETE FROM comments WHERE id = \$1`).
		WithArgs(int64(21)).
		WillReturnResult(pgxmock.NewResult("DELETE", 1))

	if err := s.Delete(context.Background(), admin, 21); err != nil {
		t.Fatalf("delete: %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestDeleteCommentByStranger(t *testing.T) {
	mock, repo := newMockRepo(t)
	s := newCommentService(zap.NewNop(), repo)

	stranger := auth.Principal{ID: uuid.New(), Role: model.RoleUser, Authenticated: true}

	expectFindComment(mock, 21, uuid.New())

	if err := s.Delete(context.Background(), stranger, 21); err != ErrNoAccess {
		t.Fatalf("err = %v, want ErrNoAccess", err)
	}
}

func TestDeleteCommentNotFound(t *testing.T) {
	mock, repo := newMockRepo(t)
	s := newCommentService(zap.NewNop(), repo)

	principal := auth.Principal{ID: uuid.New(), Role: model.RoleUser, Authenticated: true}

	mock.ExpectQuery(`FROM comments c WHERE c\.id = \$1`).
		WithArgs(int64(404)).
		WillReturnError(pgx.ErrNoRows)

	if err := s.Delete(context.Background(), principal, 404); err != ErrCommentNotFound {
		t.Fatalf("err = %v, want ErrCommentNotFound", err)
	}
}
