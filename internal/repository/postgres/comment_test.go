package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/TaravanaApp/travel-service/internal/model"
	"github.com/google/uuid"
	"github.com/pashagolub/pgxmock/v3"
)

func TestCreateComment(t *testing.T) {
	mock, err := pgxmock.NewPool(pgxmock.QueryMatcherOption(pgxmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("mock pool: %v", err)
	}
	defer mock.Close()

	authorID := uuid.New()

	mock.ExpectQuery(`INSERT INTO comments\(post_id, author_id, content, created_at, updated_at\)`).
		WithArgs(int64(3), authorID, "great view!", pgxmock.AnyArg(), pgxmock.AnyArg()).
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(21)))

	r := newCommentRepo(mock)
	comment, err := r.Create(context.Background(), model.Comment{PostID: 3, AuthorID: authorID, Content: "great view!"})
	if err != nil {
		t.Fatalf("create comment: %v", err)
	}
	if comment.ID != 21 {
		t.Fatalf("comment.ID = %d, want 21", comment.ID)
	}
	if comment.CreatedAt.IsZero() {
		t.Fatalf("expected created_at to be set")
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestFindPostComments(t *testing.T) {
	mock, err := pgxmock.NewPool(pgxmock.QueryMatcherOption(pgxmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("mock pool: %v", err)
	}
	defer mock.Close()

	authorID := uuid.New()
	now := time.Now()

	mock.ExpectQuery(`FROM comments c[\s\S]*JOIN cached_users u ON c\.author_id = u\.id[\s\S]*ORDER BY c\.created_at DESC`).
		WithArgs(int64(3), 20, 0).
		WillReturnRows(pgxmock.NewRows([]string{
			"id", "post_id", "author_id", "content", "created_at", "updated_at",
			"username", "display_name", "avatar_url",
		}).AddRow(int64(21), int64(3), authorID, "great view!", now, now, "marco", (*string)(nil), (*string)(nil)))

	r := newCommentRepo(mock)
	comments, err := r.FindPostComments(context.Background(), 3, 0, 0)
	if err != nil {
		t.Fatalf("find post comments: %v", err)
	}
	if len(comments) != 1 {
		t.Fatalf("len(comments) = %d, want 1", len(comments))
	}
	if comments[0].Author.Username != "marco" {
		t.Fatalf("author = %q, want marco", comments[0].Author.Username)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestDeleteComment(t *testing.T) {
	mock, err := pgxmock.NewPool(pgxmock.QueryMatcherOption(pgxmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("mock pool: %v", err)
	}
	defer mock.Close()

	mock.ExpectExec(`DELETE FROM comments WHERE id = \$1`).
		WithArgs(int64(21)).
		WillReturnResult(pgxmock.NewResult("DELETE", 1))

	r := newCommentRepo(mock)
	if err := r.Delete(context.Background(), 21); err != nil {
		t.Fatalf("delete comment: %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
