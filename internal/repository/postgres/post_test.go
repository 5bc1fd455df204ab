package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/TaravanaApp/travel-service/internal/model"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v3"
)

var errRepoTest = errors.New("repository test error")

var feedColumns = []string{
	"id", "author_id", "place_id", "content", "visibility", "created_at", "updated_at",
	"username", "display_name", "avatar_url",
	"likes_count", "comments_count", "is_liked", "is_saved",
}

func TestFindFeedExcludesViewerAndPrivatePosts(t *testing.T) {
	mock, err := pgxmock.NewPool(pgxmock.QueryMatcherOption(pgxmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("mock pool: %v", err)
	}
	defer mock.Close()

	viewerID := uuid.New()
	authorID := uuid.New()
	now := time.Now()

	mock.ExpectQuery(`p\.visibility = 'public' AND p\.author_id <> \$1`).
		WithArgs(viewerID, 20, 0).
		WillReturnRows(pgxmock.NewRows(feedColumns).
			AddRow(int64(1), authorID, (*int64)(nil), "sunrise over the bay", model.VisibilityPublic, now, now,
				"marco", (*string)(nil), (*string)(nil),
				int64(2), int64(1), true, false))
	mock.ExpectQuery(`FROM post_images i WHERE i\.post_id = ANY\(\$1\)`).
		WithArgs(pgxmock.AnyArg()).
		WillReturnRows(pgxmock.NewRows([]string{"post_id", "url", "position"}).
			AddRow(int64(1), "https://cdn/img-1", 0))

	r := newPostRepo(mock)
	posts, err := r.FindFeed(context.Background(), viewerID, 0, 0)
	if err != nil {
		t.Fatalf("find feed: %v", err)
	}
	if len(posts) != 1 {
		t.Fatalf("len(posts) = %d, want 1", len(posts))
	}
	if posts[0].LikesCount != 2 || posts[0].CommentsCount != 1 {
		t.Fatalf("unexpected counts: likes=%d comments=%d", posts[0].LikesCount, posts[0].CommentsCount)
	}
	if !posts[0].IsLiked || posts[0].IsSaved {
		t.Fatalf("unexpected viewer flags: is_liked=%v is_saved=%v", posts[0].IsLiked, posts[0].IsSaved)
	}
	if len(posts[0].Images) != 1 || posts[0].Images[0].URL != "https://cdn/img-1" {
		t.Fatalf("unexpected images: %+v", posts[0].Images)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestFindByIDNotFound(t *testing.T) {
	mock, err := pgxmock.NewPool(pgxmock.QueryMatcherOption(pgxmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("mock pool: %v", err)
	}
	defer mock.Close()

	viewerID := uuid.New()

	mock.ExpectQuery(`WHERE p\.id = \$2`).
		WithArgs(viewerID, int64(404)).
		WillReturnRows(pgxmock.NewRows(feedColumns))

	r := newPostRepo(mock)
	if _, err := r.FindByID(context.Background(), 404, viewerID); err != pgx.ErrNoRows {
		t.Fatalf("err = %v, want pgx.ErrNoRows", err)
	}
}

func TestFindSavedOrdersBySaveTime(t *testing.T) {
	mock, err := pgxmock.NewPool(pgxmock.QueryMatcherOption(pgxmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("mock pool: %v", err)
	}
	defer mock.Close()

	userID := uuid.New()

	mock.ExpectQuery(`JOIN post_saves sv ON sv\.post_id = p\.id AND sv\.user_id = \$1[\s\S]*ORDER BY sv\.created_at DESC`).
		WithArgs(userID, 20, 0).
		WillReturnRows(pgxmock.NewRows(feedColumns))

	r := newPostRepo(mock)
	posts, err := r.FindSaved(context.Background(), userID, 0, 0)
	if err != nil {
		t.Fatalf("find saved: %v", err)
	}
	if len(posts) != 0 {
		t.Fatalf("expected empty result")
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestCreatePostWithImages(t *testing.T) {
	mock, err := pgxmock.NewPool(pgxmock.QueryMatcherOption(pgxmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("mock pool: %v", err)
	}
	defer mock.Close()

	authorID := uuid.New()

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO posts\(author_id, place_id, content, visibility, created_at, updated_at\)`).
		WithArgs(authorID, pgxmock.AnyArg(), "hiking in Patagonia", model.VisibilityPublic, pgxmock.AnyArg(), pgxmock.AnyArg()).
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(11)))
	mock.ExpectExec(`INSERT INTO post_images\(post_id, url, position\)`).
		WithArgs(int64(11), "https://cdn/img-1", 0).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectCommit()

	r := newPostRepo(mock)
	post, err := r.Create(
		context.Background(),
		model.Post{AuthorID: authorID, Content: "hiking in Patagonia", Visibility: model.VisibilityPublic},
		[]*model.PostImage{{URL: "https://cdn/img-1", Position: 0}},
	)
	if err != nil {
		t.Fatalf("create post: %v", err)
	}
	if post.ID != 11 {
		t.Fatalf("post.ID = %d, want 11", post.ID)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestDeleteCascadesEngagementRows(t *testing.T) {
	mock, err := pgxmock.NewPool(pgxmock.QueryMatcherOption(pgxmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("mock pool: %v", err)
	}
	defer mock.Close()

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM post_likes WHERE post_id = \$1`).
		WithArgs(int64(9)).
		WillReturnResult(pgxmock.NewResult("DELETE", 3))
	mock.ExpectExec(`DELETE FROM post_saves WHERE post_id = \$1`).
		WithArgs(int64(9)).
		WillReturnResult(pgxmock.NewResult("DELETE", 1))
	mock.ExpectExec(`DELETE FROM comments WHERE post_id = \$1`).
		WithArgs(int64(9)).
		WillReturnResult(pgxmock.NewResult("DELETE", 2))
	mock.ExpectExec(`DELETE FROM post_images WHERE post_id = \$1`).
		WithArgs(int64(9)).
		WillReturnResult(pgxmock.NewResult("DELETE", 1))
	mock.ExpectExec(`DELETE FROM posts WHERE id = \$1`).
		WithArgs(int64(9)).
		WillReturnResult(pgxmock.NewResult("DELETE", 1))
	mock.ExpectCommit()

	r := newPostRepo(mock)
	if err := r.Delete(context.Background(), 9); err != nil {
		t.Fatalf("delete: %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestDeleteMissingPost(t *testing.T) {
	mock, err := pgxmock.NewPool(pgxmock.QueryMatcherOption(pgxmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("mock pool: %v", err)
	}
	defer mock.Close()

	mock.ExpectBegin()
	for _, table := range []string{"post_likes", "post_saves", "comments", "post_images"} {
		mock.ExpectExec(`DELETE FROM ` + table + ` WHERE post_id = \$1`).
			WithArgs(int64(404)).
			WillReturnResult(pgxmock.NewResult("DELETE", 0))
	}
	mock.ExpectExec(`DELETE FROM posts WHERE id = \$1`).
		WithArgs(int64(404)).
		WillReturnResult(pgxmock.NewResult("DELETE", 0))
	mock.ExpectRollback()

	r := newPostRepo(mock)
	if err := r.Delete(context.Background(), 404); err != pgx.ErrNoRows {
		t.Fatalf("err = %v, want pgx.ErrNoRows", err)
	}
}

func TestUpdateRejectsUnknownField(t *testing.T) {
	mock, err := pgxmock.NewPool(pgxmock.QueryMatcherOption(pgxmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("mock pool: %v", err)
	}
	defer mock.Close()

	r := newPostRepo(mock)
	err = r.Update(context.Background(), 1, map[string]interface{}{"author_id": uuid.New()})
	if err != ErrFieldsNotAllowedToUpdate {
		t.Fatalf("err = %v, want ErrFieldsNotAllowedToUpdate", err)
	}
}
