package postgres

import (
	"context"
	"time"

	"github.com/TaravanaApp/travel-service/internal/model"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type postRepo struct {
	db Querier
}

func newPostRepo(db Querier) Post {
	return &postRepo{
		db: db,
	}
}

// feedSelect decorates every post row with live engagement fields for the
// viewer passed as $1. Counts and membership come straight from the store on
// every read.
const feedSelect = `SELECT
	p.id, p.author_id, p.place_id, p.content, p.visibility, p.created_at, p.updated_at,
	u.username, u.display_name, u.avatar_url,
	(SELECT COUNT(*) FROM post_likes l WHERE l.post_id = p.id) AS likes_count,
	(SELECT COUNT(*) FROM comments c WHERE c.post_id = p.id) AS comments_count,
	EXISTS(SELECT 1 FROM post_likes l WHERE l.post_id = p.id AND l.user_id = $1) AS is_liked,
	EXISTS(SELECT 1 FROM post_saves s WHERE s.post_id = p.id AND s.user_id = $1) AS is_saved
	FROM posts p
	JOIN cached_users u ON p.author_id = u.id`

func (r *postRepo) Create(ctx context.Context, post model.Post, images []*model.PostImage) (*model.Post, error) {
	now := time.Now()
	post.CreatedAt = now
	post.UpdatedAt = now

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	if err := tx.QueryRow(
		ctx,
		"INSERT INTO posts(author_id, place_id, content, visibility, created_at, updated_at) VALUES($1, $2, $3, $4, $5, $6) RETURNING id",
		post.AuthorID,
		post.PlaceID,
		post.Content,
		post.Visibility,
		post.CreatedAt,
		post.UpdatedAt,
	).Scan(&post.ID); err != nil {
		return nil, err
	}

	for _, image := range images {
		if _, err := tx.Exec(
			ctx,
			"INSERT INTO post_images(post_id, url, position) VALUES($1, $2, $3)",
			post.ID,
			image.URL,
			image.Position,
		); err != nil {
			return nil, err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	return &post, nil
}

func (r *postRepo) FindByID(ctx context.Context, id int64, viewerID uuid.UUID) (*model.FeedPost, error) {
	rows, err := r.db.Query(ctx, feedSelect+" WHERE p.id = $2", viewerID, id)
	if err != nil {
		return nil, err
	}

	posts, err := r.scanFeedPosts(ctx, rows)
	if err != nil {
		return nil, err
	}
	if len(posts) == 0 {
		return nil, pgx.ErrNoRows
	}

	return posts[0], nil
}

func (r *postRepo) FindFeed(ctx context.Context, viewerID uuid.UUID, limit int, offset int) ([]*model.FeedPost, error) {
	maxLimit(&limit)

	rows, err := r.db.Query(
		ctx,
		feedSelect+` WHERE p.visibility = 'public' AND p.author_id <> $1
		ORDER BY p.created_at DESC
		LIMIT $2
		OFFSET $3`,
		viewerID,
		limit,
		offset,
	)
	if err != nil {
		return nil, err
	}

	return r.scanFeedPosts(ctx, rows)
}

func (r *postRepo) FindAuthorPosts(ctx context.Context, authorID uuid.UUID, viewerID uuid.UUID, limit int, offset int) ([]*model.FeedPost, error) {
	maxLimit(&limit)

	rows, err := r.db.Query(
		ctx,
		feedSelect+` WHERE p.author_id = $2
		ORDER BY p.created_at DESC
		LIMIT $3
		OFFSET $4`,
		viewerID,
		authorID,
		limit,
		offset,
	)
	if err != nil {
		return nil, err
	}

	return r.scanFeedPosts(ctx, rows)
}

func (r *postRepo) FindSaved(ctx context.Context, userID uuid.UUID, limit int, offset int) ([]*model.FeedPost, error) {
	maxLimit(&limit)

	rows, err := r.db.Query(
		ctx,
		feedSelect+` JOIN post_saves sv ON sv.post_id = p.id AND sv.user_id = $1
		ORDER BY sv.created_at DESC
		LIMIT $2
		OFFSET $3`,
		userID,
		limit,
		offset,
	)
	if err != nil {
		return nil, err
	}

	return r.scanFeedPosts(ctx, rows)
}

func (r *postRepo) FindAuthorID(ctx context.Context, id int64) (uuid.UUID, error) {
	var authorID uuid.UUID
	if err := r.db.QueryRow(ctx, "SELECT p.author_id FROM posts p WHERE p.id = $1", id).Scan(&authorID); err != nil {
		return uuid.Nil, err
	}

	return authorID, nil
}

func (r *postRepo) Update(ctx context.Context, id int64, updates map[string]interface{}) error {
	if len(updates) == 0 {
		return nil
	}
	updates["updated_at"] = time.Now()
	return updateByID(ctx, r.db, "posts", "id", id, []string{"place_id", "content", "visibility", "updated_at"}, updates)
}

// Delete removes the post together with every dependent engagement row in one
// transaction; a partial cascade is never left behind.
func (r *postRepo) Delete(ctx context.Context, id int64) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	for _, query := range []string{
		"DELETE FROM post_likes WHERE post_id = $1",
		"DELETE FROM post_saves WHERE post_id = $1",
		"DELETE FROM comments WHERE post_id = $1",
		"DELETE FROM post_images WHERE post_id = $1",
	} {
		if _, err := tx.Exec(ctx, query, id); err != nil {
			return err
		}
	}

	tag, err := tx.Exec(ctx, "DELETE FROM posts WHERE id = $1", id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}

	return tx.Commit(ctx)
}

func (r *postRepo) scanFeedPosts(ctx context.Context, rows pgx.Rows) ([]*model.FeedPost, error) {
	defer rows.Close()

	var posts []*model.FeedPost
	var ids []int64
	for rows.Next() {
		var post model.FeedPost
		if err := rows.Scan(
			&post.Post.ID,
			&post.Post.AuthorID,
			&post.Post.PlaceID,
			&post.Post.Content,
			&post.Post.Visibility,
			&post.Post.CreatedAt,
			&post.Post.UpdatedAt,
			&post.Author.Username,
			&post.Author.DisplayName,
			&post.Author.AvatarURL,
			&post.LikesCount,
			&post.CommentsCount,
			&post.IsLiked,
			&post.IsSaved,
		); err != nil {
			return nil, err
		}

		ids = append(ids, post.Post.ID)
		posts = append(posts, &post)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	images, err := r.loadImages(ctx, ids)
	if err != nil {
		return nil, err
	}
	for _, post := range posts {
		post.Images = images[post.Post.ID]
	}

	return posts, nil
}

func (r *postRepo) loadImages(ctx context.Context, postIDs []int64) (map[int64][]*model.PostImage, error) {
	images := make(map[int64][]*model.PostImage)
	if len(postIDs) == 0 {
		return images, nil
	}

	rows, err := r.db.Query(
		ctx,
		"SELECT i.post_id, i.url, i.position FROM post_images i WHERE i.post_id = ANY($1) ORDER BY i.position",
		postIDs,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var postID int64
		var image model.PostImage
		if err := rows.Scan(&postID, &image.URL, &image.Position); err != nil {
			return nil, err
		}

		images[postID] = append(images[postID], &image)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return images, nil
}
