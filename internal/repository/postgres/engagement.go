package postgres

import (
	"context"
	"errors"

	"github.com/TaravanaApp/travel-service/internal/model"
	"github.com/google/uuid"
)

var ErrUnknownEngagementKind = errors.New("unknown engagement kind")

var engagementTables = map[model.EngagementKind]string{
	model.KindLike: "post_likes",
	model.KindSave: "post_saves",
}

type engagementRepo struct {
	db Querier
}

func newEngagementRepo(db Querier) Engagement {
	return &engagementRepo{
		db: db,
	}
}

// Toggle flips the (user, post) membership row in the table for kind and
// returns the new state with the fresh total. Both tables carry
// UNIQUE(user_id, post_id); a racing duplicate insert hits ON CONFLICT and
// settles on the row being present rather than failing the request.
func (r *engagementRepo) Toggle(ctx context.Context, kind model.EngagementKind, userID uuid.UUID, postID int64) (bool, int64, error) {
	table, ok := engagementTables[kind]
	if !ok {
		return false, 0, ErrUnknownEngagementKind
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return false, 0, err
	}
	defer tx.Rollback(ctx)

	tag, err := tx.Exec(ctx, "DELETE FROM "+table+" WHERE user_id = $1 AND post_id = $2", userID, postID)
	if err != nil {
		return false, 0, err
	}

	active := false
	if tag.RowsAffected() == 0 {
		if _, err := tx.Exec(
			ctx,
			"INSERT INTO "+table+"(user_id, post_id) VALUES($1, $2) ON CONFLICT (user_id, post_id) DO NOTHING",
			userID,
			postID,
		); err != nil {
			return false, 0, err
		}
		active = true
	}

	var count int64
	if err := tx.QueryRow(ctx, "SELECT COUNT(*) FROM "+table+" WHERE post_id = $1", postID).Scan(&count); err != nil {
		return false, 0, err
	}

	if err := tx.Commit(ctx); err != nil {
		return false, 0, err
	}

	return active, count, nil
}
