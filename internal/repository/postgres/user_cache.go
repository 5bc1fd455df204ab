package postgres

import (
	"context"

	"github.com/TaravanaApp/travel-service/internal/model"
	"github.com/google/uuid"
)

type userCacheRepo struct {
	db Querier
}

func newUserCacheRepo(db Querier) UserCache {
	return &userCacheRepo{
		db: db,
	}
}

// CreateWithProfile inserts the cached user and their profile as one
// transaction. Inserts are idempotent so redelivered broker events are no-ops.
func (r *userCacheRepo) CreateWithProfile(ctx context.Context, cachedUser model.CachedUser, bio string) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(
		ctx,
		"INSERT INTO cached_users(id, username, display_name, avatar_url, role) VALUES($1, $2, $3, $4, $5) ON CONFLICT (id) DO NOTHING",
		cachedUser.ID,
		cachedUser.Username,
		cachedUser.DisplayName,
		cachedUser.AvatarURL,
		cachedUser.Role,
	); err != nil {
		return err
	}

	if _, err := tx.Exec(
		ctx,
		"INSERT INTO profiles(user_id, bio) VALUES($1, $2) ON CONFLICT (user_id) DO NOTHING",
		cachedUser.ID,
		bio,
	); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

func (r *userCacheRepo) Update(ctx context.Context, id uuid.UUID, updates map[string]interface{}) error {
	return updateByID(ctx, r.db, "cached_users", "id", id, []string{"username", "display_name", "avatar_url", "role"}, updates)
}

func (r *userCacheRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.CachedUser, error) {
	var user model.CachedUser
	if err := r.db.QueryRow(
		ctx,
		"SELECT u.id, u.username, u.display_name, u.avatar_url, u.role FROM cached_users u WHERE u.id = $1",
		id,
	).Scan(
		&user.ID,
		&user.Username,
		&user.DisplayName,
		&user.AvatarURL,
		&user.Role,
	); err != nil {
		return nil, err
	}

	return &user, nil
}

func (r *userCacheRepo) FindProfile(ctx context.Context, userID uuid.UUID) (*model.Profile, error) {
	var profile model.Profile
	if err := r.db.QueryRow(
		ctx,
		"SELECT p.user_id, p.bio FROM profiles p WHERE p.user_id = $1",
		userID,
	).Scan(
		&profile.UserID,
		&profile.Bio,
	); err != nil {
		return nil, err
	}

	return &profile, nil
}

func (r *userCacheRepo) UpdateProfileBio(ctx context.Context, userID uuid.UUID, bio string) error {
	_, err := r.db.Exec(ctx, "UPDATE profiles SET bio = $1 WHERE user_id = $2", bio, userID)
	return err
}
