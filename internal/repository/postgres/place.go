package postgres

import (
	"context"
	"time"

	"github.com/TaravanaApp/travel-service/internal/model"
)

type placeRepo struct {
	db Querier
}

func newPlaceRepo(db Querier) Place {
	return &placeRepo{
		db: db,
	}
}

func (r *placeRepo) Create(ctx context.Context, place model.Place) (*model.Place, error) {
	place.CreatedAt = time.Now()
	if err := r.db.QueryRow(
		ctx,
		"INSERT INTO places(country_id, name, description, image_url, tags, priority, created_at) VALUES($1, $2, $3, $4, $5, $6, $7) RETURNING id",
		place.CountryID,
		place.Name,
		place.Description,
		place.ImageURL,
		place.Tags,
		place.Priority,
		place.CreatedAt,
	).Scan(&place.ID); err != nil {
		return nil, err
	}

	return &place, nil
}

func (r *placeRepo) FindAll(ctx context.Context, countryID *int64, limit int, offset int) ([]*model.Place, error) {
	maxLimit(&limit)

	query := `SELECT p.id, p.country_id, p.name, p.description, p.image_url, p.tags, p.priority, p.created_at
	FROM places p`
	args := []interface{}{limit, offset}
	if countryID != nil {
		query += " WHERE p.country_id = $3"
		args = append(args, *countryID)
	}
	query += " ORDER BY p.name LIMIT $1 OFFSET $2"

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var places []*model.Place
	for rows.Next() {
		var place model.Place
		if err := rows.Scan(
			&place.ID,
			&place.CountryID,
			&place.Name,
			&place.Description,
			&place.ImageURL,
			&place.Tags,
			&place.Priority,
			&place.CreatedAt,
		); err != nil {
			return nil, err
		}

		places = append(places, &place)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return places, nil
}

func (r *placeRepo) FindByID(ctx context.Context, id int64) (*model.Place, error) {
	var place model.Place
	if err := r.db.QueryRow(
		ctx,
		"SELECT p.id, p.country_id, p.name, p.description, p.image_url, p.tags, p.priority, p.created_at FROM places p WHERE p.id = $1",
		id,
	).Scan(
		&place.ID,
		&place.CountryID,
		&place.Name,
		&place.Description,
		&place.ImageURL,
		&place.Tags,
		&place.Priority,
		&place.CreatedAt,
	); err != nil {
		return nil, err
	}

	return &place, nil
}

func (r *placeRepo) Update(ctx context.Context, id int64, updates map[string]interface{}) error {
	return updateByID(ctx, r.db, "places", "id", id, []string{"country_id", "name", "description", "image_url", "tags", "priority"}, updates)
}

func (r *placeRepo) Delete(ctx context.Context, id int64) error {
	_, err := r.db.Exec(ctx, "DELETE FROM places WHERE id = $1", id)
	return err
}
