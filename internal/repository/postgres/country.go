package postgres

import (
	"context"
	"time"

	"github.com/TaravanaApp/travel-service/internal/model"
)

type countryRepo struct {
	db Querier
}

func newCountryRepo(db Querier) Country {
	return &countryRepo{
		db: db,
	}
}

func (r *countryRepo) Create(ctx context.Context, country model.Country) (*model.Country, error) {
	country.CreatedAt = time.Now()
	if err := r.db.QueryRow(
		ctx,
		"INSERT INTO countries(name, description, image_url, created_at) VALUES($1, $2, $3, $4) RETURNING id",
		country.Name,
		country.Description,
		country.ImageURL,
		country.CreatedAt,
	).Scan(&country.ID); err != nil {
		return nil, err
	}

	return &country, nil
}

func (r *countryRepo) FindAll(ctx context.Context, limit int, offset int) ([]*model.Country, error) {
	maxLimit(&limit)

	rows, err := r.db.Query(
		ctx,
		"SELECT c.id, c.name, c.description, c.image_url, c.created_at FROM countries c ORDER BY c.name LIMIT $1 OFFSET $2",
		limit,
		offset,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var countries []*model.Country
	for rows.Next() {
		var country model.Country
		if err := rows.Scan(
			&country.ID,
			&country.Name,
			&country.Description,
			&country.ImageURL,
			&country.CreatedAt,
		); err != nil {
			return nil, err
		}

		countries = append(countries, &country)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return countries, nil
}

func (r *countryRepo) FindByID(ctx context.Context, id int64) (*model.Country, error) {
	var country model.Country
	if err := r.db.QueryRow(
		ctx,
		"SELECT c.id, c.name, c.description, c.image_url, c.created_at FROM countries c WHERE c.id = $1",
		id,
	).Scan(
		&country.ID,
		&country.Name,
		&country.Description,
		&country.ImageURL,
		&country.CreatedAt,
	); err != nil {
		return nil, err
	}

	return &country, nil
}

func (r *countryRepo) Update(ctx context.Context, id int64, updates map[string]interface{}) error {
	return updateByID(ctx, r.db, "countries", "id", id, []string{"name", "description", "image_url"}, updates)
}

func (r *countryRepo) Delete(ctx context.Context, id int64) error {
	_, err := r.db.Exec(ctx, "DELETE FROM countries WHERE id = $1", id)
	return err
}
