package postgres

import (
	"context"
	"time"

	"github.com/TaravanaApp/travel-service/internal/model"
	"github.com/google/uuid"
)

type tripRepo struct {
	db Querier
}

func newTripRepo(db Querier) Trip {
	return &tripRepo{
		db: db,
	}
}

func (r *tripRepo) Create(ctx context.Context, trip model.Trip) (*model.Trip, error) {
	trip.CreatedAt = time.Now()
	if err := r.db.QueryRow(
		ctx,
		"INSERT INTO trips(user_id, place_id, start_date, end_date, image_url, status, notes, created_at) VALUES($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id",
		trip.UserID,
		trip.PlaceID,
		trip.StartDate,
		trip.EndDate,
		trip.ImageURL,
		trip.Status,
		trip.Notes,
		trip.CreatedAt,
	).Scan(&trip.ID); err != nil {
		return nil, err
	}

	return &trip, nil
}

func (r *tripRepo) FindUserTrips(ctx context.Context, userID uuid.UUID, status *model.TripStatus, limit int, offset int) ([]*model.Trip, error) {
	maxLimit(&limit)

	query := `SELECT t.id, t.user_id, t.place_id, t.start_date, t.end_date, t.image_url, t.status, t.notes, t.created_at
	FROM trips t
	WHERE t.user_id = $1`
	args := []interface{}{userID, limit, offset}
	if status != nil {
		query += " AND t.status = $4"
		args = append(args, *status)
	}
	query += " ORDER BY t.created_at DESC LIMIT $2 OFFSET $3"

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var trips []*model.Trip
	for rows.Next() {
		var trip model.Trip
		if err := rows.Scan(
			&trip.ID,
			&trip.UserID,
			&trip.PlaceID,
			&trip.StartDate,
			&trip.EndDate,
			&trip.ImageURL,
			&trip.Status,
			&trip.Notes,
			&trip.CreatedAt,
		); err != nil {
			return nil, err
		}

		trips = append(trips, &trip)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return trips, nil
}

func (r *tripRepo) FindByID(ctx context.Context, id int64) (*model.Trip, error) {
	var trip model.Trip
	if err := r.db.QueryRow(
		ctx,
		"SELECT t.id, t.user_id, t.place_id, t.start_date, t.end_date, t.image_url, t.status, t.notes, t.created_at FROM trips t WHERE t.id = $1",
		id,
	).Scan(
		&trip.ID,
		&trip.UserID,
		&trip.PlaceID,
		&trip.StartDate,
		&trip.EndDate,
		&trip.ImageURL,
		&trip.Status,
		&trip.Notes,
		&trip.CreatedAt,
	); err != nil {
		return nil, err
	}

	return &trip, nil
}

func (r *tripRepo) Update(ctx context.Context, id int64, updates map[string]interface{}) error {
	return updateByID(ctx, r.db, "trips", "id", id, []string{"place_id", "start_date", "end_date", "image_url", "status", "notes"}, updates)
}

func (r *tripRepo) Delete(ctx context.Context, id int64) error {
	_, err := r.db.Exec(ctx, "DELETE FROM trips WHERE id = $1", id)
	return err
}
