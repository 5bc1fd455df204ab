package model

import (
	"time"

	"github.com/google/uuid"
)

type TripStatus string

const (
	TripPlanned   TripStatus = "planned"
	TripCompleted TripStatus = "completed"
)

type Trip struct {
	ID        int64      `json:"id"`
	UserID    uuid.UUID  `json:"user_id"`
	PlaceID   int64      `json:"place_id"`
	StartDate time.Time  `json:"start_date"`
	EndDate   time.Time  `json:"end_date"`
	ImageURL  *string    `json:"image_url"`
	Status    TripStatus `json:"status"`
	Notes     *string    `json:"notes"`
	CreatedAt time.Time  `json:"created_at"`
}
