package model

import "time"

type Place struct {
	ID          int64     `json:"id"`
	CountryID   int64     `json:"country_id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	ImageURL    *string   `json:"image_url"`
	Tags        *string   `json:"tags"`
	Priority    *string   `json:"priority"`
	CreatedAt   time.Time `json:"created_at"`
}
