package model

import "github.com/google/uuid"

type Profile struct {
	UserID uuid.UUID `json:"user_id"`
	Bio    string    `json:"bio"`
}
