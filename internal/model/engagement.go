package model

import (
	"time"

	"github.com/google/uuid"
)

type EngagementKind string

const (
	KindLike EngagementKind = "like"
	KindSave EngagementKind = "save"
)

// Like and Save are membership rows; at most one exists per (user, post) pair.
type Like struct {
	UserID    uuid.UUID `json:"user_id"`
	PostID    int64     `json:"post_id"`
	CreatedAt time.Time `json:"created_at"`
}

type Save struct {
	UserID    uuid.UUID `json:"user_id"`
	PostID    int64     `json:"post_id"`
	CreatedAt time.Time `json:"created_at"`
}
