package model

import (
	"time"

	"github.com/google/uuid"
)

type Visibility string

const (
	VisibilityPublic  Visibility = "public"
	VisibilityPrivate Visibility = "private"
)

type Post struct {
	ID         int64      `json:"id"`
	AuthorID   uuid.UUID  `json:"author_id"`
	PlaceID    *int64     `json:"place_id"`
	Content    string     `json:"content"`
	Visibility Visibility `json:"visibility"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

type PostImage struct {
	URL      string `json:"url"`
	Position int    `json:"position"`
}

// FeedPost is a post decorated with viewer-relative engagement fields.
// The counts and membership flags are computed at read time and never stored.
type FeedPost struct {
	Post          Post         `json:"post"`
	Author        UserAuthor   `json:"author"`
	Images        []*PostImage `json:"images"`
	LikesCount    int64        `json:"likes_count"`
	CommentsCount int64        `json:"comments_count"`
	IsLiked       bool         `json:"is_liked"`
	IsSaved       bool         `json:"is_saved"`
}
