package dto

type PostImageInput struct {
	URL      string `json:"url" binding:"required"`
	Position int    `json:"position"`
}

type CreatePostRequest struct {
	PlaceID    *int64           `json:"place_id"`
	Content    string           `json:"content" binding:"required,min=1"`
	Visibility string           `json:"visibility" binding:"omitempty,oneof=public private"`
	Images     []PostImageInput `json:"images"`
}

type EditPostRequest struct {
	PlaceID    *int64  `json:"place_id"`
	Content    *string `json:"content"`
	Visibility *string `json:"visibility" binding:"omitempty,oneof=public private"`
}
