package dto

type ToggleResult struct {
	Active bool  `json:"active"`
	Count  int64 `json:"count"`
}

type LikeResponse struct {
	Message    string `json:"message"`
	Liked      bool   `json:"liked"`
	LikesCount int64  `json:"likes_count"`
}

type SaveResponse struct {
	Message   string `json:"message"`
	Saved     bool   `json:"saved"`
	SaveCount int64  `json:"save_count"`
}
