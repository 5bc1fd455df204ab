package dto

type CreateTripRequest struct {
	PlaceID   int64   `json:"place_id" binding:"required"`
	StartDate string  `json:"start_date" binding:"required"`
	EndDate   string  `json:"end_date" binding:"required"`
	ImageURL  *string `json:"image_url"`
	Status    string  `json:"status" binding:"omitempty,oneof=planned completed"`
	Notes     *string `json:"notes"`
}

type EditTripRequest struct {
	PlaceID   *int64  `json:"place_id"`
	StartDate *string `json:"start_date"`
	EndDate   *string `json:"end_date"`
	ImageURL  *string `json:"image_url"`
	Status    *string `json:"status" binding:"omitempty,oneof=planned completed"`
	Notes     *string `json:"notes"`
}
