package dto

type CreateCountryRequest struct {
	Name        string  `json:"name" binding:"required,min=1,max=150"`
	Description string  `json:"description" binding:"required"`
	ImageURL    *string `json:"image_url"`
}

type EditCountryRequest struct {
	Name        *string `json:"name" binding:"omitempty,min=1,max=150"`
	Description *string `json:"description"`
	ImageURL    *string `json:"image_url"`
}

type CreatePlaceRequest struct {
	CountryID   int64   `json:"country_id" binding:"required"`
	Name        string  `json:"name" binding:"required,min=1,max=150"`
	Description string  `json:"description" binding:"required"`
	ImageURL    *string `json:"image_url"`
	Tags        *string `json:"tags"`
	Priority    *string `json:"priority"`
}

type EditPlaceRequest struct {
	CountryID   *int64  `json:"country_id"`
	Name        *string `json:"name" binding:"omitempty,min=1,max=150"`
	Description *string `json:"description"`
	ImageURL    *string `json:"image_url"`
	Tags        *string `json:"tags"`
	Priority    *string `json:"priority"`
}
