package dto

type UpdateProfileRequest struct {
	Bio string `json:"bio" binding:"required,max=500"`
}
