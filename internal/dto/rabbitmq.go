package dto

import "github.com/google/uuid"

type MQUserCreatedMsg struct {
	ID          uuid.UUID `json:"id"`
	Username    string    `json:"username"`
	DisplayName *string   `json:"display_name"`
	AvatarURL   *string   `json:"avatar_url"`
	Role        string    `json:"role"`
	Bio         string    `json:"bio"`
}

type MQUserUpdatedMsg struct {
	ID      uuid.UUID              `json:"id"`
	Updates map[string]interface{} `json:"updates"`
}
