package dto

import "github.com/TaravanaApp/travel-service/internal/model"

type Me struct {
	User    model.CachedUser `json:"user"`
	Profile model.Profile    `json:"profile"`
}
