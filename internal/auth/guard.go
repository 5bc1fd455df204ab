package auth

import (
	"github.com/TaravanaApp/travel-service/internal/model"
	"github.com/google/uuid"
)

// Principal is the actor behind a request. A zero Principal is anonymous.
type Principal struct {
	ID            uuid.UUID
	Role          model.Role
	Authenticated bool
}

func (p Principal) IsAdmin() bool {
	return p.Authenticated && p.Role == model.RoleAdmin
}

type Action int

const (
	ActionRead Action = iota
	ActionWrite
	ActionToggle
)

// Allow decides whether principal may perform action on a resource owned by
// ownerID. Reads are open to everyone, toggles to any authenticated principal,
// and writes to the owner or an admin.
func Allow(action Action, p Principal, ownerID uuid.UUID) bool {
	switch action {
	case ActionRead:
		return true
	case ActionToggle:
		return p.Authenticated
	case ActionWrite:
		return p.Authenticated && (p.IsAdmin() || p.ID == ownerID)
	default:
		return false
	}
}
