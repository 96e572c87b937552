package user

import (
	"civic-hub/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrAdminOnly = errs.Mark(errs.New("administrator role required"), errs.ErrForbidden)

// Actor is the authenticated caller of a use case.
type Actor struct {
	ID   uuid.UUID
	Role Role
}

func NewActor(id uuid.UUID, role Role) Actor {
	return Actor{ID: id, Role: role}
}

func (a Actor) IsAdmin() bool {
	return a.Role.AtLeast(RoleAdmin)
}

func (a Actor) Owns(ownerID uuid.UUID) bool {
	return a.ID != uuid.Nil && a.ID == ownerID
}

func (a Actor) CanManage(ownerID uuid.UUID) bool {
	return a.IsAdmin() || a.Owns(ownerID)
}

func (a Actor) RequireAdmin() error {
	if !a.IsAdmin() {
		return ErrAdminOnly
	}
	return nil
}
