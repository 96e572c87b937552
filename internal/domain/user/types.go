package user

import (
	"civic-hub/internal/pkg/errs"
)

var ErrInvalidRole = errs.Mark(errs.New("invalid role"), errs.ErrUnauthorized)

type Role string

// Values match the role claim written by the session service.
const (
	RoleResident Role = "USER"
	RoleAdmin    Role = "ADMIN"
)

var roleLevels = map[Role]int{
	RoleResident: 1,
	RoleAdmin:    2,
}

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	_, ok := roleLevels[r]
	return ok
}

// AtLeast reports whether r ranks at or above min. Unknown roles rank nowhere.
func (r Role) AtLeast(minRole Role) bool {
	level, ok := roleLevels[r]
	minLevel, minOK := roleLevels[minRole]
	return ok && minOK && level >= minLevel
}

func NewRole(s string) (Role, error) {
	role := Role(s)
	if !role.IsValid() {
		return "", ErrInvalidRole
	}
	return role, nil
}
