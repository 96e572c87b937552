package usecase

import (
	"civic-hub/internal/domain/user"
	"civic-hub/internal/pkg/errs"
	"civic-hub/internal/pkg/jwt"
)

var ErrInvalidSession = errs.Mark(errs.New("invalid or expired session"), errs.ErrUnauthorized)

// SessionValidator turns a session token into the acting user.
type SessionValidator interface {
	Authenticate(token string) (user.Actor, error)
}

type sessionValidatorImpl struct {
	jwtService *jwt.Service
}

func NewSessionValidator(jwtService *jwt.Service) SessionValidator {
	return &sessionValidatorImpl{
		jwtService: jwtService,
	}
}

func (s *sessionValidatorImpl) Authenticate(token string) (user.Actor, error) {
	claims, err := s.jwtService.ValidateToken(token)
	if err != nil {
		return user.Actor{}, errs.Wrap(ErrInvalidSession, err.Error())
	}

	role, err := user.NewRole(claims.Role)
	if err != nil {
		return user.Actor{}, errs.Wrap(ErrInvalidSession, "unknown role claim")
	}

	return user.NewActor(claims.UserID, role), nil
}
