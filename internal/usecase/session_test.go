//go:build unit

package usecase_test

import (
	"testing"
	"time"

	"civic-hub/internal/domain/user"
	"civic-hub/internal/pkg/errs"
	"civic-hub/internal/pkg/jwt"
	"civic-hub/internal/usecase"

	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionValidator_Authenticate(t *testing.T) {
	svc := jwt.NewService("secret", "", time.Hour)
	validator := usecase.NewSessionValidator(svc)
	userID := uuid.New()

	t.Run("success: admin token", func(t *testing.T) {
		token, err := svc.GenerateToken(userID, user.RoleAdmin)
		require.NoError(t, err)

		actor, err := validator.Authenticate(token)

		require.NoError(t, err)
		assert.Equal(t, userID, actor.ID)
		assert.True(t, actor.IsAdmin())
	})

	t.Run("error: garbage token", func(t *testing.T) {
		_, err := validator.Authenticate("not-a-jwt")

		require.Error(t, err)
		assert.Equal(t, errs.KindUnauthorized, errs.KindOf(err))
	})

	t.Run("error: unknown role claim", func(t *testing.T) {
		claims := jwt.Claims{
			UserID: userID,
			Role:   "SUPERUSER",
			RegisteredClaims: gojwt.RegisteredClaims{
				ExpiresAt: gojwt.NewNumericDate(time.Now().Add(time.Hour)),
			},
		}
		token, err := gojwt.NewWithClaims(gojwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
		require.NoError(t, err)

		_, err = validator.Authenticate(token)

		require.Error(t, err)
		assert.ErrorIs(t, err, usecase.ErrInvalidSession)
	})
}
