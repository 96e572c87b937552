//go:build unit

package jwt_test

import (
	"testing"
	"time"

	"civic-hub/internal/domain/user"
	"civic-hub/internal/pkg/jwt"

	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestService(t *testing.T) {
	userID := uuid.New()

	t.Run("success: round trip keeps user and role", func(t *testing.T) {
		svc := jwt.NewService("secret", "civic-session", time.Hour)
		token, err := svc.GenerateToken(userID, user.RoleAdmin)
		require.NoError(t, err)

		claims, err := svc.ValidateToken(token)
		require.NoError(t, err)
		assert.Equal(t, userID, claims.UserID)
		assert.Equal(t, "ADMIN", claims.Role)
	})

	t.Run("error: expired token", func(t *testing.T) {
		svc := jwt.NewService("secret", "", -time.Minute)
		token, err := svc.GenerateToken(userID, user.RoleResident)
		require.NoError(t, err)

		_, err = svc.ValidateToken(token)
		assert.ErrorIs(t, err, jwt.ErrExpiredToken)
	})

	t.Run("error: signed with another key", func(t *testing.T) {
		token, err := jwt.NewService("other", "", time.Hour).GenerateToken(userID, user.RoleResident)
		require.NoError(t, err)

		_, err = jwt.NewService("secret", "", time.Hour).ValidateToken(token)
		assert.ErrorIs(t, err, jwt.ErrInvalidToken)
	})

	t.Run("error: issuer mismatch", func(t *testing.T) {
		token, err := jwt.NewService("secret", "someone-else", time.Hour).GenerateToken(userID, user.RoleResident)
		require.NoError(t, err)

		_, err = jwt.NewService("secret", "civic-session", time.Hour).ValidateToken(token)
		assert.ErrorIs(t, err, jwt.ErrInvalidToken)
	})

	t.Run("success: user taken from subject when user_id is absent", func(t *testing.T) {
		token, err := gojwt.NewWithClaims(gojwt.SigningMethodHS256, gojwt.MapClaims{
			"sub":  userID.String(),
			"role": "RESIDENT",
			"exp":  time.Now().Add(time.Hour).Unix(),
		}).SignedString([]byte("secret"))
		require.NoError(t, err)

		claims, err := jwt.NewService("secret", "", time.Hour).ValidateToken(token)
		require.NoError(t, err)
		assert.Equal(t, userID, claims.UserID)
	})

	t.Run("error: token without expiry", func(t *testing.T) {
		token, err := gojwt.NewWithClaims(gojwt.SigningMethodHS256, gojwt.MapClaims{
			"user_id": userID.String(),
			"role":    "RESIDENT",
		}).SignedString([]byte("secret"))
		require.NoError(t, err)

		_, err = jwt.NewService("secret", "", time.Hour).ValidateToken(token)
		assert.ErrorIs(t, err, jwt.ErrInvalidToken)
	})
}
