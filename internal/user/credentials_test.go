package user_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"assetdesk/internal/user"
	usererrors "assetdesk/internal/user/errors"
)

func TestGenerateOTP(t *testing.T) {
	otp, err := user.GenerateOTP()
	assert.NoError(t, err)
	assert.Len(t, otp, 6)
	assert.Regexp(t, `^\d{6}$`, otp)
}

func TestHashOTP(t *testing.T) {
	a := user.HashOTP("123456")
	b := user.HashOTP("123456")
	c := user.HashOTP("123457")

	assert.Len(t, a, 64)
	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
	assert.NotContains(t, a, "123456")
}

func TestTokenRoundTrip(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	token, expiresAt, err := user.GenerateToken("user-1", user.RoleAdmin, time.Hour)
	assert.NoError(t, err)

	claims, err := user.ParseToken(token)
	assert.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, user.RoleAdmin, claims.Role)
	assert.WithinDuration(t, expiresAt, claims.ExpiresAt, time.Second)
}

func TestParseToken_Expired(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	token, _, err := user.GenerateToken("user-1", user.RoleAdmin, -time.Minute)
	assert.NoError(t, err)

	_, err = user.ParseToken(token)
	assert.ErrorIs(t, err, usererrors.ErrTokenExpired)
}

func TestParseToken_WrongSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	token, _, err := user.GenerateToken("user-1", user.RoleAdmin, time.Hour)
	assert.NoError(t, err)

	t.Setenv("JWT_SECRET", "other-secret")
	_, err = user.ParseToken(token)
	assert.ErrorIs(t, err, usererrors.ErrTokenInvalid)
}
