package user

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"math/big"
	"os"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	usererrors "assetdesk/internal/user/errors"
)

const (
	// TokenTTL is the lifetime of an issued bearer token.
	TokenTTL = 7 * 24 * time.Hour
	// OTPTTL is the lifetime of a one-time verification code.
	OTPTTL = 5 * time.Minute
)

func jwtSecret() []byte {
	return []byte(os.Getenv("JWT_SECRET"))
}

// GenerateOTP returns a random 6-digit numeric code.
func GenerateOTP() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}

// HashOTP returns the hex SHA-256 of a one-time code. Only the hash is
// ever stored.
func HashOTP(otp string) string {
	sum := sha256.Sum256([]byte(otp))
	return hex.EncodeToString(sum[:])
}

// HashToken returns the hex SHA-256 of a bearer token for the revocation
// list.
func HashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}

// TokenClaims is what an issued token carries.
type TokenClaims struct {
	UserID    string
	Role      string
	ExpiresAt time.Time
}

// GenerateToken issues an HS256 token embedding the user id and role.
func GenerateToken(userID, role string, ttl time.Duration) (string, time.Time, error) {
	expiresAt := time.Now().Add(ttl)
	claims := jwt.MapClaims{
		"user_id": userID,
		"role":    role,
		"exp":     expiresAt.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(jwtSecret())
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, expiresAt, nil
}

// ParseToken verifies signature and expiry and returns the embedded claims.
func ParseToken(tokenString string) (TokenClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %q", token.Method.Alg())
		}
		return jwtSecret(), nil
	})
	if err != nil || !token.Valid {
		if err != nil && strings.Contains(err.Error(), "expired") {
			return TokenClaims{}, usererrors.ErrTokenExpired
		}
		return TokenClaims{}, usererrors.ErrTokenInvalid
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return TokenClaims{}, usererrors.ErrTokenInvalid
	}

	userID, _ := claims["user_id"].(string)
	if userID == "" {
		return TokenClaims{}, usererrors.ErrTokenInvalid
	}
	role, _ := claims["role"].(string)

	out := TokenClaims{UserID: userID, Role: role}
	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		out.ExpiresAt = exp.Time
	}
	return out, nil
}
