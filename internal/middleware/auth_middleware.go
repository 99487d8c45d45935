package middleware

import (
	"context"
	"strings"

	"github.com/gin-gonic/gin"

	"assetdesk/internal/shared/apperror"
	"assetdesk/internal/shared/contextutil"
	"assetdesk/internal/shared/response"
	"assetdesk/internal/user"
	usererrors "assetdesk/internal/user/errors"
)

// TokenValidator checks a presented bearer token end to end: signature,
// expiry, revocation list, and account status.
type TokenValidator interface {
	ValidateToken(ctx context.Context, token string) (user.Identity, error)
}

func writeAuthError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	response.Error(c, httpErr.Status, httpErr.Message, httpErr.Details)
	c.Abort()
}

// AuthMiddleware authenticates the request and attaches the caller's
// identity to both the gin context and the request context.
func AuthMiddleware(validator TokenValidator) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, found := strings.CutPrefix(c.GetHeader("Authorization"), "Bearer ")
		if !found || token == "" {
			writeAuthError(c, usererrors.ErrTokenMissing)
			return
		}

		identity, err := validator.ValidateToken(c.Request.Context(), token)
		if err != nil {
			writeAuthError(c, err)
			return
		}

		c.Set("user_id", identity.ID)
		c.Set("user_role", identity.Role)

		ctx := c.Request.Context()
		ctx = contextutil.WithUserID(ctx, identity.ID)
		ctx = contextutil.WithUserRole(ctx, identity.Role)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// RequireRole rejects authenticated callers whose role does not match.
// Must run after AuthMiddleware.
func RequireRole(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetString("user_role") != role {
			writeAuthError(c, apperror.ErrForbidden)
			return
		}
		c.Next()
	}
}
