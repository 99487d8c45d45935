package middleware

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"assetdesk/internal/shared/contextutil"
)

// ContextLogger decorates the request context with a scoped logger carrying
// the request id and authenticated user id, so service and repository code
// can log without knowing about gin. Must run after RequestID and, for the
// user id, after AuthMiddleware.
func ContextLogger(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		rid := c.GetString("request_id")
		uid := c.GetString("user_id")

		reqLogger := logger.With(
			zap.String("request_id", rid),
			zap.String("user_id", uid),
		)

		ctx := contextutil.WithLogger(c.Request.Context(), reqLogger)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}
