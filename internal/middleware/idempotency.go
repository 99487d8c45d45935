package middleware

import (
	"bytes"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"assetdesk/internal/shared/contextutil"
	"assetdesk/internal/shared/response"
)

const (
	idempotencyHeader  = "Idempotency-Key"
	idempotencyTTL     = 24 * time.Hour
	idempotencyLockTTL = 30 * time.Second
)

// bodyRecorder tees the response body so a successful reply can be stored
// for replay.
type bodyRecorder struct {
	gin.ResponseWriter
	body bytes.Buffer
}

func (r *bodyRecorder) Write(b []byte) (int, error) {
	r.body.Write(b)
	return r.ResponseWriter.Write(b)
}

// Idempotency replays the stored response when a POST request repeats an
// Idempotency-Key. The stored value is "<status>\n<body>"; a short-lived
// redis lock turns a concurrent duplicate into a 409 while the first
// request is still in flight. Requests without the header pass through.
func Idempotency(rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.GetHeader(idempotencyHeader)
		if key == "" || c.Request.Method != http.MethodPost {
			c.Next()
			return
		}

		ctx := c.Request.Context()
		cacheKey := fmt.Sprintf("idemp:%s:%s:%s", c.FullPath(), contextutil.GetUserID(ctx), key)
		lockKey := cacheKey + ":lock"

		if stored, err := rdb.Get(ctx, cacheKey).Result(); err == nil {
			status, body := splitStoredResponse(stored)
			c.Header("Content-Type", "application/json; charset=utf-8")
			c.String(status, body)
			c.Abort()
			return
		}

		locked, err := rdb.SetNX(ctx, lockKey, "1", idempotencyLockTTL).Result()
		if err != nil {
			// Redis being down must not block mutations, only dedupe.
			contextutil.GetLogger(ctx, nil).Warn("idempotency lock unavailable", zap.Error(err))
			c.Next()
			return
		}
		if !locked {
			response.Error(c, http.StatusConflict, "A request with this idempotency key is already being processed", nil)
			c.Abort()
			return
		}

		rec := &bodyRecorder{ResponseWriter: c.Writer}
		c.Writer = rec
		c.Next()

		if status := rec.Status(); status >= 200 && status < 300 {
			stored := strconv.Itoa(status) + "\n" + rec.body.String()
			if err := rdb.Set(ctx, cacheKey, stored, idempotencyTTL).Err(); err != nil {
				contextutil.GetLogger(ctx, nil).Warn("idempotent response not cached", zap.Error(err))
			}
		}
		rdb.Del(ctx, lockKey)
	}
}

func splitStoredResponse(stored string) (int, string) {
	head, body, found := strings.Cut(stored, "\n")
	if !found {
		return http.StatusOK, stored
	}
	status, err := strconv.Atoi(head)
	if err != nil || status < 100 || status > 599 {
		return http.StatusOK, stored
	}
	return status, body
}
