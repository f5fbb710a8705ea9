package httpapi

import (
	"context"
	"net/http"
	"time"

	"voiceagent-bridge/internal/auth"
	"voiceagent-bridge/pkg/logger"
	"voiceagent-bridge/pkg/utils"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// Limiter hands out concurrency slots keyed by workspace.
type Limiter interface {
	Acquire(ctx context.Context, key string) (bool, error)
	Release(ctx context.Context, key string) error
}

// RedisLimiter caps concurrent holders per key across API replicas.
type RedisLimiter struct {
	Client redis.Scripter
	Limit  int
	// TTL frees slots leaked by a crashed replica.
	TTL time.Duration
}

func (l RedisLimiter) Acquire(ctx context.Context, key string) (bool, error) {
	return utils.AcquireSlot(ctx, l.Client, key, l.Limit, l.TTL)
}

func (l RedisLimiter) Release(ctx context.Context, key string) error {
	return utils.ReleaseSlot(ctx, l.Client, key)
}

const batchCapKeyPrefix = "bridge:normalize:inflight:"

// BatchCap limits concurrent normalize requests per workspace. A nil limiter
// disables the cap. Limiter errors fail open and are logged.
func BatchCap(l Limiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		if l == nil {
			c.Next()
			return
		}
		wid, err := auth.WorkspaceID(c.Request.Context())
		if err != nil || wid == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "workspace_id required"})
			return
		}
		key := batchCapKeyPrefix + wid

		ok, err := l.Acquire(c.Request.Context(), key)
		if err != nil {
			logger.FromGin(c).Error("batch cap acquire failed", "err", err)
			c.Next()
			return
		}
		if !ok {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "too many concurrent normalize requests"})
			return
		}
		defer func() {
			if err := l.Release(context.WithoutCancel(c.Request.Context()), key); err != nil {
				logger.FromGin(c).Error("batch cap release failed", "err", err)
			}
		}()
		c.Next()
	}
}
