package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/litrevu/litrevu/internal/infrastructure/ratelimit"
	"github.com/litrevu/litrevu/internal/shared/errors"
	"github.com/litrevu/litrevu/internal/shared/logger"
	"github.com/litrevu/litrevu/internal/shared/utils"
)

// RateLimiter throttles requests per client IP and route. It fails open: a
// missing or unreachable backend never blocks a request.
type RateLimiter struct {
	limiter ratelimit.RateLimiter
	logger  logger.Interface
}

// NewRateLimiter accepts a nil limiter, which disables limiting.
func NewRateLimiter(limiter ratelimit.RateLimiter, logger logger.Interface) *RateLimiter {
	return &RateLimiter{
		limiter: limiter,
		logger:  logger,
	}
}

func (rl *RateLimiter) Limit() gin.HandlerFunc {
	return func(c *gin.Context) {
		if rl.limiter == nil {
			c.Next()
			return
		}

		key := "ip:" + c.ClientIP() + ":" + c.FullPath()
		allowed, err := rl.limiter.Allow(c.Request.Context(), key)
		if err != nil {
			rl.logger.Warnw("rate limiter unavailable, allowing request", "error", err, "path", c.FullPath())
			c.Next()
			return
		}

		if !allowed {
			utils.RespondError(c, errors.NewRateLimitedError("Too many attempts, please try again later."))
			c.Abort()
			return
		}

		c.Next()
	}
}
