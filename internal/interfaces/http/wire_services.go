package http

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/litrevu/litrevu/internal/application/user/usecases"
	"github.com/litrevu/litrevu/internal/infrastructure/auth"
	"github.com/litrevu/litrevu/internal/infrastructure/config"
	"github.com/litrevu/litrevu/internal/infrastructure/email"
	"github.com/litrevu/litrevu/internal/infrastructure/permission"
	"github.com/litrevu/litrevu/internal/infrastructure/ratelimit"
	"github.com/litrevu/litrevu/internal/interfaces/http/middleware"
	"github.com/litrevu/litrevu/internal/shared/db"
	"github.com/litrevu/litrevu/internal/shared/logger"
	"github.com/litrevu/litrevu/internal/shared/services/markdown"
)

const redisPingTimeout = 3 * time.Second

// initInfrastructure builds repositories and the services the use cases
// depend on.
func (c *Container) initInfrastructure() error {
	cfg := c.cfg
	log := c.log

	c.redis = initRedis(cfg, log)
	c.repos = newRepositories(c.db, log)
	c.txMgr = db.NewTransactionManager(c.db)

	c.hasher = auth.NewBcryptPasswordHasher(cfg.Auth.Password.BcryptCost)
	c.tokens = &sessionTokenAdapter{auth.NewSessionTokenService(cfg.Auth.Session.Secret, cfg.Auth.Session.ExpDays)}
	c.markdown = markdown.NewService()
	c.mailer = newMailer(cfg, log)

	enforcer, err := permission.NewEnforcer(c.db, log)
	if err != nil {
		return fmt.Errorf("failed to initialize ownership gate: %w", err)
	}
	c.enforcer = enforcer

	var limiter ratelimit.RateLimiter
	if c.redis != nil {
		limiter = ratelimit.NewRedisRateLimiter(c.redis, ratelimit.RateLimitConfig{
			Requests: cfg.RateLimit.Requests,
			Window:   time.Duration(cfg.RateLimit.WindowSeconds) * time.Second,
		})
	}
	c.rateLimiter = middleware.NewRateLimiter(limiter, log)
	return nil
}

// initRedis connects to Redis when it is enabled. Rate limiting fails open,
// so an unreachable server only disables it.
func initRedis(cfg *config.Config, log logger.Interface) *redis.Client {
	if !cfg.Redis.Enabled {
		log.Infow("redis disabled, login rate limiting is off")
		return nil
	}

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.GetAddr(),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), redisPingTimeout)
	defer cancel()
	if err := redisClient.Ping(ctx).Err(); err != nil {
		log.Warnw("failed to connect to Redis, continuing without rate limiting", "addr", cfg.Redis.GetAddr(), "error", err)
		_ = redisClient.Close()
		return nil
	}
	log.Infow("Redis connection established successfully", "addr", cfg.Redis.GetAddr())

	return redisClient
}

func newMailer(cfg *config.Config, log logger.Interface) usecases.WelcomeMailer {
	if !cfg.Email.Enabled {
		log.Infow("email disabled, welcome messages will not be sent")
		return email.NoopEmailService{}
	}
	return email.NewSMTPEmailService(email.SMTPConfigFrom(cfg.Email, cfg.Server.BaseURL))
}
