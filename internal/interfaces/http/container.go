package http

import (
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/litrevu/litrevu/internal/application/user/usecases"
	"github.com/litrevu/litrevu/internal/infrastructure/auth"
	"github.com/litrevu/litrevu/internal/infrastructure/config"
	"github.com/litrevu/litrevu/internal/infrastructure/permission"
	"github.com/litrevu/litrevu/internal/interfaces/http/middleware"
	"github.com/litrevu/litrevu/internal/interfaces/http/views"
	"github.com/litrevu/litrevu/internal/shared/db"
	"github.com/litrevu/litrevu/internal/shared/logger"
	"github.com/litrevu/litrevu/internal/shared/services/markdown"
)

// Container holds all infrastructure components, repositories, use cases and
// handlers. It wires everything together and releases what it opened in
// Shutdown.
type Container struct {
	// Core infrastructure
	engine *gin.Engine
	db     *gorm.DB
	cfg    *config.Config
	log    logger.Interface
	redis  *redis.Client

	repos *repositories
	ucs   *allUseCases
	hdlrs *allHandlers

	// Middlewares
	authMiddleware *middleware.AuthMiddleware
	rateLimiter    *middleware.RateLimiter

	// Services shared between use cases
	txMgr    *db.TransactionManager
	hasher   *auth.BcryptPasswordHasher
	tokens   *sessionTokenAdapter
	enforcer *permission.Enforcer
	markdown markdown.Service
	mailer   usecases.WelcomeMailer
}

// NewContainer creates a new Container with all dependencies wired together.
func NewContainer(gormDB *gorm.DB, cfg *config.Config, log logger.Interface) (*Container, error) {
	renderer, err := views.New()
	if err != nil {
		return nil, err
	}

	engine := gin.New()
	engine.HTMLRender = renderer

	c := &Container{
		engine: engine,
		db:     gormDB,
		cfg:    cfg,
		log:    log,
	}

	if err := c.initInfrastructure(); err != nil {
		c.Shutdown()
		return nil, err
	}
	c.initUseCases()
	if err := c.initHandlers(); err != nil {
		c.Shutdown()
		return nil, err
	}

	return c, nil
}

// Shutdown releases connections opened by the container. The database is
// owned by the caller.
func (c *Container) Shutdown() {
	if c.redis != nil {
		if err := c.redis.Close(); err != nil {
			c.log.Warnw("failed to close redis client", "error", err)
		}
	}
}
