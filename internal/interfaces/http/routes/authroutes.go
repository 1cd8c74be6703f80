package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/litrevu/litrevu/internal/interfaces/http/handlers"
	"github.com/litrevu/litrevu/internal/interfaces/http/middleware"
)

// AuthRouteConfig holds dependencies for authentication routes.
type AuthRouteConfig struct {
	AuthHandler *handlers.AuthHandler
	RateLimiter *middleware.RateLimiter
}

// SetupAuthRoutes configures the sign-in, sign-up and sign-out pages.
// Logout stays reachable when the session is already gone.
func SetupAuthRoutes(engine *gin.Engine, cfg *AuthRouteConfig) {
	engine.GET("/login", cfg.AuthHandler.LoginPage)
	engine.POST("/login", cfg.RateLimiter.Limit(), cfg.AuthHandler.Login)
	engine.GET("/register", cfg.AuthHandler.RegisterPage)
	engine.POST("/register", cfg.RateLimiter.Limit(), cfg.AuthHandler.Register)
	engine.GET("/logout", cfg.AuthHandler.Logout)
	engine.POST("/logout", cfg.AuthHandler.Logout)
}
