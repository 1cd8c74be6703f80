package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/litrevu/litrevu/internal/interfaces/http/handlers"
	"github.com/litrevu/litrevu/internal/interfaces/http/middleware"
)

type FeedRouteConfig struct {
	FeedHandler    *handlers.FeedHandler
	HealthHandler  *handlers.HealthHandler
	AuthMiddleware *middleware.AuthMiddleware
}

func SetupFeedRoutes(engine *gin.Engine, config *FeedRouteConfig) {
	engine.GET("/health", config.HealthHandler.HealthCheck)
	engine.GET("/", config.AuthMiddleware.RequireAuth(), config.FeedHandler.Feed)
}
