package routes

import (
	"github.com/gin-gonic/gin"

	followhandlers "github.com/litrevu/litrevu/internal/interfaces/http/handlers/follow"
	"github.com/litrevu/litrevu/internal/interfaces/http/middleware"
)

type FollowRouteConfig struct {
	FollowHandler  *followhandlers.FollowHandler
	AuthMiddleware *middleware.AuthMiddleware
}

func SetupFollowRoutes(engine *gin.Engine, config *FollowRouteConfig) {
	follows := engine.Group("/follows")
	follows.Use(config.AuthMiddleware.RequireAuth())
	{
		follows.GET("", config.FollowHandler.ListFollows)
		follows.POST("/add", config.FollowHandler.AddFollow)
		follows.POST("/remove/:id", config.FollowHandler.RemoveFollow)
	}
}
