package http

import (
	"github.com/litrevu/litrevu/internal/interfaces/http/middleware"
	"github.com/litrevu/litrevu/internal/interfaces/http/routes"
)

// SetupRoutes configures the middleware chain and all HTTP routes
func (r *Router) SetupRoutes() {
	cookies := r.cfg.Auth.Cookie

	r.engine.Use(middleware.RequestID())
	r.engine.Use(middleware.Logger(r.log))
	r.engine.Use(middleware.Recovery(r.log))
	r.engine.Use(r.authMiddleware.Authenticate())
	r.engine.Use(middleware.Flash(cookies))
	r.engine.Use(middleware.CSRF(cookies, r.log))

	routes.SetupFeedRoutes(r.engine, &routes.FeedRouteConfig{
		FeedHandler:    r.hdlrs.feedHandler,
		HealthHandler:  r.hdlrs.healthHandler,
		AuthMiddleware: r.authMiddleware,
	})
	routes.SetupAuthRoutes(r.engine, &routes.AuthRouteConfig{
		AuthHandler: r.hdlrs.authHandler,
		RateLimiter: r.rateLimiter,
	})
	routes.SetupTicketRoutes(r.engine, &routes.TicketRouteConfig{
		TicketHandler:  r.hdlrs.ticketHandler,
		CommentHandler: r.hdlrs.commentHandler,
		ReviewHandler:  r.hdlrs.reviewHandler,
		AuthMiddleware: r.authMiddleware,
	})
	routes.SetupFollowRoutes(r.engine, &routes.FollowRouteConfig{
		FollowHandler:  r.hdlrs.followHandler,
		AuthMiddleware: r.authMiddleware,
	})
}
