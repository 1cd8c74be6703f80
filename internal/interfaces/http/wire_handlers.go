package http

import (
	"github.com/litrevu/litrevu/internal/interfaces/http/handlers"
	followHandlers "github.com/litrevu/litrevu/internal/interfaces/http/handlers/follow"
	ticketHandlers "github.com/litrevu/litrevu/internal/interfaces/http/handlers/ticket"
	"github.com/litrevu/litrevu/internal/interfaces/http/middleware"
)

// allHandlers holds all HTTP handler instances used by the application.
type allHandlers struct {
	authHandler   *handlers.AuthHandler
	feedHandler   *handlers.FeedHandler
	healthHandler *handlers.HealthHandler

	ticketHandler  *ticketHandlers.TicketHandler
	commentHandler *ticketHandlers.CommentHandler
	reviewHandler  *ticketHandlers.ReviewHandler

	followHandler *followHandlers.FollowHandler
}

func (c *Container) initHandlers() error {
	log := c.log
	ucs := c.ucs
	cookies := c.cfg.Auth.Cookie

	sqlDB, err := c.db.DB()
	if err != nil {
		return err
	}

	c.authMiddleware = middleware.NewAuthMiddleware(ucs.resolveSessionUC, cookies, log)

	c.hdlrs = &allHandlers{
		authHandler:   handlers.NewAuthHandler(ucs.registerUC, ucs.loginUC, ucs.logoutUC, cookies, log),
		feedHandler:   handlers.NewFeedHandler(ucs.buildFeedUC),
		healthHandler: handlers.NewHealthHandler(sqlDB, log),

		ticketHandler: ticketHandlers.NewTicketHandler(
			ucs.createTicketUC, ucs.updateTicketUC, ucs.deleteTicketUC, ucs.getTicketUC, cookies, log,
		),
		commentHandler: ticketHandlers.NewCommentHandler(
			ucs.addCommentUC, ucs.updateCommentUC, ucs.deleteCommentUC, ucs.getCommentUC, ucs.getTicketUC, cookies, log,
		),
		reviewHandler: ticketHandlers.NewReviewHandler(ucs.createReviewUC, ucs.deleteReviewUC, ucs.getTicketUC, cookies, log),

		followHandler: followHandlers.NewFollowHandler(ucs.addFollowUC, ucs.removeFollowUC, ucs.listFollowsUC, cookies, log),
	}
	return nil
}
