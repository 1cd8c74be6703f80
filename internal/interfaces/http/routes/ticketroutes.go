package routes

import (
	"github.com/gin-gonic/gin"

	tickethandlers "github.com/litrevu/litrevu/internal/interfaces/http/handlers/ticket"
	"github.com/litrevu/litrevu/internal/interfaces/http/middleware"
)

type TicketRouteConfig struct {
	TicketHandler  *tickethandlers.TicketHandler
	CommentHandler *tickethandlers.CommentHandler
	ReviewHandler  *tickethandlers.ReviewHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// SetupTicketRoutes registers tickets, their comments and reviews. Ownership
// of edit and delete targets is checked inside the use cases.
func SetupTicketRoutes(engine *gin.Engine, config *TicketRouteConfig) {
	authed := engine.Group("")
	authed.Use(config.AuthMiddleware.RequireAuth())

	tickets := authed.Group("/ticket")
	{
		// /add must be registered alongside /:id paths; gin resolves the
		// static segment first.
		tickets.GET("/add", config.TicketHandler.NewTicketPage)
		tickets.POST("/add", config.TicketHandler.CreateTicket)
		tickets.GET("/:id/edit", config.TicketHandler.EditTicketPage)
		tickets.POST("/:id/edit", config.TicketHandler.UpdateTicket)
		tickets.GET("/:id/delete", config.TicketHandler.DeleteTicketPage)
		tickets.POST("/:id/delete", config.TicketHandler.DeleteTicket)
	}

	authed.GET("/add_comment", config.CommentHandler.AddCommentPage)
	authed.POST("/add_comment", config.CommentHandler.AddComment)
	authed.GET("/edit_comment/:id", config.CommentHandler.EditCommentPage)
	authed.POST("/edit_comment/:id", config.CommentHandler.UpdateComment)
	authed.GET("/delete_comment/:id", config.CommentHandler.DeleteCommentPage)
	authed.POST("/delete_comment/:id", config.CommentHandler.DeleteComment)

	reviews := authed.Group("/review")
	{
		reviews.GET("/add", config.ReviewHandler.NewReviewPage)
		reviews.POST("/add", config.ReviewHandler.CreateReview)
		reviews.POST("/:id/delete", config.ReviewHandler.DeleteReview)
	}
}
