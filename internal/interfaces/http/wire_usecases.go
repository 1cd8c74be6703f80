package http

import (
	feedUsecases "github.com/litrevu/litrevu/internal/application/feed/usecases"
	followUsecases "github.com/litrevu/litrevu/internal/application/follow/usecases"
	ticketUsecases "github.com/litrevu/litrevu/internal/application/ticket/usecases"
	"github.com/litrevu/litrevu/internal/application/user/helpers"
	userUsecases "github.com/litrevu/litrevu/internal/application/user/usecases"
)

// allUseCases holds all use case instances used by the application.
type allUseCases struct {
	// User & Auth
	registerUC       *userUsecases.RegisterUseCase
	loginUC          *userUsecases.LoginUseCase
	logoutUC         *userUsecases.LogoutUseCase
	resolveSessionUC *userUsecases.ResolveSessionUseCase

	// Tickets
	createTicketUC *ticketUsecases.CreateTicketUseCase
	updateTicketUC *ticketUsecases.UpdateTicketUseCase
	deleteTicketUC *ticketUsecases.DeleteTicketUseCase
	getTicketUC    *ticketUsecases.GetTicketUseCase

	// Comments
	addCommentUC    *ticketUsecases.AddCommentUseCase
	updateCommentUC *ticketUsecases.UpdateCommentUseCase
	deleteCommentUC *ticketUsecases.DeleteCommentUseCase
	getCommentUC    *ticketUsecases.GetCommentUseCase

	// Reviews
	createReviewUC *ticketUsecases.CreateReviewUseCase
	deleteReviewUC *ticketUsecases.DeleteReviewUseCase

	// Follows
	addFollowUC    *followUsecases.AddFollowUseCase
	removeFollowUC *followUsecases.RemoveFollowUseCase
	listFollowsUC  *followUsecases.ListFollowsUseCase

	// Feed
	buildFeedUC *feedUsecases.BuildFeedUseCase
}

func (c *Container) initUseCases() {
	log := c.log
	r := c.repos
	gate := c.enforcer

	sessionHelper := helpers.NewSessionHelper(r.sessionRepo, c.tokens)

	c.ucs = &allUseCases{
		registerUC:       userUsecases.NewRegisterUseCase(r.userRepo, c.hasher, sessionHelper, c.txMgr, c.mailer, log),
		loginUC:          userUsecases.NewLoginUseCase(r.userRepo, c.hasher, sessionHelper, log),
		logoutUC:         userUsecases.NewLogoutUseCase(r.sessionRepo, log),
		resolveSessionUC: userUsecases.NewResolveSessionUseCase(c.tokens, r.sessionRepo, r.userRepo, log),

		createTicketUC: ticketUsecases.NewCreateTicketUseCase(r.ticketRepo, log),
		updateTicketUC: ticketUsecases.NewUpdateTicketUseCase(r.ticketRepo, gate, c.markdown, log),
		deleteTicketUC: ticketUsecases.NewDeleteTicketUseCase(r.ticketRepo, r.commentRepo, r.reviewRepo, gate, c.txMgr, log),
		getTicketUC:    ticketUsecases.NewGetTicketUseCase(r.ticketRepo, r.commentRepo, r.userRepo, gate, c.markdown, log),

		addCommentUC:    ticketUsecases.NewAddCommentUseCase(r.ticketRepo, r.commentRepo, c.markdown, log),
		updateCommentUC: ticketUsecases.NewUpdateCommentUseCase(r.commentRepo, gate, c.markdown, log),
		deleteCommentUC: ticketUsecases.NewDeleteCommentUseCase(r.commentRepo, gate, log),
		getCommentUC:    ticketUsecases.NewGetCommentUseCase(r.commentRepo, gate, c.markdown),

		createReviewUC: ticketUsecases.NewCreateReviewUseCase(r.ticketRepo, r.reviewRepo, c.markdown, log),
		deleteReviewUC: ticketUsecases.NewDeleteReviewUseCase(r.reviewRepo, gate, log),

		addFollowUC:    followUsecases.NewAddFollowUseCase(r.userRepo, r.followRepo, log),
		removeFollowUC: followUsecases.NewRemoveFollowUseCase(r.followRepo, log),
		listFollowsUC:  followUsecases.NewListFollowsUseCase(r.userRepo, r.followRepo, log),

		buildFeedUC: feedUsecases.NewBuildFeedUseCase(
			feedUsecases.NewVisibilityResolver(r.followRepo, r.ticketRepo, r.reviewRepo),
			r.ticketRepo, r.commentRepo, r.reviewRepo, r.userRepo, c.markdown, log,
		),
	}
}
