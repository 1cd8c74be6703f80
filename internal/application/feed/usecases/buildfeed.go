package usecases

import (
	"context"
	"fmt"

	feeddto "github.com/litrevu/litrevu/internal/application/feed/dto"
	ticketdto "github.com/litrevu/litrevu/internal/application/ticket/dto"
	"github.com/litrevu/litrevu/internal/domain/feed"
	"github.com/litrevu/litrevu/internal/domain/review"
	"github.com/litrevu/litrevu/internal/domain/ticket"
	"github.com/litrevu/litrevu/internal/domain/user"
	"github.com/litrevu/litrevu/internal/shared/errors"
	"github.com/litrevu/litrevu/internal/shared/logger"
)

type BuildFeedExecutor interface {
	Execute(ctx context.Context, auth user.AuthContext) ([]feeddto.FeedItemDTO, error)
}

// UsernameLookup resolves author names for presentation.
type UsernameLookup interface {
	GetUsernames(ctx context.Context, ids []uint) (map[uint]string, error)
}

// BuildFeedUseCase assembles the home feed from three sources: visible
// tickets, visible reviews, and reviews by anyone on the viewer's tickets.
type BuildFeedUseCase struct {
	resolver    *VisibilityResolver
	ticketRepo  ticket.TicketRepository
	commentRepo ticket.CommentRepository
	reviewRepo  review.Repository
	users       UsernameLookup
	markdown    ticketdto.MarkdownRenderer
	logger      logger.Interface
}

func NewBuildFeedUseCase(
	resolver *VisibilityResolver,
	ticketRepo ticket.TicketRepository,
	commentRepo ticket.CommentRepository,
	reviewRepo review.Repository,
	users UsernameLookup,
	markdown ticketdto.MarkdownRenderer,
	logger logger.Interface,
) *BuildFeedUseCase {
	return &BuildFeedUseCase{
		resolver:    resolver,
		ticketRepo:  ticketRepo,
		commentRepo: commentRepo,
		reviewRepo:  reviewRepo,
		users:       users,
		markdown:    markdown,
		logger:      logger,
	}
}

func (uc *BuildFeedUseCase) Execute(ctx context.Context, auth user.AuthContext) ([]feeddto.FeedItemDTO, error) {
	if !auth.IsAuthenticated() {
		return nil, errors.NewUnauthorizedError("authentication required")
	}
	uc.logger.Debugw("executing build feed use case", "user_id", auth.UserID)

	items, err := uc.collect(ctx, auth.UserID)
	if err != nil {
		uc.logger.Errorw("failed to build feed", "error", err, "user_id", auth.UserID)
		return nil, err
	}

	return uc.present(ctx, items, auth.UserID)
}

func (uc *BuildFeedUseCase) collect(ctx context.Context, userID uint) ([]feed.Item, error) {
	tickets, err := uc.resolver.VisibleTickets(ctx, userID)
	if err != nil {
		return nil, err
	}
	reviews, err := uc.resolver.VisibleReviews(ctx, userID)
	if err != nil {
		return nil, err
	}
	onOwnTickets, err := uc.reviewRepo.ListOnTicketsOwnedBy(ctx, userID)
	if err != nil {
		return nil, err
	}

	return feed.Merge(
		feed.TicketItems(tickets),
		feed.ReviewItems(reviews),
		feed.ReviewItems(onOwnTickets),
	), nil
}

// present loads what the page shows around each item: author names, comments
// on tickets, and the parent ticket of each review even when that ticket is
// not itself in the feed.
func (uc *BuildFeedUseCase) present(ctx context.Context, items []feed.Item, viewerID uint) ([]feeddto.FeedItemDTO, error) {
	tickets := make(map[uint]*ticket.Ticket)
	var ticketIDs, missingParents []uint
	for _, it := range items {
		if it.Kind == feed.KindTicket {
			tickets[it.ID] = it.Ticket
			ticketIDs = append(ticketIDs, it.ID)
		}
	}
	for _, it := range items {
		if it.Kind == feed.KindReview {
			if _, ok := tickets[it.Review.TicketID()]; !ok {
				missingParents = append(missingParents, it.Review.TicketID())
			}
		}
	}

	if len(missingParents) > 0 {
		parents, err := uc.ticketRepo.GetByIDs(ctx, missingParents)
		if err != nil {
			return nil, fmt.Errorf("failed to load parent tickets: %w", err)
		}
		for id, t := range parents {
			tickets[id] = t
		}
	}

	comments, err := uc.commentRepo.ListByTicketIDs(ctx, ticketIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to load comments: %w", err)
	}

	authorIDs := make([]uint, 0, len(items)+len(tickets))
	for _, t := range tickets {
		authorIDs = append(authorIDs, t.UserID())
	}
	for _, it := range items {
		if it.Kind == feed.KindReview {
			authorIDs = append(authorIDs, it.Review.UserID())
		}
	}
	for _, list := range comments {
		for _, c := range list {
			authorIDs = append(authorIDs, c.UserID())
		}
	}
	usernames, err := uc.users.GetUsernames(ctx, authorIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to load usernames: %w", err)
	}

	out := make([]feeddto.FeedItemDTO, 0, len(items))
	for _, it := range items {
		post := feeddto.FeedItemDTO{Kind: it.Kind, ID: it.ID, CreatedAt: it.CreatedAt}
		switch it.Kind {
		case feed.KindTicket:
			post.Ticket = ticketdto.ToTicketDTO(it.Ticket, comments[it.ID], usernames, uc.markdown, viewerID)
		case feed.KindReview:
			post.Review = ticketdto.ToReviewDTO(it.Review, tickets[it.Review.TicketID()], usernames, uc.markdown, viewerID)
		}
		out = append(out, post)
	}
	return out, nil
}
