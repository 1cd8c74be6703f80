package usecases

import (
	"context"
	"fmt"

	"github.com/litrevu/litrevu/internal/domain/feed"
	"github.com/litrevu/litrevu/internal/domain/follow"
	"github.com/litrevu/litrevu/internal/domain/review"
	"github.com/litrevu/litrevu/internal/domain/ticket"
)

// VisibilityResolver answers which tickets and reviews a user sees: their own
// and those written by users they follow.
type VisibilityResolver struct {
	followRepo follow.Repository
	ticketRepo ticket.TicketRepository
	reviewRepo review.Repository
}

func NewVisibilityResolver(
	followRepo follow.Repository,
	ticketRepo ticket.TicketRepository,
	reviewRepo review.Repository,
) *VisibilityResolver {
	return &VisibilityResolver{
		followRepo: followRepo,
		ticketRepo: ticketRepo,
		reviewRepo: reviewRepo,
	}
}

// Audience returns userID followed by the ids userID follows.
func (r *VisibilityResolver) Audience(ctx context.Context, userID uint) ([]uint, error) {
	followed, err := r.followRepo.FollowedIDs(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load followed users: %w", err)
	}
	return feed.Audience(userID, followed), nil
}

func (r *VisibilityResolver) VisibleTickets(ctx context.Context, userID uint) ([]*ticket.Ticket, error) {
	audience, err := r.Audience(ctx, userID)
	if err != nil {
		return nil, err
	}
	return r.ticketRepo.ListByAuthors(ctx, audience)
}

func (r *VisibilityResolver) VisibleReviews(ctx context.Context, userID uint) ([]*review.Review, error) {
	audience, err := r.Audience(ctx, userID)
	if err != nil {
		return nil, err
	}
	return r.reviewRepo.ListByAuthors(ctx, audience)
}
