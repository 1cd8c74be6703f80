package usecases

import (
	"context"

	"github.com/litrevu/litrevu/internal/application/ticket/dto"
	"github.com/litrevu/litrevu/internal/domain/review"
	"github.com/litrevu/litrevu/internal/domain/ticket"
	"github.com/litrevu/litrevu/internal/shared/errors"
	"github.com/litrevu/litrevu/internal/shared/logger"
)

type CreateReviewCommand struct {
	TicketID uint
	UserID   uint
	Rating   int
	Headline string
	Body     string
}

type CreateReviewUseCase struct {
	ticketRepo ticket.TicketRepository
	reviewRepo review.Repository
	markdown   dto.MarkdownRenderer
	logger     logger.Interface
}

func NewCreateReviewUseCase(
	ticketRepo ticket.TicketRepository,
	reviewRepo review.Repository,
	markdown dto.MarkdownRenderer,
	logger logger.Interface,
) *CreateReviewUseCase {
	return &CreateReviewUseCase{
		ticketRepo: ticketRepo,
		reviewRepo: reviewRepo,
		markdown:   markdown,
		logger:     logger,
	}
}

func (uc *CreateReviewUseCase) Execute(ctx context.Context, cmd CreateReviewCommand) (*dto.ReviewDTO, error) {
	uc.logger.Infow("executing create review use case", "ticket_id", cmd.TicketID, "user_id", cmd.UserID, "rating", cmd.Rating)

	if cmd.UserID == 0 {
		return nil, errors.NewUnauthorizedError("authentication required")
	}

	parent, err := uc.ticketRepo.GetByID(ctx, cmd.TicketID)
	if err != nil {
		uc.logger.Warnw("review target ticket unavailable", "error", err, "ticket_id", cmd.TicketID)
		return nil, err
	}

	r, err := review.NewReview(cmd.TicketID, cmd.UserID, cmd.Rating, cmd.Headline, cmd.Body)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.reviewRepo.Create(ctx, r); err != nil {
		uc.logger.Errorw("failed to save review", "error", err, "ticket_id", cmd.TicketID)
		return nil, err
	}

	uc.logger.Infow("review created successfully", "review_id", r.ID(), "ticket_id", cmd.TicketID)

	return dto.ToReviewDTO(r, parent, nil, uc.markdown, cmd.UserID), nil
}
