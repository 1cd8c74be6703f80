package usecases

import (
	"context"

	"github.com/litrevu/litrevu/internal/application/ticket/dto"
	"github.com/litrevu/litrevu/internal/domain/ticket"
	"github.com/litrevu/litrevu/internal/shared/errors"
	"github.com/litrevu/litrevu/internal/shared/logger"
)

type AddCommentCommand struct {
	TicketID uint
	UserID   uint
	Body     string
}

type AddCommentUseCase struct {
	ticketRepo  ticket.TicketRepository
	commentRepo ticket.CommentRepository
	markdown    dto.MarkdownRenderer
	logger      logger.Interface
}

func NewAddCommentUseCase(
	ticketRepo ticket.TicketRepository,
	commentRepo ticket.CommentRepository,
	markdown dto.MarkdownRenderer,
	logger logger.Interface,
) *AddCommentUseCase {
	return &AddCommentUseCase{
		ticketRepo:  ticketRepo,
		commentRepo: commentRepo,
		markdown:    markdown,
		logger:      logger,
	}
}

func (uc *AddCommentUseCase) Execute(ctx context.Context, cmd AddCommentCommand) (*dto.CommentDTO, error) {
	uc.logger.Infow("executing add comment use case", "ticket_id", cmd.TicketID, "user_id", cmd.UserID)

	if cmd.UserID == 0 {
		return nil, errors.NewUnauthorizedError("authentication required")
	}

	if _, err := uc.ticketRepo.GetByID(ctx, cmd.TicketID); err != nil {
		uc.logger.Warnw("comment target ticket unavailable", "error", err, "ticket_id", cmd.TicketID)
		return nil, err
	}

	comment, err := ticket.NewComment(cmd.TicketID, cmd.UserID, cmd.Body)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.commentRepo.Create(ctx, comment); err != nil {
		uc.logger.Errorw("failed to save comment", "error", err, "ticket_id", cmd.TicketID)
		return nil, err
	}

	uc.logger.Infow("comment added successfully", "comment_id", comment.ID(), "ticket_id", cmd.TicketID)

	return dto.ToCommentDTO(comment, nil, uc.markdown, cmd.UserID), nil
}
