package usecases

import (
	"context"
	"time"

	"github.com/litrevu/litrevu/internal/domain/ticket"
	"github.com/litrevu/litrevu/internal/shared/errors"
	"github.com/litrevu/litrevu/internal/shared/logger"
)

type CreateTicketCommand struct {
	UserID      uint
	Title       string
	Description string
}

type CreateTicketResult struct {
	TicketID  uint
	CreatedAt time.Time
}

type CreateTicketUseCase struct {
	ticketRepo ticket.TicketRepository
	logger     logger.Interface
}

func NewCreateTicketUseCase(
	ticketRepo ticket.TicketRepository,
	logger logger.Interface,
) *CreateTicketUseCase {
	return &CreateTicketUseCase{
		ticketRepo: ticketRepo,
		logger:     logger,
	}
}

func (uc *CreateTicketUseCase) Execute(ctx context.Context, cmd CreateTicketCommand) (*CreateTicketResult, error) {
	uc.logger.Infow("executing create ticket use case", "title", cmd.Title, "user_id", cmd.UserID)

	if cmd.UserID == 0 {
		return nil, errors.NewUnauthorizedError("authentication required")
	}

	newTicket, err := ticket.NewTicket(cmd.UserID, cmd.Title, cmd.Description)
	if err != nil {
		uc.logger.Warnw("invalid create ticket command", "error", err)
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.ticketRepo.Create(ctx, newTicket); err != nil {
		uc.logger.Errorw("failed to save ticket", "error", err)
		return nil, err
	}

	uc.logger.Infow("ticket created successfully", "ticket_id", newTicket.ID())

	return &CreateTicketResult{
		TicketID:  newTicket.ID(),
		CreatedAt: newTicket.CreatedAt(),
	}, nil
}
