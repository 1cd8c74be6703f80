package usecases

import (
	"context"

	"github.com/litrevu/litrevu/internal/application/ticket/dto"
	"github.com/litrevu/litrevu/internal/domain/permission"
	"github.com/litrevu/litrevu/internal/domain/ticket"
	"github.com/litrevu/litrevu/internal/shared/errors"
	"github.com/litrevu/litrevu/internal/shared/logger"
)

type UpdateTicketCommand struct {
	ActorID     uint
	TicketID    uint
	Title       string
	Description string
}

type UpdateTicketUseCase struct {
	ticketRepo ticket.TicketRepository
	gate       permission.OwnershipGate
	markdown   dto.MarkdownRenderer
	logger     logger.Interface
}

func NewUpdateTicketUseCase(
	ticketRepo ticket.TicketRepository,
	gate permission.OwnershipGate,
	markdown dto.MarkdownRenderer,
	logger logger.Interface,
) *UpdateTicketUseCase {
	return &UpdateTicketUseCase{
		ticketRepo: ticketRepo,
		gate:       gate,
		markdown:   markdown,
		logger:     logger,
	}
}

func (uc *UpdateTicketUseCase) Execute(ctx context.Context, cmd UpdateTicketCommand) (*dto.TicketDTO, error) {
	uc.logger.Infow("executing update ticket use case", "ticket_id", cmd.TicketID, "actor_id", cmd.ActorID)

	t, err := uc.ticketRepo.GetByID(ctx, cmd.TicketID)
	if err != nil {
		uc.logger.Errorw("failed to get ticket", "error", err, "ticket_id", cmd.TicketID)
		return nil, err
	}

	if err := uc.gate.AssertOwner(ctx, cmd.ActorID, t, permission.ActionEdit); err != nil {
		return nil, err
	}

	if err := t.Edit(cmd.Title, cmd.Description); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.ticketRepo.Update(ctx, t); err != nil {
		uc.logger.Errorw("failed to update ticket", "error", err, "ticket_id", cmd.TicketID)
		return nil, err
	}

	uc.logger.Infow("ticket updated successfully", "ticket_id", t.ID())

	return dto.ToTicketDTO(t, nil, nil, uc.markdown, cmd.ActorID), nil
}
