package usecases

import (
	"context"

	"github.com/litrevu/litrevu/internal/application/ticket/dto"
	"github.com/litrevu/litrevu/internal/domain/permission"
	"github.com/litrevu/litrevu/internal/domain/ticket"
	"github.com/litrevu/litrevu/internal/shared/logger"
)

type GetTicketQuery struct {
	ActorID  uint
	TicketID uint
	// ForAction gates the read when the ticket is loaded for an edit or
	// delete form. Empty means any signed-in user may read it.
	ForAction permission.Action
}

type GetTicketUseCase struct {
	ticketRepo  ticket.TicketRepository
	commentRepo ticket.CommentRepository
	users       UsernameLookup
	gate        permission.OwnershipGate
	markdown    dto.MarkdownRenderer
	logger      logger.Interface
}

func NewGetTicketUseCase(
	ticketRepo ticket.TicketRepository,
	commentRepo ticket.CommentRepository,
	users UsernameLookup,
	gate permission.OwnershipGate,
	markdown dto.MarkdownRenderer,
	logger logger.Interface,
) *GetTicketUseCase {
	return &GetTicketUseCase{
		ticketRepo:  ticketRepo,
		commentRepo: commentRepo,
		users:       users,
		gate:        gate,
		markdown:    markdown,
		logger:      logger,
	}
}

func (uc *GetTicketUseCase) Execute(ctx context.Context, query GetTicketQuery) (*dto.TicketDTO, error) {
	t, err := uc.ticketRepo.GetByID(ctx, query.TicketID)
	if err != nil {
		return nil, err
	}

	if query.ForAction != "" {
		if err := uc.gate.AssertOwner(ctx, query.ActorID, t, query.ForAction); err != nil {
			return nil, err
		}
	}

	byTicket, err := uc.commentRepo.ListByTicketIDs(ctx, []uint{t.ID()})
	if err != nil {
		uc.logger.Errorw("failed to list comments", "error", err, "ticket_id", t.ID())
		return nil, err
	}
	comments := byTicket[t.ID()]

	ids := []uint{t.UserID()}
	for _, c := range comments {
		ids = append(ids, c.UserID())
	}
	usernames, err := uc.users.GetUsernames(ctx, ids)
	if err != nil {
		uc.logger.Errorw("failed to resolve usernames", "error", err)
		return nil, err
	}

	return dto.ToTicketDTO(t, comments, usernames, uc.markdown, query.ActorID), nil
}
