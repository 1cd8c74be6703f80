package usecases

import (
	"context"
	"fmt"

	"github.com/litrevu/litrevu/internal/domain/permission"
	"github.com/litrevu/litrevu/internal/domain/review"
	"github.com/litrevu/litrevu/internal/domain/ticket"
	"github.com/litrevu/litrevu/internal/shared/db"
	"github.com/litrevu/litrevu/internal/shared/logger"
)

type DeleteTicketCommand struct {
	ActorID  uint
	TicketID uint
}

// DeleteTicketUseCase removes a ticket together with its comments and reviews
// in one transaction.
type DeleteTicketUseCase struct {
	ticketRepo  ticket.TicketRepository
	commentRepo ticket.CommentRepository
	reviewRepo  review.Repository
	gate        permission.OwnershipGate
	txMgr       db.Transactor
	logger      logger.Interface
}

func NewDeleteTicketUseCase(
	ticketRepo ticket.TicketRepository,
	commentRepo ticket.CommentRepository,
	reviewRepo review.Repository,
	gate permission.OwnershipGate,
	txMgr db.Transactor,
	logger logger.Interface,
) *DeleteTicketUseCase {
	return &DeleteTicketUseCase{
		ticketRepo:  ticketRepo,
		commentRepo: commentRepo,
		reviewRepo:  reviewRepo,
		gate:        gate,
		txMgr:       txMgr,
		logger:      logger,
	}
}

func (uc *DeleteTicketUseCase) Execute(ctx context.Context, cmd DeleteTicketCommand) error {
	uc.logger.Infow("executing delete ticket use case", "ticket_id", cmd.TicketID, "actor_id", cmd.ActorID)

	t, err := uc.ticketRepo.GetByID(ctx, cmd.TicketID)
	if err != nil {
		uc.logger.Errorw("failed to get ticket", "error", err, "ticket_id", cmd.TicketID)
		return err
	}

	if err := uc.gate.AssertOwner(ctx, cmd.ActorID, t, permission.ActionDelete); err != nil {
		return err
	}

	err = uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.commentRepo.DeleteByTicketID(txCtx, t.ID()); err != nil {
			return fmt.Errorf("failed to delete comments: %w", err)
		}
		if err := uc.reviewRepo.DeleteByTicketID(txCtx, t.ID()); err != nil {
			return fmt.Errorf("failed to delete reviews: %w", err)
		}
		return uc.ticketRepo.Delete(txCtx, t.ID())
	})
	if err != nil {
		uc.logger.Errorw("failed to delete ticket", "error", err, "ticket_id", cmd.TicketID)
		return err
	}

	uc.logger.Infow("ticket deleted successfully", "ticket_id", cmd.TicketID)
	return nil
}
