package usecases

import (
	"context"

	"github.com/litrevu/litrevu/internal/domain/permission"
	"github.com/litrevu/litrevu/internal/domain/ticket"
	"github.com/litrevu/litrevu/internal/shared/logger"
)

type DeleteCommentCommand struct {
	ActorID   uint
	CommentID uint
}

type DeleteCommentUseCase struct {
	commentRepo ticket.CommentRepository
	gate        permission.OwnershipGate
	logger      logger.Interface
}

func NewDeleteCommentUseCase(
	commentRepo ticket.CommentRepository,
	gate permission.OwnershipGate,
	logger logger.Interface,
) *DeleteCommentUseCase {
	return &DeleteCommentUseCase{
		commentRepo: commentRepo,
		gate:        gate,
		logger:      logger,
	}
}

func (uc *DeleteCommentUseCase) Execute(ctx context.Context, cmd DeleteCommentCommand) error {
	uc.logger.Infow("executing delete comment use case", "comment_id", cmd.CommentID, "actor_id", cmd.ActorID)

	comment, err := uc.commentRepo.GetByID(ctx, cmd.CommentID)
	if err != nil {
		return err
	}

	if err := uc.gate.AssertOwner(ctx, cmd.ActorID, comment, permission.ActionDelete); err != nil {
		return err
	}

	if err := uc.commentRepo.Delete(ctx, comment.ID()); err != nil {
		uc.logger.Errorw("failed to delete comment", "error", err, "comment_id", cmd.CommentID)
		return err
	}

	uc.logger.Infow("comment deleted successfully", "comment_id", cmd.CommentID)
	return nil
}
