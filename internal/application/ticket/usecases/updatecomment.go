package usecases

import (
	"context"

	"github.com/litrevu/litrevu/internal/application/ticket/dto"
	"github.com/litrevu/litrevu/internal/domain/permission"
	"github.com/litrevu/litrevu/internal/domain/ticket"
	"github.com/litrevu/litrevu/internal/shared/errors"
	"github.com/litrevu/litrevu/internal/shared/logger"
)

type UpdateCommentCommand struct {
	ActorID   uint
	CommentID uint
	Body      string
}

type UpdateCommentUseCase struct {
	commentRepo ticket.CommentRepository
	gate        permission.OwnershipGate
	markdown    dto.MarkdownRenderer
	logger      logger.Interface
}

func NewUpdateCommentUseCase(
	commentRepo ticket.CommentRepository,
	gate permission.OwnershipGate,
	markdown dto.MarkdownRenderer,
	logger logger.Interface,
) *UpdateCommentUseCase {
	return &UpdateCommentUseCase{
		commentRepo: commentRepo,
		gate:        gate,
		markdown:    markdown,
		logger:      logger,
	}
}

func (uc *UpdateCommentUseCase) Execute(ctx context.Context, cmd UpdateCommentCommand) (*dto.CommentDTO, error) {
	uc.logger.Infow("executing update comment use case", "comment_id", cmd.CommentID, "actor_id", cmd.ActorID)

	comment, err := uc.commentRepo.GetByID(ctx, cmd.CommentID)
	if err != nil {
		return nil, err
	}

	if err := uc.gate.AssertOwner(ctx, cmd.ActorID, comment, permission.ActionEdit); err != nil {
		return nil, err
	}

	if err := comment.Edit(cmd.Body); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.commentRepo.Update(ctx, comment); err != nil {
		uc.logger.Errorw("failed to update comment", "error", err, "comment_id", cmd.CommentID)
		return nil, err
	}

	return dto.ToCommentDTO(comment, nil, uc.markdown, cmd.ActorID), nil
}
