package usecases

import (
	"context"

	"github.com/litrevu/litrevu/internal/application/ticket/dto"
	"github.com/litrevu/litrevu/internal/domain/permission"
	"github.com/litrevu/litrevu/internal/domain/ticket"
)

type GetCommentQuery struct {
	ActorID   uint
	CommentID uint
	ForAction permission.Action
}

// GetCommentUseCase loads a comment for its edit or delete form.
type GetCommentUseCase struct {
	commentRepo ticket.CommentRepository
	gate        permission.OwnershipGate
	markdown    dto.MarkdownRenderer
}

func NewGetCommentUseCase(
	commentRepo ticket.CommentRepository,
	gate permission.OwnershipGate,
	markdown dto.MarkdownRenderer,
) *GetCommentUseCase {
	return &GetCommentUseCase{
		commentRepo: commentRepo,
		gate:        gate,
		markdown:    markdown,
	}
}

func (uc *GetCommentUseCase) Execute(ctx context.Context, query GetCommentQuery) (*dto.CommentDTO, error) {
	comment, err := uc.commentRepo.GetByID(ctx, query.CommentID)
	if err != nil {
		return nil, err
	}

	if query.ForAction != "" {
		if err := uc.gate.AssertOwner(ctx, query.ActorID, comment, query.ForAction); err != nil {
			return nil, err
		}
	}

	return dto.ToCommentDTO(comment, nil, uc.markdown, query.ActorID), nil
}
