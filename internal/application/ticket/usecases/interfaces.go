package usecases

import (
	"context"

	"github.com/litrevu/litrevu/internal/application/ticket/dto"
)

type CreateTicketExecutor interface {
	Execute(ctx context.Context, cmd CreateTicketCommand) (*CreateTicketResult, error)
}

type UpdateTicketExecutor interface {
	Execute(ctx context.Context, cmd UpdateTicketCommand) (*dto.TicketDTO, error)
}

type DeleteTicketExecutor interface {
	Execute(ctx context.Context, cmd DeleteTicketCommand) error
}

type GetTicketExecutor interface {
	Execute(ctx context.Context, query GetTicketQuery) (*dto.TicketDTO, error)
}

type AddCommentExecutor interface {
	Execute(ctx context.Context, cmd AddCommentCommand) (*dto.CommentDTO, error)
}

type UpdateCommentExecutor interface {
	Execute(ctx context.Context, cmd UpdateCommentCommand) (*dto.CommentDTO, error)
}

type DeleteCommentExecutor interface {
	Execute(ctx context.Context, cmd DeleteCommentCommand) error
}

type GetCommentExecutor interface {
	Execute(ctx context.Context, query GetCommentQuery) (*dto.CommentDTO, error)
}

type CreateReviewExecutor interface {
	Execute(ctx context.Context, cmd CreateReviewCommand) (*dto.ReviewDTO, error)
}

type DeleteReviewExecutor interface {
	Execute(ctx context.Context, cmd DeleteReviewCommand) error
}

// UsernameLookup resolves author names for presentation.
type UsernameLookup interface {
	GetUsernames(ctx context.Context, ids []uint) (map[uint]string, error)
}
