package usecases

import (
	"context"

	"github.com/litrevu/litrevu/internal/application/follow/dto"
)

type AddFollowExecutor interface {
	Execute(ctx context.Context, cmd AddFollowCommand) (*dto.AddFollowResultDTO, error)
}

type RemoveFollowExecutor interface {
	Execute(ctx context.Context, cmd RemoveFollowCommand) error
}

type ListFollowsExecutor interface {
	Execute(ctx context.Context, query ListFollowsQuery) (*dto.FollowsDTO, error)
}
