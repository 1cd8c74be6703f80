package usecases

import (
	"context"

	"github.com/litrevu/litrevu/internal/domain/follow"
	"github.com/litrevu/litrevu/internal/shared/errors"
	"github.com/litrevu/litrevu/internal/shared/logger"
)

type RemoveFollowCommand struct {
	FollowerID uint
	EdgeID     uint
}

type RemoveFollowUseCase struct {
	followRepo follow.Repository
	logger     logger.Interface
}

func NewRemoveFollowUseCase(followRepo follow.Repository, logger logger.Interface) *RemoveFollowUseCase {
	return &RemoveFollowUseCase{
		followRepo: followRepo,
		logger:     logger,
	}
}

// Execute deletes the edge only when FollowerID owns it. Someone else's edge
// and a missing id both report NotFound.
func (uc *RemoveFollowUseCase) Execute(ctx context.Context, cmd RemoveFollowCommand) error {
	uc.logger.Infow("executing remove follow use case", "edge_id", cmd.EdgeID, "follower_id", cmd.FollowerID)

	removed, err := uc.followRepo.DeleteOwned(ctx, cmd.EdgeID, cmd.FollowerID)
	if err != nil {
		uc.logger.Errorw("failed to delete follow edge", "error", err, "edge_id", cmd.EdgeID)
		return err
	}
	if !removed {
		return errors.NewNotFoundError("follow not found")
	}

	uc.logger.Infow("follow removed successfully", "edge_id", cmd.EdgeID)
	return nil
}
