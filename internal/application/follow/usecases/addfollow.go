package usecases

import (
	"context"

	"github.com/litrevu/litrevu/internal/application/follow/dto"
	"github.com/litrevu/litrevu/internal/domain/follow"
	"github.com/litrevu/litrevu/internal/domain/user"
	"github.com/litrevu/litrevu/internal/shared/errors"
	"github.com/litrevu/litrevu/internal/shared/logger"
)

type AddFollowCommand struct {
	FollowerID uint
	Username   string
}

// AddFollowUseCase never fails for user mistakes; those come back as an
// Outcome. Only datastore failures are returned as errors.
type AddFollowUseCase struct {
	userRepo   user.Repository
	followRepo follow.Repository
	logger     logger.Interface
}

func NewAddFollowUseCase(
	userRepo user.Repository,
	followRepo follow.Repository,
	logger logger.Interface,
) *AddFollowUseCase {
	return &AddFollowUseCase{
		userRepo:   userRepo,
		followRepo: followRepo,
		logger:     logger,
	}
}

func (uc *AddFollowUseCase) Execute(ctx context.Context, cmd AddFollowCommand) (*dto.AddFollowResultDTO, error) {
	uc.logger.Infow("executing add follow use case", "follower_id", cmd.FollowerID, "username", cmd.Username)

	if cmd.FollowerID == 0 {
		return nil, errors.NewUnauthorizedError("authentication required")
	}

	name, err := user.NormalizeUsername(cmd.Username)
	if err != nil {
		return uc.result(follow.OutcomeUserNotFound, cmd.Username, 0), nil
	}

	target, err := uc.userRepo.GetByUsername(ctx, name)
	if err != nil {
		if errors.IsNotFoundError(err) {
			return uc.result(follow.OutcomeUserNotFound, name, 0), nil
		}
		uc.logger.Errorw("failed to look up follow target", "error", err, "username", name)
		return nil, err
	}

	if target.ID() == cmd.FollowerID {
		return uc.result(follow.OutcomeSelfFollow, name, 0), nil
	}

	exists, err := uc.followRepo.Exists(ctx, cmd.FollowerID, target.ID())
	if err != nil {
		uc.logger.Errorw("failed to check follow edge", "error", err)
		return nil, err
	}
	if exists {
		return uc.result(follow.OutcomeAlreadyFollowing, name, 0), nil
	}

	edge, err := follow.NewEdge(cmd.FollowerID, target.ID())
	if err != nil {
		return uc.result(follow.OutcomeSelfFollow, name, 0), nil
	}
	if err := uc.followRepo.Create(ctx, edge); err != nil {
		// A concurrent request inserted the same pair first.
		if errors.IsDuplicateError(err) {
			return uc.result(follow.OutcomeAlreadyFollowing, name, 0), nil
		}
		uc.logger.Errorw("failed to create follow edge", "error", err)
		return nil, err
	}

	uc.logger.Infow("follow created successfully", "edge_id", edge.ID(), "follower_id", cmd.FollowerID, "followed_id", target.ID())
	return uc.result(follow.OutcomeOK, name, edge.ID()), nil
}

func (uc *AddFollowUseCase) result(outcome follow.Outcome, username string, edgeID uint) *dto.AddFollowResultDTO {
	return &dto.AddFollowResultDTO{
		Outcome:  outcome,
		Username: username,
		Message:  outcome.Message(username),
		EdgeID:   edgeID,
	}
}
