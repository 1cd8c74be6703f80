package usecases

import (
	"context"

	"github.com/litrevu/litrevu/internal/domain/permission"
	"github.com/litrevu/litrevu/internal/domain/review"
	"github.com/litrevu/litrevu/internal/shared/logger"
)

type DeleteReviewCommand struct {
	ActorID  uint
	ReviewID uint
}

type DeleteReviewUseCase struct {
	reviewRepo review.Repository
	gate       permission.OwnershipGate
	logger     logger.Interface
}

func NewDeleteReviewUseCase(
	reviewRepo review.Repository,
	gate permission.OwnershipGate,
	logger logger.Interface,
) *DeleteReviewUseCase {
	return &DeleteReviewUseCase{
		reviewRepo: reviewRepo,
		gate:       gate,
		logger:     logger,
	}
}

func (uc *DeleteReviewUseCase) Execute(ctx context.Context, cmd DeleteReviewCommand) error {
	uc.logger.Infow("executing delete review use case", "review_id", cmd.ReviewID, "actor_id", cmd.ActorID)

	r, err := uc.reviewRepo.GetByID(ctx, cmd.ReviewID)
	if err != nil {
		return err
	}

	if err := uc.gate.AssertOwner(ctx, cmd.ActorID, r, permission.ActionDelete); err != nil {
		return err
	}

	if err := uc.reviewRepo.Delete(ctx, r.ID()); err != nil {
		uc.logger.Errorw("failed to delete review", "error", err, "review_id", cmd.ReviewID)
		return err
	}

	uc.logger.Infow("review deleted successfully", "review_id", cmd.ReviewID)
	return nil
}
