package usecases

import (
	"context"

	"github.com/litrevu/litrevu/internal/application/follow/dto"
	"github.com/litrevu/litrevu/internal/domain/follow"
	"github.com/litrevu/litrevu/internal/domain/user"
	"github.com/litrevu/litrevu/internal/shared/logger"
)

type ListFollowsQuery struct {
	UserID uint
}

type ListFollowsUseCase struct {
	userRepo   user.Repository
	followRepo follow.Repository
	logger     logger.Interface
}

func NewListFollowsUseCase(
	userRepo user.Repository,
	followRepo follow.Repository,
	logger logger.Interface,
) *ListFollowsUseCase {
	return &ListFollowsUseCase{
		userRepo:   userRepo,
		followRepo: followRepo,
		logger:     logger,
	}
}

func (uc *ListFollowsUseCase) Execute(ctx context.Context, query ListFollowsQuery) (*dto.FollowsDTO, error) {
	following, err := uc.followRepo.ListFollowing(ctx, query.UserID)
	if err != nil {
		uc.logger.Errorw("failed to list followed users", "error", err, "user_id", query.UserID)
		return nil, err
	}
	followers, err := uc.followRepo.ListFollowers(ctx, query.UserID)
	if err != nil {
		uc.logger.Errorw("failed to list followers", "error", err, "user_id", query.UserID)
		return nil, err
	}

	ids := make([]uint, 0, len(following)+len(followers))
	for _, e := range following {
		ids = append(ids, e.FollowedID())
	}
	for _, e := range followers {
		ids = append(ids, e.FollowerID())
	}
	usernames, err := uc.userRepo.GetUsernames(ctx, ids)
	if err != nil {
		return nil, err
	}

	out := &dto.FollowsDTO{
		Following: make([]dto.FollowDTO, 0, len(following)),
		Followers: make([]dto.FollowDTO, 0, len(followers)),
	}
	for _, e := range following {
		out.Following = append(out.Following, toFollowDTO(e, e.FollowedID(), usernames))
	}
	for _, e := range followers {
		out.Followers = append(out.Followers, toFollowDTO(e, e.FollowerID(), usernames))
	}
	return out, nil
}

func toFollowDTO(e *follow.Edge, other uint, usernames map[uint]string) dto.FollowDTO {
	return dto.FollowDTO{
		ID:        e.ID(),
		UserID:    other,
		Username:  usernames[other],
		CreatedAt: e.CreatedAt(),
	}
}
