package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/litrevu/litrevu/internal/domain/follow"
	"github.com/litrevu/litrevu/internal/infrastructure/persistence/mappers"
	"github.com/litrevu/litrevu/internal/infrastructure/persistence/models"
	"github.com/litrevu/litrevu/internal/shared/db"
)

type FollowRepository struct {
	db     *gorm.DB
	mapper mappers.FollowEdgeMapper
}

func NewFollowRepository(db *gorm.DB) *FollowRepository {
	return &FollowRepository{
		db:     db,
		mapper: mappers.NewFollowEdgeMapper(),
	}
}

// Create returns the raw driver error on a duplicate pair so callers can
// detect it with errors.IsDuplicateError.
func (r *FollowRepository) Create(ctx context.Context, e *follow.Edge) error {
	model := r.mapper.ToModel(e)
	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create follow edge: %w", err)
	}
	return e.SetID(model.ID)
}

func (r *FollowRepository) Exists(ctx context.Context, followerID, followedID uint) (bool, error) {
	var count int64
	if err := db.GetTxFromContext(ctx, r.db).
		Model(&models.FollowEdgeModel{}).
		Where("user_id = ? AND followed_user_id = ?", followerID, followedID).
		Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check follow edge: %w", err)
	}
	return count > 0, nil
}

func (r *FollowRepository) FollowedIDs(ctx context.Context, followerID uint) ([]uint, error) {
	var ids []uint
	if err := db.GetTxFromContext(ctx, r.db).
		Model(&models.FollowEdgeModel{}).
		Where("user_id = ?", followerID).
		Order("id ASC").
		Pluck("followed_user_id", &ids).Error; err != nil {
		return nil, fmt.Errorf("failed to load followed users: %w", err)
	}
	return ids, nil
}

func (r *FollowRepository) ListFollowing(ctx context.Context, userID uint) ([]*follow.Edge, error) {
	return r.list(ctx, "user_id = ?", userID)
}

func (r *FollowRepository) ListFollowers(ctx context.Context, userID uint) ([]*follow.Edge, error) {
	return r.list(ctx, "followed_user_id = ?", userID)
}

func (r *FollowRepository) list(ctx context.Context, query string, arg uint) ([]*follow.Edge, error) {
	var rows []models.FollowEdgeModel
	if err := db.GetTxFromContext(ctx, r.db).Where(query, arg).Order("created_at ASC, id ASC").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list follow edges: %w", err)
	}

	edges := make([]*follow.Edge, 0, len(rows))
	for i := range rows {
		e, err := r.mapper.ToDomain(&rows[i])
		if err != nil {
			return nil, err
		}
		edges = append(edges, e)
	}
	return edges, nil
}

func (r *FollowRepository) DeleteOwned(ctx context.Context, id, followerID uint) (bool, error) {
	result := db.GetTxFromContext(ctx, r.db).
		Where("id = ? AND user_id = ?", id, followerID).
		Delete(&models.FollowEdgeModel{})
	if result.Error != nil {
		return false, fmt.Errorf("failed to delete follow edge: %w", result.Error)
	}
	return result.RowsAffected > 0, nil
}

var _ follow.Repository = (*FollowRepository)(nil)

