package repository

import (
	"context"
	stderrors "errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/litrevu/litrevu/internal/domain/review"
	"github.com/litrevu/litrevu/internal/infrastructure/persistence/mappers"
	"github.com/litrevu/litrevu/internal/infrastructure/persistence/models"
	"github.com/litrevu/litrevu/internal/shared/db"
	"github.com/litrevu/litrevu/internal/shared/errors"
)

type ReviewRepository struct {
	db     *gorm.DB
	mapper mappers.ReviewMapper
}

func NewReviewRepository(db *gorm.DB) *ReviewRepository {
	return &ReviewRepository{
		db:     db,
		mapper: mappers.NewReviewMapper(),
	}
}

func (r *ReviewRepository) Create(ctx context.Context, rv *review.Review) error {
	model := r.mapper.ToModel(rv)
	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		return fmt.Errorf("failed to save review: %w", err)
	}
	return rv.SetID(model.ID)
}

func (r *ReviewRepository) GetByID(ctx context.Context, id uint) (*review.Review, error) {
	var model models.ReviewModel
	if err := db.GetTxFromContext(ctx, r.db).First(&model, id).Error; err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.NewNotFoundError("review not found")
		}
		return nil, fmt.Errorf("failed to find review: %w", err)
	}
	return r.mapper.ToDomain(&model)
}

func (r *ReviewRepository) ListByAuthors(ctx context.Context, userIDs []uint) ([]*review.Review, error) {
	if len(userIDs) == 0 {
		return []*review.Review{}, nil
	}
	return r.list(db.GetTxFromContext(ctx, r.db).Where("user_id IN ?", userIDs))
}

func (r *ReviewRepository) ListOnTicketsOwnedBy(ctx context.Context, ownerID uint) ([]*review.Review, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	owned := tx.Session(&gorm.Session{NewDB: true}).
		Model(&models.TicketModel{}).
		Select("id").
		Where("user_id = ?", ownerID)
	return r.list(tx.Where("ticket_id IN (?)", owned))
}

func (r *ReviewRepository) list(q *gorm.DB) ([]*review.Review, error) {
	var rows []models.ReviewModel
	if err := q.Order("created_at DESC, id DESC").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list reviews: %w", err)
	}

	reviews := make([]*review.Review, 0, len(rows))
	for i := range rows {
		rv, err := r.mapper.ToDomain(&rows[i])
		if err != nil {
			return nil, err
		}
		reviews = append(reviews, rv)
	}
	return reviews, nil
}

func (r *ReviewRepository) Delete(ctx context.Context, id uint) error {
	result := db.GetTxFromContext(ctx, r.db).Delete(&models.ReviewModel{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete review: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("review not found")
	}
	return nil
}

func (r *ReviewRepository) DeleteByTicketID(ctx context.Context, ticketID uint) error {
	if err := db.GetTxFromContext(ctx, r.db).Where("ticket_id = ?", ticketID).Delete(&models.ReviewModel{}).Error; err != nil {
		return fmt.Errorf("failed to delete reviews of ticket: %w", err)
	}
	return nil
}

var _ review.Repository = (*ReviewRepository)(nil)
