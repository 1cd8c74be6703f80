package repository

import (
	"context"
	stderrors "errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/litrevu/litrevu/internal/domain/ticket"
	"github.com/litrevu/litrevu/internal/infrastructure/persistence/mappers"
	"github.com/litrevu/litrevu/internal/infrastructure/persistence/models"
	"github.com/litrevu/litrevu/internal/shared/db"
	"github.com/litrevu/litrevu/internal/shared/errors"
)

type CommentRepository struct {
	db     *gorm.DB
	mapper mappers.TicketMapper
}

func NewCommentRepository(db *gorm.DB) *CommentRepository {
	return &CommentRepository{
		db:     db,
		mapper: mappers.NewTicketMapper(),
	}
}

func (r *CommentRepository) Create(ctx context.Context, c *ticket.Comment) error {
	model := r.mapper.CommentToModel(c)
	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		return fmt.Errorf("failed to save comment: %w", err)
	}
	return c.SetID(model.ID)
}

func (r *CommentRepository) Update(ctx context.Context, c *ticket.Comment) error {
	result := db.GetTxFromContext(ctx, r.db).
		Model(&models.CommentModel{}).
		Where("id = ?", c.ID()).
		Updates(map[string]interface{}{
			"body":       c.Body(),
			"updated_at": c.UpdatedAt(),
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update comment: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("comment not found")
	}
	return nil
}

func (r *CommentRepository) GetByID(ctx context.Context, id uint) (*ticket.Comment, error) {
	var model models.CommentModel
	if err := db.GetTxFromContext(ctx, r.db).First(&model, id).Error; err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.NewNotFoundError("comment not found")
		}
		return nil, fmt.Errorf("failed to find comment: %w", err)
	}
	return r.mapper.CommentToDomain(&model)
}

func (r *CommentRepository) ListByTicketIDs(ctx context.Context, ticketIDs []uint) (map[uint][]*ticket.Comment, error) {
	out := make(map[uint][]*ticket.Comment, len(ticketIDs))
	if len(ticketIDs) == 0 {
		return out, nil
	}

	var rows []models.CommentModel
	if err := db.GetTxFromContext(ctx, r.db).
		Where("ticket_id IN ?", ticketIDs).
		Order("created_at ASC, id ASC").
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}

	for i := range rows {
		c, err := r.mapper.CommentToDomain(&rows[i])
		if err != nil {
			return nil, err
		}
		out[c.TicketID()] = append(out[c.TicketID()], c)
	}
	return out, nil
}

func (r *CommentRepository) Delete(ctx context.Context, id uint) error {
	result := db.GetTxFromContext(ctx, r.db).Delete(&models.CommentModel{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete comment: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("comment not found")
	}
	return nil
}

func (r *CommentRepository) DeleteByTicketID(ctx context.Context, ticketID uint) error {
	if err := db.GetTxFromContext(ctx, r.db).Where("ticket_id = ?", ticketID).Delete(&models.CommentModel{}).Error; err != nil {
		return fmt.Errorf("failed to delete comments of ticket: %w", err)
	}
	return nil
}

var _ ticket.CommentRepository = (*CommentRepository)(nil)
