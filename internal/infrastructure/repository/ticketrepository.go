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

type TicketRepository struct {
	db     *gorm.DB
	mapper mappers.TicketMapper
}

func NewTicketRepository(db *gorm.DB) *TicketRepository {
	return &TicketRepository{
		db:     db,
		mapper: mappers.NewTicketMapper(),
	}
}

func (r *TicketRepository) Create(ctx context.Context, t *ticket.Ticket) error {
	model := r.mapper.ToModel(t)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save ticket: %w", err)
	}

	return t.SetID(model.ID)
}

// Update writes title, description and updated_at only; owner and creation
// time are never rewritten.
func (r *TicketRepository) Update(ctx context.Context, t *ticket.Ticket) error {
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.TicketModel{}).
		Where("id = ?", t.ID()).
		Updates(map[string]interface{}{
			"title":       t.Title(),
			"description": t.Description(),
			"updated_at":  t.UpdatedAt(),
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update ticket: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("ticket not found")
	}
	return nil
}

func (r *TicketRepository) GetByID(ctx context.Context, id uint) (*ticket.Ticket, error) {
	var model models.TicketModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.NewNotFoundError("ticket not found")
		}
		return nil, fmt.Errorf("failed to find ticket: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *TicketRepository) GetByIDs(ctx context.Context, ids []uint) (map[uint]*ticket.Ticket, error) {
	out := make(map[uint]*ticket.Ticket, len(ids))
	if len(ids) == 0 {
		return out, nil
	}

	var rows []models.TicketModel
	if err := db.GetTxFromContext(ctx, r.db).Where("id IN ?", ids).Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to find tickets: %w", err)
	}

	for i := range rows {
		t, err := r.mapper.ToDomain(&rows[i])
		if err != nil {
			return nil, err
		}
		out[t.ID()] = t
	}
	return out, nil
}

func (r *TicketRepository) ListByAuthors(ctx context.Context, userIDs []uint) ([]*ticket.Ticket, error) {
	if len(userIDs) == 0 {
		return []*ticket.Ticket{}, nil
	}

	var rows []models.TicketModel
	if err := db.GetTxFromContext(ctx, r.db).
		Where("user_id IN ?", userIDs).
		Order("created_at DESC, id DESC").
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list tickets: %w", err)
	}

	tickets := make([]*ticket.Ticket, 0, len(rows))
	for i := range rows {
		t, err := r.mapper.ToDomain(&rows[i])
		if err != nil {
			return nil, err
		}
		tickets = append(tickets, t)
	}
	return tickets, nil
}

func (r *TicketRepository) Delete(ctx context.Context, id uint) error {
	tx := db.GetTxFromContext(ctx, r.db)
	result := tx.Delete(&models.TicketModel{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete ticket: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("ticket not found")
	}
	return nil
}

var _ ticket.TicketRepository = (*TicketRepository)(nil)
