package mappers

import (
	"github.com/litrevu/litrevu/internal/domain/ticket"
	"github.com/litrevu/litrevu/internal/infrastructure/persistence/models"
)

// TicketMapper handles the conversion between Ticket domain entities and persistence models.
type TicketMapper interface {
	// ToModel converts a ticket domain entity to a persistence model.
	ToModel(t *ticket.Ticket) *models.TicketModel

	// ToDomain converts a ticket persistence model to a domain entity.
	ToDomain(model *models.TicketModel) (*ticket.Ticket, error)

	// CommentToModel converts a comment domain entity to a persistence model.
	CommentToModel(c *ticket.Comment) *models.CommentModel

	// CommentToDomain converts a comment persistence model to a domain entity.
	CommentToDomain(model *models.CommentModel) (*ticket.Comment, error)
}

type TicketMapperImpl struct{}

func NewTicketMapper() TicketMapper {
	return &TicketMapperImpl{}
}

func (m *TicketMapperImpl) ToModel(t *ticket.Ticket) *models.TicketModel {
	return &models.TicketModel{
		ID:          t.ID(),
		UserID:      t.UserID(),
		Title:       t.Title(),
		Description: t.Description(),
		CreatedAt:   t.CreatedAt(),
		UpdatedAt:   t.UpdatedAt(),
	}
}

func (m *TicketMapperImpl) ToDomain(model *models.TicketModel) (*ticket.Ticket, error) {
	return ticket.ReconstructTicket(
		model.ID,
		model.UserID,
		model.Title,
		model.Description,
		model.CreatedAt.UTC(),
		model.UpdatedAt.UTC(),
	)
}

func (m *TicketMapperImpl) CommentToModel(c *ticket.Comment) *models.CommentModel {
	return &models.CommentModel{
		ID:        c.ID(),
		TicketID:  c.TicketID(),
		UserID:    c.UserID(),
		Body:      c.Body(),
		CreatedAt: c.CreatedAt(),
		UpdatedAt: c.UpdatedAt(),
	}
}

func (m *TicketMapperImpl) CommentToDomain(model *models.CommentModel) (*ticket.Comment, error) {
	return ticket.ReconstructComment(
		model.ID,
		model.TicketID,
		model.UserID,
		model.Body,
		model.CreatedAt.UTC(),
		model.UpdatedAt.UTC(),
	)
}
