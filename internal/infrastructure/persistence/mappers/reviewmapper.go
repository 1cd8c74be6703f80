package mappers

import (
	"github.com/litrevu/litrevu/internal/domain/follow"
	"github.com/litrevu/litrevu/internal/domain/review"
	"github.com/litrevu/litrevu/internal/infrastructure/persistence/models"
)

type ReviewMapper interface {
	ToModel(r *review.Review) *models.ReviewModel
	ToDomain(model *models.ReviewModel) (*review.Review, error)
}

type ReviewMapperImpl struct{}

func NewReviewMapper() ReviewMapper {
	return &ReviewMapperImpl{}
}

func (m *ReviewMapperImpl) ToModel(r *review.Review) *models.ReviewModel {
	return &models.ReviewModel{
		ID:        r.ID(),
		TicketID:  r.TicketID(),
		UserID:    r.UserID(),
		Rating:    r.Rating(),
		Headline:  r.Headline(),
		Body:      r.Body(),
		CreatedAt: r.CreatedAt(),
	}
}

func (m *ReviewMapperImpl) ToDomain(model *models.ReviewModel) (*review.Review, error) {
	return review.ReconstructReview(
		model.ID,
		model.TicketID,
		model.UserID,
		model.Rating,
		model.Headline,
		model.Body,
		model.CreatedAt.UTC(),
	)
}

type FollowEdgeMapper interface {
	ToModel(e *follow.Edge) *models.FollowEdgeModel
	ToDomain(model *models.FollowEdgeModel) (*follow.Edge, error)
}

type FollowEdgeMapperImpl struct{}

func NewFollowEdgeMapper() FollowEdgeMapper {
	return &FollowEdgeMapperImpl{}
}

func (m *FollowEdgeMapperImpl) ToModel(e *follow.Edge) *models.FollowEdgeModel {
	return &models.FollowEdgeModel{
		ID:             e.ID(),
		UserID:         e.FollowerID(),
		FollowedUserID: e.FollowedID(),
		CreatedAt:      e.CreatedAt(),
	}
}

func (m *FollowEdgeMapperImpl) ToDomain(model *models.FollowEdgeModel) (*follow.Edge, error) {
	return follow.ReconstructEdge(model.ID, model.UserID, model.FollowedUserID, model.CreatedAt.UTC())
}
