package http

import (
	"gorm.io/gorm"

	"github.com/litrevu/litrevu/internal/domain/follow"
	"github.com/litrevu/litrevu/internal/domain/review"
	"github.com/litrevu/litrevu/internal/domain/ticket"
	"github.com/litrevu/litrevu/internal/domain/user"
	"github.com/litrevu/litrevu/internal/infrastructure/repository"
	"github.com/litrevu/litrevu/internal/shared/logger"
)

// repositories holds all repository instances used by the application.
type repositories struct {
	userRepo    *repository.UserRepository
	sessionRepo user.SessionRepository
	ticketRepo  ticket.TicketRepository
	commentRepo ticket.CommentRepository
	reviewRepo  review.Repository
	followRepo  follow.Repository
}

// newRepositories creates all repository instances from the database connection.
func newRepositories(db *gorm.DB, log logger.Interface) *repositories {
	return &repositories{
		userRepo:    repository.NewUserRepository(db, log),
		sessionRepo: repository.NewSessionRepository(db),
		ticketRepo:  repository.NewTicketRepository(db),
		commentRepo: repository.NewCommentRepository(db),
		reviewRepo:  repository.NewReviewRepository(db),
		followRepo:  repository.NewFollowRepository(db),
	}
}
