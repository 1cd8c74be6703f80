package repository

import (
	"context"
	stderrors "errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/litrevu/litrevu/internal/domain/user"
	"github.com/litrevu/litrevu/internal/infrastructure/persistence/mappers"
	"github.com/litrevu/litrevu/internal/infrastructure/persistence/models"
	"github.com/litrevu/litrevu/internal/shared/biztime"
	"github.com/litrevu/litrevu/internal/shared/db"
	"github.com/litrevu/litrevu/internal/shared/errors"
)

type SessionRepository struct {
	db     *gorm.DB
	mapper mappers.SessionMapper
}

func NewSessionRepository(db *gorm.DB) *SessionRepository {
	return &SessionRepository{
		db:     db,
		mapper: mappers.NewSessionMapper(),
	}
}

func (r *SessionRepository) Create(ctx context.Context, session *user.Session) error {
	model := r.mapper.ToModel(session)
	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create session: %w", err)
	}
	return nil
}

// GetByID returns the session only while it has not expired.
func (r *SessionRepository) GetByID(ctx context.Context, sessionID string) (*user.Session, error) {
	var model models.SessionModel
	err := db.GetTxFromContext(ctx, r.db).
		Where("id = ? AND expires_at > ?", sessionID, biztime.NowUTC()).
		First(&model).Error
	if err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.NewNotFoundError("session not found")
		}
		return nil, fmt.Errorf("failed to get session by ID: %w", err)
	}
	return r.mapper.ToDomain(&model), nil
}

func (r *SessionRepository) Touch(ctx context.Context, sessionID string, at time.Time) error {
	err := db.GetTxFromContext(ctx, r.db).
		Model(&models.SessionModel{}).
		Where("id = ?", sessionID).
		Update("last_activity_at", at.UTC()).Error
	if err != nil {
		return fmt.Errorf("failed to touch session: %w", err)
	}
	return nil
}

// Delete is idempotent: a missing session is not an error.
func (r *SessionRepository) Delete(ctx context.Context, sessionID string) error {
	if err := db.GetTxFromContext(ctx, r.db).Where("id = ?", sessionID).Delete(&models.SessionModel{}).Error; err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}

func (r *SessionRepository) DeleteExpired(ctx context.Context) (int64, error) {
	result := db.GetTxFromContext(ctx, r.db).Where("expires_at <= ?", biztime.NowUTC()).Delete(&models.SessionModel{})
	if result.Error != nil {
		return 0, fmt.Errorf("failed to delete expired sessions: %w", result.Error)
	}
	return result.RowsAffected, nil
}

var _ user.SessionRepository = (*SessionRepository)(nil)
