package user

import (
	"context"
	"fmt"
	"time"

	"github.com/litrevu/litrevu/internal/shared/biztime"
	"github.com/litrevu/litrevu/internal/shared/id"
)

type Session struct {
	ID             string
	UserID         uint
	IPAddress      string
	UserAgent      string
	ExpiresAt      time.Time
	LastActivityAt time.Time
	CreatedAt      time.Time
}

func NewSession(userID uint, ipAddress, userAgent string, expiresAt time.Time) (*Session, error) {
	if userID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}

	sid, err := id.NewSessionID()
	if err != nil {
		return nil, fmt.Errorf("failed to generate session ID: %w", err)
	}

	now := biztime.NowUTC()
	return &Session{
		ID:             sid,
		UserID:         userID,
		IPAddress:      ipAddress,
		UserAgent:      userAgent,
		ExpiresAt:      expiresAt.UTC(),
		LastActivityAt: now,
		CreatedAt:      now,
	}, nil
}

func (s *Session) IsExpired() bool {
	return biztime.NowUTC().After(s.ExpiresAt)
}

func (s *Session) UpdateActivity() {
	s.LastActivityAt = biztime.NowUTC()
}

type SessionRepository interface {
	Create(ctx context.Context, session *Session) error
	GetByID(ctx context.Context, sessionID string) (*Session, error)
	Touch(ctx context.Context, sessionID string, at time.Time) error
	Delete(ctx context.Context, sessionID string) error
	DeleteExpired(ctx context.Context) (int64, error)
}
