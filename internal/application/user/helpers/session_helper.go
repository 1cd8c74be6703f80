package helpers

import (
	"context"
	"fmt"
	"time"

	"github.com/litrevu/litrevu/internal/domain/user"
	"github.com/litrevu/litrevu/internal/shared/biztime"
)

// SessionTokenSigner signs the cookie value for a stored session.
type SessionTokenSigner interface {
	Sign(sessionID string, userID uint, expiresAt time.Time) (string, error)
	TTL() time.Duration
}

// DeviceInfo describes the client a session is opened for.
type DeviceInfo struct {
	IPAddress string
	UserAgent string
}

type IssuedSession struct {
	Session *user.Session
	Token   string
}

// SessionHelper opens sessions for register and login.
type SessionHelper struct {
	sessionRepo user.SessionRepository
	signer      SessionTokenSigner
}

func NewSessionHelper(sessionRepo user.SessionRepository, signer SessionTokenSigner) *SessionHelper {
	return &SessionHelper{
		sessionRepo: sessionRepo,
		signer:      signer,
	}
}

// CreateAndSaveSession persists a new session for userID and signs its cookie
// token. ctx may carry a transaction.
func (h *SessionHelper) CreateAndSaveSession(ctx context.Context, userID uint, device DeviceInfo) (*IssuedSession, error) {
	expiresAt := biztime.NowUTC().Add(h.signer.TTL())

	session, err := user.NewSession(userID, device.IPAddress, device.UserAgent, expiresAt)
	if err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}
	if err := h.sessionRepo.Create(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to save session: %w", err)
	}

	token, err := h.signer.Sign(session.ID, userID, session.ExpiresAt)
	if err != nil {
		return nil, err
	}

	return &IssuedSession{Session: session, Token: token}, nil
}
