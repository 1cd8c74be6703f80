package usecases

import (
	"context"
	"time"

	"github.com/litrevu/litrevu/internal/domain/user"
	"github.com/litrevu/litrevu/internal/shared/biztime"
	"github.com/litrevu/litrevu/internal/shared/errors"
	"github.com/litrevu/litrevu/internal/shared/logger"
)

// activityGranularity limits last-activity writes to one per session per minute.
const activityGranularity = time.Minute

// ResolveSessionUseCase turns a session cookie into the request's
// AuthContext. Any failure yields the anonymous context together with the
// reason.
type ResolveSessionUseCase struct {
	tokens      SessionTokenVerifier
	sessionRepo user.SessionRepository
	userRepo    user.Repository
	logger      logger.Interface
}

func NewResolveSessionUseCase(
	tokens SessionTokenVerifier,
	sessionRepo user.SessionRepository,
	userRepo user.Repository,
	logger logger.Interface,
) *ResolveSessionUseCase {
	return &ResolveSessionUseCase{
		tokens:      tokens,
		sessionRepo: sessionRepo,
		userRepo:    userRepo,
		logger:      logger,
	}
}

func (uc *ResolveSessionUseCase) Execute(ctx context.Context, token string) (user.AuthContext, error) {
	if token == "" {
		return user.Anonymous(), nil
	}

	claims, err := uc.tokens.Verify(token)
	if err != nil {
		return user.Anonymous(), errors.NewTokenInvalidError()
	}

	session, err := uc.sessionRepo.GetByID(ctx, claims.SessionID)
	if err != nil {
		if errors.IsNotFoundError(err) {
			return user.Anonymous(), errors.NewSessionExpiredError()
		}
		return user.Anonymous(), err
	}
	if session.UserID != claims.UserID || session.IsExpired() {
		return user.Anonymous(), errors.NewSessionExpiredError()
	}

	u, err := uc.userRepo.GetByID(ctx, session.UserID)
	if err != nil {
		if errors.IsNotFoundError(err) {
			return user.Anonymous(), errors.NewSessionExpiredError()
		}
		return user.Anonymous(), err
	}

	now := biztime.NowUTC()
	if now.Sub(session.LastActivityAt) >= activityGranularity {
		if err := uc.sessionRepo.Touch(ctx, session.ID, now); err != nil {
			uc.logger.Warnw("failed to update session activity", "error", err, "session_id", session.ID)
		}
	}

	return user.AuthContext{
		UserID:    u.ID(),
		Username:  u.Username(),
		SessionID: session.ID,
	}, nil
}
