package usecases

import (
	"context"

	"github.com/litrevu/litrevu/internal/application/user/dto"
	"github.com/litrevu/litrevu/internal/domain/user"
)

type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, hash string) error
}

// SessionClaims is what a valid session cookie carries.
type SessionClaims struct {
	SessionID string
	UserID    uint
}

// SessionTokenVerifier checks a session cookie value.
type SessionTokenVerifier interface {
	Verify(token string) (*SessionClaims, error)
}

// WelcomeMailer sends the message new users receive after signing up.
type WelcomeMailer interface {
	SendWelcomeEmail(to, username string) error
}

type RegisterExecutor interface {
	Execute(ctx context.Context, cmd RegisterCommand) (*dto.AuthResult, error)
}

type LoginExecutor interface {
	Execute(ctx context.Context, cmd LoginCommand) (*dto.AuthResult, error)
}

type LogoutExecutor interface {
	Execute(ctx context.Context, cmd LogoutCommand) error
}

type ResolveSessionExecutor interface {
	Execute(ctx context.Context, token string) (user.AuthContext, error)
}
