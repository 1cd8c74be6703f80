package http

import (
	"github.com/litrevu/litrevu/internal/application/user/usecases"
	"github.com/litrevu/litrevu/internal/infrastructure/auth"
)

// sessionTokenAdapter lets the signed cookie service satisfy both the
// session helper (Sign, TTL) and the resolve use case (Verify).
type sessionTokenAdapter struct {
	*auth.SessionTokenService
}

func (a *sessionTokenAdapter) Verify(token string) (*usecases.SessionClaims, error) {
	claims, err := a.SessionTokenService.Verify(token)
	if err != nil {
		return nil, err
	}
	return &usecases.SessionClaims{
		SessionID: claims.SessionID,
		UserID:    claims.UserID,
	}, nil
}
