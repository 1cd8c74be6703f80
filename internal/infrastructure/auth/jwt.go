package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/litrevu/litrevu/internal/shared/biztime"
)

const sessionIssuer = "litrevu"

// SessionClaims is the payload of the session cookie. The session row is the
// source of truth; the signature only stops forged or tampered cookies before
// the database is consulted.
type SessionClaims struct {
	SessionID string `json:"sid"`
	UserID    uint   `json:"uid"`
	jwt.RegisteredClaims
}

// SessionTokenService signs and verifies session cookies with HS256.
type SessionTokenService struct {
	secret  []byte
	expDays int
}

func NewSessionTokenService(secret string, expDays int) *SessionTokenService {
	return &SessionTokenService{
		secret:  []byte(secret),
		expDays: expDays,
	}
}

// TTL is how long a new session stays valid.
func (s *SessionTokenService) TTL() time.Duration {
	return time.Duration(s.expDays) * 24 * time.Hour
}

func (s *SessionTokenService) Sign(sessionID string, userID uint, expiresAt time.Time) (string, error) {
	now := biztime.NowUTC()
	claims := &SessionClaims{
		SessionID: sessionID,
		UserID:    userID,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    sessionIssuer,
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign session token: %w", err)
	}
	return signed, nil
}

func (s *SessionTokenService) Verify(tokenString string) (*SessionClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &SessionClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	}, jwt.WithIssuer(sessionIssuer), jwt.WithTimeFunc(biztime.NowUTC))
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	claims, ok := token.Claims.(*SessionClaims)
	if !ok || !token.Valid || claims.SessionID == "" || claims.UserID == 0 {
		return nil, fmt.Errorf("invalid token")
	}
	return claims, nil
}
