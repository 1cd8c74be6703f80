package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestBcryptPasswordHasher(t *testing.T) {
	h := NewBcryptPasswordHasher(bcrypt.MinCost)

	hash, err := h.Hash("s3cret-pass")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret-pass", hash)

	assert.NoError(t, h.Verify("s3cret-pass", hash))
	assert.Error(t, h.Verify("wrong", hash))
	assert.Error(t, h.Verify("s3cret-pass", "not-a-hash"))
	h.BurnVerify("anything")
}

func TestBcryptCostOutOfRangeFallsBack(t *testing.T) {
	assert.Equal(t, bcrypt.DefaultCost, NewBcryptPasswordHasher(99).cost)
}

func TestSessionTokenRoundTrip(t *testing.T) {
	svc := NewSessionTokenService("test-secret", 14)
	assert.Equal(t, 14*24*time.Hour, svc.TTL())

	tok, err := svc.Sign("abc123", 7, time.Now().Add(time.Hour))
	require.NoError(t, err)

	claims, err := svc.Verify(tok)
	require.NoError(t, err)
	assert.Equal(t, "abc123", claims.SessionID)
	assert.Equal(t, uint(7), claims.UserID)
}

func TestSessionTokenRejections(t *testing.T) {
	svc := NewSessionTokenService("test-secret", 1)

	expired, err := svc.Sign("abc", 1, time.Now().Add(-time.Minute))
	require.NoError(t, err)
	_, err = svc.Verify(expired)
	assert.Error(t, err)

	other := NewSessionTokenService("other-secret", 1)
	forged, err := other.Sign("abc", 1, time.Now().Add(time.Hour))
	require.NoError(t, err)
	_, err = svc.Verify(forged)
	assert.Error(t, err)

	none := jwt.NewWithClaims(jwt.SigningMethodNone, &SessionClaims{SessionID: "abc", UserID: 1})
	unsigned, err := none.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)
	_, err = svc.Verify(unsigned)
	assert.Error(t, err)

	_, err = svc.Verify("garbage")
	assert.Error(t, err)
}
