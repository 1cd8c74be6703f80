package auth

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// PasswordHasher hashes and verifies user passwords.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, hash string) error
}

type BcryptPasswordHasher struct {
	cost int
}

func NewBcryptPasswordHasher(cost int) *BcryptPasswordHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &BcryptPasswordHasher{cost: cost}
}

func (h *BcryptPasswordHasher) Hash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", fmt.Errorf("failed to generate password hash: %w", err)
	}
	return string(hash), nil
}

// Verify reports every failure the same way, so callers cannot tell a wrong
// password from a malformed hash.
func (h *BcryptPasswordHasher) Verify(password, hash string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
		return fmt.Errorf("password verification failed")
	}
	return nil
}

// dummyHash is compared against when the username does not exist so that a
// failed login costs the same either way.
var dummyHash, _ = bcrypt.GenerateFromPassword([]byte("litrevu-dummy-password"), bcrypt.MinCost)

// BurnVerify spends a bcrypt comparison without a real hash.
func (h *BcryptPasswordHasher) BurnVerify(password string) {
	_ = bcrypt.CompareHashAndPassword(dummyHash, []byte(password))
}
