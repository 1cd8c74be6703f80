// Package id generates opaque random identifiers.
package id

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

const (
	// Base62 alphabet: 0-9, A-Z, a-z
	alphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"

	// SessionLength is the length of session identifiers stored in the sessions table.
	SessionLength = 32

	// TokenLength is the length of CSRF tokens.
	TokenLength = 43
)

// Generate creates a cryptographically random Base62 string of the given length.
func Generate(length int) (string, error) {
	if length <= 0 {
		return "", fmt.Errorf("invalid id length %d", length)
	}

	result := make([]byte, length)
	alphabetLen := big.NewInt(int64(len(alphabet)))

	for i := 0; i < length; i++ {
		num, err := rand.Int(rand.Reader, alphabetLen)
		if err != nil {
			return "", fmt.Errorf("failed to generate random number: %w", err)
		}
		result[i] = alphabet[num.Int64()]
	}

	return string(result), nil
}

// NewSessionID returns a fresh session identifier.
func NewSessionID() (string, error) {
	return Generate(SessionLength)
}
