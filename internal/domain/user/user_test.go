package user

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeUsername(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{"alice", "alice", false},
		{"  bob.smith+1@x ", "bob.smith+1@x", false},
		{"ｂｏｂ", "bob", false}, // fullwidth folds under NFKC
		{"élodie_42", "élodie_42", false},
		{"", "", true},
		{"has space", "", true},
		{"semi;colon", "", true},
		{strings.Repeat("u", 151), "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := NormalizeUsername(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNormalizeEmail(t *testing.T) {
	got, err := NormalizeEmail("Alice@Example.COM")
	require.NoError(t, err)
	assert.Equal(t, "Alice@example.com", got)

	_, err = NormalizeEmail("Alice <alice@example.com>")
	assert.Error(t, err)
	_, err = NormalizeEmail("nope")
	assert.Error(t, err)
}

func TestNewUser(t *testing.T) {
	g := GenderFemale
	born := time.Date(1990, 5, 17, 13, 0, 0, 0, time.UTC)

	u, err := NewUser("alice", "alice@example.com", "hash", &born, &g)
	require.NoError(t, err)
	assert.Equal(t, "alice", u.Username())
	assert.Equal(t, time.Date(1990, 5, 17, 0, 0, 0, 0, time.UTC), *u.BirthDate())
	assert.Equal(t, GenderFemale, *u.Gender())

	future := time.Now().Add(48 * time.Hour)
	_, err = NewUser("alice", "alice@example.com", "hash", &future, nil)
	assert.Error(t, err)

	bad := Gender("X")
	_, err = NewUser("alice", "alice@example.com", "hash", nil, &bad)
	assert.Error(t, err)

	_, err = NewUser("alice", "alice@example.com", "", nil, nil)
	assert.Error(t, err)
}

func TestParseGender(t *testing.T) {
	g, err := ParseGender("")
	require.NoError(t, err)
	assert.Nil(t, g)

	g, err = ParseGender("O")
	require.NoError(t, err)
	assert.Equal(t, "Other", g.Label())

	_, err = ParseGender("male")
	assert.Error(t, err)
}

func TestSession(t *testing.T) {
	_, err := NewSession(0, "", "", time.Now())
	assert.Error(t, err)

	s, err := NewSession(1, "127.0.0.1", "go-test", time.Now().Add(time.Hour))
	require.NoError(t, err)
	assert.Len(t, s.ID, 32)
	assert.False(t, s.IsExpired())

	s.ExpiresAt = time.Now().Add(-time.Minute)
	assert.True(t, s.IsExpired())
}

func TestAuthContext(t *testing.T) {
	assert.False(t, Anonymous().IsAuthenticated())
	assert.True(t, AuthContext{UserID: 3, Username: "c"}.IsAuthenticated())
}
