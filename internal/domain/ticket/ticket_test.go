package ticket

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/litrevu/litrevu/internal/domain/permission"
	"github.com/litrevu/litrevu/internal/shared/biztime"
)

func TestNewTicket(t *testing.T) {
	tests := []struct {
		name    string
		userID  uint
		title   string
		desc    string
		wantErr string
	}{
		{"valid", 1, "Dune", "Anyone read it?", ""},
		{"empty description allowed", 1, "Dune", "", ""},
		{"missing user", 0, "Dune", "", "user ID is required"},
		{"blank title", 1, "   ", "", "title is required"},
		{"title too long", 1, strings.Repeat("a", 129), "", "title exceeds"},
		{"description too long", 1, "Dune", strings.Repeat("d", 2049), "description exceeds"},
		{"title at limit", 1, strings.Repeat("é", 128), "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tk, err := NewTicket(tt.userID, tt.title, tt.desc)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.userID, tk.OwnerID())
			assert.Equal(t, permission.ResourceTicket, tk.ResourceKind())
			assert.Equal(t, time.UTC, tk.CreatedAt().Location())
		})
	}
}

func TestTicketEditKeepsOwnerAndCreation(t *testing.T) {
	created := time.Date(2024, 1, 2, 10, 0, 0, 0, time.UTC)
	restore := biztime.SetClock(func() time.Time { return created })
	tk, err := NewTicket(7, "Dune", "")
	restore()
	require.NoError(t, err)

	require.NoError(t, tk.Edit("  Dune Messiah ", "sequel"))
	assert.Equal(t, "Dune Messiah", tk.Title())
	assert.Equal(t, "sequel", tk.Description())
	assert.Equal(t, uint(7), tk.UserID())
	assert.Equal(t, created, tk.CreatedAt())
	assert.True(t, tk.UpdatedAt().After(created))

	assert.Error(t, tk.Edit("", "x"))
	assert.Equal(t, "Dune Messiah", tk.Title())
}

func TestTicketSetID(t *testing.T) {
	tk, err := NewTicket(1, "Dune", "")
	require.NoError(t, err)

	assert.Error(t, tk.SetID(0))
	require.NoError(t, tk.SetID(3))
	assert.Error(t, tk.SetID(4))
	assert.Equal(t, uint(3), tk.ID())
}

func TestComment(t *testing.T) {
	_, err := NewComment(0, 1, "hi")
	assert.Error(t, err)
	_, err = NewComment(1, 1, " ")
	assert.Error(t, err)
	_, err = NewComment(1, 1, strings.Repeat("c", 2049))
	assert.Error(t, err)

	c, err := NewComment(1, 2, "  great pick ")
	require.NoError(t, err)
	assert.Equal(t, "great pick", c.Body())
	assert.Equal(t, uint(2), c.OwnerID())
	assert.Equal(t, permission.ResourceComment, c.ResourceKind())

	require.NoError(t, c.Edit("changed"))
	assert.Equal(t, "changed", c.Body())
	assert.Error(t, c.Edit(""))
}
