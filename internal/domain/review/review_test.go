package review

import (
	"strings"
	"time"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewReview(t *testing.T) {
	tests := []struct {
		name     string
		rating   int
		headline string
		body     string
		wantErr  bool
	}{
		{"lowest rating", 0, "Meh", "", false},
		{"highest rating", 5, "Great read", "loved it", false},
		{"negative rating", -1, "x", "", true},
		{"rating above five", 6, "x", "", true},
		{"blank headline", 3, " ", "", true},
		{"headline too long", 3, strings.Repeat("h", 129), "", true},
		{"body too long", 3, "x", strings.Repeat("b", 8193), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := NewReview(1, 2, tt.rating, tt.headline, tt.body)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.rating, r.Rating())
			assert.Equal(t, uint(2), r.OwnerID())
			assert.Equal(t, "review", r.ResourceKind())
		})
	}
}

func TestReconstructReviewRejectsBadRating(t *testing.T) {
	_, err := ReconstructReview(1, 1, 1, 9, "x", "", time.Time{})
	assert.Error(t, err)
}
