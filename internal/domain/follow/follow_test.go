package follow

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEdge(t *testing.T) {
	_, err := NewEdge(1, 1)
	assert.ErrorIs(t, err, ErrSelfFollow)

	_, err = NewEdge(0, 2)
	assert.Error(t, err)

	e, err := NewEdge(1, 2)
	require.NoError(t, err)
	assert.Equal(t, uint(1), e.FollowerID())
	assert.Equal(t, uint(2), e.FollowedID())
}

func TestOutcomeMessagesAreDistinct(t *testing.T) {
	outcomes := []Outcome{OutcomeOK, OutcomeUserNotFound, OutcomeSelfFollow, OutcomeAlreadyFollowing}
	seen := map[string]bool{}
	for _, o := range outcomes {
		msg := o.Message("bob")
		assert.NotEmpty(t, msg)
		assert.False(t, seen[msg], msg)
		seen[msg] = true
	}
}

func TestOutcomeHTTPStatus(t *testing.T) {
	assert.Equal(t, http.StatusOK, OutcomeOK.HTTPStatus())
	assert.Equal(t, http.StatusNotFound, OutcomeUserNotFound.HTTPStatus())
	assert.Equal(t, http.StatusBadRequest, OutcomeSelfFollow.HTTPStatus())
	assert.Equal(t, http.StatusConflict, OutcomeAlreadyFollowing.HTTPStatus())
}
