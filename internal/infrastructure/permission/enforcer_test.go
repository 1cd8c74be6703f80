package permission

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/litrevu/litrevu/internal/domain/permission"
	"github.com/litrevu/litrevu/internal/infrastructure/database/dbtest"
	"github.com/litrevu/litrevu/internal/shared/errors"
	"github.com/litrevu/litrevu/internal/shared/logger"
)

type ownedStub struct {
	owner uint
	kind  string
}

func (o ownedStub) OwnerID() uint        { return o.owner }
func (o ownedStub) ResourceKind() string { return o.kind }

func TestAssertOwner(t *testing.T) {
	e, err := NewInMemoryEnforcer(logger.NewNop())
	require.NoError(t, err)

	ctx := context.Background()
	kinds := []string{permission.ResourceTicket, permission.ResourceComment, permission.ResourceReview}
	actions := []permission.Action{permission.ActionEdit, permission.ActionDelete}

	for _, kind := range kinds {
		for _, act := range actions {
			res := ownedStub{owner: 7, kind: kind}

			assert.NoError(t, e.AssertOwner(ctx, 7, res, act), "%s %s by owner", act, kind)

			err := e.AssertOwner(ctx, 8, res, act)
			require.Error(t, err)
			assert.True(t, errors.IsForbiddenError(err), "%s %s by stranger", act, kind)
		}
	}
}

func TestAssertOwnerRejectsAnonymousAndUnknownKinds(t *testing.T) {
	e, err := NewInMemoryEnforcer(logger.NewNop())
	require.NoError(t, err)
	ctx := context.Background()

	err = e.AssertOwner(ctx, 0, ownedStub{owner: 0, kind: permission.ResourceTicket}, permission.ActionEdit)
	assert.True(t, errors.IsForbiddenError(err))

	err = e.AssertOwner(ctx, 3, ownedStub{owner: 3, kind: "user"}, permission.ActionDelete)
	assert.True(t, errors.IsForbiddenError(err))

	err = e.AssertOwner(ctx, 3, ownedStub{owner: 3, kind: permission.ResourceTicket}, permission.Action("publish"))
	assert.True(t, errors.IsForbiddenError(err))
}

func TestEnforcerPersistsPolicies(t *testing.T) {
	db := dbtest.Open(t)

	first, err := NewEnforcer(db, logger.NewNop())
	require.NoError(t, err)
	require.NoError(t, first.AssertOwner(context.Background(), 1, ownedStub{owner: 1, kind: permission.ResourceReview}, permission.ActionDelete))

	// A second enforcer loads the stored rows on construction and seeding adds nothing new.
	second, err := NewEnforcer(db, logger.NewNop())
	require.NoError(t, err)

	var count int64
	require.NoError(t, db.Table("casbin_rule").Where("ptype = ?", "p").Count(&count).Error)
	assert.Equal(t, int64(6), count)

	assert.NoError(t, second.AssertOwner(context.Background(), 2, ownedStub{owner: 2, kind: permission.ResourceTicket}, permission.ActionEdit))
}
