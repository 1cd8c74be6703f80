package usecases

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/litrevu/litrevu/internal/domain/permission"
	"github.com/litrevu/litrevu/internal/infrastructure/persistence/models"
	"github.com/litrevu/litrevu/internal/shared/errors"
)

func TestCreateTicketUseCase_Execute(t *testing.T) {
	env := newTestEnv(t)
	alice := env.user(t, "alice")
	uc := NewCreateTicketUseCase(env.tickets, env.log)
	ctx := context.Background()

	tests := []struct {
		name     string
		cmd      CreateTicketCommand
		wantErr  func(error) bool
		wantSave bool
	}{
		{
			name:     "valid ticket",
			cmd:      CreateTicketCommand{UserID: alice, Title: "Dune", Description: "Worth it?"},
			wantSave: true,
		},
		{
			name:    "empty title",
			cmd:     CreateTicketCommand{UserID: alice, Title: "   "},
			wantErr: errors.IsValidationError,
		},
		{
			name:    "title too long",
			cmd:     CreateTicketCommand{UserID: alice, Title: strings.Repeat("x", 129)},
			wantErr: errors.IsValidationError,
		},
		{
			name:    "anonymous",
			cmd:     CreateTicketCommand{Title: "Dune"},
			wantErr: func(err error) bool { return errors.GetAppError(err).Type == errors.ErrorTypeUnauthorized },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := uc.Execute(ctx, tt.cmd)
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.True(t, tt.wantErr(err), "unexpected error %v", err)
				return
			}
			require.NoError(t, err)
			assert.NotZero(t, res.TicketID)
			assert.False(t, res.CreatedAt.IsZero())
		})
	}
}

func TestUpdateTicketUseCase_OwnerOnly(t *testing.T) {
	env := newTestEnv(t)
	alice := env.user(t, "alice")
	bob := env.user(t, "bob")
	id := env.ticket(t, alice, "Original")
	ctx := context.Background()

	uc := NewUpdateTicketUseCase(env.tickets, env.gate, env.md, env.log)

	_, err := uc.Execute(ctx, UpdateTicketCommand{ActorID: bob, TicketID: id, Title: "Hijacked"})
	require.Error(t, err)
	assert.True(t, errors.IsForbiddenError(err))

	stored, err := env.tickets.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Original", stored.Title())

	out, err := uc.Execute(ctx, UpdateTicketCommand{ActorID: alice, TicketID: id, Title: "Renamed", Description: "*now* with text"})
	require.NoError(t, err)
	assert.Equal(t, "Renamed", out.Title)
	assert.Contains(t, string(out.DescriptionHTML), "<em>now</em>")
	assert.True(t, out.CanEdit)

	stored, err = env.tickets.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Renamed", stored.Title())
	assert.Equal(t, alice, stored.UserID())

	_, err = uc.Execute(ctx, UpdateTicketCommand{ActorID: alice, TicketID: id + 100, Title: "x"})
	assert.True(t, errors.IsNotFoundError(err))

	_, err = uc.Execute(ctx, UpdateTicketCommand{ActorID: alice, TicketID: id, Title: ""})
	assert.True(t, errors.IsValidationError(err))
}

func TestDeleteTicketUseCase(t *testing.T) {
	env := newTestEnv(t)
	alice := env.user(t, "alice")
	bob := env.user(t, "bob")
	id := env.ticket(t, alice, "Doomed")
	ctx := context.Background()

	_, err := NewAddCommentUseCase(env.tickets, env.comments, env.md, env.log).Execute(ctx, AddCommentCommand{TicketID: id, UserID: bob, Body: "nice"})
	require.NoError(t, err)
	_, err = NewCreateReviewUseCase(env.tickets, env.reviews, env.md, env.log).Execute(ctx, CreateReviewCommand{TicketID: id, UserID: bob, Rating: 3, Headline: "ok"})
	require.NoError(t, err)

	uc := NewDeleteTicketUseCase(env.tickets, env.comments, env.reviews, env.gate, env.txMgr, env.log)

	t.Run("non-owner is forbidden and nothing changes", func(t *testing.T) {
		err := uc.Execute(ctx, DeleteTicketCommand{ActorID: bob, TicketID: id})
		require.Error(t, err)
		assert.True(t, errors.IsForbiddenError(err))
		assert.Equal(t, int64(1), env.count(t, &models.TicketModel{}))
		assert.Equal(t, int64(1), env.count(t, &models.CommentModel{}))
		assert.Equal(t, int64(1), env.count(t, &models.ReviewModel{}))
	})

	t.Run("owner removes ticket with its comments and reviews", func(t *testing.T) {
		require.NoError(t, uc.Execute(ctx, DeleteTicketCommand{ActorID: alice, TicketID: id}))
		assert.Equal(t, int64(0), env.count(t, &models.TicketModel{}))
		assert.Equal(t, int64(0), env.count(t, &models.CommentModel{}))
		assert.Equal(t, int64(0), env.count(t, &models.ReviewModel{}))
	})

	t.Run("missing ticket", func(t *testing.T) {
		err := uc.Execute(ctx, DeleteTicketCommand{ActorID: alice, TicketID: id})
		assert.True(t, errors.IsNotFoundError(err))
	})
}

func TestGetTicketUseCase(t *testing.T) {
	env := newTestEnv(t)
	alice := env.user(t, "alice")
	bob := env.user(t, "bob")
	id := env.ticket(t, alice, "Readable")
	ctx := context.Background()

	add := NewAddCommentUseCase(env.tickets, env.comments, env.md, env.log)
	_, err := add.Execute(ctx, AddCommentCommand{TicketID: id, UserID: bob, Body: "first"})
	require.NoError(t, err)
	_, err = add.Execute(ctx, AddCommentCommand{TicketID: id, UserID: alice, Body: "second"})
	require.NoError(t, err)

	uc := NewGetTicketUseCase(env.tickets, env.comments, env.users, env.gate, env.md, env.log)

	got, err := uc.Execute(ctx, GetTicketQuery{ActorID: bob, TicketID: id})
	require.NoError(t, err)
	assert.Equal(t, "alice", got.Username)
	assert.False(t, got.CanEdit)
	require.Len(t, got.Comments, 2)
	assert.Equal(t, "first", got.Comments[0].Body)
	assert.Equal(t, "bob", got.Comments[0].Username)
	assert.False(t, got.Comments[0].CanEdit)
	assert.Equal(t, "second", got.Comments[1].Body)

	_, err = uc.Execute(ctx, GetTicketQuery{ActorID: bob, TicketID: id, ForAction: permission.ActionEdit})
	assert.True(t, errors.IsForbiddenError(err))

	owned, err := uc.Execute(ctx, GetTicketQuery{ActorID: alice, TicketID: id, ForAction: permission.ActionDelete})
	require.NoError(t, err)
	assert.True(t, owned.CanEdit)
}
