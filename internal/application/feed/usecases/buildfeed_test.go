package usecases

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	feeddto "github.com/litrevu/litrevu/internal/application/feed/dto"
	"github.com/litrevu/litrevu/internal/domain/feed"
	"github.com/litrevu/litrevu/internal/domain/follow"
	"github.com/litrevu/litrevu/internal/domain/review"
	"github.com/litrevu/litrevu/internal/domain/ticket"
	"github.com/litrevu/litrevu/internal/domain/user"
	"github.com/litrevu/litrevu/internal/infrastructure/database/dbtest"
	"github.com/litrevu/litrevu/internal/infrastructure/repository"
	"github.com/litrevu/litrevu/internal/shared/biztime"
	"github.com/litrevu/litrevu/internal/shared/errors"
	"github.com/litrevu/litrevu/internal/shared/logger"
	"github.com/litrevu/litrevu/internal/shared/services/markdown"
)

type feedFixture struct {
	t        *testing.T
	users    *repository.UserRepository
	tickets  *repository.TicketRepository
	comments *repository.CommentRepository
	reviews  *repository.ReviewRepository
	follows  *repository.FollowRepository
	uc       *BuildFeedUseCase
	resolver *VisibilityResolver
}

func newFeedFixture(t *testing.T) *feedFixture {
	gdb := dbtest.Open(t)
	log := logger.NewNop()
	f := &feedFixture{
		t:        t,
		users:    repository.NewUserRepository(gdb, log),
		tickets:  repository.NewTicketRepository(gdb),
		comments: repository.NewCommentRepository(gdb),
		reviews:  repository.NewReviewRepository(gdb),
		follows:  repository.NewFollowRepository(gdb),
	}
	f.resolver = NewVisibilityResolver(f.follows, f.tickets, f.reviews)
	f.uc = NewBuildFeedUseCase(f.resolver, f.tickets, f.comments, f.reviews, f.users, markdown.NewService(), log)
	return f
}

func at(s string) time.Time {
	v, err := time.Parse(time.RFC3339, s)
	if err != nil {
		panic(err)
	}
	return v
}

func (f *feedFixture) user(name string) uint {
	u, err := user.NewUser(name, name+"@example.com", "hash", nil, nil)
	require.NoError(f.t, err)
	require.NoError(f.t, f.users.Create(context.Background(), u))
	return u.ID()
}

func (f *feedFixture) ticket(owner uint, title string, when time.Time) uint {
	defer biztime.SetClock(func() time.Time { return when })()
	tk, err := ticket.NewTicket(owner, title, "")
	require.NoError(f.t, err)
	require.NoError(f.t, f.tickets.Create(context.Background(), tk))
	return tk.ID()
}

func (f *feedFixture) review(ticketID, owner uint, headline string, when time.Time) uint {
	defer biztime.SetClock(func() time.Time { return when })()
	rv, err := review.NewReview(ticketID, owner, 5, headline, "")
	require.NoError(f.t, err)
	require.NoError(f.t, f.reviews.Create(context.Background(), rv))
	return rv.ID()
}

func (f *feedFixture) comment(ticketID, owner uint, body string, when time.Time) {
	defer biztime.SetClock(func() time.Time { return when })()
	c, err := ticket.NewComment(ticketID, owner, body)
	require.NoError(f.t, err)
	require.NoError(f.t, f.comments.Create(context.Background(), c))
}

func (f *feedFixture) follow(follower, followed uint) {
	e, err := follow.NewEdge(follower, followed)
	require.NoError(f.t, err)
	require.NoError(f.t, f.follows.Create(context.Background(), e))
}

func (f *feedFixture) build(userID uint) []feeddto.FeedItemDTO {
	items, err := f.uc.Execute(context.Background(), user.AuthContext{UserID: userID})
	require.NoError(f.t, err)
	return items
}

func labels(items []feeddto.FeedItemDTO) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		if it.Ticket != nil {
			out = append(out, "T:"+it.Ticket.Title)
		} else {
			out = append(out, "R:"+it.Review.Headline)
		}
	}
	return out
}

func TestBuildFeed_AliceExample(t *testing.T) {
	f := newFeedFixture(t)
	alice := f.user("alice")
	bob := f.user("bob")

	dune := f.ticket(bob, "Dune", at("2024-01-02T10:00:00Z"))
	f.review(dune, alice, "Great read", at("2024-01-02T10:00:00Z"))
	f.ticket(alice, "1984", at("2024-01-03T09:00:00Z"))

	items := f.build(alice)
	assert.Equal(t, []string{"T:1984", "R:Great read"}, labels(items))

	// The parent ticket is shown with the review even though Alice does not
	// follow Bob.
	rv := items[1].Review
	require.NotNil(t, rv.Ticket)
	assert.Equal(t, "Dune", rv.Ticket.Title)
	assert.Equal(t, "bob", rv.Ticket.Username)
	assert.Equal(t, "alice", rv.Username)
	assert.True(t, rv.CanEdit)
}

func TestBuildFeed_VisibilityRules(t *testing.T) {
	f := newFeedFixture(t)
	alice := f.user("alice")
	bob := f.user("bob")
	carol := f.user("carol")
	dave := f.user("dave")

	f.follow(alice, bob)

	aliceTicket := f.ticket(alice, "alice ticket", at("2024-03-01T08:00:00Z"))
	bobTicket := f.ticket(bob, "bob ticket", at("2024-03-01T09:00:00Z"))
	f.ticket(carol, "carol ticket", at("2024-03-01T10:00:00Z"))
	f.review(bobTicket, bob, "bob on bob", at("2024-03-01T11:00:00Z"))
	f.review(aliceTicket, carol, "carol on alice", at("2024-03-01T12:00:00Z"))
	f.review(aliceTicket, bob, "bob on alice", at("2024-03-01T13:00:00Z"))
	daveTicket := f.ticket(dave, "dave ticket", at("2024-03-01T14:00:00Z"))
	f.review(daveTicket, carol, "carol on dave", at("2024-03-01T15:00:00Z"))

	items := f.build(alice)

	assert.Equal(t, []string{
		"R:bob on alice",
		"R:carol on alice",
		"R:bob on bob",
		"T:bob ticket",
		"T:alice ticket",
	}, labels(items))

	t.Run("no duplicates", func(t *testing.T) {
		seen := map[string]bool{}
		for _, it := range items {
			k := fmt.Sprintf("%s/%d", it.Kind, it.ID)
			assert.False(t, seen[k], "duplicate %s", k)
			seen[k] = true
		}
	})

	t.Run("sorted newest first", func(t *testing.T) {
		for i := 1; i < len(items); i++ {
			assert.False(t, items[i].CreatedAt.After(items[i-1].CreatedAt), "item %d out of order", i)
		}
	})

	t.Run("can_edit follows ownership", func(t *testing.T) {
		for _, it := range items {
			if it.Kind == feed.KindTicket {
				assert.Equal(t, it.Ticket.UserID == alice, it.Ticket.CanEdit)
			} else {
				assert.False(t, it.Review.CanEdit)
			}
		}
	})

	t.Run("following is one-directional", func(t *testing.T) {
		assert.Equal(t, []string{"R:bob on alice", "R:bob on bob", "T:bob ticket"}, labels(f.build(bob)))
	})
}

func TestBuildFeed_TiesAndComments(t *testing.T) {
	f := newFeedFixture(t)
	alice := f.user("alice")
	same := at("2024-05-05T05:05:05Z")

	first := f.ticket(alice, "first", same)
	f.ticket(alice, "second", same)
	f.review(first, alice, "review", same)
	f.comment(first, alice, "older", at("2024-05-05T06:00:00Z"))
	f.comment(first, alice, "newer", at("2024-05-05T07:00:00Z"))

	items := f.build(alice)
	// Equal timestamps: higher id first, then TICKET before REVIEW for the same id.
	assert.Equal(t, []string{"T:second", "T:first", "R:review"}, labels(items))

	require.Len(t, items[1].Ticket.Comments, 2)
	assert.Equal(t, "older", items[1].Ticket.Comments[0].Body)
	assert.Equal(t, "newer", items[1].Ticket.Comments[1].Body)
}

func TestBuildFeed_EmptyAndAnonymous(t *testing.T) {
	f := newFeedFixture(t)
	alice := f.user("alice")

	assert.Empty(t, f.build(alice))

	_, err := f.uc.Execute(context.Background(), user.Anonymous())
	require.Error(t, err)
	assert.Equal(t, errors.ErrorTypeUnauthorized, errors.GetAppError(err).Type)
}

func TestVisibilityResolver(t *testing.T) {
	f := newFeedFixture(t)
	alice := f.user("alice")
	bob := f.user("bob")
	carol := f.user("carol")
	f.follow(alice, bob)

	now := at("2024-06-01T00:00:00Z")
	f.ticket(alice, "a", now)
	bt := f.ticket(bob, "b", now)
	f.ticket(carol, "c", now)
	f.review(bt, carol, "carol review", now)

	tickets, err := f.resolver.VisibleTickets(context.Background(), alice)
	require.NoError(t, err)
	var titles []string
	for _, tk := range tickets {
		titles = append(titles, tk.Title())
	}
	assert.ElementsMatch(t, []string{"a", "b"}, titles)

	reviews, err := f.resolver.VisibleReviews(context.Background(), alice)
	require.NoError(t, err)
	assert.Empty(t, reviews, "reviews by unfollowed users on followed users' tickets stay hidden")
}
