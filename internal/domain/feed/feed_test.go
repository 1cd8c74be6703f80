package feed

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/litrevu/litrevu/internal/domain/review"
	"github.com/litrevu/litrevu/internal/domain/ticket"
)

func mkTicket(t *testing.T, id, owner uint, title string, at time.Time) *ticket.Ticket {
	t.Helper()
	tk, err := ticket.ReconstructTicket(id, owner, title, "", at, at)
	require.NoError(t, err)
	return tk
}

func mkReview(t *testing.T, id, ticketID, owner uint, headline string, at time.Time) *review.Review {
	t.Helper()
	r, err := review.ReconstructReview(id, ticketID, owner, 4, headline, "", at)
	require.NoError(t, err)
	return r
}

func ts(s string) time.Time {
	v, err := time.Parse(time.RFC3339, s)
	if err != nil {
		panic(err)
	}
	return v
}

func TestAudience(t *testing.T) {
	assert.Equal(t, []uint{1}, Audience(1, nil))
	assert.Equal(t, []uint{1, 3, 2}, Audience(1, []uint{3, 1, 2, 3}))
}

func TestMergeAliceExample(t *testing.T) {
	const alice, bob = 1, 2
	dune := mkTicket(t, 10, bob, "Dune", ts("2024-01-02T10:00:00Z"))
	nineteen := mkTicket(t, 11, alice, "1984", ts("2024-01-03T09:00:00Z"))
	great := mkReview(t, 20, dune.ID(), alice, "Great read", ts("2024-01-02T10:00:00Z"))

	got := Merge(
		TicketItems([]*ticket.Ticket{nineteen}),
		ReviewItems([]*review.Review{great}),
		ReviewItems(nil),
	)

	require.Len(t, got, 2)
	assert.Equal(t, KindTicket, got[0].Kind)
	assert.Equal(t, "1984", got[0].Ticket.Title())
	assert.Equal(t, KindReview, got[1].Kind)
	assert.Equal(t, "Great read", got[1].Review.Headline())
}

func TestMergeDeduplicatesByKindAndID(t *testing.T) {
	at := ts("2024-02-01T00:00:00Z")
	r := mkReview(t, 5, 1, 2, "dup", at)
	tk := mkTicket(t, 5, 1, "same id, other kind", at)

	got := Merge(
		ReviewItems([]*review.Review{r}),
		ReviewItems([]*review.Review{r}),
		TicketItems([]*ticket.Ticket{tk}),
	)

	require.Len(t, got, 2)
	seen := map[key]int{}
	for _, it := range got {
		seen[it.key()]++
	}
	for k, n := range seen {
		assert.Equal(t, 1, n, "%v", k)
	}
}

func TestMergeFirstOccurrenceWins(t *testing.T) {
	a := mkReview(t, 7, 1, 2, "first", ts("2024-02-01T00:00:00Z"))
	b := mkReview(t, 7, 1, 2, "second", ts("2024-02-01T00:00:00Z"))

	got := Merge(ReviewItems([]*review.Review{a}), ReviewItems([]*review.Review{b}))
	require.Len(t, got, 1)
	assert.Equal(t, "first", got[0].Review.Headline())
}

func TestMergeOrdering(t *testing.T) {
	same := ts("2024-03-01T12:00:00Z")
	items := Merge(
		TicketItems([]*ticket.Ticket{
			mkTicket(t, 1, 1, "old", ts("2024-01-01T00:00:00Z")),
			mkTicket(t, 2, 1, "tie-low-id", same),
			mkTicket(t, 9, 1, "tie-same-id", same),
		}),
		ReviewItems([]*review.Review{
			mkReview(t, 9, 1, 1, "tie-same-id-review", same),
			mkReview(t, 3, 1, 1, "newest", ts("2024-04-01T00:00:00Z")),
		}),
	)

	var order []string
	for _, it := range items {
		if it.Kind == KindTicket {
			order = append(order, it.Ticket.Title())
		} else {
			order = append(order, it.Review.Headline())
		}
	}
	assert.Equal(t, []string{"newest", "tie-same-id", "tie-same-id-review", "tie-low-id", "old"}, order)

	for i := 1; i < len(items); i++ {
		assert.False(t, items[i].CreatedAt.After(items[i-1].CreatedAt))
	}
}

func TestMergeEmpty(t *testing.T) {
	assert.Empty(t, Merge())
	assert.Empty(t, Merge(nil, nil))
}
