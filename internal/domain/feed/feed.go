// Package feed merges tickets and reviews into one reverse-chronological list.
package feed

import (
	"slices"
	"time"

	"github.com/litrevu/litrevu/internal/domain/review"
	"github.com/litrevu/litrevu/internal/domain/ticket"
)

// Kind tells which entity a feed item carries.
type Kind string

const (
	KindTicket Kind = "TICKET"
	KindReview Kind = "REVIEW"
)

// Item is a tagged union: exactly one of Ticket or Review is set, matching Kind.
type Item struct {
	Kind      Kind
	ID        uint
	CreatedAt time.Time
	Ticket    *ticket.Ticket
	Review    *review.Review
}

type key struct {
	kind Kind
	id   uint
}

func (i Item) key() key {
	return key{kind: i.Kind, id: i.ID}
}

// TicketItems wraps tickets as TICKET items.
func TicketItems(tickets []*ticket.Ticket) []Item {
	items := make([]Item, 0, len(tickets))
	for _, t := range tickets {
		items = append(items, Item{Kind: KindTicket, ID: t.ID(), CreatedAt: t.CreatedAt(), Ticket: t})
	}
	return items
}

// ReviewItems wraps reviews as REVIEW items.
func ReviewItems(reviews []*review.Review) []Item {
	items := make([]Item, 0, len(reviews))
	for _, r := range reviews {
		items = append(items, Item{Kind: KindReview, ID: r.ID(), CreatedAt: r.CreatedAt(), Review: r})
	}
	return items
}

// Audience is the set of authors whose content self may see: self first,
// then each followed id once.
func Audience(self uint, followed []uint) []uint {
	out := make([]uint, 0, len(followed)+1)
	seen := make(map[uint]struct{}, len(followed)+1)
	for _, id := range append([]uint{self}, followed...) {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

// Merge concatenates sources, keeps the first occurrence of each (kind, id)
// and orders the result newest first. Equal timestamps fall back to id
// descending, then tickets before reviews, so the order is total.
func Merge(sources ...[]Item) []Item {
	total := 0
	for _, s := range sources {
		total += len(s)
	}

	out := make([]Item, 0, total)
	seen := make(map[key]struct{}, total)
	for _, s := range sources {
		for _, it := range s {
			k := it.key()
			if _, dup := seen[k]; dup {
				continue
			}
			seen[k] = struct{}{}
			out = append(out, it)
		}
	}

	slices.SortFunc(out, compare)
	return out
}

func compare(a, b Item) int {
	if c := b.CreatedAt.Compare(a.CreatedAt); c != 0 {
		return c
	}
	if a.ID != b.ID {
		if a.ID > b.ID {
			return -1
		}
		return 1
	}
	return kindRank(a.Kind) - kindRank(b.Kind)
}

func kindRank(k Kind) int {
	if k == KindTicket {
		return 0
	}
	return 1
}
