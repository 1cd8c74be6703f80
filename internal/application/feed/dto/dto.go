package dto

import (
	"time"

	ticketdto "github.com/litrevu/litrevu/internal/application/ticket/dto"
	"github.com/litrevu/litrevu/internal/domain/feed"
)

// FeedItemDTO is one post of the feed. Exactly one of Ticket and Review is set.
type FeedItemDTO struct {
	Kind      feed.Kind            `json:"content_type"`
	ID        uint                 `json:"id"`
	CreatedAt time.Time            `json:"created_at"`
	Ticket    *ticketdto.TicketDTO `json:"ticket,omitempty"`
	Review    *ticketdto.ReviewDTO `json:"review,omitempty"`
}

func (i FeedItemDTO) IsTicket() bool { return i.Kind == feed.KindTicket }
func (i FeedItemDTO) IsReview() bool { return i.Kind == feed.KindReview }
