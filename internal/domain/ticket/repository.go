package ticket

import "context"

type TicketRepository interface {
	Create(ctx context.Context, ticket *Ticket) error
	Update(ctx context.Context, ticket *Ticket) error
	Delete(ctx context.Context, ticketID uint) error
	GetByID(ctx context.Context, ticketID uint) (*Ticket, error)
	// GetByIDs returns the tickets found, keyed by id; missing ids are absent.
	GetByIDs(ctx context.Context, ticketIDs []uint) (map[uint]*Ticket, error)
	// ListByAuthors returns tickets written by any of userIDs, newest first.
	ListByAuthors(ctx context.Context, userIDs []uint) ([]*Ticket, error)
}

type CommentRepository interface {
	Create(ctx context.Context, comment *Comment) error
	Update(ctx context.Context, comment *Comment) error
	Delete(ctx context.Context, commentID uint) error
	GetByID(ctx context.Context, commentID uint) (*Comment, error)
	// ListByTicketIDs returns comments grouped by ticket in ascending creation order.
	ListByTicketIDs(ctx context.Context, ticketIDs []uint) (map[uint][]*Comment, error)
	DeleteByTicketID(ctx context.Context, ticketID uint) error
}
