package review

import "context"

type Repository interface {
	Create(ctx context.Context, review *Review) error
	Delete(ctx context.Context, reviewID uint) error
	GetByID(ctx context.Context, reviewID uint) (*Review, error)
	// ListByAuthors returns reviews written by any of userIDs, newest first.
	ListByAuthors(ctx context.Context, userIDs []uint) ([]*Review, error)
	// ListOnTicketsOwnedBy returns reviews by anyone on tickets owned by ownerID.
	ListOnTicketsOwnedBy(ctx context.Context, ownerID uint) ([]*Review, error)
	DeleteByTicketID(ctx context.Context, ticketID uint) error
}
