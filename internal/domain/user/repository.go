package user

import "context"

// Repository defines the interface for user data operations
type Repository interface {
	// Create creates a new user
	Create(ctx context.Context, user *User) error

	// GetByID retrieves a user by ID
	GetByID(ctx context.Context, id uint) (*User, error)

	// GetByUsername retrieves a user by its normalized username
	GetByUsername(ctx context.Context, username string) (*User, error)

	// GetUsernames maps each known id to its username
	GetUsernames(ctx context.Context, ids []uint) (map[uint]string, error)

	// ExistsByUsername checks if a username is taken
	ExistsByUsername(ctx context.Context, username string) (bool, error)

	// ExistsByEmail checks if an email is taken
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}
