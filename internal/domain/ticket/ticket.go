package ticket

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/litrevu/litrevu/internal/domain/permission"
	"github.com/litrevu/litrevu/internal/shared/biztime"
	"github.com/litrevu/litrevu/internal/shared/constants"
)

// Ticket is a request for a review.
type Ticket struct {
	id          uint
	userID      uint
	title       string
	description string
	createdAt   time.Time
	updatedAt   time.Time
}

func NewTicket(userID uint, title, description string) (*Ticket, error) {
	if userID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}
	title, description, err := normalizeContent(title, description)
	if err != nil {
		return nil, err
	}

	now := biztime.NowUTC()
	return &Ticket{
		userID:      userID,
		title:       title,
		description: description,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

func ReconstructTicket(id, userID uint, title, description string, createdAt, updatedAt time.Time) (*Ticket, error) {
	if id == 0 {
		return nil, fmt.Errorf("ticket ID cannot be zero")
	}
	if userID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}

	return &Ticket{
		id:          id,
		userID:      userID,
		title:       title,
		description: description,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}, nil
}

func normalizeContent(title, description string) (string, string, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return "", "", fmt.Errorf("title is required")
	}
	if utf8.RuneCountInString(title) > constants.MaxTitleLength {
		return "", "", fmt.Errorf("title exceeds maximum length of %d characters", constants.MaxTitleLength)
	}
	description = strings.TrimSpace(description)
	if utf8.RuneCountInString(description) > constants.MaxDescriptionLength {
		return "", "", fmt.Errorf("description exceeds maximum length of %d characters", constants.MaxDescriptionLength)
	}
	return title, description, nil
}

func (t *Ticket) ID() uint {
	return t.id
}

func (t *Ticket) UserID() uint {
	return t.userID
}

func (t *Ticket) Title() string {
	return t.title
}

func (t *Ticket) Description() string {
	return t.description
}

func (t *Ticket) CreatedAt() time.Time {
	return t.createdAt
}

func (t *Ticket) UpdatedAt() time.Time {
	return t.updatedAt
}

func (t *Ticket) OwnerID() uint {
	return t.userID
}

func (t *Ticket) ResourceKind() string {
	return permission.ResourceTicket
}

func (t *Ticket) SetID(id uint) error {
	if t.id != 0 {
		return fmt.Errorf("ticket ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("ticket ID cannot be zero")
	}
	t.id = id
	return nil
}

// Edit replaces title and description. Owner and creation time never change.
func (t *Ticket) Edit(title, description string) error {
	title, description, err := normalizeContent(title, description)
	if err != nil {
		return err
	}
	t.title = title
	t.description = description
	t.updatedAt = biztime.NowUTC()
	return nil
}
