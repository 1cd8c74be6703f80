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

type Comment struct {
	id        uint
	ticketID  uint
	userID    uint
	body      string
	createdAt time.Time
	updatedAt time.Time
}

func NewComment(ticketID, userID uint, body string) (*Comment, error) {
	if ticketID == 0 {
		return nil, fmt.Errorf("ticket ID is required")
	}
	if userID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}
	body, err := normalizeBody(body)
	if err != nil {
		return nil, err
	}

	now := biztime.NowUTC()
	return &Comment{
		ticketID:  ticketID,
		userID:    userID,
		body:      body,
		createdAt: now,
		updatedAt: now,
	}, nil
}

func ReconstructComment(id, ticketID, userID uint, body string, createdAt, updatedAt time.Time) (*Comment, error) {
	if id == 0 {
		return nil, fmt.Errorf("comment ID cannot be zero")
	}
	if ticketID == 0 {
		return nil, fmt.Errorf("ticket ID is required")
	}
	if userID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}

	return &Comment{
		id:        id,
		ticketID:  ticketID,
		userID:    userID,
		body:      body,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}, nil
}

func normalizeBody(body string) (string, error) {
	body = strings.TrimSpace(body)
	if body == "" {
		return "", fmt.Errorf("comment cannot be empty")
	}
	if utf8.RuneCountInString(body) > constants.MaxCommentLength {
		return "", fmt.Errorf("comment exceeds maximum length of %d characters", constants.MaxCommentLength)
	}
	return body, nil
}

func (c *Comment) ID() uint {
	return c.id
}

func (c *Comment) TicketID() uint {
	return c.ticketID
}

func (c *Comment) UserID() uint {
	return c.userID
}

func (c *Comment) Body() string {
	return c.body
}

func (c *Comment) CreatedAt() time.Time {
	return c.createdAt
}

func (c *Comment) UpdatedAt() time.Time {
	return c.updatedAt
}

func (c *Comment) OwnerID() uint {
	return c.userID
}

func (c *Comment) ResourceKind() string {
	return permission.ResourceComment
}

func (c *Comment) SetID(id uint) error {
	if c.id != 0 {
		return fmt.Errorf("comment ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("comment ID cannot be zero")
	}
	c.id = id
	return nil
}

func (c *Comment) Edit(body string) error {
	body, err := normalizeBody(body)
	if err != nil {
		return err
	}
	c.body = body
	c.updatedAt = biztime.NowUTC()
	return nil
}
