// Package review holds rated responses to tickets.
package review

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/litrevu/litrevu/internal/domain/permission"
	"github.com/litrevu/litrevu/internal/shared/biztime"
	"github.com/litrevu/litrevu/internal/shared/constants"
)

type Review struct {
	id        uint
	ticketID  uint
	userID    uint
	rating    int
	headline  string
	body      string
	createdAt time.Time
}

func NewReview(ticketID, userID uint, rating int, headline, body string) (*Review, error) {
	if ticketID == 0 {
		return nil, fmt.Errorf("ticket ID is required")
	}
	if userID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}
	if err := ValidateRating(rating); err != nil {
		return nil, err
	}
	headline = strings.TrimSpace(headline)
	if headline == "" {
		return nil, fmt.Errorf("headline is required")
	}
	if utf8.RuneCountInString(headline) > constants.MaxTitleLength {
		return nil, fmt.Errorf("headline exceeds maximum length of %d characters", constants.MaxTitleLength)
	}
	body = strings.TrimSpace(body)
	if utf8.RuneCountInString(body) > constants.MaxReviewBodyLength {
		return nil, fmt.Errorf("body exceeds maximum length of %d characters", constants.MaxReviewBodyLength)
	}

	return &Review{
		ticketID:  ticketID,
		userID:    userID,
		rating:    rating,
		headline:  headline,
		body:      body,
		createdAt: biztime.NowUTC(),
	}, nil
}

func ReconstructReview(id, ticketID, userID uint, rating int, headline, body string, createdAt time.Time) (*Review, error) {
	if id == 0 {
		return nil, fmt.Errorf("review ID cannot be zero")
	}
	if err := ValidateRating(rating); err != nil {
		return nil, err
	}

	return &Review{
		id:        id,
		ticketID:  ticketID,
		userID:    userID,
		rating:    rating,
		headline:  headline,
		body:      body,
		createdAt: createdAt,
	}, nil
}

// ValidateRating enforces the inclusive 0..5 range.
func ValidateRating(rating int) error {
	if rating < constants.MinRating || rating > constants.MaxRating {
		return fmt.Errorf("rating must be between %d and %d", constants.MinRating, constants.MaxRating)
	}
	return nil
}

func (r *Review) ID() uint             { return r.id }
func (r *Review) TicketID() uint       { return r.ticketID }
func (r *Review) UserID() uint         { return r.userID }
func (r *Review) Rating() int          { return r.rating }
func (r *Review) Headline() string     { return r.headline }
func (r *Review) Body() string         { return r.body }
func (r *Review) CreatedAt() time.Time { return r.createdAt }

func (r *Review) OwnerID() uint {
	return r.userID
}

func (r *Review) ResourceKind() string {
	return permission.ResourceReview
}

func (r *Review) SetID(id uint) error {
	if r.id != 0 {
		return fmt.Errorf("review ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("review ID cannot be zero")
	}
	r.id = id
	return nil
}
