package dto

import (
	"html/template"
	"time"

	"github.com/litrevu/litrevu/internal/domain/review"
	"github.com/litrevu/litrevu/internal/domain/ticket"
)

// MarkdownRenderer turns user-authored markdown into sanitized HTML.
type MarkdownRenderer interface {
	Render(markdown string) template.HTML
}

type TicketDTO struct {
	ID              uint          `json:"id"`
	UserID          uint          `json:"user_id"`
	Username        string        `json:"username"`
	Title           string        `json:"title"`
	Description     string        `json:"description"`
	DescriptionHTML template.HTML `json:"description_html"`
	CreatedAt       time.Time     `json:"created_at"`
	UpdatedAt       time.Time     `json:"updated_at"`
	CanEdit         bool          `json:"can_edit"`
	Comments        []CommentDTO  `json:"comments"`
}

type CommentDTO struct {
	ID        uint          `json:"id"`
	TicketID  uint          `json:"ticket_id"`
	UserID    uint          `json:"user_id"`
	Username  string        `json:"username"`
	Body      string        `json:"body"`
	BodyHTML  template.HTML `json:"body_html"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
	CanEdit   bool          `json:"can_edit"`
}

// TicketSummaryDTO is the parent ticket shown above a review.
type TicketSummaryDTO struct {
	ID       uint   `json:"id"`
	UserID   uint   `json:"user_id"`
	Username string `json:"username"`
	Title    string `json:"title"`
}

type ReviewDTO struct {
	ID        uint              `json:"id"`
	TicketID  uint              `json:"ticket_id"`
	UserID    uint              `json:"user_id"`
	Username  string            `json:"username"`
	Rating    int               `json:"rating"`
	Headline  string            `json:"headline"`
	Body      string            `json:"body"`
	BodyHTML  template.HTML     `json:"body_html"`
	CreatedAt time.Time         `json:"created_at"`
	CanEdit   bool              `json:"can_edit"`
	Ticket    *TicketSummaryDTO `json:"ticket,omitempty"`
}

// ToTicketDTO converts t for viewerID. usernames maps user ids to names and
// may be nil.
func ToTicketDTO(t *ticket.Ticket, comments []*ticket.Comment, usernames map[uint]string, md MarkdownRenderer, viewerID uint) *TicketDTO {
	if t == nil {
		return nil
	}

	commentDTOs := make([]CommentDTO, 0, len(comments))
	for _, c := range comments {
		commentDTOs = append(commentDTOs, *ToCommentDTO(c, usernames, md, viewerID))
	}

	return &TicketDTO{
		ID:              t.ID(),
		UserID:          t.UserID(),
		Username:        usernames[t.UserID()],
		Title:           t.Title(),
		Description:     t.Description(),
		DescriptionHTML: render(md, t.Description()),
		CreatedAt:       t.CreatedAt(),
		UpdatedAt:       t.UpdatedAt(),
		CanEdit:         viewerID != 0 && viewerID == t.OwnerID(),
		Comments:        commentDTOs,
	}
}

func ToCommentDTO(c *ticket.Comment, usernames map[uint]string, md MarkdownRenderer, viewerID uint) *CommentDTO {
	if c == nil {
		return nil
	}
	return &CommentDTO{
		ID:        c.ID(),
		TicketID:  c.TicketID(),
		UserID:    c.UserID(),
		Username:  usernames[c.UserID()],
		Body:      c.Body(),
		BodyHTML:  render(md, c.Body()),
		CreatedAt: c.CreatedAt(),
		UpdatedAt: c.UpdatedAt(),
		CanEdit:   viewerID != 0 && viewerID == c.OwnerID(),
	}
}

// ToReviewDTO converts r; parent may be nil when the ticket is gone.
func ToReviewDTO(r *review.Review, parent *ticket.Ticket, usernames map[uint]string, md MarkdownRenderer, viewerID uint) *ReviewDTO {
	if r == nil {
		return nil
	}
	out := &ReviewDTO{
		ID:        r.ID(),
		TicketID:  r.TicketID(),
		UserID:    r.UserID(),
		Username:  usernames[r.UserID()],
		Rating:    r.Rating(),
		Headline:  r.Headline(),
		Body:      r.Body(),
		BodyHTML:  render(md, r.Body()),
		CreatedAt: r.CreatedAt(),
		CanEdit:   viewerID != 0 && viewerID == r.OwnerID(),
	}
	if parent != nil {
		out.Ticket = &TicketSummaryDTO{
			ID:       parent.ID(),
			UserID:   parent.UserID(),
			Username: usernames[parent.UserID()],
			Title:    parent.Title(),
		}
	}
	return out
}

func render(md MarkdownRenderer, source string) template.HTML {
	if md == nil || source == "" {
		return ""
	}
	return md.Render(source)
}
