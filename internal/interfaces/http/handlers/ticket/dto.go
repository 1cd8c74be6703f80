package ticket

import (
	"github.com/litrevu/litrevu/internal/application/ticket/dto"
)

type TicketInput struct {
	Title       string `form:"title" json:"title" validate:"notblank,max=128"`
	Description string `form:"description" json:"description" validate:"max=2048"`
}

func ticketInputFrom(t *dto.TicketDTO) TicketInput {
	return TicketInput{Title: t.Title, Description: t.Description}
}

type CommentInput struct {
	Body string `form:"body" json:"body" validate:"notblank,max=2048"`
}

type ReviewInput struct {
	TicketID uint   `form:"ticket_id" json:"ticket_id" validate:"required"`
	Rating   *int   `form:"rating" json:"rating" validate:"required,gte=0,lte=5"`
	Headline string `form:"headline" json:"headline" validate:"notblank,max=128"`
	Body     string `form:"body" json:"body" validate:"max=8192"`
}
