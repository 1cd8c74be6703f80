package ticket

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/litrevu/litrevu/internal/application/ticket/usecases"
	"github.com/litrevu/litrevu/internal/domain/permission"
	"github.com/litrevu/litrevu/internal/interfaces/http/forms"
	"github.com/litrevu/litrevu/internal/interfaces/http/handlers/common"
	"github.com/litrevu/litrevu/internal/shared/config"
	"github.com/litrevu/litrevu/internal/shared/logger"
	"github.com/litrevu/litrevu/internal/shared/utils"
)

const (
	ticketFormTemplate   = "ticket_form.html"
	ticketDeleteTemplate = "ticket_delete.html"
)

type TicketHandler struct {
	createTicketUC usecases.CreateTicketExecutor
	updateTicketUC usecases.UpdateTicketExecutor
	deleteTicketUC usecases.DeleteTicketExecutor
	getTicketUC    usecases.GetTicketExecutor
	cookieConfig   config.CookieConfig
	logger         logger.Interface
}

func NewTicketHandler(
	createTicketUC usecases.CreateTicketExecutor,
	updateTicketUC usecases.UpdateTicketExecutor,
	deleteTicketUC usecases.DeleteTicketExecutor,
	getTicketUC usecases.GetTicketExecutor,
	cookieConfig config.CookieConfig,
	logger logger.Interface,
) *TicketHandler {
	return &TicketHandler{
		createTicketUC: createTicketUC,
		updateTicketUC: updateTicketUC,
		deleteTicketUC: deleteTicketUC,
		getTicketUC:    getTicketUC,
		cookieConfig:   cookieConfig,
		logger:         logger,
	}
}

func newTicketPage(form TicketInput) gin.H {
	return gin.H{"form": form, "heading": "Request a review", "action": "/ticket/add"}
}

func editTicketPage(ticketID uint, form TicketInput) gin.H {
	return gin.H{"form": form, "heading": "Edit your ticket", "action": fmt.Sprintf("/ticket/%d/edit", ticketID)}
}

// NewTicketPage handles GET /ticket/add
func (h *TicketHandler) NewTicketPage(c *gin.Context) {
	common.Render(c, http.StatusOK, ticketFormTemplate, newTicketPage(TicketInput{}))
}

// CreateTicket handles POST /ticket/add
func (h *TicketHandler) CreateTicket(c *gin.Context) {
	var req TicketInput
	if err := c.ShouldBind(&req); err != nil {
		h.logger.Warnw("invalid request body for create ticket", "error", err)
		common.RespondFormErrors(c, ticketFormTemplate, newTicketPage(TicketInput{}), common.BindError())
		return
	}
	if res := forms.Validate(req); !res.Valid() {
		common.RespondFormErrors(c, ticketFormTemplate, newTicketPage(req), res.Errors())
		return
	}

	result, err := h.createTicketUC.Execute(c.Request.Context(), usecases.CreateTicketCommand{
		UserID:      common.ActorID(c),
		Title:       req.Title,
		Description: req.Description,
	})
	if err != nil {
		common.HandleFormError(c, ticketFormTemplate, newTicketPage(req), err)
		return
	}

	if utils.WantsJSON(c) {
		utils.CreatedResponse(c, result, "Ticket created successfully")
		return
	}
	common.RedirectWithFlash(c, h.cookieConfig, "/", "Your ticket has been published.")
}

// EditTicketPage handles GET /ticket/:id/edit
func (h *TicketHandler) EditTicketPage(c *gin.Context) {
	ticketID, err := utils.ParseIDParam(c, "id", "ticket")
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	ticket, err := h.getTicketUC.Execute(c.Request.Context(), usecases.GetTicketQuery{
		ActorID:   common.ActorID(c),
		TicketID:  ticketID,
		ForAction: permission.ActionEdit,
	})
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	if utils.WantsJSON(c) {
		utils.SuccessResponse(c, http.StatusOK, "", ticket)
		return
	}
	page := editTicketPage(ticketID, ticketInputFrom(ticket))
	page["ticket"] = ticket
	common.Render(c, http.StatusOK, ticketFormTemplate, page)
}

// UpdateTicket handles POST /ticket/:id/edit
func (h *TicketHandler) UpdateTicket(c *gin.Context) {
	ticketID, err := utils.ParseIDParam(c, "id", "ticket")
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	var req TicketInput
	if err := c.ShouldBind(&req); err != nil {
		common.RespondFormErrors(c, ticketFormTemplate, editTicketPage(ticketID, TicketInput{}), common.BindError())
		return
	}
	if res := forms.Validate(req); !res.Valid() {
		common.RespondFormErrors(c, ticketFormTemplate, editTicketPage(ticketID, req), res.Errors())
		return
	}

	ticket, err := h.updateTicketUC.Execute(c.Request.Context(), usecases.UpdateTicketCommand{
		ActorID:     common.ActorID(c),
		TicketID:    ticketID,
		Title:       req.Title,
		Description: req.Description,
	})
	if err != nil {
		common.HandleFormError(c, ticketFormTemplate, editTicketPage(ticketID, req), err)
		return
	}

	if utils.WantsJSON(c) {
		utils.SuccessResponse(c, http.StatusOK, "Ticket updated successfully", ticket)
		return
	}
	common.RedirectWithFlash(c, h.cookieConfig, "/", "Your ticket has been updated.")
}

// DeleteTicketPage handles GET /ticket/:id/delete
func (h *TicketHandler) DeleteTicketPage(c *gin.Context) {
	ticketID, err := utils.ParseIDParam(c, "id", "ticket")
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	ticket, err := h.getTicketUC.Execute(c.Request.Context(), usecases.GetTicketQuery{
		ActorID:   common.ActorID(c),
		TicketID:  ticketID,
		ForAction: permission.ActionDelete,
	})
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	if utils.WantsJSON(c) {
		utils.SuccessResponse(c, http.StatusOK, "", ticket)
		return
	}
	common.Render(c, http.StatusOK, ticketDeleteTemplate, gin.H{"ticket": ticket})
}

// DeleteTicket handles POST /ticket/:id/delete
func (h *TicketHandler) DeleteTicket(c *gin.Context) {
	ticketID, err := utils.ParseIDParam(c, "id", "ticket")
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	if err := h.deleteTicketUC.Execute(c.Request.Context(), usecases.DeleteTicketCommand{
		ActorID:  common.ActorID(c),
		TicketID: ticketID,
	}); err != nil {
		utils.RespondError(c, err)
		return
	}

	if utils.WantsJSON(c) {
		utils.SuccessResponse(c, http.StatusOK, "Ticket deleted successfully", nil)
		return
	}
	common.RedirectWithFlash(c, h.cookieConfig, "/", "Your ticket has been deleted.")
}
