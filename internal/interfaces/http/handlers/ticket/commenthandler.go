package ticket

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/litrevu/litrevu/internal/application/ticket/dto"
	"github.com/litrevu/litrevu/internal/application/ticket/usecases"
	"github.com/litrevu/litrevu/internal/domain/permission"
	"github.com/litrevu/litrevu/internal/interfaces/http/forms"
	"github.com/litrevu/litrevu/internal/interfaces/http/handlers/common"
	"github.com/litrevu/litrevu/internal/shared/config"
	"github.com/litrevu/litrevu/internal/shared/logger"
	"github.com/litrevu/litrevu/internal/shared/utils"
)

const (
	commentFormTemplate   = "comment_form.html"
	commentDeleteTemplate = "comment_delete.html"
)

type CommentHandler struct {
	addCommentUC    usecases.AddCommentExecutor
	updateCommentUC usecases.UpdateCommentExecutor
	deleteCommentUC usecases.DeleteCommentExecutor
	getCommentUC    usecases.GetCommentExecutor
	getTicketUC     usecases.GetTicketExecutor
	cookieConfig    config.CookieConfig
	logger          logger.Interface
}

func NewCommentHandler(
	addCommentUC usecases.AddCommentExecutor,
	updateCommentUC usecases.UpdateCommentExecutor,
	deleteCommentUC usecases.DeleteCommentExecutor,
	getCommentUC usecases.GetCommentExecutor,
	getTicketUC usecases.GetTicketExecutor,
	cookieConfig config.CookieConfig,
	logger logger.Interface,
) *CommentHandler {
	return &CommentHandler{
		addCommentUC:    addCommentUC,
		updateCommentUC: updateCommentUC,
		deleteCommentUC: deleteCommentUC,
		getCommentUC:    getCommentUC,
		getTicketUC:     getTicketUC,
		cookieConfig:    cookieConfig,
		logger:          logger,
	}
}

func addCommentPage(ticket *dto.TicketDTO, form CommentInput) gin.H {
	return gin.H{
		"ticket":  ticket,
		"form":    form,
		"heading": "Add a comment",
		"action":  fmt.Sprintf("/add_comment?ticket_id=%d", ticket.ID),
	}
}

func editCommentPage(commentID uint, form CommentInput) gin.H {
	return gin.H{"form": form, "heading": "Edit your comment", "action": fmt.Sprintf("/edit_comment/%d", commentID)}
}

func (h *CommentHandler) loadTicket(c *gin.Context) (*dto.TicketDTO, error) {
	ticketID, err := utils.ParseIDQuery(c, "ticket_id", "ticket")
	if err != nil {
		return nil, err
	}
	return h.getTicketUC.Execute(c.Request.Context(), usecases.GetTicketQuery{
		ActorID:  common.ActorID(c),
		TicketID: ticketID,
	})
}

// AddCommentPage handles GET /add_comment?ticket_id=
func (h *CommentHandler) AddCommentPage(c *gin.Context) {
	ticket, err := h.loadTicket(c)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	common.Render(c, http.StatusOK, commentFormTemplate, addCommentPage(ticket, CommentInput{}))
}

// AddComment handles POST /add_comment
func (h *CommentHandler) AddComment(c *gin.Context) {
	ticket, err := h.loadTicket(c)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	var req CommentInput
	if err := c.ShouldBind(&req); err != nil {
		common.RespondFormErrors(c, commentFormTemplate, addCommentPage(ticket, CommentInput{}), common.BindError())
		return
	}
	if res := forms.Validate(req); !res.Valid() {
		common.RespondFormErrors(c, commentFormTemplate, addCommentPage(ticket, req), res.Errors())
		return
	}

	comment, err := h.addCommentUC.Execute(c.Request.Context(), usecases.AddCommentCommand{
		TicketID: ticket.ID,
		UserID:   common.ActorID(c),
		Body:     req.Body,
	})
	if err != nil {
		common.HandleFormError(c, commentFormTemplate, addCommentPage(ticket, req), err)
		return
	}

	if utils.WantsJSON(c) {
		utils.CreatedResponse(c, comment, "Comment added successfully")
		return
	}
	common.RedirectWithFlash(c, h.cookieConfig, "/", "Your comment has been added.")
}

// EditCommentPage handles GET /edit_comment/:id
func (h *CommentHandler) EditCommentPage(c *gin.Context) {
	commentID, err := utils.ParseIDParam(c, "id", "comment")
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	comment, err := h.getCommentUC.Execute(c.Request.Context(), usecases.GetCommentQuery{
		ActorID:   common.ActorID(c),
		CommentID: commentID,
		ForAction: permission.ActionEdit,
	})
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	if utils.WantsJSON(c) {
		utils.SuccessResponse(c, http.StatusOK, "", comment)
		return
	}
	page := editCommentPage(commentID, CommentInput{Body: comment.Body})
	page["comment"] = comment
	common.Render(c, http.StatusOK, commentFormTemplate, page)
}

// UpdateComment handles POST /edit_comment/:id
func (h *CommentHandler) UpdateComment(c *gin.Context) {
	commentID, err := utils.ParseIDParam(c, "id", "comment")
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	var req CommentInput
	if err := c.ShouldBind(&req); err != nil {
		common.RespondFormErrors(c, commentFormTemplate, editCommentPage(commentID, CommentInput{}), common.BindError())
		return
	}
	if res := forms.Validate(req); !res.Valid() {
		common.RespondFormErrors(c, commentFormTemplate, editCommentPage(commentID, req), res.Errors())
		return
	}

	comment, err := h.updateCommentUC.Execute(c.Request.Context(), usecases.UpdateCommentCommand{
		ActorID:   common.ActorID(c),
		CommentID: commentID,
		Body:      req.Body,
	})
	if err != nil {
		common.HandleFormError(c, commentFormTemplate, editCommentPage(commentID, req), err)
		return
	}

	if utils.WantsJSON(c) {
		utils.SuccessResponse(c, http.StatusOK, "Comment updated successfully", comment)
		return
	}
	common.RedirectWithFlash(c, h.cookieConfig, "/", "Your comment has been updated.")
}

// DeleteCommentPage handles GET /delete_comment/:id
func (h *CommentHandler) DeleteCommentPage(c *gin.Context) {
	commentID, err := utils.ParseIDParam(c, "id", "comment")
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	comment, err := h.getCommentUC.Execute(c.Request.Context(), usecases.GetCommentQuery{
		ActorID:   common.ActorID(c),
		CommentID: commentID,
		ForAction: permission.ActionDelete,
	})
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	if utils.WantsJSON(c) {
		utils.SuccessResponse(c, http.StatusOK, "", comment)
		return
	}
	common.Render(c, http.StatusOK, commentDeleteTemplate, gin.H{"comment": comment})
}

// DeleteComment handles POST /delete_comment/:id
func (h *CommentHandler) DeleteComment(c *gin.Context) {
	commentID, err := utils.ParseIDParam(c, "id", "comment")
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	if err := h.deleteCommentUC.Execute(c.Request.Context(), usecases.DeleteCommentCommand{
		ActorID:   common.ActorID(c),
		CommentID: commentID,
	}); err != nil {
		utils.RespondError(c, err)
		return
	}

	if utils.WantsJSON(c) {
		utils.SuccessResponse(c, http.StatusOK, "Comment deleted successfully", nil)
		return
	}
	common.RedirectWithFlash(c, h.cookieConfig, "/", "Your comment has been deleted.")
}
