package ticket

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/litrevu/litrevu/internal/application/ticket/dto"
	"github.com/litrevu/litrevu/internal/application/ticket/usecases"
	"github.com/litrevu/litrevu/internal/interfaces/http/forms"
	"github.com/litrevu/litrevu/internal/interfaces/http/handlers/common"
	"github.com/litrevu/litrevu/internal/shared/config"
	"github.com/litrevu/litrevu/internal/shared/logger"
	"github.com/litrevu/litrevu/internal/shared/utils"
)

const reviewFormTemplate = "review_form.html"

type ReviewHandler struct {
	createReviewUC usecases.CreateReviewExecutor
	deleteReviewUC usecases.DeleteReviewExecutor
	getTicketUC    usecases.GetTicketExecutor
	cookieConfig   config.CookieConfig
	logger         logger.Interface
}

func NewReviewHandler(
	createReviewUC usecases.CreateReviewExecutor,
	deleteReviewUC usecases.DeleteReviewExecutor,
	getTicketUC usecases.GetTicketExecutor,
	cookieConfig config.CookieConfig,
	logger logger.Interface,
) *ReviewHandler {
	return &ReviewHandler{
		createReviewUC: createReviewUC,
		deleteReviewUC: deleteReviewUC,
		getTicketUC:    getTicketUC,
		cookieConfig:   cookieConfig,
		logger:         logger,
	}
}

func reviewPage(ticket *dto.TicketDTO, form ReviewInput) gin.H {
	page := gin.H{"form": form}
	if ticket != nil {
		page["ticket"] = ticket
	}
	return page
}

// NewReviewPage handles GET /review/add?ticket_id=
func (h *ReviewHandler) NewReviewPage(c *gin.Context) {
	ticketID, err := utils.ParseIDQuery(c, "ticket_id", "ticket")
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	ticket, err := h.getTicketUC.Execute(c.Request.Context(), usecases.GetTicketQuery{
		ActorID:  common.ActorID(c),
		TicketID: ticketID,
	})
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	common.Render(c, http.StatusOK, reviewFormTemplate, reviewPage(ticket, ReviewInput{TicketID: ticket.ID}))
}

// CreateReview handles POST /review/add
func (h *ReviewHandler) CreateReview(c *gin.Context) {
	var req ReviewInput
	if err := c.ShouldBind(&req); err != nil {
		h.logger.Warnw("invalid request body for create review", "error", err)
		common.RespondFormErrors(c, reviewFormTemplate, h.formPage(c, req), forms.FieldErrors{
			forms.NonFieldErrors: "The submitted data is invalid.",
			"rating":             "Enter a whole number.",
		})
		return
	}
	if res := forms.Validate(req); !res.Valid() {
		common.RespondFormErrors(c, reviewFormTemplate, h.formPage(c, req), res.Errors())
		return
	}

	review, err := h.createReviewUC.Execute(c.Request.Context(), usecases.CreateReviewCommand{
		TicketID: req.TicketID,
		UserID:   common.ActorID(c),
		Rating:   *req.Rating,
		Headline: req.Headline,
		Body:     req.Body,
	})
	if err != nil {
		common.HandleFormError(c, reviewFormTemplate, h.formPage(c, req), err)
		return
	}

	if utils.WantsJSON(c) {
		utils.CreatedResponse(c, review, "Review published successfully")
		return
	}
	common.RedirectWithFlash(c, h.cookieConfig, "/", "Your review has been published.")
}

// formPage reloads the parent ticket for a re-rendered form. The form can
// still be shown without it.
func (h *ReviewHandler) formPage(c *gin.Context, form ReviewInput) gin.H {
	var ticket *dto.TicketDTO
	if form.TicketID != 0 && !utils.WantsJSON(c) {
		t, err := h.getTicketUC.Execute(c.Request.Context(), usecases.GetTicketQuery{
			ActorID:  common.ActorID(c),
			TicketID: form.TicketID,
		})
		if err == nil {
			ticket = t
		}
	}
	return reviewPage(ticket, form)
}

// DeleteReview handles POST /review/:id/delete
func (h *ReviewHandler) DeleteReview(c *gin.Context) {
	reviewID, err := utils.ParseIDParam(c, "id", "review")
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	if err := h.deleteReviewUC.Execute(c.Request.Context(), usecases.DeleteReviewCommand{
		ActorID:  common.ActorID(c),
		ReviewID: reviewID,
	}); err != nil {
		utils.RespondError(c, err)
		return
	}

	if utils.WantsJSON(c) {
		utils.SuccessResponse(c, http.StatusOK, "Review deleted successfully", nil)
		return
	}
	common.RedirectWithFlash(c, h.cookieConfig, "/", "Your review has been deleted.")
}
