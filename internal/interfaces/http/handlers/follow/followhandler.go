// Package follow serves the subscriptions page.
package follow

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/litrevu/litrevu/internal/application/follow/dto"
	"github.com/litrevu/litrevu/internal/application/follow/usecases"
	domainfollow "github.com/litrevu/litrevu/internal/domain/follow"
	"github.com/litrevu/litrevu/internal/interfaces/http/forms"
	"github.com/litrevu/litrevu/internal/interfaces/http/handlers/common"
	"github.com/litrevu/litrevu/internal/shared/config"
	"github.com/litrevu/litrevu/internal/shared/logger"
	"github.com/litrevu/litrevu/internal/shared/utils"
)

const followsTemplate = "follows.html"

type FollowInput struct {
	Username string `form:"username" json:"username" validate:"notblank,max=150"`
}

type FollowHandler struct {
	addFollowUC    usecases.AddFollowExecutor
	removeFollowUC usecases.RemoveFollowExecutor
	listFollowsUC  usecases.ListFollowsExecutor
	cookieConfig   config.CookieConfig
	logger         logger.Interface
}

func NewFollowHandler(
	addFollowUC usecases.AddFollowExecutor,
	removeFollowUC usecases.RemoveFollowExecutor,
	listFollowsUC usecases.ListFollowsExecutor,
	cookieConfig config.CookieConfig,
	logger logger.Interface,
) *FollowHandler {
	return &FollowHandler{
		addFollowUC:    addFollowUC,
		removeFollowUC: removeFollowUC,
		listFollowsUC:  listFollowsUC,
		cookieConfig:   cookieConfig,
		logger:         logger,
	}
}

// ListFollows handles GET /follows
func (h *FollowHandler) ListFollows(c *gin.Context) {
	follows, err := h.list(c)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	if utils.WantsJSON(c) {
		utils.SuccessResponse(c, http.StatusOK, "", follows)
		return
	}
	common.Render(c, http.StatusOK, followsTemplate, followsPage(follows, FollowInput{}))
}

// AddFollow handles POST /follows/add
func (h *FollowHandler) AddFollow(c *gin.Context) {
	var req FollowInput
	if err := c.ShouldBind(&req); err != nil {
		h.logger.Warnw("invalid request body for add follow", "error", err)
		h.formErrors(c, req, common.BindError())
		return
	}
	if res := forms.Validate(req); !res.Valid() {
		h.formErrors(c, req, res.Errors())
		return
	}

	result, err := h.addFollowUC.Execute(c.Request.Context(), usecases.AddFollowCommand{
		FollowerID: common.ActorID(c),
		Username:   req.Username,
	})
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	if utils.WantsJSON(c) {
		c.JSON(result.Outcome.HTTPStatus(), utils.APIResponse{
			Success: result.Outcome == domainfollow.OutcomeOK,
			Data:    result,
			Message: result.Message,
		})
		return
	}
	common.RedirectWithFlash(c, h.cookieConfig, "/follows", result.Message)
}

// RemoveFollow handles POST /follows/remove/:id
func (h *FollowHandler) RemoveFollow(c *gin.Context) {
	edgeID, err := utils.ParseIDParam(c, "id", "follow")
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	if err := h.removeFollowUC.Execute(c.Request.Context(), usecases.RemoveFollowCommand{
		FollowerID: common.ActorID(c),
		EdgeID:     edgeID,
	}); err != nil {
		utils.RespondError(c, err)
		return
	}

	if utils.WantsJSON(c) {
		utils.SuccessResponse(c, http.StatusOK, "Unfollowed successfully", nil)
		return
	}
	common.RedirectWithFlash(c, h.cookieConfig, "/follows", "You have unfollowed this user.")
}

func (h *FollowHandler) list(c *gin.Context) (*dto.FollowsDTO, error) {
	return h.listFollowsUC.Execute(c.Request.Context(), usecases.ListFollowsQuery{
		UserID: common.ActorID(c),
	})
}

// formErrors re-renders the page with the current lists under the form.
func (h *FollowHandler) formErrors(c *gin.Context, req FollowInput, errs forms.FieldErrors) {
	if utils.WantsJSON(c) {
		utils.FieldErrorResponse(c, errs)
		return
	}
	follows, err := h.list(c)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	common.RespondFormErrors(c, followsTemplate, followsPage(follows, req), errs)
}

func followsPage(follows *dto.FollowsDTO, form FollowInput) gin.H {
	return gin.H{
		"followed_users": follows.Following,
		"followers":      follows.Followers,
		"form":           form,
	}
}
