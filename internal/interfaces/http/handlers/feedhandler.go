package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	feedUsecases "github.com/litrevu/litrevu/internal/application/feed/usecases"
	"github.com/litrevu/litrevu/internal/interfaces/http/handlers/common"
	"github.com/litrevu/litrevu/internal/interfaces/http/middleware"
	"github.com/litrevu/litrevu/internal/shared/utils"
)

type FeedHandler struct {
	buildFeedUseCase feedUsecases.BuildFeedExecutor
}

func NewFeedHandler(buildFeedUC feedUsecases.BuildFeedExecutor) *FeedHandler {
	return &FeedHandler{buildFeedUseCase: buildFeedUC}
}

// Feed handles GET /
func (h *FeedHandler) Feed(c *gin.Context) {
	posts, err := h.buildFeedUseCase.Execute(c.Request.Context(), middleware.CurrentAuth(c))
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	if utils.WantsJSON(c) {
		utils.SuccessResponse(c, http.StatusOK, "", gin.H{"posts": posts})
		return
	}
	common.Render(c, http.StatusOK, "feed.html", gin.H{"posts": posts})
}
