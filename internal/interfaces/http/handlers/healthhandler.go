package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/litrevu/litrevu/internal/shared/errors"
	"github.com/litrevu/litrevu/internal/shared/logger"
	"github.com/litrevu/litrevu/internal/shared/utils"
)

const healthCheckTimeout = 2 * time.Second

type pinger interface {
	PingContext(ctx context.Context) error
}

type HealthHandler struct {
	db     pinger
	logger logger.Interface
}

func NewHealthHandler(db pinger, logger logger.Interface) *HealthHandler {
	return &HealthHandler{db: db, logger: logger}
}

// HealthCheck handles GET /health
func (h *HealthHandler) HealthCheck(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), healthCheckTimeout)
	defer cancel()

	if err := h.db.PingContext(ctx); err != nil {
		h.logger.Errorw("health check failed", "error", err)
		utils.ErrorResponseWithError(c, errors.NewUnavailableError("database unavailable"))
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", gin.H{"status": "ok"})
}
