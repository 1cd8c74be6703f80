package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/litrevu/litrevu/internal/shared/config"
	"github.com/litrevu/litrevu/internal/shared/constants"
	"github.com/litrevu/litrevu/internal/shared/utils"
)

// Flash moves a pending flash message from its cookie into the context of
// the next page view.
func Flash(cookieConfig config.CookieConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method == http.MethodGet {
			if msg := utils.PopFlash(c, cookieConfig); msg != "" {
				c.Set(constants.ContextKeyFlash, msg)
			}
		}
		c.Next()
	}
}

func FlashMessage(c *gin.Context) string {
	return c.GetString(constants.ContextKeyFlash)
}
