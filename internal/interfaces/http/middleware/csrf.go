package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/litrevu/litrevu/internal/shared/config"
	"github.com/litrevu/litrevu/internal/shared/constants"
	"github.com/litrevu/litrevu/internal/shared/errors"
	"github.com/litrevu/litrevu/internal/shared/logger"
	"github.com/litrevu/litrevu/internal/shared/utils"
)

// csrfExemptPaths have no session to protect yet.
var csrfExemptPaths = map[string]struct{}{
	"/login":    {},
	"/register": {},
}

// CSRF implements the double submit cookie pattern. Safe requests get a
// token cookie when they lack one; mutating requests must echo the cookie in
// the X-CSRF-Token header or the csrf_token form field. The token is stored
// in the context for templates.
func CSRF(cookieConfig config.CookieConfig, log logger.Interface) gin.HandlerFunc {
	return func(c *gin.Context) {
		cookieToken := utils.GetTokenFromCookie(c, constants.CookieCSRF)

		_, exempt := csrfExemptPaths[c.Request.URL.Path]
		if isSafeMethod(c.Request.Method) || exempt {
			if cookieToken == "" {
				token, err := utils.SetCSRFCookie(c, cookieConfig)
				if err != nil {
					log.Errorw("failed to issue CSRF token", "error", err)
				}
				cookieToken = token
			}
			c.Set(constants.ContextKeyCSRFToken, cookieToken)
			c.Next()
			return
		}

		if cookieToken == "" {
			rejectCSRF(c, "missing CSRF token")
			return
		}

		submitted := c.GetHeader(constants.HeaderXCSRFToken)
		if submitted == "" {
			submitted = c.PostForm(constants.FormFieldCSRF)
		}
		if submitted == "" {
			rejectCSRF(c, "missing CSRF token")
			return
		}

		if subtle.ConstantTimeCompare([]byte(cookieToken), []byte(submitted)) != 1 {
			rejectCSRF(c, "invalid CSRF token")
			return
		}

		c.Set(constants.ContextKeyCSRFToken, cookieToken)
		c.Next()
	}
}

func rejectCSRF(c *gin.Context, reason string) {
	utils.RespondError(c, errors.NewForbiddenError("CSRF verification failed", reason))
	c.Abort()
}

// CSRFToken returns the token the current page must submit.
func CSRFToken(c *gin.Context) string {
	return c.GetString(constants.ContextKeyCSRFToken)
}

// isSafeMethod returns true for HTTP methods that do not mutate state.
func isSafeMethod(method string) bool {
	switch method {
	case http.MethodGet, http.MethodHead, http.MethodOptions:
		return true
	default:
		return false
	}
}
