package middleware

import (
	"context"
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	"github.com/litrevu/litrevu/internal/domain/user"
	"github.com/litrevu/litrevu/internal/shared/config"
	"github.com/litrevu/litrevu/internal/shared/constants"
	"github.com/litrevu/litrevu/internal/shared/errors"
	"github.com/litrevu/litrevu/internal/shared/logger"
	"github.com/litrevu/litrevu/internal/shared/utils"
)

type sessionResolver interface {
	Execute(ctx context.Context, token string) (user.AuthContext, error)
}

type AuthMiddleware struct {
	resolver     sessionResolver
	cookieConfig config.CookieConfig
	logger       logger.Interface
}

func NewAuthMiddleware(resolver sessionResolver, cookieConfig config.CookieConfig, logger logger.Interface) *AuthMiddleware {
	return &AuthMiddleware{
		resolver:     resolver,
		cookieConfig: cookieConfig,
		logger:       logger,
	}
}

// Authenticate resolves the session cookie on every request. Requests
// without a valid session continue as anonymous.
func (m *AuthMiddleware) Authenticate() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := utils.GetTokenFromCookie(c, constants.CookieSession)

		auth, err := m.resolver.Execute(c.Request.Context(), token)
		if err != nil {
			if errors.GetAuthError(err) != nil {
				if errors.ShouldLogAuthError(err) {
					m.logger.Warnw("rejected session cookie", "error", err, "client_ip", c.ClientIP())
				}
				utils.ClearSessionCookie(c, m.cookieConfig)
			} else {
				m.logger.Errorw("failed to resolve session", "error", err)
			}
			auth = user.Anonymous()
		}

		SetAuth(c, auth)
		c.Next()
	}
}

// RequireAuth sends anonymous browsers to the login page and answers 401 to
// JSON clients.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if CurrentAuth(c).IsAuthenticated() {
			c.Next()
			return
		}

		if utils.WantsJSON(c) {
			utils.ErrorResponseWithError(c, errors.NewUnauthorizedError("authentication required"))
			c.Abort()
			return
		}

		next := ""
		if c.Request.Method == http.MethodGet {
			next = c.Request.URL.RequestURI()
		}
		c.Redirect(http.StatusFound, LoginURL(next))
		c.Abort()
	}
}

// CurrentAuth returns the AuthContext stored by Authenticate, or the
// anonymous context when there is none.
func CurrentAuth(c *gin.Context) user.AuthContext {
	if v, ok := c.Get(constants.ContextKeyAuth); ok {
		if auth, ok := v.(user.AuthContext); ok {
			return auth
		}
	}
	return user.Anonymous()
}

func SetAuth(c *gin.Context, auth user.AuthContext) {
	c.Set(constants.ContextKeyAuth, auth)
}

func LoginURL(next string) string {
	if next == "" || next == "/" {
		return "/login"
	}
	return "/login?next=" + url.QueryEscape(next)
}
