package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/litrevu/litrevu/internal/shared/config"
	"github.com/litrevu/litrevu/internal/shared/constants"
	"github.com/litrevu/litrevu/internal/shared/id"
)

// SetSessionCookie stores the signed session token as an HttpOnly cookie.
func SetSessionCookie(c *gin.Context, cookieConfig config.CookieConfig, token string, maxAge int) {
	c.SetSameSite(parseSameSite(cookieConfig.SameSite))
	c.SetCookie(
		constants.CookieSession,
		token,
		maxAge,
		cookieConfig.Path,
		cookieConfig.Domain,
		cookieConfig.Secure,
		true, // HttpOnly
	)
}

// ClearSessionCookie removes the session cookie.
func ClearSessionCookie(c *gin.Context, cookieConfig config.CookieConfig) {
	c.SetSameSite(parseSameSite(cookieConfig.SameSite))
	c.SetCookie(constants.CookieSession, "", -1, cookieConfig.Path, cookieConfig.Domain, cookieConfig.Secure, true)
}

// GetTokenFromCookie returns the named cookie value or "".
func GetTokenFromCookie(c *gin.Context, cookieName string) string {
	token, err := c.Cookie(cookieName)
	if err != nil {
		return ""
	}
	return token
}

// SetCSRFCookie generates a random CSRF token, sets it as a readable cookie
// (double submit pattern) and returns it.
func SetCSRFCookie(c *gin.Context, cookieConfig config.CookieConfig) (string, error) {
	token, err := id.Generate(id.TokenLength)
	if err != nil {
		return "", err
	}
	c.SetSameSite(parseSameSite(cookieConfig.SameSite))
	c.SetCookie(
		constants.CookieCSRF,
		token,
		0,
		cookieConfig.Path,
		cookieConfig.Domain,
		cookieConfig.Secure,
		false, // templates and scripts echo it back
	)
	return token, nil
}

// ClearCSRFCookie removes the CSRF token cookie.
func ClearCSRFCookie(c *gin.Context, cookieConfig config.CookieConfig) {
	c.SetSameSite(parseSameSite(cookieConfig.SameSite))
	c.SetCookie(constants.CookieCSRF, "", -1, cookieConfig.Path, cookieConfig.Domain, cookieConfig.Secure, false)
}

// SetFlash stores a one-shot message shown on the next rendered page.
func SetFlash(c *gin.Context, cookieConfig config.CookieConfig, message string) {
	c.SetSameSite(parseSameSite(cookieConfig.SameSite))
	c.SetCookie(constants.CookieFlash, message, 60, cookieConfig.Path, cookieConfig.Domain, cookieConfig.Secure, true)
}

// PopFlash returns the pending flash message and clears it.
func PopFlash(c *gin.Context, cookieConfig config.CookieConfig) string {
	raw, err := c.Cookie(constants.CookieFlash)
	if err != nil || raw == "" {
		return ""
	}
	c.SetCookie(constants.CookieFlash, "", -1, cookieConfig.Path, cookieConfig.Domain, cookieConfig.Secure, true)
	return raw
}

// parseSameSite converts string to http.SameSite
func parseSameSite(sameSite string) http.SameSite {
	switch sameSite {
	case "Strict":
		return http.SameSiteStrictMode
	case "None":
		return http.SameSiteNoneMode
	default:
		return http.SameSiteLaxMode
	}
}
