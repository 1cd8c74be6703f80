// Package common provides shared HTTP handler utilities: page data, form
// error handling and post-redirect-get responses.
package common

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/litrevu/litrevu/internal/interfaces/http/forms"
	"github.com/litrevu/litrevu/internal/interfaces/http/middleware"
	"github.com/litrevu/litrevu/internal/shared/config"
	"github.com/litrevu/litrevu/internal/shared/errors"
	"github.com/litrevu/litrevu/internal/shared/utils"
)

// Page merges data into the values every template expects.
func Page(c *gin.Context, data gin.H) gin.H {
	auth := middleware.CurrentAuth(c)
	page := gin.H{
		"signed_in":  auth.IsAuthenticated(),
		"username":   auth.Username,
		"csrf_token": middleware.CSRFToken(c),
		"flash":      middleware.FlashMessage(c),
		"errors":     forms.FieldErrors{},
	}
	for k, v := range data {
		page[k] = v
	}
	return page
}

func Render(c *gin.Context, status int, template string, data gin.H) {
	c.HTML(status, template, Page(c, data))
}

// RespondFormErrors answers 400 with the field map to JSON clients and
// re-renders the form for browsers.
func RespondFormErrors(c *gin.Context, template string, data gin.H, errs forms.FieldErrors) {
	if utils.WantsJSON(c) {
		utils.FieldErrorResponse(c, errs)
		return
	}
	if data == nil {
		data = gin.H{}
	}
	data["errors"] = errs
	Render(c, http.StatusOK, template, data)
}

// HandleFormError shows validation failures next to the form and sends
// every other error to the error page.
func HandleFormError(c *gin.Context, template string, data gin.H, err error) {
	if !errors.IsValidationError(err) {
		utils.RespondError(c, err)
		return
	}
	fields := forms.FieldErrors(errors.FieldErrors(err))
	if len(fields) == 0 {
		fields = forms.FieldErrors{forms.NonFieldErrors: errors.GetAppError(err).Message}
	}
	RespondFormErrors(c, template, data, fields)
}

// BindError is reported when the request body cannot be decoded at all.
func BindError() forms.FieldErrors {
	return forms.FieldErrors{forms.NonFieldErrors: "The submitted data is invalid."}
}

// RedirectWithFlash finishes a successful browser form post.
func RedirectWithFlash(c *gin.Context, cookieConfig config.CookieConfig, location, message string) {
	if message != "" {
		utils.SetFlash(c, cookieConfig, message)
	}
	c.Redirect(http.StatusFound, location)
}

// ActorID is the signed-in user's id, or 0.
func ActorID(c *gin.Context) uint {
	return middleware.CurrentAuth(c).UserID
}
