package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/litrevu/litrevu/internal/shared/constants"
)

// ErrorTemplate is the page rendered for failed browser requests.
const ErrorTemplate = "error.html"

// WantsJSON reports whether the client prefers JSON over HTML.
func WantsJSON(c *gin.Context) bool {
	return c.NegotiateFormat(constants.ContentTypeHTML, constants.ContentTypeJSON) == constants.ContentTypeJSON
}

// RespondError writes err as the JSON envelope or as the HTML error page,
// depending on what the client accepts.
func RespondError(c *gin.Context, err error) {
	if WantsJSON(c) {
		ErrorResponseWithError(c, err)
		return
	}
	status, info := ErrorInfoFromError(err)
	c.HTML(status, ErrorTemplate, gin.H{
		"status":  status,
		"title":   http.StatusText(status),
		"message": info.Message,
	})
}
