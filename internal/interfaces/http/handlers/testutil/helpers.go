package testutil

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/litrevu/litrevu/internal/domain/user"
	"github.com/litrevu/litrevu/internal/interfaces/http/middleware"
	"github.com/litrevu/litrevu/internal/interfaces/http/views"
	"github.com/litrevu/litrevu/internal/shared/constants"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// NewEngine returns a bare engine that can render the real templates.
func NewEngine() *gin.Engine {
	engine := gin.New()
	engine.HTMLRender = views.MustNew()
	return engine
}

// WithAuth simulates the auth middleware for a signed-in user.
func WithAuth(userID uint, username string) gin.HandlerFunc {
	return func(c *gin.Context) {
		SetAuthContext(c, userID, username)
		c.Next()
	}
}

// SetAuthContext stores an AuthContext in the gin context.
func SetAuthContext(c *gin.Context, userID uint, username string) {
	middleware.SetAuth(c, user.AuthContext{
		UserID:    userID,
		Username:  username,
		SessionID: "test-session-id",
	})
}

// NewJSONRequest builds a request that negotiates JSON, with an optional body.
func NewJSONRequest(method, path string, body interface{}) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBytes, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBytes))
		req.Header.Set(constants.HeaderContentType, constants.ContentTypeJSON)
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	req.Header.Set(constants.HeaderAccept, constants.ContentTypeJSON)
	return req
}

// NewFormRequest builds a browser form post.
func NewFormRequest(method, path string, form url.Values) *http.Request {
	req := httptest.NewRequest(method, path, strings.NewReader(form.Encode()))
	req.Header.Set(constants.HeaderContentType, "application/x-www-form-urlencoded")
	req.Header.Set(constants.HeaderAccept, "text/html,application/xhtml+xml")
	return req
}

// NewPageRequest builds a browser GET.
func NewPageRequest(path string) *http.Request {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	req.Header.Set(constants.HeaderAccept, "text/html,application/xhtml+xml")
	return req
}

// Serve runs req through engine.
func Serve(engine *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

// ParseResponse parses the JSON response body into the target struct.
func ParseResponse(w *httptest.ResponseRecorder, target interface{}) error {
	return json.Unmarshal(w.Body.Bytes(), target)
}

// FlashFrom returns the flash message set on the response, if any.
func FlashFrom(w *httptest.ResponseRecorder) string {
	for _, c := range w.Result().Cookies() {
		if c.Name == constants.CookieFlash && c.MaxAge >= 0 {
			v, _ := url.QueryUnescape(c.Value)
			return v
		}
	}
	return ""
}

// APIResponse mirrors utils.APIResponse for test assertions.
type APIResponse struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data,omitempty"`
	Error   *ErrorInfo      `json:"error,omitempty"`
	Message string          `json:"message,omitempty"`
}

// ErrorInfo mirrors utils.ErrorInfo for test assertions.
type ErrorInfo struct {
	Type    string            `json:"type"`
	Message string            `json:"message"`
	Details string            `json:"details,omitempty"`
	Fields  map[string]string `json:"fields,omitempty"`
}
