package middleware

import (
	"context"
	stderrors "errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/litrevu/litrevu/internal/domain/user"
	"github.com/litrevu/litrevu/internal/shared/config"
	"github.com/litrevu/litrevu/internal/shared/constants"
	"github.com/litrevu/litrevu/internal/shared/errors"
	"github.com/litrevu/litrevu/internal/shared/logger"
)

func init() {
	gin.SetMode(gin.TestMode)
}

var testCookies = config.CookieConfig{Path: "/", SameSite: "Lax"}

type fakeResolver struct {
	auth user.AuthContext
	err  error
	seen string
}

func (f *fakeResolver) Execute(_ context.Context, token string) (user.AuthContext, error) {
	f.seen = token
	return f.auth, f.err
}

func jsonRequest(method, target string) *http.Request {
	req := httptest.NewRequest(method, target, nil)
	req.Header.Set(constants.HeaderAccept, constants.ContentTypeJSON)
	return req
}

func findCookie(w *httptest.ResponseRecorder, name string) *http.Cookie {
	for _, c := range w.Result().Cookies() {
		if c.Name == name {
			return c
		}
	}
	return nil
}

func TestAuthenticate(t *testing.T) {
	t.Run("valid session", func(t *testing.T) {
		resolver := &fakeResolver{auth: user.AuthContext{UserID: 7, Username: "alice", SessionID: "s1"}}
		m := NewAuthMiddleware(resolver, testCookies, logger.NewNop())

		r := gin.New()
		var got user.AuthContext
		r.GET("/", m.Authenticate(), func(c *gin.Context) { got = CurrentAuth(c) })

		req := jsonRequest(http.MethodGet, "/")
		req.AddCookie(&http.Cookie{Name: constants.CookieSession, Value: "tok"})
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, "tok", resolver.seen)
		assert.Equal(t, uint(7), got.UserID)
	})

	t.Run("rejected cookie is cleared", func(t *testing.T) {
		resolver := &fakeResolver{auth: user.Anonymous(), err: errors.NewSessionExpiredError()}
		m := NewAuthMiddleware(resolver, testCookies, logger.NewNop())

		r := gin.New()
		var got user.AuthContext
		r.GET("/", m.Authenticate(), func(c *gin.Context) { got = CurrentAuth(c) })

		req := jsonRequest(http.MethodGet, "/")
		req.AddCookie(&http.Cookie{Name: constants.CookieSession, Value: "stale"})
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.False(t, got.IsAuthenticated())
		cleared := findCookie(w, constants.CookieSession)
		require.NotNil(t, cleared)
		assert.True(t, cleared.MaxAge < 0)
	})

	t.Run("datastore failure continues anonymous", func(t *testing.T) {
		resolver := &fakeResolver{auth: user.AuthContext{UserID: 3}, err: stderrors.New("db down")}
		m := NewAuthMiddleware(resolver, testCookies, logger.NewNop())

		r := gin.New()
		var got user.AuthContext
		r.GET("/", m.Authenticate(), func(c *gin.Context) { got = CurrentAuth(c) })
		r.ServeHTTP(httptest.NewRecorder(), jsonRequest(http.MethodGet, "/"))

		assert.False(t, got.IsAuthenticated())
	})
}

func TestRequireAuth(t *testing.T) {
	m := NewAuthMiddleware(&fakeResolver{auth: user.Anonymous()}, testCookies, logger.NewNop())
	r := gin.New()
	r.Use(m.Authenticate())
	r.GET("/ticket/add", m.RequireAuth(), func(c *gin.Context) { c.String(http.StatusOK, "form") })
	r.POST("/ticket/add", m.RequireAuth(), func(c *gin.Context) { c.String(http.StatusOK, "saved") })

	t.Run("browser is redirected with next", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ticket/add?x=1", nil))
		assert.Equal(t, http.StatusFound, w.Code)
		assert.Equal(t, "/login?next="+url.QueryEscape("/ticket/add?x=1"), w.Header().Get("Location"))
	})

	t.Run("post redirects without next", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/ticket/add", nil))
		assert.Equal(t, http.StatusFound, w.Code)
		assert.Equal(t, "/login", w.Header().Get("Location"))
	})

	t.Run("json client gets 401", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, jsonRequest(http.MethodGet, "/ticket/add"))
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), `"success":false`)
	})
}

func newCSRFEngine() *gin.Engine {
	r := gin.New()
	r.Use(CSRF(testCookies, logger.NewNop()))
	ok := func(c *gin.Context) { c.String(http.StatusOK, CSRFToken(c)) }
	r.GET("/", ok)
	r.POST("/login", ok)
	r.POST("/ticket/add", ok)
	return r
}

func TestCSRF(t *testing.T) {
	r := newCSRFEngine()

	t.Run("safe request issues a token", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
		cookie := findCookie(w, constants.CookieCSRF)
		require.NotNil(t, cookie)
		assert.NotEmpty(t, cookie.Value)
		assert.Equal(t, cookie.Value, w.Body.String())
	})

	t.Run("login is exempt", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/login", nil))
		assert.Equal(t, http.StatusOK, w.Code)
	})

	tests := []struct {
		name   string
		cookie string
		header string
		form   string
		want   int
	}{
		{name: "no cookie", header: "abc", want: http.StatusForbidden},
		{name: "no submitted token", cookie: "abc", want: http.StatusForbidden},
		{name: "mismatch", cookie: "abc", header: "abd", want: http.StatusForbidden},
		{name: "header match", cookie: "abc", header: "abc", want: http.StatusOK},
		{name: "form field match", cookie: "abc", form: "abc", want: http.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body := url.Values{}
			if tt.form != "" {
				body.Set(constants.FormFieldCSRF, tt.form)
			}
			req := httptest.NewRequest(http.MethodPost, "/ticket/add", strings.NewReader(body.Encode()))
			req.Header.Set(constants.HeaderContentType, "application/x-www-form-urlencoded")
			req.Header.Set(constants.HeaderAccept, constants.ContentTypeJSON)
			if tt.cookie != "" {
				req.AddCookie(&http.Cookie{Name: constants.CookieCSRF, Value: tt.cookie})
			}
			if tt.header != "" {
				req.Header.Set(constants.HeaderXCSRFToken, tt.header)
			}

			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			assert.Equal(t, tt.want, w.Code)
		})
	}
}

type fakeLimiter struct {
	allowed bool
	err     error
	keys    []string
}

func (f *fakeLimiter) Allow(_ context.Context, key string) (bool, error) {
	f.keys = append(f.keys, key)
	return f.allowed, f.err
}

func (f *fakeLimiter) Reset(context.Context, string) error { return nil }

func TestRateLimiter(t *testing.T) {
	tests := []struct {
		name    string
		limiter *fakeLimiter
		want    int
	}{
		{name: "allowed", limiter: &fakeLimiter{allowed: true}, want: http.StatusOK},
		{name: "denied", limiter: &fakeLimiter{allowed: false}, want: http.StatusTooManyRequests},
		{name: "backend down fails open", limiter: &fakeLimiter{err: stderrors.New("dial tcp: refused")}, want: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rl := NewRateLimiter(tt.limiter, logger.NewNop())
			r := gin.New()
			r.POST("/login", rl.Limit(), func(c *gin.Context) { c.Status(http.StatusOK) })

			w := httptest.NewRecorder()
			r.ServeHTTP(w, jsonRequest(http.MethodPost, "/login"))
			assert.Equal(t, tt.want, w.Code)
			require.Len(t, tt.limiter.keys, 1)
			assert.True(t, strings.HasSuffix(tt.limiter.keys[0], ":/login"))
		})
	}

	t.Run("disabled", func(t *testing.T) {
		rl := NewRateLimiter(nil, logger.NewNop())
		r := gin.New()
		r.POST("/login", rl.Limit(), func(c *gin.Context) { c.Status(http.StatusOK) })
		w := httptest.NewRecorder()
		r.ServeHTTP(w, jsonRequest(http.MethodPost, "/login"))
		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestRequestID(t *testing.T) {
	r := gin.New()
	r.Use(RequestID())
	r.GET("/", func(c *gin.Context) { c.String(http.StatusOK, c.GetString(constants.ContextKeyRequestID)) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	generated := w.Header().Get(constants.HeaderXRequestID)
	assert.Len(t, generated, 36)
	assert.Equal(t, generated, w.Body.String())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(constants.HeaderXRequestID, "req-42")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, "req-42", w.Header().Get(constants.HeaderXRequestID))
}

func TestRecovery(t *testing.T) {
	r := gin.New()
	r.Use(Recovery(logger.NewNop()))
	r.GET("/boom", func(c *gin.Context) { panic("boom") })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, jsonRequest(http.MethodGet, "/boom"))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "boom")
}

func TestFlash(t *testing.T) {
	r := gin.New()
	r.Use(Flash(testCookies))
	r.GET("/", func(c *gin.Context) { c.String(http.StatusOK, FlashMessage(c)) })

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: constants.CookieFlash, Value: url.QueryEscape("Ticket created.")})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, "Ticket created.", w.Body.String())
	cleared := findCookie(w, constants.CookieFlash)
	require.NotNil(t, cleared)
	assert.True(t, cleared.MaxAge < 0)
}
