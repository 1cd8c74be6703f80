package utils

import (
	stderrors "errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/litrevu/litrevu/internal/shared/errors"
)

func TestMaskEmail(t *testing.T) {
	assert.Equal(t, "a***@example.com", MaskEmail("alice@example.com"))
	assert.Equal(t, "a***@example.com", MaskEmail("a@example.com"))
	assert.Equal(t, "***", MaskEmail("not-an-email"))
}

func TestErrorInfoFromError(t *testing.T) {
	code, info := ErrorInfoFromError(errors.NewForbiddenError("not yours"))
	assert.Equal(t, http.StatusForbidden, code)
	assert.Equal(t, "forbidden", info.Type)

	code, info = ErrorInfoFromError(stderrors.New("dial tcp 10.0.0.3:3306: connection refused"))
	assert.Equal(t, http.StatusInternalServerError, code)
	assert.NotContains(t, info.Message, "10.0.0.3")

	code, info = ErrorInfoFromError(errors.NewUnavailableError("database unavailable", "dial tcp: refused"))
	assert.Equal(t, http.StatusServiceUnavailable, code)
	assert.Empty(t, info.Details)
}

func TestParseIDParam(t *testing.T) {
	gin.SetMode(gin.TestMode)
	tests := []struct {
		raw     string
		want    uint
		wantErr bool
	}{
		{"42", 42, false},
		{"0", 0, true},
		{"abc", 0, true},
		{"", 0, true},
	}
	for _, tt := range tests {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		c.Params = gin.Params{{Key: "id", Value: tt.raw}}
		got, err := ParseIDParam(c, "id", "ticket")
		if tt.wantErr {
			assert.Error(t, err, tt.raw)
			continue
		}
		assert.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}
}

func TestWantsJSON(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name   string
		accept string
		want   bool
	}{
		{"json", "application/json", true},
		{"browser", "text/html,application/xhtml+xml", false},
		{"wildcard", "*/*", false},
		{"missing header", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := gin.CreateTestContext(httptest.NewRecorder())
			c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.accept != "" {
				c.Request.Header.Set("Accept", tt.accept)
			}
			assert.Equal(t, tt.want, WantsJSON(c))
		})
	}
}
