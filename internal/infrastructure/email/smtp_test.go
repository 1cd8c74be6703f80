package email

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWelcomeMessage(t *testing.T) {
	svc := NewSMTPEmailService(SMTPConfig{
		Host:        "localhost",
		Port:        2525,
		FromAddress: "noreply@litrevu.test",
		FromName:    "LITReview",
		BaseURL:     "http://localhost:8000",
	})

	m := svc.welcomeMessage("alice@example.com", "alice<b>")

	assert.Equal(t, []string{"alice@example.com"}, m.GetHeader("To"))
	assert.Equal(t, []string{"Welcome to LITReview"}, m.GetHeader("Subject"))
	require.Len(t, m.GetHeader("From"), 1)
	assert.Contains(t, m.GetHeader("From")[0], "noreply@litrevu.test")

	var buf bytes.Buffer
	_, err := m.WriteTo(&buf)
	require.NoError(t, err)
	body := buf.String()
	assert.Contains(t, body, "http://localhost:8000/")
	assert.Contains(t, body, "alice&lt;b&gt;")
}

func TestSendWelcomeEmailReportsDialFailure(t *testing.T) {
	svc := NewSMTPEmailService(SMTPConfig{Host: "127.0.0.1", Port: 1, FromAddress: "a@b.c"})
	assert.Error(t, svc.SendWelcomeEmail("x@y.z", "x"))
	assert.NoError(t, NoopEmailService{}.SendWelcomeEmail("x@y.z", "x"))
}
