package email

import (
	"fmt"
	"html"

	"gopkg.in/gomail.v2"

	"github.com/litrevu/litrevu/internal/shared/config"
)

type SMTPConfig struct {
	Host        string
	Port        int
	Username    string
	Password    string
	FromAddress string
	FromName    string
	BaseURL     string // Base URL for email links (e.g., "http://localhost:8000")
}

// SMTPConfigFrom builds an SMTPConfig from application settings.
func SMTPConfigFrom(cfg config.EmailConfig, baseURL string) SMTPConfig {
	return SMTPConfig{
		Host:        cfg.SMTPHost,
		Port:        cfg.SMTPPort,
		Username:    cfg.SMTPUser,
		Password:    cfg.SMTPPassword,
		FromAddress: cfg.FromAddress,
		FromName:    cfg.FromName,
		BaseURL:     baseURL,
	}
}

type SMTPEmailService struct {
	config SMTPConfig
	dialer *gomail.Dialer
}

func NewSMTPEmailService(cfg SMTPConfig) *SMTPEmailService {
	dialer := gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password)

	return &SMTPEmailService{
		config: cfg,
		dialer: dialer,
	}
}

func (s *SMTPEmailService) SendWelcomeEmail(to, username string) error {
	return s.dialAndSend(s.welcomeMessage(to, username))
}

func (s *SMTPEmailService) welcomeMessage(to, username string) *gomail.Message {
	feedURL := s.config.BaseURL + "/"
	name := html.EscapeString(username)

	subject := "Welcome to LITReview"
	htmlBody := fmt.Sprintf(`
		<html>
		<body>
			<h2>Welcome to LITReview, %s!</h2>
			<p>Your account is ready. Follow other readers to fill your feed:</p>
			<p><a href="%s">Open your feed</a></p>
			<p>If you didn't create an account, please ignore this email.</p>
		</body>
		</html>
	`, name, feedURL)

	plainBody := fmt.Sprintf(`
Welcome to LITReview, %s!

Your account is ready. Follow other readers to fill your feed:
%s

If you didn't create an account, please ignore this email.
	`, username, feedURL)

	return s.newMessage(to, subject, htmlBody, plainBody)
}

func (s *SMTPEmailService) newMessage(to, subject, htmlBody, plainBody string) *gomail.Message {
	m := gomail.NewMessage()
	if s.config.FromName != "" {
		m.SetAddressHeader("From", s.config.FromAddress, s.config.FromName)
	} else {
		m.SetHeader("From", s.config.FromAddress)
	}
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", plainBody)
	m.AddAlternative("text/html", htmlBody)
	return m
}

func (s *SMTPEmailService) dialAndSend(m *gomail.Message) error {
	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}

// NoopEmailService is used when email delivery is disabled.
type NoopEmailService struct{}

func (NoopEmailService) SendWelcomeEmail(to, username string) error { return nil }
