package email

import (
	"github.com/yellowboat/backoffice/internal/config"
	"github.com/yellowboat/backoffice/internal/logger"

	"gopkg.in/gomail.v2"
)

// Provider sends a single plain-text email.
type Provider interface {
	Send(to, subject, body string) error
}

// SMTPProvider delivers through the configured SMTP relay.
type SMTPProvider struct {
	cfg *config.Config
}

func NewSMTPProvider(cfg *config.Config) *SMTPProvider {
	return &SMTPProvider{cfg: cfg}
}

func (p *SMTPProvider) Send(to, subject, body string) error {
	m := gomail.NewMessage()
	m.SetAddressHeader("From", p.cfg.Email.FromEmail, p.cfg.Email.FromName)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", body)

	d := gomail.NewDialer(
		p.cfg.Email.SMTPHost,
		p.cfg.Email.SMTPPort,
		p.cfg.Email.SMTPUsername,
		p.cfg.Email.SMTPPassword,
	)

	return d.DialAndSend(m)
}

// LogProvider replaces SMTP when email is disabled. It logs instead of
// sending, so the rest of the flow behaves the same in development.
type LogProvider struct{}

func NewLogProvider() *LogProvider {
	return &LogProvider{}
}

func (p *LogProvider) Send(to, subject, body string) error {
	logger.Info("email suppressed (sending disabled)",
		"to", to,
		"subject", subject,
	)
	return nil
}

// NewProvider picks the SMTP or log provider based on config.
func NewProvider(cfg *config.Config) Provider {
	if cfg.Email.Enabled && cfg.Email.SMTPHost != "" {
		return NewSMTPProvider(cfg)
	}
	return NewLogProvider()
}
