package email

import (
	"github.com/AJEETSINGHPATEL/jobportal-backend/internal/config"
	"github.com/AJEETSINGHPATEL/jobportal-backend/internal/logger"
)

// Provider sends outbound email. Both implementations are safe for
// concurrent use.
type Provider interface {
	SendTemplate(to []string, subject, templateName string, data TemplateData) error
	Close() error
}

// NewProvider picks the transport from configuration: SMTP when email
// is enabled, otherwise a no-op provider that only logs. Local
// development and the test suite run without SMTP.
func NewProvider(cfg *config.Config) Provider {
	if !cfg.Email.Enabled || cfg.Email.SMTPHost == "" {
		logger.Info("Email sending disabled, using noop provider")
		return &noopProvider{renderer: NewTemplateManager()}
	}
	return newGomailProvider(cfg)
}

// noopProvider still renders templates so broken template data shows
// up in development logs.
type noopProvider struct {
	renderer *TemplateManager
}

func (p *noopProvider) SendTemplate(to []string, subject, templateName string, data TemplateData) error {
	if _, err := p.renderer.Render(templateName, data); err != nil {
		logger.Warn("Email template failed to render", "template", templateName, "error", err)
		return err
	}
	logger.Debug("Email suppressed", "to", to, "subject", subject, "template", templateName)
	return nil
}

func (p *noopProvider) Close() error { return nil }
