package email

import (
	"fmt"

	"github.com/AJEETSINGHPATEL/jobportal-backend/internal/config"

	"gopkg.in/gomail.v2"
)

// gomailProvider delivers mail over SMTP. A dialer is cheap to keep;
// gomail opens a fresh connection per DialAndSend.
type gomailProvider struct {
	dialer   *gomail.Dialer
	from     string
	renderer *TemplateManager
}

func newGomailProvider(cfg *config.Config) *gomailProvider {
	dialer := gomail.NewDialer(
		cfg.Email.SMTPHost,
		cfg.Email.SMTPPort,
		cfg.Email.SMTPUsername,
		cfg.Email.SMTPPassword,
	)

	from := cfg.Email.FromEmail
	if cfg.Email.FromName != "" {
		from = fmt.Sprintf("%s <%s>", cfg.Email.FromName, cfg.Email.FromEmail)
	}

	return &gomailProvider{
		dialer:   dialer,
		from:     from,
		renderer: NewTemplateManager(),
	}
}

func (p *gomailProvider) SendTemplate(to []string, subject, templateName string, data TemplateData) error {
	body, err := p.renderer.Render(templateName, data)
	if err != nil {
		return err
	}
	return p.send(&Message{To: to, Subject: subject, HTMLBody: body})
}

func (p *gomailProvider) send(msg *Message) error {
	m := gomail.NewMessage()
	m.SetHeader("From", p.from)
	m.SetHeader("To", msg.To...)
	m.SetHeader("Subject", msg.Subject)
	m.SetBody("text/html", msg.HTMLBody)

	return p.dialer.DialAndSend(m)
}

func (p *gomailProvider) Close() error { return nil }
