package services

import (
	"fmt"
	"net/smtp"

	"github.com/oxiliosofficial/drafthause-admin/internal/config"
	"github.com/oxiliosofficial/drafthause-admin/internal/models"
)

type EmailService struct {
	cfg config.SMTPConfig
}

func NewEmailService(cfg config.SMTPConfig) *EmailService {
	return &EmailService{cfg: cfg}
}

func (s *EmailService) IsConfigured() bool {
	return s.cfg.Host != "" && s.cfg.Username != "" && s.cfg.Password != "" && s.cfg.From != ""
}

func (s *EmailService) Send(to, subject, body string) error {
	if !s.IsConfigured() {
		return nil
	}

	addr := fmt.Sprintf("%s:%s", s.cfg.Host, s.cfg.Port)
	auth := smtp.PlainAuth("", s.cfg.Username, s.cfg.Password, s.cfg.Host)

	msg := fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\nMIME-Version: 1.0\r\nContent-Type: text/html; charset=\"UTF-8\"\r\n\r\n%s",
		s.cfg.From, to, subject, body)

	return smtp.SendMail(addr, auth, s.cfg.From, []string{to}, []byte(msg))
}

// SendNotification mirrors an in-app notification to the admin inbox. Skipped
// entirely when email notifications are switched off in settings.
func (s *EmailService) SendNotification(to string, settings models.Settings, n models.Notification) error {
	if !settings.EmailNotifications {
		return nil
	}

	subject := fmt.Sprintf("[%s] %s", settings.CompanyName, n.Title)
	body := fmt.Sprintf(`
		<html>
		<body>
			<h2>%s</h2>
			<p>%s</p>
			<p><a href="%s">Open in dashboard</a></p>
		</body>
		</html>
	`, n.Title, n.Message, n.Link)

	return s.Send(to, subject, body)
}

// SendPortalInvite emails a client a link to their project portal.
func (s *EmailService) SendPortalInvite(to, clientName, companyName, portalURL string) error {
	subject := fmt.Sprintf("Your %s client portal is ready", companyName)
	body := fmt.Sprintf(`
		<html>
		<body>
			<h2>Client Portal Invitation</h2>
			<p>Hi %s,</p>
			<p><strong>%s</strong> has set up a portal where you can review designs, leave feedback and approve versions.</p>
			<p><a href="%s">Open your portal</a></p>
		</body>
		</html>
	`, clientName, companyName, portalURL)

	return s.Send(to, subject, body)
}
