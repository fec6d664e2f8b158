package email

import (
	"bytes"
	"fmt"
	"html/template"
	"net/smtp"

	"go-jobboard-backend/config"
)

// EmailService handles sending emails via SMTP
type EmailService struct {
	host      string
	port      string
	username  string
	password  string
	fromEmail string
}

// NewEmailService creates a new email service with Brevo SMTP configuration
func NewEmailService(cfg *config.Config) *EmailService {
	return &EmailService{
		host:      cfg.SMTPHost,
		port:      cfg.SMTPPort,
		username:  cfg.SMTPUsername,
		password:  cfg.SMTPPassword,
		fromEmail: cfg.SMTPUsername, // Brevo uses login email as from address
	}
}

const (
	TemplateResponseCreated = "response_created"
	TemplateStatusChanged   = "status_changed"
	TemplateConfirmEmail    = "confirm_email"
)

const baseTemplate = `<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>{{.Subject}}</title>
    <style>
        body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
        .container { max-width: 600px; margin: 0 auto; padding: 20px; }
        .header { background: #0066cc; color: white; padding: 20px; text-align: center; }
        .content { padding: 20px; background: #f9f9f9; }
        .footer { text-align: center; padding: 20px; color: #888; font-size: 12px; }
    </style>
</head>
<body>
    <div class="container">
        <div class="header">
            <h1>{{.Subject}}</h1>
        </div>
        <div class="content">{{.Body}}</div>
        <div class="footer">
            <p>This email was sent automatically, please do not reply.</p>
        </div>
    </div>
</body>
</html>`

var templates = map[string]struct {
	subject string
	body    string
}{
	TemplateResponseCreated: {
		subject: "New response received",
		body: `<p>A new response has been created.</p>
<p>Vacancy: <b>{{.vacancy_title}}</b></p>
<p>Resume: <b>{{.resume_title}}</b></p>
<p>Sign in to open the chat and reply.</p>`,
	},
	TemplateStatusChanged: {
		subject: "Response status updated",
		body: `<p>The status of a response has changed.</p>
<p>Vacancy: <b>{{.vacancy_title}}</b></p>
<p>Resume: <b>{{.resume_title}}</b></p>
<p>New status: <b>{{.status}}</b></p>`,
	},
	TemplateConfirmEmail: {
		subject: "Confirm your email",
		body: `<p>Welcome! Use the link below to confirm your email address:</p>
<p><a href="{{.confirm_url}}">{{.confirm_url}}</a></p>`,
	},
}

// Send renders the named template with data and delivers it to the recipient.
func (s *EmailService) Send(to, templateName string, data map[string]string) error {
	t, ok := templates[templateName]
	if !ok {
		return fmt.Errorf("unknown email template %q", templateName)
	}

	bodyTmpl, err := template.New(templateName).Parse(t.body)
	if err != nil {
		return fmt.Errorf("failed to parse email template: %w", err)
	}

	var inner bytes.Buffer
	if err := bodyTmpl.Execute(&inner, data); err != nil {
		return fmt.Errorf("failed to execute email template: %w", err)
	}

	baseTmpl, err := template.New("base").Parse(baseTemplate)
	if err != nil {
		return fmt.Errorf("failed to parse email template: %w", err)
	}

	var body bytes.Buffer
	err = baseTmpl.Execute(&body, map[string]interface{}{
		"Subject": t.subject,
		"Body":    template.HTML(inner.String()),
	})
	if err != nil {
		return fmt.Errorf("failed to execute email template: %w", err)
	}

	msg := []byte(fmt.Sprintf(
		"From: %s\r\n"+
			"To: %s\r\n"+
			"Subject: %s\r\n"+
			"MIME-Version: 1.0\r\n"+
			"Content-Type: text/html; charset=UTF-8\r\n"+
			"\r\n"+
			"%s",
		s.fromEmail,
		to,
		t.subject,
		body.String(),
	))

	auth := smtp.PlainAuth("", s.username, s.password, s.host)

	addr := fmt.Sprintf("%s:%s", s.host, s.port)
	if err := smtp.SendMail(addr, auth, s.fromEmail, []string{to}, msg); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}

// IsConfigured checks if the email service has valid SMTP configuration
func (s *EmailService) IsConfigured() bool {
	return s.host != "" && s.username != "" && s.password != ""
}
