package services

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"strings"

	"github.com/resend/resend-go/v2"
)

// ContactNotification carries everything the owner's notification email
// needs about one contact-form submission.
type ContactNotification struct {
	CreatorEmail  string
	CreatorName   string
	SenderName    string
	SenderEmail   string
	Subject       string
	Message       string
	ApplicationID string
}

// Mailer delivers contact notifications. Implemented by ResendMailer in
// production and by fakes in tests.
type Mailer interface {
	SendContactNotification(ctx context.Context, n ContactNotification) (messageID string, err error)
}

type ResendMailer struct {
	client *resend.Client
	from   string
}

func NewResendMailer(apiKey, from string) *ResendMailer {
	return &ResendMailer{
		client: resend.NewClient(apiKey),
		from:   from,
	}
}

var contactEmailTmpl = template.Must(template.New("contact").Parse(`<!DOCTYPE html>
<html>
  <body style="font-family: sans-serif; color: #333; max-width: 600px; margin: 0 auto; padding: 20px;">
    <h2 style="color: #2563eb;">CutHours</h2>
    <p><strong>New contact message!</strong> Someone has reached out through your portfolio.</p>
    <p><strong>From:</strong> {{.SenderName}} ({{.SenderEmail}})</p>
    <p><strong>Subject:</strong> {{.Subject}}</p>
    <p><strong>Message:</strong></p>
    <blockquote style="border-left: 4px solid #2563eb; padding-left: 12px; color: #374151;">{{.MessageHTML}}</blockquote>
    <hr>
    <p style="color: #6b7280; font-size: 12px;">
      This message was sent from your CutHours portfolio contact form.<br>
      Application ID: {{.ApplicationID}}
    </p>
  </body>
</html>`))

func (m *ResendMailer) SendContactNotification(ctx context.Context, n ContactNotification) (string, error) {
	var body bytes.Buffer
	err := contactEmailTmpl.Execute(&body, struct {
		ContactNotification
		MessageHTML template.HTML
	}{n, messageHTML(n.Message)})
	if err != nil {
		return "", fmt.Errorf("render contact email: %w", err)
	}

	sent, err := m.client.Emails.SendWithContext(ctx, &resend.SendEmailRequest{
		From:    m.from,
		To:      []string{n.CreatorEmail},
		Subject: "New Contact Message: " + n.Subject,
		Html:    body.String(),
	})
	if err != nil {
		return "", fmt.Errorf("send contact email: %w", err)
	}
	return sent.Id, nil
}

// messageHTML escapes the visitor's message and keeps its line breaks.
func messageHTML(msg string) template.HTML {
	escaped := template.HTMLEscapeString(msg)
	return template.HTML(strings.ReplaceAll(escaped, "\n", "<br>"))
}
