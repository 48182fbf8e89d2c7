package utils

import (
	"fmt"
	"os"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// EmailService sends transactional mail through SendGrid. Delivery is
// at-most-once: a relay failure is reported to the caller and not retried.
type EmailService struct {
	client *sendgrid.Client
	from   string
	to     string
}

// NewEmailService builds the service from SENDGRID_API_KEY, EMAIL_FROM and
// EMAIL_TO environment variables.
func NewEmailService() (*EmailService, error) {
	apiKey := os.Getenv("SENDGRID_API_KEY")
	from := os.Getenv("EMAIL_FROM")
	to := os.Getenv("EMAIL_TO")
	if apiKey == "" || from == "" || to == "" {
		return nil, fmt.Errorf("SENDGRID_API_KEY, EMAIL_FROM and EMAIL_TO must be set")
	}
	return &EmailService{
		client: sendgrid.NewSendClient(apiKey),
		from:   from,
		to:     to,
	}, nil
}

// Send delivers one HTML email to the configured inbox. replyTo may be empty.
func (es *EmailService) Send(subject, htmlBody, replyTo string) error {
	from := mail.NewEmail("LoopCart", es.from)
	to := mail.NewEmail("", es.to)
	msg := mail.NewSingleEmail(from, subject, to, htmlBody, htmlBody)
	if replyTo != "" {
		msg.SetReplyTo(mail.NewEmail("", replyTo))
	}

	resp, err := es.client.Send(msg)
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	if resp.StatusCode >= 400 {
		return fmt.Errorf("mail relay returned status %d", resp.StatusCode)
	}
	return nil
}
