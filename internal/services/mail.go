package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// ErrMailNotConfigured is returned when no SendGrid API key was provided.
// Callers treat send failures as warnings, never as request failures.
var ErrMailNotConfigured = errors.New("mail transport is not configured")

// Mailer sends a rendered notification to one or more recipients.
type Mailer interface {
	Send(ctx context.Context, recipients []string, template EmailTemplate, data EmailData) error
}

// MailService delivers transactional email through SendGrid.
type MailService struct {
	client *sendgrid.Client
	from   *mail.Email
	logger zerolog.Logger
}

func NewMailService(apiKey, fromAddr, fromName string, logger zerolog.Logger) *MailService {
	s := &MailService{
		from:   mail.NewEmail(fromName, fromAddr),
		logger: logger,
	}
	if apiKey != "" && fromAddr != "" {
		s.client = sendgrid.NewSendClient(apiKey)
	} else {
		logger.Warn().Msg("SENDGRID_API_KEY or MAIL_FROM not set, email notifications are disabled")
	}
	return s
}

// Send renders the template and delivers it to every recipient. The first
// failure is returned after all recipients were attempted; failures are also
// logged here so the caller only has to surface the warning.
func (s *MailService) Send(ctx context.Context, recipients []string, template EmailTemplate, data EmailData) error {
	if s.client == nil {
		return ErrMailNotConfigured
	}

	subject := Subject(template)
	body := Render(template, data)

	var firstErr error
	for _, rcpt := range recipients {
		msg := mail.NewSingleEmail(s.from, subject, mail.NewEmail("", rcpt), body, body)
		resp, err := s.client.SendWithContext(ctx, msg)
		if err == nil && resp.StatusCode >= 400 {
			err = fmt.Errorf("sendgrid returned status %d", resp.StatusCode)
		}
		if err != nil {
			s.logger.Error().Err(err).Str("recipient", rcpt).Str("template", string(template)).Msg("failed to send email")
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		s.logger.Info().Str("recipient", rcpt).Str("template", string(template)).Msg("email sent")
	}
	return firstErr
}
