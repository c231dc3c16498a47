package mailer

import (
	"context"
	"fmt"

	"review-hub/pkg/utils"

	"github.com/wneessen/go-mail"
	"go.uber.org/zap"
)

// Mailer delivers confirmation codes to users. Send failures must propagate
// to the caller, never be swallowed.
type Mailer interface {
	SendConfirmationCode(ctx context.Context, to, code string) error
}

type smtpMailer struct {
	config utils.EmailConfig
	log    *zap.Logger
}

func NewSMTPMailer(config utils.EmailConfig, log *zap.Logger) Mailer {
	return &smtpMailer{
		config: config,
		log:    log.With(zap.String("component", "mailer")),
	}
}

func (m *smtpMailer) SendConfirmationCode(ctx context.Context, to, code string) error {
	msg := mail.NewMsg()
	if err := msg.From(m.config.From); err != nil {
		return fmt.Errorf("set mail sender %s: %w", m.config.From, err)
	}
	if err := msg.To(to); err != nil {
		return fmt.Errorf("set mail recipient %s: %w", to, err)
	}

	msg.Subject("Your confirmation code")
	msg.SetBodyString(mail.TypeTextPlain, code)

	client, err := mail.NewClient(m.config.Host,
		mail.WithPort(m.config.Port),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(m.config.User),
		mail.WithPassword(m.config.Password),
	)
	if err != nil {
		m.log.Error("Failed to create SMTP client",
			zap.Error(err),
			zap.String("host", m.config.Host),
		)
		return fmt.Errorf("create smtp client: %w", err)
	}

	if err := client.DialAndSendWithContext(ctx, msg); err != nil {
		m.log.Error("Failed to send confirmation email",
			zap.Error(err),
			zap.String("to", to),
		)
		return fmt.Errorf("send confirmation email to %s: %w", to, err)
	}

	m.log.Info("Confirmation email sent", zap.String("to", to))
	return nil
}
