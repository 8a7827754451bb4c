// Package mail provides the SMTP implementation of the notification boundary.
package mail

import (
	"context"
	"log/slog"

	"github.com/pkg/errors"
	"gopkg.in/gomail.v2"

	"accounts/config"
	"accounts/internal/domain/service"
)

// gomailSender dispatches email over SMTP using gomail.
type gomailSender struct {
	cfg    *config.SMTPConfig
	logger *slog.Logger
}

// NewGomailSender is the constructor for gomailSender.
func NewGomailSender(cfg *config.Config, logger *slog.Logger) (service.MailSender, error) {
	if cfg.SMTP == nil || cfg.SMTP.Host == "" || cfg.SMTP.From == "" {
		return nil, errors.New("smtp host and from address must be provided")
	}

	return &gomailSender{
		cfg:    cfg.SMTP,
		logger: logger,
	}, nil
}

// Send dispatches a single HTML email. Dialing happens per message; no
// connection is held between sends.
func (s *gomailSender) Send(_ context.Context, mail service.Mail) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.cfg.From)
	m.SetHeader("To", mail.To)
	m.SetHeader("Subject", mail.Subject)
	m.SetBody("text/html", mail.HTML)

	d := gomail.NewDialer(s.cfg.Host, s.cfg.Port, s.cfg.UserName, s.cfg.Password)
	if err := d.DialAndSend(m); err != nil {
		return errors.Wrap(err, "failed to send email")
	}

	s.logger.Info("email sent", slog.String("to", mail.To), slog.String("subject", mail.Subject))

	return nil
}
