package service

import (
	"context"
)

// Mail is a single outbound message with an HTML body.
type Mail struct {
	To      string
	Subject string
	HTML    string
}

// MailSender defines the interface for dispatching transactional email.
// The concrete transport (SMTP, API, ...) lives in the infrastructure layer.
type MailSender interface {
	// Send dispatches a single email and reports failure to the caller.
	Send(ctx context.Context, mail Mail) error
}
