package mail

import (
	"context"
	"fmt"

	"gopkg.in/gomail.v2"

	"github.com/xavierca1/site-forms/internal/entity"
)

// Dialer is the part of gomail.Dialer the sender needs.
type Dialer interface {
	DialAndSend(m ...*gomail.Message) error
}

type SMTPSender struct {
	Host   string
	Port   int
	dialer Dialer
}

func NewSMTPSender(host string, port int, user, password string) *SMTPSender {
	return &SMTPSender{
		Host:   host,
		Port:   port,
		dialer: gomail.NewDialer(host, port, user, password),
	}
}

// NewSMTPSenderWithDialer is used by tests and by callers that need a
// preconfigured dialer (TLS settings, local relays).
func NewSMTPSenderWithDialer(d Dialer) *SMTPSender {
	return &SMTPSender{dialer: d}
}

func (s *SMTPSender) Name() string {
	return "smtp"
}

func (s *SMTPSender) Send(ctx context.Context, n entity.Notification) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if err := s.dialer.DialAndSend(buildMessage(n)); err != nil {
		return fmt.Errorf("failed to send SMTP email: %w", err)
	}
	return nil
}

func buildMessage(n entity.Notification) *gomail.Message {
	m := gomail.NewMessage()
	m.SetHeader("From", n.From)
	m.SetHeader("To", n.To)
	if n.ReplyTo != "" {
		m.SetHeader("Reply-To", n.ReplyTo)
	}
	m.SetHeader("Subject", n.Subject)
	m.SetHeader("X-Submission-ID", n.ID)
	m.SetBody("text/plain", n.Text)
	return m
}
