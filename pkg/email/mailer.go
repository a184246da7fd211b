package email

import (
	"context"

	"gopkg.in/gomail.v2"
)

// Mailer delivers outbound mail. Delivery is best-effort everywhere it is
// used; callers log failures and continue.
type Mailer interface {
	Send(ctx context.Context, to, subject, body string) error
	SendHTML(ctx context.Context, to, subject, textBody, htmlBody string) error
}

type SMTPMailer struct {
	dialer    *gomail.Dialer
	fromEmail string
	fromName  string
}

func NewSMTPMailer(host string, port int, username, password, fromEmail, fromName string) *SMTPMailer {
	return &SMTPMailer{
		dialer:    gomail.NewDialer(host, port, username, password),
		fromEmail: fromEmail,
		fromName:  fromName,
	}
}

func (m *SMTPMailer) Send(ctx context.Context, to, subject, body string) error {
	msg := gomail.NewMessage()
	msg.SetAddressHeader("From", m.fromEmail, m.fromName)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", body)

	return m.dialAndSend(ctx, msg)
}

func (m *SMTPMailer) SendHTML(ctx context.Context, to, subject, textBody, htmlBody string) error {
	msg := gomail.NewMessage()
	msg.SetAddressHeader("From", m.fromEmail, m.fromName)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", textBody)
	msg.AddAlternative("text/html", htmlBody)

	return m.dialAndSend(ctx, msg)
}

// dialAndSend runs the blocking SMTP dial under the caller's context. gomail
// has no context support, so a cancelled context abandons the dial rather
// than interrupting it.
func (m *SMTPMailer) dialAndSend(ctx context.Context, msg *gomail.Message) error {
	done := make(chan error, 1)
	go func() {
		done <- m.dialer.DialAndSend(msg)
	}()

	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}
