// Package mail implements the Mailer domain service over SMTP.
package mail

import (
	"context"
	"crypto/tls"
	"fmt"
	"time"

	gomail "github.com/go-mail/mail"

	"koor/config"
	"koor/internal/domain/service"
	"koor/internal/errors"
)

// smtpMailer delivers transactional mail through a single SMTP relay.
// Every delivery runs in its own goroutine bounded by the configured
// timeout, so a slow relay cannot stall a request.
type smtpMailer struct {
	host    string
	port    int
	from    string
	user    string
	pass    string
	tlsMode string
	timeout time.Duration
	baseURL string
}

// NewSMTPMailer is the constructor for smtpMailer.
func NewSMTPMailer(cfg *config.Config) (service.Mailer, error) {
	if cfg.SMTP == nil {
		return nil, errors.New("smtp configuration must be provided")
	}

	return &smtpMailer{
		host:    cfg.SMTP.Host,
		port:    cfg.SMTP.Port,
		from:    cfg.SMTP.From,
		user:    cfg.SMTP.Username,
		pass:    cfg.SMTP.Password,
		tlsMode: cfg.SMTP.TLSMode,
		timeout: cfg.SMTP.Timeout,
		baseURL: baseURL(cfg),
	}, nil
}

func baseURL(cfg *config.Config) string {
	if cfg.App != nil {
		return cfg.App.BaseURL
	}

	return ""
}

// SendOTP delivers a one-time passcode to the address.
func (m *smtpMailer) SendOTP(ctx context.Context, to, displayName, code string) error {
	subject := "Your verification code"
	text := fmt.Sprintf("Hi %s,\n\nYour verification code is %s. It expires in 15 minutes.\n", displayName, code)
	html := fmt.Sprintf("<p>Hi %s,</p><p>Your verification code is <strong>%s</strong>. It expires in 15 minutes.</p>", displayName, code)

	return m.send(ctx, to, subject, text, html)
}

// SendVerificationLink delivers the account-verification link carrying hash.
func (m *smtpMailer) SendVerificationLink(ctx context.Context, to, displayName, hash string) error {
	link := fmt.Sprintf("%s/users/account-verification/%s", m.baseURL, hash)
	subject := "Verify your account"
	text := fmt.Sprintf("Hi %s,\n\nVerify your account by opening %s\n", displayName, link)
	html := fmt.Sprintf("<p>Hi %s,</p><p>Verify your account by clicking <a href=%q>this link</a>.</p>", displayName, link)

	return m.send(ctx, to, subject, text, html)
}

// send dials and delivers under the configured timeout. The dial happens in
// a goroutine because go-mail has no context-aware API.
func (m *smtpMailer) send(ctx context.Context, to, subject, textBody, htmlBody string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", textBody)
	msg.AddAlternative("text/html", htmlBody)

	dialer := gomail.NewDialer(m.host, m.port, m.user, m.pass)
	dialer.Timeout = m.timeout
	dialer.TLSConfig = &tls.Config{ServerName: m.host}

	switch m.tlsMode {
	case "tls":
		dialer.SSL = true
	case "none":
		dialer.TLSConfig = nil
	default:
		// "starttls": go-mail negotiates STARTTLS when the relay offers it.
	}

	ctx, cancel := context.WithTimeout(ctx, m.timeout)
	defer cancel()

	done := make(chan error, 1)
	go func() {
		done <- dialer.DialAndSend(msg)
	}()

	select {
	case err := <-done:
		if err != nil {
			return errors.Wrap(err, "smtp send")
		}

		return nil
	case <-ctx.Done():
		return errors.Wrap(ctx.Err(), "smtp send")
	}
}
