package mailer

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"strings"

	"abq-api/pkg/config"
	"abq-api/pkg/logger"

	"gopkg.in/gomail.v2"
)

type Message struct {
	To       []string
	ReplyTo  string
	Subject  string
	BodyText string
	BodyHTML string
}

type Sender interface {
	Send(ctx context.Context, msg Message) error
}

type dialer interface {
	DialAndSend(m ...*gomail.Message) error
}

type smtpSender struct {
	from   string
	dialer dialer
	log    *logger.Logger
}

func NewSMTPSender(cfg *config.Config, log *logger.Logger) (Sender, error) {
	if cfg.SMTPHost == "" || cfg.SMTPPort == 0 || cfg.SMTPSender == "" {
		return nil, fmt.Errorf("SMTP host, port, and sender email must be configured")
	}

	d := gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword)

	switch strings.ToLower(cfg.SMTPEncryption) {
	case "ssl":
		d.SSL = true
		d.TLSConfig = &tls.Config{ServerName: cfg.SMTPHost, MinVersion: tls.VersionTLS12}
	case "tls", "starttls":
		d.TLSConfig = &tls.Config{ServerName: cfg.SMTPHost, MinVersion: tls.VersionTLS12}
	}

	return &smtpSender{from: cfg.SMTPSender, dialer: d, log: log}, nil
}

func (s *smtpSender) Send(ctx context.Context, msg Message) error {
	m, err := s.build(msg)
	if err != nil {
		return err
	}

	done := make(chan error, 1)
	go func() {
		done <- s.dialer.DialAndSend(m)
	}()

	select {
	case <-ctx.Done():
		s.log.Warn("Email to %v (subject: %s) cancelled: %v", msg.To, msg.Subject, ctx.Err())
		return fmt.Errorf("email sending cancelled or timed out: %w", ctx.Err())
	case err := <-done:
		if err != nil {
			s.log.Error("Failed to send email to %v, subject %q: %v", msg.To, msg.Subject, err)
			return fmt.Errorf("failed to send email: %w", err)
		}
	}

	s.log.Info("Email sent to %v, subject: %s", msg.To, msg.Subject)
	return nil
}

func (s *smtpSender) build(msg Message) (*gomail.Message, error) {
	if len(msg.To) == 0 {
		return nil, errors.New("no recipients provided for email")
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", msg.To...)
	m.SetHeader("Subject", msg.Subject)
	if msg.ReplyTo != "" {
		m.SetHeader("Reply-To", msg.ReplyTo)
	}

	switch {
	case msg.BodyHTML != "":
		m.SetBody("text/html", msg.BodyHTML)
		if msg.BodyText != "" {
			m.AddAlternative("text/plain", msg.BodyText)
		}
	case msg.BodyText != "":
		m.SetBody("text/plain", msg.BodyText)
	default:
		return nil, errors.New("email body must be provided")
	}

	return m, nil
}
