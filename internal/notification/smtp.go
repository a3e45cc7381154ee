package notification

import (
	"fmt"
	"log"

	gomail "gopkg.in/gomail.v2"

	"vetapp-api/config"
)

// SMTPSender delivers messages over SMTP. With mail disabled in config it
// logs each message instead of sending it.
type SMTPSender struct {
	cfg config.MailConfig
}

// NewSMTPSender creates an SMTPSender from mail configuration.
func NewSMTPSender(cfg config.MailConfig) *SMTPSender {
	return &SMTPSender{cfg: cfg}
}

var _ Sender = (*SMTPSender)(nil)

// Send delivers msg via SMTP.
func (s *SMTPSender) Send(msg Message) error {
	if !s.cfg.Enabled {
		log.Printf("Mail disabled - not sent: %q to %s", msg.Subject, msg.To)
		return nil
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.cfg.From)
	m.SetHeader("To", msg.To)
	m.SetHeader("Subject", msg.Subject)
	m.SetBody("text/plain", msg.Body)

	d := gomail.NewDialer(s.cfg.Host, s.cfg.Port, s.cfg.Username, s.cfg.Password)
	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email to %s: %w", msg.To, err)
	}

	log.Printf("Email sent to: %s", msg.To)
	return nil
}
