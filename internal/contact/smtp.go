package contact

import (
	"context"
	"fmt"
	"net"
	"net/smtp"
	"strconv"
	"strings"

	"folioapi/internal/config"
	"folioapi/internal/model"
)

var sendMail = smtp.SendMail

// SMTPSender mails submissions to the owner's inbox with PLAIN auth.
type SMTPSender struct {
	cfg config.SMTPConfig
}

// NewSMTPSender returns a sender for cfg. Missing credentials or recipient
// are reported on Send, not here, so the rest of the API still starts.
func NewSMTPSender(cfg config.SMTPConfig) *SMTPSender {
	return &SMTPSender{cfg: cfg}
}

// Configured reports whether Send can attempt delivery.
func (s *SMTPSender) Configured() bool {
	return s.cfg.Host != "" && s.cfg.User != "" && s.cfg.Password != "" && s.cfg.To != ""
}

func (s *SMTPSender) Send(ctx context.Context, msg model.ContactMessage) error {
	if !s.Configured() {
		return ErrNotConfigured
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	addr := net.JoinHostPort(s.cfg.Host, strconv.Itoa(s.cfg.Port))
	auth := smtp.PlainAuth("", s.cfg.User, s.cfg.Password, s.cfg.Host)
	if err := sendMail(addr, auth, s.cfg.User, []string{s.cfg.To}, compose(s.cfg, msg)); err != nil {
		return fmt.Errorf("smtp send: %w", err)
	}
	return nil
}

// headerSafe drops CR and LF so user input cannot add headers.
func headerSafe(v string) string {
	return strings.NewReplacer("\r", "", "\n", " ").Replace(v)
}

func compose(cfg config.SMTPConfig, msg model.ContactMessage) []byte {
	var b strings.Builder
	b.WriteString("To: " + cfg.To + "\r\n")
	b.WriteString("From: " + cfg.User + "\r\n")
	b.WriteString("Reply-To: " + headerSafe(msg.Email) + "\r\n")
	b.WriteString("Subject: Portfolio Contact: " + headerSafe(msg.Name) + "\r\n")
	b.WriteString("Content-Type: text/plain; charset=UTF-8\r\n")
	b.WriteString("\r\n")
	b.WriteString("New contact form submission from your portfolio:\r\n\r\n")
	b.WriteString("Name: " + msg.Name + "\r\n")
	b.WriteString("Email: " + msg.Email + "\r\n")
	b.WriteString("Message:\r\n" + msg.Message + "\r\n")
	return []byte(b.String())
}
