// Package mailer sends transactional account emails (activation, password
// reset) over SMTP. With no SMTP host configured it degrades to logging
// the links, which keeps local development working without a relay.
package mailer

import (
	"fmt"
	"log"
	"net/smtp"
	"strings"

	"github.com/Kariqs/jobland-api/internal/config"
)

// Mailer sends account emails.
type Mailer struct {
	cfg config.SMTPConfig
}

// New creates a mailer from SMTP settings.
func New(cfg config.SMTPConfig) *Mailer {
	return &Mailer{cfg: cfg}
}

// enabled reports whether a relay is configured.
func (m *Mailer) enabled() bool {
	return m.cfg.Host != ""
}

// SendActivation emails the account activation link.
func (m *Mailer) SendActivation(to, name, activationURL string) error {
	body := fmt.Sprintf(
		"Hi %s,\n\nWelcome to Jobland. Activate your account:\n\n%s\n\nHave a great time finding your career breakthrough.\n",
		name, activationURL,
	)
	return m.send(to, "Activate your Jobland account", body)
}

// SendPasswordReset emails the password reset link.
func (m *Mailer) SendPasswordReset(to, name, resetURL string) error {
	body := fmt.Sprintf(
		"Hi %s,\n\nA password reset was requested for your account. Reset it here:\n\n%s\n\nIf you did not request this, ignore this email.\n",
		name, resetURL,
	)
	return m.send(to, "Reset your Jobland password", body)
}

func (m *Mailer) send(to, subject, body string) error {
	if !m.enabled() {
		log.Printf("[MAILER] SMTP not configured, skipping email to %s: %s", to, subject)
		return nil
	}

	var msg strings.Builder
	fmt.Fprintf(&msg, "From: %s\r\n", m.cfg.From)
	fmt.Fprintf(&msg, "To: %s\r\n", to)
	fmt.Fprintf(&msg, "Subject: %s\r\n", subject)
	msg.WriteString("MIME-Version: 1.0\r\nContent-Type: text/plain; charset=UTF-8\r\n\r\n")
	msg.WriteString(body)

	addr := m.cfg.Host + ":" + m.cfg.Port
	auth := smtp.PlainAuth("", m.cfg.Username, m.cfg.Password, m.cfg.Host)
	if err := smtp.SendMail(addr, auth, m.cfg.From, []string{to}, []byte(msg.String())); err != nil {
		return fmt.Errorf("failed to send email to %s: %w", to, err)
	}
	return nil
}
