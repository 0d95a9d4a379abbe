// Package mailer sends transactional email over plain SMTP. Delivery is a
// fire-and-forget side effect: callers run it in a goroutine and only log
// failures, a failed send never fails the request that triggered it.
package mailer

import (
	"fmt"
	"net/smtp"
)

// Mailer holds the SMTP connection settings
type Mailer struct {
	host     string
	port     string
	username string
	password string
	from     string
}

// New creates a Mailer. An empty host disables sending (local development).
func New(host, port, username, password, from string) *Mailer {
	return &Mailer{
		host:     host,
		port:     port,
		username: username,
		password: password,
		from:     from,
	}
}

// SendOTP emails the verification code to the given address
func (m *Mailer) SendOTP(to, code string) error {
	if m.host == "" {
		return fmt.Errorf("SMTP host not configured, OTP for %s not sent", to)
	}

	subject := "Verify your Campus Kart account"
	body := fmt.Sprintf(
		"Your verification code is %s.\r\n\r\nIt expires in 10 minutes. If you did not sign up, ignore this email.\r\n",
		code,
	)
	msg := []byte(fmt.Sprintf(
		"From: %s\r\nTo: %s\r\nSubject: %s\r\nMIME-Version: 1.0\r\nContent-Type: text/plain; charset=utf-8\r\n\r\n%s",
		m.from, to, subject, body,
	))

	auth := smtp.PlainAuth("", m.username, m.password, m.host)
	return smtp.SendMail(m.host+":"+m.port, auth, m.from, []string{to}, msg)
}
