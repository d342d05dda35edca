// Package mailer delivers booking notification mail over SMTP.
package mailer

import (
	"fmt"
	"net/smtp"
	"strings"
)

// Sender delivers one message to one recipient.  The queue consumer and
// the direct notifier both work against this interface so tests can swap
// in a recorder.
type Sender interface {
	Send(to, subject, body string) error
}

// SMTPSender sends mail through a plain SMTP relay.  Auth is used only
// when a username is configured; local relays and Mailpit-style catchers
// accept unauthenticated mail.
type SMTPSender struct {
	addr string
	from string
	auth smtp.Auth
}

// NewSMTPSender builds a sender for the given relay.  An empty user
// disables authentication.
func NewSMTPSender(host, port, user, pass, from string) *SMTPSender {
	var auth smtp.Auth
	if user != "" {
		auth = smtp.PlainAuth("", user, pass, host)
	}
	return &SMTPSender{
		addr: fmt.Sprintf("%s:%s", strings.TrimSpace(host), strings.TrimSpace(port)),
		from: strings.TrimSpace(from),
		auth: auth,
	}
}

func (s *SMTPSender) Send(to, subject, body string) error {
	msg := buildMessage(s.from, to, subject, body)
	return smtp.SendMail(s.addr, s.auth, s.from, []string{to}, []byte(msg))
}

func buildMessage(from, to, subject, body string) string {
	// Minimal RFC 5322 message; enough for Mailpit and most SMTP relays.
	return fmt.Sprintf(
		"From: \"Khobkhun Thai massage in Groningen\" <%s>\r\nTo: %s\r\nSubject: %s\r\nMIME-Version: 1.0\r\nContent-Type: text/html; charset=utf-8\r\n\r\n%s\r\n",
		from,
		to,
		subject,
		body,
	)
}
