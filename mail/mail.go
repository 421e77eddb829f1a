// Package mail defines the outbound email contract and its SMTP relay
// implementation.
package mail

import (
	"fmt"

	gomail "github.com/wneessen/go-mail"
)

// Sender is the contract for sending a single HTML email.
type Sender interface {
	Send(from, to, subject, html string) error
}

// SMTPSender delivers mail through an SMTP relay using an API token as the
// password (the relay's convention: username "api", token as password).
type SMTPSender struct {
	Host     string
	Port     int
	Username string
	Password string
}

// Send builds and delivers one HTML message. Each call dials a fresh
// connection; the site sends mail rarely enough that pooling is not worth it.
func (s *SMTPSender) Send(from, to, subject, html string) error {
	msg := gomail.NewMsg()
	if err := msg.From(from); err != nil {
		return fmt.Errorf("mail: invalid sender %q: %w", from, err)
	}
	if err := msg.To(to); err != nil {
		return fmt.Errorf("mail: invalid recipient %q: %w", to, err)
	}
	msg.Subject(subject)
	msg.SetBodyString(gomail.TypeTextHTML, html)

	client, err := gomail.NewClient(s.Host,
		gomail.WithPort(s.Port),
		gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
		gomail.WithUsername(s.Username),
		gomail.WithPassword(s.Password),
		gomail.WithTLSPolicy(gomail.TLSMandatory),
	)
	if err != nil {
		return fmt.Errorf("mail: client: %w", err)
	}
	if err := client.DialAndSend(msg); err != nil {
		return fmt.Errorf("mail: send to %s: %w", to, err)
	}
	return nil
}

// Message is one email captured by the Memory sender.
type Message struct {
	From    string
	To      string
	Subject string
	HTML    string
}

// Memory records messages instead of sending them. Test double.
type Memory struct {
	Outbox []Message
}

// Send appends the message to the outbox.
func (m *Memory) Send(from, to, subject, html string) error {
	m.Outbox = append(m.Outbox, Message{From: from, To: to, Subject: subject, HTML: html})
	return nil
}
