package core

import "net/mail"

// EmailMessage is the outbound unit handed to an EmailService.
// Content is plain text; the notification core composes final bodies itself.
type EmailMessage struct {
	To          []mail.Address
	Cc          []mail.Address
	Bcc         []mail.Address
	Subject     string
	TextContent string
}

func (m *EmailMessage) HasRecipients() bool { return len(m.To) > 0 }
func (m *EmailMessage) HasContent() bool    { return m.TextContent != "" }

// EmailService is any service that can send emails.
// SendMessage is synchronous: callers rely on the returned error to commit
// the delivery status of the message they logged.
type EmailService interface {
	SendMessage(msg *EmailMessage) error
}
