package services

import (
	"context"
	"fmt"

	"github.com/resend/resend-go/v2"
)

// EmailAttachment is a binary payload attached to an outbound message.
type EmailAttachment struct {
	Filename string
	Content  []byte
}

// EmailMessage is one outbound application email.
type EmailMessage struct {
	From        string
	To          string
	ReplyTo     string
	Subject     string
	HTML        string
	Attachments []EmailAttachment
}

// Mailer performs a single send attempt and returns the provider message
// id. Both a structured error reply and a transport failure surface as a
// non-nil error; the dispatch loop treats them identically.
type Mailer interface {
	Send(ctx context.Context, msg *EmailMessage) (string, error)
}

type resendMailer struct {
	client *resend.Client
}

func NewResendMailer(apiKey string) Mailer {
	return &resendMailer{
		client: resend.NewClient(apiKey),
	}
}

// Send implements Mailer.
func (m *resendMailer) Send(ctx context.Context, msg *EmailMessage) (string, error) {
	params := &resend.SendEmailRequest{
		From:    msg.From,
		To:      []string{msg.To},
		ReplyTo: msg.ReplyTo,
		Subject: msg.Subject,
		Html:    msg.HTML,
	}

	for _, att := range msg.Attachments {
		params.Attachments = append(params.Attachments, &resend.Attachment{
			Filename: att.Filename,
			Content:  att.Content,
		})
	}

	sent, err := m.client.Emails.SendWithContext(ctx, params)
	if err != nil {
		return "", fmt.Errorf("resend send failed: %w", err)
	}

	return sent.Id, nil
}
