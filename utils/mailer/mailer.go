// Package mailer delivers transactional email through Resend, or only logs it when no
// API key is configured (local development).
package mailer

import (
	"context"

	"github.com/cristianCeamatuAssist/assist-cursos-play-and-learn/utils/redislog"

	"github.com/hyp3rd/ewrap/pkg/ewrap"
	"github.com/resend/resend-go/v2"
)

// DevMessageID is returned by the log-only mailer.
const DevMessageID = "dummy-id"

// Message is one outgoing email.
type Message struct {
	To      string
	Subject string
	HTML    string
	Text    string
}

// Mailer sends a message and returns the provider message id.
type Mailer interface {
	Send(ctx context.Context, msg Message) (string, error)
}

// New picks the Resend mailer when apiKey is set, the log-only mailer otherwise.
func New(apiKey, from string, log *redislog.Logger) Mailer {
	if apiKey == "" {
		log.Warn("resend_api_key not set; emails will only be logged", nil)
		return &LogMailer{from: from, log: log}
	}
	return &ResendMailer{client: resend.NewClient(apiKey), from: from}
}

// ResendMailer sends through the Resend HTTP API.
type ResendMailer struct {
	client *resend.Client
	from   string
}

func (m *ResendMailer) Send(ctx context.Context, msg Message) (string, error) {
	sent, err := m.client.Emails.SendWithContext(ctx, &resend.SendEmailRequest{
		From:    m.from,
		To:      []string{msg.To},
		Subject: msg.Subject,
		Html:    msg.HTML,
		Text:    msg.Text,
	})
	if err != nil {
		return "", ewrap.Wrap(err, "resend send")
	}
	return sent.Id, nil
}

// LogMailer records the message instead of sending it.
type LogMailer struct {
	from string
	log  *redislog.Logger
}

func (m *LogMailer) Send(_ context.Context, msg Message) (string, error) {
	m.log.Info("email would be sent", map[string]string{"from": m.from, "to": msg.To, "subject": msg.Subject})
	return DevMessageID, nil
}
