package mailer

import (
	"context"
	"fmt"
	"net/http"

	"github.com/go-resty/resty/v2"
)

/**
 * @time: 2024/11/10 11:05
 * @file: mailer.go
 * @description: resend-style mail gateway client
 */

type Conf struct {
	Endpoint string
	ApiKey   string
	From     string
}

// Message is a single outbound e-mail.
type Message struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	Html    string   `json:"html"`
}

// IMailer sends a single message; the fan-out over recipients lives in the
// service layer.
type IMailer interface {
	Send(ctx context.Context, msg *Message) error
}

type Mailer struct {
	conf   Conf
	client *resty.Client
}

func NewMailer(conf Conf) *Mailer {
	return &Mailer{
		conf:   conf,
		client: resty.New().SetBaseURL(conf.Endpoint),
	}
}

// Send posts one message to the gateway. The gateway owns delivery mechanics,
// a non-2xx response is the only failure signal we get.
func (m *Mailer) Send(ctx context.Context, msg *Message) error {
	if msg.From == "" {
		msg.From = m.conf.From
	}

	resp, err := m.client.R().
		SetContext(ctx).
		SetHeader("Authorization", "Bearer "+m.conf.ApiKey).
		SetHeader("Content-Type", "application/json").
		SetBody(msg).
		Post("/emails")
	if err != nil {
		return fmt.Errorf("mail gateway request failed: %w", err)
	}

	if resp.StatusCode() != http.StatusOK && resp.StatusCode() != http.StatusCreated {
		return fmt.Errorf("mail gateway returned status %d: %s", resp.StatusCode(), resp.String())
	}

	return nil
}
