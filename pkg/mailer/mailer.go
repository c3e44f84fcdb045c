// Package mailer relays visitor messages to an external email-sending HTTP
// endpoint. Delivery is fire-once: a failed send is terminal for the request,
// never retried.
package mailer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// DefaultEndpoint is used when MAIL_RELAY_URL is not configured.
const DefaultEndpoint = "https://2.vil0.com/send-email"

// Message is the relay payload. Body is HTML.
type Message struct {
	From    string `json:"from"`
	ReplyTo string `json:"replyTo"`
	To      string `json:"to"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

// Mailer posts messages to a single relay endpoint.
type Mailer struct {
	endpoint string
	client   *http.Client
}

// New returns a Mailer for the given endpoint, falling back to
// DefaultEndpoint when it is empty.
func New(endpoint string) *Mailer {
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	return &Mailer{
		endpoint: endpoint,
		client:   &http.Client{Timeout: 15 * time.Second},
	}
}

// Send posts the message as JSON. Any non-2xx response is an error.
func (m *Mailer) Send(ctx context.Context, msg Message) error {
	payload, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("encode message: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, m.endpoint, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := m.client.Do(req)
	if err != nil {
		return fmt.Errorf("send email: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("send email: relay returned %s", resp.Status)
	}
	return nil
}
