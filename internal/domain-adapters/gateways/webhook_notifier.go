package gateways

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// webhookMessage is the chat-webhook card payload
type webhookMessage struct {
	Title string `json:"title"`
	Text  string `json:"text"`
}

// WebhookNotifier delivers outbound chat notifications by posting message
// cards to a configured webhook URL.
type WebhookNotifier struct {
	client    *http.Client
	url       string
	userAgent string
}

// NewWebhookNotifier creates a notifier for the given webhook URL
func NewWebhookNotifier(url string) *WebhookNotifier {
	return &WebhookNotifier{
		client: &http.Client{
			Timeout: 30 * time.Second,
		},
		url:       url,
		userAgent: "titlectl/1.0",
	}
}

// SendMessage posts a titled message to the webhook
func (n *WebhookNotifier) SendMessage(ctx context.Context, title, text string) error {
	if n.url == "" {
		return fmt.Errorf("webhook URL not configured")
	}

	body, err := json.Marshal(webhookMessage{Title: title, Text: text})
	if err != nil {
		return fmt.Errorf("failed to marshal webhook payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", n.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to create webhook request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", n.userAgent)

	resp, err := n.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to post webhook message: %w", err)
	}
	//nolint:errcheck // Defer close on HTTP response body
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("webhook delivery failed: status %d: %s", resp.StatusCode, string(bodyBytes))
	}

	return nil
}
