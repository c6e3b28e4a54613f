package notification

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"time"
)

const sendTimeout = 10 * time.Second

// Payload is the JSON document posted to the webhook.
type Payload struct {
	Event     string `json:"event"`
	SessionID string `json:"session_id"`
	Processed int    `json:"processed"`
	Skipped   int    `json:"skipped"`
	Message   string `json:"message"`
}

// Send posts the payload to the webhook URL.
// Fire-and-forget: never blocks past the send timeout, silent on failure.
// No-op when webhookURL is empty.
func Send(webhookURL string, payload Payload) {
	if webhookURL == "" {
		return
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), sendTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, webhookURL, bytes.NewReader(body))
	if err != nil {
		return
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return
	}
	resp.Body.Close()
}
