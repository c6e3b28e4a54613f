package textgen

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/storesmith/listing-tools/internal/ratelimit"
)

// Chat-completions wire format. Only the fields this client reads or writes.
type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

// attemptOutcome is the classification of a single HTTP exchange.
type attemptOutcome int

const (
	// outcomeSuccess: a usable completion was returned.
	outcomeSuccess attemptOutcome = iota

	// outcomeBackoff: the server asked us to wait (HTTP 429). Does not
	// consume the retry budget.
	outcomeBackoff

	// outcomeFailure: anything else. Consumes one attempt.
	outcomeFailure
)

// attemptResult carries one attempt's outcome plus its payload.
type attemptResult struct {
	outcome attemptOutcome

	// outcomeSuccess
	text string

	// outcomeBackoff
	wait           time.Duration
	waitFromHeader bool

	// outcomeFailure
	kind ErrorKind
	err  error

	// Last HTTP status seen, 0 when the request never completed.
	status int
}

func failure(kind ErrorKind, status int, err error) attemptResult {
	return attemptResult{outcome: outcomeFailure, kind: kind, status: status, err: err}
}

// attempt performs one HTTP exchange against the chat endpoint and
// classifies the result. It never retries; that is Complete's job.
func (c *Client) attempt(ctx context.Context, payload []byte) attemptResult {
	reqCtx, cancel := context.WithTimeout(ctx, c.opts.Timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(reqCtx, http.MethodPost, c.opts.BaseURL, bytes.NewReader(payload))
	if err != nil {
		return failure(KindNetwork, 0, fmt.Errorf("build request: %w", err))
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.opts.APIKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return failure(KindTimeout, 0, err)
		}
		return failure(KindNetwork, 0, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		wait, ok := ratelimit.ParseRetryAfter(resp.Header)
		return attemptResult{
			outcome:        outcomeBackoff,
			wait:           wait,
			waitFromHeader: ok,
			status:         resp.StatusCode,
		}
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return failure(KindNetwork, resp.StatusCode, fmt.Errorf("read response: %w", err))
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return failure(KindHTTPStatus, resp.StatusCode, fmt.Errorf("unexpected status %s", resp.Status))
	}

	var parsed chatResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return failure(KindMalformedResponse, resp.StatusCode, fmt.Errorf("decode response: %w", err))
	}
	if len(parsed.Choices) == 0 {
		return failure(KindMalformedResponse, resp.StatusCode, errors.New("response has no choices"))
	}

	content := strings.TrimSpace(parsed.Choices[0].Message.Content)
	if content == "" {
		return failure(KindMalformedResponse, resp.StatusCode, errors.New("response has empty content"))
	}

	return attemptResult{outcome: outcomeSuccess, text: content, status: resp.StatusCode}
}
