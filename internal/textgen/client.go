// Package textgen implements the retrying client for the Mistral
// chat-completions endpoint.
//
// Each request runs as a loop over single HTTP attempts. An attempt ends in
// one of three outcomes: success, server backoff (HTTP 429), or failure.
// Failures consume the fixed retry budget with a constant delay between
// attempts; backoffs sleep for the server-provided duration and retry the
// same attempt, bounded only by a separate wait budget.
package textgen

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/storesmith/listing-tools/internal/ratelimit"
)

// systemPrompt primes every conversation.
const systemPrompt = "You are a helpful assistant."

const (
	defaultBaseURL        = "https://api.mistral.ai/v1/chat/completions"
	defaultModel          = "mistral-tiny"
	defaultMaxRetries     = 3
	defaultRetryDelay     = 2 * time.Second
	defaultRateLimitWaits = 5
	defaultTimeout        = 30 * time.Second
)

// Options configures a Client. Zero values fall back to the documented
// defaults; only APIKey is required.
type Options struct {
	BaseURL string
	APIKey  string
	Model   string

	// MaxRetries is the total number of request attempts per call.
	MaxRetries int

	// RetryDelay is the fixed sleep between failed attempts. It is also the
	// base for the linear fallback wait when a 429 carries no Retry-After.
	RetryDelay time.Duration

	// RateLimitWaits bounds how many 429 waits a single call will perform.
	RateLimitWaits int

	// Timeout applies to each HTTP attempt individually.
	Timeout time.Duration

	// HTTPClient overrides the transport, mainly for tests.
	HTTPClient *http.Client

	// OnRetry is called before sleeping after a failed attempt.
	OnRetry func(attempt, maxRetries int, delay time.Duration, err error)

	// OnRateLimit is called before sleeping for a server-driven wait.
	OnRateLimit func(wait time.Duration)
}

// Client is a retrying chat-completions client. Safe for sequential use;
// nothing here is goroutine-safe and nothing needs to be.
type Client struct {
	opts       Options
	httpClient *http.Client
}

// NewClient validates opts, applies defaults, and returns a ready Client.
func NewClient(opts Options) (*Client, error) {
	if opts.APIKey == "" {
		return nil, errors.New("textgen: API key is required")
	}
	if opts.BaseURL == "" {
		opts.BaseURL = defaultBaseURL
	}
	if opts.Model == "" {
		opts.Model = defaultModel
	}
	if opts.MaxRetries == 0 {
		opts.MaxRetries = defaultMaxRetries
	}
	if opts.RetryDelay == 0 {
		opts.RetryDelay = defaultRetryDelay
	}
	if opts.RateLimitWaits == 0 {
		opts.RateLimitWaits = defaultRateLimitWaits
	}
	if opts.Timeout == 0 {
		opts.Timeout = defaultTimeout
	}

	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{}
	}

	return &Client{opts: opts, httpClient: httpClient}, nil
}

// Model returns the configured model name.
func (c *Client) Model() string {
	return c.opts.Model
}

// Complete sends prompt to the chat endpoint and returns the trimmed
// completion text.
//
// Failed attempts are retried up to MaxRetries times with RetryDelay between
// them; the terminal error is always a *RequestError. 429 responses are not
// failures: the client sleeps for the Retry-After duration (or the linear
// fallback) and retries without touching the attempt budget, up to
// RateLimitWaits sleeps. Context cancellation during a sleep returns the
// context error unchanged.
func (c *Client) Complete(ctx context.Context, prompt string) (string, error) {
	payload, err := json.Marshal(chatRequest{
		Model: c.opts.Model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: prompt},
		},
	})
	if err != nil {
		return "", &RequestError{Kind: KindMalformedResponse, Underlying: fmt.Errorf("encode request: %w", err)}
	}

	attempts := 0
	waits := 0

	for {
		res := c.attempt(ctx, payload)

		switch res.outcome {
		case outcomeSuccess:
			return res.text, nil

		case outcomeBackoff:
			if waits >= c.opts.RateLimitWaits {
				return "", &RequestError{
					Kind:       KindRateLimitExhausted,
					Status:     res.status,
					Attempts:   attempts,
					Underlying: fmt.Errorf("server rate limited %d consecutive attempts", waits+1),
				}
			}

			wait := res.wait
			if !res.waitFromHeader {
				wait = ratelimit.FallbackDelay(c.opts.RetryDelay, waits)
			}
			waits++

			if c.opts.OnRateLimit != nil {
				c.opts.OnRateLimit(wait)
			}
			if err := ratelimit.Wait(ctx, wait); err != nil {
				return "", err
			}
			// Server-driven waits do not consume the retry budget.

		case outcomeFailure:
			attempts++
			if attempts >= c.opts.MaxRetries {
				return "", &RequestError{
					Kind:       res.kind,
					Status:     res.status,
					Attempts:   attempts,
					Underlying: res.err,
				}
			}

			if c.opts.OnRetry != nil {
				c.opts.OnRetry(attempts, c.opts.MaxRetries, c.opts.RetryDelay, res.err)
			}
			if err := ratelimit.Wait(ctx, c.opts.RetryDelay); err != nil {
				return "", err
			}
		}
	}
}
