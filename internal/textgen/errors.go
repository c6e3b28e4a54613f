package textgen

import "fmt"

// ErrorKind classifies terminal text-request failures.
type ErrorKind string

const (
	// KindNetwork covers transport failures: connection refused, DNS, reset.
	KindNetwork ErrorKind = "network"

	// KindTimeout covers attempts that exceeded the per-call timeout.
	KindTimeout ErrorKind = "timeout"

	// KindHTTPStatus covers non-2xx, non-429 responses.
	KindHTTPStatus ErrorKind = "http-status"

	// KindMalformedResponse covers bodies that cannot be decoded or are
	// missing the expected completion content.
	KindMalformedResponse ErrorKind = "malformed-response"

	// KindRateLimitExhausted is returned when the server kept answering 429
	// past the configured wait budget.
	KindRateLimitExhausted ErrorKind = "rate-limit-exhausted"
)

// RequestError is the terminal failure of a text request after the retry
// budget is spent. Status is the last HTTP status seen (0 when no response
// arrived). Attempts counts completed request attempts; server-driven rate
// limit waits are not attempts and never appear here.
type RequestError struct {
	Kind       ErrorKind
	Status     int
	Attempts   int
	Underlying error
}

func (e *RequestError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("text request failed (%s, status %d, %d attempts): %v", e.Kind, e.Status, e.Attempts, e.Underlying)
	}
	return fmt.Sprintf("text request failed (%s, %d attempts): %v", e.Kind, e.Attempts, e.Underlying)
}

func (e *RequestError) Unwrap() error {
	return e.Underlying
}
