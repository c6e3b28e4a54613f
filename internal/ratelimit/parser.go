// Package ratelimit handles server-driven backoff for rate-limited HTTP calls.
package ratelimit

import (
	"net/http"
	"strconv"
	"strings"
	"time"
)

// ParseRetryAfter extracts the wait duration from a Retry-After header.
// Both forms defined by RFC 9110 are accepted: delay-seconds and HTTP-date.
// Returns (0, false) when the header is absent or unparseable. Durations are
// clamped to zero so a date in the past never yields a negative wait.
func ParseRetryAfter(h http.Header) (time.Duration, bool) {
	v := strings.TrimSpace(h.Get("Retry-After"))
	if v == "" {
		return 0, false
	}

	if secs, err := strconv.Atoi(v); err == nil {
		if secs < 0 {
			return 0, false
		}
		return time.Duration(secs) * time.Second, true
	}

	if t, err := http.ParseTime(v); err == nil {
		d := time.Until(t)
		if d < 0 {
			d = 0
		}
		return d, true
	}

	return 0, false
}

// FallbackDelay computes the wait for a rate-limited response that carried no
// usable Retry-After header. The delay grows linearly with the number of
// waits already performed: base, 2*base, 3*base, ... (attempt is 0-based).
func FallbackDelay(base time.Duration, attempt int) time.Duration {
	return base * time.Duration(attempt+1)
}
