package notification

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSend_SkipsWhenWebhookEmpty(t *testing.T) {
	var calls atomic.Int64
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
	}))
	defer ts.Close()

	Send("", Payload{Event: EventCompleted, SessionID: "listing-1"})

	assert.Equal(t, int64(0), calls.Load(), "empty webhook should send nothing")
}

func TestSend_PostsJSONPayload(t *testing.T) {
	var (
		gotMethod      string
		gotContentType string
		gotBody        []byte
	)
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotContentType = r.Header.Get("Content-Type")
		gotBody, _ = io.ReadAll(r.Body)
	}))
	defer ts.Close()

	Send(ts.URL, Payload{
		Event:     EventCompleted,
		SessionID: "listing-1756000000",
		Processed: 9,
		Skipped:   1,
		Message:   "done",
	})

	assert.Equal(t, http.MethodPost, gotMethod)
	assert.Equal(t, "application/json", gotContentType)

	var decoded Payload
	require.NoError(t, json.Unmarshal(gotBody, &decoded))
	assert.Equal(t, "completed", decoded.Event)
	assert.Equal(t, "listing-1756000000", decoded.SessionID)
	assert.Equal(t, 9, decoded.Processed)
	assert.Equal(t, 1, decoded.Skipped)
	assert.Equal(t, "done", decoded.Message)
}

func TestSend_SilentOnServerError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer ts.Close()

	// Must not panic or surface the failure.
	Send(ts.URL, Payload{Event: EventFailed, SessionID: "listing-1"})
}

func TestSend_SilentOnUnreachableHost(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	ts.Close()

	start := time.Now()
	Send(ts.URL, Payload{Event: EventFailed, SessionID: "listing-1"})

	assert.Less(t, time.Since(start), time.Second, "connection refusal should fail fast")
}

func TestSend_TimesOutAgainstStalledServer(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping timeout test in short mode")
	}

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Drain the body so the server watches for client disconnect;
		// otherwise the request context is never canceled and Close hangs.
		io.Copy(io.Discard, r.Body)
		<-r.Context().Done()
	}))
	defer ts.Close()

	start := time.Now()
	Send(ts.URL, Payload{Event: EventCompleted, SessionID: "listing-1"})
	elapsed := time.Since(start)

	assert.Less(t, elapsed, sendTimeout+2*time.Second, "should give up at the send timeout")
}

func TestSend_MultipleCallsInSequence(t *testing.T) {
	var calls atomic.Int64
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
	}))
	defer ts.Close()

	for i := 0; i < 3; i++ {
		Send(ts.URL, Payload{Event: EventCompleted, SessionID: "listing-1"})
	}

	assert.Equal(t, int64(3), calls.Load())
}
