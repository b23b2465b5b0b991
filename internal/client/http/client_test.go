package http

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cyphera/onramp-engine/internal/logger"
)

func init() {
	logger.InitLogger("test")
}

type recordingMetrics struct {
	mu       sync.Mutex
	counts   []int
	errors   int
	upstream string
}

func (r *recordingMetrics) RecordRequestDuration(upstream, method, path string, statusCode int, duration time.Duration) {
}

func (r *recordingMetrics) RecordRequestCount(upstream, method, path string, statusCode int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.upstream = upstream
	r.counts = append(r.counts, statusCode)
}

func (r *recordingMetrics) RecordRequestError(upstream, method, path string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.errors++
}

func fastRetry(n int) *RetryConfig {
	cfg := DefaultRetryConfig()
	cfg.MaxRetries = n
	cfg.Interval = time.Millisecond
	return cfg
}

func TestHTTPClient_GetJSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/quote", r.URL.Path)
		assert.Equal(t, "abc", r.URL.Query().Get("inputMint"))
		assert.Equal(t, "key", r.Header.Get("X-API-Key"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"outAmount":"42"}`))
	}))
	defer server.Close()

	metrics := &recordingMetrics{}
	client := NewHTTPClient(
		WithBaseURL(server.URL),
		WithUpstreamName("jupiter"),
		WithDefaultHeader("X-API-Key", "key"),
		WithMetricsCollector(metrics),
	)

	var out struct {
		OutAmount string `json:"outAmount"`
	}
	err := client.GetJSON(context.Background(), "quote", &out, WithQueryParam("inputMint", "abc"))
	require.NoError(t, err)
	assert.Equal(t, "42", out.OutAmount)
	assert.Equal(t, []int{200}, metrics.counts)
	assert.Equal(t, "jupiter", metrics.upstream)
	assert.Zero(t, metrics.errors)
}

func TestHTTPClient_RetriesServerErrors(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		_, _ = w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client := NewHTTPClient(WithBaseURL(server.URL), WithRetryConfig(fastRetry(3)))
	var out map[string]interface{}
	require.NoError(t, client.GetJSON(context.Background(), "/", &out))
	assert.Equal(t, int32(3), atomic.LoadInt32(&calls))
}

func TestHTTPClient_RetriesExhausted(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	metrics := &recordingMetrics{}
	client := NewHTTPClient(WithBaseURL(server.URL), WithRetryConfig(fastRetry(2)), WithMetricsCollector(metrics))
	_, err := client.Get(context.Background(), "/")
	require.Error(t, err)
	assert.Equal(t, int32(3), atomic.LoadInt32(&calls))
	assert.Equal(t, 1, metrics.errors)
}

func TestHTTPClient_ClientErrorNotRetried(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":"bad mint"}`))
	}))
	defer server.Close()

	client := NewHTTPClient(WithBaseURL(server.URL), WithRetryConfig(fastRetry(3)))
	var out map[string]interface{}
	err := client.GetJSON(context.Background(), "/quote", &out)
	require.Error(t, err)

	var httpErr *HTTPError
	require.True(t, errors.As(err, &httpErr))
	assert.Equal(t, http.StatusBadRequest, httpErr.StatusCode)
	assert.True(t, httpErr.IsClientError())
	assert.Contains(t, httpErr.Body, "bad mint")
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestHTTPClient_MalformedBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`not json`))
	}))
	defer server.Close()

	client := NewHTTPClient(WithBaseURL(server.URL))
	var out map[string]interface{}
	err := client.GetJSON(context.Background(), "/", &out)
	var decodeErr *DecodeError
	assert.True(t, errors.As(err, &decodeErr))
}

func TestHTTPClient_ContextCancelStopsRetries(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	cfg := DefaultRetryConfig()
	cfg.MaxRetries = 10
	cfg.Interval = 50 * time.Millisecond
	client := NewHTTPClient(WithBaseURL(server.URL), WithRetryConfig(cfg))

	ctx, cancel := context.WithTimeout(context.Background(), 80*time.Millisecond)
	defer cancel()
	_, err := client.Get(ctx, "/")
	require.Error(t, err)
	assert.Less(t, atomic.LoadInt32(&calls), int32(5))
}

func TestHTTPError_IsClientError(t *testing.T) {
	assert.True(t, (&HTTPError{StatusCode: 404}).IsClientError())
	assert.False(t, (&HTTPError{StatusCode: 429}).IsClientError())
	assert.False(t, (&HTTPError{StatusCode: 408}).IsClientError())
	assert.False(t, (&HTTPError{StatusCode: 500}).IsClientError())
}
