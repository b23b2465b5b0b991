package jupiter

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	httpClient "github.com/cyphera/onramp-engine/internal/client/http"
)

// ErrMissingOutAmount is returned when a 2xx quote has no usable outAmount.
var ErrMissingOutAmount = errors.New("quote response missing outAmount")

// Client talks to a Jupiter-compatible swap quote API.
type Client struct {
	httpClient *httpClient.HTTPClient
}

// Config holds the connection settings for the quote API.
type Config struct {
	BaseURL    string
	Timeout    time.Duration
	MaxRetries int
	RetryDelay time.Duration
	Metrics    httpClient.MetricsCollector
}

func NewClient(cfg Config) *Client {
	retry := httpClient.DefaultRetryConfig()
	retry.MaxRetries = cfg.MaxRetries
	if cfg.RetryDelay > 0 {
		retry.Interval = cfg.RetryDelay
	}
	opts := []httpClient.ClientOption{
		httpClient.WithBaseURL(cfg.BaseURL),
		httpClient.WithUpstreamName("jupiter"),
		httpClient.WithRetryConfig(retry),
		httpClient.WithMetricsCollector(cfg.Metrics),
		httpClient.WithMiddleware(httpClient.LoggingMiddleware()),
	}
	if cfg.Timeout > 0 {
		opts = append(opts, httpClient.WithTimeout(cfg.Timeout))
	}
	return &Client{httpClient: httpClient.NewHTTPClient(opts...)}
}

// GetQuote fetches an ExactIn quote.
func (c *Client) GetQuote(ctx context.Context, req QuoteRequest) (*QuoteResponse, error) {
	var quote QuoteResponse
	err := c.httpClient.GetJSON(ctx, "/quote", &quote,
		httpClient.WithQueryParam("inputMint", req.InputMint),
		httpClient.WithQueryParam("outputMint", req.OutputMint),
		httpClient.WithQueryParam("amount", req.Amount),
		httpClient.WithQueryParam("slippageBps", strconv.Itoa(req.SlippageBps)),
	)
	if err != nil {
		return nil, fmt.Errorf("jupiter quote %s -> %s: %w", req.InputMint, req.OutputMint, err)
	}
	if quote.OutAmount == "" {
		return nil, ErrMissingOutAmount
	}
	return &quote, nil
}
