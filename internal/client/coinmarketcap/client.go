package coinmarketcap

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	httpClient "github.com/cyphera/onramp-engine/internal/client/http"
	"github.com/cyphera/onramp-engine/internal/constants"
	"github.com/cyphera/onramp-engine/internal/logger"
)

const (
	defaultBaseURL = "https://pro-api.coinmarketcap.com"
	defaultTimeout = 10 * time.Second
)

// ErrNoQuote is returned when the response holds no price for the symbol.
var ErrNoQuote = errors.New("no quote for symbol")

// Client fetches reference prices from the CoinMarketCap API.
type Client struct {
	apiKey     string
	httpClient *httpClient.HTTPClient
}

// NewClient creates a new CoinMarketCap API client. baseURL may be empty.
func NewClient(apiKey, baseURL string, metrics httpClient.MetricsCollector) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &Client{
		apiKey: apiKey,
		httpClient: httpClient.NewHTTPClient(
			httpClient.WithBaseURL(baseURL),
			httpClient.WithUpstreamName("coinmarketcap"),
			httpClient.WithTimeout(defaultTimeout),
			httpClient.WithMetricsCollector(metrics),
		),
	}
}

type CmcQuote struct {
	Price       float64 `json:"price"`
	Volume24h   float64 `json:"volume_24h"`
	LastUpdated string  `json:"last_updated"`
}

type CmcTokenData struct {
	ID     int                 `json:"id"`
	Name   string              `json:"name"`
	Symbol string              `json:"symbol"`
	Quote  map[string]CmcQuote `json:"quote"`
}

type CmcStatus struct {
	Timestamp    string `json:"timestamp"`
	ErrorCode    int    `json:"error_code"`
	ErrorMessage string `json:"error_message"`
}

// V2 uses an array even for a single symbol query
type CmcAPIResponse struct {
	Status CmcStatus                 `json:"status"`
	Data   map[string][]CmcTokenData `json:"data"`
}

// Error represents an API error returned by CoinMarketCap.
type Error struct {
	Code    int
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("CoinMarketCap API Error %d: %s", e.Code, e.Message)
}

// GetLatestQuotes fetches the latest quotes for the given symbols.
func (c *Client) GetLatestQuotes(ctx context.Context, tokenSymbols []string, convertSymbols []string) (*CmcAPIResponse, error) {
	if len(tokenSymbols) == 0 {
		return nil, fmt.Errorf("tokenSymbols cannot be empty")
	}

	requestOptions := []httpClient.RequestOption{
		httpClient.WithQueryParam("symbol", strings.ToUpper(strings.Join(tokenSymbols, ","))),
		httpClient.WithHeader("X-CMC_PRO_API_KEY", c.apiKey),
	}
	if len(convertSymbols) > 0 {
		requestOptions = append(requestOptions, httpClient.WithQueryParam("convert", strings.ToUpper(strings.Join(convertSymbols, ","))))
	}

	var apiResponse CmcAPIResponse
	if err := c.httpClient.GetJSON(ctx, "/v2/cryptocurrency/quotes/latest", &apiResponse, requestOptions...); err != nil {
		logger.Error("CoinMarketCap API request failed", zap.Error(err))
		return nil, fmt.Errorf("failed to get latest quotes from CoinMarketCap: %w", err)
	}
	if apiResponse.Status.ErrorCode != 0 {
		return nil, &Error{Code: apiResponse.Status.ErrorCode, Message: apiResponse.Status.ErrorMessage}
	}
	return &apiResponse, nil
}

// GetUSDPrice returns the latest USD price for a single symbol.
func (c *Client) GetUSDPrice(ctx context.Context, symbol string) (float64, error) {
	symbol = strings.ToUpper(symbol)
	resp, err := c.GetLatestQuotes(ctx, []string{symbol}, []string{constants.USDCurrency})
	if err != nil {
		return 0, err
	}
	entries := resp.Data[symbol]
	if len(entries) == 0 {
		return 0, fmt.Errorf("%w: %s", ErrNoQuote, symbol)
	}
	quote, ok := entries[0].Quote[constants.USDCurrency]
	if !ok || quote.Price <= 0 {
		return 0, fmt.Errorf("%w: %s", ErrNoQuote, symbol)
	}
	return quote.Price, nil
}
