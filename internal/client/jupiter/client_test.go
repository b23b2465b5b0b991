package jupiter

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	httpClient "github.com/cyphera/onramp-engine/internal/client/http"
	"github.com/cyphera/onramp-engine/internal/logger"
)

func init() {
	logger.InitLogger("test")
}

const solUSDCQuote = `{
  "inputMint": "So11111111111111111111111111111111111111112",
  "inAmount": "1000000000",
  "outputMint": "EPjFWdd5AufqSSqeM2qN1xzybapC8G4wEGGkZwyTDt1v",
  "outAmount": "152340000",
  "otherAmountThreshold": "151578300",
  "swapMode": "ExactIn",
  "slippageBps": 50,
  "priceImpactPct": "0.0012",
  "routePlan": [
    {"swapInfo": {"ammKey": "a", "label": "Whirlpool", "inputMint": "So11111111111111111111111111111111111111112", "outputMint": "EPjFWdd5AufqSSqeM2qN1xzybapC8G4wEGGkZwyTDt1v", "inAmount": "1000000000", "outAmount": "152340000"}, "percent": 100}
  ]
}`

func newTestClient(url string) *Client {
	return NewClient(Config{BaseURL: url, Timeout: time.Second, MaxRetries: 1, RetryDelay: time.Millisecond})
}

func TestGetQuote(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/quote", r.URL.Path)
		q := r.URL.Query()
		assert.Equal(t, "So11111111111111111111111111111111111111112", q.Get("inputMint"))
		assert.Equal(t, "EPjFWdd5AufqSSqeM2qN1xzybapC8G4wEGGkZwyTDt1v", q.Get("outputMint"))
		assert.Equal(t, "1000000000", q.Get("amount"))
		assert.Equal(t, "50", q.Get("slippageBps"))
		_, _ = w.Write([]byte(solUSDCQuote))
	}))
	defer server.Close()

	quote, err := newTestClient(server.URL).GetQuote(context.Background(), QuoteRequest{
		InputMint:   "So11111111111111111111111111111111111111112",
		OutputMint:  "EPjFWdd5AufqSSqeM2qN1xzybapC8G4wEGGkZwyTDt1v",
		Amount:      "1000000000",
		SlippageBps: 50,
	})
	require.NoError(t, err)
	assert.Equal(t, "152340000", quote.OutAmount)
	assert.Equal(t, "0.0012", quote.PriceImpactPct)
	require.Len(t, quote.RoutePlan, 1)
	assert.Equal(t, "Whirlpool", quote.RoutePlan[0].SwapInfo.Label)
}

func TestGetQuote_MissingOutAmount(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"routePlan": []}`))
	}))
	defer server.Close()

	_, err := newTestClient(server.URL).GetQuote(context.Background(), QuoteRequest{Amount: "1"})
	assert.True(t, errors.Is(err, ErrMissingOutAmount))
}

func TestGetQuote_NoRoute(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":"Could not find any route","errorCode":"COULD_NOT_FIND_ANY_ROUTE"}`))
	}))
	defer server.Close()

	_, err := newTestClient(server.URL).GetQuote(context.Background(), QuoteRequest{Amount: "1"})
	require.Error(t, err)
	var httpErr *httpClient.HTTPError
	require.True(t, errors.As(err, &httpErr))
	assert.Equal(t, http.StatusBadRequest, httpErr.StatusCode)
}
