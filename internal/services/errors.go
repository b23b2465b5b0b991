package services

import (
	"context"
	"errors"
	"fmt"
	"net"

	"github.com/cyphera/onramp-engine/internal/client/evm"
	httpClient "github.com/cyphera/onramp-engine/internal/client/http"
	"github.com/cyphera/onramp-engine/internal/client/jupiter"
)

var (
	ErrNoLiquidity           = errors.New("no liquidity")
	ErrUpstreamTimeout       = errors.New("upstream timeout")
	ErrUpstreamUnavailable   = errors.New("upstream unavailable")
	ErrMalformedResponse     = errors.New("malformed upstream response")
	ErrUnsupportedNetwork    = errors.New("unsupported network")
	ErrReserveQuery          = errors.New("reserve query failed")
	ErrNoTokenStore          = errors.New("business token store not configured")
	ErrInvalidMonitorRequest = errors.New("invalid monitor request")

	// ErrNoReserveContract wraps ErrReserveQuery for networks without a
	// reserve deployment.
	ErrNoReserveContract = fmt.Errorf("%w: no reserve contract configured", ErrReserveQuery)
)

// ClassifyUpstreamError maps a raw client error onto the upstream error
// taxonomy. Reverts and rejected requests count as no liquidity.
func ClassifyUpstreamError(err error) error {
	if err == nil {
		return nil
	}
	var netErr net.Error
	var httpErr *httpClient.HTTPError
	var decodeErr *httpClient.DecodeError
	switch {
	case errors.Is(err, context.DeadlineExceeded), errors.As(err, &netErr) && netErr.Timeout():
		return ErrUpstreamTimeout
	case errors.Is(err, evm.ErrExecutionReverted), errors.Is(err, errZeroOutput):
		return ErrNoLiquidity
	case errors.As(err, &httpErr) && httpErr.IsClientError():
		return ErrNoLiquidity
	case errors.Is(err, ErrMalformedResponse), errors.Is(err, evm.ErrMalformedResult), errors.As(err, &decodeErr), errors.Is(err, jupiter.ErrMissingOutAmount):
		return ErrMalformedResponse
	default:
		return ErrUpstreamUnavailable
	}
}

// skipReason renders a provider error for a skipped route entry.
func skipReason(err error) string {
	return ClassifyUpstreamError(err).Error() + ": " + err.Error()
}
