package services

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cyphera/onramp-engine/internal/client/evm"
	httpClient "github.com/cyphera/onramp-engine/internal/client/http"
	"github.com/cyphera/onramp-engine/internal/client/jupiter"
)

func TestClassifyUpstreamError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{"nil", nil, nil},
		{"deadline", fmt.Errorf("call: %w", context.DeadlineExceeded), ErrUpstreamTimeout},
		{"revert", fmt.Errorf("quote: %w", evm.ErrExecutionReverted), ErrNoLiquidity},
		{"http 400", fmt.Errorf("jupiter: %w", &httpClient.HTTPError{StatusCode: 400}), ErrNoLiquidity},
		{"http 503", &httpClient.HTTPError{StatusCode: 503}, ErrUpstreamUnavailable},
		{"decode", &httpClient.DecodeError{Err: errors.New("eof")}, ErrMalformedResponse},
		{"missing out amount", jupiter.ErrMissingOutAmount, ErrMalformedResponse},
		{"abi", fmt.Errorf("x: %w", evm.ErrMalformedResult), ErrMalformedResponse},
		{"other", errors.New("connection refused"), ErrUpstreamUnavailable},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyUpstreamError(tt.err))
		})
	}
}
