package interfaces

import (
	"context"

	"github.com/google/uuid"

	"github.com/cyphera/onramp-engine/internal/types/business"
)

// RouteProvider enumerates conversion paths into USDC for one network.
// Failures are reported as skipped attempts, never as errors.
type RouteProvider interface {
	Name() string
	Network() business.Network
	Quotes(ctx context.Context, token business.TokenInfo, amount float64) []business.RouteAttempt
}

// PriceOracle finds the best USDC price for a token amount.
type PriceOracle interface {
	GetBestPrice(ctx context.Context, network business.Network, token string, amount float64, opts business.PriceOptions) (*business.PriceResult, error)
	GetQuickPrice(ctx context.Context, network business.Network, token string, amount float64) (*business.PriceResult, error)
}

// ReserveChecker answers whether the settlement reserve supports tokens.
type ReserveChecker interface {
	IsSupported(ctx context.Context, network business.Network, address string) (bool, error)
	CheckMany(ctx context.Context, network business.Network, addresses []string) map[string]business.ReserveCheck
	GetConfiguration(ctx context.Context, network business.Network) (*business.ReserveConfiguration, error)
	GetBalances(ctx context.Context, network business.Network) (*business.ReserveBalances, error)
}

// OnrampValidator produces the aggregated eligibility verdict.
type OnrampValidator interface {
	Validate(ctx context.Context, req business.ValidationRequest) (*business.ValidationVerdict, error)
}

// CoverageValidator reports reserve coverage of a business token list.
type CoverageValidator interface {
	Validate(ctx context.Context, tokensByNetwork map[business.Network][]business.ConfiguredToken) (*business.BusinessTokenCoverageReport, error)
	ValidateBusiness(ctx context.Context, businessID uuid.UUID) (*business.BusinessTokenCoverageReport, error)
}

// BusinessTokenStore loads a business's configured token list.
type BusinessTokenStore interface {
	ListConfiguredTokens(ctx context.Context, businessID uuid.UUID) (map[business.Network][]business.ConfiguredToken, error)
}

// RouteObserver receives pricing outcomes for metrics.
type RouteObserver interface {
	ObserveRouteAttempt(network, venue, outcome string)
	ObservePriceResult(network string, success bool)
}
