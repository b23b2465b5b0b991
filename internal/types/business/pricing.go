package business

import (
	"strings"
	"time"

	"github.com/cyphera/onramp-engine/internal/constants"
)

// Network identifies a supported chain.
type Network string

const (
	NetworkBase     Network = constants.NetworkBase
	NetworkEthereum Network = constants.NetworkEthereum
	NetworkSolana   Network = constants.NetworkSolana
)

// ParseNetwork normalizes a user supplied network name.
func ParseNetwork(s string) Network {
	return Network(strings.ToLower(strings.TrimSpace(s)))
}

// TokenInfo describes a resolved token. Tokens that were not found in the
// known-token tables carry the UNKNOWN symbol and should be treated as lower confidence.
type TokenInfo struct {
	Symbol   string  `json:"symbol"`
	Name     string  `json:"name"`
	Decimals int32   `json:"decimals"`
	Address  string  `json:"address"`
	Network  Network `json:"network"`
	IsNative bool    `json:"is_native"`
}

// VenueType is the kind of liquidity path a quote was taken from.
type VenueType string

const (
	VenueV3Direct    VenueType = "V3Direct"
	VenueV2Direct    VenueType = "V2Direct"
	VenueV3ViaNative VenueType = "V3ViaNative"
	VenueV2ViaNative VenueType = "V2ViaNative"
	VenueAggregator  VenueType = "Aggregator"
	// VenueIdentity is the trivial route used when the token is the reference currency.
	VenueIdentity VenueType = "Identity"
)

// Priority orders venues for tie-breaking; lower wins.
func (v VenueType) Priority() int {
	switch v {
	case VenueIdentity:
		return 0
	case VenueV3Direct:
		return 1
	case VenueV2Direct:
		return 2
	case VenueV3ViaNative:
		return 3
	case VenueV2ViaNative:
		return 4
	case VenueAggregator:
		return 5
	default:
		return 100
	}
}

// RouteHop is one leg of a route.
type RouteHop struct {
	Venue      string  `json:"venue"`
	FeeTierBps *uint32 `json:"fee_tier_bps,omitempty"`
	InputMint  string  `json:"input_mint,omitempty"`
	OutputMint string  `json:"output_mint,omitempty"`
}

// RouteQuote is one candidate conversion path into USDC. Never mutated after creation.
type RouteQuote struct {
	VenueType      VenueType  `json:"venue_type"`
	FeeTierBps     *uint32    `json:"fee_tier_bps,omitempty"`
	USDCAmount     float64    `json:"usdc_amount"`
	PricePerToken  float64    `json:"price_per_token"`
	PriceImpactBps *float64   `json:"price_impact_bps,omitempty"`
	HopCount       int        `json:"hop_count"`
	Hops           []RouteHop `json:"hops"`
	RouteLabel     string     `json:"route_label"`
}

// SkippedRoute records why a branch produced no quote.
type SkippedRoute struct {
	VenueType  VenueType `json:"venue_type"`
	FeeTierBps *uint32   `json:"fee_tier_bps,omitempty"`
	Reason     string    `json:"reason"`
}

// RouteAttempt is the outcome of one provider branch: exactly one of Quote or Skip is set.
type RouteAttempt struct {
	Quote *RouteQuote
	Skip  *SkippedRoute
}

// PriceResult is the engine output for one (token, amount) query.
type PriceResult struct {
	TokenInfo            TokenInfo      `json:"token_info"`
	InputAmount          float64        `json:"input_amount"`
	USDCAmount           float64        `json:"usdc_amount"`
	PricePerToken        float64        `json:"price_per_token"`
	BestRoute            *RouteQuote    `json:"best_route,omitempty"`
	AllRoutes            []RouteQuote   `json:"all_routes"`
	SkippedRoutes        []SkippedRoute `json:"skipped_routes,omitempty"`
	HasAdequateLiquidity bool           `json:"has_adequate_liquidity"`
	MinLiquidityUSD      float64        `json:"min_liquidity_usd"`
	Success              bool           `json:"success"`
	ErrorReason          string         `json:"error_reason,omitempty"`
	Network              Network        `json:"network"`
	Timestamp            time.Time      `json:"timestamp"`
}

// PriceOptions tunes a single price lookup. A zero MinLiquidityThreshold
// selects the chain default.
type PriceOptions struct {
	MinLiquidityThreshold float64
	Verbose               bool
}

// LiquidityPolicy is the rule set applied by the liquidity gate.
type LiquidityPolicy struct {
	MinLiquidityUSD   float64
	MaxPriceImpactBps float64
}

// GateDecision is the liquidity gate outcome.
type GateDecision struct {
	Pass    bool     `json:"pass"`
	Reasons []string `json:"reasons,omitempty"`
}
