package config

import (
	"time"

	"github.com/cyphera/onramp-engine/internal/constants"
	"github.com/cyphera/onramp-engine/internal/types/business"
)

// PriceSettings holds the pricing and eligibility policy defaults.
type PriceSettings struct {
	QuickPriceMinUSD     float64
	MaxPriceImpactBps    float64
	CoverageThresholdPct float64
}

// RateLimitSettings configures the per-identifier token bucket.
type RateLimitSettings struct {
	RequestsPerSecond float64
	Burst             int
	StaleAfter        time.Duration
}

// Config is the process-wide configuration built once at startup.
type Config struct {
	Stage    string
	LogLevel string
	Port     string

	Chains    map[business.Network]*Chain
	Pricing   PriceSettings
	RateLimit RateLimitSettings

	DatabaseURL string
	CMCAPIKey   string
}

// DefaultConfig returns the built-in configuration before env overrides.
func DefaultConfig() *Config {
	return &Config{
		Stage:  constants.LocalEnvironment,
		Port:   "8080",
		Chains: DefaultChains(),
		Pricing: PriceSettings{
			QuickPriceMinUSD:     constants.DefaultQuickPriceMinUSD,
			MaxPriceImpactBps:    constants.DefaultMaxPriceImpactBps,
			CoverageThresholdPct: constants.DefaultCoverageThresholdPct,
		},
		RateLimit: RateLimitSettings{
			RequestsPerSecond: 10,
			Burst:             20,
			StaleAfter:        5 * time.Minute,
		},
	}
}

// Chain returns the enabled chain for the network.
func (c *Config) Chain(network business.Network) (*Chain, bool) {
	chain, ok := c.Chains[network]
	if !ok || !chain.Enabled {
		return nil, false
	}
	return chain, true
}

// EnabledNetworks lists networks that can be priced.
func (c *Config) EnabledNetworks() []business.Network {
	networks := make([]business.Network, 0, len(c.Chains))
	for _, n := range []business.Network{business.NetworkBase, business.NetworkEthereum, business.NetworkSolana} {
		if _, ok := c.Chain(n); ok {
			networks = append(networks, n)
		}
	}
	return networks
}
