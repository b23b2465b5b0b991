package config

import (
	"errors"
	"fmt"

	"github.com/cyphera/onramp-engine/internal/types/business"
)

// ErrConfiguration is returned for malformed static configuration.
var ErrConfiguration = errors.New("invalid configuration")

// Validate checks every enabled chain and the pricing policy.
func Validate(cfg *Config) error {
	if len(cfg.Chains) == 0 {
		return fmt.Errorf("%w: no chains configured", ErrConfiguration)
	}
	for network, chain := range cfg.Chains {
		if err := validateChain(network, chain); err != nil {
			return err
		}
	}
	if cfg.Pricing.CoverageThresholdPct < 0 || cfg.Pricing.CoverageThresholdPct > 100 {
		return fmt.Errorf("%w: coverage threshold must be within 0..100", ErrConfiguration)
	}
	if cfg.Pricing.MaxPriceImpactBps < 0 {
		return fmt.Errorf("%w: max price impact must not be negative", ErrConfiguration)
	}
	return nil
}

func validateChain(network business.Network, chain *Chain) error {
	if chain == nil {
		return fmt.Errorf("%w: chain %s is nil", ErrConfiguration, network)
	}
	if chain.Network != network {
		return fmt.Errorf("%w: chain %s registered under %s", ErrConfiguration, chain.Network, network)
	}
	if !chain.Enabled {
		return nil
	}
	if chain.USDC.Address == "" || !IsValidAddress(chain, chain.USDC.Address) {
		return fmt.Errorf("%w: %s: invalid USDC address %q", ErrConfiguration, network, chain.USDC.Address)
	}
	if chain.USDC.Decimals <= 0 {
		return fmt.Errorf("%w: %s: USDC decimals must be positive", ErrConfiguration, network)
	}
	if chain.WrappedNative.Address == "" || !IsValidAddress(chain, chain.WrappedNative.Address) {
		return fmt.Errorf("%w: %s: invalid wrapped native address %q", ErrConfiguration, network, chain.WrappedNative.Address)
	}
	for _, token := range chain.Tokens {
		if !IsValidAddress(chain, token.Address) {
			return fmt.Errorf("%w: %s: token %s has invalid address %q", ErrConfiguration, network, token.Symbol, token.Address)
		}
	}
	if chain.MinLiquidityUSD < 0 {
		return fmt.Errorf("%w: %s: min liquidity must not be negative", ErrConfiguration, network)
	}
	if chain.Timeout <= 0 {
		return fmt.Errorf("%w: %s: timeout must be positive", ErrConfiguration, network)
	}
	if chain.MaxRetries < 0 {
		return fmt.Errorf("%w: %s: retries must not be negative", ErrConfiguration, network)
	}
	if chain.ReserveAddress != "" && !IsValidAddress(chain, chain.ReserveAddress) {
		return fmt.Errorf("%w: %s: invalid reserve address %q", ErrConfiguration, network, chain.ReserveAddress)
	}

	if chain.IsEVM() {
		if chain.RPCURL == "" {
			return fmt.Errorf("%w: %s: rpc url is required", ErrConfiguration, network)
		}
		if len(chain.FeeTiers) == 0 {
			return fmt.Errorf("%w: %s: at least one fee tier is required", ErrConfiguration, network)
		}
		if !IsValidAddress(chain, chain.V3Quoter) || !IsValidAddress(chain, chain.V2Router) {
			return fmt.Errorf("%w: %s: invalid AMM contract address", ErrConfiguration, network)
		}
		return nil
	}
	if chain.AggregatorURL == "" {
		return fmt.Errorf("%w: %s: aggregator url is required", ErrConfiguration, network)
	}
	return nil
}
