package services

import (
	"context"
	"fmt"
	"math"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/cyphera/onramp-engine/internal/config"
	"github.com/cyphera/onramp-engine/internal/helpers"
	"github.com/cyphera/onramp-engine/internal/interfaces"
	"github.com/cyphera/onramp-engine/internal/logger"
	"github.com/cyphera/onramp-engine/internal/types/business"
)

const (
	reasonInvalidAmount = "invalid amount"
	reasonInvalidToken  = "invalid token"
	reasonNoLiquidity   = "no liquidity"
)

// PriceOracleService fans a price query out to every route provider
// registered for the network and keeps the best USDC outcome.
type PriceOracleService struct {
	cfg       *config.Config
	providers map[business.Network][]interfaces.RouteProvider
	resolver  *TokenResolver
	observer  interfaces.RouteObserver
	logger    *zap.Logger
	now       func() time.Time
}

// PriceOracleOption configures the service.
type PriceOracleOption func(*PriceOracleService)

// WithTokenResolver enables on-chain enrichment of unknown tokens.
func WithTokenResolver(resolver *TokenResolver) PriceOracleOption {
	return func(s *PriceOracleService) { s.resolver = resolver }
}

func WithRouteObserver(observer interfaces.RouteObserver) PriceOracleOption {
	return func(s *PriceOracleService) {
		if observer != nil {
			s.observer = observer
		}
	}
}

func WithClock(now func() time.Time) PriceOracleOption {
	return func(s *PriceOracleService) { s.now = now }
}

// NewPriceOracleService creates the engine. Providers are grouped by the
// network they report.
func NewPriceOracleService(cfg *config.Config, providers []interfaces.RouteProvider, opts ...PriceOracleOption) *PriceOracleService {
	s := &PriceOracleService{
		cfg:       cfg,
		providers: make(map[business.Network][]interfaces.RouteProvider),
		observer:  noopObserver{},
		logger:    logger.WithComponent("price_oracle"),
		now:       time.Now,
	}
	for _, p := range providers {
		s.providers[p.Network()] = append(s.providers[p.Network()], p)
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.resolver == nil {
		s.resolver = NewTokenResolver(nil, s.logger)
	}
	return s
}

// GetBestPrice returns the best USDC conversion for amount of token. Only an
// unsupported network is reported as an error; every other failure is a
// result with Success=false.
func (s *PriceOracleService) GetBestPrice(ctx context.Context, network business.Network, token string, amount float64, opts business.PriceOptions) (*business.PriceResult, error) {
	chain, ok := s.cfg.Chain(network)
	if !ok || len(s.providers[network]) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedNetwork, network)
	}

	threshold := opts.MinLiquidityThreshold
	if !isFinite(threshold) || threshold <= 0 {
		threshold = chain.MinLiquidityUSD
	}
	result := &business.PriceResult{
		InputAmount:     amount,
		AllRoutes:       []business.RouteQuote{},
		MinLiquidityUSD: threshold,
		Network:         network,
		Timestamp:       s.now().UTC(),
	}
	log := s.logger.With(
		zap.String("network", string(network)),
		zap.String("token", token),
		zap.Float64("amount", amount))

	if err := helpers.ValidateAmount(amount); err != nil {
		return s.fail(result, reasonInvalidAmount), nil
	}

	info, ok := s.resolver.Resolve(ctx, chain, token)
	if !ok {
		return s.fail(result, reasonInvalidToken), nil
	}
	result.TokenInfo = *info

	if config.IsReferenceToken(chain, info.Address) {
		identity := identityRoute(chain, amount)
		result.BestRoute = &identity
		result.AllRoutes = []business.RouteQuote{identity}
		return s.succeed(result, threshold), nil
	}

	attempts := s.fanOut(ctx, network, *info, amount)
	quotes, skips := splitAttempts(attempts)
	if opts.Verbose {
		result.SkippedRoutes = skips
		for _, q := range quotes {
			log.Info("Route quoted",
				zap.String("venue", string(q.VenueType)),
				zap.String("route", q.RouteLabel),
				zap.Float64("usdc_amount", q.USDCAmount))
		}
		for _, sk := range skips {
			log.Info("Route skipped",
				zap.String("venue", string(sk.VenueType)),
				zap.Uint32p("fee_tier", sk.FeeTierBps),
				zap.String("reason", sk.Reason))
		}
	}

	best, ok := SelectBestRoute(quotes)
	if !ok {
		log.Debug("No route produced a quote", zap.Int("skipped", len(skips)))
		return s.fail(result, reasonNoLiquidity), nil
	}

	result.AllRoutes = rankRoutes(quotes)
	result.BestRoute = &best
	return s.succeed(result, threshold), nil
}

// GetQuickPrice is a best price lookup with the low quick-check threshold.
func (s *PriceOracleService) GetQuickPrice(ctx context.Context, network business.Network, token string, amount float64) (*business.PriceResult, error) {
	return s.GetBestPrice(ctx, network, token, amount, business.PriceOptions{
		MinLiquidityThreshold: s.cfg.Pricing.QuickPriceMinUSD,
	})
}

func (s *PriceOracleService) fanOut(ctx context.Context, network business.Network, token business.TokenInfo, amount float64) []business.RouteAttempt {
	providers := s.providers[network]
	perProvider := make([][]business.RouteAttempt, len(providers))

	var wg sync.WaitGroup
	for i, p := range providers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			perProvider[i] = p.Quotes(ctx, token, amount)
		}()
	}
	wg.Wait()

	var attempts []business.RouteAttempt
	for _, a := range perProvider {
		attempts = append(attempts, a...)
	}
	return attempts
}

func (s *PriceOracleService) succeed(result *business.PriceResult, threshold float64) *business.PriceResult {
	result.Success = true
	result.USDCAmount = result.BestRoute.USDCAmount
	result.PricePerToken = result.BestRoute.PricePerToken
	result.HasAdequateLiquidity = result.USDCAmount >= threshold
	s.observer.ObservePriceResult(string(result.Network), true)
	return result
}

func (s *PriceOracleService) fail(result *business.PriceResult, reason string) *business.PriceResult {
	result.Success = false
	result.ErrorReason = reason
	result.BestRoute = nil
	result.USDCAmount = 0
	result.PricePerToken = 0
	result.HasAdequateLiquidity = false
	if !isFinite(result.InputAmount) {
		result.InputAmount = 0
	}
	s.observer.ObservePriceResult(string(result.Network), false)
	return result
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func identityRoute(chain *config.Chain, amount float64) business.RouteQuote {
	return business.RouteQuote{
		VenueType:     business.VenueIdentity,
		USDCAmount:    amount,
		PricePerToken: 1,
		HopCount:      0,
		Hops:          []business.RouteHop{},
		RouteLabel:    chain.USDC.Symbol,
	}
}
