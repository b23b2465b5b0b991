package services

import (
	"context"
	"fmt"
	"strconv"

	"go.uber.org/zap"

	"github.com/cyphera/onramp-engine/internal/client/jupiter"
	"github.com/cyphera/onramp-engine/internal/config"
	"github.com/cyphera/onramp-engine/internal/helpers"
	"github.com/cyphera/onramp-engine/internal/interfaces"
	"github.com/cyphera/onramp-engine/internal/logger"
	"github.com/cyphera/onramp-engine/internal/types/business"
)

const venueAggregator = "Jupiter"

// AggregatorRouteProvider prices Solana tokens through a Jupiter-compatible
// quote API. It yields at most one route per query.
type AggregatorRouteProvider struct {
	chain    *config.Chain
	client   interfaces.AggregatorQuoteClient
	observer interfaces.RouteObserver
	logger   *zap.Logger
}

func NewAggregatorRouteProvider(chain *config.Chain, client interfaces.AggregatorQuoteClient, observer interfaces.RouteObserver) *AggregatorRouteProvider {
	if observer == nil {
		observer = noopObserver{}
	}
	return &AggregatorRouteProvider{
		chain:    chain,
		client:   client,
		observer: observer,
		logger:   logger.WithComponent("aggregator_route_provider").With(zap.String("network", string(chain.Network))),
	}
}

func (p *AggregatorRouteProvider) Name() string { return "aggregator" }

func (p *AggregatorRouteProvider) Network() business.Network { return p.chain.Network }

func (p *AggregatorRouteProvider) Quotes(ctx context.Context, token business.TokenInfo, amount float64) []business.RouteAttempt {
	attempt := p.quote(ctx, token, amount)
	observeAttempt(p.observer, p.chain.Network, attempt)
	return []business.RouteAttempt{attempt}
}

func (p *AggregatorRouteProvider) quote(ctx context.Context, token business.TokenInfo, amount float64) business.RouteAttempt {
	amountRaw, err := helpers.ToSmallestUnit(amount, token.Decimals)
	if err != nil {
		return skipped(business.VenueAggregator, nil, "invalid amount: "+err.Error())
	}

	inputMint := config.NormalizeAddress(p.chain, config.EffectivePricingAddress(p.chain, token))
	resp, err := p.client.GetQuote(ctx, jupiter.QuoteRequest{
		InputMint:   inputMint,
		OutputMint:  p.chain.USDC.Address,
		Amount:      amountRaw.String(),
		SlippageBps: p.chain.SlippageBps,
	})
	if err != nil {
		return p.skip(err)
	}

	outRaw, err := helpers.ParseSmallestUnit(resp.OutAmount)
	if err != nil {
		return p.skip(fmt.Errorf("%w: %v", ErrMalformedResponse, err))
	}
	if err := nonZero(outRaw, nil); err != nil {
		return p.skip(err)
	}

	usdcAmount := helpers.FromSmallestUnit(outRaw, p.chain.USDC.Decimals)
	hops := make([]business.RouteHop, 0, len(resp.RoutePlan))
	for _, step := range resp.RoutePlan {
		label := step.SwapInfo.Label
		if label == "" {
			label = venueAggregator
		}
		hops = append(hops, business.RouteHop{
			Venue:      label,
			InputMint:  step.SwapInfo.InputMint,
			OutputMint: step.SwapInfo.OutputMint,
		})
	}

	attempt := quoted(business.VenueAggregator, nil, usdcAmount, amount, hops)
	attempt.Quote.HopCount = len(resp.RoutePlan)
	if len(hops) == 0 {
		attempt.Quote.RouteLabel = venueAggregator
	}
	if impact, ok := priceImpactBps(resp.PriceImpactPct); ok {
		attempt.Quote.PriceImpactBps = &impact
	}
	return attempt
}

// priceImpactBps converts the API's percentage string into basis points.
func priceImpactBps(pct string) (float64, bool) {
	if pct == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(pct, 64)
	if err != nil {
		return 0, false
	}
	return v * 100, true
}

func (p *AggregatorRouteProvider) skip(err error) business.RouteAttempt {
	p.logger.Debug("Aggregator quote skipped", zap.Error(err))
	return skipped(business.VenueAggregator, nil, skipReason(err))
}
