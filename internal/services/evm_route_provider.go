package services

import (
	"context"
	"errors"
	"math/big"
	"sync"

	"github.com/ethereum/go-ethereum/common"
	"go.uber.org/zap"

	"github.com/cyphera/onramp-engine/internal/config"
	"github.com/cyphera/onramp-engine/internal/helpers"
	"github.com/cyphera/onramp-engine/internal/interfaces"
	"github.com/cyphera/onramp-engine/internal/logger"
	"github.com/cyphera/onramp-engine/internal/types/business"
)

const (
	venueUniswapV3 = "Uniswap V3"
	venueUniswapV2 = "Uniswap V2"
)

// EVMRouteProvider quotes a token into USDC across Uniswap V3 fee tiers and
// the V2 router, directly and via the wrapped native token.
type EVMRouteProvider struct {
	chain    *config.Chain
	client   interfaces.EVMContractClient
	observer interfaces.RouteObserver
	logger   *zap.Logger
}

// NewEVMRouteProvider binds a provider to one EVM chain. observer may be nil.
func NewEVMRouteProvider(chain *config.Chain, client interfaces.EVMContractClient, observer interfaces.RouteObserver) *EVMRouteProvider {
	if observer == nil {
		observer = noopObserver{}
	}
	return &EVMRouteProvider{
		chain:    chain,
		client:   client,
		observer: observer,
		logger:   logger.WithComponent("evm_route_provider").With(zap.String("network", string(chain.Network))),
	}
}

func (p *EVMRouteProvider) Name() string { return "evm-amm" }

func (p *EVMRouteProvider) Network() business.Network { return p.chain.Network }

// nativeQuote is the USDC value of one wrapped native unit and the hop used to get it.
type nativeQuote struct {
	price float64
	hop   business.RouteHop
}

// Quotes evaluates every branch concurrently. Each branch fills its own slot
// in the result, so no locking is needed.
func (p *EVMRouteProvider) Quotes(ctx context.Context, token business.TokenInfo, amount float64) []business.RouteAttempt {
	amountIn, err := helpers.ToSmallestUnit(amount, token.Decimals)
	if err != nil {
		return []business.RouteAttempt{skipped(business.VenueV3Direct, nil, "invalid amount: "+err.Error())}
	}

	tokenAddr := common.HexToAddress(config.EffectivePricingAddress(p.chain, token))
	usdc := common.HexToAddress(p.chain.USDC.Address)
	wnative := common.HexToAddress(p.chain.WrappedNative.Address)
	viaNative := tokenAddr != wnative

	tiers := p.chain.FeeTiers
	size := len(tiers) + 1
	if viaNative {
		size += len(tiers) + 1
	}
	attempts := make([]business.RouteAttempt, size)

	native := sync.OnceValues(func() (*nativeQuote, error) {
		return p.nativePrice(ctx, wnative, usdc)
	})

	var wg sync.WaitGroup
	run := func(slot int, branch func() business.RouteAttempt) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			attempts[slot] = branch()
		}()
	}

	slot := 0
	for _, tier := range tiers {
		run(slot, func() business.RouteAttempt { return p.v3Direct(ctx, tokenAddr, usdc, amountIn, amount, tier) })
		slot++
	}
	run(slot, func() business.RouteAttempt { return p.v2Direct(ctx, tokenAddr, usdc, amountIn, amount) })
	slot++

	if viaNative {
		for _, tier := range tiers {
			run(slot, func() business.RouteAttempt {
				return p.v3ViaNative(ctx, tokenAddr, wnative, amountIn, amount, tier, native)
			})
			slot++
		}
		run(slot, func() business.RouteAttempt { return p.v2ViaNative(ctx, tokenAddr, wnative, usdc, amountIn, amount) })
	}

	wg.Wait()

	for _, attempt := range attempts {
		p.observe(attempt)
	}
	return attempts
}

func (p *EVMRouteProvider) v3Direct(ctx context.Context, token, usdc common.Address, amountIn *big.Int, amount float64, tier uint32) business.RouteAttempt {
	out, err := p.client.QuoteExactInputSingle(ctx, common.HexToAddress(p.chain.V3Quoter), token, usdc, amountIn, tier)
	if err = nonZero(out, err); err != nil {
		return p.skip(business.VenueV3Direct, &tier, err)
	}
	hops := []business.RouteHop{{Venue: venueUniswapV3, FeeTierBps: &tier, InputMint: token.Hex(), OutputMint: usdc.Hex()}}
	return quoted(business.VenueV3Direct, &tier, p.usdcAmount(out), amount, hops)
}

func (p *EVMRouteProvider) v2Direct(ctx context.Context, token, usdc common.Address, amountIn *big.Int, amount float64) business.RouteAttempt {
	out, err := p.amountsOut(ctx, amountIn, []common.Address{token, usdc})
	if err != nil {
		return p.skip(business.VenueV2Direct, nil, err)
	}
	hops := []business.RouteHop{{Venue: venueUniswapV2, InputMint: token.Hex(), OutputMint: usdc.Hex()}}
	return quoted(business.VenueV2Direct, nil, p.usdcAmount(out), amount, hops)
}

func (p *EVMRouteProvider) v3ViaNative(ctx context.Context, token, wnative common.Address, amountIn *big.Int, amount float64, tier uint32, native func() (*nativeQuote, error)) business.RouteAttempt {
	nativeOut, err := p.client.QuoteExactInputSingle(ctx, common.HexToAddress(p.chain.V3Quoter), token, wnative, amountIn, tier)
	if err = nonZero(nativeOut, err); err != nil {
		return p.skip(business.VenueV3ViaNative, &tier, err)
	}
	np, err := native()
	if err != nil {
		return p.skip(business.VenueV3ViaNative, &tier, err)
	}

	nativeAmount := helpers.FromSmallestUnit(nativeOut, p.chain.WrappedNative.Decimals)
	usdcAmount := helpers.MulPrice(nativeAmount, np.price)
	hops := []business.RouteHop{
		{Venue: venueUniswapV3, FeeTierBps: &tier, InputMint: token.Hex(), OutputMint: wnative.Hex()},
		np.hop,
	}
	return quoted(business.VenueV3ViaNative, &tier, usdcAmount, amount, hops)
}

func (p *EVMRouteProvider) v2ViaNative(ctx context.Context, token, wnative, usdc common.Address, amountIn *big.Int, amount float64) business.RouteAttempt {
	out, err := p.amountsOut(ctx, amountIn, []common.Address{token, wnative, usdc})
	if err != nil {
		return p.skip(business.VenueV2ViaNative, nil, err)
	}
	hops := []business.RouteHop{
		{Venue: venueUniswapV2, InputMint: token.Hex(), OutputMint: wnative.Hex()},
		{Venue: venueUniswapV2, InputMint: wnative.Hex(), OutputMint: usdc.Hex()},
	}
	return quoted(business.VenueV2ViaNative, nil, p.usdcAmount(out), amount, hops)
}

// nativePrice quotes one wrapped native unit into USDC, taking the best V3
// tier and falling back to the V2 router.
func (p *EVMRouteProvider) nativePrice(ctx context.Context, wnative, usdc common.Address) (*nativeQuote, error) {
	oneUnit := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(p.chain.WrappedNative.Decimals)), nil)
	quoter := common.HexToAddress(p.chain.V3Quoter)

	outs := make([]*big.Int, len(p.chain.FeeTiers))
	var wg sync.WaitGroup
	for i, tier := range p.chain.FeeTiers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			out, err := p.client.QuoteExactInputSingle(ctx, quoter, wnative, usdc, oneUnit, tier)
			if nonZero(out, err) == nil {
				outs[i] = out
			}
		}()
	}
	wg.Wait()

	bestIdx := -1
	for i, out := range outs {
		if out != nil && (bestIdx < 0 || out.Cmp(outs[bestIdx]) > 0) {
			bestIdx = i
		}
	}
	if bestIdx >= 0 {
		tier := p.chain.FeeTiers[bestIdx]
		return &nativeQuote{
			price: p.usdcAmount(outs[bestIdx]),
			hop:   business.RouteHop{Venue: venueUniswapV3, FeeTierBps: &tier, InputMint: wnative.Hex(), OutputMint: usdc.Hex()},
		}, nil
	}

	out, err := p.amountsOut(ctx, oneUnit, []common.Address{wnative, usdc})
	if err != nil {
		return nil, errors.Join(errNativePriceUnavailable, err)
	}
	return &nativeQuote{
		price: p.usdcAmount(out),
		hop:   business.RouteHop{Venue: venueUniswapV2, InputMint: wnative.Hex(), OutputMint: usdc.Hex()},
	}, nil
}

var (
	errNativePriceUnavailable = errors.New("native price unavailable")
	errZeroOutput             = errors.New("zero output")
)

func (p *EVMRouteProvider) amountsOut(ctx context.Context, amountIn *big.Int, path []common.Address) (*big.Int, error) {
	amounts, err := p.client.GetAmountsOut(ctx, common.HexToAddress(p.chain.V2Router), amountIn, path)
	if err != nil {
		return nil, err
	}
	if len(amounts) == 0 {
		return nil, errZeroOutput
	}
	last := amounts[len(amounts)-1]
	return last, nonZero(last, nil)
}

func (p *EVMRouteProvider) usdcAmount(out *big.Int) float64 {
	return helpers.FromSmallestUnit(out, p.chain.USDC.Decimals)
}

func (p *EVMRouteProvider) skip(venue business.VenueType, tier *uint32, err error) business.RouteAttempt {
	p.logger.Debug("Route branch skipped",
		zap.String("venue", string(venue)),
		zap.Uint32p("fee_tier", tier),
		zap.Error(err))
	return skipped(venue, tier, skipReason(err))
}

func (p *EVMRouteProvider) observe(attempt business.RouteAttempt) {
	observeAttempt(p.observer, p.chain.Network, attempt)
}

func nonZero(out *big.Int, err error) error {
	if err != nil {
		return err
	}
	if out == nil || out.Sign() <= 0 {
		return errZeroOutput
	}
	return nil
}

func quoted(venue business.VenueType, tier *uint32, usdcAmount, amount float64, hops []business.RouteHop) business.RouteAttempt {
	return business.RouteAttempt{Quote: &business.RouteQuote{
		VenueType:     venue,
		FeeTierBps:    tier,
		USDCAmount:    usdcAmount,
		PricePerToken: helpers.PricePerToken(usdcAmount, amount),
		HopCount:      len(hops),
		Hops:          hops,
		RouteLabel:    FormatRoute(hops),
	}}
}

func skipped(venue business.VenueType, tier *uint32, reason string) business.RouteAttempt {
	return business.RouteAttempt{Skip: &business.SkippedRoute{VenueType: venue, FeeTierBps: tier, Reason: reason}}
}

func observeAttempt(observer interfaces.RouteObserver, network business.Network, attempt business.RouteAttempt) {
	switch {
	case attempt.Quote != nil:
		observer.ObserveRouteAttempt(string(network), string(attempt.Quote.VenueType), "quoted")
	case attempt.Skip != nil:
		observer.ObserveRouteAttempt(string(network), string(attempt.Skip.VenueType), "skipped")
	}
}

type noopObserver struct{}

func (noopObserver) ObserveRouteAttempt(string, string, string) {}
func (noopObserver) ObservePriceResult(string, bool)            {}
