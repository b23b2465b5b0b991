package services

import (
	"context"
	"encoding/json"
	"errors"
	"math"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/cyphera/onramp-engine/internal/interfaces"
	"github.com/cyphera/onramp-engine/internal/logger"
	"github.com/cyphera/onramp-engine/internal/mocks"
	"github.com/cyphera/onramp-engine/internal/types/business"
)

var fixedNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func quoteAttempt(venue business.VenueType, tier *uint32, usdc, amount float64) business.RouteAttempt {
	return quoted(venue, tier, usdc, amount, []business.RouteHop{{Venue: string(venue), FeeTierBps: tier}})
}

func mockProvider(ctrl *gomock.Controller, network business.Network, attempts ...business.RouteAttempt) *mocks.MockRouteProvider {
	p := mocks.NewMockRouteProvider(ctrl)
	p.EXPECT().Network().Return(network).AnyTimes()
	p.EXPECT().Name().Return("mock").AnyTimes()
	p.EXPECT().Quotes(gomock.Any(), gomock.Any(), gomock.Any()).Return(attempts).AnyTimes()
	return p
}

func newOracle(providers ...interfaces.RouteProvider) *PriceOracleService {
	return NewPriceOracleService(testConfig(), providers, WithClock(func() time.Time { return fixedNow }))
}

func TestGetBestPrice_SelectsMaxAcrossProviders(t *testing.T) {
	ctrl := gomock.NewController(t)
	p1 := mockProvider(ctrl, business.NetworkBase,
		quoteAttempt(business.VenueV3Direct, fee(500), 2450, 1),
		skipped(business.VenueV2Direct, nil, "no liquidity"),
	)
	p2 := mockProvider(ctrl, business.NetworkBase,
		quoteAttempt(business.VenueV2ViaNative, nil, 2460, 1),
	)

	result, err := newOracle(p1, p2).GetBestPrice(context.Background(), business.NetworkBase, "WETH", 1, business.PriceOptions{})
	require.NoError(t, err)
	require.True(t, result.Success)
	require.NotNil(t, result.BestRoute)

	assert.Equal(t, business.VenueV2ViaNative, result.BestRoute.VenueType)
	assert.Equal(t, 2460.0, result.USDCAmount)
	assert.Equal(t, 2460.0, result.PricePerToken)
	assert.Len(t, result.AllRoutes, 2)
	for _, r := range result.AllRoutes {
		assert.GreaterOrEqual(t, result.BestRoute.USDCAmount, r.USDCAmount)
	}
	assert.Empty(t, result.SkippedRoutes, "skipped routes only in verbose mode")
	assert.Equal(t, "WETH", result.TokenInfo.Symbol)
	assert.Equal(t, fixedNow, result.Timestamp)
	assert.True(t, result.HasAdequateLiquidity)
	assert.Equal(t, 100.0, result.MinLiquidityUSD)
}

func TestGetBestPrice_Verbose(t *testing.T) {
	ctrl := gomock.NewController(t)
	p := mockProvider(ctrl, business.NetworkBase,
		quoteAttempt(business.VenueV3Direct, fee(500), 200, 1),
		skipped(business.VenueV3Direct, fee(100), "no liquidity: execution reverted"),
	)

	result, err := newOracle(p).GetBestPrice(context.Background(), business.NetworkBase, "WETH", 1, business.PriceOptions{Verbose: true})
	require.NoError(t, err)
	require.Len(t, result.SkippedRoutes, 1)
	assert.Equal(t, uint32(100), *result.SkippedRoutes[0].FeeTierBps)
}

func TestGetBestPrice_ThresholdBoundary(t *testing.T) {
	tests := []struct {
		name      string
		usdc      float64
		threshold float64
		want      bool
	}{
		{"equal passes", 100, 0, true},
		{"one cent below fails", 99.99, 0, false},
		{"explicit threshold", 50, 50, true},
		{"explicit threshold below", 49.99, 50, false},
		{"NaN falls back to chain default", 99.99, math.NaN(), false},
		{"infinity falls back to chain default", 100, math.Inf(1), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			p := mockProvider(ctrl, business.NetworkBase, quoteAttempt(business.VenueV3Direct, fee(500), tt.usdc, 1))

			result, err := newOracle(p).GetBestPrice(context.Background(), business.NetworkBase, "WETH", 1,
				business.PriceOptions{MinLiquidityThreshold: tt.threshold})
			require.NoError(t, err)
			assert.Equal(t, tt.want, result.HasAdequateLiquidity)
			assert.False(t, math.IsNaN(result.MinLiquidityUSD) || math.IsInf(result.MinLiquidityUSD, 0))
		})
	}
}

func TestGetBestPrice_SolanaDefaultThreshold(t *testing.T) {
	ctrl := gomock.NewController(t)
	p := mockProvider(ctrl, business.NetworkSolana, quoteAttempt(business.VenueAggregator, nil, 1.0, 100))

	result, err := newOracle(p).GetBestPrice(context.Background(), business.NetworkSolana, "BONK", 100, business.PriceOptions{})
	require.NoError(t, err)
	assert.True(t, result.HasAdequateLiquidity)
	assert.Equal(t, 1.0, result.MinLiquidityUSD)
}

func TestGetQuickPrice_UsesQuickThreshold(t *testing.T) {
	ctrl := gomock.NewController(t)
	p := mockProvider(ctrl, business.NetworkBase, quoteAttempt(business.VenueV3Direct, fee(500), 0.5, 1))

	result, err := newOracle(p).GetQuickPrice(context.Background(), business.NetworkBase, "WETH", 1)
	require.NoError(t, err)
	assert.True(t, result.HasAdequateLiquidity)
	assert.Equal(t, 0.5, result.MinLiquidityUSD)
}

func TestGetBestPrice_USDCIdentity(t *testing.T) {
	ctrl := gomock.NewController(t)
	p := mocks.NewMockRouteProvider(ctrl)
	p.EXPECT().Network().Return(business.NetworkBase).AnyTimes()
	// providers are never consulted for the reference token

	for _, token := range []string{"USDC", "usdc", baseUSDC} {
		result, err := newOracle(p).GetBestPrice(context.Background(), business.NetworkBase, token, 250, business.PriceOptions{})
		require.NoError(t, err)
		require.True(t, result.Success)
		assert.Equal(t, business.VenueIdentity, result.BestRoute.VenueType)
		assert.Equal(t, 1.0, result.PricePerToken)
		assert.Equal(t, 250.0, result.USDCAmount)
		assert.True(t, result.HasAdequateLiquidity)
	}
}

func TestGetBestPrice_InvalidInputs(t *testing.T) {
	ctrl := gomock.NewController(t)
	p := mocks.NewMockRouteProvider(ctrl)
	p.EXPECT().Network().Return(business.NetworkBase).AnyTimes()
	oracle := newOracle(p)

	tests := []struct {
		name   string
		token  string
		amount float64
		reason string
	}{
		{"zero amount", "WETH", 0, reasonInvalidAmount},
		{"negative amount", "WETH", -5, reasonInvalidAmount},
		{"nan amount", "WETH", math.NaN(), reasonInvalidAmount},
		{"inf amount", "WETH", math.Inf(1), reasonInvalidAmount},
		{"garbage token", "not-a-token", 1, reasonInvalidToken},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := oracle.GetBestPrice(context.Background(), business.NetworkBase, tt.token, tt.amount, business.PriceOptions{})
			require.NoError(t, err)
			assert.False(t, result.Success)
			assert.Equal(t, tt.reason, result.ErrorReason)
			assert.Nil(t, result.BestRoute)
			assert.Zero(t, result.USDCAmount)
			_, err = json.Marshal(result)
			assert.NoError(t, err)
		})
	}
}

func TestGetBestPrice_NoLiquidity(t *testing.T) {
	ctrl := gomock.NewController(t)
	p := mockProvider(ctrl, business.NetworkBase,
		skipped(business.VenueV3Direct, fee(500), "no liquidity"),
		skipped(business.VenueV2Direct, nil, "upstream timeout"),
	)

	result, err := newOracle(p).GetBestPrice(context.Background(), business.NetworkBase, "WETH", 1, business.PriceOptions{Verbose: true})
	require.NoError(t, err)
	assert.False(t, result.Success)
	assert.Equal(t, reasonNoLiquidity, result.ErrorReason)
	assert.Nil(t, result.BestRoute)
	assert.Zero(t, result.USDCAmount)
	assert.False(t, result.HasAdequateLiquidity)
	assert.Len(t, result.SkippedRoutes, 2)
}

func TestGetBestPrice_UnsupportedNetwork(t *testing.T) {
	oracle := newOracle()
	_, err := oracle.GetBestPrice(context.Background(), "polygon", "WETH", 1, business.PriceOptions{})
	assert.True(t, errors.Is(err, ErrUnsupportedNetwork))

	// configured but no provider registered
	_, err = oracle.GetBestPrice(context.Background(), business.NetworkEthereum, "WETH", 1, business.PriceOptions{})
	assert.True(t, errors.Is(err, ErrUnsupportedNetwork))
}

func TestGetBestPrice_EnrichesUnknownEVMToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	const addr = "0x4ed4E862860beD51a9570b96d89aF5E1B0Efefed"

	client := mocks.NewMockEVMContractClient(ctrl)
	client.EXPECT().TokenDecimals(gomock.Any(), common.HexToAddress(addr)).Return(uint8(9), nil)
	client.EXPECT().TokenSymbol(gomock.Any(), common.HexToAddress(addr)).Return("DEGEN", nil)

	p := mocks.NewMockRouteProvider(ctrl)
	p.EXPECT().Network().Return(business.NetworkBase).AnyTimes()
	p.EXPECT().Quotes(gomock.Any(), gomock.Any(), 2.0).DoAndReturn(
		func(_ context.Context, token business.TokenInfo, amount float64) []business.RouteAttempt {
			assert.Equal(t, int32(9), token.Decimals)
			assert.Equal(t, "DEGEN", token.Symbol)
			return []business.RouteAttempt{quoteAttempt(business.VenueV3Direct, fee(3000), 0.02, amount)}
		})

	resolver := NewTokenResolver(map[business.Network]interfaces.EVMContractClient{business.NetworkBase: client}, logger.Log)
	oracle := NewPriceOracleService(testConfig(), []interfaces.RouteProvider{p}, WithTokenResolver(resolver))

	result, err := oracle.GetBestPrice(context.Background(), business.NetworkBase, addr, 2, business.PriceOptions{})
	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, "DEGEN", result.TokenInfo.Symbol)
	assert.Equal(t, 0.01, result.PricePerToken)
}

func TestGetBestPrice_EnrichmentFailureKeepsDefaults(t *testing.T) {
	ctrl := gomock.NewController(t)
	const addr = "0x4ed4E862860beD51a9570b96d89aF5E1B0Efefed"

	client := mocks.NewMockEVMContractClient(ctrl)
	client.EXPECT().TokenDecimals(gomock.Any(), gomock.Any()).Return(uint8(0), errors.New("rpc down"))
	client.EXPECT().TokenSymbol(gomock.Any(), gomock.Any()).Return("", errors.New("rpc down"))

	resolver := NewTokenResolver(map[business.Network]interfaces.EVMContractClient{business.NetworkBase: client}, logger.Log)
	token, ok := resolver.Resolve(context.Background(), testChain(business.NetworkBase), addr)
	require.True(t, ok)
	assert.Equal(t, "UNKNOWN", token.Symbol)
	assert.Equal(t, int32(18), token.Decimals)
}

func TestGetBestPrice_ObservesResult(t *testing.T) {
	ctrl := gomock.NewController(t)
	observer := mocks.NewMockRouteObserver(ctrl)
	observer.EXPECT().ObservePriceResult("base", true)
	observer.EXPECT().ObservePriceResult("base", false)

	p := mockProvider(ctrl, business.NetworkBase, quoteAttempt(business.VenueV3Direct, fee(500), 10, 1))
	oracle := NewPriceOracleService(testConfig(), []interfaces.RouteProvider{p}, WithRouteObserver(observer))

	_, err := oracle.GetBestPrice(context.Background(), business.NetworkBase, "WETH", 1, business.PriceOptions{})
	require.NoError(t, err)
	_, err = oracle.GetBestPrice(context.Background(), business.NetworkBase, "WETH", 0, business.PriceOptions{})
	require.NoError(t, err)
}

func TestGetBestPrice_CancelledContextReturnsPromptly(t *testing.T) {
	ctrl := gomock.NewController(t)
	blocking := func() *mocks.MockRouteProvider {
		p := mocks.NewMockRouteProvider(ctrl)
		p.EXPECT().Network().Return(business.NetworkBase).AnyTimes()
		p.EXPECT().Quotes(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
			func(ctx context.Context, _ business.TokenInfo, _ float64) []business.RouteAttempt {
				select {
				case <-ctx.Done():
					return []business.RouteAttempt{skipped(business.VenueV3Direct, fee(500), skipReason(ctx.Err()))}
				case <-time.After(5 * time.Second):
					return []business.RouteAttempt{quoteAttempt(business.VenueV3Direct, fee(500), 1000, 1)}
				}
			})
		return p
	}

	ctx, cancel := context.WithCancel(context.Background())
	time.AfterFunc(20*time.Millisecond, cancel)

	start := time.Now()
	result, err := newOracle(blocking(), blocking()).GetBestPrice(ctx, business.NetworkBase, "WETH", 1, business.PriceOptions{Verbose: true})
	require.NoError(t, err)

	assert.Less(t, time.Since(start), 2*time.Second)
	assert.False(t, result.Success)
	assert.Equal(t, reasonNoLiquidity, result.ErrorReason)
	assert.Len(t, result.SkippedRoutes, 2)
}
