package services

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/cyphera/onramp-engine/internal/mocks"
	"github.com/cyphera/onramp-engine/internal/types/business"
)

func configured(symbol, address string, active, trading bool) business.ConfiguredToken {
	return business.ConfiguredToken{Symbol: symbol, Network: business.NetworkBase, Address: address, IsActive: active, TradingEnabled: trading}
}

func checksFor(supported map[string]bool) func(context.Context, business.Network, []string) map[string]business.ReserveCheck {
	return func(_ context.Context, _ business.Network, addresses []string) map[string]business.ReserveCheck {
		out := make(map[string]business.ReserveCheck, len(addresses))
		for _, a := range addresses {
			out[a] = business.ReserveCheck{Address: a, Supported: supported[a]}
		}
		return out
	}
}

func TestBusinessTokenValidation_Coverage(t *testing.T) {
	tokens := []business.ConfiguredToken{
		configured("USDC", baseUSDC, true, true),
		configured("WETH", baseWETH, true, true),
		configured("cbBTC", baseCBBTC, true, true),
		configured("AERO", "0x940181a94A35A4569E4529A3CDfB74e38FD98631", true, true),
	}

	tests := []struct {
		name      string
		supported map[string]bool
		wantPct   float64
		wantValid bool
		wantMiss  int
	}{
		{
			name:      "three of four supported",
			supported: map[string]bool{baseUSDC: true, baseWETH: true, baseCBBTC: true},
			wantPct:   75,
			wantValid: true,
			wantMiss:  1,
		},
		{
			name:      "one of four supported",
			supported: map[string]bool{baseUSDC: true},
			wantPct:   25,
			wantValid: false,
			wantMiss:  3,
		},
		{
			name:      "exactly half supported",
			supported: map[string]bool{baseUSDC: true, baseWETH: true},
			wantPct:   50,
			wantValid: true,
			wantMiss:  2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			reserve := mocks.NewMockReserveChecker(ctrl)
			reserve.EXPECT().CheckMany(gomock.Any(), business.NetworkBase, gomock.Len(4)).DoAndReturn(checksFor(tt.supported))

			report, err := NewBusinessTokenValidationService(testConfig(), reserve, nil).Validate(context.Background(),
				map[business.Network][]business.ConfiguredToken{business.NetworkBase: tokens})
			require.NoError(t, err)

			assert.Equal(t, 4, report.TotalTokens)
			assert.Equal(t, tt.wantPct, report.SupportPercentage)
			assert.Equal(t, tt.wantValid, report.Valid)
			assert.Len(t, report.UnsupportedTokens, tt.wantMiss)
		})
	}
}

func TestBusinessTokenValidation_FiltersInactiveTokens(t *testing.T) {
	ctrl := gomock.NewController(t)
	reserve := mocks.NewMockReserveChecker(ctrl)
	reserve.EXPECT().CheckMany(gomock.Any(), business.NetworkBase, []string{baseUSDC}).
		DoAndReturn(checksFor(map[string]bool{baseUSDC: true}))

	report, err := NewBusinessTokenValidationService(testConfig(), reserve, nil).Validate(context.Background(),
		map[business.Network][]business.ConfiguredToken{business.NetworkBase: {
			configured("USDC", baseUSDC, true, true),
			configured("WETH", baseWETH, false, true),
			configured("cbBTC", baseCBBTC, true, false),
		}})
	require.NoError(t, err)

	assert.Equal(t, 1, report.TotalTokens)
	assert.Equal(t, 100.0, report.SupportPercentage)
	assert.True(t, report.Valid)
}

func TestBusinessTokenValidation_EmptyListIsInvalid(t *testing.T) {
	ctrl := gomock.NewController(t)
	report, err := NewBusinessTokenValidationService(testConfig(), mocks.NewMockReserveChecker(ctrl), nil).
		Validate(context.Background(), nil)
	require.NoError(t, err)

	assert.Zero(t, report.TotalTokens)
	assert.Zero(t, report.SupportPercentage)
	assert.False(t, report.Valid)
	assert.Empty(t, report.UnsupportedTokens)
}

func TestBusinessTokenValidation_RecordsLookupErrors(t *testing.T) {
	ctrl := gomock.NewController(t)
	reserve := mocks.NewMockReserveChecker(ctrl)
	reserve.EXPECT().CheckMany(gomock.Any(), business.NetworkEthereum, gomock.Any()).Return(map[string]business.ReserveCheck{
		"0xdAC17F958D2ee523a2206206994597C13D831ec7": {Error: "reserve query failed: no reserve contract configured for ethereum"},
	})

	token := configured("USDT", "0xdAC17F958D2ee523a2206206994597C13D831ec7", true, true)
	token.Network = business.NetworkEthereum
	report, err := NewBusinessTokenValidationService(testConfig(), reserve, nil).Validate(context.Background(),
		map[business.Network][]business.ConfiguredToken{business.NetworkEthereum: {token}})
	require.NoError(t, err)

	require.Len(t, report.UnsupportedTokens, 1)
	assert.Equal(t, "USDT", report.UnsupportedTokens[0].Symbol)
	assert.Contains(t, report.UnsupportedTokens[0].Reason, "no reserve contract")
	assert.False(t, report.Valid)
}

func TestBusinessTokenValidation_ValidateBusiness(t *testing.T) {
	ctrl := gomock.NewController(t)
	businessID := uuid.New()

	store := mocks.NewMockBusinessTokenStore(ctrl)
	store.EXPECT().ListConfiguredTokens(gomock.Any(), businessID).Return(map[business.Network][]business.ConfiguredToken{
		business.NetworkBase: {configured("USDC", "", true, true)},
	}, nil)
	reserve := mocks.NewMockReserveChecker(ctrl)
	// symbol-only entries resolve through the known-token table
	reserve.EXPECT().CheckMany(gomock.Any(), business.NetworkBase, []string{baseUSDC}).
		DoAndReturn(checksFor(map[string]bool{baseUSDC: true}))

	svc := NewBusinessTokenValidationService(testConfig(), reserve, store)
	report, err := svc.ValidateBusiness(context.Background(), businessID)
	require.NoError(t, err)
	assert.True(t, report.Valid)

	store.EXPECT().ListConfiguredTokens(gomock.Any(), gomock.Any()).Return(nil, errors.New("connection refused"))
	_, err = svc.ValidateBusiness(context.Background(), uuid.New())
	assert.Error(t, err)

	_, err = NewBusinessTokenValidationService(testConfig(), reserve, nil).ValidateBusiness(context.Background(), businessID)
	assert.ErrorIs(t, err, ErrNoTokenStore)
}
