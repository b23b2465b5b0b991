package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/cyphera/onramp-engine/internal/logger"
	"github.com/cyphera/onramp-engine/internal/mocks"
	"github.com/cyphera/onramp-engine/internal/services"
	"github.com/cyphera/onramp-engine/internal/types/api/requests"
	"github.com/cyphera/onramp-engine/internal/types/business"
)

func init() {
	logger.InitLogger("test")
	gin.SetMode(gin.TestMode)
}

func perform(router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestHealthHandler_Health(t *testing.T) {
	router := gin.New()
	router.GET("/health", NewHealthHandler([]business.Network{business.NetworkBase, business.NetworkSolana}).Health)

	w := perform(router, http.MethodGet, "/health", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var response HealthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, HealthResponse{Status: "ok", Networks: []string{"base", "solana"}}, response)
}

func TestPriceHandler_GetBestPrice(t *testing.T) {
	ctrl := gomock.NewController(t)
	oracle := mocks.NewMockPriceOracle(ctrl)
	handler := NewPriceHandler(oracle)

	router := gin.New()
	router.GET("/prices/:network/:token", handler.GetBestPrice)
	router.GET("/prices/:network/:token/quick", handler.GetQuickPrice)

	t.Run("passes options through", func(t *testing.T) {
		oracle.EXPECT().GetBestPrice(gomock.Any(), business.NetworkBase, "WETH", 2.5,
			business.PriceOptions{MinLiquidityThreshold: 50, Verbose: true}).
			Return(&business.PriceResult{Success: true, USDCAmount: 6000, Network: business.NetworkBase}, nil)

		w := perform(router, http.MethodGet, "/prices/Base/WETH?amount=2.5&min_liquidity=50&verbose=true", nil)
		require.Equal(t, http.StatusOK, w.Code)

		var result business.PriceResult
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
		assert.True(t, result.Success)
		assert.Equal(t, 6000.0, result.USDCAmount)
	})

	t.Run("rejects a malformed amount", func(t *testing.T) {
		w := perform(router, http.MethodGet, "/prices/base/WETH?amount=lots", nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("rejects non-finite numbers", func(t *testing.T) {
		for _, path := range []string{
			"/prices/solana/SOL?amount=NaN",
			"/prices/solana/SOL?amount=Inf",
			"/prices/solana/SOL?amount=-Inf",
			"/prices/solana/SOL?amount=1&min_liquidity=NaN",
			"/prices/solana/SOL?amount=1&min_liquidity=%2BInf",
			"/prices/solana/SOL/quick?amount=nan",
		} {
			w := perform(router, http.MethodGet, path, nil)
			assert.Equal(t, http.StatusBadRequest, w.Code, path)
			assert.NotZero(t, w.Body.Len(), path)
		}
	})

	t.Run("unsupported network is a bad request", func(t *testing.T) {
		oracle.EXPECT().GetBestPrice(gomock.Any(), business.Network("polygon"), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, fmt.Errorf("%w: polygon", services.ErrUnsupportedNetwork))

		w := perform(router, http.MethodGet, "/prices/polygon/WETH?amount=1", nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "unsupported network")
	})

	t.Run("quick price defaults the amount", func(t *testing.T) {
		oracle.EXPECT().GetQuickPrice(gomock.Any(), business.NetworkSolana, "SOL", 1.0).
			Return(&business.PriceResult{Success: true}, nil)

		w := perform(router, http.MethodGet, "/prices/solana/SOL/quick", nil)
		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestOnrampHandler_Validate(t *testing.T) {
	threshold := 25.0
	tests := []struct {
		name       string
		body       interface{}
		verdict    *business.ValidationVerdict
		err        error
		wantStatus int
	}{
		{
			name:       "processable",
			body:       ValidateOnrampRequest{Network: "base", TokenAddress: "ETH", Amount: 1, MinLiquidityThreshold: &threshold},
			verdict:    &business.ValidationVerdict{IsValid: true, CanProcess: true, Reasons: []string{}},
			wantStatus: http.StatusOK,
		},
		{
			name:       "negative verdict",
			body:       ValidateOnrampRequest{Network: "base", TokenAddress: "ETH", Amount: 1, MinLiquidityThreshold: &threshold},
			verdict:    &business.ValidationVerdict{Reasons: []string{"no liquidity", "no price data"}},
			wantStatus: http.StatusUnprocessableEntity,
		},
		{
			name:       "unsupported network",
			body:       ValidateOnrampRequest{Network: "polygon", TokenAddress: "ETH", Amount: 1},
			err:        services.ErrUnsupportedNetwork,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "missing token",
			body:       map[string]interface{}{"network": "base", "amount": 1},
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			validator := mocks.NewMockOnrampValidator(ctrl)
			if tt.verdict != nil || tt.err != nil {
				validator.EXPECT().Validate(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, req business.ValidationRequest) (*business.ValidationVerdict, error) {
						assert.True(t, req.ReserveRequired())
						if tt.err == nil {
							assert.Equal(t, threshold, req.MinLiquidityThreshold)
						}
						return tt.verdict, tt.err
					})
			}

			router := gin.New()
			router.POST("/onramp/validate", NewOnrampHandler(validator).Validate)

			w := perform(router, http.MethodPost, "/onramp/validate", tt.body)
			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.verdict != nil {
				var verdict business.ValidationVerdict
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &verdict))
				assert.Equal(t, tt.verdict.Reasons, verdict.Reasons)
			}
		})
	}
}

func TestCoverageHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	validator := mocks.NewMockCoverageValidator(ctrl)
	handler := NewCoverageHandler(validator)

	router := gin.New()
	router.POST("/businesses/token-coverage", handler.ValidateTokens)
	router.GET("/businesses/:business_id/token-coverage", handler.ValidateBusiness)

	t.Run("groups tokens by network", func(t *testing.T) {
		validator.EXPECT().Validate(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, byNetwork map[business.Network][]business.ConfiguredToken) (*business.BusinessTokenCoverageReport, error) {
				assert.Len(t, byNetwork[business.NetworkBase], 2)
				assert.Len(t, byNetwork[business.NetworkSolana], 1)
				return &business.BusinessTokenCoverageReport{TotalTokens: 3, SupportedByReserve: 2, SupportPercentage: 200.0 / 3, Valid: true}, nil
			})

		w := perform(router, http.MethodPost, "/businesses/token-coverage", TokenCoverageRequest{Tokens: []requests.BusinessToken{
			{Symbol: "USDC", Network: "base", IsActive: true, TradingEnabled: true},
			{Symbol: "WETH", Network: "base", IsActive: true, TradingEnabled: true},
			{Symbol: "SOL", Network: "solana", IsActive: true, TradingEnabled: true},
		}})
		require.Equal(t, http.StatusOK, w.Code)

		var report business.BusinessTokenCoverageReport
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &report))
		assert.True(t, report.Valid)
		assert.Equal(t, 3, report.TotalTokens)
	})

	t.Run("rejects a malformed business id", func(t *testing.T) {
		w := perform(router, http.MethodGet, "/businesses/not-a-uuid/token-coverage", nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("store not configured", func(t *testing.T) {
		id := uuid.New()
		validator.EXPECT().ValidateBusiness(gomock.Any(), id).Return(nil, services.ErrNoTokenStore)

		w := perform(router, http.MethodGet, "/businesses/"+id.String()+"/token-coverage", nil)
		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	})
}

func TestReserveHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	reserve := mocks.NewMockReserveChecker(ctrl)
	handler := NewReserveHandler(reserve)

	router := gin.New()
	router.GET("/reserve/:network/tokens/:address", handler.IsSupported)
	router.GET("/reserve/:network/configuration", handler.GetConfiguration)
	router.GET("/reserve/:network/balances", handler.GetBalances)

	reserve.EXPECT().IsSupported(gomock.Any(), business.NetworkBase, "ETH").Return(true, nil)
	w := perform(router, http.MethodGet, "/reserve/base/tokens/ETH", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var support ReserveSupportResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &support))
	assert.True(t, support.Supported)

	reserve.EXPECT().GetConfiguration(gomock.Any(), business.NetworkEthereum).
		Return(nil, fmt.Errorf("%w: no reserve contract configured for ethereum", services.ErrReserveQuery))
	w = perform(router, http.MethodGet, "/reserve/ethereum/configuration", nil)
	assert.Equal(t, http.StatusBadGateway, w.Code)

	reserve.EXPECT().GetBalances(gomock.Any(), business.NetworkBase).
		Return(&business.ReserveBalances{Network: business.NetworkBase}, nil)
	w = perform(router, http.MethodGet, "/reserve/base/balances", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}
