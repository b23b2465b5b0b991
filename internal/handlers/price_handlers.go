package handlers

import (
	"fmt"
	"math"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/cyphera/onramp-engine/internal/interfaces"
	"github.com/cyphera/onramp-engine/internal/types/business"
)

// PriceHandler exposes the price oracle.
type PriceHandler struct {
	oracle interfaces.PriceOracle
}

func NewPriceHandler(oracle interfaces.PriceOracle) *PriceHandler {
	return &PriceHandler{oracle: oracle}
}

// GetBestPrice godoc
// @Summary Get best USDC price
// @Description Quotes every route for the token amount and returns the best USDC outcome
// @Tags prices
// @Produce json
// @Param network path string true "Network (base, ethereum, solana)"
// @Param token path string true "Token address or native symbol"
// @Param amount query number true "Human-readable token amount"
// @Param min_liquidity query number false "Minimum USDC output for adequate liquidity"
// @Param verbose query bool false "Include skipped routes"
// @Success 200 {object} business.PriceResult
// @Failure 400 {object} ErrorResponse
// @Router /prices/{network}/{token} [get]
func (h *PriceHandler) GetBestPrice(c *gin.Context) {
	amount, err := parseFiniteFloat(c.Query("amount"))
	if err != nil {
		sendError(c, http.StatusBadRequest, "Invalid amount", err)
		return
	}

	opts := business.PriceOptions{}
	if raw := c.Query("min_liquidity"); raw != "" {
		opts.MinLiquidityThreshold, err = parseFiniteFloat(raw)
		if err != nil {
			sendError(c, http.StatusBadRequest, "Invalid min_liquidity", err)
			return
		}
	}
	if raw := c.Query("verbose"); raw != "" {
		opts.Verbose, err = strconv.ParseBool(raw)
		if err != nil {
			sendError(c, http.StatusBadRequest, "Invalid verbose flag", err)
			return
		}
	}

	result, err := h.oracle.GetBestPrice(c.Request.Context(), business.ParseNetwork(c.Param("network")), c.Param("token"), amount, opts)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	sendSuccess(c, http.StatusOK, result)
}

// GetQuickPrice godoc
// @Summary Get quick price
// @Description Sanity-check price with a low liquidity threshold. Not for onramp decisions.
// @Tags prices
// @Produce json
// @Param network path string true "Network"
// @Param token path string true "Token address or native symbol"
// @Param amount query number false "Human-readable token amount (default 1)"
// @Success 200 {object} business.PriceResult
// @Failure 400 {object} ErrorResponse
// @Router /prices/{network}/{token}/quick [get]
func (h *PriceHandler) GetQuickPrice(c *gin.Context) {
	amount := 1.0
	if raw := c.Query("amount"); raw != "" {
		var err error
		if amount, err = parseFiniteFloat(raw); err != nil {
			sendError(c, http.StatusBadRequest, "Invalid amount", err)
			return
		}
	}

	result, err := h.oracle.GetQuickPrice(c.Request.Context(), business.ParseNetwork(c.Param("network")), c.Param("token"), amount)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	sendSuccess(c, http.StatusOK, result)
}

// parseFiniteFloat rejects NaN and infinities, which ParseFloat accepts but
// JSON cannot encode.
func parseFiniteFloat(raw string) (float64, error) {
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%q is not a finite number", raw)
	}
	return v, nil
}
