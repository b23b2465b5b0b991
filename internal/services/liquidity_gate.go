package services

import (
	"fmt"
	"strconv"

	"github.com/cyphera/onramp-engine/internal/types/business"
)

const (
	reasonNoPriceData          = "no price data"
	reasonPriceImpactTooHigh   = "price impact exceeds policy"
	reasonInvalidThreshold     = "invalid liquidity threshold"
	insufficientLiquidityTempl = "insufficient liquidity (minimum $%s required)"
)

// EvaluateLiquidity applies the liquidity policy to a price result. It has
// no side effects. A zero policy minimum falls back to the threshold the
// result was priced with.
func EvaluateLiquidity(result *business.PriceResult, policy business.LiquidityPolicy) business.GateDecision {
	if result == nil || !result.Success || result.BestRoute == nil {
		return business.GateDecision{Pass: false, Reasons: []string{reasonNoPriceData}}
	}

	minimum := policy.MinLiquidityUSD
	if minimum <= 0 {
		minimum = result.MinLiquidityUSD
	}

	if !isFinite(minimum) || !isFinite(result.BestRoute.USDCAmount) {
		return business.GateDecision{Pass: false, Reasons: []string{reasonInvalidThreshold}}
	}

	var reasons []string
	if result.BestRoute.USDCAmount < minimum {
		reasons = append(reasons, fmt.Sprintf(insufficientLiquidityTempl, formatUSD(minimum)))
	}
	if impact := result.BestRoute.PriceImpactBps; impact != nil && policy.MaxPriceImpactBps > 0 && *impact > policy.MaxPriceImpactBps {
		reasons = append(reasons, reasonPriceImpactTooHigh)
	}
	return business.GateDecision{Pass: len(reasons) == 0, Reasons: reasons}
}

// formatUSD drops trailing zeros without exponents: 1000000 -> "1000000",
// 0.5 -> "0.5".
func formatUSD(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
