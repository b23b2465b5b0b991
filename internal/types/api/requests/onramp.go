package requests

// ValidateOnrampRequest is the body of an onramp eligibility check.
type ValidateOnrampRequest struct {
	Network               string   `json:"network" binding:"required"`
	TokenAddress          string   `json:"token_address" binding:"required"`
	Amount                float64  `json:"amount"`
	MinLiquidityThreshold *float64 `json:"min_liquidity_threshold,omitempty"`
	RequireReserveSupport *bool    `json:"require_reserve_support,omitempty"`
}

// BusinessToken is one entry of a token list submitted for coverage.
type BusinessToken struct {
	Symbol         string `json:"symbol" binding:"required"`
	Name           string `json:"name,omitempty"`
	Network        string `json:"network" binding:"required"`
	Address        string `json:"address"`
	IsActive       bool   `json:"is_active"`
	TradingEnabled bool   `json:"trading_enabled"`
}

// TokenCoverageRequest carries a business token list to validate.
type TokenCoverageRequest struct {
	Tokens []BusinessToken `json:"tokens" binding:"required,dive"`
}
