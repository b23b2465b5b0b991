package business

// ValidationRequest is the input to an onramp eligibility check.
type ValidationRequest struct {
	Network               Network
	TokenAddress          string
	Amount                float64
	MinLiquidityThreshold float64
	// RequireReserveSupport defaults to true when nil.
	RequireReserveSupport *bool
}

// ReserveRequired reports whether the reserve check applies to this request.
func (r ValidationRequest) ReserveRequired() bool {
	return r.RequireReserveSupport == nil || *r.RequireReserveSupport
}

// ValidationVerdict is the aggregated onramp decision.
type ValidationVerdict struct {
	IsValid          bool         `json:"is_valid"`
	CanProcess       bool         `json:"can_process"`
	Reasons          []string     `json:"reasons"`
	PriceData        *PriceResult `json:"price_data"`
	ReserveSupported bool         `json:"reserve_supported"`
	ReserveChecked   bool         `json:"reserve_checked"`
}

// ConfiguredToken is one entry of a business's supported-token list.
type ConfiguredToken struct {
	Symbol         string  `json:"symbol"`
	Name           string  `json:"name,omitempty"`
	Network        Network `json:"network"`
	Address        string  `json:"address"`
	IsActive       bool    `json:"is_active"`
	TradingEnabled bool    `json:"trading_enabled"`
}

// UnsupportedToken is a coverage report entry for a token the reserve rejected.
type UnsupportedToken struct {
	Symbol  string  `json:"symbol"`
	Network Network `json:"network"`
	Address string  `json:"address"`
	Reason  string  `json:"reason,omitempty"`
}

// BusinessTokenCoverageReport summarizes reserve coverage of a business token list.
type BusinessTokenCoverageReport struct {
	TotalTokens        int                `json:"total_tokens"`
	SupportedByReserve int                `json:"supported_by_reserve"`
	UnsupportedTokens  []UnsupportedToken `json:"unsupported_tokens"`
	SupportPercentage  float64            `json:"support_percentage"`
	Valid              bool               `json:"valid"`
}
