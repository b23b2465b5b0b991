package business

import "math/big"

// ReserveCheck is the per-address outcome of a reserve support lookup.
type ReserveCheck struct {
	Address   string `json:"address"`
	Supported bool   `json:"supported"`
	Error     string `json:"error,omitempty"`
}

// ReserveConfiguration is a read-only snapshot of the reserve contract settings.
type ReserveConfiguration struct {
	Network          Network `json:"network"`
	ContractAddress  string  `json:"contract_address"`
	Owner            string  `json:"owner"`
	SettlementSigner string  `json:"settlement_signer"`
	FeeBps           uint64  `json:"fee_bps"`
	Paused           bool    `json:"paused"`
}

// ReserveTokenBalance is one token balance held by the reserve.
type ReserveTokenBalance struct {
	Token   string   `json:"token"`
	Balance *big.Int `json:"balance"`
}

// ReserveBalances is a read-only snapshot of reserve holdings.
type ReserveBalances struct {
	Network         Network               `json:"network"`
	ContractAddress string                `json:"contract_address"`
	Balances        []ReserveTokenBalance `json:"balances"`
}
