package constants

// Common string constants used throughout the codebase
const (
	ServiceName = "onramp-engine"

	// Log levels
	ErrorLevel = "error"

	// Environments
	ProdEnvironment  = "prod"
	LocalEnvironment = "local"

	// Fiat currency used for reference prices
	USDCurrency = "USD"
)

// Networks
const (
	NetworkBase     = "base"
	NetworkEthereum = "ethereum"
	NetworkSolana   = "solana"
)

// Chain families
const (
	FamilyEVM    = "evm"
	FamilySolana = "solana"
)

// Placeholder values for tokens missing from the known-token tables
const (
	UnknownTokenSymbol    = "UNKNOWN"
	UnknownTokenName      = "Unknown Token"
	DefaultEVMDecimals    = 18
	DefaultSolanaDecimals = 9
	USDCDecimals          = 6
)

// Liquidity and pricing policy defaults
const (
	DefaultMinLiquidityUSD       = 100.0
	DefaultSolanaMinLiquidityUSD = 1.0
	DefaultQuickPriceMinUSD      = 0.5
	DefaultMaxPriceImpactBps     = 500
	DefaultCoverageThresholdPct  = 50.0
	DefaultAggregatorSlippageBps = 50
)
