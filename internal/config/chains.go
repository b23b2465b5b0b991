package config

import (
	"time"

	"github.com/cyphera/onramp-engine/internal/constants"
	"github.com/cyphera/onramp-engine/internal/types/business"
)

// Chain is the static configuration of one network.
type Chain struct {
	Network business.Network
	Family  string
	ChainID int64
	Enabled bool

	// RPCURL is the JSON-RPC endpoint for EVM chains. RPCID is the Infura
	// subdomain used to build the URL when only an API key is configured.
	RPCURL string
	RPCID  string

	NativeSymbol          string
	WrappedNative         business.TokenInfo
	USDC                  business.TokenInfo
	Tokens                []business.TokenInfo
	LegacyNativeAddresses []string

	// AMM contracts (EVM only)
	V3Quoter string
	V2Router string
	// FeeTiers are Uniswap V3 fee tiers in hundredths of a bip (500 = 0.05%).
	FeeTiers []uint32

	// Aggregator settings (Solana only)
	AggregatorURL string
	SlippageBps   int

	ReserveAddress  string
	MinLiquidityUSD float64

	Timeout    time.Duration
	MaxRetries int
	RetryDelay time.Duration
}

// IsEVM reports whether the chain is priced through on-chain AMM contracts.
func (c *Chain) IsEVM() bool {
	return c.Family == constants.FamilyEVM
}

var defaultFeeTiers = []uint32{100, 500, 3000, 10000}

// DefaultChains returns the built-in network table.
func DefaultChains() map[business.Network]*Chain {
	return map[business.Network]*Chain{
		business.NetworkBase:     baseChain(),
		business.NetworkEthereum: ethereumChain(),
		business.NetworkSolana:   solanaChain(),
	}
}

func evmToken(network business.Network, symbol, name, address string, decimals int32) business.TokenInfo {
	return business.TokenInfo{
		Symbol:   symbol,
		Name:     name,
		Decimals: decimals,
		Address:  address,
		Network:  network,
	}
}

func baseChain() *Chain {
	n := business.NetworkBase
	return &Chain{
		Network:       n,
		Family:        constants.FamilyEVM,
		ChainID:       8453,
		Enabled:       true,
		RPCID:         "base-mainnet",
		NativeSymbol:  "ETH",
		WrappedNative: evmToken(n, "WETH", "Wrapped Ether", "0x4200000000000000000000000000000000000006", 18),
		USDC:          evmToken(n, "USDC", "USD Coin", "0x833589fCD6eDb6E08f4c7C32D4f71b54bdA02913", constants.USDCDecimals),
		Tokens: []business.TokenInfo{
			evmToken(n, "USDbC", "USD Base Coin", "0xd9aAEc86B65D86f6A7B5B1b0c42FFA531710b6CA", 6),
			evmToken(n, "DAI", "Dai Stablecoin", "0x50c5725949A6F0c72E6C4a641F24049A917DB0Cb", 18),
			evmToken(n, "cbBTC", "Coinbase Wrapped BTC", "0xcbB7C0000aB88B473b1f5aFd9ef808440eed33Bf", 8),
			evmToken(n, "cbETH", "Coinbase Wrapped Staked ETH", "0x2Ae3F1Ec7F1F5012CFEab0185bfc7aa3cf0DEc22", 18),
			evmToken(n, "AERO", "Aerodrome", "0x940181a94A35A4569E4529A3CDfB74e38FD98631", 18),
		},
		V3Quoter:        "0x3d4e44Eb1374240CE5F1B871ab261CD16335B76a",
		V2Router:        "0x4752ba5DBc23f44D87826276BF6Fd6b1C372aD24",
		FeeTiers:        append([]uint32(nil), defaultFeeTiers...),
		MinLiquidityUSD: constants.DefaultMinLiquidityUSD,
		Timeout:         10 * time.Second,
		MaxRetries:      3,
		RetryDelay:      time.Second,
	}
}

func ethereumChain() *Chain {
	n := business.NetworkEthereum
	return &Chain{
		Network:       n,
		Family:        constants.FamilyEVM,
		ChainID:       1,
		Enabled:       true,
		RPCID:         "mainnet",
		NativeSymbol:  "ETH",
		WrappedNative: evmToken(n, "WETH", "Wrapped Ether", "0xC02aaA39b223FE8D0A0e5C4F27eAD9083C756Cc2", 18),
		USDC:          evmToken(n, "USDC", "USD Coin", "0xA0b86991c6218b36c1d19D4a2e9Eb0cE3606eB48", constants.USDCDecimals),
		Tokens: []business.TokenInfo{
			evmToken(n, "USDT", "Tether USD", "0xdAC17F958D2ee523a2206206994597C13D831ec7", 6),
			evmToken(n, "DAI", "Dai Stablecoin", "0x6B175474E89094C44Da98b954EedeAC495271d0F", 18),
			evmToken(n, "WBTC", "Wrapped BTC", "0x2260FAC5E5542a773Aa44fBCfeDf7C193bc2C599", 8),
		},
		V3Quoter:        "0x61fFE014bA17989E743c5F6cB21bF9697530B21e",
		V2Router:        "0x7a250d5630B4cF539739dF2C5dAcb4c659F2488D",
		FeeTiers:        append([]uint32(nil), defaultFeeTiers...),
		MinLiquidityUSD: constants.DefaultMinLiquidityUSD,
		Timeout:         10 * time.Second,
		MaxRetries:      3,
		RetryDelay:      time.Second,
	}
}

// Canonical Solana mints.
const (
	SolanaWrappedSOLMint   = "So11111111111111111111111111111111111111112"
	SolanaUSDCMint         = "EPjFWdd5AufqSSqeM2qN1xzybapC8G4wEGGkZwyTDt1v"
	SolanaLegacyNativeMint = "11111111111111111111111111111112"
)

func solanaChain() *Chain {
	n := business.NetworkSolana
	return &Chain{
		Network:      n,
		Family:       constants.FamilySolana,
		Enabled:      true,
		NativeSymbol: "SOL",
		WrappedNative: business.TokenInfo{
			Symbol: "WSOL", Name: "Wrapped SOL", Decimals: 9, Address: SolanaWrappedSOLMint, Network: n,
		},
		USDC: business.TokenInfo{
			Symbol: "USDC", Name: "USD Coin", Decimals: constants.USDCDecimals, Address: SolanaUSDCMint, Network: n,
		},
		Tokens: []business.TokenInfo{
			{Symbol: "USDT", Name: "Tether USD", Decimals: 6, Address: "Es9vMFrzaCERmJfrF4H2FYD4KCoNkY11McCe8BenwNYB", Network: n},
			{Symbol: "BONK", Name: "Bonk", Decimals: 5, Address: "DezXAZ8z7PnrnRJjz3wXBoRgixCa6xjnB7YaB1pPB263", Network: n},
			{Symbol: "JUP", Name: "Jupiter", Decimals: 6, Address: "JUPyiwrYJFskUPiHa7hkeR8VUtAeFoSYbKedZNsDvCN", Network: n},
		},
		LegacyNativeAddresses: []string{SolanaLegacyNativeMint},
		AggregatorURL:         "https://lite-api.jup.ag/swap/v1",
		SlippageBps:           constants.DefaultAggregatorSlippageBps,
		MinLiquidityUSD:       constants.DefaultSolanaMinLiquidityUSD,
		Timeout:               10 * time.Second,
		MaxRetries:            3,
		RetryDelay:            time.Second,
	}
}
