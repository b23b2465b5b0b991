package interfaces

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/common"

	"github.com/cyphera/onramp-engine/internal/client/evm"
	"github.com/cyphera/onramp-engine/internal/client/jupiter"
)

// EVMContractClient reads AMM quotes and ERC-20 metadata over eth_call.
type EVMContractClient interface {
	QuoteExactInputSingle(ctx context.Context, quoter, tokenIn, tokenOut common.Address, amountIn *big.Int, fee uint32) (*big.Int, error)
	GetAmountsOut(ctx context.Context, router common.Address, amountIn *big.Int, path []common.Address) ([]*big.Int, error)
	TokenDecimals(ctx context.Context, token common.Address) (uint8, error)
	TokenSymbol(ctx context.Context, token common.Address) (string, error)
}

// ReserveContractClient reads the settlement reserve contract.
type ReserveContractClient interface {
	IsSupportedToken(ctx context.Context, reserve, token common.Address) (bool, error)
	ReserveConfiguration(ctx context.Context, reserve common.Address) (*evm.ReserveConfig, error)
	ReserveBalances(ctx context.Context, reserve common.Address) ([]common.Address, []*big.Int, error)
}

// AggregatorQuoteClient fetches swap quotes from a routing aggregator.
type AggregatorQuoteClient interface {
	GetQuote(ctx context.Context, req jupiter.QuoteRequest) (*jupiter.QuoteResponse, error)
}

// ReferencePriceClient returns an off-chain USD reference price.
type ReferencePriceClient interface {
	GetUSDPrice(ctx context.Context, symbol string) (float64, error)
}
