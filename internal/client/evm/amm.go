package evm

import (
	"context"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
)

type quoteExactInputSingleParams struct {
	TokenIn           common.Address
	TokenOut          common.Address
	AmountIn          *big.Int
	Fee               *big.Int
	SqrtPriceLimitX96 *big.Int
}

// QuoteExactInputSingle asks a Uniswap V3 QuoterV2 for the output of a single
// pool swap. fee is in hundredths of a bip.
func (c *Client) QuoteExactInputSingle(ctx context.Context, quoter, tokenIn, tokenOut common.Address, amountIn *big.Int, fee uint32) (*big.Int, error) {
	values, err := c.call(ctx, QuoterV2ABI, quoter, "quoteExactInputSingle", quoteExactInputSingleParams{
		TokenIn:           tokenIn,
		TokenOut:          tokenOut,
		AmountIn:          amountIn,
		Fee:               new(big.Int).SetUint64(uint64(fee)),
		SqrtPriceLimitX96: big.NewInt(0),
	})
	if err != nil {
		return nil, err
	}
	return bigOutput(values, 0)
}

// GetAmountsOut calls UniswapV2Router02.getAmountsOut. The result has one
// entry per path element; the last one is the final output.
func (c *Client) GetAmountsOut(ctx context.Context, router common.Address, amountIn *big.Int, path []common.Address) ([]*big.Int, error) {
	values, err := c.call(ctx, V2RouterABI, router, "getAmountsOut", amountIn, path)
	if err != nil {
		return nil, err
	}
	if len(values) == 0 {
		return nil, fmt.Errorf("getAmountsOut: %w: no outputs", ErrMalformedResult)
	}
	amounts, ok := values[0].([]*big.Int)
	if !ok || len(amounts) != len(path) {
		return nil, fmt.Errorf("getAmountsOut: %w: unexpected amounts", ErrMalformedResult)
	}
	return amounts, nil
}
