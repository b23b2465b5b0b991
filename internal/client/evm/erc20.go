package evm

import (
	"context"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
)

// TokenDecimals reads ERC-20 decimals().
func (c *Client) TokenDecimals(ctx context.Context, token common.Address) (uint8, error) {
	values, err := c.call(ctx, ERC20ABI, token, "decimals")
	if err != nil {
		return 0, err
	}
	decimals, ok := values[0].(uint8)
	if !ok {
		return 0, fmt.Errorf("decimals: %w: got %T", ErrMalformedResult, values[0])
	}
	return decimals, nil
}

// TokenSymbol reads ERC-20 symbol().
func (c *Client) TokenSymbol(ctx context.Context, token common.Address) (string, error) {
	values, err := c.call(ctx, ERC20ABI, token, "symbol")
	if err != nil {
		return "", err
	}
	symbol, ok := values[0].(string)
	if !ok {
		return "", fmt.Errorf("symbol: %w: got %T", ErrMalformedResult, values[0])
	}
	return symbol, nil
}
