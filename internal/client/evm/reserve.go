package evm

import (
	"context"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
)

// ReserveConfig is the raw getConfiguration() result.
type ReserveConfig struct {
	Owner            common.Address
	SettlementSigner common.Address
	FeeBps           *big.Int
	Paused           bool
}

// IsSupportedToken asks the reserve contract whether it can custody the token.
func (c *Client) IsSupportedToken(ctx context.Context, reserve, token common.Address) (bool, error) {
	values, err := c.call(ctx, ReserveABI, reserve, "isSupportedToken", token)
	if err != nil {
		return false, err
	}
	supported, ok := values[0].(bool)
	if !ok {
		return false, fmt.Errorf("isSupportedToken: %w: got %T", ErrMalformedResult, values[0])
	}
	return supported, nil
}

// ReserveConfiguration reads the reserve owner, signer, fee and pause flag.
func (c *Client) ReserveConfiguration(ctx context.Context, reserve common.Address) (*ReserveConfig, error) {
	values, err := c.call(ctx, ReserveABI, reserve, "getConfiguration")
	if err != nil {
		return nil, err
	}
	if len(values) != 4 {
		return nil, fmt.Errorf("getConfiguration: %w: %d outputs", ErrMalformedResult, len(values))
	}
	owner, ok1 := values[0].(common.Address)
	signer, ok2 := values[1].(common.Address)
	fee, ok3 := values[2].(*big.Int)
	paused, ok4 := values[3].(bool)
	if !ok1 || !ok2 || !ok3 || !ok4 {
		return nil, fmt.Errorf("getConfiguration: %w: unexpected output types", ErrMalformedResult)
	}
	return &ReserveConfig{Owner: owner, SettlementSigner: signer, FeeBps: fee, Paused: paused}, nil
}

// ReserveBalances reads the per-token balances held by the reserve.
func (c *Client) ReserveBalances(ctx context.Context, reserve common.Address) ([]common.Address, []*big.Int, error) {
	values, err := c.call(ctx, ReserveABI, reserve, "getBalances")
	if err != nil {
		return nil, nil, err
	}
	if len(values) != 2 {
		return nil, nil, fmt.Errorf("getBalances: %w: %d outputs", ErrMalformedResult, len(values))
	}
	tokens, ok1 := values[0].([]common.Address)
	balances, ok2 := values[1].([]*big.Int)
	if !ok1 || !ok2 || len(tokens) != len(balances) {
		return nil, nil, fmt.Errorf("getBalances: %w: mismatched outputs", ErrMalformedResult)
	}
	return tokens, balances, nil
}
