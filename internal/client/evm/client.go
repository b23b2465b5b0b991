package evm

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/ethclient"
	"go.uber.org/zap"

	"github.com/cyphera/onramp-engine/internal/logger"
)

var (
	// ErrExecutionReverted is returned when the contract call reverted.
	// Reverts are deterministic and never retried.
	ErrExecutionReverted = errors.New("execution reverted")
	// ErrMalformedResult is returned when the call output cannot be decoded.
	ErrMalformedResult = errors.New("malformed contract result")
)

// ContractCaller is the read-only slice of an Ethereum JSON-RPC client used here.
type ContractCaller interface {
	CallContract(ctx context.Context, call ethereum.CallMsg, blockNumber *big.Int) ([]byte, error)
}

// CallMetrics observes contract calls.
type CallMetrics interface {
	ObserveContractCall(network, method, outcome string, duration time.Duration)
}

type noopCallMetrics struct{}

func (noopCallMetrics) ObserveContractCall(string, string, string, time.Duration) {}

// Client performs typed eth_call reads against AMM, ERC-20 and reserve contracts.
type Client struct {
	caller     ContractCaller
	network    string
	timeout    time.Duration
	maxRetries int
	retryDelay time.Duration
	metrics    CallMetrics
}

// Option configures a Client.
type Option func(*Client)

func WithNetwork(network string) Option {
	return func(c *Client) { c.network = network }
}

// WithCallTimeout bounds each individual attempt.
func WithCallTimeout(timeout time.Duration) Option {
	return func(c *Client) { c.timeout = timeout }
}

// WithRetry sets the retry budget with a constant delay between attempts.
func WithRetry(maxRetries int, delay time.Duration) Option {
	return func(c *Client) {
		c.maxRetries = maxRetries
		c.retryDelay = delay
	}
}

func WithMetrics(metrics CallMetrics) Option {
	return func(c *Client) {
		if metrics != nil {
			c.metrics = metrics
		}
	}
}

// NewClient wraps an existing caller.
func NewClient(caller ContractCaller, opts ...Option) *Client {
	c := &Client{
		caller:     caller,
		timeout:    10 * time.Second,
		maxRetries: 3,
		retryDelay: time.Second,
		metrics:    noopCallMetrics{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Dial connects to an RPC endpoint.
func Dial(ctx context.Context, rpcURL string, opts ...Option) (*Client, error) {
	ec, err := ethclient.DialContext(ctx, rpcURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RPC endpoint: %w", err)
	}
	return NewClient(ec, opts...), nil
}

// call packs the method, runs eth_call with per-attempt timeout and retries,
// and unpacks the outputs.
func (c *Client) call(ctx context.Context, contract abi.ABI, to common.Address, method string, args ...interface{}) ([]interface{}, error) {
	input, err := contract.Pack(method, args...)
	if err != nil {
		return nil, fmt.Errorf("pack %s: %w", method, err)
	}
	msg := ethereum.CallMsg{To: &to, Data: input}

	start := time.Now()
	var output []byte
	attempt := 0
	operation := func() error {
		attempt++
		callCtx, cancel := context.WithTimeout(ctx, c.timeout)
		defer cancel()

		out, err := c.caller.CallContract(callCtx, msg, nil)
		if err != nil {
			if isRevert(err) {
				return backoff.Permanent(fmt.Errorf("%w: %s", ErrExecutionReverted, err.Error()))
			}
			if ctx.Err() != nil {
				return backoff.Permanent(err)
			}
			logger.Log.Debug("Contract call attempt failed",
				zap.String("network", c.network),
				zap.String("method", method),
				zap.Int("attempt", attempt),
				zap.Error(err))
			return err
		}
		output = out
		return nil
	}

	policy := backoff.WithContext(
		backoff.WithMaxRetries(backoff.NewConstantBackOff(c.retryDelay), uint64(c.maxRetries)),
		ctx,
	)
	if err := backoff.Retry(operation, policy); err != nil {
		c.metrics.ObserveContractCall(c.network, method, callOutcome(err), time.Since(start))
		return nil, fmt.Errorf("%s on %s: %w", method, to.Hex(), err)
	}

	if len(output) == 0 {
		c.metrics.ObserveContractCall(c.network, method, "malformed", time.Since(start))
		return nil, fmt.Errorf("%s on %s: %w: empty result", method, to.Hex(), ErrMalformedResult)
	}
	values, err := contract.Unpack(method, output)
	if err != nil {
		c.metrics.ObserveContractCall(c.network, method, "malformed", time.Since(start))
		return nil, fmt.Errorf("%s on %s: %w: %v", method, to.Hex(), ErrMalformedResult, err)
	}
	c.metrics.ObserveContractCall(c.network, method, "success", time.Since(start))
	return values, nil
}

func callOutcome(err error) string {
	switch {
	case errors.Is(err, ErrExecutionReverted):
		return "reverted"
	case errors.Is(err, context.DeadlineExceeded):
		return "timeout"
	default:
		return "error"
	}
}

type dataError interface {
	ErrorData() interface{}
}

func isRevert(err error) bool {
	var de dataError
	if errors.As(err, &de) && de.ErrorData() != nil {
		return true
	}
	return strings.Contains(strings.ToLower(err.Error()), "execution reverted")
}

func bigOutput(values []interface{}, i int) (*big.Int, error) {
	if len(values) <= i {
		return nil, fmt.Errorf("%w: missing output %d", ErrMalformedResult, i)
	}
	v, ok := values[i].(*big.Int)
	if !ok {
		return nil, fmt.Errorf("%w: output %d is %T", ErrMalformedResult, i, values[i])
	}
	return v, nil
}
