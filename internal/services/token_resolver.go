package services

import (
	"context"
	"sync"

	"github.com/ethereum/go-ethereum/common"
	"go.uber.org/zap"

	"github.com/cyphera/onramp-engine/internal/config"
	"github.com/cyphera/onramp-engine/internal/interfaces"
	"github.com/cyphera/onramp-engine/internal/types/business"
)

// TokenResolver resolves user input into a TokenInfo. Unknown EVM tokens are
// enriched with on-chain decimals and symbol when a contract client is
// registered for the network; otherwise the placeholder defaults stand.
type TokenResolver struct {
	clients map[business.Network]interfaces.EVMContractClient
	logger  *zap.Logger
}

func NewTokenResolver(clients map[business.Network]interfaces.EVMContractClient, logger *zap.Logger) *TokenResolver {
	return &TokenResolver{clients: clients, logger: logger}
}

// Resolve returns false when the input is neither a known symbol nor a valid address.
func (r *TokenResolver) Resolve(ctx context.Context, chain *config.Chain, symbolOrAddress string) (*business.TokenInfo, bool) {
	token, ok := config.ResolveToken(chain, symbolOrAddress)
	if !ok {
		return nil, false
	}
	if !config.IsUnknown(*token) || !chain.IsEVM() {
		return token, true
	}
	client, ok := r.clients[chain.Network]
	if !ok || client == nil {
		return token, true
	}

	addr := common.HexToAddress(token.Address)
	var (
		wg        sync.WaitGroup
		decimals  uint8
		symbol    string
		decErr    error
		symbolErr error
	)
	wg.Add(2)
	go func() {
		defer wg.Done()
		decimals, decErr = client.TokenDecimals(ctx, addr)
	}()
	go func() {
		defer wg.Done()
		symbol, symbolErr = client.TokenSymbol(ctx, addr)
	}()
	wg.Wait()

	if decErr != nil {
		r.logger.Warn("Could not read token decimals, using default",
			zap.String("token", token.Address),
			zap.Int32("default_decimals", token.Decimals),
			zap.Error(decErr))
	} else {
		token.Decimals = int32(decimals)
	}
	if symbolErr == nil && symbol != "" {
		token.Symbol = symbol
		token.Name = symbol
	}
	return token, true
}
