package services

import (
	"context"
	"fmt"
	"sync"

	"github.com/ethereum/go-ethereum/common"
	"go.uber.org/zap"

	"github.com/cyphera/onramp-engine/internal/config"
	"github.com/cyphera/onramp-engine/internal/interfaces"
	"github.com/cyphera/onramp-engine/internal/logger"
	"github.com/cyphera/onramp-engine/internal/types/business"
)

// ReserveService reads token support and holdings from the settlement
// reserve contract. Results are never cached.
type ReserveService struct {
	cfg     *config.Config
	clients map[business.Network]interfaces.ReserveContractClient
	logger  *zap.Logger
}

func NewReserveService(cfg *config.Config, clients map[business.Network]interfaces.ReserveContractClient) *ReserveService {
	return &ReserveService{
		cfg:     cfg,
		clients: clients,
		logger:  logger.WithComponent("reserve_service"),
	}
}

func (s *ReserveService) reserveFor(network business.Network) (*config.Chain, interfaces.ReserveContractClient, common.Address, error) {
	chain, ok := s.cfg.Chain(network)
	if !ok {
		return nil, nil, common.Address{}, fmt.Errorf("%w: %s", ErrUnsupportedNetwork, network)
	}
	client := s.clients[network]
	if chain.ReserveAddress == "" || client == nil || !chain.IsEVM() {
		return nil, nil, common.Address{}, fmt.Errorf("%w for %s", ErrNoReserveContract, network)
	}
	return chain, client, common.HexToAddress(chain.ReserveAddress), nil
}

// IsSupported asks the reserve whether it can custody and release the token.
func (s *ReserveService) IsSupported(ctx context.Context, network business.Network, address string) (bool, error) {
	chain, client, reserve, err := s.reserveFor(network)
	if err != nil {
		return false, err
	}
	normalized := config.NormalizeAddress(chain, address)
	if !config.IsValidAddress(chain, normalized) {
		return false, fmt.Errorf("%w: invalid token address %q", ErrReserveQuery, address)
	}

	supported, err := client.IsSupportedToken(ctx, reserve, common.HexToAddress(normalized))
	if err != nil {
		s.logger.Warn("Reserve support lookup failed",
			zap.String("network", string(network)),
			zap.String("token", normalized),
			zap.Error(err))
		return false, fmt.Errorf("%w: %v", ErrReserveQuery, err)
	}
	return supported, nil
}

// CheckMany looks up every address concurrently. A failed lookup is recorded
// as unsupported with its error; it never fails the batch.
func (s *ReserveService) CheckMany(ctx context.Context, network business.Network, addresses []string) map[string]business.ReserveCheck {
	results := make(map[string]business.ReserveCheck, len(addresses))
	var (
		mu sync.Mutex
		wg sync.WaitGroup
	)
	for _, address := range addresses {
		if _, dup := results[address]; dup {
			continue
		}
		results[address] = business.ReserveCheck{Address: address}
		wg.Add(1)
		go func() {
			defer wg.Done()
			check := business.ReserveCheck{Address: address}
			supported, err := s.IsSupported(ctx, network, address)
			if err != nil {
				check.Error = err.Error()
			} else {
				check.Supported = supported
			}
			mu.Lock()
			results[address] = check
			mu.Unlock()
		}()
	}
	wg.Wait()
	return results
}

// GetConfiguration returns a snapshot of the reserve settings.
func (s *ReserveService) GetConfiguration(ctx context.Context, network business.Network) (*business.ReserveConfiguration, error) {
	_, client, reserve, err := s.reserveFor(network)
	if err != nil {
		return nil, err
	}
	raw, err := client.ReserveConfiguration(ctx, reserve)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrReserveQuery, err)
	}
	snapshot := &business.ReserveConfiguration{
		Network:          network,
		ContractAddress:  reserve.Hex(),
		Owner:            raw.Owner.Hex(),
		SettlementSigner: raw.SettlementSigner.Hex(),
		Paused:           raw.Paused,
	}
	if raw.FeeBps != nil && raw.FeeBps.IsUint64() {
		snapshot.FeeBps = raw.FeeBps.Uint64()
	}
	return snapshot, nil
}

// GetBalances returns a snapshot of the reserve token balances.
func (s *ReserveService) GetBalances(ctx context.Context, network business.Network) (*business.ReserveBalances, error) {
	_, client, reserve, err := s.reserveFor(network)
	if err != nil {
		return nil, err
	}
	tokens, balances, err := client.ReserveBalances(ctx, reserve)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrReserveQuery, err)
	}
	snapshot := &business.ReserveBalances{
		Network:         network,
		ContractAddress: reserve.Hex(),
		Balances:        make([]business.ReserveTokenBalance, 0, len(tokens)),
	}
	for i, token := range tokens {
		snapshot.Balances = append(snapshot.Balances, business.ReserveTokenBalance{Token: token.Hex(), Balance: balances[i]})
	}
	return snapshot, nil
}
