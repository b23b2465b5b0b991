package server

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/cyphera/onramp-engine/internal/client/coinmarketcap"
	"github.com/cyphera/onramp-engine/internal/client/evm"
	"github.com/cyphera/onramp-engine/internal/client/jupiter"
	"github.com/cyphera/onramp-engine/internal/config"
	"github.com/cyphera/onramp-engine/internal/db"
	"github.com/cyphera/onramp-engine/internal/interfaces"
	"github.com/cyphera/onramp-engine/internal/logger"
	"github.com/cyphera/onramp-engine/internal/metrics"
	"github.com/cyphera/onramp-engine/internal/services"
	"github.com/cyphera/onramp-engine/internal/types/business"
)

// ChainClient is the per-chain RPC client. The same connection serves AMM
// quoting, token metadata and reserve reads.
type ChainClient interface {
	interfaces.EVMContractClient
	interfaces.ReserveContractClient
}

// Clients are the upstream connections the engine is built from.
type Clients struct {
	EVM        map[business.Network]ChainClient
	Aggregator map[business.Network]interfaces.AggregatorQuoteClient
	Reference  interfaces.ReferencePriceClient
	TokenStore interfaces.BusinessTokenStore
}

// Engine holds the wired pricing and eligibility services.
type Engine struct {
	Config   *config.Config
	Metrics  *metrics.Collector
	Oracle   *services.PriceOracleService
	Reserve  *services.ReserveService
	Onramp   *services.OnrampValidationService
	Coverage *services.BusinessTokenValidationService
	Monitor  *services.PriceMonitor
}

// DialClients connects to every upstream enabled in cfg. The returned close
// function releases the database pool, if one was opened.
func DialClients(ctx context.Context, cfg *config.Config, collector *metrics.Collector) (Clients, func(), error) {
	clients := Clients{
		EVM:        make(map[business.Network]ChainClient),
		Aggregator: make(map[business.Network]interfaces.AggregatorQuoteClient),
	}
	closeFn := func() {}

	for _, network := range cfg.EnabledNetworks() {
		chain, _ := cfg.Chain(network)
		if chain.IsEVM() {
			client, err := evm.Dial(ctx, chain.RPCURL,
				evm.WithNetwork(string(network)),
				evm.WithCallTimeout(chain.Timeout),
				evm.WithRetry(chain.MaxRetries, chain.RetryDelay),
				evm.WithMetrics(collector))
			if err != nil {
				return clients, closeFn, fmt.Errorf("failed to dial %s: %w", network, err)
			}
			clients.EVM[network] = client
			continue
		}
		clients.Aggregator[network] = jupiter.NewClient(jupiter.Config{
			BaseURL:    chain.AggregatorURL,
			Timeout:    chain.Timeout,
			MaxRetries: chain.MaxRetries,
			RetryDelay: chain.RetryDelay,
			Metrics:    collector,
		})
	}

	if cfg.CMCAPIKey != "" {
		clients.Reference = coinmarketcap.NewClient(cfg.CMCAPIKey, "", collector)
	}

	if cfg.DatabaseURL != "" {
		pool, err := db.OpenPool(ctx, cfg.DatabaseURL)
		if err != nil {
			return clients, closeFn, err
		}
		clients.TokenStore = db.NewBusinessTokenStore(db.New(pool))
		closeFn = pool.Close
	}

	logger.Info("Upstream clients ready",
		zap.Int("evm_chains", len(clients.EVM)),
		zap.Int("aggregators", len(clients.Aggregator)),
		zap.Bool("reference_prices", clients.Reference != nil),
		zap.Bool("token_store", clients.TokenStore != nil))
	return clients, closeFn, nil
}

// NewEngine wires route providers and services over the given clients.
func NewEngine(cfg *config.Config, clients Clients, collector *metrics.Collector) *Engine {
	if collector == nil {
		collector = metrics.New()
	}
	var (
		providers      []interfaces.RouteProvider
		contractReads  = make(map[business.Network]interfaces.EVMContractClient)
		reserveClients = make(map[business.Network]interfaces.ReserveContractClient)
	)
	for network, client := range clients.EVM {
		chain, ok := cfg.Chain(network)
		if !ok {
			continue
		}
		providers = append(providers, services.NewEVMRouteProvider(chain, client, collector))
		contractReads[network] = client
		reserveClients[network] = client
	}
	for network, client := range clients.Aggregator {
		chain, ok := cfg.Chain(network)
		if !ok {
			continue
		}
		providers = append(providers, services.NewAggregatorRouteProvider(chain, client, collector))
	}

	oracle := services.NewPriceOracleService(cfg, providers,
		services.WithTokenResolver(services.NewTokenResolver(contractReads, logger.WithComponent("token_resolver"))),
		services.WithRouteObserver(collector))
	reserve := services.NewReserveService(cfg, reserveClients)

	return &Engine{
		Config:   cfg,
		Metrics:  collector,
		Oracle:   oracle,
		Reserve:  reserve,
		Onramp:   services.NewOnrampValidationService(cfg, oracle, reserve),
		Coverage: services.NewBusinessTokenValidationService(cfg, reserve, clients.TokenStore),
		Monitor:  services.NewPriceMonitor(oracle, clients.Reference),
	}
}
