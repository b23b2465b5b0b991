package services

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/cyphera/onramp-engine/internal/config"
	"github.com/cyphera/onramp-engine/internal/interfaces"
	"github.com/cyphera/onramp-engine/internal/logger"
	"github.com/cyphera/onramp-engine/internal/types/business"
)

const reasonNotInReserve = "not supported by reserve"

// BusinessTokenValidationService reports how much of a business's token
// list the reserve can settle. The report is advisory and never gates an
// individual onramp.
type BusinessTokenValidationService struct {
	cfg     *config.Config
	reserve interfaces.ReserveChecker
	store   interfaces.BusinessTokenStore
	logger  *zap.Logger
}

// NewBusinessTokenValidationService creates the validator. store may be nil,
// in which case ValidateBusiness returns ErrNoTokenStore.
func NewBusinessTokenValidationService(cfg *config.Config, reserve interfaces.ReserveChecker, store interfaces.BusinessTokenStore) *BusinessTokenValidationService {
	return &BusinessTokenValidationService{
		cfg:     cfg,
		reserve: reserve,
		store:   store,
		logger:  logger.WithComponent("business_token_validator"),
	}
}

type networkCoverage struct {
	total       int
	supported   int
	unsupported []business.UnsupportedToken
}

// Validate checks every active, trading-enabled token. Networks are checked
// concurrently.
func (s *BusinessTokenValidationService) Validate(ctx context.Context, tokensByNetwork map[business.Network][]business.ConfiguredToken) (*business.BusinessTokenCoverageReport, error) {
	networks := make([]business.Network, 0, len(tokensByNetwork))
	for network := range tokensByNetwork {
		networks = append(networks, network)
	}
	sort.Slice(networks, func(i, j int) bool { return networks[i] < networks[j] })

	coverage := make([]networkCoverage, len(networks))
	var wg sync.WaitGroup
	for i, network := range networks {
		wg.Add(1)
		go func() {
			defer wg.Done()
			coverage[i] = s.checkNetwork(ctx, network, tokensByNetwork[network])
		}()
	}
	wg.Wait()

	report := &business.BusinessTokenCoverageReport{UnsupportedTokens: []business.UnsupportedToken{}}
	for _, c := range coverage {
		report.TotalTokens += c.total
		report.SupportedByReserve += c.supported
		report.UnsupportedTokens = append(report.UnsupportedTokens, c.unsupported...)
	}
	if report.TotalTokens > 0 {
		report.SupportPercentage = float64(report.SupportedByReserve) / float64(report.TotalTokens) * 100
		report.Valid = report.SupportPercentage >= s.threshold()
	}

	s.logger.Info("Business token coverage computed",
		zap.Int("total_tokens", report.TotalTokens),
		zap.Int("supported", report.SupportedByReserve),
		zap.Float64("support_percentage", report.SupportPercentage),
		zap.Bool("valid", report.Valid))
	return report, nil
}

// ValidateBusiness loads the token list for a business and validates it.
func (s *BusinessTokenValidationService) ValidateBusiness(ctx context.Context, businessID uuid.UUID) (*business.BusinessTokenCoverageReport, error) {
	if s.store == nil {
		return nil, ErrNoTokenStore
	}
	tokens, err := s.store.ListConfiguredTokens(ctx, businessID)
	if err != nil {
		return nil, fmt.Errorf("failed to load tokens for business %s: %w", businessID, err)
	}
	return s.Validate(ctx, tokens)
}

func (s *BusinessTokenValidationService) threshold() float64 {
	if s.cfg.Pricing.CoverageThresholdPct > 0 {
		return s.cfg.Pricing.CoverageThresholdPct
	}
	return 50
}

func (s *BusinessTokenValidationService) checkNetwork(ctx context.Context, network business.Network, tokens []business.ConfiguredToken) networkCoverage {
	var eligible []business.ConfiguredToken
	for _, token := range tokens {
		if token.IsActive && token.TradingEnabled {
			eligible = append(eligible, token)
		}
	}
	result := networkCoverage{total: len(eligible)}
	if len(eligible) == 0 {
		return result
	}

	addresses := make([]string, len(eligible))
	for i, token := range eligible {
		addresses[i] = s.addressOf(network, token)
	}
	checks := s.reserve.CheckMany(ctx, network, addresses)

	for i, token := range eligible {
		check, ok := checks[addresses[i]]
		if ok && check.Supported {
			result.supported++
			continue
		}
		reason := reasonNotInReserve
		if ok && check.Error != "" {
			reason = check.Error
		}
		result.unsupported = append(result.unsupported, business.UnsupportedToken{
			Symbol:  token.Symbol,
			Network: network,
			Address: token.Address,
			Reason:  reason,
		})
	}
	return result
}

// addressOf falls back to the known-token table when a token was saved
// without an address.
func (s *BusinessTokenValidationService) addressOf(network business.Network, token business.ConfiguredToken) string {
	if token.Address != "" {
		return token.Address
	}
	if chain, ok := s.cfg.Chain(network); ok {
		if info, found := config.LookupToken(chain, token.Symbol); found {
			return info.Address
		}
	}
	return token.Symbol
}
