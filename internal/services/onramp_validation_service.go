package services

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/cyphera/onramp-engine/internal/config"
	"github.com/cyphera/onramp-engine/internal/interfaces"
	"github.com/cyphera/onramp-engine/internal/logger"
	"github.com/cyphera/onramp-engine/internal/types/business"
)

const (
	reasonReserveUnverified  = "reserve support could not be verified"
	reasonReserveUnsupported = "token not supported by reserve"
	reasonNoReserveContract  = "no reserve contract on %s"
)

// OnrampValidationService composes pricing, the liquidity gate and the
// reserve check into a single verdict. It keeps no state between calls.
type OnrampValidationService struct {
	cfg     *config.Config
	oracle  interfaces.PriceOracle
	reserve interfaces.ReserveChecker
	logger  *zap.Logger
}

func NewOnrampValidationService(cfg *config.Config, oracle interfaces.PriceOracle, reserve interfaces.ReserveChecker) *OnrampValidationService {
	return &OnrampValidationService{
		cfg:     cfg,
		oracle:  oracle,
		reserve: reserve,
		logger:  logger.WithComponent("onramp_validator"),
	}
}

// Validate runs every check and collects one reason per failing check.
// Only an unsupported network is returned as an error.
func (s *OnrampValidationService) Validate(ctx context.Context, req business.ValidationRequest) (*business.ValidationVerdict, error) {
	price, err := s.oracle.GetBestPrice(ctx, req.Network, req.TokenAddress, req.Amount, business.PriceOptions{
		MinLiquidityThreshold: req.MinLiquidityThreshold,
	})
	if err != nil {
		return nil, err
	}

	verdict := &business.ValidationVerdict{
		Reasons:   []string{},
		PriceData: price,
	}
	if !price.Success && price.ErrorReason != "" {
		verdict.Reasons = append(verdict.Reasons, price.ErrorReason)
	}

	gate := EvaluateLiquidity(price, business.LiquidityPolicy{
		MinLiquidityUSD:   price.MinLiquidityUSD,
		MaxPriceImpactBps: s.cfg.Pricing.MaxPriceImpactBps,
	})
	verdict.Reasons = append(verdict.Reasons, gate.Reasons...)
	if price.Success && gate.Pass && !price.HasAdequateLiquidity {
		verdict.Reasons = append(verdict.Reasons, fmt.Sprintf(insufficientLiquidityTempl, formatUSD(price.MinLiquidityUSD)))
	}

	reserveOK := true
	if req.ReserveRequired() {
		verdict.ReserveChecked = true
		supported, err := s.reserve.IsSupported(ctx, req.Network, req.TokenAddress)
		switch {
		case errors.Is(err, ErrNoReserveContract):
			verdict.Reasons = append(verdict.Reasons, fmt.Sprintf(reasonNoReserveContract, req.Network))
		case err != nil:
			s.logger.Warn("Reserve check failed during onramp validation",
				zap.String("network", string(req.Network)),
				zap.String("token", req.TokenAddress),
				zap.Error(err))
			verdict.Reasons = append(verdict.Reasons, reasonReserveUnverified)
		case !supported:
			verdict.Reasons = append(verdict.Reasons, reasonReserveUnsupported)
		}
		verdict.ReserveSupported = err == nil && supported
		reserveOK = verdict.ReserveSupported
	}

	verdict.CanProcess = price.Success && price.HasAdequateLiquidity && gate.Pass && reserveOK
	verdict.IsValid = verdict.CanProcess

	s.logger.Debug("Onramp validation complete",
		zap.String("network", string(req.Network)),
		zap.String("token", req.TokenAddress),
		zap.Float64("amount", req.Amount),
		zap.Bool("can_process", verdict.CanProcess),
		zap.Strings("reasons", verdict.Reasons))
	return verdict, nil
}
