package services

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"go.uber.org/zap"

	"github.com/cyphera/onramp-engine/internal/constants"
	"github.com/cyphera/onramp-engine/internal/helpers"
	"github.com/cyphera/onramp-engine/internal/interfaces"
	"github.com/cyphera/onramp-engine/internal/logger"
	"github.com/cyphera/onramp-engine/internal/types/business"
)

// PriceMonitor polls quick prices for a token and summarizes the run.
// It is observational only and never feeds onramp decisions.
type PriceMonitor struct {
	oracle    interfaces.PriceOracle
	reference interfaces.ReferencePriceClient
	logger    *zap.Logger
	now       func() time.Time
}

// NewPriceMonitor creates a monitor. reference may be nil.
func NewPriceMonitor(oracle interfaces.PriceOracle, reference interfaces.ReferencePriceClient) *PriceMonitor {
	return &PriceMonitor{
		oracle:    oracle,
		reference: reference,
		logger:    logger.WithComponent("price_monitor"),
		now:       time.Now,
	}
}

// Run samples immediately and then on every interval until the duration
// elapses or ctx is cancelled. Failed samples are logged and counted.
func (m *PriceMonitor) Run(ctx context.Context, req business.MonitorRequest) (*business.MonitorReport, error) {
	if req.Interval <= 0 || req.Duration <= 0 {
		return nil, fmt.Errorf("%w: interval and duration must be positive", ErrInvalidMonitorRequest)
	}
	if err := helpers.ValidateAmount(req.Amount); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidMonitorRequest, err)
	}

	runCtx, cancel := context.WithTimeout(ctx, req.Duration)
	defer cancel()

	report := &business.MonitorReport{
		Network:   req.Network,
		Token:     req.Token,
		Amount:    req.Amount,
		StartedAt: m.now().UTC(),
		Samples:   []business.PriceSample{},
	}
	log := m.logger.With(
		zap.String("network", string(req.Network)),
		zap.String("token", req.Token),
		zap.Float64("amount", req.Amount))
	log.Info("Starting price monitor",
		zap.Duration("interval", req.Interval),
		zap.Duration("duration", req.Duration))

	var symbol string
	ticker := time.NewTicker(req.Interval)
	defer ticker.Stop()

	for {
		result, err := m.oracle.GetQuickPrice(runCtx, req.Network, req.Token, req.Amount)
		switch {
		case errors.Is(err, ErrUnsupportedNetwork):
			return nil, err
		case err != nil:
			report.MissedSamples++
			log.Warn("Price sample failed", zap.Error(err))
		case !result.Success:
			report.MissedSamples++
			log.Warn("Price sample returned no quote", zap.String("reason", result.ErrorReason))
		default:
			symbol = result.TokenInfo.Symbol
			report.Samples = append(report.Samples, business.PriceSample{
				Timestamp:     result.Timestamp,
				USDCValue:     result.USDCAmount,
				PricePerToken: result.PricePerToken,
				BestRoute:     result.BestRoute,
			})
			log.Debug("Price sample",
				zap.Float64("usdc_value", result.USDCAmount),
				zap.Float64("price_per_token", result.PricePerToken))
		}

		select {
		case <-runCtx.Done():
		case <-ticker.C:
		}
		if runCtx.Err() != nil {
			return m.finish(ctx, report, symbol, log), nil
		}
	}
}

func (m *PriceMonitor) finish(ctx context.Context, report *business.MonitorReport, symbol string, log *zap.Logger) *business.MonitorReport {
	report.FinishedAt = m.now().UTC()

	prices := make([]float64, len(report.Samples))
	values := make([]float64, len(report.Samples))
	for i, s := range report.Samples {
		prices[i] = s.PricePerToken
		values[i] = s.USDCValue
	}
	report.PricePerToken = summarize(prices)
	report.USDCValue = summarize(values)

	if m.reference != nil && symbol != "" && symbol != constants.UnknownTokenSymbol && len(prices) > 0 && ctx.Err() == nil {
		ref, err := m.reference.GetUSDPrice(ctx, symbol)
		if err != nil {
			log.Warn("Reference price unavailable", zap.String("symbol", symbol), zap.Error(err))
		} else if ref > 0 {
			deviation := (report.PricePerToken.Average - ref) / ref * 100
			report.ReferencePrice = &ref
			report.DeviationPct = &deviation
		}
	}

	log.Info("Price monitor finished",
		zap.Int("samples", len(report.Samples)),
		zap.Int("missed", report.MissedSamples),
		zap.Float64("avg_price", report.PricePerToken.Average))
	return report
}

func summarize(series []float64) business.PriceStats {
	if len(series) == 0 {
		return business.PriceStats{}
	}
	stats := business.PriceStats{Min: math.Inf(1), Max: math.Inf(-1)}
	var sum float64
	for _, v := range series {
		stats.Min = math.Min(stats.Min, v)
		stats.Max = math.Max(stats.Max, v)
		sum += v
	}
	stats.Average = sum / float64(len(series))
	return stats
}
