package business

import "time"

// PriceSample is one observation taken by the price monitor.
type PriceSample struct {
	Timestamp     time.Time   `json:"timestamp"`
	USDCValue     float64     `json:"usdc_value"`
	PricePerToken float64     `json:"price_per_token"`
	BestRoute     *RouteQuote `json:"best_route,omitempty"`
}

// MonitorRequest configures one monitoring run.
type MonitorRequest struct {
	Network  Network
	Token    string
	Amount   float64
	Interval time.Duration
	Duration time.Duration
}

// PriceStats is min/max/average over a series.
type PriceStats struct {
	Min     float64 `json:"min"`
	Max     float64 `json:"max"`
	Average float64 `json:"average"`
}

// MonitorReport summarizes a completed monitoring run.
type MonitorReport struct {
	Network        Network       `json:"network"`
	Token          string        `json:"token"`
	Amount         float64       `json:"amount"`
	StartedAt      time.Time     `json:"started_at"`
	FinishedAt     time.Time     `json:"finished_at"`
	Samples        []PriceSample `json:"samples"`
	MissedSamples  int           `json:"missed_samples"`
	PricePerToken  PriceStats    `json:"price_per_token"`
	USDCValue      PriceStats    `json:"usdc_value"`
	ReferencePrice *float64      `json:"reference_price,omitempty"`
	DeviationPct   *float64      `json:"deviation_pct,omitempty"`
}
