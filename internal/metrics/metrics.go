package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/cyphera/onramp-engine/internal/constants"
)

const namespace = "onramp"

// Collector owns every metric the engine exports. It satisfies the HTTP
// client, contract client and route provider observer interfaces.
type Collector struct {
	registry *prometheus.Registry

	upstreamRequests *prometheus.CounterVec
	upstreamErrors   *prometheus.CounterVec
	upstreamLatency  *prometheus.HistogramVec

	contractCalls   *prometheus.CounterVec
	contractLatency *prometheus.HistogramVec

	routeAttempts *prometheus.CounterVec
	priceRequests *prometheus.CounterVec

	apiRequests *prometheus.CounterVec
	apiLatency  *prometheus.HistogramVec
}

// New creates a collector backed by its own registry.
func New() *Collector {
	c := &Collector{
		registry: prometheus.NewRegistry(),
		upstreamRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "upstream",
			Name:      "requests_total",
			Help:      "HTTP requests to upstream APIs segmented by upstream, method and status.",
		}, []string{"upstream", "method", "status"}),
		upstreamErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "upstream",
			Name:      "errors_total",
			Help:      "Failed HTTP requests to upstream APIs.",
		}, []string{"upstream", "method"}),
		upstreamLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "upstream",
			Name:      "request_duration_seconds",
			Help:      "Latency of upstream HTTP requests including retries.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"upstream", "method"}),
		contractCalls: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "rpc",
			Name:      "contract_calls_total",
			Help:      "eth_call reads segmented by network, method and outcome.",
		}, []string{"network", "method", "outcome"}),
		contractLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "rpc",
			Name:      "contract_call_duration_seconds",
			Help:      "Latency of eth_call reads including retries.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"network", "method"}),
		routeAttempts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "pricing",
			Name:      "route_attempts_total",
			Help:      "Route branches evaluated segmented by venue and outcome.",
		}, []string{"network", "venue", "outcome"}),
		priceRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "pricing",
			Name:      "price_requests_total",
			Help:      "Best price lookups segmented by network and result.",
		}, []string{"network", "result"}),
		apiRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "api",
			Name:      "requests_total",
			Help:      "HTTP API requests segmented by route, method and status.",
		}, []string{"route", "method", "status"}),
		apiLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "api",
			Name:      "request_duration_seconds",
			Help:      "HTTP API request latency.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route", "method"}),
	}
	c.registry.MustRegister(
		c.upstreamRequests,
		c.upstreamErrors,
		c.upstreamLatency,
		c.contractCalls,
		c.contractLatency,
		c.routeAttempts,
		c.priceRequests,
		c.apiRequests,
		c.apiLatency,
	)
	return c
}

// Registry exposes the underlying registry, mainly for tests.
func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}

// Handler serves the registry in the Prometheus text format.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}

func (c *Collector) RecordRequestDuration(upstream, method, path string, statusCode int, duration time.Duration) {
	c.upstreamLatency.WithLabelValues(upstreamLabel(upstream), method).Observe(duration.Seconds())
}

func (c *Collector) RecordRequestCount(upstream, method, path string, statusCode int) {
	c.upstreamRequests.WithLabelValues(upstreamLabel(upstream), method, strconv.Itoa(statusCode)).Inc()
}

func (c *Collector) RecordRequestError(upstream, method, path string) {
	c.upstreamErrors.WithLabelValues(upstreamLabel(upstream), method).Inc()
}

func (c *Collector) ObserveContractCall(network, method, outcome string, duration time.Duration) {
	c.contractCalls.WithLabelValues(network, method, outcome).Inc()
	c.contractLatency.WithLabelValues(network, method).Observe(duration.Seconds())
}

// ObserveRouteAttempt counts one evaluated route branch. outcome is "quoted"
// or "skipped".
func (c *Collector) ObserveRouteAttempt(network, venue, outcome string) {
	c.routeAttempts.WithLabelValues(network, venue, outcome).Inc()
}

// ObservePriceResult counts a completed best price lookup.
func (c *Collector) ObservePriceResult(network string, success bool) {
	result := "success"
	if !success {
		result = "failure"
	}
	c.priceRequests.WithLabelValues(network, result).Inc()
}

// ObserveAPIRequest records one served API request.
func (c *Collector) ObserveAPIRequest(route, method string, status int, duration time.Duration) {
	c.apiRequests.WithLabelValues(route, method, strconv.Itoa(status)).Inc()
	c.apiLatency.WithLabelValues(route, method).Observe(duration.Seconds())
}

func upstreamLabel(upstream string) string {
	if upstream == "" {
		return constants.ServiceName
	}
	return upstream
}
