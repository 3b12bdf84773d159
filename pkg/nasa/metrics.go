package nasa

import (
	"errors"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/fivetwenty-io/nasa-client/internal/constants"
)

// Request outcomes used as the "outcome" label.
const (
	OutcomeSuccess = "success"
	OutcomeError   = "error"
)

// MetricsCollector holds the Prometheus metrics fed by the metrics
// interceptors. It is safe for concurrent use.
type MetricsCollector struct {
	RequestsTotal   *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec
	InFlight        *prometheus.GaugeVec
}

// NewMetricsCollector creates the metrics and registers them with reg.
// Metrics already registered by an earlier collector are reused.
func NewMetricsCollector(reg prometheus.Registerer) (*MetricsCollector, error) {
	requests := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: constants.MetricsNamespace,
			Name:      "requests_total",
			Help:      "Total number of API requests by endpoint and outcome",
		},
		[]string{"endpoint", "outcome"},
	)

	duration := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: constants.MetricsNamespace,
			Name:      "request_duration_seconds",
			Help:      "API request latency histogram",
			Buckets:   prometheus.ExponentialBuckets(0.01, 2, 12), // 10ms to ~20s
		},
		[]string{"endpoint"},
	)

	inFlight := prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: constants.MetricsNamespace,
			Name:      "requests_in_flight",
			Help:      "Number of API requests currently being sent",
		},
		[]string{"endpoint"},
	)

	var err error

	requests, err = register(reg, requests)
	if err != nil {
		return nil, err
	}

	duration, err = register(reg, duration)
	if err != nil {
		return nil, err
	}

	inFlight, err = register(reg, inFlight)
	if err != nil {
		return nil, err
	}

	return &MetricsCollector{
		RequestsTotal:   requests,
		RequestDuration: duration,
		InFlight:        inFlight,
	}, nil
}

func register[C prometheus.Collector](reg prometheus.Registerer, collector C) (C, error) {
	err := reg.Register(collector)
	if err == nil {
		return collector, nil
	}

	already := prometheus.AlreadyRegisteredError{}
	if errors.As(err, &already) {
		if existing, ok := already.ExistingCollector.(C); ok {
			return existing, nil
		}
	}

	return collector, fmt.Errorf("registering metrics: %w", err)
}

// RecordRequest records one completed request. A transport error or a
// non-2xx status counts as an error.
func (m *MetricsCollector) RecordRequest(endpoint string, statusCode int, err error, latency time.Duration) {
	outcome := OutcomeSuccess
	if err != nil || statusCode < 200 || statusCode >= 300 {
		outcome = OutcomeError
	}

	m.RequestsTotal.WithLabelValues(endpoint, outcome).Inc()
	m.RequestDuration.WithLabelValues(endpoint).Observe(latency.Seconds())
}

// Install adds the metrics interceptors to chain.
func (m *MetricsCollector) Install(chain *InterceptorChain) {
	chain.AddRequestInterceptor(MetricsRequestInterceptor(m))
	chain.AddResponseInterceptor(MetricsResponseInterceptor(m))
}
