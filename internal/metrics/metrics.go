package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	RunsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "promote_runs_total",
			Help: "Total number of daily promotion passes by result",
		},
		[]string{"result"},
	)

	RunDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "promote_run_duration_seconds",
			Help:    "Histogram of daily promotion pass durations",
			Buckets: prometheus.DefBuckets,
		},
	)

	LiveAds = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "promote_live_ads",
			Help: "Number of ads in the published live set per key",
		},
		[]string{"key"},
	)

	BillingOpsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "promote_billing_operations_total",
			Help: "Total number of gateway operations by kind and result",
		},
		[]string{"op", "result"},
	)

	SelectionsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "promote_selections_total",
			Help: "Total number of ad selection requests",
		},
	)

	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "promote_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPResponseTime = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "promote_http_response_time_seconds",
			Help:    "Histogram of response times",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)
)

// Result labels.
const (
	ResultOK       = "ok"
	ResultFailed   = "failed"
	ResultDeclined = "declined"
)
