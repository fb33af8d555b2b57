// Package metrics exposes the engine's Prometheus instrumentation.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Registry bundles the engine's collectors behind one registry so tests can
// run isolated instances.
type Registry struct {
	reg *prometheus.Registry

	HTTPRequests       *prometheus.CounterVec
	HTTPDurationSec    *prometheus.HistogramVec
	Distributions      prometheus.Counter
	DistributionErrors prometheus.Counter
	DonationRecords    prometheus.Counter
	DonatedCents       prometheus.Counter
	EqualSplits        prometheus.Counter
}

// NewRegistry builds a fresh registry with all engine collectors registered.
func NewRegistry() *Registry {
	r := prometheus.NewRegistry()

	httpRequests := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "b4g_http_requests_total",
		Help: "HTTP requests by method, route and status.",
	}, []string{"method", "route", "status"})
	httpDuration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "b4g_http_request_duration_seconds",
		Help:    "HTTP request latency by route.",
		Buckets: prometheus.DefBuckets,
	}, []string{"route"})

	distributions := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "b4g_distributions_total",
		Help: "Completed donation distributions.",
	})
	distributionErrors := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "b4g_distribution_errors_total",
		Help: "Distributions that failed outright.",
	})
	donationRecords := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "b4g_donation_records_total",
		Help: "Ledger records written.",
	})
	donatedCents := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "b4g_donated_cents_total",
		Help: "Total donated amount in cents.",
	})
	equalSplits := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "b4g_equal_split_bootstraps_total",
		Help: "Allocations bootstrapped to an equal split on read.",
	})

	r.MustRegister(httpRequests, httpDuration, distributions, distributionErrors,
		donationRecords, donatedCents, equalSplits)

	return &Registry{
		reg:                r,
		HTTPRequests:       httpRequests,
		HTTPDurationSec:    httpDuration,
		Distributions:      distributions,
		DistributionErrors: distributionErrors,
		DonationRecords:    donationRecords,
		DonatedCents:       donatedCents,
		EqualSplits:        equalSplits,
	}
}

// Handler serves the registry in Prometheus exposition format.
func (r *Registry) Handler() http.Handler {
	return promhttp.HandlerFor(r.reg, promhttp.HandlerOpts{})
}
