package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics to track
var (
	RosterSize = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "walker_roster_size",
			Help: "Number of walkers in the roster",
		},
	)
	OnlineWalkers = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "walkers_online",
			Help: "Number of walkers currently online",
		},
	)
	FavoriteWalkers = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "walkers_favorite",
			Help: "Number of walkers flagged as favorites",
		},
	)
	PendingRequests = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "favorite_requests_pending",
			Help: "Number of unresolved favorite requests",
		},
	)
	RequestOutcomes = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "favorite_request_outcomes_total",
			Help: "Total favorite request operations by outcome",
		},
		[]string{"outcome"}, // Labels: outcome (e.g., created, accepted, declined)
	)
)

// InitMetrics initializes and registers Prometheus metrics
func InitMetrics() {
	// Register metrics
	prometheus.MustRegister(RosterSize, OnlineWalkers, FavoriteWalkers, PendingRequests, RequestOutcomes)
}

// ServeMetrics starts an HTTP server to expose metrics
func ServeMetrics(addr string) {
	http.Handle("/metrics", promhttp.Handler())
	go func() {
		if err := http.ListenAndServe(addr, nil); err != nil {
			panic(err)
		}
	}()
}
