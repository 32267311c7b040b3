package monitoring

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HttpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	ResponseTimeHistogram = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_response_time_seconds",
			Help:    "Histogram of response times",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	CreditTransactionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "credit_transactions_total",
			Help: "Ledger transactions by type",
		},
		[]string{"type"},
	)

	UnlockAttemptsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "unlock_attempts_total",
			Help: "Content unlock attempts by result",
		},
		[]string{"result"},
	)

	PayoutRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "payout_requests_total",
			Help: "Payout requests by result",
		},
		[]string{"result"},
	)
)
