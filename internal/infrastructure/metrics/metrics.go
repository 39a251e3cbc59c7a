package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics
type Metrics struct {
	// Transaction metrics
	TransactionsCommitted *prometheus.CounterVec
	TransactionsDeclined  *prometheus.CounterVec
	TransactionAmount     prometheus.Histogram

	// Session metrics
	SessionsStarted prometheus.Counter
	SessionsEnded   prometheus.Counter

	// Store metrics
	AccountsLoaded prometheus.Gauge

	// Journal metrics
	JournalFlushDuration prometheus.Histogram
	JournalFlushFailures prometheus.Counter
}

// New creates and registers all Prometheus metrics
func New() *Metrics {
	return &Metrics{
		TransactionsCommitted: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "bankoffice_transactions_committed_total",
				Help: "Total number of committed transactions by code",
			},
			[]string{"code"},
		),
		TransactionsDeclined: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "bankoffice_transactions_declined_total",
				Help: "Total number of declined transactions by kind and reason",
			},
			[]string{"kind", "reason"},
		),
		TransactionAmount: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "bankoffice_transaction_amount",
			Help:    "Committed transaction amounts",
			Buckets: []float64{1, 10, 100, 500, 1000, 2000, 10000, 100000},
		}),

		SessionsStarted: promauto.NewCounter(prometheus.CounterOpts{
			Name: "bankoffice_sessions_started_total",
			Help: "Total number of sessions started",
		}),
		SessionsEnded: promauto.NewCounter(prometheus.CounterOpts{
			Name: "bankoffice_sessions_ended_total",
			Help: "Total number of sessions ended",
		}),

		AccountsLoaded: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "bankoffice_accounts_loaded",
			Help: "Number of accounts currently loaded from the master file",
		}),

		JournalFlushDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "bankoffice_journal_flush_duration_seconds",
			Help:    "Duration of daily transaction file flushes",
			Buckets: prometheus.DefBuckets,
		}),
		JournalFlushFailures: promauto.NewCounter(prometheus.CounterOpts{
			Name: "bankoffice_journal_flush_failures_total",
			Help: "Total number of failed daily transaction file flushes",
		}),
	}
}
