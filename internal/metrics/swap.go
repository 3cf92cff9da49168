package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	quotesIssued = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "hashswapd",
		Name:      "quotes_issued_total",
		Help:      "Total number of swap quotes issued.",
	})

	payoutsCompleted = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "hashswapd",
		Name:      "payouts_completed_total",
		Help:      "Total number of swaps completed with a base-layer payout.",
	})

	commitFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "hashswapd",
		Name:      "commit_failures_total",
		Help:      "Total number of failed commit calls, partitioned by reason.",
	}, []string{"reason"})

	swapsExpired = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "hashswapd",
		Name:      "swaps_expired_total",
		Help:      "Total number of quotes expired by the reaper.",
	})
)

func IncQuotesIssued() {
	quotesIssued.Inc()
}

func IncPayoutsCompleted() {
	payoutsCompleted.Inc()
}

func IncCommitFailure(reason string) {
	commitFailures.WithLabelValues(reason).Inc()
}

func IncSwapsExpired() {
	swapsExpired.Inc()
}
