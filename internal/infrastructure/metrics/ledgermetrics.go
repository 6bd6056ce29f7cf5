// Package metrics exposes ledger counters to Prometheus.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "eventora"

// LedgerMetrics records order, ticket and reservation outcomes.
type LedgerMetrics struct {
	ordersCreated        *prometheus.CounterVec
	ticketsIssued        prometheus.Counter
	reservationsReleased prometheus.Counter
	purchaseRejections   *prometheus.CounterVec
	txDuration           *prometheus.HistogramVec
}

// NewLedgerMetrics registers the ledger collectors with reg.
func NewLedgerMetrics(reg prometheus.Registerer) *LedgerMetrics {
	factory := promauto.With(reg)
	return &LedgerMetrics{
		ordersCreated: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "orders_created_total",
				Help:      "Orders created, by kind",
			},
			[]string{"kind"},
		),
		ticketsIssued: factory.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "tickets_issued_total",
				Help:      "Tickets issued",
			},
		),
		reservationsReleased: factory.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "reservations_released_total",
				Help:      "Reserved ticket units returned to inventory by the expiry sweep",
			},
		),
		purchaseRejections: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "purchase_rejections_total",
				Help:      "Rejected purchase attempts, by reason",
			},
			[]string{"reason"},
		),
		txDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "ledger_transaction_duration_seconds",
				Help:      "Latency of ledger transactions",
				Buckets:   prometheus.ExponentialBuckets(0.005, 2, 10),
			},
			[]string{"operation"},
		),
	}
}

func (m *LedgerMetrics) OrderCreated(kind string) {
	m.ordersCreated.WithLabelValues(kind).Inc()
}

func (m *LedgerMetrics) TicketsIssued(count int) {
	if count > 0 {
		m.ticketsIssued.Add(float64(count))
	}
}

func (m *LedgerMetrics) ReservationsReleased(units int) {
	if units > 0 {
		m.reservationsReleased.Add(float64(units))
	}
}

func (m *LedgerMetrics) PurchaseRejected(reason string) {
	m.purchaseRejections.WithLabelValues(reason).Inc()
}

func (m *LedgerMetrics) ObserveTransaction(operation string, elapsed time.Duration) {
	m.txDuration.WithLabelValues(operation).Observe(elapsed.Seconds())
}
