package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	orderUsecases "github.com/eventora/eventora/internal/application/order/usecases"
)

var _ orderUsecases.LedgerRecorder = (*LedgerMetrics)(nil)

func TestLedgerMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewLedgerMetrics(reg)

	m.OrderCreated(orderUsecases.OrderKindFree)
	m.OrderCreated(orderUsecases.OrderKindFree)
	m.OrderCreated(orderUsecases.OrderKindPaid)
	m.TicketsIssued(3)
	m.TicketsIssued(0)
	m.ReservationsReleased(2)
	m.PurchaseRejected("insufficient_inventory")
	m.ObserveTransaction("create_free_order", 12*time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.ordersCreated.WithLabelValues("free")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ordersCreated.WithLabelValues("paid")))
	assert.Equal(t, 3.0, testutil.ToFloat64(m.ticketsIssued))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.reservationsReleased))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.purchaseRejections.WithLabelValues("insufficient_inventory")))

	count, err := testutil.GatherAndCount(reg, "eventora_ledger_transaction_duration_seconds")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestNewLedgerMetrics_RegistersOncePerRegistry(t *testing.T) {
	reg := prometheus.NewRegistry()
	NewLedgerMetrics(reg)
	assert.Panics(t, func() { NewLedgerMetrics(reg) })
}
