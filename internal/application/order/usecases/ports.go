package usecases

import (
	"context"
	"time"

	"github.com/eventora/eventora/internal/application/order/dto"
)

const (
	OrderKindFree = "free"
	OrderKindPaid = "paid"
)

// LedgerRecorder receives ledger outcomes for metrics.
type LedgerRecorder interface {
	OrderCreated(kind string)
	TicketsIssued(count int)
	ReservationsReleased(units int)
	PurchaseRejected(reason string)
	ObserveTransaction(operation string, elapsed time.Duration)
}

// ConfirmationSender tells the buyer their order went through.
type ConfirmationSender interface {
	SendOrderConfirmation(ctx context.Context, msg dto.ConfirmationMessage) error
}

type nopRecorder struct{}

func (nopRecorder) OrderCreated(string) {}
func (nopRecorder) TicketsIssued(int) {}
func (nopRecorder) ReservationsReleased(int) {}
func (nopRecorder) PurchaseRejected(string) {}
func (nopRecorder) ObserveTransaction(string, time.Duration) {}

// NopRecorder discards every observation.
func NopRecorder() LedgerRecorder {
	return nopRecorder{}
}
