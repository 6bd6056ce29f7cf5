package order

import (
	"fmt"
	"math"
	"strings"
	"time"

	vo "github.com/eventora/eventora/internal/domain/order/valueobjects"
)

// DefaultPaymentHold is how long a pending paid order holds its capacity.
const DefaultPaymentHold = 30 * time.Minute

// Order records one purchase by one buyer for one event.
//
// Free orders are created completed. Paid orders start pending with a
// payment deadline and are completed once the payment reference is confirmed.
type Order struct {
	id               uint
	userID           uint
	eventID          uint
	items            []Item
	total            vo.Money
	status           vo.OrderStatus
	paymentProvider  vo.PaymentProvider
	paymentReference string
	expiresAt        *time.Time
	completedAt      *time.Time
	createdAt        time.Time
	updatedAt        time.Time
}

// Item is one ticket type and quantity within an order.
type Item struct {
	TicketTypeID uint
	Quantity     int
	UnitPrice    int64
}

func (i Item) Subtotal() int64 {
	return i.UnitPrice * int64(i.Quantity)
}

func validateItems(items []Item) error {
	if len(items) == 0 {
		return fmt.Errorf("%w: order has no items", ErrInvalidQuantity)
	}
	for _, item := range items {
		if item.Quantity < 1 {
			return ErrInvalidQuantity
		}
		if item.TicketTypeID == 0 {
			return ErrInvalidTicketType
		}
	}
	return nil
}

// NewFreeOrder creates a completed zero-amount order.
func NewFreeOrder(userID, eventID uint, item Item, currency string, now time.Time) (*Order, error) {
	if userID == 0 || eventID == 0 {
		return nil, fmt.Errorf("user and event are required")
	}
	if err := validateItems([]Item{item}); err != nil {
		return nil, err
	}
	if item.UnitPrice != 0 {
		return nil, ErrInvalidFreeTicket
	}

	now = now.UTC()
	return &Order{
		userID:          userID,
		eventID:         eventID,
		items:           []Item{item},
		total:           vo.NewMoney(0, currency),
		status:          vo.OrderStatusCompleted,
		paymentProvider: vo.PaymentProviderNone,
		completedAt:     &now,
		createdAt:       now,
		updatedAt:       now,
	}, nil
}

// NewPaidOrder creates a pending order whose capacity is held until now+hold.
func NewPaidOrder(userID, eventID uint, items []Item, currency string, now time.Time, hold time.Duration) (*Order, error) {
	if userID == 0 || eventID == 0 {
		return nil, fmt.Errorf("user and event are required")
	}
	if err := validateItems(items); err != nil {
		return nil, err
	}
	if hold <= 0 {
		hold = DefaultPaymentHold
	}

	var total int64
	for _, item := range items {
		if item.UnitPrice > 0 && int64(item.Quantity) > (math.MaxInt64-total)/item.UnitPrice {
			return nil, fmt.Errorf("%w: order total overflows", ErrInvalidQuantity)
		}
		total += item.Subtotal()
	}
	if total <= 0 {
		return nil, ErrZeroAmountRejected
	}

	now = now.UTC()
	expiresAt := now.Add(hold)
	return &Order{
		userID:          userID,
		eventID:         eventID,
		items:           append([]Item(nil), items...),
		total:           vo.NewMoney(total, currency),
		status:          vo.OrderStatusPending,
		paymentProvider: vo.PaymentProviderSimulated,
		expiresAt:       &expiresAt,
		createdAt:       now,
		updatedAt:       now,
	}, nil
}

// ReconstructOrder rebuilds an order from persistence
func ReconstructOrder(
	id, userID, eventID uint,
	items []Item,
	total vo.Money,
	status vo.OrderStatus,
	provider vo.PaymentProvider,
	paymentReference string,
	expiresAt, completedAt *time.Time,
	createdAt, updatedAt time.Time,
) *Order {
	return &Order{
		id:               id,
		userID:           userID,
		eventID:          eventID,
		items:            items,
		total:            total,
		status:           status,
		paymentProvider:  provider,
		paymentReference: paymentReference,
		expiresAt:        expiresAt,
		completedAt:      completedAt,
		createdAt:        createdAt,
		updatedAt:        updatedAt,
	}
}

// IsExpiredAt reports whether the payment window has closed at now.
// The window is open strictly before expiresAt.
func (o *Order) IsExpiredAt(now time.Time) bool {
	return o.expiresAt != nil && !now.Before(*o.expiresAt)
}

// CompletePayment confirms a pending order with the provider's reference.
func (o *Order) CompletePayment(reference string, now time.Time) error {
	if !o.status.IsPending() {
		return ErrOrderNotPending
	}
	if o.IsExpiredAt(now) {
		return ErrOrderExpired
	}
	reference = strings.TrimSpace(reference)
	if reference == "" {
		return ErrPaymentNotVerified
	}

	now = now.UTC()
	o.status = vo.OrderStatusCompleted
	o.paymentReference = reference
	o.completedAt = &now
	o.updatedAt = now
	return nil
}

// Cancel releases a pending order whose payment window has closed.
func (o *Order) Cancel(now time.Time) error {
	if !o.status.IsPending() {
		return ErrOrderNotPending
	}
	o.status = vo.OrderStatusCancelled
	o.updatedAt = now.UTC()
	return nil
}

// MatchesItems reports whether the given items are the same multiset of
// (ticket type, quantity) pairs as the stored items.
func (o *Order) MatchesItems(items []Item) bool {
	want := make(map[uint]int, len(o.items))
	for _, item := range o.items {
		want[item.TicketTypeID] += item.Quantity
	}
	got := make(map[uint]int, len(items))
	for _, item := range items {
		got[item.TicketTypeID] += item.Quantity
	}
	if len(want) != len(got) {
		return false
	}
	for id, qty := range want {
		if got[id] != qty {
			return false
		}
	}
	return true
}

// TicketCount is the number of tickets the order issues when completed.
func (o *Order) TicketCount() int {
	n := 0
	for _, item := range o.items {
		n += item.Quantity
	}
	return n
}

func (o *Order) IsOwnedBy(userID uint) bool {
	return userID != 0 && o.userID == userID
}

func (o *Order) SetID(id uint) error {
	if o.id != 0 {
		return fmt.Errorf("order ID is already set")
	}
	o.id = id
	return nil
}

func (o *Order) ID() uint { return o.id }
func (o *Order) UserID() uint { return o.userID }
func (o *Order) EventID() uint { return o.eventID }
func (o *Order) Items() []Item { return o.items }
func (o *Order) Total() vo.Money { return o.total }
func (o *Order) Status() vo.OrderStatus { return o.status }
func (o *Order) PaymentProvider() vo.PaymentProvider { return o.paymentProvider }
func (o *Order) PaymentReference() string { return o.paymentReference }
func (o *Order) ExpiresAt() *time.Time { return o.expiresAt }
func (o *Order) CompletedAt() *time.Time { return o.completedAt }
func (o *Order) CreatedAt() time.Time { return o.createdAt }
func (o *Order) UpdatedAt() time.Time { return o.updatedAt }
