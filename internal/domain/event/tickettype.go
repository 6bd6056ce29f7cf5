package event

import (
	"fmt"
	"strings"
	"time"

	"github.com/eventora/eventora/internal/shared/biztime"
)

// TicketType is a priced, capacity-limited class of admission for an event.
// soldQuantity only changes through the repository's atomic Reserve/Release.
type TicketType struct {
	id            uint
	eventID       uint
	name          string
	description   string
	price         int64
	currency      string
	totalQuantity int
	soldQuantity  int
	saleStart     *time.Time
	saleEnd       *time.Time
	isVisible     bool
	minPerOrder   int
	maxPerOrder   int
	sortOrder     int
	createdAt     time.Time
}

type TicketTypeParams struct {
	Name          string
	Description   string
	Price         int64
	Currency      string
	TotalQuantity int
	SaleStart     *time.Time
	SaleEnd       *time.Time
	Hidden        bool
	MinPerOrder   int
	MaxPerOrder   int
	SortOrder     int
}

func NewTicketType(eventID uint, p TicketTypeParams) (*TicketType, error) {
	if eventID == 0 {
		return nil, fmt.Errorf("event ID is required")
	}
	name := strings.TrimSpace(p.Name)
	if name == "" {
		return nil, fmt.Errorf("ticket type name is required")
	}
	if p.Price < 0 {
		return nil, fmt.Errorf("ticket price cannot be negative")
	}
	if p.TotalQuantity < 0 {
		return nil, fmt.Errorf("total quantity cannot be negative")
	}
	currency := strings.ToUpper(strings.TrimSpace(p.Currency))
	if len(currency) != 3 {
		return nil, fmt.Errorf("invalid currency %q", p.Currency)
	}
	if p.SaleStart != nil && p.SaleEnd != nil && p.SaleEnd.Before(*p.SaleStart) {
		return nil, fmt.Errorf("sale end must not be before sale start")
	}
	minPer, maxPer := p.MinPerOrder, p.MaxPerOrder
	if minPer == 0 {
		minPer = DefaultMinOrder
	}
	if maxPer == 0 {
		maxPer = DefaultMaxOrder
	}
	if minPer < 1 || maxPer < minPer {
		return nil, fmt.Errorf("invalid per-order limits: min %d, max %d", minPer, maxPer)
	}

	return &TicketType{
		eventID:       eventID,
		name:          name,
		description:   p.Description,
		price:         p.Price,
		currency:      currency,
		totalQuantity: p.TotalQuantity,
		soldQuantity:  0,
		saleStart:     p.SaleStart,
		saleEnd:       p.SaleEnd,
		isVisible:     !p.Hidden,
		minPerOrder:   minPer,
		maxPerOrder:   maxPer,
		sortOrder:     p.SortOrder,
		createdAt:     biztime.NowUTC(),
	}, nil
}

// ReconstructTicketType rebuilds a ticket type from persistence
func ReconstructTicketType(
	id, eventID uint,
	p TicketTypeParams,
	soldQuantity int,
	createdAt time.Time,
) *TicketType {
	return &TicketType{
		id:            id,
		eventID:       eventID,
		name:          p.Name,
		description:   p.Description,
		price:         p.Price,
		currency:      p.Currency,
		totalQuantity: p.TotalQuantity,
		soldQuantity:  soldQuantity,
		saleStart:     p.SaleStart,
		saleEnd:       p.SaleEnd,
		isVisible:     !p.Hidden,
		minPerOrder:   p.MinPerOrder,
		maxPerOrder:   p.MaxPerOrder,
		sortOrder:     p.SortOrder,
		createdAt:     createdAt,
	}
}

// Available returns the unsold capacity as last read from storage.
func (t *TicketType) Available() int {
	if t.soldQuantity >= t.totalQuantity {
		return 0
	}
	return t.totalQuantity - t.soldQuantity
}

// HasCapacityFor is a read-side check only; the authoritative check is
// the conditional update performed by Reserve.
func (t *TicketType) HasCapacityFor(quantity int) bool {
	return quantity > 0 && t.Available() >= quantity
}

func (t *TicketType) IsFree() bool {
	return t.price == 0
}

func (t *TicketType) BelongsTo(eventID uint) bool {
	return t.eventID == eventID
}

// IsOnSale reports whether now falls inside the optional sale window.
func (t *TicketType) IsOnSale(now time.Time) bool {
	if t.saleStart != nil && now.Before(*t.saleStart) {
		return false
	}
	if t.saleEnd != nil && now.After(*t.saleEnd) {
		return false
	}
	return true
}

// CheckPurchase validates one order line against the type's visibility,
// sale window and per-order limits.
func (t *TicketType) CheckPurchase(quantity int, now time.Time) error {
	if !t.isVisible {
		return fmt.Errorf("%w: ticket type %d is hidden", ErrTicketTypeNotOnSale, t.id)
	}
	if !t.IsOnSale(now) {
		return fmt.Errorf("%w: ticket type %d is outside its sale window", ErrTicketTypeNotOnSale, t.id)
	}
	minPer, maxPer := t.orderLimits()
	if quantity < minPer || quantity > maxPer {
		return fmt.Errorf("%w: %d not in [%d, %d]", ErrQuantityOutOfRange, quantity, minPer, maxPer)
	}
	return nil
}

// orderLimits falls back to the defaults for rows stored without limits.
func (t *TicketType) orderLimits() (int, int) {
	minPer, maxPer := t.minPerOrder, t.maxPerOrder
	if minPer < 1 {
		minPer = DefaultMinOrder
	}
	if maxPer < 1 {
		maxPer = DefaultMaxOrder
	}
	return minPer, maxPer
}

func (t *TicketType) SetID(id uint) {
	t.id = id
}

func (t *TicketType) ID() uint { return t.id }
func (t *TicketType) EventID() uint { return t.eventID }
func (t *TicketType) Name() string { return t.name }
func (t *TicketType) Description() string { return t.description }
func (t *TicketType) Price() int64 { return t.price }
func (t *TicketType) Currency() string { return t.currency }
func (t *TicketType) TotalQuantity() int { return t.totalQuantity }
func (t *TicketType) SoldQuantity() int { return t.soldQuantity }
func (t *TicketType) SaleStart() *time.Time { return t.saleStart }
func (t *TicketType) SaleEnd() *time.Time { return t.saleEnd }
func (t *TicketType) IsVisible() bool { return t.isVisible }
func (t *TicketType) MinPerOrder() int { return t.minPerOrder }
func (t *TicketType) MaxPerOrder() int { return t.maxPerOrder }
func (t *TicketType) SortOrder() int { return t.sortOrder }
func (t *TicketType) CreatedAt() time.Time { return t.createdAt }
