package valueobjects

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Money is an amount in the currency's minor unit (cents).
type Money struct {
	amountInCents int64
	currency      string
}

func NewMoney(amountInCents int64, currency string) Money {
	return Money{
		amountInCents: amountInCents,
		currency:      currency,
	}
}

func (m Money) AmountInCents() int64 {
	return m.amountInCents
}

func (m Money) Currency() string {
	return m.currency
}

func (m Money) IsZero() bool {
	return m.amountInCents == 0
}

func (m Money) IsPositive() bool {
	return m.amountInCents > 0
}

// Add sums two amounts of the same currency.
func (m Money) Add(other Money) (Money, error) {
	if m.currency != "" && other.currency != "" && m.currency != other.currency {
		return Money{}, fmt.Errorf("currency mismatch: %s and %s", m.currency, other.currency)
	}
	currency := m.currency
	if currency == "" {
		currency = other.currency
	}
	return Money{amountInCents: m.amountInCents + other.amountInCents, currency: currency}, nil
}

// Multiply returns the amount for quantity units.
func (m Money) Multiply(quantity int) Money {
	return Money{amountInCents: m.amountInCents * int64(quantity), currency: m.currency}
}

// Decimal returns the amount in major units.
func (m Money) Decimal() decimal.Decimal {
	return decimal.New(m.amountInCents, -2)
}

func (m Money) String() string {
	return fmt.Sprintf("%s %s", m.Decimal().StringFixed(2), m.currency)
}
