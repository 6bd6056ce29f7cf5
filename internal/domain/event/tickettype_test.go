package event

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTicketType(t *testing.T) {
	tt, err := NewTicketType(3, TicketTypeParams{Name: "General", Price: 2500, Currency: "usd", TotalQuantity: 100})
	require.NoError(t, err)

	assert.Equal(t, "USD", tt.Currency())
	assert.Equal(t, 0, tt.SoldQuantity())
	assert.Equal(t, 100, tt.Available())
	assert.True(t, tt.IsVisible())
	assert.False(t, tt.IsFree())
	assert.True(t, tt.BelongsTo(3))
	assert.False(t, tt.BelongsTo(4))
}

func TestNewTicketType_Validation(t *testing.T) {
	_, err := NewTicketType(3, TicketTypeParams{Name: "General", Price: -1, Currency: "USD"})
	assert.Error(t, err)

	_, err = NewTicketType(3, TicketTypeParams{Name: "", Currency: "USD"})
	assert.Error(t, err)

	_, err = NewTicketType(3, TicketTypeParams{Name: "General", Currency: "DOLLARS"})
	assert.Error(t, err)
}

func TestTicketType_Capacity(t *testing.T) {
	tt := ReconstructTicketType(1, 3, TicketTypeParams{Name: "GA", Currency: "USD", TotalQuantity: 2}, 1, time.Now())

	assert.Equal(t, 1, tt.Available())
	assert.True(t, tt.HasCapacityFor(1))
	assert.False(t, tt.HasCapacityFor(2))
	assert.False(t, tt.HasCapacityFor(0))
	assert.True(t, tt.IsFree())
}

func TestTicketType_IsOnSale(t *testing.T) {
	start := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)
	end := start.Add(24 * time.Hour)
	tt := ReconstructTicketType(1, 3, TicketTypeParams{Name: "Early", Currency: "USD", SaleStart: &start, SaleEnd: &end}, 0, start)

	assert.False(t, tt.IsOnSale(start.Add(-time.Second)))
	assert.True(t, tt.IsOnSale(start))
	assert.True(t, tt.IsOnSale(end))
	assert.False(t, tt.IsOnSale(end.Add(time.Second)))
}

func TestTicketType_CheckPurchase(t *testing.T) {
	now := time.Date(2026, 5, 10, 12, 0, 0, 0, time.UTC)
	ended := now.Add(-48 * time.Hour)
	opens := now.Add(time.Hour)

	tests := []struct {
		name     string
		params   TicketTypeParams
		quantity int
		want     error
	}{
		{name: "within limits", params: TicketTypeParams{MinPerOrder: 1, MaxPerOrder: 4}, quantity: 4},
		{name: "hidden", params: TicketTypeParams{Hidden: true, MinPerOrder: 1, MaxPerOrder: 4}, quantity: 1, want: ErrTicketTypeNotOnSale},
		{name: "sale ended", params: TicketTypeParams{SaleEnd: &ended, MinPerOrder: 1, MaxPerOrder: 4}, quantity: 1, want: ErrTicketTypeNotOnSale},
		{name: "sale not started", params: TicketTypeParams{SaleStart: &opens, MinPerOrder: 1, MaxPerOrder: 4}, quantity: 1, want: ErrTicketTypeNotOnSale},
		{name: "above max", params: TicketTypeParams{MinPerOrder: 1, MaxPerOrder: 2}, quantity: 50, want: ErrQuantityOutOfRange},
		{name: "below min", params: TicketTypeParams{MinPerOrder: 2, MaxPerOrder: 4}, quantity: 1, want: ErrQuantityOutOfRange},
		{name: "stored without limits uses defaults", params: TicketTypeParams{}, quantity: DefaultMaxOrder + 1, want: ErrQuantityOutOfRange},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tc.params.Name = "GA"
			tc.params.Currency = "USD"
			tc.params.TotalQuantity = 100
			tt := ReconstructTicketType(1, 3, tc.params, 0, now)

			err := tt.CheckPurchase(tc.quantity, now)
			if tc.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tc.want)
		})
	}
}
