package inventory

import (
	"testing"
	"time"

	"github.com/ariefcatur/stockfront/internal/orders"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seeded(t *testing.T) *Ledger {
	l := NewLedger()
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	n := 0
	l.Now = func() time.Time { n++; return base.Add(time.Duration(n) * time.Second) }
	require.NoError(t, l.Create(orders.Product{ProductID: "TEA", Name: "Tea", Price: 30, Stock: 5, Active: true}, "seed"))
	require.NoError(t, l.Create(orders.Product{ProductID: "RICE", Name: "Rice", Price: 40, Stock: 1, Active: true}, "seed"))
	return l
}

func TestReserveAllIsAllOrNothing(t *testing.T) {
	l := seeded(t)

	ok, short, err := l.ReserveAll("O1", []orders.OrderItem{{ProductID: "TEA", Qty: 2}, {ProductID: "RICE", Qty: 2}}, "owner")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, []Shortage{{ProductID: "RICE", Required: 2, Available: 1}}, short)
	tea, _ := l.Get("TEA")
	assert.Equal(t, 5, tea.Stock, "nothing deducted on shortage")

	ok, _, err = l.ReserveAll("O2", []orders.OrderItem{{ProductID: "TEA", Qty: 2}, {ProductID: "TEA", Qty: 1}}, "owner")
	require.NoError(t, err)
	assert.True(t, ok)
	tea, _ = l.Get("TEA")
	assert.Equal(t, 2, tea.Stock)

	ok, _, err = l.ReserveAll("O2", []orders.OrderItem{{ProductID: "TEA", Qty: 2}}, "owner")
	require.NoError(t, err)
	assert.True(t, ok, "replay is idempotent")
	tea, _ = l.Get("TEA")
	assert.Equal(t, 2, tea.Stock)

	logs := l.Logs()
	require.Len(t, logs, 3)
	assert.Equal(t, orders.StockOut, logs[0].Type)
	assert.Equal(t, "O2", logs[0].OrderID)
	assert.Equal(t, 3, logs[0].Qty)
}

func TestStockInAndAdjust(t *testing.T) {
	l := seeded(t)

	e, err := l.StockIn("RICE", 4, "owner", "delivery")
	require.NoError(t, err)
	assert.Equal(t, 1, e.Before)
	assert.Equal(t, 5, e.After)

	e, err = l.Adjust("RICE", 2, "owner", "count")
	require.NoError(t, err)
	assert.Equal(t, -3, e.Qty)
	assert.Equal(t, orders.StockAdjust, e.Type)

	_, err = l.StockIn("RICE", 0, "owner", "")
	assert.ErrorIs(t, err, ErrBadQty)
	_, err = l.Adjust("RICE", -1, "owner", "")
	assert.ErrorIs(t, err, ErrNegativeStock)
	_, err = l.StockIn("NOPE", 1, "owner", "")
	assert.ErrorIs(t, err, ErrUnknownProduct)
}

func TestCreateAndUpdate(t *testing.T) {
	l := seeded(t)
	assert.ErrorIs(t, l.Create(orders.Product{ProductID: "TEA"}, "x"), ErrProductExists)

	require.NoError(t, l.Update(orders.Product{ProductID: "TEA", Name: "Green tea", Price: 35, Stock: 999}))
	tea, _ := l.Get("TEA")
	assert.Equal(t, "Green tea", tea.Name)
	assert.Equal(t, 5, tea.Stock, "update never touches stock")

	ids := []string{}
	for _, p := range l.Products() {
		ids = append(ids, p.ProductID)
	}
	assert.Equal(t, []string{"TEA", "RICE"}, ids)
}
