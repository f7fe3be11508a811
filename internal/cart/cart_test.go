package cart

import (
	"context"
	"testing"

	"github.com/ariefcatur/stockfront/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddMergesSameProduct(t *testing.T) {
	c := New(storage.NewMemory(), quietLog())
	require.NoError(t, c.add(Line{ProductID: "P1", Name: "Tea", Price: 30, Qty: 2}))
	require.NoError(t, c.add(Line{ProductID: "P1", Name: "Tea", Price: 30, Qty: 3}))

	require.Equal(t, 1, c.Len())
	l, ok := c.Line("P1")
	require.True(t, ok)
	assert.Equal(t, 5, l.Qty)
	assert.Equal(t, 150, c.Total())
}

func TestPersistenceRoundTrip(t *testing.T) {
	store := storage.NewMemory()
	c := New(store, quietLog())
	require.NoError(t, c.add(Line{ProductID: "B", Name: "Bread", Price: 20, Qty: 1}))
	require.NoError(t, c.add(Line{ProductID: "A", Name: "Apple", Price: 5, Qty: 4, Image: "a.png"}))
	require.NoError(t, c.setQty("B", 3))

	reloaded := New(store, quietLog())
	reloaded.Load(context.Background())
	assert.Equal(t, c.Lines(), reloaded.Lines())
	assert.Equal(t, "B", reloaded.Lines()[0].ProductID, "insertion order kept")
}

func TestLoadDiscardsBadData(t *testing.T) {
	cases := []struct {
		name  string
		raw   string
		lines int
	}{
		{"object", `{"productId":"P1","qty":1}`, 0},
		{"garbage", `not json`, 0},
		{"null", `null`, 0},
		{"bad lines dropped", `[{"productId":"","qty":1},{"productId":"X","qty":0},{"productId":"Y","qty":2,"price":5},"oops"]`, 1},
		{"duplicates merged", `[{"productId":"Y","qty":2},{"productId":"Y","qty":1}]`, 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			store := storage.NewMemory()
			require.NoError(t, store.Save(context.Background(), StorageKey, []byte(tc.raw)))
			c := New(store, quietLog())
			c.Load(context.Background())
			assert.Equal(t, tc.lines, c.Len())
		})
	}
}

func TestLoadMissingKey(t *testing.T) {
	c := New(storage.NewMemory(), quietLog())
	c.Load(context.Background())
	assert.True(t, c.Empty())
}

func TestRemoveAndClear(t *testing.T) {
	store := storage.NewMemory()
	c := New(store, quietLog())
	require.NoError(t, c.add(Line{ProductID: "A", Qty: 1}))
	require.NoError(t, c.add(Line{ProductID: "B", Qty: 1}))

	require.NoError(t, c.remove("A"))
	require.NoError(t, c.remove("missing"))
	assert.Equal(t, []string{"B"}, ids(c))

	require.NoError(t, c.clear())
	assert.True(t, c.Empty())
	_, err := store.Load(context.Background(), StorageKey)
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestNormalizeQty(t *testing.T) {
	cases := []struct {
		raw   string
		limit int
		want  int
	}{
		{"3", 0, 3},
		{" 4 ", 10, 4},
		{"abc", 10, 1},
		{"", 10, 1},
		{"0", 10, 1},
		{"-2", 10, 1},
		{"99", 7, 7},
		{"99", 0, 99},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, NormalizeQty(tc.raw, tc.limit), "raw=%q limit=%d", tc.raw, tc.limit)
	}
}

func TestEditorClampsSilently(t *testing.T) {
	ui, rec := newUI()
	c := New(storage.NewMemory(), quietLog())
	require.NoError(t, c.add(Line{ProductID: "A", Price: 10, Qty: 2}))
	e := NewEditor(c, ui)
	e.StockOf = func(string) (int, bool) { return 4, true }

	assert.Equal(t, 4, e.SetLineQty("A", "12"))
	assert.Equal(t, 1, e.SetLineQty("A", "x"))
	assert.Equal(t, 2, e.Step("A", 1))
	assert.Empty(t, rec.kinds, "soft corrections never toast")

	e.Remove("A")
	assert.True(t, c.Empty())
}

func TestEditorCapsSoldOutLineAtOne(t *testing.T) {
	ui, _ := newUI()
	c := New(storage.NewMemory(), quietLog())
	require.NoError(t, c.add(Line{ProductID: "A", Price: 10, Qty: 3}))
	e := NewEditor(c, ui)
	e.StockOf = func(string) (int, bool) { return 0, true }

	assert.Equal(t, 1, e.Step("A", 1))
	assert.Equal(t, 1, e.SetLineQty("A", "50"))
	l, ok := c.Line("A")
	require.True(t, ok)
	assert.Equal(t, 1, l.Qty)
}

func ids(c *Cart) []string {
	var out []string
	for _, l := range c.Lines() {
		out = append(out, l.ProductID)
	}
	return out
}
