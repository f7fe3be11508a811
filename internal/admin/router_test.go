package admin

import (
	"context"
	"testing"

	"github.com/ariefcatur/stockfront/internal/orders"
	"github.com/ariefcatur/stockfront/internal/remote"
	"github.com/ariefcatur/stockfront/internal/session"
	"github.com/ariefcatur/stockfront/internal/timeline"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseView(t *testing.T) {
	assert.Equal(t, ViewProducts, ParseView("products"))
	assert.Equal(t, ViewTimeline, ParseView(" Timeline "))
	assert.Equal(t, ViewOrders, ParseView(""))
	assert.Equal(t, ViewOrders, ParseView("settings"))
	var r Router
	assert.Equal(t, ViewOrders, r.Current())
}

func TestSwitchLoadsView(t *testing.T) {
	cases := []struct {
		view  string
		want  View
		calls []string
	}{
		{"orders", ViewOrders, []string{remote.ActOrders}},
		{"products", ViewProducts, []string{remote.ActProducts}},
		{"history", ViewHistory, []string{remote.ActStockLogs}},
		{"bogus", ViewOrders, []string{remote.ActOrders}},
	}
	for _, tc := range cases {
		t.Run(tc.view, func(t *testing.T) {
			h := newHarness()
			h.loginAs(session.RoleAdmin)
			op, err := h.console.Switch(tc.view)
			require.NoError(t, err)
			require.NoError(t, op.Execute(context.Background()))
			assert.Equal(t, tc.want, h.console.Current())
			assert.Equal(t, tc.calls, h.api.calls)
		})
	}
}

func TestTimelineViewLoadsBoth(t *testing.T) {
	h := newHarness()
	h.loginAs(session.RoleStaff)
	h.api.orders = []orders.Order{
		{OrderID: "O1", Status: orders.StatusApproved, UpdatedAt: ts(20)},
		{OrderID: "O2", Status: orders.StatusPending, CreatedAt: ts(25)},
	}
	h.api.logs = []orders.StockLogEntry{{LogID: "L1", Timestamp: ts(10)}, {LogID: "L2", Timestamp: ts(30)}}

	op, err := h.console.Switch("timeline")
	require.NoError(t, err)
	require.NoError(t, op.Execute(context.Background()))

	assert.ElementsMatch(t, []string{remote.ActOrders, remote.ActStockLogs}, h.api.calls)
	events := h.console.Timeline()
	require.Len(t, events, 3)
	assert.Equal(t, "stock:L2", events[0].ID)

	h.console.SetScope("stock")
	assert.Equal(t, timeline.ScopeStock, h.console.Scope)
	assert.Len(t, h.console.Timeline(), 2)
}

func TestTimelineFailureKeepsCaches(t *testing.T) {
	h := newHarness()
	h.loginAs(session.RoleAdmin)
	h.api.fail[remote.ActStockLogs] = &remote.Error{Kind: remote.KindNetwork}
	h.api.orders = []orders.Order{{OrderID: "O1"}}

	op, err := h.console.LoadTimeline()
	require.NoError(t, err)
	assert.Error(t, op.Execute(context.Background()))
	assert.Empty(t, h.console.Orders(), "partial results are not applied")
	assert.Equal(t, []string{h.ui.Msg.T("load_history_failed")}, h.rec.msgs)
}

func TestDeniedSwitchKeepsView(t *testing.T) {
	h := newHarness()
	h.loginAs(session.RoleStaff)
	op, err := h.console.Switch("products")
	require.NoError(t, err)
	require.NoError(t, op.Execute(context.Background()))

	h.sess.Reset()
	_, err = h.console.Switch("history")
	assert.Error(t, err)
	assert.Equal(t, ViewProducts, h.console.Current())
}

func TestHistoryEntriesFiltered(t *testing.T) {
	h := newHarness()
	h.loginAs(session.RoleAdmin)
	h.api.logs = []orders.StockLogEntry{
		{LogID: "1", Type: orders.StockIn, Timestamp: ts(1)},
		{LogID: "2", Type: orders.StockOut, Timestamp: ts(2)},
	}
	op, err := h.console.LoadStockLogs()
	require.NoError(t, err)
	require.NoError(t, op.Execute(context.Background()))

	h.console.History = timeline.HistoryFilter{Type: "IN"}
	entries := h.console.HistoryEntries()
	require.Len(t, entries, 1)
	assert.Equal(t, "1", entries[0].LogID)
}
