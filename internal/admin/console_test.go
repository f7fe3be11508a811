package admin

import (
	"context"
	"testing"

	"github.com/ariefcatur/stockfront/internal/locale"
	"github.com/ariefcatur/stockfront/internal/notify"
	"github.com/ariefcatur/stockfront/internal/orders"
	"github.com/ariefcatur/stockfront/internal/overlay"
	"github.com/ariefcatur/stockfront/internal/remote"
	"github.com/ariefcatur/stockfront/internal/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// invokers triggers every gated action through its public entry point.
func invokers(c *Console) map[session.Action]func() error {
	wrap := func(f func() (any, error)) func() error {
		return func() error { _, err := f(); return err }
	}
	return map[session.Action]func() error{
		session.LoadOrders:    wrap(func() (any, error) { return c.LoadOrders() }),
		session.ApproveOrder:  func() error { return c.RequestApprove("O1") },
		session.RejectOrder:   func() error { return c.RequestReject("O1") },
		session.StockIn:       wrap(func() (any, error) { return c.StockIn(StockInForm{ProductID: "P1", Qty: "2"}) }),
		session.StockAdjust:   wrap(func() (any, error) { return c.StockAdjust(StockAdjustForm{ProductID: "P1", NewQty: "2"}) }),
		session.LoadStockLogs: wrap(func() (any, error) { return c.LoadStockLogs() }),
		session.AddProduct: wrap(func() (any, error) {
			return c.AddProduct(ProductForm{ProductID: "P9", Name: "New", Price: "10"})
		}),
		session.UpdateProduct: wrap(func() (any, error) {
			return c.UpdateProduct(ProductForm{ProductID: "P1", Name: "Tea", Price: "10"})
		}),
		session.UploadImage: wrap(func() (any, error) {
			return c.UploadImage(remote.Image{Data: []byte("png"), Filename: "a.png"})
		}),
		session.ViewTimeline:   wrap(func() (any, error) { return c.LoadTimeline() }),
		session.ViewHistoryLog: wrap(func() (any, error) { return c.Switch("history") }),
	}
}

func TestEveryActionHasDenialMessage(t *testing.T) {
	h := newHarness()
	inv := invokers(h.console)
	for _, a := range session.Actions() {
		assert.NotEqual(t, locale.Failed, DeniedKey(a), a.String())
		assert.Contains(t, inv, a, "no invoker for %s", a)
	}
}

func TestGuardTotality(t *testing.T) {
	cases := []struct {
		name string
		role session.Role
		in   bool
	}{
		{"logged out", "", false},
		{"staff", session.RoleStaff, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			for _, a := range session.Actions() {
				h := newHarness()
				if tc.in {
					h.loginAs(tc.role)
					if h.sess.Can(a.Capability()) {
						continue
					}
				}
				before := h.console.Current()

				err := invokers(h.console)[a]()

				var denied *session.DeniedError
				require.ErrorAs(t, err, &denied, a.String())
				assert.Equal(t, a, denied.Action)
				assert.Empty(t, h.api.calls, "%s reached the endpoint", a)
				require.Len(t, h.rec.msgs, 1, a.String())
				want := locale.LoginRequired
				if tc.in {
					want = DeniedKey(a)
				}
				assert.Equal(t, h.ui.Msg.T(want), h.rec.msgs[0])
				assert.Equal(t, before, h.console.Current())
				assert.Zero(t, h.ui.Overlays.Len())
				assert.False(t, h.ui.Busy.Active())
				_, pending := h.console.PendingPrompt()
				assert.False(t, pending)
			}
		})
	}
}

func TestApproveNeedsConfirmationThenReloads(t *testing.T) {
	h := newHarness()
	h.loginAs(session.RoleStaff)
	h.api.orders = []orders.Order{{OrderID: "O1", Status: orders.StatusPending}}

	require.NoError(t, h.console.RequestApprove("O1"))
	assert.Empty(t, h.api.calls, "nothing sent before confirmation")
	assert.True(t, h.ui.Overlays.IsOpen(overlay.Confirm))
	prompt, ok := h.console.PendingPrompt()
	require.True(t, ok)
	assert.Contains(t, prompt, "O1")

	op, err := h.console.ConfirmPending()
	require.NoError(t, err)
	require.NoError(t, op.Execute(context.Background()))

	assert.Equal(t, []string{remote.ActApprove, remote.ActOrders}, h.api.calls)
	assert.False(t, h.ui.Overlays.IsOpen(overlay.Confirm))
	assert.Len(t, h.console.Orders(), 1)
	require.Len(t, h.pub.envs, 1)
	assert.Equal(t, orders.EventOrderApproved, h.pub.envs[0].EventType)
	assert.Equal(t, "tester", h.pub.envs[0].Actor)
	assert.False(t, h.ui.Busy.Active())
}

func TestRejectFailureStillReloads(t *testing.T) {
	h := newHarness()
	h.loginAs(session.RoleAdmin)
	h.api.fail[remote.ActReject] = &remote.Error{Kind: remote.KindDomain, Action: remote.ActReject, Message: "already approved"}

	require.NoError(t, h.console.RequestReject("O1"))
	op, err := h.console.ConfirmPending()
	require.NoError(t, err)
	assert.Error(t, op.Execute(context.Background()))

	assert.Equal(t, []string{remote.ActReject, remote.ActOrders}, h.api.calls)
	assert.Equal(t, []string{"already approved"}, h.rec.msgs)
	assert.Empty(t, h.pub.envs)
}

func TestConfirmWithoutPending(t *testing.T) {
	h := newHarness()
	h.loginAs(session.RoleAdmin)
	op, err := h.console.ConfirmPending()
	assert.Nil(t, op)
	assert.ErrorIs(t, err, ErrNoPending)
	assert.Equal(t, []notify.Kind{notify.Warning}, h.rec.kinds)

	require.NoError(t, h.console.RequestApprove("O1"))
	h.console.CancelPending()
	_, err = h.console.ConfirmPending()
	assert.ErrorIs(t, err, ErrNoPending)
	assert.Empty(t, h.api.calls)
}

func TestValidationBeforeRemote(t *testing.T) {
	h := newHarness()
	h.loginAs(session.RoleAdmin)
	c := h.console

	cases := []struct {
		name string
		call func() error
		key  locale.Key
	}{
		{"stock in qty zero", func() error { _, err := c.StockIn(StockInForm{ProductID: "P1", Qty: "0"}); return err }, locale.FieldNotPositive},
		{"stock in qty text", func() error { _, err := c.StockIn(StockInForm{ProductID: "P1", Qty: "two"}); return err }, locale.FieldNotInteger},
		{"stock in no product", func() error { _, err := c.StockIn(StockInForm{Qty: "1"}); return err }, locale.FieldRequired},
		{"adjust negative", func() error { _, err := c.StockAdjust(StockAdjustForm{ProductID: "P1", NewQty: "-1"}); return err }, locale.FieldNegative},
		{"product price text", func() error {
			_, err := c.AddProduct(ProductForm{ProductID: "P1", Name: "Tea", Price: "1.5"})
			return err
		}, locale.FieldNotInteger},
		{"product no name", func() error { _, err := c.UpdateProduct(ProductForm{ProductID: "P1", Price: "1"}); return err }, locale.FieldRequired},
		{"upload empty", func() error { _, err := c.UploadImage(remote.Image{Filename: "a.png"}); return err }, locale.FieldRequired},
		{"approve blank id", func() error { return c.RequestApprove("  ") }, locale.FieldRequired},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			h.rec.msgs = nil
			err := tc.call()
			var ve *ValidationError
			require.ErrorAs(t, err, &ve)
			assert.Equal(t, tc.key, ve.Key)
			assert.Len(t, h.rec.msgs, 1)
		})
	}
	assert.Empty(t, h.api.calls)
}

func TestStockInRefetches(t *testing.T) {
	h := newHarness()
	h.loginAs(session.RoleAdmin)
	h.api.products = []orders.Product{{ProductID: "P1", Stock: 7}, {ProductID: "P2", Active: false}}

	op, err := h.console.StockIn(StockInForm{ProductID: "P1", Qty: "2", Reason: "delivery"})
	require.NoError(t, err)
	require.NoError(t, op.Execute(context.Background()))

	assert.Equal(t, []string{remote.ActStockIn, remote.ActProducts, remote.ActStockLogs}, h.api.calls)
	assert.Len(t, h.console.Products(), 2, "inactive products are listed for admins")
	require.Len(t, h.pub.envs, 1)
	assert.Equal(t, orders.EventStockReceived, h.pub.envs[0].EventType)
}

func TestAddProductSendsStockUpdateDoesNot(t *testing.T) {
	h := newHarness()
	h.loginAs(session.RoleOwner)

	op, err := h.console.AddProduct(ProductForm{ProductID: "P9", Name: "Rice", Price: "40", Stock: "12", Active: true})
	require.NoError(t, err)
	require.NoError(t, op.Execute(context.Background()))
	require.NotNil(t, h.api.lastForm.Stock)
	assert.Equal(t, 12, *h.api.lastForm.Stock)
	assert.Equal(t, 40, *h.api.lastForm.Price)

	op, err = h.console.UpdateProduct(ProductForm{ProductID: "P9", Name: "Rice", Price: "45", Stock: "99"})
	require.NoError(t, err)
	require.NoError(t, op.Execute(context.Background()))
	assert.Nil(t, h.api.lastForm.Stock)
	assert.Equal(t, 2, h.api.count(remote.ActProducts))
}

func TestUploadKeepsURL(t *testing.T) {
	h := newHarness()
	h.loginAs(session.RoleAdmin)
	op, err := h.console.UploadImage(remote.Image{Data: []byte("\x89PNG\r\n\x1a\n"), Filename: "/tmp/x/tea.png"})
	require.NoError(t, err)
	require.NoError(t, op.Execute(context.Background()))
	assert.Equal(t, "https://img.example/p.png", h.console.LastImageURL())
}

func TestLoginFinalizesOverlaysAndLoadsOrders(t *testing.T) {
	h := newHarness()
	h.api.role = "staff"
	h.ui.Overlays.Open(overlay.CartSheet)
	h.ui.Overlays.Open(overlay.AdminLogin)

	op, err := h.console.Login("somchai", "secret")
	require.NoError(t, err)
	require.NoError(t, op.Execute(context.Background()))

	assert.True(t, h.sess.Authenticated())
	actor, _ := h.sess.Actor()
	assert.Equal(t, "somchai", actor.Name)
	assert.False(t, h.sess.Can(session.ManageStock))
	assert.Zero(t, h.ui.Overlays.Len())
	assert.Equal(t, []string{remote.ActAdminLogin, remote.ActOrders}, h.api.calls)
	assert.Equal(t, ViewOrders, h.console.Current())
}

func TestLoginFailureAndValidation(t *testing.T) {
	h := newHarness()
	_, err := h.console.Login("", "x")
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "username", ve.Field)

	h.api.fail[remote.ActAdminLogin] = &remote.Error{Kind: remote.KindDomain, Message: "wrong password"}
	op, err := h.console.Login("a", "b")
	require.NoError(t, err)
	assert.Error(t, op.Execute(context.Background()))
	assert.False(t, h.sess.Authenticated())
	assert.Equal(t, "wrong password", h.rec.msgs[len(h.rec.msgs)-1])
	assert.Equal(t, 1, h.api.count(remote.ActAdminLogin))
}

func TestLogoutClearsEverything(t *testing.T) {
	h := newHarness()
	h.loginAs(session.RoleAdmin)
	h.api.orders = []orders.Order{{OrderID: "O1"}}
	op, err := h.console.Switch("timeline")
	require.NoError(t, err)
	require.NoError(t, op.Execute(context.Background()))
	require.NotEmpty(t, h.console.Orders())

	op, err = h.console.Logout()
	require.NoError(t, err)
	assert.False(t, h.sess.Authenticated(), "cleared before the remote call")
	assert.Empty(t, h.console.Orders())
	assert.Equal(t, ViewOrders, h.console.Current())
	require.NoError(t, op.Execute(context.Background()))
	assert.Equal(t, 1, h.api.count(remote.ActAdminLogout))

	_, err = h.console.Logout()
	assert.ErrorIs(t, err, ErrNotLoggedIn)
}
