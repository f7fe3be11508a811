package admin

import (
	"context"
	"strings"

	"github.com/ariefcatur/stockfront/internal/flow"
	"github.com/ariefcatur/stockfront/internal/locale"
	"github.com/ariefcatur/stockfront/internal/orders"
	"github.com/ariefcatur/stockfront/internal/overlay"
	"github.com/ariefcatur/stockfront/internal/remote"
	"github.com/ariefcatur/stockfront/internal/session"
)

// LoadOrders fetches the order list.
func (c *Console) LoadOrders() (*flow.Op, error) {
	if err := c.guard(session.LoadOrders); err != nil {
		return nil, err
	}
	return c.ordersOp(), nil
}

func (c *Console) ordersOp() *flow.Op {
	token := c.sess.Token()
	var list []orders.Order
	c.ui.ShowBusy(locale.LoadingOrders)
	return &flow.Op{
		Name: remote.ActOrders,
		Run: func(ctx context.Context) error {
			var err error
			list, err = c.api.Orders(ctx, token)
			return err
		},
		Done: func(err error) {
			defer c.ui.HideBusy()
			if err != nil {
				c.ui.Fail(remote.ActOrders, err, locale.LoadOrdersFailed)
				return
			}
			c.orders = list
		},
	}
}

func (c *Console) RequestApprove(orderID string) error { return c.request(orderID, true) }

func (c *Console) RequestReject(orderID string) error { return c.request(orderID, false) }

// request arms the confirm overlay. Nothing is sent until ConfirmPending.
func (c *Console) request(orderID string, approve bool) error {
	action := session.RejectOrder
	if approve {
		action = session.ApproveOrder
	}
	if err := c.guard(action); err != nil {
		return err
	}
	id, err := required("orderId", orderID)
	if err != nil {
		return c.invalid(err)
	}
	c.pending = &decision{orderID: id, approve: approve}
	c.ui.Overlays.Open(overlay.Confirm)
	return nil
}

// PendingPrompt is the question shown on the confirm overlay.
func (c *Console) PendingPrompt() (string, bool) {
	if c.pending == nil {
		return "", false
	}
	if c.pending.approve {
		return c.ui.Msg.T(locale.ConfirmApprove, c.pending.orderID), true
	}
	return c.ui.Msg.T(locale.ConfirmReject, c.pending.orderID), true
}

func (c *Console) CancelPending() {
	c.pending = nil
	c.ui.Overlays.Close(overlay.Confirm)
}

// Dismissed disarms the decision when the confirm sheet goes away by any
// route (backdrop, finalize, leaving the console).
func (c *Console) Dismissed(id string) {
	if id == overlay.Confirm {
		c.pending = nil
	}
}

// ConfirmPending dispatches the armed decision. The order list is reloaded
// afterwards whether or not the call succeeded.
func (c *Console) ConfirmPending() (*flow.Op, error) {
	d := c.pending
	if d == nil {
		c.ui.Warn(locale.NothingToConfirm)
		return nil, ErrNoPending
	}
	c.pending = nil
	c.ui.Overlays.Close(overlay.Confirm)

	action, act, busy, okKey, failKey := session.RejectOrder, remote.ActReject, locale.Rejecting, locale.Rejected, locale.RejectFailed
	event, status := orders.EventOrderRejected, orders.StatusRejected
	call := c.api.RejectOrder
	if d.approve {
		action, act, busy, okKey, failKey = session.ApproveOrder, remote.ActApprove, locale.Approving, locale.Approved, locale.ApproveFailed
		event, status = orders.EventOrderApproved, orders.StatusApproved
		call = c.api.ApproveOrder
	}
	if err := c.guard(action); err != nil {
		return nil, err
	}
	if o, ok := c.findOrder(d.orderID); ok && !orders.CanTransition(o.Status, status) {
		c.ui.Entry().WithField("order_id", d.orderID).WithField("status", o.Status).
			Warn("cached order is no longer pending, sending anyway")
	}

	token := c.sess.Token()
	c.ui.ShowBusy(busy)
	return &flow.Op{
		Name: act,
		Run:  func(ctx context.Context) error { return call(ctx, token, d.orderID) },
		Done: func(err error) {
			defer c.ui.HideBusy()
			if err != nil {
				c.ui.Fail(act, err, failKey)
				return
			}
			c.ui.Success(okKey)
			c.emit(event, d.orderID, orders.OrderDecidedPayload{OrderID: d.orderID, Status: status})
		},
		Next: c.ordersOp,
	}, nil
}

func (c *Console) findOrder(id string) (orders.Order, bool) {
	for _, o := range c.orders {
		if strings.EqualFold(o.OrderID, id) {
			return o, true
		}
	}
	return orders.Order{}, false
}
