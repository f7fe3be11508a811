package admin

import (
	"context"

	"github.com/ariefcatur/stockfront/internal/flow"
	"github.com/ariefcatur/stockfront/internal/locale"
	"github.com/ariefcatur/stockfront/internal/orders"
	"github.com/ariefcatur/stockfront/internal/remote"
	"github.com/ariefcatur/stockfront/internal/session"
)

func (c *Console) StockIn(f StockInForm) (*flow.Op, error) {
	if err := c.guard(session.StockIn); err != nil {
		return nil, err
	}
	id, err := required("productId", f.ProductID)
	if err != nil {
		return nil, c.invalid(err)
	}
	qty, err := wholeNumber("qty", f.Qty, 1)
	if err != nil {
		return nil, c.invalid(err)
	}
	token := c.sess.Token()
	c.ui.ShowBusy(locale.SavingStock)
	return &flow.Op{
		Name: remote.ActStockIn,
		Run: func(ctx context.Context) error {
			return c.api.StockIn(ctx, token, id, qty, f.Reason)
		},
		Done: func(err error) {
			defer c.ui.HideBusy()
			if err != nil {
				c.ui.Fail(remote.ActStockIn, err, locale.StockInFailed)
				return
			}
			c.ui.Success(locale.StockInOK)
			c.emit(orders.EventStockReceived, id, orders.StockChangedPayload{ProductID: id, Qty: qty, Reason: f.Reason})
		},
		Next: c.afterStockChange,
	}, nil
}

func (c *Console) StockAdjust(f StockAdjustForm) (*flow.Op, error) {
	if err := c.guard(session.StockAdjust); err != nil {
		return nil, err
	}
	id, err := required("productId", f.ProductID)
	if err != nil {
		return nil, c.invalid(err)
	}
	qty, err := wholeNumber("newQty", f.NewQty, 0)
	if err != nil {
		return nil, c.invalid(err)
	}
	token := c.sess.Token()
	c.ui.ShowBusy(locale.SavingStock)
	return &flow.Op{
		Name: remote.ActStockAdjust,
		Run: func(ctx context.Context) error {
			return c.api.StockAdjust(ctx, token, id, qty, f.Reason)
		},
		Done: func(err error) {
			defer c.ui.HideBusy()
			if err != nil {
				c.ui.Fail(remote.ActStockAdjust, err, locale.StockAdjustFailed)
				return
			}
			c.ui.Success(locale.StockAdjustOK)
			c.emit(orders.EventStockAdjusted, id, orders.StockChangedPayload{ProductID: id, Qty: qty, Reason: f.Reason})
		},
		Next: c.afterStockChange,
	}, nil
}

// afterStockChange refetches products, then the logs when they are visible
// to this actor.
func (c *Console) afterStockChange() *flow.Op {
	op := c.productsOp()
	if c.sess.Can(session.ViewHistory) {
		op.Next = c.logsOp
	}
	return op
}

func (c *Console) LoadStockLogs() (*flow.Op, error) {
	if err := c.guard(session.LoadStockLogs); err != nil {
		return nil, err
	}
	return c.logsOp(), nil
}

func (c *Console) logsOp() *flow.Op {
	token := c.sess.Token()
	var logs []orders.StockLogEntry
	c.ui.ShowBusy(locale.LoadingHistory)
	return &flow.Op{
		Name: remote.ActStockLogs,
		Run: func(ctx context.Context) error {
			var err error
			logs, err = c.api.StockLogs(ctx, token)
			return err
		},
		Done: func(err error) {
			defer c.ui.HideBusy()
			if err != nil {
				c.ui.Fail(remote.ActStockLogs, err, locale.LoadHistoryFailed)
				return
			}
			c.logs = logs
		},
	}
}
