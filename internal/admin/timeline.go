package admin

import (
	"context"

	"github.com/ariefcatur/stockfront/internal/flow"
	"github.com/ariefcatur/stockfront/internal/locale"
	"github.com/ariefcatur/stockfront/internal/orders"
	"github.com/ariefcatur/stockfront/internal/session"
	"github.com/ariefcatur/stockfront/internal/timeline"
	"golang.org/x/sync/errgroup"
)

// LoadTimeline fetches orders and stock logs together.
func (c *Console) LoadTimeline() (*flow.Op, error) {
	if err := c.guard(session.ViewTimeline); err != nil {
		return nil, err
	}
	return c.timelineOp(), nil
}

func (c *Console) SetScope(s string) { c.Scope = timeline.ParseScope(s) }

func (c *Console) timelineOp() *flow.Op {
	token := c.sess.Token()
	var (
		list []orders.Order
		logs []orders.StockLogEntry
	)
	c.ui.ShowBusy(locale.LoadingHistory)
	return &flow.Op{
		Name: "timeline",
		Run: func(ctx context.Context) error {
			g, gctx := errgroup.WithContext(ctx)
			g.Go(func() error {
				var err error
				list, err = c.api.Orders(gctx, token)
				return err
			})
			g.Go(func() error {
				var err error
				logs, err = c.api.StockLogs(gctx, token)
				return err
			})
			return g.Wait()
		},
		Done: func(err error) {
			defer c.ui.HideBusy()
			if err != nil {
				c.ui.Fail("timeline", err, locale.LoadHistoryFailed)
				return
			}
			c.orders, c.logs = list, logs
		},
	}
}
