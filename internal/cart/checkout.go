package cart

import (
	"context"

	"github.com/ariefcatur/stockfront/internal/flow"
	"github.com/ariefcatur/stockfront/internal/locale"
	"github.com/ariefcatur/stockfront/internal/orders"
	"github.com/ariefcatur/stockfront/internal/overlay"
	"github.com/ariefcatur/stockfront/internal/remote"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type OrderCreator interface {
	CreateOrder(ctx context.Context, req remote.CreateOrderRequest) (remote.CreatedOrder, error)
}

// Checkout submits the cart as one order. Stock is not re-checked here; the
// endpoint decides whether the order can be filled.
type Checkout struct {
	cart     *Cart
	api      OrderCreator
	ui       flow.UI
	pub      orders.Publisher
	producer string

	inFlight bool
	last     *LastOrder
	newRef   func() string
}

// LastOrder is what the receipt overlay shows.
type LastOrder struct {
	OrderID   string
	ClientRef string
	Items     []orders.OrderItem
	Total     int
}

func NewCheckout(c *Cart, api OrderCreator, ui flow.UI, pub orders.Publisher, producer string) *Checkout {
	if pub == nil {
		pub = orders.NopPublisher{}
	}
	return &Checkout{cart: c, api: api, ui: ui, pub: pub, producer: producer, newRef: uuid.NewString}
}

func (c *Checkout) InFlight() bool { return c.inFlight }

func (c *Checkout) Last() (LastOrder, bool) {
	if c.last == nil {
		return LastOrder{}, false
	}
	return *c.last, true
}

// Begin checks the guards and returns the submission op. The in-flight flag
// is set here, so a second Begin before Done gets ErrSubmitInFlight.
func (c *Checkout) Begin() (*flow.Op, error) {
	if c.inFlight {
		return nil, ErrSubmitInFlight
	}
	if c.cart.Empty() {
		c.ui.Warn(locale.CartEmpty)
		return nil, ErrEmptyCart
	}
	c.inFlight = true
	c.ui.ShowBusy(locale.SubmittingOrder)

	req := remote.CreateOrderRequest{Items: c.cart.Items(), Total: c.cart.Total(), ClientRef: c.newRef()}
	var res remote.CreatedOrder
	return &flow.Op{
		Name: "createOrder",
		Run: func(ctx context.Context) error {
			var err error
			res, err = c.api.CreateOrder(ctx, req)
			return err
		},
		Done: func(err error) {
			defer func() {
				c.inFlight = false
				c.ui.HideBusy()
			}()
			if err != nil {
				c.ui.Fail("createOrder", err, locale.OrderFailed)
				return
			}
			c.succeeded(req, res)
		},
	}, nil
}

func (c *Checkout) succeeded(req remote.CreateOrderRequest, res remote.CreatedOrder) {
	total := res.Total
	if total == 0 {
		total = req.Total
	}
	c.last = &LastOrder{OrderID: res.OrderID, ClientRef: req.ClientRef, Items: req.Items, Total: total}

	if err := c.cart.clear(); err != nil {
		c.ui.Entry().WithError(err).Warn("cart clear failed")
	}
	c.ui.Overlays.Close(overlay.CartSheet)
	c.ui.Success(locale.OrderCreated)
	c.ui.Overlays.Open(overlay.OrderSuccess)
	c.ui.Entry().WithFields(logrus.Fields{"order_id": res.OrderID, "client_ref": req.ClientRef, "total": total}).
		Info("order submitted")

	key := res.OrderID
	if key == "" {
		key = req.ClientRef
	}
	err := orders.Emit(c.pub, orders.EventOrderSubmitted, c.producer, "", key,
		orders.OrderSubmittedPayload{OrderID: res.OrderID, ClientRef: req.ClientRef, Items: req.Items, Total: total})
	if err != nil {
		c.ui.Entry().WithError(err).Warn("activity event dropped")
	}
}

// DismissReceipt closes the receipt overlay.
func (c *Checkout) DismissReceipt() {
	c.ui.Overlays.Close(overlay.OrderSuccess)
}
