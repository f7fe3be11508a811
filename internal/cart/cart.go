// Package cart owns the shopping cart. Lines are only changed by the flows in
// this package (AddFlow, Editor, Checkout); everything else reads.
package cart

import (
	"context"
	"encoding/json"
	"time"

	"github.com/ariefcatur/stockfront/internal/orders"
	"github.com/ariefcatur/stockfront/internal/storage"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// StorageKey is where the cart lines live in local storage.
const StorageKey = "stockfront:cart:v5"

var (
	ErrEmptyCart      = errors.New("cart is empty")
	ErrSubmitInFlight = errors.New("order submission already in flight")
	ErrOutOfStock     = errors.New("product out of stock")
	ErrInvalidQty     = errors.New("invalid quantity")
	ErrNoProduct      = errors.New("no product selected")
)

type Line struct {
	ProductID string `json:"productId"`
	Name      string `json:"name"`
	Price     int    `json:"price"`
	Qty       int    `json:"qty"`
	Image     string `json:"image,omitempty"`
}

func (l Line) Subtotal() int { return l.Price * l.Qty }

func (l Line) valid() bool { return l.ProductID != "" && l.Qty >= 1 && l.Price >= 0 }

type Cart struct {
	store   storage.Storage
	log     *logrus.Entry
	timeout time.Duration
	lines   []Line
}

func New(store storage.Storage, log *logrus.Entry) *Cart {
	if store == nil {
		store = storage.NewMemory()
	}
	if log == nil {
		log = logrus.NewEntry(logrus.StandardLogger())
	}
	return &Cart{store: store, log: log.WithField("component", "cart"), timeout: 3 * time.Second}
}

// Load replaces the lines with what storage holds. Missing, corrupt or
// non-list data leaves an empty cart; bad lines are dropped one by one.
func (c *Cart) Load(ctx context.Context) {
	c.lines = nil
	b, err := c.store.Load(ctx, StorageKey)
	if errors.Is(err, storage.ErrNotFound) {
		return
	}
	if err != nil {
		c.log.WithError(err).Warn("cart load failed, starting empty")
		return
	}
	c.lines = decodeLines(b, c.log)
}

func decodeLines(b []byte, log *logrus.Entry) []Line {
	var raw []json.RawMessage
	if err := json.Unmarshal(b, &raw); err != nil {
		log.WithError(err).Warn("stored cart is not a list, discarded")
		return nil
	}
	var out []Line
	for i, r := range raw {
		var l Line
		if err := json.Unmarshal(r, &l); err != nil || !l.valid() {
			log.WithField("index", i).Warn("stored cart line dropped")
			continue
		}
		out = mergeLine(out, l)
	}
	return out
}

func mergeLine(lines []Line, l Line) []Line {
	for i := range lines {
		if lines[i].ProductID == l.ProductID {
			lines[i].Qty += l.Qty
			return lines
		}
	}
	return append(lines, l)
}

func (c *Cart) Lines() []Line {
	out := make([]Line, len(c.lines))
	copy(out, c.lines)
	return out
}

func (c *Cart) Line(productID string) (Line, bool) {
	for _, l := range c.lines {
		if l.ProductID == productID {
			return l, true
		}
	}
	return Line{}, false
}

func (c *Cart) Len() int    { return len(c.lines) }
func (c *Cart) Empty() bool { return len(c.lines) == 0 }

func (c *Cart) Total() int {
	t := 0
	for _, l := range c.lines {
		t += l.Subtotal()
	}
	return t
}

// Count is the number of units across all lines.
func (c *Cart) Count() int {
	n := 0
	for _, l := range c.lines {
		n += l.Qty
	}
	return n
}

func (c *Cart) Items() []orders.OrderItem {
	out := make([]orders.OrderItem, 0, len(c.lines))
	for _, l := range c.lines {
		out = append(out, orders.OrderItem{ProductID: l.ProductID, Name: l.Name, Price: l.Price, Qty: l.Qty})
	}
	return out
}

func (c *Cart) add(l Line) error {
	c.lines = mergeLine(c.lines, l)
	return c.persist()
}

func (c *Cart) setQty(productID string, qty int) error {
	for i := range c.lines {
		if c.lines[i].ProductID == productID {
			if c.lines[i].Qty == qty {
				return nil
			}
			c.lines[i].Qty = qty
			return c.persist()
		}
	}
	return nil
}

func (c *Cart) remove(productID string) error {
	for i := range c.lines {
		if c.lines[i].ProductID == productID {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
			return c.persist()
		}
	}
	return nil
}

func (c *Cart) clear() error {
	c.lines = nil
	ctx, cancel := context.WithTimeout(context.Background(), c.timeout)
	defer cancel()
	return errors.Wrap(c.store.Remove(ctx, StorageKey), "clear cart")
}

func (c *Cart) persist() error {
	lines := c.lines
	if lines == nil {
		lines = []Line{}
	}
	b, err := json.Marshal(lines)
	if err != nil {
		return errors.Wrap(err, "marshal cart")
	}
	ctx, cancel := context.WithTimeout(context.Background(), c.timeout)
	defer cancel()
	return errors.Wrap(c.store.Save(ctx, StorageKey, b), "save cart")
}
