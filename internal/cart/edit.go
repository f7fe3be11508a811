package cart

import (
	"strconv"
	"strings"

	"github.com/ariefcatur/stockfront/internal/flow"
	"github.com/ariefcatur/stockfront/internal/locale"
)

// NormalizeQty turns typed input into a line quantity: anything that is not
// a number or is below 1 becomes 1, and limit (when > 0) caps it.
func NormalizeQty(raw string, limit int) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n < 1 {
		n = 1
	}
	if limit > 0 && n > limit {
		n = limit
	}
	return n
}

// Editor applies changes made in the cart view. StockOf, when set, gives the
// known stock for a product and caps the quantity.
type Editor struct {
	cart    *Cart
	ui      flow.UI
	StockOf func(productID string) (int, bool)
}

func NewEditor(c *Cart, ui flow.UI) *Editor { return &Editor{cart: c, ui: ui} }

// SetLineQty corrects the input silently and returns the stored quantity.
// A product known to be sold out caps its line at 1.
func (e *Editor) SetLineQty(productID, raw string) int {
	limit := 0
	if e.StockOf != nil {
		if s, ok := e.StockOf(productID); ok {
			limit = max(s, 1)
		}
	}
	n := NormalizeQty(raw, limit)
	e.report(e.cart.setQty(productID, n))
	return n
}

func (e *Editor) Step(productID string, delta int) int {
	l, ok := e.cart.Line(productID)
	if !ok {
		return 0
	}
	return e.SetLineQty(productID, strconv.Itoa(l.Qty+delta))
}

func (e *Editor) Remove(productID string) { e.report(e.cart.remove(productID)) }

func (e *Editor) Clear() { e.report(e.cart.clear()) }

func (e *Editor) report(err error) {
	if err == nil {
		return
	}
	e.ui.Entry().WithError(err).Warn("cart persist failed")
	e.ui.Warn(locale.CartSaveFailed)
}
