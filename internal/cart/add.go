package cart

import (
	"github.com/ariefcatur/stockfront/internal/flow"
	"github.com/ariefcatur/stockfront/internal/locale"
	"github.com/ariefcatur/stockfront/internal/orders"
	"github.com/ariefcatur/stockfront/internal/overlay"
)

// AddFlow drives product detail → qty sheet → cart. It is idle until Begin
// succeeds and goes back to idle on Confirm or Cancel.
type AddFlow struct {
	cart *Cart
	ui   flow.UI

	product   *orders.Product
	selecting bool
	qty       int
}

func NewAddFlow(c *Cart, ui flow.UI) *AddFlow {
	return &AddFlow{cart: c, ui: ui}
}

// Open shows the detail view for p.
func (f *AddFlow) Open(p orders.Product) {
	if f.selecting {
		return
	}
	f.product = &p
	f.ui.Overlays.Open(overlay.ProductDetail)
}

func (f *AddFlow) Product() (orders.Product, bool) {
	if f.product == nil {
		return orders.Product{}, false
	}
	return *f.product, true
}

func (f *AddFlow) Selecting() bool { return f.selecting }

func (f *AddFlow) Qty() int { return f.qty }

// Begin enters qty selection for the open product. Calling it while already
// selecting does nothing.
func (f *AddFlow) Begin() error {
	if f.selecting {
		return nil
	}
	if f.product == nil {
		return ErrNoProduct
	}
	if f.product.Stock <= 0 {
		f.ui.Warn(locale.OutOfStock)
		return ErrOutOfStock
	}
	f.selecting = true
	f.qty = 1
	f.ui.Overlays.Open(overlay.QtySheet)
	return nil
}

// Inc and Dec report whether the value changed; both respect [1, stock].
func (f *AddFlow) Inc() bool {
	if !f.selecting || f.qty >= f.product.Stock {
		return false
	}
	f.qty++
	return true
}

func (f *AddFlow) Dec() bool {
	if !f.selecting || f.qty <= 1 {
		return false
	}
	f.qty--
	return true
}

// SetQty takes a typed value as is; bounds are checked on Confirm.
func (f *AddFlow) SetQty(n int) {
	if f.selecting {
		f.qty = n
	}
}

// Refresh swaps in newer product data, e.g. after the list is reloaded while
// the sheet is open.
func (f *AddFlow) Refresh(p orders.Product) {
	if f.product != nil && f.product.ProductID == p.ProductID {
		f.product = &p
	}
}

func (f *AddFlow) Confirm() error {
	if !f.selecting || f.product == nil {
		return ErrNoProduct
	}
	p := *f.product
	if f.qty <= 0 || f.qty > p.Stock {
		f.ui.Warn(locale.QtyInvalid)
		return ErrInvalidQty
	}
	err := f.cart.add(Line{ProductID: p.ProductID, Name: p.Name, Price: p.Price, Qty: f.qty, Image: p.Image})
	if err != nil {
		f.ui.Entry().WithError(err).Warn("cart persist failed")
		f.ui.Warn(locale.CartSaveFailed)
	}
	f.ui.Success(locale.AddedToCart, p.Name)
	f.reset()
	f.ui.Overlays.Close(overlay.QtySheet)
	f.ui.Overlays.Close(overlay.ProductDetail)
	return nil
}

func (f *AddFlow) Cancel() {
	if !f.selecting {
		return
	}
	f.selecting = false
	f.qty = 0
	f.ui.Overlays.Close(overlay.QtySheet)
}

// Dismissed keeps the flow in step when a surface is closed from outside
// (backdrop tap, escape key).
func (f *AddFlow) Dismissed(id string) {
	switch id {
	case overlay.QtySheet:
		f.selecting = false
		f.qty = 0
	case overlay.ProductDetail:
		f.reset()
		f.ui.Overlays.Close(overlay.QtySheet)
	}
}

func (f *AddFlow) reset() {
	f.product = nil
	f.selecting = false
	f.qty = 0
}
