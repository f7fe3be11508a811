package app

import (
	"context"

	"github.com/ariefcatur/stockfront/internal/flow"
	"github.com/ariefcatur/stockfront/internal/locale"
	"github.com/ariefcatur/stockfront/internal/orders"
	"github.com/ariefcatur/stockfront/internal/overlay"
	"github.com/ariefcatur/stockfront/internal/remote"
	"github.com/ariefcatur/stockfront/internal/search"
)

// LoadProducts refetches the storefront catalog.
func (a *App) LoadProducts() *flow.Op {
	a.ui.ShowBusy(locale.LoadingProducts)
	var list []orders.Product
	return &flow.Op{
		Name: remote.ActProducts,
		Run: func(ctx context.Context) error {
			var err error
			list, err = a.api.Products(ctx)
			return err
		},
		Done: func(err error) {
			defer a.ui.HideBusy()
			if err != nil {
				a.ui.Fail(remote.ActProducts, err, locale.LoadProductsError)
				return
			}
			a.products = list
			a.loaded = true
			for _, p := range list {
				a.Add.Refresh(p)
			}
		},
	}
}

// Products is the storefront list: active products only.
func (a *App) Products() []orders.Product {
	out := make([]orders.Product, 0, len(a.products))
	for _, p := range a.products {
		if p.Active {
			out = append(out, p)
		}
	}
	return out
}

// Visible applies the live search keyword on top of Products.
func (a *App) Visible() []orders.Product {
	if !a.Search.Open() {
		return a.Products()
	}
	return a.Filter(a.Search.Keyword())
}

// Filter keeps the storefront products whose name or id contains keyword.
func (a *App) Filter(keyword string) []orders.Product {
	all := a.Products()
	out := all[:0]
	for _, p := range all {
		if search.Matches(keyword, p.Name, p.ProductID) {
			out = append(out, p)
		}
	}
	return out
}

func (a *App) Product(id string) (orders.Product, bool) {
	for _, p := range a.products {
		if p.ProductID == id {
			return p, true
		}
	}
	return orders.Product{}, false
}

func (a *App) stockOf(id string) (int, bool) {
	p, ok := a.Product(id)
	if !ok {
		return 0, false
	}
	return p.Stock, true
}

// OpenProduct shows the detail view for id.
func (a *App) OpenProduct(id string) bool {
	p, ok := a.Product(id)
	if !ok || !p.Active {
		return false
	}
	a.Add.Open(p)
	return true
}

// OpenCart shows the cart sheet; an empty cart renders its empty state.
func (a *App) OpenCart() { a.Overlays.Open(overlay.CartSheet) }
