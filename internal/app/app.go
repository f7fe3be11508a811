// Package app wires the storefront and the admin console into one state
// container. Every method runs on the UI goroutine; remote work is handed
// back as a *flow.Op.
package app

import (
	"context"
	"time"

	"github.com/ariefcatur/stockfront/internal/admin"
	"github.com/ariefcatur/stockfront/internal/cart"
	"github.com/ariefcatur/stockfront/internal/flow"
	"github.com/ariefcatur/stockfront/internal/locale"
	"github.com/ariefcatur/stockfront/internal/notify"
	"github.com/ariefcatur/stockfront/internal/orders"
	"github.com/ariefcatur/stockfront/internal/overlay"
	"github.com/ariefcatur/stockfront/internal/remote"
	"github.com/ariefcatur/stockfront/internal/search"
	"github.com/ariefcatur/stockfront/internal/session"
	"github.com/ariefcatur/stockfront/internal/storage"
	"github.com/sirupsen/logrus"
)

type Mode int

const (
	ModeShop Mode = iota
	ModeAdmin
)

func (m Mode) String() string {
	if m == ModeAdmin {
		return "admin"
	}
	return "shop"
}

type Deps struct {
	API       remote.API
	Store     storage.Storage
	Publisher orders.Publisher
	// Presenter is told about overlay changes; nil is fine for headless use.
	Presenter overlay.Presenter
	Log       *logrus.Entry

	Locale         string
	ToastTimeout   time.Duration
	ToastMax       int
	SearchDebounce time.Duration
	Producer       string
}

type App struct {
	Session  *session.Session
	Overlays *overlay.Stack
	Search   *search.Controller
	Toasts   *notify.Center
	Busy     *notify.Busy
	Msg      locale.Catalog

	Cart     *cart.Cart
	Add      *cart.AddFlow
	Edit     *cart.Editor
	Checkout *cart.Checkout
	Admin    *admin.Console

	api      remote.API
	log      *logrus.Entry
	ui       flow.UI
	mode     Mode
	products []orders.Product
	loaded   bool
}

func New(d Deps) *App {
	log := d.Log
	if log == nil {
		log = logrus.NewEntry(logrus.StandardLogger())
	}
	pub := d.Publisher
	if pub == nil {
		pub = orders.NopPublisher{}
	}
	producer := d.Producer
	if producer == "" {
		producer = "stockfront"
	}
	store := d.Store
	if store == nil {
		store = storage.NewMemory()
	}

	a := &App{
		Session: &session.Session{},
		Search:  search.New(d.SearchDebounce),
		Toasts:  notify.NewCenter(d.ToastTimeout, d.ToastMax),
		Busy:    &notify.Busy{},
		Msg:     locale.For(d.Locale),
		api:     d.API,
		log:     log,
	}
	a.Overlays = overlay.NewStack(&presenter{app: a, next: d.Presenter})
	a.ui = flow.UI{
		Overlays: a.Overlays,
		Toasts:   a.Toasts,
		Busy:     a.Busy,
		Msg:      a.Msg,
		Log:      log.WithField("component", "flow"),
	}

	a.Cart = cart.New(store, log.WithField("component", "cart"))
	a.Add = cart.NewAddFlow(a.Cart, a.ui)
	a.Edit = cart.NewEditor(a.Cart, a.ui)
	a.Edit.StockOf = a.stockOf
	a.Checkout = cart.NewCheckout(a.Cart, d.API, a.ui, pub, producer)
	a.Admin = admin.NewConsole(d.API, a.Session, a.ui, pub, producer)
	return a
}

// presenter forwards overlay changes and keeps the add flow in step with
// surfaces closed from outside.
type presenter struct {
	app  *App
	next overlay.Presenter
}

func (p *presenter) Show(id string) {
	if p.next != nil {
		p.next.Show(id)
	}
}

func (p *presenter) Hide(id string) {
	if p.app.Add != nil {
		p.app.Add.Dismissed(id)
	}
	if p.app.Admin != nil {
		p.app.Admin.Dismissed(id)
	}
	if p.next != nil {
		p.next.Hide(id)
	}
}

func (p *presenter) SyncBackdrop(visible bool, dismiss func()) {
	if p.next != nil {
		p.next.SyncBackdrop(visible, dismiss)
	}
}

// Start restores the cart and returns the first product load.
func (a *App) Start(ctx context.Context) *flow.Op {
	a.Cart.Load(ctx)
	return a.LoadProducts()
}

func (a *App) UI() flow.UI { return a.ui }

func (a *App) Mode() Mode { return a.mode }

// Loaded reports whether a product list has arrived at least once.
func (a *App) Loaded() bool { return a.loaded }
