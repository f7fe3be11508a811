package admin

import (
	"context"
	"io"
	"sync"
	"time"

	"github.com/ariefcatur/stockfront/internal/flow"
	"github.com/ariefcatur/stockfront/internal/locale"
	"github.com/ariefcatur/stockfront/internal/notify"
	"github.com/ariefcatur/stockfront/internal/orders"
	"github.com/ariefcatur/stockfront/internal/overlay"
	"github.com/ariefcatur/stockfront/internal/remote"
	"github.com/ariefcatur/stockfront/internal/session"
	"github.com/sirupsen/logrus"
)

type fakeAPI struct {
	mu    sync.Mutex
	calls []string
	fail  map[string]error

	role     string
	orders   []orders.Order
	products []orders.Product
	logs     []orders.StockLogEntry
	lastForm remote.ProductFields
}

func (f *fakeAPI) record(action string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, action)
	return f.fail[action]
}

func (f *fakeAPI) count(action string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, c := range f.calls {
		if c == action {
			n++
		}
	}
	return n
}

func (f *fakeAPI) Products(context.Context) ([]orders.Product, error) {
	return f.products, f.record(remote.ActProducts)
}

func (f *fakeAPI) CreateOrder(context.Context, remote.CreateOrderRequest) (remote.CreatedOrder, error) {
	return remote.CreatedOrder{}, f.record(remote.ActCreateOrder)
}

func (f *fakeAPI) AdminLogin(_ context.Context, username, _ string) (remote.LoginResult, error) {
	if err := f.record(remote.ActAdminLogin); err != nil {
		return remote.LoginResult{}, err
	}
	return remote.LoginResult{Token: "tok-" + username, Username: username, Role: f.role}, nil
}

func (f *fakeAPI) AdminLogout(context.Context, string) error { return f.record(remote.ActAdminLogout) }

func (f *fakeAPI) Orders(context.Context, string) ([]orders.Order, error) {
	return f.orders, f.record(remote.ActOrders)
}

func (f *fakeAPI) ApproveOrder(context.Context, string, string) error { return f.record(remote.ActApprove) }

func (f *fakeAPI) RejectOrder(context.Context, string, string) error { return f.record(remote.ActReject) }

func (f *fakeAPI) StockIn(context.Context, string, string, int, string) error {
	return f.record(remote.ActStockIn)
}

func (f *fakeAPI) StockAdjust(context.Context, string, string, int, string) error {
	return f.record(remote.ActStockAdjust)
}

func (f *fakeAPI) StockLogs(context.Context, string) ([]orders.StockLogEntry, error) {
	return f.logs, f.record(remote.ActStockLogs)
}

func (f *fakeAPI) UploadProductImage(context.Context, string, remote.Image) (string, error) {
	return "https://img.example/p.png", f.record(remote.ActUploadImage)
}

func (f *fakeAPI) AddProduct(_ context.Context, _ string, p remote.ProductFields) error {
	f.lastForm = p
	return f.record(remote.ActAddProduct)
}

func (f *fakeAPI) UpdateProduct(_ context.Context, _ string, p remote.ProductFields) error {
	f.lastForm = p
	return f.record(remote.ActUpdateProduct)
}

type recorder struct {
	kinds []notify.Kind
	msgs  []string
}

func (r *recorder) Toast(k notify.Kind, m string) {
	r.kinds = append(r.kinds, k)
	r.msgs = append(r.msgs, m)
}

type capture struct{ envs []orders.Envelope }

func (c *capture) Publish(env orders.Envelope) { c.envs = append(c.envs, env) }

func quietLog() *logrus.Entry {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return logrus.NewEntry(l)
}

type harness struct {
	api     *fakeAPI
	sess    *session.Session
	rec     *recorder
	pub     *capture
	ui      flow.UI
	console *Console
}

func newHarness() *harness {
	h := &harness{api: &fakeAPI{fail: map[string]error{}}, sess: &session.Session{}, rec: &recorder{}, pub: &capture{}}
	h.ui = flow.UI{
		Overlays: overlay.NewStack(nil),
		Toasts:   h.rec,
		Busy:     &notify.Busy{},
		Msg:      locale.For("en"),
		Log:      quietLog(),
	}
	h.console = NewConsole(h.api, h.sess, h.ui, h.pub, "stockfront-test")
	return h
}

func (h *harness) loginAs(role session.Role) {
	h.sess.Login("tok", session.Actor{Name: "tester", Role: role})
}

func ts(sec int64) orders.Timestamp { return orders.Timestamp{Time: time.Unix(sec, 0).UTC()} }
