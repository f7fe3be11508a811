package admin

import (
	"context"

	"github.com/ariefcatur/stockfront/internal/flow"
	"github.com/ariefcatur/stockfront/internal/locale"
	"github.com/ariefcatur/stockfront/internal/orders"
	"github.com/ariefcatur/stockfront/internal/remote"
	"github.com/ariefcatur/stockfront/internal/session"
	"github.com/ariefcatur/stockfront/internal/timeline"
	"github.com/pkg/errors"
)

var (
	ErrNoPending     = errors.New("no action waiting for confirmation")
	ErrNotLoggedIn   = errors.New("admin not logged in")
	ErrAlreadyLogged = errors.New("admin already logged in")
)

var deniedKeys = map[session.Action]locale.Key{
	session.LoadOrders:     locale.DeniedOrders,
	session.ApproveOrder:   locale.DeniedApprove,
	session.RejectOrder:    locale.DeniedReject,
	session.StockIn:        locale.DeniedStockIn,
	session.StockAdjust:    locale.DeniedAdjust,
	session.LoadStockLogs:  locale.DeniedLogs,
	session.AddProduct:     locale.DeniedAdd,
	session.UpdateProduct:  locale.DeniedUpdate,
	session.UploadImage:    locale.DeniedUpload,
	session.ViewTimeline:   locale.DeniedTimeline,
	session.ViewHistoryLog: locale.DeniedHistory,
}

// DeniedKey is the message shown when a is refused.
func DeniedKey(a session.Action) locale.Key {
	if k, ok := deniedKeys[a]; ok {
		return k
	}
	return locale.Failed
}

type decision struct {
	orderID string
	approve bool
}

// Console holds the admin caches. All methods run on the UI goroutine and
// return ops whose Run is the only part allowed elsewhere.
type Console struct {
	Router

	api      remote.API
	sess     *session.Session
	ui       flow.UI
	pub      orders.Publisher
	producer string

	orders   []orders.Order
	products []orders.Product
	logs     []orders.StockLogEntry
	pending  *decision
	imageURL string

	Scope   timeline.Scope
	History timeline.HistoryFilter
}

func NewConsole(api remote.API, sess *session.Session, ui flow.UI, pub orders.Publisher, producer string) *Console {
	if pub == nil {
		pub = orders.NopPublisher{}
	}
	return &Console{api: api, sess: sess, ui: ui, pub: pub, producer: producer, Scope: timeline.ScopeAll}
}

func (c *Console) Session() *session.Session { return c.sess }

func (c *Console) Orders() []orders.Order { return append([]orders.Order(nil), c.orders...) }

func (c *Console) Products() []orders.Product { return append([]orders.Product(nil), c.products...) }

func (c *Console) StockLogs() []orders.StockLogEntry {
	return append([]orders.StockLogEntry(nil), c.logs...)
}

// Timeline is rebuilt from the caches on every call.
func (c *Console) Timeline() []timeline.Event {
	return timeline.Build(c.logs, c.orders, c.Scope, c.sess)
}

func (c *Console) HistoryEntries() []orders.StockLogEntry {
	if !c.sess.Can(session.ViewHistory) {
		return []orders.StockLogEntry{}
	}
	return c.History.Apply(c.logs)
}

func (c *Console) LastImageURL() string { return c.imageURL }

// guard is the single permission check. A refusal shows exactly one toast.
func (c *Console) guard(a session.Action) error {
	err := c.sess.Authorize(a)
	if err == nil {
		return nil
	}
	if !c.sess.Authenticated() {
		c.ui.Warn(locale.LoginRequired)
	} else {
		c.ui.Warn(DeniedKey(a))
	}
	c.ui.Entry().WithField("action", a.String()).Info("admin action denied")
	return err
}

func (c *Console) invalid(err error) error {
	var ve *ValidationError
	if errors.As(err, &ve) {
		c.ui.Warn(ve.Key, ve.Field)
	}
	return err
}

func (c *Console) actor() string {
	if a, ok := c.sess.Actor(); ok {
		return a.Name
	}
	return ""
}

func (c *Console) emit(eventType, correlationID string, payload any) {
	if err := orders.Emit(c.pub, eventType, c.producer, c.actor(), correlationID, payload); err != nil {
		c.ui.Entry().WithError(err).Warn("activity event dropped")
	}
}

// Switch changes the view and returns the loader for it. A refused view
// leaves the router where it was.
func (c *Console) Switch(name string) (*flow.Op, error) {
	v := ParseView(name)
	if a, gated := v.entryAction(); gated {
		if err := c.guard(a); err != nil {
			return nil, err
		}
	}
	c.set(v)
	return c.loaderFor(v), nil
}

// Reload refetches whatever the current view shows.
func (c *Console) Reload() (*flow.Op, error) { return c.Switch(string(c.Current())) }

func (c *Console) loaderFor(v View) *flow.Op {
	switch v {
	case ViewProducts:
		return c.productsOp()
	case ViewTimeline:
		return c.timelineOp()
	case ViewHistory:
		return c.logsOp()
	}
	return c.ordersOp()
}

// Login checks the form and returns the login op. On success the session is
// filled, every overlay is dropped and the orders view is loaded.
func (c *Console) Login(username, password string) (*flow.Op, error) {
	if c.sess.Authenticated() {
		return nil, ErrAlreadyLogged
	}
	user, err := required("username", username)
	if err != nil {
		return nil, c.invalid(err)
	}
	if _, err := required("password", password); err != nil {
		return nil, c.invalid(err)
	}
	c.ui.ShowBusy(locale.LoggingIn)

	var res remote.LoginResult
	ok := false
	return &flow.Op{
		Name: remote.ActAdminLogin,
		Run: func(ctx context.Context) error {
			var err error
			res, err = c.api.AdminLogin(ctx, user, password)
			return err
		},
		Done: func(err error) {
			defer c.ui.HideBusy()
			if err != nil {
				c.ui.Fail(remote.ActAdminLogin, err, locale.LoginFailed)
				return
			}
			ok = c.sess.Login(res.Token, session.Actor{Name: res.Username, Role: session.Role(res.Role)})
			if !ok {
				c.ui.Warn(locale.LoginFailed)
				return
			}
			c.ui.Overlays.Finalize()
			c.set(ViewOrders)
			c.ui.Success(locale.LoginOK)
			c.ui.Entry().WithField("user", res.Username).WithField("role", res.Role).Info("admin logged in")
		},
		Next: func() *flow.Op {
			if !ok || !c.sess.Can(session.ManageOrders) {
				return nil
			}
			return c.ordersOp()
		},
	}, nil
}

// Logout drops the session and caches right away; the remote call only
// revokes the token.
func (c *Console) Logout() (*flow.Op, error) {
	if !c.sess.Authenticated() {
		return nil, ErrNotLoggedIn
	}
	token := c.sess.Token()
	c.reset()
	c.ui.Info(locale.LoggedOut)
	return &flow.Op{
		Name: remote.ActAdminLogout,
		Run:  func(ctx context.Context) error { return c.api.AdminLogout(ctx, token) },
		Done: func(err error) {
			if err != nil {
				c.ui.Entry().WithError(err).Warn("admin logout failed")
			}
		},
	}, nil
}

func (c *Console) reset() {
	c.sess.Reset()
	c.orders, c.products, c.logs = nil, nil, nil
	c.pending = nil
	c.imageURL = ""
	c.set(ViewOrders)
	c.ui.Overlays.Finalize()
}
