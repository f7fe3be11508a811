// Package devremote is an in-memory stand-in for the script web endpoint. It
// speaks the same protocol: one POST URL, an "action" form field and a
// {success, data, error} JSON answer.
package devremote

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/ariefcatur/stockfront/internal/httpx"
	"github.com/ariefcatur/stockfront/internal/inventory"
	"github.com/ariefcatur/stockfront/internal/orders"
	"github.com/ariefcatur/stockfront/internal/session"
	"github.com/go-chi/chi/v5"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
)

// User is an admin account the endpoint accepts.
type User struct {
	Username string
	Password string
	Role     session.Role
}

type handlerFunc func(r *http.Request, form url.Values) (any, error)

type Server struct {
	Ledger *inventory.Ledger
	Now    func() time.Time

	log      *logrus.Entry
	requests *prometheus.CounterVec

	mu       sync.Mutex
	orders   []*orders.Order
	byRef    map[string]string
	users    map[string]User
	sessions map[string]*session.Session
	images   map[string]image
	seq      int

	actions map[string]handlerFunc
}

type image struct {
	mime string
	data []byte
}

// domainError becomes {success:false, error:msg} with HTTP 200, like the
// real endpoint.
type domainError struct{ msg string }

func (e *domainError) Error() string { return e.msg }

func refuse(format string, args ...any) error { return &domainError{msg: fmt.Sprintf(format, args...)} }

func New(ledger *inventory.Ledger, users []User, log *logrus.Entry) *Server {
	if ledger == nil {
		ledger = inventory.NewLedger()
	}
	if log == nil {
		log = logrus.NewEntry(logrus.StandardLogger())
	}
	s := &Server{
		Ledger:   ledger,
		Now:      time.Now,
		log:      log.WithField("component", "devremote"),
		byRef:    map[string]string{},
		users:    map[string]User{},
		sessions: map[string]*session.Session{},
		images:   map[string]image{},
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "devremote_requests_total",
			Help: "Requests handled by the dev endpoint, by action and outcome.",
		}, []string{"action", "outcome"}),
	}
	for _, u := range users {
		s.users[u.Username] = u
	}
	s.actions = map[string]handlerFunc{
		"products":           s.products,
		"createOrder":        s.createOrder,
		"adminLogin":         s.adminLogin,
		"adminLogout":        s.adminLogout,
		"orders":             s.listOrders,
		"approveOrder":       s.decide(orders.StatusApproved),
		"rejectOrder":        s.decide(orders.StatusRejected),
		"stockIn":            s.stockIn,
		"stockAdjust":        s.stockAdjust,
		"stockLogs":          s.stockLogs,
		"uploadProductImage": s.uploadImage,
		"addProduct":         s.addProduct,
		"updateProduct":      s.updateProduct,
	}
	return s
}

// Collectors is what the router's /metrics registry should carry.
func (s *Server) Collectors() []prometheus.Collector { return []prometheus.Collector{s.requests} }

// Register mounts the endpoint on "/" and "/exec" plus the image route.
func (s *Server) Register(r chi.Router) {
	r.Post("/", s.serve)
	r.Post("/exec", s.serve)
	r.Get("/images/{name}", s.serveImage)
}

// Handler is a ready router with the endpoint mounted, used by tests and the devremote command.
func (s *Server) Handler(o httpx.Options) http.Handler {
	if o.Registry == nil {
		o.Registry = prometheus.NewRegistry()
	}
	o.Registry.MustRegister(s.Collectors()...)
	r := httpx.NewRouter(s.log, o)
	s.Register(r)
	return r
}

func (s *Server) serve(w http.ResponseWriter, r *http.Request) {
	var err error
	if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		err = r.ParseMultipartForm(16 << 20)
	} else {
		err = r.ParseForm()
	}
	if err != nil {
		httpx.WriteJSON(w, http.StatusBadRequest, map[string]any{"success": false, "error": "bad form"})
		return
	}
	action := r.PostForm.Get("action")
	h, ok := s.actions[action]
	if !ok {
		s.requests.WithLabelValues("unknown", "refused").Inc()
		httpx.WriteJSON(w, http.StatusOK, map[string]any{"success": false, "error": "unknown action: " + action})
		return
	}

	data, err := h(r, r.PostForm)
	log := s.log.WithField("action", action)
	var de *domainError
	switch {
	case err == nil:
		s.requests.WithLabelValues(action, "ok").Inc()
		httpx.WriteJSON(w, http.StatusOK, map[string]any{"success": true, "data": data})
	case errors.As(err, &de):
		s.requests.WithLabelValues(action, "refused").Inc()
		log.WithField("reason", de.msg).Info("action refused")
		httpx.WriteJSON(w, http.StatusOK, map[string]any{"success": false, "error": de.msg})
	default:
		s.requests.WithLabelValues(action, "error").Inc()
		log.WithError(err).Error("action failed")
		httpx.WriteJSON(w, http.StatusInternalServerError, map[string]any{"success": false, "error": "internal error"})
	}
}

func (s *Server) serveImage(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	img, ok := s.images[chi.URLParam(r, "name")]
	s.mu.Unlock()
	if !ok {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", img.mime)
	_, _ = w.Write(img.data)
}

// authorize resolves the token and checks the action with the same
// capability table the client uses.
func (s *Server) authorize(form url.Values, a session.Action) (session.Actor, error) {
	s.mu.Lock()
	sess, ok := s.sessions[form.Get("token")]
	s.mu.Unlock()
	if !ok {
		return session.Actor{}, refuse("unauthorized")
	}
	if err := sess.Authorize(a); err != nil {
		return session.Actor{}, refuse("forbidden: %s", a)
	}
	actor, _ := sess.Actor()
	return actor, nil
}
