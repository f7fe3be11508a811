package devremote

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"mime"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"strings"

	"github.com/ariefcatur/stockfront/internal/inventory"
	"github.com/ariefcatur/stockfront/internal/orders"
	"github.com/ariefcatur/stockfront/internal/session"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

func (s *Server) products(*http.Request, url.Values) (any, error) {
	return s.Ledger.Products(), nil
}

func (s *Server) createOrder(_ *http.Request, form url.Values) (any, error) {
	var items []orders.OrderItem
	if err := json.Unmarshal([]byte(form.Get("items")), &items); err != nil || len(items) == 0 {
		return nil, refuse("items required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	// clientRef = idempotency key, sama seperti external_id
	ref := form.Get("clientRef")
	if id, ok := s.byRef[ref]; ok && ref != "" {
		if o := s.find(id); o != nil {
			return *o, nil
		}
	}

	total := 0
	for i, it := range items {
		if it.Qty <= 0 {
			return nil, refuse("invalid qty for %s", it.ProductID)
		}
		p, ok := s.Ledger.Get(it.ProductID)
		if !ok || !p.Active {
			return nil, refuse("product not available: %s", it.ProductID)
		}
		if p.Stock < it.Qty {
			return nil, refuse("stock not enough: %s", p.Name)
		}
		items[i].Name, items[i].Price = p.Name, p.Price
		total += p.Price * it.Qty
	}
	if claimed := form.Get("total"); claimed != "" && claimed != strconv.Itoa(total) {
		s.log.WithField("claimed", claimed).WithField("total", total).Info("client total corrected")
	}

	s.seq++
	now := orders.Timestamp{Time: s.Now().UTC()}
	o := &orders.Order{
		OrderID:   fmt.Sprintf("ORD-%s-%06d", now.Format("20060102"), s.seq),
		Items:     items,
		Total:     total,
		Status:    orders.StatusPending,
		CreatedAt: now,
		UpdatedAt: now,
	}
	s.orders = append(s.orders, o)
	if ref != "" {
		s.byRef[ref] = o.OrderID
	}
	return *o, nil
}

func (s *Server) find(id string) *orders.Order {
	for _, o := range s.orders {
		if o.OrderID == id {
			return o
		}
	}
	return nil
}

func (s *Server) adminLogin(_ *http.Request, form url.Values) (any, error) {
	u, ok := s.users[form.Get("username")]
	if !ok || u.Password != form.Get("password") {
		return nil, refuse("invalid username or password")
	}
	token := uuid.NewString()
	sess := &session.Session{}
	sess.Login(token, session.Actor{Name: u.Username, Role: u.Role})

	s.mu.Lock()
	s.sessions[token] = sess
	s.mu.Unlock()
	return map[string]string{"token": token, "username": u.Username, "role": string(u.Role)}, nil
}

func (s *Server) adminLogout(_ *http.Request, form url.Values) (any, error) {
	s.mu.Lock()
	delete(s.sessions, form.Get("token"))
	s.mu.Unlock()
	return nil, nil
}

func (s *Server) listOrders(_ *http.Request, form url.Values) (any, error) {
	if _, err := s.authorize(form, session.LoadOrders); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]orders.Order, 0, len(s.orders))
	for i := len(s.orders) - 1; i >= 0; i-- {
		out = append(out, *s.orders[i])
	}
	return out, nil
}

// decide approves or rejects a PENDING order. Approving deducts stock for
// every line at once and fails when any line is short.
func (s *Server) decide(to orders.Status) handlerFunc {
	action := session.RejectOrder
	if to == orders.StatusApproved {
		action = session.ApproveOrder
	}
	return func(_ *http.Request, form url.Values) (any, error) {
		actor, err := s.authorize(form, action)
		if err != nil {
			return nil, err
		}
		s.mu.Lock()
		defer s.mu.Unlock()
		o := s.find(form.Get("orderId"))
		if o == nil {
			return nil, refuse("order not found")
		}
		if !orders.CanTransition(o.Status, to) {
			return nil, refuse("order %s is already %s", o.OrderID, o.Status)
		}
		if to == orders.StatusApproved {
			ok, short, err := s.Ledger.ReserveAll(o.OrderID, o.Items, actor.Name)
			if err != nil {
				return ledgerResult(orders.StockLogEntry{}, err)
			}
			if !ok {
				return nil, refuse("stock not enough: %s", describe(short))
			}
			o.ApprovedBy = actor.Name
		} else {
			o.RejectedBy = actor.Name
		}
		o.Status = to
		o.UpdatedAt = orders.Timestamp{Time: s.Now().UTC()}
		return *o, nil
	}
}

func describe(short []inventory.Shortage) string {
	parts := make([]string, 0, len(short))
	for _, sh := range short {
		parts = append(parts, fmt.Sprintf("%s (need %d, have %d)", sh.ProductID, sh.Required, sh.Available))
	}
	return strings.Join(parts, ", ")
}

func (s *Server) stockIn(_ *http.Request, form url.Values) (any, error) {
	actor, err := s.authorize(form, session.StockIn)
	if err != nil {
		return nil, err
	}
	qty, err := strconv.Atoi(form.Get("qty"))
	if err != nil {
		return nil, refuse("qty must be a number")
	}
	return ledgerResult(s.Ledger.StockIn(form.Get("productId"), qty, actor.Name, form.Get("reason")))
}

func (s *Server) stockAdjust(_ *http.Request, form url.Values) (any, error) {
	actor, err := s.authorize(form, session.StockAdjust)
	if err != nil {
		return nil, err
	}
	qty, err := strconv.Atoi(form.Get("newQty"))
	if err != nil {
		return nil, refuse("newQty must be a number")
	}
	return ledgerResult(s.Ledger.Adjust(form.Get("productId"), qty, actor.Name, form.Get("reason")))
}

// ledgerResult turns ledger validation errors into refusals.
func ledgerResult(e orders.StockLogEntry, err error) (any, error) {
	switch {
	case err == nil:
		return e, nil
	case errors.Is(err, inventory.ErrUnknownProduct), errors.Is(err, inventory.ErrBadQty),
		errors.Is(err, inventory.ErrNegativeStock), errors.Is(err, inventory.ErrProductExists):
		return nil, refuse("%v", err)
	}
	return nil, err
}

func (s *Server) stockLogs(_ *http.Request, form url.Values) (any, error) {
	if _, err := s.authorize(form, session.LoadStockLogs); err != nil {
		return nil, err
	}
	return s.Ledger.Logs(), nil
}

func (s *Server) uploadImage(r *http.Request, form url.Values) (any, error) {
	if _, err := s.authorize(form, session.UploadImage); err != nil {
		return nil, err
	}
	data, err := base64.StdEncoding.DecodeString(form.Get("base64"))
	if err != nil || len(data) == 0 {
		return nil, refuse("invalid image data")
	}
	mt := form.Get("mimeType")
	if !strings.HasPrefix(mt, "image/") {
		return nil, refuse("not an image: %s", mt)
	}
	ext := ".bin"
	if exts, _ := mime.ExtensionsByType(mt); len(exts) > 0 {
		sort.Strings(exts)
		ext = exts[0]
	}
	name := uuid.NewString() + ext

	s.mu.Lock()
	s.images[name] = image{mime: mt, data: data}
	s.mu.Unlock()
	return map[string]string{"imageUrl": "http://" + r.Host + "/images/" + name}, nil
}

func (s *Server) addProduct(_ *http.Request, form url.Values) (any, error) {
	actor, err := s.authorize(form, session.AddProduct)
	if err != nil {
		return nil, err
	}
	p, err := productFrom(form, orders.Product{Active: true})
	if err != nil {
		return nil, err
	}
	if _, err := ledgerResult(orders.StockLogEntry{}, s.Ledger.Create(p, actor.Name)); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *Server) updateProduct(_ *http.Request, form url.Values) (any, error) {
	if _, err := s.authorize(form, session.UpdateProduct); err != nil {
		return nil, err
	}
	cur, ok := s.Ledger.Get(form.Get("productId"))
	if !ok {
		return nil, refuse("product not found")
	}
	p, err := productFrom(form, cur)
	if err != nil {
		return nil, err
	}
	if err := s.Ledger.Update(p); err != nil {
		return nil, err
	}
	out, _ := s.Ledger.Get(p.ProductID)
	return out, nil
}

// productFrom overlays the posted fields on base. Absent fields keep base.
func productFrom(form url.Values, base orders.Product) (orders.Product, error) {
	p := base
	if v := strings.TrimSpace(form.Get("productId")); v != "" {
		p.ProductID = v
	}
	if p.ProductID == "" {
		return p, refuse("productId required")
	}
	if v := strings.TrimSpace(form.Get("name")); v != "" {
		p.Name = v
	}
	if p.Name == "" {
		return p, refuse("name required")
	}
	for field, dst := range map[string]*int{"price": &p.Price, "stock": &p.Stock} {
		v := strings.TrimSpace(form.Get(field))
		if v == "" {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return p, refuse("%s must be a whole number >= 0", field)
		}
		*dst = n
	}
	if v := form.Get("active"); v != "" {
		b, err := strconv.ParseBool(strings.ToLower(v))
		if err != nil {
			return p, refuse("active must be true or false")
		}
		p.Active = b
	}
	if form.Has("image") {
		p.Image = form.Get("image")
	}
	if form.Has("description") {
		p.Description = form.Get("description")
	}
	return p, nil
}
