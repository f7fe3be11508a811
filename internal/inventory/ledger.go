// Package inventory is an in-memory stock ledger: products, their stock and
// an append-only log of every change.
package inventory

import (
	"sort"
	"sync"
	"time"

	"github.com/ariefcatur/stockfront/internal/orders"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

var (
	ErrUnknownProduct = errors.New("product not found")
	ErrProductExists  = errors.New("product already exists")
	ErrNegativeStock  = errors.New("stock must not be negative")
	ErrBadQty         = errors.New("qty must be greater than 0")
)

// Shortage describes one line that could not be filled.
type Shortage struct {
	ProductID string `json:"productId"`
	Required  int    `json:"required"`
	Available int    `json:"available"`
}

type Ledger struct {
	mu       sync.Mutex
	products map[string]*orders.Product
	order    []string
	logs     []orders.StockLogEntry
	reserved map[string]bool
	Now      func() time.Time
}

func NewLedger() *Ledger {
	return &Ledger{
		products: map[string]*orders.Product{},
		reserved: map[string]bool{},
		Now:      time.Now,
	}
}

func (l *Ledger) log(e orders.StockLogEntry) {
	e.LogID = uuid.NewString()
	e.Timestamp = orders.Timestamp{Time: l.Now().UTC()}
	l.logs = append(l.logs, e)
}

// Create adds p and writes a CREATE log for its opening stock.
func (l *Ledger) Create(p orders.Product, by string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if _, ok := l.products[p.ProductID]; ok {
		return errors.Wrap(ErrProductExists, p.ProductID)
	}
	if p.Stock < 0 {
		return ErrNegativeStock
	}
	cp := p
	l.products[p.ProductID] = &cp
	l.order = append(l.order, p.ProductID)
	l.log(orders.StockLogEntry{ProductID: p.ProductID, Type: orders.StockCreate, Qty: p.Stock, After: p.Stock, By: by})
	return nil
}

// Update replaces everything but the stock.
func (l *Ledger) Update(p orders.Product) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	cur, ok := l.products[p.ProductID]
	if !ok {
		return errors.Wrap(ErrUnknownProduct, p.ProductID)
	}
	p.Stock = cur.Stock
	*cur = p
	return nil
}

func (l *Ledger) Get(id string) (orders.Product, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	p, ok := l.products[id]
	if !ok {
		return orders.Product{}, false
	}
	return *p, true
}

// Products returns the catalog in creation order.
func (l *Ledger) Products() []orders.Product {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]orders.Product, 0, len(l.order))
	for _, id := range l.order {
		out = append(out, *l.products[id])
	}
	return out
}

func (l *Ledger) Logs() []orders.StockLogEntry {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]orders.StockLogEntry, len(l.logs))
	copy(out, l.logs)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Timestamp.After(out[j].Timestamp.Time) })
	return out
}

func (l *Ledger) StockIn(id string, qty int, by, reason string) (orders.StockLogEntry, error) {
	if qty <= 0 {
		return orders.StockLogEntry{}, ErrBadQty
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	p, ok := l.products[id]
	if !ok {
		return orders.StockLogEntry{}, errors.Wrap(ErrUnknownProduct, id)
	}
	before := p.Stock
	p.Stock += qty
	l.log(orders.StockLogEntry{ProductID: id, Type: orders.StockIn, Qty: qty, Before: before, After: p.Stock, By: by, Reason: reason})
	return l.logs[len(l.logs)-1], nil
}

// Adjust sets the stock to newQty; Qty on the log is the signed difference.
func (l *Ledger) Adjust(id string, newQty int, by, reason string) (orders.StockLogEntry, error) {
	if newQty < 0 {
		return orders.StockLogEntry{}, ErrNegativeStock
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	p, ok := l.products[id]
	if !ok {
		return orders.StockLogEntry{}, errors.Wrap(ErrUnknownProduct, id)
	}
	before := p.Stock
	p.Stock = newQty
	l.log(orders.StockLogEntry{ProductID: id, Type: orders.StockAdjust, Qty: newQty - before, Before: before, After: newQty, By: by, Reason: reason})
	return l.logs[len(l.logs)-1], nil
}

// ReserveAll cek semua item dulu baru potong stok; kalau ada yang kurang
// tidak ada yang berubah. Order yang sudah pernah di-reserve langsung ok.
func (l *Ledger) ReserveAll(orderID string, items []orders.OrderItem, by string) (bool, []Shortage, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.reserved[orderID] {
		return true, nil, nil
	}

	need := map[string]int{}
	var ids []string
	for _, it := range items {
		if it.Qty <= 0 {
			return false, nil, errors.Wrapf(ErrBadQty, "order %s product %s", orderID, it.ProductID)
		}
		if _, seen := need[it.ProductID]; !seen {
			ids = append(ids, it.ProductID)
		}
		need[it.ProductID] += it.Qty
	}

	var short []Shortage
	for _, id := range ids {
		p, ok := l.products[id]
		if !ok {
			return false, nil, errors.Wrap(ErrUnknownProduct, id)
		}
		if p.Stock < need[id] {
			short = append(short, Shortage{ProductID: id, Required: need[id], Available: p.Stock})
		}
	}
	if len(short) > 0 {
		return false, short, nil
	}

	for _, id := range ids {
		p := l.products[id]
		before := p.Stock
		p.Stock -= need[id]
		l.log(orders.StockLogEntry{ProductID: id, Type: orders.StockOut, Qty: need[id], Before: before, After: p.Stock, By: by, OrderID: orderID})
	}
	l.reserved[orderID] = true
	return true, nil, nil
}
