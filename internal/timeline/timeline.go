// Package timeline merges stock logs and decided orders into one history,
// newest first. Everything here is a pure function of its inputs.
package timeline

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/ariefcatur/stockfront/internal/orders"
	"github.com/ariefcatur/stockfront/internal/session"
)

type Kind string

const (
	KindStock Kind = "STOCK"
	KindOrder Kind = "ORDER"
)

type Scope string

const (
	ScopeAll   Scope = "ALL"
	ScopeOrder Scope = "ORDER"
	ScopeStock Scope = "STOCK"
)

// ParseScope accepts any case; unknown values mean ALL.
func ParseScope(s string) Scope {
	switch Scope(strings.ToUpper(strings.TrimSpace(s))) {
	case ScopeOrder:
		return ScopeOrder
	case ScopeStock:
		return ScopeStock
	}
	return ScopeAll
}

type Event struct {
	ID      string
	Time    time.Time
	Kind    Kind
	Type    string
	Title   string
	Meta    string
	OrderID string
}

// Permit is satisfied by *session.Session.
type Permit interface {
	Can(session.Capability) bool
}

func Build(logs []orders.StockLogEntry, list []orders.Order, scope Scope, p Permit) []Event {
	if p == nil || !p.Can(session.ViewHistory) {
		return []Event{}
	}
	events := make([]Event, 0, len(logs)+len(list))
	if scope != ScopeOrder {
		for i, l := range logs {
			events = append(events, fromStock(i, l))
		}
	}
	if scope != ScopeStock {
		for _, o := range list {
			if o.Status.Terminal() {
				events = append(events, fromOrder(o))
			}
		}
	}
	sort.SliceStable(events, func(i, j int) bool { return events[i].Time.After(events[j].Time) })
	return events
}

func fromStock(i int, l orders.StockLogEntry) Event {
	id := l.LogID
	if id == "" {
		id = fmt.Sprintf("log-%d", i)
	}
	title := fmt.Sprintf("%s %s", l.Type, l.ProductID)
	switch l.Type {
	case orders.StockIn, orders.StockCreate:
		title += fmt.Sprintf(" +%d", l.Qty)
	case orders.StockOut:
		title += fmt.Sprintf(" -%d", l.Qty)
	case orders.StockAdjust:
		title += fmt.Sprintf(" =%d", l.After)
	}
	meta := []string{fmt.Sprintf("%d → %d", l.Before, l.After)}
	if l.By != "" {
		meta = append(meta, "by "+l.By)
	}
	if l.Reason != "" {
		meta = append(meta, l.Reason)
	}
	return Event{
		ID:      "stock:" + id,
		Time:    l.Timestamp.Time,
		Kind:    KindStock,
		Type:    string(l.Type),
		Title:   title,
		Meta:    strings.Join(meta, " · "),
		OrderID: l.OrderID,
	}
}

func fromOrder(o orders.Order) Event {
	meta := []string{fmt.Sprintf("total %d", o.Total)}
	if by := o.UpdatedBy(); by != "" {
		meta = append(meta, "by "+by)
	}
	return Event{
		ID:      "order:" + o.OrderID,
		Time:    o.LastChanged(),
		Kind:    KindOrder,
		Type:    string(o.Status),
		Title:   fmt.Sprintf("Order %s %s", o.OrderID, o.Status),
		Meta:    strings.Join(meta, " · "),
		OrderID: o.OrderID,
	}
}
