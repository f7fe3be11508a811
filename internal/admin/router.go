// Package admin is the back-office console: view routing, the permission
// guard and every gated action. Remote state is never patched locally; a
// mutation is always followed by a refetch.
package admin

import (
	"strings"

	"github.com/ariefcatur/stockfront/internal/session"
)

type View string

const (
	ViewOrders   View = "orders"
	ViewProducts View = "products"
	ViewTimeline View = "timeline"
	ViewHistory  View = "history"
)

func Views() []View { return []View{ViewOrders, ViewProducts, ViewTimeline, ViewHistory} }

// ParseView falls back to orders for anything it does not know.
func ParseView(s string) View {
	v := View(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Views() {
		if v == known {
			return v
		}
	}
	return ViewOrders
}

// entryAction is the gate for entering a view. Products has none: the
// catalog is public.
func (v View) entryAction() (session.Action, bool) {
	switch v {
	case ViewOrders:
		return session.LoadOrders, true
	case ViewTimeline:
		return session.ViewTimeline, true
	case ViewHistory:
		return session.ViewHistoryLog, true
	}
	return 0, false
}

// Router holds the current view.
type Router struct {
	view View
}

func (r *Router) Current() View {
	if r.view == "" {
		return ViewOrders
	}
	return r.view
}

func (r *Router) set(v View) { r.view = v }
