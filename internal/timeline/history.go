package timeline

import (
	"sort"
	"strings"

	"github.com/ariefcatur/stockfront/internal/orders"
)

// HistoryFilter narrows the stock log view. Type "" or "ALL" keeps every type.
type HistoryFilter struct {
	Type        string
	Query       string
	OldestFirst bool
}

func (f HistoryFilter) Apply(logs []orders.StockLogEntry) []orders.StockLogEntry {
	typ := strings.ToUpper(strings.TrimSpace(f.Type))
	q := strings.ToLower(strings.TrimSpace(f.Query))
	out := make([]orders.StockLogEntry, 0, len(logs))
	for _, l := range logs {
		if typ != "" && typ != "ALL" && string(l.Type) != typ {
			continue
		}
		if q != "" && !matches(l, q) {
			continue
		}
		out = append(out, l)
	}
	sort.SliceStable(out, func(i, j int) bool {
		if f.OldestFirst {
			return out[i].Timestamp.Before(out[j].Timestamp.Time)
		}
		return out[i].Timestamp.After(out[j].Timestamp.Time)
	})
	return out
}

func matches(l orders.StockLogEntry, q string) bool {
	for _, s := range []string{l.ProductID, l.OrderID, l.By} {
		if strings.Contains(strings.ToLower(s), q) {
			return true
		}
	}
	return false
}
