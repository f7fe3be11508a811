package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ariefcatur/stockfront/internal/admin"
	"github.com/ariefcatur/stockfront/internal/orders"
	"github.com/ariefcatur/stockfront/internal/timeline"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const tsLayout = "2006-01-02 15:04"

var (
	scopes      = []timeline.Scope{timeline.ScopeAll, timeline.ScopeOrder, timeline.ScopeStock}
	historyKind = []string{"ALL", "IN", "OUT", "ADJUST", "CREATE"}
)

func (m *Model) adminRows() int {
	c := m.app.Admin
	switch c.Current() {
	case admin.ViewProducts:
		return len(c.Products())
	case admin.ViewTimeline:
		return len(c.Timeline())
	case admin.ViewHistory:
		return len(c.HistoryEntries())
	}
	return len(c.Orders())
}

func (m *Model) switchView(v admin.View) tea.Cmd {
	m.adminCursor = 0
	return m.start(m.app.Admin.Switch(string(v)))
}

func (m *Model) adminKey(k tea.KeyMsg) tea.Cmd {
	c := m.app.Admin
	views := admin.Views()
	switch key := k.String(); key {
	case "q":
		return tea.Quit
	case "1", "2", "3", "4":
		i, _ := strconv.Atoi(key)
		return m.switchView(views[i-1])
	case "tab":
		for i, v := range views {
			if v == c.Current() {
				return m.switchView(views[(i+1)%len(views)])
			}
		}
	case "up", "k":
		if m.adminCursor > 0 {
			m.adminCursor--
		}
	case "down", "j":
		if m.adminCursor < m.adminRows()-1 {
			m.adminCursor++
		}
	case "r":
		return m.start(c.Reload())
	case "L":
		return m.start(m.app.Logout())
	case "esc", "b":
		return m.run(m.app.ExitAdmin())
	default:
		return m.viewKey(key)
	}
	return nil
}

// viewKey handles the keys that only mean something in one view.
func (m *Model) viewKey(key string) tea.Cmd {
	c := m.app.Admin
	switch c.Current() {
	case admin.ViewOrders:
		list := c.Orders()
		if m.adminCursor >= len(list) {
			return nil
		}
		o := list[m.adminCursor]
		switch key {
		case "a":
			_ = c.RequestApprove(o.OrderID)
		case "x":
			_ = c.RequestReject(o.OrderID)
		}

	case admin.ViewProducts:
		list := c.Products()
		var p orders.Product
		if m.adminCursor < len(list) {
			p = list[m.adminCursor]
		}
		switch key {
		case "i":
			return m.openForm(newForm(formStockIn, "stock in",
				field{"product", p.ProductID}, field{"qty", ""}, field{"reason", ""}))
		case "s":
			return m.openForm(newForm(formStockAdjust, "stock adjust",
				field{"product", p.ProductID}, field{"new qty", strconv.Itoa(p.Stock)}, field{"reason", ""}))
		case "n":
			return m.openForm(newForm(formAddProduct, "new product",
				field{"product id", ""}, field{"name", ""}, field{"price", ""}, field{"stock", "0"},
				field{"image", c.LastImageURL()}, field{"description", ""}))
		case "e":
			if p.ProductID == "" {
				return nil
			}
			image := p.Image
			if u := c.LastImageURL(); u != "" {
				image = u
			}
			f := newForm(formEditProduct, "edit product",
				field{"product id", p.ProductID}, field{"name", p.Name}, field{"price", strconv.Itoa(p.Price)},
				field{"image", image}, field{"description", p.Description})
			f.active = p.Active
			return m.openForm(f)
		case "u":
			return m.openForm(newForm(formUpload, "upload image", field{"file", ""}))
		}

	case admin.ViewTimeline:
		if key == "s" {
			for i, s := range scopes {
				if s == c.Scope {
					c.SetScope(string(scopes[(i+1)%len(scopes)]))
					break
				}
			}
			m.adminCursor = 0
		}

	case admin.ViewHistory:
		switch key {
		case "t":
			cur := strings.ToUpper(c.History.Type)
			next := historyKind[0]
			for i, t := range historyKind {
				if t == cur || (cur == "" && t == "ALL") {
					next = historyKind[(i+1)%len(historyKind)]
				}
			}
			c.History.Type = next
			m.adminCursor = 0
		case "o":
			c.History.OldestFirst = !c.History.OldestFirst
		case "/":
			return m.openForm(newForm(formHistoryQuery, "search history", field{"query", c.History.Query}))
		}
	}
	return nil
}

func (m *Model) adminHeader() string {
	c := m.app.Admin
	var tabs []string
	for i, v := range admin.Views() {
		label := fmt.Sprintf("%d %s", i+1, v)
		if v == c.Current() {
			tabs = append(tabs, activeTab.Render(label))
		} else {
			tabs = append(tabs, tabStyle.Render(label))
		}
	}
	who := ""
	if a, ok := c.Session().Actor(); ok {
		who = dimStyle.Render(fmt.Sprintf("  %s (%s)", a.Name, a.Role))
	}
	return headerStyle.Render(" admin ") + " " + lipgloss.JoinHorizontal(lipgloss.Top, tabs...) + who
}

func (m *Model) row(i int, s string) string {
	if i == m.adminCursor {
		return cursorStyle.Render("› ") + s + "\n"
	}
	return "  " + s + "\n"
}

func statusStyle(s orders.Status) lipgloss.Style {
	switch s {
	case orders.StatusApproved:
		return approvedStyle
	case orders.StatusRejected:
		return rejectedStyle
	}
	return pendingStyle
}

func (m *Model) adminView() string {
	c := m.app.Admin
	var b strings.Builder
	switch c.Current() {
	case admin.ViewOrders:
		for i, o := range c.Orders() {
			s := fmt.Sprintf("%-22s %s ฿%-7d %d items  %s", o.OrderID, statusStyle(o.Status).Render(fmt.Sprintf("%-8s", o.Status)),
				o.Total, len(o.Items), dimStyle.Render(o.CreatedAt.Format(tsLayout)))
			if by := o.UpdatedBy(); by != "" {
				s += dimStyle.Render(" by " + by)
			}
			b.WriteString(m.row(i, s))
		}

	case admin.ViewProducts:
		for i, p := range c.Products() {
			s := fmt.Sprintf("%-6s %-26s ฿%-6d stock %-4d", p.ProductID, p.Name, p.Price, p.Stock)
			if !p.Active {
				s += dimStyle.Render(" inactive")
			}
			b.WriteString(m.row(i, s))
		}

	case admin.ViewTimeline:
		b.WriteString(dimStyle.Render("scope "+string(c.Scope)) + "\n")
		for i, e := range c.Timeline() {
			b.WriteString(m.row(i, fmt.Sprintf("%s %-5s %-8s %s %s",
				dimStyle.Render(e.Time.Format(tsLayout)), e.Kind, e.Type, e.Title, dimStyle.Render(e.Meta))))
		}

	case admin.ViewHistory:
		h := c.History
		order := "newest first"
		if h.OldestFirst {
			order = "oldest first"
		}
		typ := h.Type
		if typ == "" {
			typ = "ALL"
		}
		b.WriteString(dimStyle.Render(fmt.Sprintf("type %s • query %q • %s", typ, h.Query, order)) + "\n")
		for i, l := range c.HistoryEntries() {
			s := fmt.Sprintf("%s %-6s %-6s %+4d  %d→%d  %s", dimStyle.Render(l.Timestamp.Format(tsLayout)),
				l.Type, l.ProductID, l.Qty, l.Before, l.After, l.By)
			if l.OrderID != "" {
				s += " " + l.OrderID
			}
			if l.Reason != "" {
				s += dimStyle.Render(" " + l.Reason)
			}
			b.WriteString(m.row(i, s))
		}
	}
	return b.String()
}

func (m *Model) adminHelp() string {
	base := "1-4/tab view • ↑/↓ move • r reload • b shop • L logout"
	switch m.app.Admin.Current() {
	case admin.ViewOrders:
		return "a approve • x reject • " + base
	case admin.ViewProducts:
		return "i stock in • s adjust • n new • e edit • u upload • " + base
	case admin.ViewTimeline:
		return "s scope • " + base
	case admin.ViewHistory:
		return "t type • / search • o order • " + base
	}
	return base
}
