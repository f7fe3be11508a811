package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/ariefcatur/stockfront/internal/app"
	"github.com/ariefcatur/stockfront/internal/locale"
	"github.com/ariefcatur/stockfront/internal/orders"
	"github.com/ariefcatur/stockfront/internal/overlay"
	"github.com/ariefcatur/stockfront/internal/search"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	title       = " stockfront "
	toggleLabel = "[/ search]"
)

// listed is what the product list currently shows.
func (m *Model) listed() []orders.Product {
	if !m.app.Search.Open() {
		return m.app.Products()
	}
	return m.app.Filter(m.listKeyword)
}

func (m *Model) shopKey(k tea.KeyMsg) tea.Cmd {
	s := m.app.Search
	if s.Open() && m.search.Focused() {
		switch k.String() {
		case "esc":
			m.closeSearch()
			return nil
		case "enter", "tab":
			m.search.Blur()
			return nil
		case "up", "down":
		default:
			before := m.search.Value()
			var cmd tea.Cmd
			m.search, cmd = m.search.Update(k)
			if v := m.search.Value(); v != before {
				token := s.Keystroke(v)
				return tea.Batch(cmd, tea.Tick(s.Debounce, func(time.Time) tea.Msg { return debounceMsg{token: token} }))
			}
			return cmd
		}
	}

	switch k.String() {
	case "q":
		return tea.Quit
	case "/":
		m.toggleSearch()
	case "esc":
		if s.Open() {
			m.closeSearch()
		}
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.listed())-1 {
			m.cursor++
		}
	case "enter":
		if list := m.listed(); m.cursor < len(list) {
			m.app.OpenProduct(list[m.cursor].ProductID)
		}
	case "c":
		m.lineCursor = 0
		m.app.OpenCart()
	case "r":
		return m.run(m.app.LoadProducts())
	case "a":
		op, err := m.app.EnterAdmin()
		if op == nil && err == nil && m.app.Overlays.IsOpen(overlay.AdminLogin) {
			m.login.reset()
			return m.login.focus()
		}
		m.adminCursor = 0
		return m.start(op, err)
	}
	return nil
}

func (m *Model) toggleSearch() {
	eff := m.app.Search.Toggle()
	m.syncSearch(eff)
}

func (m *Model) closeSearch() { m.syncSearch(m.app.Search.Close()) }

// syncSearch mirrors the controller into the input widget.
func (m *Model) syncSearch(eff search.Effect) {
	if !m.app.Search.Open() {
		m.search.Reset()
		m.search.Blur()
	}
	if eff.FocusInput {
		m.search.Focus()
	}
	if eff.Render {
		m.listKeyword = m.app.Search.Keyword()
		m.cursor = 0
	}
}

type zone struct {
	from, to int
	target   search.Target
}

// header renders the shop's top row and reports which columns belong to
// which part of it.
func (m *Model) header() (string, []zone) {
	var parts []string
	var zones []zone
	col := 0
	add := func(s string, t search.Target) {
		w := lipgloss.Width(s)
		parts = append(parts, s)
		zones = append(zones, zone{from: col, to: col + w, target: t})
		col += w
	}
	add(headerStyle.Render(title), search.TargetChrome)
	add(" ", search.TargetChrome)
	if m.app.Search.Open() {
		add(m.search.View(), search.TargetInput)
		add(" ", search.TargetChrome)
	}
	add(tabStyle.Render(toggleLabel), search.TargetToggle)
	add(dimStyle.Render(fmt.Sprintf("  cart %d (฿%d)", m.app.Cart.Count(), m.app.Cart.Total())), search.TargetChrome)
	return strings.Join(parts, ""), zones
}

// target classifies a click. Only the first row is header chrome.
func (m *Model) target(x, y int) search.Target {
	if y != 0 {
		return search.TargetOther
	}
	_, zones := m.header()
	for _, z := range zones {
		if x >= z.from && x < z.to {
			return z.target
		}
	}
	return search.TargetChrome
}

func (m *Model) mouse(msg tea.MouseMsg) tea.Cmd {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return nil
	}
	if m.app.Overlays.Len() > 0 {
		if msg.Y == 0 {
			m.dismiss()
		}
		return nil
	}
	if m.app.Mode() != app.ModeShop {
		return nil
	}
	switch t := m.target(msg.X, msg.Y); t {
	case search.TargetToggle:
		m.toggleSearch()
	case search.TargetInput:
		m.search.Focus()
	default:
		m.syncSearch(m.app.Search.PointerDown(t))
	}
	return nil
}

func (m *Model) shopView() string {
	var b strings.Builder
	msg := m.app.Msg
	list := m.listed()
	switch {
	case !m.app.Loaded() && m.app.Busy.Active():
		b.WriteString(dimStyle.Render(m.app.Busy.Label()))
	case len(list) == 0:
		b.WriteString(dimStyle.Render(msg.T(locale.NoProducts)))
	}
	for i, p := range list {
		line := fmt.Sprintf("%-6s %-28s %s", p.ProductID, p.Name, priceStyle.Render(fmt.Sprintf("฿%d", p.Price)))
		if !p.InStock() {
			line += " " + soldOutStyle.Render(msg.T(locale.OutOfStock))
		} else {
			line += dimStyle.Render(fmt.Sprintf("  x%d", p.Stock))
		}
		if i == m.cursor {
			line = cursorStyle.Render("› ") + line
		} else {
			line = "  " + line
		}
		b.WriteString(line + "\n")
	}
	return b.String()
}

const shopHelp = "↑/↓ move • enter open • / search • c cart • r reload • a admin • q quit"
