package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ariefcatur/stockfront/internal/locale"
	"github.com/ariefcatur/stockfront/internal/overlay"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// overlayKey routes keys to whichever surface is on top of the stack.
func (m *Model) overlayKey(top string, k tea.KeyMsg) tea.Cmd {
	switch top {
	case overlay.ProductDetail:
		return m.detailKey(k)
	case overlay.QtySheet:
		return m.qtyKey(k)
	case overlay.CartSheet:
		return m.cartKey(k)
	case overlay.OrderSuccess:
		switch k.String() {
		case "enter", "esc", "q":
			m.app.Checkout.DismissReceipt()
		}
		return nil
	case overlay.AdminLogin:
		return m.loginKey(k)
	case overlay.Confirm:
		return m.confirmKey(k)
	case overlay.Prompt, overlay.ProductForm:
		return m.formKey(k)
	}
	if k.String() == "esc" {
		return m.dismiss()
	}
	return nil
}

func (m *Model) detailKey(k tea.KeyMsg) tea.Cmd {
	switch k.String() {
	case "enter", "a":
		if m.app.Add.Begin() == nil {
			m.qty.SetValue(strconv.Itoa(m.app.Add.Qty()))
			return m.qty.Focus()
		}
	case "esc", "q":
		return m.dismiss()
	}
	return nil
}

func (m *Model) qtyKey(k tea.KeyMsg) tea.Cmd {
	f := m.app.Add
	switch k.String() {
	case "+", "right", "up":
		f.Inc()
	case "-", "left", "down":
		f.Dec()
	case "enter":
		f.SetQty(m.typedQty())
		if f.Confirm() == nil {
			m.qty.Blur()
		}
		return nil
	case "esc":
		f.Cancel()
		m.qty.Blur()
		return nil
	default:
		var cmd tea.Cmd
		m.qty, cmd = m.qty.Update(k)
		f.SetQty(m.typedQty())
		return cmd
	}
	m.qty.SetValue(strconv.Itoa(f.Qty()))
	return nil
}

// typedQty reads the qty input; anything unparsable is 0 and fails Confirm.
func (m *Model) typedQty() int {
	n, err := strconv.Atoi(strings.TrimSpace(m.qty.Value()))
	if err != nil {
		return 0
	}
	return n
}

func (m *Model) cartKey(k tea.KeyMsg) tea.Cmd {
	lines := m.app.Cart.Lines()
	var id string
	if m.lineCursor < len(lines) {
		id = lines[m.lineCursor].ProductID
	}
	switch k.String() {
	case "up", "k":
		if m.lineCursor > 0 {
			m.lineCursor--
		}
	case "down", "j":
		if m.lineCursor < len(lines)-1 {
			m.lineCursor++
		}
	case "+", "right":
		if id != "" {
			m.app.Edit.Step(id, 1)
		}
	case "-", "left":
		if id != "" {
			m.app.Edit.Step(id, -1)
		}
	case "x", "delete":
		if id != "" {
			m.app.Edit.Remove(id)
		}
	case "X":
		m.app.Edit.Clear()
	case "enter":
		return m.start(m.app.Checkout.Begin())
	case "esc", "q":
		return m.dismiss()
	}
	m.clampCursors()
	return nil
}

func (m *Model) confirmKey(k tea.KeyMsg) tea.Cmd {
	switch k.String() {
	case "y", "enter":
		return m.start(m.app.Admin.ConfirmPending())
	case "n", "esc", "q":
		m.app.Admin.CancelPending()
	}
	return nil
}

type loginForm struct {
	user, pass textinput.Model
	onPass     bool
}

func newLoginForm() loginForm {
	f := loginForm{user: textinput.New(), pass: textinput.New()}
	f.user.Placeholder = "username"
	f.pass.Placeholder = "password"
	f.pass.EchoMode = textinput.EchoPassword
	f.pass.EchoCharacter = '•'
	return f
}

func (f *loginForm) reset() {
	f.user.Reset()
	f.pass.Reset()
	f.onPass = false
}

func (f *loginForm) focus() tea.Cmd {
	if f.onPass {
		f.user.Blur()
		return f.pass.Focus()
	}
	f.pass.Blur()
	return f.user.Focus()
}

func (f *loginForm) blur() {
	f.user.Blur()
	f.pass.Blur()
}

func (m *Model) loginKey(k tea.KeyMsg) tea.Cmd {
	f := &m.login
	switch k.String() {
	case "esc":
		f.reset()
		return m.dismiss()
	case "tab", "shift+tab", "up", "down":
		f.onPass = !f.onPass
		return f.focus()
	case "enter":
		if !f.onPass {
			f.onPass = true
			return f.focus()
		}
		op, err := m.app.Login(f.user.Value(), f.pass.Value())
		if err == nil {
			f.pass.Reset()
		}
		m.adminCursor = 0
		return m.start(op, err)
	}
	var cmd tea.Cmd
	if f.onPass {
		f.pass, cmd = f.pass.Update(k)
	} else {
		f.user, cmd = f.user.Update(k)
	}
	return cmd
}

func (m *Model) overlayView(top string) string {
	msg := m.app.Msg
	var b strings.Builder
	switch top {
	case overlay.ProductDetail, overlay.QtySheet:
		p, ok := m.app.Add.Product()
		if !ok {
			return ""
		}
		b.WriteString(sheetTitle.Render(p.Name) + "\n")
		b.WriteString(fmt.Sprintf("%s  %s\n", dimStyle.Render(p.ProductID), priceStyle.Render(fmt.Sprintf("฿%d", p.Price))))
		if p.Description != "" {
			b.WriteString(p.Description + "\n")
		}
		b.WriteString(fmt.Sprintf("stock: %d\n\n", p.Stock))
		if top == overlay.QtySheet {
			b.WriteString("qty: " + m.qty.View() + "\n\n")
			b.WriteString(helpStyle.Render("+/- change • type a number • enter add • esc cancel"))
		} else {
			b.WriteString(helpStyle.Render("enter choose qty • esc back"))
		}

	case overlay.CartSheet:
		lines := m.app.Cart.Lines()
		b.WriteString(sheetTitle.Render(fmt.Sprintf("cart (%d)", len(lines))) + "\n")
		if len(lines) == 0 {
			b.WriteString(dimStyle.Render(msg.T(locale.CartEmpty)) + "\n")
		}
		for i, l := range lines {
			row := fmt.Sprintf("%-24s %3d × ฿%-6d ฿%d", l.Name, l.Qty, l.Price, l.Subtotal())
			if i == m.lineCursor {
				row = cursorStyle.Render("› ") + row
			} else {
				row = "  " + row
			}
			b.WriteString(row + "\n")
		}
		b.WriteString(fmt.Sprintf("\ntotal ฿%d\n\n", m.app.Cart.Total()))
		b.WriteString(helpStyle.Render("+/- qty • x remove • X clear • enter order • esc close"))

	case overlay.OrderSuccess:
		last, _ := m.app.Checkout.Last()
		b.WriteString(sheetTitle.Render(msg.T(locale.OrderCreated)) + "\n")
		if last.OrderID != "" {
			b.WriteString("order " + last.OrderID + "\n")
		}
		for _, it := range last.Items {
			b.WriteString(fmt.Sprintf("  %-24s %3d × ฿%d\n", it.Name, it.Qty, it.Price))
		}
		b.WriteString(fmt.Sprintf("\ntotal ฿%d\n\n", last.Total))
		b.WriteString(helpStyle.Render("enter close"))

	case overlay.AdminLogin:
		b.WriteString(sheetTitle.Render("admin") + "\n")
		b.WriteString(m.login.user.View() + "\n" + m.login.pass.View() + "\n\n")
		b.WriteString(helpStyle.Render("tab switch • enter login • esc cancel"))

	case overlay.Confirm:
		q, _ := m.app.Admin.PendingPrompt()
		b.WriteString(q + "\n\n")
		b.WriteString(helpStyle.Render("y confirm • n cancel"))

	case overlay.Prompt, overlay.ProductForm:
		if m.form != nil {
			b.WriteString(m.form.view())
		}
	}
	return sheetStyle.Render(b.String())
}
