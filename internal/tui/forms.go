package tui

import (
	"fmt"
	"os"
	"strings"

	"github.com/ariefcatur/stockfront/internal/admin"
	"github.com/ariefcatur/stockfront/internal/flow"
	"github.com/ariefcatur/stockfront/internal/locale"
	"github.com/ariefcatur/stockfront/internal/overlay"
	"github.com/ariefcatur/stockfront/internal/remote"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type formKind int

const (
	formStockIn formKind = iota
	formStockAdjust
	formAddProduct
	formEditProduct
	formUpload
	formHistoryQuery
)

type field struct{ label, value string }

// form is the prompt/product sheet: labelled inputs, tab to move, enter on
// the last one submits.
type form struct {
	kind   formKind
	title  string
	labels []string
	inputs []textinput.Model
	idx    int
	active bool
}

func newForm(kind formKind, title string, fields ...field) *form {
	f := &form{kind: kind, title: title, active: true}
	for _, fd := range fields {
		in := textinput.New()
		in.Placeholder = fd.label
		in.SetValue(fd.value)
		in.Width = 32
		f.labels = append(f.labels, fd.label)
		f.inputs = append(f.inputs, in)
	}
	return f
}

func (f *form) overlay() string {
	if f.kind == formAddProduct || f.kind == formEditProduct {
		return overlay.ProductForm
	}
	return overlay.Prompt
}

func (f *form) hasActive() bool { return f.kind == formAddProduct || f.kind == formEditProduct }

func (f *form) value(i int) string { return strings.TrimSpace(f.inputs[i].Value()) }

func (f *form) focus() tea.Cmd {
	for i := range f.inputs {
		f.inputs[i].Blur()
	}
	return f.inputs[f.idx].Focus()
}

func (f *form) move(delta int) tea.Cmd {
	f.idx = (f.idx + delta + len(f.inputs)) % len(f.inputs)
	return f.focus()
}

func (f *form) view() string {
	var b strings.Builder
	b.WriteString(sheetTitle.Render(f.title) + "\n")
	for i, in := range f.inputs {
		b.WriteString(fmt.Sprintf("%-12s %s\n", f.labels[i], in.View()))
	}
	if f.hasActive() {
		mark := "[ ]"
		if f.active {
			mark = "[x]"
		}
		b.WriteString(fmt.Sprintf("%-12s %s\n", "active", mark))
	}
	b.WriteString("\n")
	hint := "tab next • enter submit • esc cancel"
	if f.hasActive() {
		hint += " • ctrl+t active"
	}
	b.WriteString(helpStyle.Render(hint))
	return b.String()
}

// openForm shows f and focuses its first input.
func (m *Model) openForm(f *form) tea.Cmd {
	m.form = f
	m.app.Overlays.Open(f.overlay())
	return f.focus()
}

func (m *Model) closeForm() {
	if m.form == nil {
		return
	}
	id := m.form.overlay()
	m.form = nil
	m.app.Overlays.Close(id)
}

func (m *Model) formKey(k tea.KeyMsg) tea.Cmd {
	f := m.form
	if f == nil {
		return m.dismiss()
	}
	switch k.String() {
	case "esc":
		m.closeForm()
		return nil
	case "tab", "down":
		return f.move(1)
	case "shift+tab", "up":
		return f.move(-1)
	case "ctrl+t":
		f.active = !f.active
		return nil
	case "enter":
		if f.idx < len(f.inputs)-1 {
			return f.move(1)
		}
		return m.submitForm(f)
	}
	var cmd tea.Cmd
	f.inputs[f.idx], cmd = f.inputs[f.idx].Update(k)
	return cmd
}

// submitForm hands the values to the console. A refusal leaves the form
// open; the console already showed why.
func (m *Model) submitForm(f *form) tea.Cmd {
	c := m.app.Admin
	var (
		op  *flow.Op
		err error
	)
	switch f.kind {
	case formStockIn:
		op, err = c.StockIn(admin.StockInForm{ProductID: f.value(0), Qty: f.value(1), Reason: f.value(2)})
	case formStockAdjust:
		op, err = c.StockAdjust(admin.StockAdjustForm{ProductID: f.value(0), NewQty: f.value(1), Reason: f.value(2)})
	case formAddProduct:
		op, err = c.AddProduct(admin.ProductForm{
			ProductID: f.value(0), Name: f.value(1), Price: f.value(2), Stock: f.value(3),
			Image: f.value(4), Description: f.value(5), Active: f.active,
		})
	case formEditProduct:
		op, err = c.UpdateProduct(admin.ProductForm{
			ProductID: f.value(0), Name: f.value(1), Price: f.value(2),
			Image: f.value(3), Description: f.value(4), Active: f.active,
		})
	case formUpload:
		path := f.value(0)
		data, rerr := os.ReadFile(path)
		if rerr != nil {
			m.app.UI().Fail("readImage", rerr, locale.ImageUploadFailed)
			return nil
		}
		op, err = c.UploadImage(remote.Image{Data: data, Filename: path})
	case formHistoryQuery:
		c.History.Query = f.value(0)
		m.closeForm()
		m.adminCursor = 0
		return nil
	}
	if err != nil {
		return nil
	}
	m.closeForm()
	return m.run(op)
}
