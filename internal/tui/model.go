// Package tui is the terminal front end: a bubbletea program over app.App.
// Update is the only goroutine that touches application state; remote calls
// run as tea.Cmds and come back as opDoneMsg.
package tui

import (
	"context"
	"time"

	"github.com/ariefcatur/stockfront/internal/app"
	"github.com/ariefcatur/stockfront/internal/flow"
	"github.com/ariefcatur/stockfront/internal/overlay"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const refreshEvery = 500 * time.Millisecond

type (
	opDoneMsg struct {
		op  *flow.Op
		err error
	}
	debounceMsg struct{ token uint64 }
	refreshMsg  struct{}
)

type Model struct {
	ctx       context.Context
	app       *app.App
	presenter *presenter

	width, height int
	cursor        int
	adminCursor   int
	lineCursor    int

	// listKeyword is the keyword the list was last painted with; it trails
	// the input by the debounce interval.
	listKeyword string

	search textinput.Model
	qty    textinput.Model
	login  loginForm
	form   *form
}

// New builds the application with the TUI as its overlay presenter.
func New(ctx context.Context, d app.Deps) *Model {
	p := &presenter{}
	d.Presenter = p
	m := &Model{ctx: ctx, app: app.New(d), presenter: p}

	m.search = textinput.New()
	m.search.Prompt = "🔍 "
	m.search.CharLimit = 64
	m.search.Width = 24

	m.qty = textinput.New()
	m.qty.CharLimit = 4
	m.qty.Width = 6

	m.login = newLoginForm()
	return m
}

func (m *Model) App() *app.App { return m.app }

func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.run(m.app.Start(m.ctx)), refresh())
}

func refresh() tea.Cmd {
	return tea.Tick(refreshEvery, func(time.Time) tea.Msg { return refreshMsg{} })
}

// run performs op.Run off the UI goroutine.
func (m *Model) run(op *flow.Op) tea.Cmd {
	if op == nil {
		return nil
	}
	ctx := m.ctx
	return func() tea.Msg {
		var err error
		if op.Run != nil {
			err = op.Run(ctx)
		}
		return opDoneMsg{op: op, err: err}
	}
}

// start runs op when the flow accepted the request. Refusals already
// produced their toast.
func (m *Model) start(op *flow.Op, err error) tea.Cmd {
	if err != nil {
		return nil
	}
	return m.run(op)
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil

	case refreshMsg:
		// prunes expired toasts on the next View
		m.app.Toasts.Active()
		return m, refresh()

	case opDoneMsg:
		next := msg.op.Finish(msg.err)
		m.clampCursors()
		return m, m.run(next)

	case debounceMsg:
		if m.app.Search.DebounceFired(msg.token) {
			m.listKeyword = m.app.Search.Keyword()
			m.cursor = 0
		}
		return m, nil

	case tea.MouseMsg:
		return m, m.mouse(msg)

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if top, ok := m.app.Overlays.Top(); ok {
			return m, m.overlayKey(top, msg)
		}
		if m.app.Mode() == app.ModeAdmin {
			return m, m.adminKey(msg)
		}
		return m, m.shopKey(msg)
	}
	return m, nil
}

func (m *Model) clampCursors() {
	if n := len(m.listed()); m.cursor >= n {
		m.cursor = max(n-1, 0)
	}
	if n := m.adminRows(); m.adminCursor >= n {
		m.adminCursor = max(n-1, 0)
	}
	if n := m.app.Cart.Len(); m.lineCursor >= n {
		m.lineCursor = max(n-1, 0)
	}
}

// dismiss closes the top overlay the way a backdrop tap does.
func (m *Model) dismiss() tea.Cmd {
	m.presenter.Dismiss()
	if !m.app.Overlays.IsOpen(overlay.AdminLogin) {
		m.login.blur()
	}
	return nil
}
