package tui

import (
	"context"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/ariefcatur/stockfront/internal/app"
	"github.com/ariefcatur/stockfront/internal/devremote"
	"github.com/ariefcatur/stockfront/internal/httpx"
	"github.com/ariefcatur/stockfront/internal/inventory"
	"github.com/ariefcatur/stockfront/internal/overlay"
	"github.com/ariefcatur/stockfront/internal/remote"
	"github.com/ariefcatur/stockfront/internal/search"
	"github.com/ariefcatur/stockfront/internal/storage"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newModel(t *testing.T) *Model {
	t.Helper()
	l := logrus.New()
	l.SetOutput(io.Discard)
	log := logrus.NewEntry(l)

	ledger := inventory.NewLedger()
	require.NoError(t, devremote.Seed(ledger))
	srv := httptest.NewServer(devremote.New(ledger, devremote.DefaultUsers(), log).Handler(httpx.Options{}))
	t.Cleanup(srv.Close)

	m := New(context.Background(), app.Deps{
		API:          remote.New(srv.URL, 5*time.Second, log),
		Store:        storage.NewMemory(),
		Log:          log,
		Locale:       "en",
		ToastTimeout: time.Minute,
		ToastMax:     10,
	})
	settle(t, m, m.run(m.app.Start(context.Background())))
	return m
}

// settle runs an op command and every follow-up it produces.
func settle(t *testing.T, m *Model, cmd tea.Cmd) {
	t.Helper()
	for cmd != nil {
		done, ok := cmd().(opDoneMsg)
		require.True(t, ok, "expected an op command")
		_, cmd = m.Update(done)
	}
}

func press(m *Model, keys ...tea.KeyMsg) tea.Cmd {
	var cmd tea.Cmd
	for _, k := range keys {
		_, cmd = m.Update(k)
	}
	return cmd
}

func runes(s string) tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)} }

var (
	enter = tea.KeyMsg{Type: tea.KeyEnter}
	down  = tea.KeyMsg{Type: tea.KeyDown}
	esc   = tea.KeyMsg{Type: tea.KeyEsc}
	tab   = tea.KeyMsg{Type: tea.KeyTab}
)

func click(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
}

func TestSearchRepaintsOnLatestToken(t *testing.T) {
	m := newModel(t)
	press(m, runes("/"))
	require.True(t, m.app.Search.Open())
	require.True(t, m.search.Focused())

	press(m, runes("0"), runes("0"), runes("2"))
	assert.Equal(t, "002", m.app.Search.Keyword())
	assert.Len(t, m.listed(), 4, "list waits for the debounce")

	m.Update(debounceMsg{token: 2})
	assert.Len(t, m.listed(), 4, "stale token")
	m.Update(debounceMsg{token: 3})
	require.Len(t, m.listed(), 1)
	assert.Equal(t, "P002", m.listed()[0].ProductID)
}

func TestHeaderClickClosesSearchUnlessTyping(t *testing.T) {
	m := newModel(t)
	press(m, runes("/"), runes("x"))

	m.Update(click(0, 0))
	assert.True(t, m.app.Search.Open(), "still typing")

	m.Update(debounceMsg{token: 1})
	m.Update(click(0, 4))
	assert.True(t, m.app.Search.Open(), "list clicks are not chrome")

	m.Update(click(0, 0))
	assert.False(t, m.app.Search.Open())
	assert.Empty(t, m.search.Value())
}

func TestToggleZoneFromHeader(t *testing.T) {
	m := newModel(t)
	_, zones := m.header()
	var toggle zone
	for _, z := range zones {
		if z.target == search.TargetToggle {
			toggle = z
		}
	}
	require.NotZero(t, toggle.to)
	m.Update(click(toggle.from, 0))
	assert.True(t, m.app.Search.Open())
}

func TestBuyFromKeyboard(t *testing.T) {
	m := newModel(t)
	a := m.app

	press(m, down, down, enter)
	require.Equal(t, []string{overlay.ProductDetail}, a.Overlays.IDs())
	press(m, enter, runes("+"))
	assert.Equal(t, 2, a.Add.Qty())
	press(m, enter)
	assert.Equal(t, 2, a.Cart.Count())
	assert.Zero(t, a.Overlays.Len())

	press(m, runes("c"))
	require.True(t, a.Overlays.IsOpen(overlay.CartSheet))
	settle(t, m, press(m, enter))

	assert.True(t, a.Cart.Empty())
	assert.Equal(t, []string{overlay.OrderSuccess}, a.Overlays.IDs())
	press(m, enter)
	assert.Zero(t, a.Overlays.Len())
}

func TestEscOnQtySheetCancels(t *testing.T) {
	m := newModel(t)
	press(m, enter, enter)
	require.True(t, m.app.Add.Selecting())

	press(m, esc)
	assert.False(t, m.app.Add.Selecting())
	assert.Equal(t, []string{overlay.ProductDetail}, m.app.Overlays.IDs())
	press(m, esc)
	assert.Zero(t, m.app.Overlays.Len())
}

func TestTypedQtyOverStockIsRefused(t *testing.T) {
	m := newModel(t)
	press(m, down, down, enter, enter)
	m.qty.SetValue("")
	press(m, runes("9"), enter)

	assert.True(t, m.app.Add.Selecting())
	assert.True(t, m.app.Cart.Empty())
}

func TestAdminLoginFromKeyboard(t *testing.T) {
	m := newModel(t)
	press(m, runes("a"))
	require.True(t, m.app.Overlays.IsOpen(overlay.AdminLogin))

	press(m, runes("owner"), tab, runes("owner123"))
	settle(t, m, press(m, enter))

	assert.Equal(t, app.ModeAdmin, m.app.Mode())
	assert.True(t, m.app.Session.Authenticated())
	assert.Contains(t, m.View(), "admin")

	settle(t, m, press(m, runes("2")))
	assert.Len(t, m.app.Admin.Products(), 5)

	settle(t, m, press(m, runes("b")))
	assert.Equal(t, app.ModeShop, m.app.Mode())
}
