package app

import (
	"github.com/ariefcatur/stockfront/internal/flow"
	"github.com/ariefcatur/stockfront/internal/overlay"
)

// EnterAdmin switches to the console. Without a session it opens the login
// sheet instead and returns a nil op.
func (a *App) EnterAdmin() (*flow.Op, error) {
	if !a.Session.Authenticated() {
		a.Overlays.Open(overlay.AdminLogin)
		return nil, nil
	}
	a.closeSearch()
	a.mode = ModeAdmin
	return a.Admin.Reload()
}

// Login runs the admin login; a successful one lands in the console.
func (a *App) Login(username, password string) (*flow.Op, error) {
	op, err := a.Admin.Login(username, password)
	if err != nil {
		return nil, err
	}
	done := op.Done
	op.Done = func(err error) {
		done(err)
		if a.Session.Authenticated() {
			a.closeSearch()
			a.mode = ModeAdmin
		}
	}
	return op, nil
}

// Logout ends the session and returns to the storefront.
func (a *App) Logout() (*flow.Op, error) {
	op, err := a.Admin.Logout()
	if err != nil {
		return nil, err
	}
	a.mode = ModeShop
	return op, nil
}

// ExitAdmin goes back to the storefront and keeps the session. The catalog
// is reloaded since admin work may have changed stock.
func (a *App) ExitAdmin() *flow.Op {
	if a.mode == ModeShop {
		return nil
	}
	a.mode = ModeShop
	a.Overlays.Finalize()
	return a.LoadProducts()
}

func (a *App) closeSearch() { a.Search.Close() }
