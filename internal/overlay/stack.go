// Package overlay keeps the LIFO stack of open sheets/modals and the single
// backdrop behind them.
package overlay

// Overlay ids used by the storefront and the admin console.
const (
	ProductDetail = "productDetail"
	QtySheet      = "qtySheet"
	CartSheet     = "cartSheet"
	OrderSuccess  = "orderSuccess"
	AdminLogin    = "adminLogin"
	Confirm       = "confirm"
	Prompt        = "prompt"
	ProductForm   = "productForm"
)

// Presenter makes surfaces visible. SyncBackdrop is called after every stack
// change; dismiss is nil when the backdrop is hidden.
type Presenter interface {
	Show(id string)
	Hide(id string)
	SyncBackdrop(visible bool, dismiss func())
}

type nopPresenter struct{}

func (nopPresenter) Show(string)               {}
func (nopPresenter) Hide(string)               {}
func (nopPresenter) SyncBackdrop(bool, func()) {}

type Stack struct {
	ids       []string
	presenter Presenter
}

func NewStack(p Presenter) *Stack {
	if p == nil {
		p = nopPresenter{}
	}
	return &Stack{presenter: p}
}

// Open is idempotent: an id already on the stack keeps its position.
func (s *Stack) Open(id string) {
	if id == "" {
		return
	}
	if !s.IsOpen(id) {
		s.ids = append(s.ids, id)
	}
	s.presenter.Show(id)
	s.syncBackdrop()
}

// Close removes id wherever it sits in the stack.
func (s *Stack) Close(id string) {
	idx := s.index(id)
	if idx < 0 {
		return
	}
	s.ids = append(s.ids[:idx], s.ids[idx+1:]...)
	s.presenter.Hide(id)
	s.syncBackdrop()
}

func (s *Stack) CloseTop() {
	top, ok := s.Top()
	if !ok {
		return
	}
	s.Close(top)
}

// Finalize drops every entry and force-hides the backdrop. Used after flows
// whose renders may have left the bookkeeping out of step with the screen.
func (s *Stack) Finalize() {
	ids := s.ids
	s.ids = nil
	for i := len(ids) - 1; i >= 0; i-- {
		s.presenter.Hide(ids[i])
	}
	s.presenter.SyncBackdrop(false, nil)
}

func (s *Stack) Top() (string, bool) {
	if len(s.ids) == 0 {
		return "", false
	}
	return s.ids[len(s.ids)-1], true
}

func (s *Stack) IsOpen(id string) bool { return s.index(id) >= 0 }

func (s *Stack) Len() int { return len(s.ids) }

func (s *Stack) BackdropVisible() bool { return len(s.ids) > 0 }

// IDs returns the stack bottom to top.
func (s *Stack) IDs() []string {
	out := make([]string, len(s.ids))
	copy(out, s.ids)
	return out
}

func (s *Stack) index(id string) int {
	for i, v := range s.ids {
		if v == id {
			return i
		}
	}
	return -1
}

func (s *Stack) syncBackdrop() {
	if len(s.ids) == 0 {
		s.presenter.SyncBackdrop(false, nil)
		return
	}
	s.presenter.SyncBackdrop(true, s.CloseTop)
}
