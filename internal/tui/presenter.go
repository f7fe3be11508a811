package tui

// presenter tracks what the overlay stack wants on screen. Rendering reads
// the stack directly; this only keeps the backdrop's dismiss handler.
type presenter struct {
	visible bool
	dismiss func()
}

func (p *presenter) Show(string) {}

func (p *presenter) Hide(string) {}

func (p *presenter) SyncBackdrop(visible bool, dismiss func()) {
	p.visible = visible
	p.dismiss = dismiss
}

// Dismiss is what esc or a click outside a sheet does.
func (p *presenter) Dismiss() bool {
	if !p.visible || p.dismiss == nil {
		return false
	}
	p.dismiss()
	return true
}
