package notify

// Busy is the loading indicator. Show while already shown keeps the first label.
type Busy struct {
	active bool
	label  string
}

func (b *Busy) Show(label string) {
	if b.active {
		return
	}
	b.active = true
	b.label = label
}

func (b *Busy) Hide() {
	b.active = false
	b.label = ""
}

func (b *Busy) Active() bool { return b.active }

func (b *Busy) Label() string { return b.label }
