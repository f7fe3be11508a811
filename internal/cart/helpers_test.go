package cart

import (
	"io"

	"github.com/ariefcatur/stockfront/internal/flow"
	"github.com/ariefcatur/stockfront/internal/locale"
	"github.com/ariefcatur/stockfront/internal/notify"
	"github.com/ariefcatur/stockfront/internal/overlay"
	"github.com/sirupsen/logrus"
)

type recorder struct {
	kinds []notify.Kind
	msgs  []string
}

func (r *recorder) Toast(k notify.Kind, m string) {
	r.kinds = append(r.kinds, k)
	r.msgs = append(r.msgs, m)
}

func (r *recorder) count(k notify.Kind) int {
	n := 0
	for _, got := range r.kinds {
		if got == k {
			n++
		}
	}
	return n
}

func quietLog() *logrus.Entry {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return logrus.NewEntry(l)
}

func newUI() (flow.UI, *recorder) {
	r := &recorder{}
	return flow.UI{
		Overlays: overlay.NewStack(nil),
		Toasts:   r,
		Busy:     &notify.Busy{},
		Msg:      locale.For("en"),
		Log:      quietLog(),
	}, r
}
