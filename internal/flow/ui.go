package flow

import (
	"github.com/ariefcatur/stockfront/internal/locale"
	"github.com/ariefcatur/stockfront/internal/notify"
	"github.com/ariefcatur/stockfront/internal/overlay"
	"github.com/ariefcatur/stockfront/internal/remote"
	"github.com/sirupsen/logrus"
)

// UI is the slice of application state every flow reports to. All of it is
// owned by the UI goroutine.
type UI struct {
	Overlays *overlay.Stack
	Toasts   notify.Notifier
	Busy     *notify.Busy
	Msg      locale.Catalog
	Log      *logrus.Entry
}

func (u UI) Info(key locale.Key, args ...any)    { u.toast(notify.Info, key, args...) }
func (u UI) Success(key locale.Key, args ...any) { u.toast(notify.Success, key, args...) }
func (u UI) Warn(key locale.Key, args ...any)    { u.toast(notify.Warning, key, args...) }

func (u UI) toast(kind notify.Kind, key locale.Key, args ...any) {
	if u.Toasts != nil {
		u.Toasts.Toast(kind, u.Msg.T(key, args...))
	}
}

// Fail logs err and shows the endpoint's message for domain failures, the
// localized fallback for everything else.
func (u UI) Fail(op string, err error, fallback locale.Key) {
	if u.Log != nil {
		u.Log.WithError(err).WithFields(logrus.Fields{"op": op, "kind": failureKind(err)}).Error("flow failed")
	}
	if u.Toasts != nil {
		u.Toasts.Toast(notify.Error, remote.UserMessage(err, u.Msg.T(fallback)))
	}
}

func failureKind(err error) string {
	switch {
	case remote.IsNetwork(err):
		return "network"
	case remote.IsDomain(err):
		return "domain"
	}
	return "local"
}

func (u UI) ShowBusy(key locale.Key) {
	if u.Busy != nil {
		u.Busy.Show(u.Msg.T(key))
	}
}

func (u UI) HideBusy() {
	if u.Busy != nil {
		u.Busy.Hide()
	}
}

func (u UI) Entry() *logrus.Entry {
	if u.Log != nil {
		return u.Log
	}
	return logrus.NewEntry(logrus.StandardLogger())
}
