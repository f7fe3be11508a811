package flow

import (
	"errors"
	"testing"

	"github.com/ariefcatur/stockfront/internal/locale"
	"github.com/ariefcatur/stockfront/internal/notify"
	"github.com/ariefcatur/stockfront/internal/remote"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFailLogsKindAndPicksMessage(t *testing.T) {
	cases := map[string]struct {
		err  error
		kind string
		msg  string
	}{
		"network": {&remote.Error{Kind: remote.KindNetwork, Action: "orders", Err: errors.New("dial")}, "network", ""},
		"domain":  {&remote.Error{Kind: remote.KindDomain, Action: "orders", Message: "order locked"}, "domain", "order locked"},
		"local":   {errors.New("disk full"), "local", ""},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			logger, hook := test.NewNullLogger()
			toasts := notify.NewCenter(0, 5)
			msg := locale.For("en")
			ui := UI{Toasts: toasts, Msg: msg, Log: logrus.NewEntry(logger)}

			ui.Fail("orders", tc.err, locale.Failed)

			entry := hook.LastEntry()
			require.NotNil(t, entry)
			assert.Equal(t, tc.kind, entry.Data["kind"])
			active := toasts.Active()
			require.Len(t, active, 1)
			want := tc.msg
			if want == "" {
				want = msg.T(locale.Failed)
			}
			assert.Equal(t, want, active[0].Message)
			assert.Equal(t, notify.Error, active[0].Kind)
		})
	}
}
