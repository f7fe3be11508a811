// Command devremote serves an in-memory stand-in for the stock sheet endpoint.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/ariefcatur/stockfront/internal/config"
	"github.com/ariefcatur/stockfront/internal/devremote"
	"github.com/ariefcatur/stockfront/internal/httpx"
	"github.com/ariefcatur/stockfront/internal/inventory"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "devremote:", err)
		os.Exit(1)
	}

	a := &cli.App{
		Name:  "devremote",
		Usage: "in-memory products/orders/stock endpoint for local work",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "addr", Value: cfg.DevRemoteAddr, EnvVars: []string{"DEVREMOTE_ADDR"}},
			&cli.IntFlag{Name: "rpm", Value: 600, Usage: "requests per minute per IP, 0 disables"},
			&cli.StringSliceFlag{Name: "origins", Usage: "allowed CORS origins"},
			&cli.BoolFlag{Name: "empty", Usage: "start without the demo catalog"},
		},
		Action: func(c *cli.Context) error {
			logger := logrus.New()
			logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
			if lvl, err := logrus.ParseLevel(cfg.LogLevel); err == nil {
				logger.SetLevel(lvl)
			}
			log := logger.WithField("service", "devremote")

			ledger := inventory.NewLedger()
			if !c.Bool("empty") {
				if err := devremote.Seed(ledger); err != nil {
					return errors.Wrap(err, "seed")
				}
			}
			srv := devremote.New(ledger, devremote.DefaultUsers(), log)
			h := srv.Handler(httpx.Options{
				RequestsPerMinute: c.Int("rpm"),
				AllowedOrigins:    c.StringSlice("origins"),
				Registry:          prometheus.NewRegistry(),
			})
			return httpx.Serve(c.Context, c.String("addr"), h, log)
		},
	}
	if err := a.RunContext(ctx, os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "devremote:", err)
		os.Exit(1)
	}
}
