package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ariefcatur/stockfront/internal/app"
	"github.com/ariefcatur/stockfront/internal/config"
	kafkax "github.com/ariefcatur/stockfront/internal/kafka"
	"github.com/ariefcatur/stockfront/internal/notify"
	"github.com/ariefcatur/stockfront/internal/orders"
	"github.com/ariefcatur/stockfront/internal/remote"
	"github.com/ariefcatur/stockfront/internal/storage"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a := &cli.App{
		Name:  "stockfront",
		Usage: "storefront and admin console for the stock sheet endpoint",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "remote", Usage: "endpoint URL (overrides STOCKFRONT_REMOTE_URL)"},
			&cli.StringFlag{Name: "locale", Usage: "message language: th or en"},
			&cli.StringFlag{Name: "log-level", Usage: "debug, info, warn, error"},
		},
		DefaultCommand: "shop",
		Commands:       commands(),
	}
	if err := a.RunContext(ctx, os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "stockfront:", err)
		os.Exit(1)
	}
}

func commands() []*cli.Command {
	return append([]*cli.Command{shopCommand(), eventsCommand()}, adminCommands()...)
}

// env is everything a command needs, built from config plus global flags.
type env struct {
	cfg     config.Config
	log     *logrus.Entry
	app     *app.App
	closers []func()
}

func (e *env) Close() {
	for i := len(e.closers) - 1; i >= 0; i-- {
		e.closers[i]()
	}
}

func loadConfig(c *cli.Context) (config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return cfg, err
	}
	if v := c.String("remote"); v != "" {
		cfg.RemoteURL = v
	}
	if v := c.String("locale"); v != "" {
		cfg.Locale = v
	}
	if v := c.String("log-level"); v != "" {
		cfg.LogLevel = v
	}
	return cfg, nil
}

// newLogger writes JSON to the log file when the terminal belongs to the
// TUI, text to stderr otherwise.
func newLogger(cfg config.Config, toFile bool) (*logrus.Entry, func(), error) {
	l := logrus.New()
	if lvl, err := logrus.ParseLevel(cfg.LogLevel); err == nil {
		l.SetLevel(lvl)
	}
	done := func() {}
	if toFile {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, nil, errors.Wrap(err, "open log file")
		}
		l.SetFormatter(&logrus.JSONFormatter{})
		l.SetOutput(f)
		done = func() { _ = f.Close() }
	} else {
		l.SetOutput(os.Stderr)
		l.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	}
	return l.WithField("service", cfg.ServiceName), done, nil
}

// setup opens storage and the activity publisher and builds deps for the app.
func setup(c *cli.Context, toFile bool) (*env, app.Deps, error) {
	cfg, err := loadConfig(c)
	if err != nil {
		return nil, app.Deps{}, err
	}
	log, closeLog, err := newLogger(cfg, toFile)
	if err != nil {
		return nil, app.Deps{}, err
	}
	e := &env{cfg: cfg, log: log, closers: []func(){closeLog}}

	store, err := storage.Open(c.Context, cfg.Storage())
	if err != nil {
		e.Close()
		return nil, app.Deps{}, errors.Wrapf(err, "cart storage %s", cfg.CartBackend)
	}
	e.closers = append(e.closers, func() { _ = store.Close() })

	var pub orders.Publisher = orders.NopPublisher{}
	if brokers := cfg.Brokers(); len(brokers) > 0 {
		// producer punya context sendiri supaya masih bisa flush setelah ctx utama cancel
		pctx, cancel := context.WithCancel(context.Background())
		prod := kafkax.NewProducer(brokers, cfg.KafkaTopic, 1024, log)
		prod.Start(pctx)
		pub = prod
		e.closers = append(e.closers, func() {
			prod.Close()
			prod.WaitClosed()
			cancel()
		})
	}

	deps := app.Deps{
		API:            remote.New(cfg.RemoteURL, cfg.HTTPTimeout, log),
		Store:          store,
		Publisher:      pub,
		Log:            log,
		Locale:         cfg.Locale,
		ToastTimeout:   cfg.ToastTimeout,
		ToastMax:       cfg.ToastMax,
		SearchDebounce: cfg.SearchDebounce,
		Producer:       cfg.ServiceName,
	}
	return e, deps, nil
}

// headless builds an app for one-shot commands.
func headless(c *cli.Context) (*env, error) {
	e, deps, err := setup(c, false)
	if err != nil {
		return nil, err
	}
	// satu perintah = satu batch pesan, jangan ada yang dibuang
	deps.ToastMax = 64
	deps.ToastTimeout = time.Hour
	e.app = app.New(deps)
	return e, nil
}

// report prints the toasts the flows produced.
func report(c *cli.Context, a *app.App) {
	for _, t := range a.Toasts.Drain() {
		w := c.App.Writer
		if t.Kind == notify.Error || t.Kind == notify.Warning {
			w = c.App.ErrWriter
		}
		fmt.Fprintf(w, "[%s] %s\n", t.Kind, t.Message)
	}
}
