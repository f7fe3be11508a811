package main

import (
	"github.com/ariefcatur/stockfront/internal/config"
	kafkax "github.com/ariefcatur/stockfront/internal/kafka"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

func eventsCommand() *cli.Command {
	return &cli.Command{
		Name:  "events",
		Usage: "tail the activity topic and log every event",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "group", Value: "stockfront-events", EnvVars: []string{"STOCKFRONT_EVENTS_GROUP"}},
			&cli.IntFlag{Name: "workers", Value: 2},
		},
		Action: func(c *cli.Context) error {
			cfg, err := loadConfig(c)
			if err != nil {
				return err
			}
			return tailEvents(c, cfg)
		},
	}
}

func tailEvents(c *cli.Context, cfg config.Config) error {
	brokers := cfg.Brokers()
	if len(brokers) == 0 {
		return errors.New("STOCKFRONT_KAFKA_BROKERS is not set")
	}
	log, done, err := newLogger(cfg, false)
	if err != nil {
		return err
	}
	defer done()

	cons := kafkax.NewConsumer(brokers, c.String("group"), cfg.KafkaTopic, c.Int("workers"), log)
	log.WithField("topic", cfg.KafkaTopic).Info("tailing activity events")
	if err := cons.Start(c.Context, kafkax.LogHandler(log)); err != nil && c.Context.Err() == nil {
		return err
	}
	return nil
}
