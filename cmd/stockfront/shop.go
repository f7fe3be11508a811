package main

import (
	"github.com/ariefcatur/stockfront/internal/tui"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/urfave/cli/v2"
)

func shopCommand() *cli.Command {
	return &cli.Command{
		Name:  "shop",
		Usage: "open the terminal storefront",
		Action: func(c *cli.Context) error {
			e, deps, err := setup(c, true)
			if err != nil {
				return err
			}
			defer e.Close()

			m := tui.New(c.Context, deps)
			e.log.WithField("remote", e.cfg.RemoteURL).Info("storefront starting")
			_, err = tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion(), tea.WithContext(c.Context)).Run()
			return err
		},
	}
}
