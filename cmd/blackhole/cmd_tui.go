package main

import (
	"context"
	"errors"
	"fmt"

	"black-hole/internal/app"
	"black-hole/internal/tui"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"
)

func newTUICmd(cfg *app.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Run the simulation inside the terminal",
		RunE: func(cmd *cobra.Command, args []string) error {
			log := newLogger(cmd, cfg)
			sim, err := app.Setup(cfg, log)
			if err != nil {
				return err
			}

			screen, err := tcell.NewScreen()
			if err != nil {
				return fmt.Errorf("opening terminal: %w", err)
			}
			if err := screen.Init(); err != nil {
				return fmt.Errorf("initializing terminal: %w", err)
			}

			ctx, stop := signalContext(cmd.Context())
			defer stop()

			runErr := tui.New(screen, sim, cfg.TPS, cfg.Seed, log).Run(ctx)
			screen.Fini()
			if runErr != nil && !errors.Is(runErr, context.Canceled) {
				return fmt.Errorf("tui: %w", runErr)
			}
			return persist(cfg, sim, log)
		},
	}
}
