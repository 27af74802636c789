package main

import (
	"fmt"

	"black-hole/internal/app"

	"github.com/spf13/cobra"
)

func newGUICmd(cfg *app.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "gui",
		Short: "Open the simulation in a window",
		RunE: func(cmd *cobra.Command, args []string) error {
			log := newLogger(cmd, cfg)
			sim, err := app.Setup(cfg, log)
			if err != nil {
				return err
			}
			if err := app.Run(sim, cfg, log); err != nil {
				return fmt.Errorf("gui: %w", err)
			}
			return persist(cfg, sim, log)
		},
	}
}
