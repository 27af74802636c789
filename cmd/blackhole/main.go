package main

import (
	"fmt"
	"log/slog"
	"os"

	"black-hole/internal/app"
	"black-hole/internal/logging"
	"black-hole/internal/session"
	"black-hole/internal/sims/blackhole"

	"github.com/spf13/cobra"
)

var (
	version = "0.1.0-dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cfg := app.NewConfig()
	rootCmd := &cobra.Command{
		Use:   "blackhole",
		Short: "Particles orbiting and falling into a gravity well",
		Long: `blackhole simulates particles spiralling into a black hole.

Run it in a window (gui), in the terminal (tui) or headless (run). Every
host reads the same flags; --set key=value overrides any tunable listed by
'blackhole params'.`,
		SilenceUsage: true,
	}
	cfg.Bind(rootCmd.PersistentFlags())

	rootCmd.AddCommand(
		newVersionCmd(),
		newGUICmd(cfg),
		newTUICmd(cfg),
		newRunCmd(cfg),
		newParamsCmd(cfg),
		newSweepCmd(cfg),
	)
	return rootCmd
}

func newLogger(cmd *cobra.Command, cfg *app.Config) *slog.Logger {
	return logging.NewLogger(cfg.LogLevel, cmd.ErrOrStderr())
}

// persist writes the session unless sessions are disabled.
func persist(cfg *app.Config, sim *blackhole.Simulation, log *slog.Logger) error {
	if cfg.NoSession {
		return nil
	}
	path, err := cfg.SessionPath()
	if err != nil {
		return err
	}
	if err := session.Save(path, sim.State()); err != nil {
		return err
	}
	log.Info("session saved", "path", path, "particles", len(sim.Particles()))
	return nil
}
