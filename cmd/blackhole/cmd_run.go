package main

import (
	"fmt"

	"black-hole/internal/app"
	"black-hole/internal/logging"
	"black-hole/internal/session"

	"github.com/spf13/cobra"
)

func newRunCmd(cfg *app.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Step the simulation headless and report the counters",
		RunE: func(cmd *cobra.Command, args []string) error {
			steps, _ := cmd.Flags().GetInt("steps")
			savePath, _ := cmd.Flags().GetString("save")
			every, _ := cmd.Flags().GetInt("log-every")
			if steps < 0 {
				return fmt.Errorf("--steps must be non-negative, got %d", steps)
			}

			log := newLogger(cmd, cfg)
			sim, err := app.Setup(cfg, log)
			if err != nil {
				return err
			}
			ctx, stop := signalContext(cmd.Context())
			defer stop()

			log.Info("headless run started", "steps", steps, "seed", sim.Config().Seed)
			done := 0
			for ; done < steps; done++ {
				if ctx.Err() != nil {
					log.Warn("run interrupted", "completed", done)
					break
				}
				sim.Step()
				if every > 0 && (done+1)%every == 0 {
					log.Debug("progress", "step", done+1, "particles", len(sim.Particles()))
				}
				log.Log(ctx, logging.LevelTrace, "step", "n", done+1)
			}

			st := sim.Stats()
			log.Info("headless run finished",
				"steps", st.Steps, "particles", len(sim.Particles()),
				"absorbed", st.Absorbed, "killed", st.Killed, "clamped", st.Clamped,
				"spawned", st.Spawned, "reseeds", st.Reseeds)
			fmt.Fprintf(cmd.OutOrStdout(), "steps=%d particles=%d absorbed=%d killed=%d clamped=%d spawned=%d reseeds=%d\n",
				st.Steps, len(sim.Particles()), st.Absorbed, st.Killed, st.Clamped, st.Spawned, st.Reseeds)

			if savePath != "" {
				if err := session.Save(savePath, sim.State()); err != nil {
					return err
				}
				log.Info("state saved", "path", savePath)
			}
			return nil
		},
	}
	cmd.Flags().Int("steps", 600, "number of frames to simulate")
	cmd.Flags().String("save", "", "write the final state to this YAML file")
	cmd.Flags().Int("log-every", 0, "log progress at debug level every N steps")
	return cmd
}
