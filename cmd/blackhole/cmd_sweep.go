package main

import (
	"fmt"
	"runtime"
	"text/tabwriter"
	"time"

	"black-hole/internal/app"
	"black-hole/internal/sweep"

	"github.com/spf13/cobra"
)

func newSweepCmd(cfg *app.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "Simulate a grid of well settings in parallel and rank them",
		RunE: func(cmd *cobra.Command, args []string) error {
			steps, _ := cmd.Flags().GetInt("steps")
			workers, _ := cmd.Flags().GetInt("workers")
			gravities, _ := cmd.Flags().GetFloat64Slice("gravity")
			radii, _ := cmd.Flags().GetFloat64Slice("radius")
			top, _ := cmd.Flags().GetInt("top")
			maxParticles, _ := cmd.Flags().GetInt("max-particles")
			if len(gravities) == 0 || len(radii) == 0 {
				return fmt.Errorf("--gravity and --radius need at least one value")
			}

			log := newLogger(cmd, cfg)
			sim, err := app.Setup(cfg, log)
			if err != nil {
				return err
			}
			ctx, stop := signalContext(cmd.Context())
			defer stop()

			sets := sweep.Grid(gravities, radii, []bool{true, false})
			log.Info("sweep started", "sets", len(sets), "workers", workers, "steps", steps)
			start := time.Now()
			results, err := sweep.Run(ctx, sweep.Options{
				Base:         *sim.Config(),
				Steps:        steps,
				Workers:      workers,
				MaxParticles: maxParticles,
			}, sets)
			if err != nil {
				return err
			}
			log.Info("sweep finished", "elapsed", time.Since(start).Round(time.Millisecond))

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "rank\tabsorbed\tkilled\tclamped\tparticles\tmean dist\tsteps\tparams")
			for i, res := range results {
				if top > 0 && i >= top {
					break
				}
				ran := fmt.Sprint(res.Stats.Steps)
				if res.Runaway {
					ran += " (runaway)"
				}
				fmt.Fprintf(tw, "%d\t%d\t%d\t%d\t%d\t%.1f\t%s\t%s\n", i+1, res.Stats.Absorbed, res.Stats.Killed,
					res.Stats.Clamped, res.Particles, res.MeanDist, ran, res.Params)
			}
			return tw.Flush()
		},
	}
	cmd.Flags().Int("steps", 600, "ticks to simulate per scenario")
	cmd.Flags().Int("workers", runtime.NumCPU(), "number of worker goroutines")
	cmd.Flags().Float64Slice("gravity", []float64{250, 500, 1000, 2000}, "well gravity values to try")
	cmd.Flags().Float64Slice("radius", []float64{5, 10, 20}, "well radius values to try")
	cmd.Flags().Int("top", 5, "rows to print (0 prints all)")
	cmd.Flags().Int("max-particles", sweep.DefaultMaxParticles, "stop a scenario once its population exceeds this")
	return cmd
}
