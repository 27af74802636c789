package main

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"black-hole/internal/app"

	"github.com/spf13/cobra"
)

func newParamsCmd(cfg *app.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "params",
		Short: "List the tunable parameters and their current values",
		RunE: func(cmd *cobra.Command, args []string) error {
			jsonOut, _ := cmd.Flags().GetBool("json")
			sim, err := app.Setup(cfg, newLogger(cmd, cfg))
			if err != nil {
				return err
			}
			snap := sim.Parameters()
			out := cmd.OutOrStdout()
			if jsonOut {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(snap)
			}

			tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			for _, group := range snap.Groups {
				fmt.Fprintf(tw, "%s\n", group.Name)
				for _, p := range group.Params {
					fmt.Fprintf(tw, "  %s\t%s\t%s\t%s\n", p.Key, p.Type, p.Value, p.Label)
				}
			}
			return tw.Flush()
		},
	}
	cmd.Flags().Bool("json", false, "output as JSON")
	return cmd
}
