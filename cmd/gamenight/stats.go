package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mmynk/gamenight/internal/metrics"
)

func newStatsCmd(a *app) *cobra.Command {
	var exposition bool
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show group totals",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if exposition {
				return metrics.WriteText(out, a.registry)
			}

			stats, err := a.ledger.Stats(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "Players:        %d\n", stats.Players)
			fmt.Fprintf(out, "Total points:   %d\n", stats.TotalPoints)
			fmt.Fprintf(out, "Games played:   %d\n", stats.TotalGames)
			fmt.Fprintf(out, "Average points: %.1f\n", stats.AveragePoints)
			return nil
		},
	}
	cmd.Flags().BoolVar(&exposition, "prometheus", false, "Print every metric in the Prometheus text format")
	return cmd
}
