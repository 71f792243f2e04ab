package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/its-aleezA/cpu-scheduling-simulator/internal/report"
	"github.com/its-aleezA/cpu-scheduling-simulator/internal/schedulers"
)

func newCompareCmd() *cobra.Command {
	var (
		workload workloadOptions
		detailed bool
	)
	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Run every policy on the same workload",
		RunE: func(cmd *cobra.Command, args []string) error {
			request, err := workload.load(true)
			if err != nil {
				return err
			}
			all, err := schedulers.ScheduleAll(cmd.Context(), request)
			if err != nil {
				return fmt.Errorf("simulation failed: %w", err)
			}

			out := cmd.OutOrStdout()
			if detailed {
				for _, response := range all {
					report.Write(out, response)
				}
				fmt.Fprintln(out)
			}
			report.WriteComparison(out, all)
			return nil
		},
	}
	workload.bind(cmd)
	cmd.Flags().BoolVarP(&detailed, "detailed", "d", false, "Print the full report of every policy")
	return cmd
}
