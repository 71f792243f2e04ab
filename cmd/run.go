package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/its-aleezA/cpu-scheduling-simulator/config"
	"github.com/its-aleezA/cpu-scheduling-simulator/internal/report"
	"github.com/its-aleezA/cpu-scheduling-simulator/internal/schedulers"
)

func newRunCmd() *cobra.Command {
	var (
		workload   workloadOptions
		policyName string
		asJSON     bool
	)
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Simulate one scheduling policy",
		Example: `  cpusched run -p srtf -f workload.yaml
  cpusched run -p 5 -n 6 --seed 42`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if policyName == "" {
				policyName = config.GetSchedulerConfig().DefaultPolicy
			}
			policy, err := schedulers.ParsePolicy(policyName)
			if err != nil {
				return err
			}
			request, err := workload.load(policy.UsesPriority())
			if err != nil {
				return err
			}
			response, err := schedulers.Schedule(cmd.Context(), policy, request)
			if err != nil {
				return fmt.Errorf("simulation failed: %w", err)
			}

			out := cmd.OutOrStdout()
			if asJSON {
				encoder := json.NewEncoder(out)
				encoder.SetIndent("", "  ")
				return encoder.Encode(response)
			}
			report.Write(out, response)
			return nil
		},
	}
	workload.bind(cmd)
	cmd.Flags().StringVarP(&policyName, "policy", "p", "", "fcfs, sjf, srtf, priority, priority-preemptive or 1-5")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the response as JSON")
	return cmd
}
