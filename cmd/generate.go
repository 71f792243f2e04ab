package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func newGenerateCmd() *cobra.Command {
	var (
		workload     workloadOptions
		withPriority bool
		output       string
	)
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Write a random workload as YAML",
		RunE: func(cmd *cobra.Command, args []string) error {
			if workload.random <= 0 {
				return fmt.Errorf("--random must be greater than 0")
			}
			request, err := workload.load(withPriority)
			if err != nil {
				return err
			}
			if output == "" {
				return request.Encode(cmd.OutOrStdout())
			}
			f, err := os.Create(output)
			if err != nil {
				return fmt.Errorf("failed to create %s: %w", output, err)
			}
			defer f.Close()
			return request.Encode(f)
		},
	}
	cmd.Flags().IntVarP(&workload.random, "random", "n", 5, "Number of processes")
	cmd.Flags().IntVar(&workload.maxBurst, "max-burst", 0, "Largest burst time (defaults to config)")
	cmd.Flags().Int64Var(&workload.seed, "seed", 0, "Random seed (0 uses config, then the clock)")
	cmd.Flags().BoolVar(&withPriority, "priority", false, "Assign random priorities")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Output file (stdout when empty)")
	return cmd
}
