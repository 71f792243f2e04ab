package cmd

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/spf13/cobra"

	"github.com/its-aleezA/cpu-scheduling-simulator/config"
	"github.com/its-aleezA/cpu-scheduling-simulator/internal/requests"
	"github.com/its-aleezA/cpu-scheduling-simulator/internal/schedulers"
	"github.com/its-aleezA/cpu-scheduling-simulator/internal/tracing"
)

const version = "0.1.0"

var (
	configDir   string
	verbose     bool
	traceOutput string
)

var rootCmd = &cobra.Command{
	Use:   "cpusched",
	Short: "CPU scheduling simulator",
	Long: `Simulates FCFS, SJF (non-preemptive and preemptive) and Priority
(non-preemptive and preemptive) scheduling over a fixed set of processes and
reports completion, turnaround and waiting times with a Gantt chart.`,
	SilenceUsage:       true,
	PersistentPreRunE:  setup,
	PersistentPostRunE: teardown,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configDir, "config-dir", "./", "Directory containing config.yaml")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log every dispatch and completion")
	rootCmd.PersistentFlags().StringVar(&traceOutput, "trace", "", "Write OpenTelemetry spans to this file")

	rootCmd.AddCommand(newRunCmd(), newCompareCmd(), newGenerateCmd(), newServeCmd())
}

func setup(cmd *cobra.Command, args []string) error {
	config.ConfigPath = configDir
	cfg := config.GetSchedulerConfig()
	schedulers.SetVerbose(verbose || cfg.Verbose)

	output := traceOutput
	if output == "" && cfg.Tracing.Enabled {
		output = cfg.Tracing.Output
	}
	if traceOutput != "" || cfg.Tracing.Enabled {
		if err := tracing.Init("cpusched", version, output); err != nil {
			return fmt.Errorf("failed to initialise tracing: %w", err)
		}
	}
	return nil
}

func teardown(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return tracing.Shutdown(ctx)
}

// workloadOptions selects where processes come from: a file or the random generator.
type workloadOptions struct {
	file     string
	random   int
	maxBurst int
	seed     int64
}

func (o *workloadOptions) bind(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&o.file, "file", "f", "", "Workload file (.yaml, .yml, .json or .csv)")
	cmd.Flags().IntVarP(&o.random, "random", "n", 0, "Generate this many processes with sequential arrivals")
	cmd.Flags().IntVar(&o.maxBurst, "max-burst", 0, "Largest generated burst time (defaults to config)")
	cmd.Flags().Int64Var(&o.seed, "seed", 0, "Random seed for generated workloads (0 uses config, then the clock)")
}

func (o *workloadOptions) load(withPriority bool) (*requests.ScheduleRequests, error) {
	switch {
	case o.file != "" && o.random > 0:
		return nil, fmt.Errorf("--file and --random are mutually exclusive")
	case o.file != "":
		return requests.LoadFile(o.file)
	case o.random > 0:
		request := requests.Generate(o.random, o.resolveMaxBurst(), withPriority, o.rng())
		return &request, nil
	}
	return nil, fmt.Errorf("either --file or --random is required")
}

func (o *workloadOptions) resolveMaxBurst() int {
	if o.maxBurst > 0 {
		return o.maxBurst
	}
	return config.GetSchedulerConfig().Generator.MaxBurst
}

func (o *workloadOptions) rng() *rand.Rand {
	seed := o.seed
	if seed == 0 {
		seed = config.GetSchedulerConfig().Generator.Seed
	}
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}
