package main

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"irrigate/internal/logging"
	"irrigate/internal/sched"
)

var (
	flagConfig    string
	flagLogLevel  string
	flagLogFormat string

	cfg    sched.Config
	logger *slog.Logger
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "irrigate",
		Short: "Schedule watering tasks across prioritized regions",
		Long:  "irrigate loads a YAML plan of regions and their tasks and serves them in priority order.",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			cfg, err = sched.Load(flagConfig)
			if err != nil {
				return err
			}
			// flags win over the plan
			if cmd.Flags().Changed("log-level") {
				cfg.LogLevel = flagLogLevel
			}
			if cmd.Flags().Changed("log-format") {
				cfg.LogFormat = flagLogFormat
			}
			logger = logging.New(logging.ParseLevel(cfg.LogLevel), cfg.LogFormat)
			logger.Debug("loaded config", "path", flagConfig, "capacity", cfg.Capacity, "regions", len(cfg.Regions))
			return nil
		},
		SilenceUsage: true,
	}

	root.PersistentFlags().StringVarP(&flagConfig, "config", "c", "config.yml", "YAML plan of regions and tasks")
	root.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	root.PersistentFlags().StringVar(&flagLogFormat, "log-format", "text", "Log format (text, json)")

	root.AddCommand(
		newDrainCmd(),
		newDumpCmd(),
		newNthCmd(),
		newTasksCmd(),
	)
	return root
}

func newDrainCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "drain",
		Short: "Print every task, most urgent region first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var evicted int
			s, err := cfg.Build(
				sched.WithLogger(logger),
				sched.WithObserver(func(ev sched.StatusEvent) {
					if ev.Kind == sched.StatusEvict {
						evicted++
					}
				}),
			)
			if err != nil {
				return fmt.Errorf("build scheduler: %w", err)
			}

			var drained int
			for {
				t, ok := s.ExtractBestTask()
				if !ok {
					break
				}
				drained++
				fmt.Fprintln(cmd.OutOrStdout(), t)
			}
			logger.Info("drain complete", "tasks", drained, "regions_evicted", evicted)
			return nil
		},
	}
}

func newDumpCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dump",
		Short: "Print the region tree and every region's task heap",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := cfg.Build(sched.WithLogger(logger))
			if err != nil {
				return fmt.Errorf("build scheduler: %w", err)
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, s.Dump())
			for {
				r, ok := s.ExtractBest()
				if !ok {
					return nil
				}
				fmt.Fprintln(out, r.Dump())
			}
		},
	}
}

func newNthCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "nth N",
		Short: "Remove the region with the N-th smallest priority and print it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid rank %q: %w", args[0], err)
			}
			s, err := cfg.Build(sched.WithLogger(logger))
			if err != nil {
				return fmt.Errorf("build scheduler: %w", err)
			}
			r, ok := s.ExtractNth(n)
			if !ok {
				return fmt.Errorf("rank %d out of range [1, %d]", n, s.Len())
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, r.Dump())
			fmt.Fprintln(out, s.Dump())
			return nil
		},
	}
}

func newTasksCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tasks",
		Short: "List each region's queued tasks with their keys, region by region",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := cfg.Build(sched.WithLogger(logger))
			if err != nil {
				return fmt.Errorf("build scheduler: %w", err)
			}
			out := cmd.OutOrStdout()
			for {
				r, ok := s.ExtractBest()
				if !ok {
					return nil
				}
				fmt.Fprintf(out, "Region %d:\n", r.Priority())
				tasks := r.Tasks()
				if len(tasks) == 0 {
					fmt.Fprintln(out, "Empty queue")
					continue
				}
				key := r.PriorityFn()
				for _, t := range tasks {
					fmt.Fprintf(out, "(%d)%s\n", key(t), t)
				}
			}
		},
	}
}
