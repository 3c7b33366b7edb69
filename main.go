package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"puzzlesearch/config"
	"puzzlesearch/engine"
	"puzzlesearch/experiments"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile string
	cfg     *config.Config
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		log.Error().Err(err).Msg("puzzlesearch failed")
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "puzzlesearch",
		Short:         "Solve puzzles with a best-first branch-and-bound search",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			v, err := config.NewViper(cfgFile)
			if err != nil {
				return err
			}
			bindFlags(v, cmd)
			cfg, err = config.Load(v)
			if err != nil {
				return err
			}
			return setupLogging(cfg)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (default is ./.puzzlesearch.yaml)")
	flags.String("level", "", "log level (trace, debug, info, warn, error)")
	flags.String("input-dir", "", "directory holding <puzzle>.txt inputs")
	flags.Int("goroutines", 0, "searches to run at once within a solve")
	flags.Int("expansion-limit", 0, "stop each search after this many expansions")

	rootCmd.AddCommand(newSolveCmd(), newListCmd(), newExperimentCmd())
	return rootCmd
}

// bindFlags lets explicitly set flags override the config file and environment.
func bindFlags(v *viper.Viper, cmd *cobra.Command) {
	keys := map[string]string{
		"level":           "log.level",
		"input-dir":       "input.dir",
		"goroutines":      "search.goroutines",
		"expansion-limit": "search.expansion_limit",
		"metrics-dir":     "metrics.dir",
	}
	for name, key := range keys {
		if f := cmd.Flags().Lookup(name); f != nil && f.Changed {
			v.Set(key, f.Value.String())
		}
	}
}

func setupLogging(c *config.Config) error {
	level, err := c.Level()
	if err != nil {
		return err
	}

	output := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	output.FormatLevel = func(i interface{}) string {
		return strings.ToUpper(fmt.Sprintf("| %-6s|", i))
	}

	zerolog.SetGlobalLevel(level)
	logger := zerolog.New(output).Level(level).With().Timestamp().Logger()
	log.Logger = logger
	logger.Debug().Msg("Debug logging is on")
	return nil
}

func newEngine() *engine.Engine {
	return engine.NewEngine(cfg.InputDir, cfg.Settings())
}

func newSolveCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "solve <puzzle> [part]",
		Short:     "Solve one or both parts of a puzzle",
		Args:      cobra.RangeArgs(1, 2),
		ValidArgs: engine.Names(),
		RunE: func(cmd *cobra.Command, args []string) error {
			parts := engine.Parts
			if len(args) == 2 {
				part, err := strconv.Atoi(args[1])
				if err != nil {
					return fmt.Errorf("invalid part %q: %w", args[1], err)
				}
				parts = []int{part}
			}

			start := time.Now()
			reports, err := newEngine().SolveParts(args[0], parts)
			if err != nil {
				return err
			}
			for _, report := range reports {
				fmt.Fprintln(cmd.OutOrStdout(), report.Answer.Value)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Elapsed: %dms\n", time.Since(start).Milliseconds())
			return nil
		},
	}
}

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the registered puzzles",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range engine.Names() {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
		},
	}
}

func newExperimentCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "experiment [puzzle...]",
		Short: "Compare short-circuit and exhaustive searches and store their metrics as CSV",
		RunE: func(cmd *cobra.Command, args []string) error {
			names := args
			if len(names) == 0 {
				names = engine.Names()
			}

			records, err := experiments.RunShortCircuitExperiment(newEngine(), names)
			if err != nil {
				return err
			}
			dir, err := experiments.Store(cfg.MetricsDir, experiments.ShortCircuitName, records)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Stored %d runs in %s\n", len(records), dir)
			return nil
		},
	}
	cmd.Flags().String("metrics-dir", "", "directory receiving experiment records")
	return cmd
}
