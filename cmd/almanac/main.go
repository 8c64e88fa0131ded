// Package main is the entry point for the almanac CLI.
//
// It reads a seed almanac and prints the lowest location reachable from its
// seeds, read either as single seeds (part 1) or as seed ranges (part 2).
package main

import (
	"fmt"
	"os"

	"github.com/kn1dar1an/advent-of-code-solutions/internal/config"
	"github.com/kn1dar1an/advent-of-code-solutions/internal/log"
	"github.com/kn1dar1an/advent-of-code-solutions/table"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// Version information set via ldflags during build.
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// globalFlags are shared by every subcommand. Empty values leave the
// environment configuration untouched.
type globalFlags struct {
	envFile  string
	output   string
	logLevel string
}

func rootCmd() *cobra.Command {
	flags := &globalFlags{}
	var part int

	cmd := &cobra.Command{
		Use:   "almanac [file]",
		Short: "Find the lowest seed location in an almanac",
		Long: `Find the lowest location reachable from the seeds of an almanac.

With a file argument, almanac behaves like "almanac solve <file>".

Configuration is loaded in the following order (later sources override earlier):
  1. Default values
  2. .env file (if --env-file specified or .env exists in current directory)
  3. Environment variables
  4. Command line flags

Environment variables:
  ALMANAC_LOG_LEVEL    Log level: DEBUG, INFO, WARN, ERROR (default: INFO)
  ALMANAC_LOG_FORMAT   Log format: console, json (default: console)
  ALMANAC_OUTPUT       Result format: text, json, yaml (default: text)
  ALMANAC_WORKERS      Inputs solved at once by "batch" (default: 4)
  ALMANAC_COALESCE     Merge ranges between stages (default: true)`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return cmd.Help()
			}
			return runSolve(cmd, flags, args[0], part)
		},
	}

	cmd.PersistentFlags().StringVar(&flags.envFile, "env-file", "", "Path to .env file (default: .env in current directory)")
	cmd.PersistentFlags().StringVarP(&flags.output, "output", "o", "", "Result format: text, json, yaml (default: text)")
	cmd.PersistentFlags().StringVar(&flags.logLevel, "log-level", "", "Log level: DEBUG, INFO, WARN, ERROR (default: INFO)")
	cmd.Flags().IntVar(&part, "part", 0, "Part to solve: 1, 2, or 0 for both")

	cmd.AddCommand(solveCmd(flags))
	cmd.AddCommand(batchCmd(flags))
	cmd.AddCommand(traceCmd(flags))
	cmd.AddCommand(versionCmd())

	return cmd
}

// loadConfig loads configuration from the .env file and environment
// variables, then applies flag overrides.
func loadConfig(flags *globalFlags) (config.EnvConfig, error) {
	cfg, err := config.LoadConfig(flags.envFile)
	if err != nil {
		return config.EnvConfig{}, fmt.Errorf("load config: %w", err)
	}
	if flags.output != "" {
		cfg.Output = config.OutputFormat(flags.output)
	}
	if flags.logLevel != "" {
		cfg.LogLevel = flags.logLevel
	}
	cfg = cfg.Normalize()
	if err := cfg.Validate(); err != nil {
		return config.EnvConfig{}, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}

// setup loads the configuration and builds the logger and almanac options.
func setup(cmd *cobra.Command, flags *globalFlags) (config.EnvConfig, *zap.Logger, []table.Option, error) {
	cfg, err := loadConfig(flags)
	if err != nil {
		return config.EnvConfig{}, nil, nil, err
	}
	logger := log.New(cfg)
	opts := []table.Option{
		table.WithLogger(logger),
		table.WithCoalesce(cfg.Coalesce),
		table.WithStdin(cmd.InOrStdin()),
	}
	return cfg, logger, opts, nil
}
