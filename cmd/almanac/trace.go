package main

import (
	"fmt"
	"strconv"

	"github.com/kn1dar1an/advent-of-code-solutions/internal/report"
	"github.com/kn1dar1an/advent-of-code-solutions/table"
	"github.com/spf13/cobra"
)

func traceCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "trace <file> <seed>",
		Short: "Show the value of a seed after every stage",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTrace(cmd, flags, args[0], args[1])
		},
	}
}

func runTrace(cmd *cobra.Command, flags *globalFlags, path, seedArg string) error {
	seed, err := strconv.ParseUint(seedArg, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid seed %q: %w", seedArg, err)
	}
	cfg, logger, opts, err := setup(cmd, flags)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	a, err := table.ParseFile(path, opts...)
	if err != nil {
		return fmt.Errorf("trace %s: %w", path, err)
	}

	values := a.Trace(seed)
	tr := report.Trace{Seed: seed}
	for i, s := range table.Stages {
		tr.Steps = append(tr.Steps, report.Step{Stage: s.Keyword(), Value: values[i+1]})
	}
	return report.WriteTrace(cmd.OutOrStdout(), cfg.Output, tr)
}
