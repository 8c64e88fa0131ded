package main

import (
	"fmt"

	"github.com/kn1dar1an/advent-of-code-solutions/internal/report"
	"github.com/kn1dar1an/advent-of-code-solutions/table"
	"github.com/kn1dar1an/advent-of-code-solutions/utils"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func solveCmd(flags *globalFlags) *cobra.Command {
	var part int

	cmd := &cobra.Command{
		Use:   "solve <file>",
		Short: "Solve one almanac",
		Long: `Solve one almanac and print "part1: <n>, part2: <n>".

Use "-" as the file to read standard input.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSolve(cmd, flags, args[0], part)
		},
	}

	cmd.Flags().IntVar(&part, "part", 0, "Part to solve: 1, 2, or 0 for both")

	return cmd
}

func runSolve(cmd *cobra.Command, flags *globalFlags, path string, part int) error {
	if err := validatePart(part); err != nil {
		return err
	}
	cfg, logger, opts, err := setup(cmd, flags)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	a, err := table.ParseFile(path, opts...)
	if err != nil {
		return fmt.Errorf("solve %s: %w", path, err)
	}
	r, err := solve(a, path, part)
	if err != nil {
		return fmt.Errorf("solve %s: %w", path, err)
	}
	logger.Debug("Solved", zap.String("input", path), zap.Int("part", part))
	return report.WriteResult(cmd.OutOrStdout(), cfg.Output, r)
}

func validatePart(part int) error {
	if part < 0 || part > 2 {
		return fmt.Errorf("invalid part %d: want 1, 2, or 0 for both", part)
	}
	return nil
}

// solve computes the requested parts. Part 0 means both.
func solve(a *table.Almanac, input string, part int) (report.Result, error) {
	r := report.Result{Input: input}
	var steps []utils.Runnable
	if part == 0 || part == 1 {
		steps = append(steps, utils.ToRunnable2(solvePart1, a, &r))
	}
	if part == 0 || part == 2 {
		steps = append(steps, utils.ToRunnable2(solvePart2, a, &r))
	}
	if err := utils.Run(steps...); err != nil {
		return report.Result{}, err
	}
	return r, nil
}

func solvePart1(a *table.Almanac, r *report.Result) error {
	v, err := a.Part1()
	if err != nil {
		return fmt.Errorf("part1: %w", err)
	}
	r.Part1 = &v
	return nil
}

func solvePart2(a *table.Almanac, r *report.Result) error {
	v, err := a.Part2()
	if err != nil {
		return fmt.Errorf("part2: %w", err)
	}
	r.Part2 = &v
	return nil
}
