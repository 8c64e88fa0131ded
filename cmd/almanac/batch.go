package main

import (
	"fmt"

	"github.com/kn1dar1an/advent-of-code-solutions/internal/report"
	"github.com/kn1dar1an/advent-of-code-solutions/table"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

func batchCmd(flags *globalFlags) *cobra.Command {
	var (
		part    int
		workers int
	)

	cmd := &cobra.Command{
		Use:   "batch <file>...",
		Short: "Solve several almanacs",
		Long: `Solve several almanacs concurrently and print one result per input,
in the order the inputs were given. The first failure stops the batch.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBatch(cmd, flags, args, part, workers)
		},
	}

	cmd.Flags().IntVar(&part, "part", 0, "Part to solve: 1, 2, or 0 for both")
	cmd.Flags().IntVar(&workers, "workers", 0, "Inputs solved at once (default: ALMANAC_WORKERS)")

	return cmd
}

func runBatch(cmd *cobra.Command, flags *globalFlags, paths []string, part, workers int) error {
	if err := validatePart(part); err != nil {
		return err
	}
	cfg, logger, opts, err := setup(cmd, flags)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()
	if workers <= 0 {
		workers = cfg.Workers
	}

	results := make([]report.Result, len(paths))
	g, ctx := errgroup.WithContext(cmd.Context())
	g.SetLimit(workers)
	for i, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			a, err := table.ParseFile(path, opts...)
			if err != nil {
				return fmt.Errorf("solve %s: %w", path, err)
			}
			r, err := solve(a, path, part)
			if err != nil {
				return fmt.Errorf("solve %s: %w", path, err)
			}
			results[i] = r
			logger.Debug("Solved", zap.String("input", path), zap.Int("part", part))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	return report.WriteResults(cmd.OutOrStdout(), cfg.Output, results)
}
