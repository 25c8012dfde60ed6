package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rgehrsitz/takehome/internal/batch"
	"github.com/rgehrsitz/takehome/internal/output"
)

func (a *app) batchCmd() *cobra.Command {
	var noProgress bool

	cmd := &cobra.Command{
		Use:   "batch [input-files...]",
		Short: "Calculate many household files concurrently",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			engine, err := a.newEngine()
			if err != nil {
				return err
			}

			runner := batch.NewRunner(engine)
			runner.AsOfYear = a.settings.Calc.AsOfYear
			runner.Workers = a.settings.Batch.Workers
			runner.Logger = a.logger
			if !noProgress {
				runner.Progress = cmd.ErrOrStderr()
			}

			results, err := runner.Run(cmd.Context(), args)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, res := range results {
				if a.settings.Output.Format == "console" {
					fmt.Fprintf(out, "== %s ==\n", res.Path)
				}
				if err := output.GenerateReport(out, res.Report, a.settings.Output.Format); err != nil {
					return fmt.Errorf("%s: %w", res.Path, err)
				}
			}
			a.logger.Info("batch complete", "files", len(results), "workers", runner.Workers)
			return nil
		},
	}

	cmd.Flags().Int("workers", 0, "concurrent workers (default: number of CPUs)")
	cmd.Flags().BoolVar(&noProgress, "no-progress", false, "disable the progress bar")
	_ = a.v.BindPFlag("batch.workers", cmd.Flags().Lookup("workers"))
	return cmd
}
