package main

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/rgehrsitz/takehome/internal/output"
)

func (a *app) taxCmd() *cobra.Command {
	var (
		household int
		year      int
	)

	cmd := &cobra.Command{
		Use:   "tax [taxable-income]",
		Short: "Compute the income tax owed on a taxable amount",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, err := decimal.NewFromString(args[0])
			if err != nil {
				return fmt.Errorf("invalid amount %q: %w", args[0], err)
			}
			engine, err := a.newEngine()
			if err != nil {
				return err
			}

			calc := engine.Calculator(a.settings.Calc.AsOfYear)
			if year == 0 {
				year = calc.AsOf
			}
			tax, resolved, err := calc.ComputeTaxForYear(year, amount, household)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if resolved != year {
				fmt.Fprintf(out, "No brackets for %d, using %d\n", year, resolved)
			}
			fmt.Fprintf(out, "Income tax (%d, household of %d): %s\n", resolved, household, output.FormatAmount(tax))
			return nil
		},
	}

	cmd.Flags().IntVar(&household, "household", 1, "number of people sharing the income")
	cmd.Flags().IntVar(&year, "year", 0, "fiscal year (default: --as-of-year)")
	return cmd
}
