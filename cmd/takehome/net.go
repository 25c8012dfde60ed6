package main

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/rgehrsitz/takehome/internal/domain"
	"github.com/rgehrsitz/takehome/internal/output"
)

func (a *app) netCmd() *cobra.Command {
	var (
		salary    string
		months    int
		bonuses   []string
		taxFree   string
		household int
		name      string
	)

	cmd := &cobra.Command{
		Use:   "net",
		Short: "Calculate net income for a single salary",
		Example: `  takehome net --salary 2000 --months 14
  takehome net --salary 1800 --bonus 1000 --bonus 500 --household 2 -f json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			input := domain.IncomeInput{
				MonthsPaid:    months,
				HouseholdSize: household,
			}
			var err error
			if input.Salary, err = parseAmount("salary", salary); err != nil {
				return err
			}
			if input.TaxFreeAllowance, err = parseAmount("tax-free", taxFree); err != nil {
				return err
			}
			for _, b := range bonuses {
				bonus, err := parseAmount("bonus", b)
				if err != nil {
					return err
				}
				input.Bonuses = append(input.Bonuses, bonus)
			}

			engine, err := a.newEngine()
			if err != nil {
				return err
			}
			cfg := &domain.Configuration{
				AsOfYear:   a.settings.Calc.AsOfYear,
				Households: []domain.HouseholdProfile{{Name: name, Income: input}},
			}
			report, err := engine.RunScenarios(cfg)
			if err != nil {
				return err
			}
			return output.GenerateReport(cmd.OutOrStdout(), report, a.settings.Output.Format)
		},
	}

	cmd.Flags().StringVar(&salary, "salary", "", "monthly gross salary")
	cmd.Flags().IntVar(&months, "months", 12, "number of salary payments per year")
	cmd.Flags().StringSliceVar(&bonuses, "bonus", nil, "bonus payment (repeatable)")
	cmd.Flags().StringVar(&taxFree, "tax-free", "0", "annual tax-free allowance")
	cmd.Flags().IntVar(&household, "household", 1, "number of people sharing the income")
	cmd.Flags().StringVar(&name, "name", "household", "label used in the report")
	_ = cmd.MarkFlagRequired("salary")
	return cmd
}

func parseAmount(field, s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid %s %q: %w", field, s, err)
	}
	return d, nil
}
