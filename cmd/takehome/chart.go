package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rgehrsitz/takehome/internal/cashflow"
	"github.com/rgehrsitz/takehome/internal/domain"
	"github.com/rgehrsitz/takehome/internal/tui/components"
)

func (a *app) chartCmd() *cobra.Command {
	var (
		household       string
		width           int
		height          int
		hideInvestments bool
	)

	cmd := &cobra.Command{
		Use:   "chart [input-file]",
		Short: "Draw the monthly cash-flow chart of a household",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.loadConfiguration(args[0])
			if err != nil {
				return err
			}
			profile, err := findCashFlowProfile(cfg, household)
			if err != nil {
				return err
			}

			series, err := cashflow.FromInput(*profile.CashFlow)
			if err != nil {
				return fmt.Errorf("%s: %w", profile.Name, err)
			}
			chart := components.CashFlowChart(series, components.CashFlowChartOptions{
				Title:           fmt.Sprintf("Monthly cash flow: %s", profile.Name),
				Width:           width,
				Height:          height,
				HideInvestments: hideInvestments,
			})
			fmt.Fprintln(cmd.OutOrStdout(), chart.Render())
			return nil
		},
	}

	cmd.Flags().StringVar(&household, "household", "", "household name (default: first with a cash flow)")
	cmd.Flags().IntVar(&width, "width", 72, "chart width in columns")
	cmd.Flags().IntVar(&height, "height", 16, "chart height in rows")
	cmd.Flags().BoolVar(&hideInvestments, "hide-investments", false, "omit the investments line")
	return cmd
}

// findCashFlowProfile returns the named household, or the first one that has
// a cash flow when name is empty
func findCashFlowProfile(cfg *domain.Configuration, name string) (*domain.HouseholdProfile, error) {
	for i := range cfg.Households {
		h := &cfg.Households[i]
		if name != "" && h.Name != name {
			continue
		}
		if h.CashFlow == nil {
			if name != "" {
				return nil, fmt.Errorf("household %q has no cash flow", name)
			}
			continue
		}
		return h, nil
	}
	if name != "" {
		return nil, fmt.Errorf("household %q not found", name)
	}
	return nil, fmt.Errorf("no household has a cash flow")
}
