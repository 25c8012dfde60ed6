package main

import (
	"github.com/spf13/cobra"

	"github.com/rgehrsitz/takehome/internal/output"
)

func (a *app) calculateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "calculate [input-file]",
		Short: "Calculate net income for every household in a file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.loadConfiguration(args[0])
			if err != nil {
				return err
			}
			engine, err := a.newEngine()
			if err != nil {
				return err
			}

			report, err := engine.RunScenarios(cfg)
			if err != nil {
				return err
			}
			return output.GenerateReport(cmd.OutOrStdout(), report, a.settings.Output.Format)
		},
	}
}
