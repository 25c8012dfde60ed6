package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (a *app) validateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate [input-file]",
		Short: "Validate a household file without calculating",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.loadConfiguration(args[0])
			if err != nil {
				return err
			}
			withCashFlow := 0
			for _, h := range cfg.Households {
				if h.CashFlow != nil {
					withCashFlow++
				}
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s is valid: %d household(s), %d with cash flow\n",
				args[0], len(cfg.Households), withCashFlow)
			return nil
		},
	}
}
