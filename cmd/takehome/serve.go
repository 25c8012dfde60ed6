package main

import (
	"github.com/spf13/cobra"

	"github.com/rgehrsitz/takehome/internal/server"
)

func (a *app) serveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the calculation API over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			tables, err := a.loadTables()
			if err != nil {
				return err
			}
			srv := server.New(server.Config{
				Tables:   tables,
				AsOfYear: a.settings.Calc.AsOfYear,
				Logger:   a.logger,
			})
			return srv.Run(cmd.Context(), a.settings.Server.Addr)
		},
	}

	cmd.Flags().String("addr", ":8080", "listen address")
	_ = a.v.BindPFlag("server.addr", cmd.Flags().Lookup("addr"))
	return cmd
}
