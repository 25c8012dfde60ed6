package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/rgehrsitz/takehome/internal/domain"
	"github.com/rgehrsitz/takehome/internal/output"
)

func (a *app) tablesCmd() *cobra.Command {
	var year int

	cmd := &cobra.Command{
		Use:   "tables",
		Short: "Show the loaded tax tables",
		Long:  "Lists the years available in each table, or the brackets of one year with --year.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			tables, err := a.loadTables()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()

			meta := tables.Metadata()
			fmt.Fprintf(out, "Tables: %s (%s, updated %s)\n", meta.Jurisdiction, meta.Description, meta.LastUpdated)
			rules := tables.Contributions()
			fmt.Fprintf(out, "Social security: rate %s, flat cap %s per person\n\n",
				output.FormatPercentage(rules.Rate), output.FormatAmount(rules.FlatCap))

			for _, t := range []*domain.BracketTable{tables.IncomeTax(), tables.Withholding()} {
				if year == 0 {
					years := lo.Map(t.Years(), func(y int, _ int) string { return fmt.Sprint(y) })
					fmt.Fprintf(out, "%-12s %s\n", t.Kind(), strings.Join(years, ", "))
					continue
				}
				if err := writeBrackets(out, t, year); err != nil {
					return err
				}
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&year, "year", 0, "show the brackets used for this fiscal year")
	return cmd
}

func writeBrackets(w io.Writer, t *domain.BracketTable, year int) error {
	resolved, brackets, err := t.Resolve(year)
	if err != nil {
		return fmt.Errorf("%s: %w", t.Kind(), err)
	}
	fmt.Fprintf(w, "%s %d\n", t.Kind(), resolved)
	for _, b := range brackets {
		ceiling := "and above"
		if !b.Open {
			ceiling = "< " + output.FormatAmount(b.Ceiling)
		}
		fmt.Fprintf(w, "  %-16s %s\n", ceiling, output.FormatPercentage(b.Rate))
	}
	fmt.Fprintln(w)
	return nil
}
