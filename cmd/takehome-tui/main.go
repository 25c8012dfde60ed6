package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/rgehrsitz/takehome/internal/tui"
)

func main() {
	_ = godotenv.Load()

	var (
		tablesPath string
		asOfYear   int
	)

	cmd := &cobra.Command{
		Use:          "takehome-tui [config-file]",
		Short:        "Browse household net income and cash flow interactively",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(_ *cobra.Command, args []string) error {
			configPath := args[0]
			if _, err := os.Stat(configPath); os.IsNotExist(err) {
				return fmt.Errorf("config file not found: %s", configPath)
			}

			model := tui.NewModel(configPath,
				tui.WithTablesPath(tablesPath),
				tui.WithAsOfYear(asOfYear),
			)
			p := tea.NewProgram(model, tea.WithAltScreen())
			if _, err := p.Run(); err != nil {
				return fmt.Errorf("error running TUI: %w", err)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&tablesPath, "tables", os.Getenv("TAKEHOME_TABLES_PATH"), "tax tables YAML file (default: embedded tables)")
	cmd.Flags().IntVar(&asOfYear, "as-of-year", 0, "fiscal year to calculate for (default: current year)")

	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
