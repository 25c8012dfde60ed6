package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/rgehrsitz/takehome/internal/config"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// app carries the state shared by every command of one root
type app struct {
	v        *viper.Viper
	cfgFile  string
	settings *config.Settings
	logger   *slog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{v: viper.New(), logger: slog.Default()}

	root := &cobra.Command{
		Use:   "takehome",
		Short: "Net income and cash-flow calculator",
		Long: `takehome computes household net income after progressive income-tax
brackets and social-security contributions, and charts a twelve-month cash flow.`,
		SilenceUsage:      true,
		PersistentPreRunE: a.initConfig,
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.cfgFile, "config", "", "config file (default: ./takehome.yaml or $HOME/.config/takehome/takehome.yaml)")
	flags.String("log-level", "info", "log level (debug, info, warn, error)")
	flags.String("log-format", "console", "log format (console, json)")
	flags.String("tables", "", "tax tables YAML file (default: embedded tables)")
	flags.Int("as-of-year", 0, "fiscal year to calculate for (default: current year)")
	flags.StringP("format", "f", "console", "output format (console, json, csv, yaml)")

	_ = a.v.BindPFlag("logging.level", flags.Lookup("log-level"))
	_ = a.v.BindPFlag("logging.format", flags.Lookup("log-format"))
	_ = a.v.BindPFlag("tables.path", flags.Lookup("tables"))
	_ = a.v.BindPFlag("calc.as_of_year", flags.Lookup("as-of-year"))
	_ = a.v.BindPFlag("output.format", flags.Lookup("format"))

	root.AddCommand(a.calculateCmd())
	root.AddCommand(a.taxCmd())
	root.AddCommand(a.netCmd())
	root.AddCommand(a.chartCmd())
	root.AddCommand(a.batchCmd())
	root.AddCommand(a.tablesCmd())
	root.AddCommand(a.validateCmd())
	root.AddCommand(a.serveCmd())
	root.AddCommand(versionCmd())

	return root
}

func main() {
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := newRootCmd().ExecuteContext(ctx)
	stop()

	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func (a *app) initConfig(_ *cobra.Command, _ []string) error {
	settings, err := config.ReadSettings(a.v, a.cfgFile)
	if err != nil {
		return err
	}
	a.settings = settings

	logger, err := newLogger(settings.Logging)
	if err != nil {
		return fmt.Errorf("failed to setup logging: %w", err)
	}
	a.logger = logger
	slog.SetDefault(logger)
	return nil
}

func newLogger(cfg config.LoggingSettings) (*slog.Logger, error) {
	level, err := config.ParseLogLevel(cfg.Level)
	if err != nil {
		return nil, err
	}
	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	switch cfg.Format {
	case "console", "":
		handler = slog.NewTextHandler(os.Stderr, opts)
	case "json":
		handler = slog.NewJSONHandler(os.Stderr, opts)
	default:
		return nil, fmt.Errorf("invalid log format: %s", cfg.Format)
	}
	return slog.New(handler), nil
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "takehome %s (commit %s, built %s)\n", version, commit, date)
			if bi, ok := debug.ReadBuildInfo(); ok && bi != nil {
				fmt.Fprintln(cmd.OutOrStdout(), bi.Main.Path, bi.GoVersion)
			}
		},
	}
}
