package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/spf13/viper"
)

// Settings are the runtime knobs of the CLI and server. They never reach the
// calculators directly; commands translate them into explicit parameters.
type Settings struct {
	Logging LoggingSettings `mapstructure:"logging"`
	Tables  TablesSettings  `mapstructure:"tables"`
	Calc    CalcSettings    `mapstructure:"calc"`
	Output  OutputSettings  `mapstructure:"output"`
	Server  ServerSettings  `mapstructure:"server"`
	Batch   BatchSettings   `mapstructure:"batch"`
}

type LoggingSettings struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

type TablesSettings struct {
	// Path to a tables YAML file; empty uses the embedded tables.
	Path string `mapstructure:"path"`
}

type CalcSettings struct {
	// AsOfYear pins the fiscal year; zero follows the calendar.
	AsOfYear int `mapstructure:"as_of_year"`
}

type OutputSettings struct {
	Format string `mapstructure:"format"`
}

type ServerSettings struct {
	Addr string `mapstructure:"addr"`
}

type BatchSettings struct {
	Workers int `mapstructure:"workers"`
}

// SetDefaults registers default values on v
func SetDefaults(v *viper.Viper) {
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
	v.SetDefault("tables.path", "")
	v.SetDefault("calc.as_of_year", 0)
	v.SetDefault("output.format", "console")
	v.SetDefault("server.addr", ":8080")
	v.SetDefault("batch.workers", runtime.NumCPU())
}

// ReadSettings reads cfgFile (or takehome.yaml from the usual places) plus
// TAKEHOME_* environment variables into v and decodes the result.
func ReadSettings(v *viper.Viper, cfgFile string) (*Settings, error) {
	SetDefaults(v)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "takehome"))
		}
		v.SetConfigName("takehome")
		v.SetConfigType("yaml")
	}

	v.SetEnvPrefix("TAKEHOME")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return nil, fmt.Errorf("failed to decode settings: %w", err)
	}
	if s.Batch.Workers < 1 {
		s.Batch.Workers = 1
	}
	return &s, nil
}

// ParseLogLevel maps a level name to slog.Level
func ParseLogLevel(level string) (slog.Level, error) {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("invalid log level: %s", level)
	}
}
