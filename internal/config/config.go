// Package config loads fixture generator settings from an optional YAML file,
// HVACFIX_* environment variables and command-line flags.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"hvac_fixtures/internal/logger"
)

// Keys understood by the configuration layer. Flags bind to the same keys.
const (
	KeyLogLevel        = "log.level"
	KeyLogFormat       = "log.format"
	KeyOutputDir       = "output.dir"
	KeyCheck           = "generate.check"
	KeyReference       = "generate.reference"
	KeyContinueOnError = "generate.continue_on_error"
	KeyHistoryPath     = "history.path"
)

const envPrefix = "HVACFIX"

// Config holds all configuration for a generator run.
type Config struct {
	LogLevel  string // debug, info, warn, error
	LogFormat string // console, json

	OutputDir       string
	Check           bool
	Reference       bool
	ContinueOnError bool

	// HistoryPath is the SQLite file recording runs; empty disables history.
	HistoryPath string
}

// NewViper returns a viper instance with defaults and environment lookup set up.
func NewViper() *viper.Viper {
	v := viper.New()
	v.SetDefault(KeyLogLevel, logger.InfoLevel)
	v.SetDefault(KeyLogFormat, logger.ConsoleFormat)
	v.SetDefault(KeyOutputDir, ".")
	v.SetDefault(KeyCheck, false)
	v.SetDefault(KeyReference, false)
	v.SetDefault(KeyContinueOnError, false)
	v.SetDefault(KeyHistoryPath, "")

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// Load reads the config file into v and returns the merged configuration.
// With an empty file it looks for configs/config.yml and tolerates its absence;
// an explicitly named file must exist.
func Load(v *viper.Viper, file string) (*Config, error) {
	if file != "" {
		v.SetConfigFile(file)
	} else {
		v.AddConfigPath("configs")
		v.SetConfigName("config")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	return &Config{
		LogLevel:        strings.ToLower(strings.TrimSpace(v.GetString(KeyLogLevel))),
		LogFormat:       strings.ToLower(strings.TrimSpace(v.GetString(KeyLogFormat))),
		OutputDir:       v.GetString(KeyOutputDir),
		Check:           v.GetBool(KeyCheck),
		Reference:       v.GetBool(KeyReference),
		ContinueOnError: v.GetBool(KeyContinueOnError),
		HistoryPath:     v.GetString(KeyHistoryPath),
	}, nil
}

// Validate checks that the configuration can be acted on.
func (c *Config) Validate() error {
	if !logger.ValidLevel(c.LogLevel) {
		return fmt.Errorf("unknown log level %q (want debug, info, warn or error)", c.LogLevel)
	}
	if !logger.ValidFormat(c.LogFormat) {
		return fmt.Errorf("unknown log format %q (want console or json)", c.LogFormat)
	}
	if strings.TrimSpace(c.OutputDir) == "" {
		return errors.New("output directory is required")
	}
	return nil
}
