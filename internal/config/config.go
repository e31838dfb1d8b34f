package config

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// FileName is the configuration file looked up in the working directory
// when no path is given.
const FileName = "ledgercheck.yaml"

// Config represents the top-level ledgercheck.yaml configuration.
type Config struct {
	Logging LoggingConfig `yaml:"logging"`
	Check   CheckConfig   `yaml:"check"`

	// Options seeds the ledger option snapshot before the first directive,
	// keyed by option name, e.g. name_assets: Actif.
	Options map[string]string `yaml:"options,omitempty"`
}

// LoggingConfig controls the structured logger.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // text or json
}

// CheckConfig controls the check command.
type CheckConfig struct {
	// WatchDebounce coalesces bursts of file events in watch mode.
	WatchDebounce time.Duration `yaml:"watch_debounce"`

	// RunLog, when set, is a CSV file that receives one row per run.
	RunLog string `yaml:"run_log,omitempty"`
}

// Load reads a ledgercheck.yaml file from disk. Fields missing from the
// file keep their defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns a Config with sensible defaults.
func Default() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
		Check: CheckConfig{
			WatchDebounce: 200 * time.Millisecond,
		},
	}
}

// Validate checks field values.
func (c *Config) Validate() error {
	if _, err := c.Logging.SlogLevel(); err != nil {
		return err
	}
	switch c.Logging.Format {
	case "text", "json":
	default:
		return fmt.Errorf("logging.format %q: must be text or json", c.Logging.Format)
	}
	if c.Check.WatchDebounce < 0 {
		return fmt.Errorf("check.watch_debounce %s: must not be negative", c.Check.WatchDebounce)
	}
	return nil
}

// SlogLevel parses Level.
func (l LoggingConfig) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(l.Level)); err != nil {
		return 0, fmt.Errorf("logging.level %q: %w", l.Level, err)
	}
	return level, nil
}
