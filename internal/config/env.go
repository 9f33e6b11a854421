package config

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/kelseyhightower/envconfig"
)

const envPrefix = "ETHEROLL"

const (
	StorePreferences = "preferences"
	StoreLevelDB     = "leveldb"
)

// Config contains all configuration parameters for the application.
type Config struct {
	AppID        string  `envconfig:"APP_ID" default:"com.github.andremiras.etheroll"`
	IconPath     string  `envconfig:"ICON_PATH" default:"docs/images/icon.png"`
	LogLevel     string  `envconfig:"LOG_LEVEL" default:"info"`
	Store        string  `envconfig:"STORE" default:"preferences"`
	LevelDBPath  string  `envconfig:"LEVELDB_PATH" default:"etheroll.db"`
	WindowWidth  float32 `envconfig:"WINDOW_WIDTH" default:"420"`
	WindowHeight float32 `envconfig:"WINDOW_HEIGHT" default:"720"`
}

// Load reads configuration from ETHEROLL_* environment variables.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := envconfig.Process(envPrefix, cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	switch c.Store {
	case StorePreferences, StoreLevelDB:
	default:
		return fmt.Errorf("unsupported store %q", c.Store)
	}
	if _, err := c.SlogLevel(); err != nil {
		return err
	}
	return nil
}

// SlogLevel maps LogLevel onto a slog level.
func (c *Config) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.ToUpper(c.LogLevel))); err != nil {
		return 0, fmt.Errorf("invalid log level %q: %w", c.LogLevel, err)
	}
	return level, nil
}
