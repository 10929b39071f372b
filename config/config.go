// Package config loads the orcas configuration.
//
// Priority: defaults, then the config file, then environment variables
// (a .env file in the working directory is loaded first), then command line
// flags applied by the caller.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/etnz/orcas"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"
	"github.com/ternarybob/arbor"
	"github.com/ternarybob/arbor/models"
	"gopkg.in/yaml.v3"
)

// DefaultFile is read when no config file is given.
const DefaultFile = "orcas.toml"

// Config represents the application configuration
type Config struct {
	Locale          string        `toml:"locale" yaml:"locale" validate:"required,len=3"` // ISO 4217 code driving separators
	Units           string        `toml:"units" yaml:"units"`                             // unit override CSV, path or URL
	Catalog         string        `toml:"catalog" yaml:"catalog"`                         // metrics catalog, path or URL
	DisabledMetrics []string      `toml:"disabled_metrics" yaml:"disabled_metrics"`
	HTTPTimeout     Duration      `toml:"http_timeout" yaml:"http_timeout"`
	Log             LoggingConfig `toml:"log" yaml:"log"`
}

type LoggingConfig struct {
	Level string `toml:"level" yaml:"level" validate:"oneof=trace debug info warn error"`
}

// Duration is a time.Duration written as "30s" in config files.
type Duration time.Duration

func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	*d = Duration(v)
	return nil
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(time.Duration(d).String()), nil
}

// NewDefaultConfig returns the configuration used when nothing is set.
func NewDefaultConfig() *Config {
	return &Config{
		Locale:          "USD",
		DisabledMetrics: append([]string(nil), orcas.DefaultDisabledMetrics...),
		HTTPTimeout:     Duration(30 * time.Second),
		Log:             LoggingConfig{Level: "warn"},
	}
}

// Load loads the configuration from path. An empty path falls back to
// $ORCAS_CONFIG, then to DefaultFile. A missing DefaultFile is not an error;
// a missing explicit path is.
func Load(path string) (*Config, error) {
	// .env is optional.
	_ = godotenv.Load()

	config := NewDefaultConfig()
	if path == "" {
		path = os.Getenv("ORCAS_CONFIG")
	}
	explicit := path != ""
	if !explicit {
		path = DefaultFile
	}

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := decode(path, data, config); err != nil {
			return nil, err
		}
	case errors.Is(err, fs.ErrNotExist) && !explicit:
	default:
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	applyEnvOverrides(config)

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

func decode(path string, data []byte, config *Config) error {
	var err error
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, config)
	default:
		err = toml.Unmarshal(data, config)
	}
	if err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return nil
}

// applyEnvOverrides applies environment variable overrides to config
func applyEnvOverrides(config *Config) {
	if locale := os.Getenv("ORCAS_LOCALE"); locale != "" {
		config.Locale = locale
	}
	if units := os.Getenv("ORCAS_UNITS"); units != "" {
		config.Units = units
	}
	if catalog := os.Getenv("ORCAS_CATALOG"); catalog != "" {
		config.Catalog = catalog
	}
	if disabled := os.Getenv("ORCAS_DISABLED_METRICS"); disabled != "" {
		config.DisabledMetrics = nil
		for _, name := range strings.Split(disabled, ";") {
			if name = strings.TrimSpace(name); name != "" {
				config.DisabledMetrics = append(config.DisabledMetrics, name)
			}
		}
	}
	if timeout := os.Getenv("ORCAS_HTTP_TIMEOUT"); timeout != "" {
		var d Duration
		if err := d.UnmarshalText([]byte(timeout)); err == nil {
			config.HTTPTimeout = d
		}
	}
	if level := os.Getenv("ORCAS_LOG_LEVEL"); level != "" {
		config.Log.Level = strings.ToLower(level)
	}
}

var validate = validator.New()

// Validate checks the configuration values.
func (c *Config) Validate() error {
	c.Locale = strings.ToUpper(strings.TrimSpace(c.Locale))
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

// Sources returns where the reference data is read from.
func (c *Config) Sources() orcas.Sources {
	return orcas.Sources{
		Units:    c.Units,
		Catalog:  c.Catalog,
		Disabled: c.DisabledMetrics,
		Timeout:  time.Duration(c.HTTPTimeout),
	}
}

// Formatter returns a value formatter using the configured locale.
func (c *Config) Formatter() orcas.Formatter {
	return orcas.NewFormatter(orcas.LocaleFor(c.Locale))
}

// NewLogger returns a console logger at the configured level. The default
// level is warn so that reports written on stdout stay readable.
func (c *Config) NewLogger() arbor.ILogger {
	return arbor.NewLogger().WithConsoleWriter(models.WriterConfiguration{
		Type:       models.LogWriterTypeConsole,
		TimeFormat: "15:04:05",
	}).WithLevelFromString(c.Log.Level)
}
