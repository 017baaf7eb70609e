// Package config loads the vigenere YAML configuration.
package config

import (
	"fmt"
	"os"

	"github.com/Glqzer/vigenere/pkg/analysis"
	"github.com/Glqzer/vigenere/pkg/logging"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Config is the on-disk configuration.
type Config struct {
	Language  string         `yaml:"language" validate:"language"`
	Scorer    string         `yaml:"scorer" validate:"oneof=correlation chi-squared"`
	KeyLength KeyLengthRange `yaml:"key_length"`
	Top       int            `yaml:"top" validate:"min=1"`
	Workers   int            `yaml:"workers" validate:"min=0"`
	Log       LogConfig      `yaml:"log"`
}

// KeyLengthRange is the inclusive key-length search range.
type KeyLengthRange struct {
	Min int `yaml:"min" validate:"min=1"`
	Max int `yaml:"max" validate:"gtefield=Min,lte=100"`
}

// LogConfig configures logging. Level is matched case-insensitively and
// an empty level means info.
type LogConfig struct {
	Level string `yaml:"level" validate:"loglevel"`
	JSON  bool   `yaml:"json"`
	Quiet bool   `yaml:"quiet"`
}

var validate *validator.Validate

func init() {
	validate = validator.New()

	_ = validate.RegisterValidation("language", validateLanguage)
	_ = validate.RegisterValidation("loglevel", validateLogLevel)
}

// validateLanguage accepts any language with a frequency profile.
func validateLanguage(fl validator.FieldLevel) bool {
	_, err := analysis.ProfileFor(analysis.Language(fl.Field().String()))
	return err == nil
}

// validateLogLevel accepts whatever logging.ParseLevel accepts, so the
// config file and the --log-level flag agree on the valid spellings.
func validateLogLevel(fl validator.FieldLevel) bool {
	_, err := logging.ParseLevel(fl.Field().String())
	return err == nil
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Language:  string(analysis.English),
		Scorer:    string(analysis.Correlation),
		KeyLength: KeyLengthRange{Min: analysis.DefaultRange.Min, Max: analysis.DefaultRange.Max},
		Top:       analysis.DefaultTop,
		Log:       LogConfig{Level: "info"},
	}
}

// Load reads the configuration at path on top of Default. An empty path
// returns the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read the config file: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse the config file %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks every field against its allowed values.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// AttackOptions converts the configuration to analysis options.
func (c Config) AttackOptions() analysis.Options {
	return analysis.Options{
		Language: analysis.Language(c.Language),
		Scorer:   analysis.Scorer(c.Scorer),
		Range:    analysis.Range{Min: c.KeyLength.Min, Max: c.KeyLength.Max},
		Top:      c.Top,
		Workers:  c.Workers,
	}
}

// LoggingConfig converts the configuration to a logging config.
func (c Config) LoggingConfig() (logging.Config, error) {
	level, err := logging.ParseLevel(c.Log.Level)
	if err != nil {
		return logging.Config{}, err
	}
	return logging.Config{
		Level:   level,
		Service: "vigenere",
		JSON:    c.Log.JSON,
		Quiet:   c.Log.Quiet,
	}, nil
}
