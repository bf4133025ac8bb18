// Package config loads the settings of the tafqeet command from a YAML file.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/xuri/excelize/v2"
	"gopkg.in/yaml.v3"
)

// Output formats of the words command.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Config holds the settings of the tafqeet command.
type Config struct {
	// Format is the output format of the words command: text, json or yaml.
	Format string `yaml:"format"`

	// LogLevel is one of debug, info, warn or error.
	LogLevel string `yaml:"log_level"`

	Sheet SheetConfig `yaml:"sheet"`
}

// SheetConfig describes where amounts are read from and words written to
// in a workbook.
type SheetConfig struct {
	// Name of the worksheet. Empty selects the first sheet.
	Name string `yaml:"name"`

	// AmountColumn is the column letter holding the amounts, e.g. "B".
	AmountColumn string `yaml:"amount_column"`

	// WordsColumn is the column letter receiving the words, e.g. "C".
	WordsColumn string `yaml:"words_column"`

	// HeaderRows is the number of rows skipped at the top of the sheet.
	HeaderRows int `yaml:"header_rows"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	cfg := &Config{}
	applyDefaults(cfg)
	return cfg
}

// Load reads, defaults and validates the configuration file at path.
// An empty path returns [Default].
func Load(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	applyDefaults(&cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.Format == "" {
		cfg.Format = FormatText
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	if cfg.Sheet.AmountColumn == "" {
		cfg.Sheet.AmountColumn = "B"
	}
	if cfg.Sheet.WordsColumn == "" {
		cfg.Sheet.WordsColumn = "C"
	}
}

// Validate checks the values of an already defaulted configuration.
func (c *Config) Validate() error {
	switch c.Format {
	case FormatText, FormatJSON, FormatYAML:
	default:
		return fmt.Errorf("unknown format %q", c.Format)
	}

	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log level %q", c.LogLevel)
	}

	return c.Sheet.Validate()
}

// Validate checks the column names of the sheet configuration.
func (s *SheetConfig) Validate() error {
	amount, err := excelize.ColumnNameToNumber(s.AmountColumn)
	if err != nil {
		return fmt.Errorf("amount column: %w", err)
	}
	words, err := excelize.ColumnNameToNumber(s.WordsColumn)
	if err != nil {
		return fmt.Errorf("words column: %w", err)
	}
	if amount == words {
		return errors.New("amount and words columns must differ")
	}
	if s.HeaderRows < 0 {
		return fmt.Errorf("header rows must not be negative, got %d", s.HeaderRows)
	}
	return nil
}
