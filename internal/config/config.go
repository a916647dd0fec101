// Package config loads run configuration from the environment, an optional
// .env file and an optional YAML file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"

	"github.com/ukaji3/finextract-go/pkg/finextract"
)

// EnvPrefix is the prefix of every environment variable, e.g. FINEXTRACT_INPUT_DIR.
const EnvPrefix = "FINEXTRACT"

// Config represents the complete run configuration
type Config struct {
	InputDir    string `yaml:"input_dir" envconfig:"INPUT_DIR" default:"data" validate:"required"`
	Pattern     string `yaml:"pattern" envconfig:"PATTERN" default:"*.xls*" validate:"required"`
	OutputPath  string `yaml:"output_path" envconfig:"OUTPUT_PATH" default:"master_financials.csv" validate:"required"`
	SheetName   string `yaml:"sheet_name" envconfig:"SHEET_NAME" default:"INCOME_STATEMENT" validate:"required"`
	SkipRows    int    `yaml:"skip_rows" envconfig:"SKIP_ROWS" default:"18" validate:"min=0"`
	FirstColumn string `yaml:"first_column" envconfig:"FIRST_COLUMN" default:"B" validate:"required,alpha"`
	Workers     int    `yaml:"workers" envconfig:"WORKERS" default:"1" validate:"min=1,max=64"`
	// Metrics overrides the allow-list. Names may contain commas, so it is
	// only read from the YAML file.
	Metrics []string      `yaml:"metrics" ignored:"true" validate:"omitempty,dive,required"`
	Logging LoggingConfig `yaml:"logging" envconfig:"LOG"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level  string `yaml:"level" envconfig:"LEVEL" default:"info" validate:"oneof=debug info warn warning error"`
	Format string `yaml:"format" envconfig:"FORMAT" default:"text" validate:"oneof=text json"`
	// File, when set, receives a copy of the log output.
	File string `yaml:"file" envconfig:"FILE"`
}

// Load builds the configuration in increasing order of precedence: struct
// defaults, environment (including a .env file in the working directory) and
// the YAML file at path, if path is not empty.
func Load(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config from env: %w", err)
	}

	if path != "" {
		if err := loadFromFile(path, &cfg); err != nil {
			return nil, fmt.Errorf("failed to load config from file: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// loadFromFile overlays the keys present in a YAML file onto cfg
func loadFromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, cfg)
}

// Validate checks field constraints.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}
	return nil
}

// Options converts the configuration to extraction options.
func (c *Config) Options() finextract.Options {
	return finextract.Options{
		InputDir:    c.InputDir,
		Pattern:     c.Pattern,
		OutputPath:  c.OutputPath,
		SheetName:   c.SheetName,
		SkipRows:    c.SkipRows,
		FirstColumn: c.FirstColumn,
		Metrics:     c.Metrics,
		Workers:     c.Workers,
	}
}
