//-------------------------------------------------------------------------
//
// RC Logistics Warehouse Generator
//
// Copyright (c) 2022 - 2026, RC Cargo & Logistics
// Released under the MIT License
//
//-------------------------------------------------------------------------

// Package config handles configuration management for rc-dwgen.
// Configuration is loaded from config files and CLI flags; CLI flags take
// precedence over config file values.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
)

// DateFormat is the calendar date layout used throughout the pipeline.
const DateFormat = "2006-01-02"

// Config holds all configuration for rc-dwgen.
type Config struct {
	// DataDir is where the flat CSV tables are written and read back.
	DataDir string `mapstructure:"data_dir"`

	// StarDir is where the star schema CSV tables are written.
	StarDir string `mapstructure:"star_dir"`

	// DBPath is the SQLite warehouse file. Empty disables the SQLite load.
	DBPath string `mapstructure:"db_path"`

	// Connection is an optional PostgreSQL connection string. When set,
	// the star schema is also loaded into PostgreSQL.
	Connection string `mapstructure:"connection"`

	// LogLevel controls logging verbosity (debug, info, warn, error).
	LogLevel string `mapstructure:"log_level"`

	// Generate holds configuration for dataset generation.
	Generate GenerateConfig `mapstructure:"generate"`
}

// GenerateConfig holds configuration for dataset generation.
type GenerateConfig struct {
	// Records is the number of customers (and bookings, shipments,
	// payments) to generate.
	Records int `mapstructure:"records"`

	// FromDate and ToDate bound booking and customer dates, YYYY-MM-DD.
	FromDate string `mapstructure:"from_date"`
	ToDate   string `mapstructure:"to_date"`

	// Seed makes generation reproducible. Zero means time-based.
	Seed uint64 `mapstructure:"seed"`
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		DataDir:  "data",
		StarDir:  "star_schema",
		DBPath:   "rc_logistics_dw.db",
		LogLevel: "info",
		Generate: GenerateConfig{
			Records:  1000,
			FromDate: "2022-01-01",
			ToDate:   "2022-12-31",
		},
	}
}

// Load reads configuration from config files.
// Config file locations (in order of precedence):
// 1. Path specified by configFile parameter
// 2. ./rc-dwgen.yaml
// 3. ~/.config/rc-dwgen/config.yaml
func Load(configFile string) (*Config, error) {
	v := viper.New()

	v.SetConfigName("rc-dwgen")
	v.SetConfigType("yaml")

	v.AddConfigPath(".")
	if home, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(filepath.Join(home, ".config", "rc-dwgen"))
	}

	if configFile != "" {
		v.SetConfigFile(configFile)
	}

	// Read config file (ignore if not found)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := DefaultConfig()

	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("error parsing config: %w", err)
	}

	return cfg, nil
}

// Validate checks that required configuration is present.
func (c *Config) Validate() error {
	if c.DataDir == "" {
		return fmt.Errorf("data_dir is required")
	}
	if c.StarDir == "" {
		return fmt.Errorf("star_dir is required")
	}
	return nil
}

// ValidateGenerate checks configuration required for dataset generation.
func (c *Config) ValidateGenerate() error {
	if err := c.Validate(); err != nil {
		return err
	}
	if c.Generate.Records < 1 {
		return fmt.Errorf("records must be at least 1")
	}
	from, to, err := c.DateWindow()
	if err != nil {
		return err
	}
	if to.Before(from) {
		return fmt.Errorf("to_date %s precedes from_date %s", c.Generate.ToDate, c.Generate.FromDate)
	}
	return nil
}

// DateWindow parses the configured generation window.
func (c *Config) DateWindow() (time.Time, time.Time, error) {
	from, err := time.ParseInLocation(DateFormat, c.Generate.FromDate, time.UTC)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid from_date: %w", err)
	}
	to, err := time.ParseInLocation(DateFormat, c.Generate.ToDate, time.UTC)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid to_date: %w", err)
	}
	return from, to, nil
}
