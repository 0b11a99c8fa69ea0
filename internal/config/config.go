package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Defaults for tunables the YAML file may override.
const (
	DefaultFAMSheet        = "FAM ihpE"
	DefaultTMSheet         = "TM"
	DefaultPriceTolerance  = 0.20
	DefaultDateWindowYears = 2
)

// Config holds all runtime configuration for a famrecon run.
type Config struct {
	InputPath    string
	OutputPath   string
	KVLookupPath string
	LogFormat    string // "text" or "json"

	FAMSheet        string  `yaml:"fam_sheet"`
	TMSheet         string  `yaml:"tm_sheet"`
	PriceTolerance  float64 `yaml:"price_tolerance"`
	DateWindowYears int     `yaml:"date_window_years"`
}

// yamlConfig is the on-disk YAML structure.
type yamlConfig struct {
	FAMSheet        string   `yaml:"fam_sheet"`
	TMSheet         string   `yaml:"tm_sheet"`
	PriceTolerance  *float64 `yaml:"price_tolerance"`
	DateWindowYears *int     `yaml:"date_window_years"`
	KVLookupPath    string   `yaml:"kv_lookup"`
}

// ApplyDefaults fills unset tunables with their default values.
func (c *Config) ApplyDefaults() {
	if c.FAMSheet == "" {
		c.FAMSheet = DefaultFAMSheet
	}
	if c.TMSheet == "" {
		c.TMSheet = DefaultTMSheet
	}
	if c.PriceTolerance == 0 {
		c.PriceTolerance = DefaultPriceTolerance
	}
	if c.DateWindowYears == 0 {
		c.DateWindowYears = DefaultDateWindowYears
	}
}

// LoadFromFile reads a YAML config file and merges its values into Config.
func (c *Config) LoadFromFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	var yc yamlConfig
	if err := yaml.Unmarshal(data, &yc); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	if yc.FAMSheet != "" {
		c.FAMSheet = yc.FAMSheet
	}
	if yc.TMSheet != "" {
		c.TMSheet = yc.TMSheet
	}
	if yc.PriceTolerance != nil {
		c.PriceTolerance = *yc.PriceTolerance
	}
	if yc.DateWindowYears != nil {
		c.DateWindowYears = *yc.DateWindowYears
	}
	if yc.KVLookupPath != "" && c.KVLookupPath == "" {
		c.KVLookupPath = yc.KVLookupPath
	}
	if c.PriceTolerance < 0 {
		return fmt.Errorf("price_tolerance must not be negative")
	}
	if c.DateWindowYears < 0 {
		return fmt.Errorf("date_window_years must not be negative")
	}
	return nil
}

// Validate checks the fields every command needs.
func (c *Config) Validate() error {
	if c.InputPath == "" {
		return fmt.Errorf("--in is required")
	}
	if _, err := os.Stat(c.InputPath); err != nil {
		return fmt.Errorf("input file not accessible: %w", err)
	}
	return nil
}

// ValidateForProcess additionally checks the output and lookup paths.
func (c *Config) ValidateForProcess() error {
	if err := c.Validate(); err != nil {
		return err
	}
	if c.OutputPath == "" {
		return fmt.Errorf("--out is required")
	}
	if c.KVLookupPath != "" {
		if _, err := os.Stat(c.KVLookupPath); err != nil {
			return fmt.Errorf("kv lookup file not accessible: %w", err)
		}
	}
	return nil
}
