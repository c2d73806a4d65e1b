// Package config loads the simulator settings (viper) and battle rosters (yaml).
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// LoggingConfig holds structured logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: "debug", "info", "warn", "error".
	Level string `mapstructure:"level"`
	// Format is the log output format: "json" or "console".
	Format string `mapstructure:"format"`
}

// SimConfig controls how battles are run.
type SimConfig struct {
	// Seed feeds the random source. Batch runs derive one seed per battle from it.
	Seed int64 `mapstructure:"seed"`
	// Runs is the number of battles; 1 runs a single reported battle.
	Runs int `mapstructure:"runs"`
	// Workers bounds concurrent battles in batch mode.
	Workers int `mapstructure:"workers"`
	// Roster is a YAML roster file; empty uses DefaultRoster.
	Roster string `mapstructure:"roster"`
	// MaxRounds ends a battle as a stalemate; 0 means unlimited.
	MaxRounds int `mapstructure:"max_rounds"`
	// Record keeps the per-battle event log in the result.
	Record bool `mapstructure:"record"`
	// Color enables ANSI colour in the text report.
	Color bool `mapstructure:"color"`
	// Out is an optional JSON result file.
	Out string `mapstructure:"out"`
}

// Config is the top-level application configuration.
type Config struct {
	Logging LoggingConfig `mapstructure:"logging"`
	Sim     SimConfig     `mapstructure:"sim"`
}

// Validate checks all configuration invariants and reports every violation at once.
func (c Config) Validate() error {
	var errs []string
	if err := validateLogging(c.Logging); err != nil {
		errs = append(errs, err.Error())
	}
	if err := validateSim(c.Sim); err != nil {
		errs = append(errs, err.Error())
	}
	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed: %s", strings.Join(errs, "; "))
	}
	return nil
}

func validateLogging(l LoggingConfig) error {
	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[l.Level] {
		return fmt.Errorf("logging.level must be one of [debug, info, warn, error], got %q", l.Level)
	}
	validFormats := map[string]bool{"json": true, "console": true}
	if !validFormats[l.Format] {
		return fmt.Errorf("logging.format must be one of [json, console], got %q", l.Format)
	}
	return nil
}

func validateSim(s SimConfig) error {
	var errs []string
	if s.Runs < 1 {
		errs = append(errs, fmt.Sprintf("sim.runs must be >= 1, got %d", s.Runs))
	}
	if s.Workers < 1 {
		errs = append(errs, fmt.Sprintf("sim.workers must be >= 1, got %d", s.Workers))
	}
	if s.MaxRounds < 0 {
		errs = append(errs, fmt.Sprintf("sim.max_rounds must be >= 0, got %d", s.MaxRounds))
	}
	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}
	return nil
}

// Load reads configuration from path (optional), applies RAIDSIM_ environment
// overrides and defaults, and validates the result.
func Load(path string) (Config, error) {
	v := viper.New()
	v.SetEnvPrefix("RAIDSIM")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("reading config file: %w", err)
		}
	}
	return LoadFromViper(v)
}

// LoadFromViper builds a Config from an already-configured Viper instance.
func LoadFromViper(v *viper.Viper) (Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshalling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Defaults returns a Viper instance holding only the default settings.
func Defaults() *viper.Viper {
	v := viper.New()
	setDefaults(v)
	return v
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")

	v.SetDefault("sim.seed", 0)
	v.SetDefault("sim.runs", 1)
	v.SetDefault("sim.workers", 8)
	v.SetDefault("sim.roster", "")
	v.SetDefault("sim.max_rounds", 1000)
	v.SetDefault("sim.record", false)
	v.SetDefault("sim.color", false)
	v.SetDefault("sim.out", "")
}
