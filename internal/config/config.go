// Package config provides Viper-based configuration loading for d20sheet.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix prefixes environment variable overrides, e.g. D20_LOGGING_LEVEL.
const EnvPrefix = "D20"

// LoggingConfig holds structured logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: "debug", "info", "warn", "error".
	Level string `mapstructure:"level"`
	// Format is the log output format: "json" or "console".
	Format string `mapstructure:"format"`
}

// RulesConfig locates the rule content.
type RulesConfig struct {
	// ContentDir holds races/, classes/, armor/ and an optional tables.yaml.
	ContentDir string `mapstructure:"content_dir"`
	// TablesFile overrides the tables.yaml inside ContentDir when set.
	TablesFile string `mapstructure:"tables_file"`
}

// EngineConfig tunes the stats engine. Zero values keep the rule tables' own settings.
type EngineConfig struct {
	// Cache enables the last-result snapshot cache.
	Cache bool `mapstructure:"cache"`
	// MaxLevel caps epic advancement; at most 100.
	MaxLevel   int `mapstructure:"max_level"`
	AbilityMin int `mapstructure:"ability_min"`
	AbilityMax int `mapstructure:"ability_max"`
}

// Config is the top-level application configuration.
type Config struct {
	Logging LoggingConfig `mapstructure:"logging"`
	Rules   RulesConfig   `mapstructure:"rules"`
	Engine  EngineConfig  `mapstructure:"engine"`
}

// Validate checks all configuration invariants.
//
// Postcondition: Returns nil if configuration is valid, or an error describing all violations.
func (c Config) Validate() error {
	var errs []string

	if err := validateLogging(c.Logging); err != nil {
		errs = append(errs, err.Error())
	}
	if err := validateRules(c.Rules); err != nil {
		errs = append(errs, err.Error())
	}
	if err := validateEngine(c.Engine); err != nil {
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

func validateRules(r RulesConfig) error {
	if r.ContentDir == "" {
		return errors.New("rules.content_dir must not be empty")
	}
	return nil
}

func validateEngine(e EngineConfig) error {
	var errs []string
	if e.MaxLevel != 0 && (e.MaxLevel <= 20 || e.MaxLevel > 100) {
		errs = append(errs, fmt.Sprintf("engine.max_level must be within 21-100 when set, got %d", e.MaxLevel))
	}
	if e.AbilityMin < 0 || e.AbilityMax < 0 {
		errs = append(errs, "engine.ability_min and engine.ability_max must not be negative")
	}
	if e.AbilityMin != 0 && e.AbilityMax != 0 && e.AbilityMin > e.AbilityMax {
		errs = append(errs, "engine.ability_min must not exceed engine.ability_max")
	}
	if len(errs) > 0 {
		return fmt.Errorf("%s", strings.Join(errs, "; "))
	}
	return nil
}

// Load reads configuration from the given file path, applies environment variable
// overrides, and validates the result. An empty path uses defaults and the
// environment only.
//
// Postcondition: Returns a valid Config or a non-nil error.
func Load(path string) (Config, error) {
	v := viper.New()

	// Environment variable overrides with D20_ prefix
	v.SetEnvPrefix(EnvPrefix)
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
//
// Precondition: v must be non-nil and have configuration values set.
// Postcondition: Returns a valid Config or a non-nil error.
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

func setDefaults(v *viper.Viper) {
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")

	v.SetDefault("rules.content_dir", "content")
	v.SetDefault("rules.tables_file", "")

	v.SetDefault("engine.cache", false)
	v.SetDefault("engine.max_level", 0)
	v.SetDefault("engine.ability_min", 0)
	v.SetDefault("engine.ability_max", 0)
}
