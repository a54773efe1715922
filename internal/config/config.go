// Package config loads gridwalk settings from an optional YAML or TOML
// file, GRIDWALK_* environment variables and command-line flags, in
// increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/lvlgrid/internal/logger"
	"github.com/katalvlaran/lvlgrid/internal/output"
)

var (
	// ErrInvalidOutput is returned when output is not a known format.
	ErrInvalidOutput = errors.New("config: invalid output format")
	// ErrInvalidRune is returned when wall, start or end is not exactly one rune.
	ErrInvalidRune = errors.New("config: marker must be a single rune")
	// ErrInvalidLevel is returned for an unknown log level.
	ErrInvalidLevel = errors.New("config: invalid log level")
	// ErrNegativeCost is returned when a cost or depth is negative.
	ErrNegativeCost = errors.New("config: costs and depth must be non-negative")
)

// Config holds every setting a gridwalk command may read.
type Config struct {
	LogLevel  string `mapstructure:"log_level" yaml:"log_level"` // debug, info, warn or error
	Output    string `mapstructure:"output" yaml:"output"`       // text, json, yaml or toml
	Wall      string `mapstructure:"wall" yaml:"wall"`           // Impassable cell marker
	Start     string `mapstructure:"start" yaml:"start"`         // Start cell marker
	End       string `mapstructure:"end" yaml:"end"`             // End cell marker
	Diagonals bool   `mapstructure:"diagonals" yaml:"diagonals"` // Allow 8-way moves
	TurnCost  int64  `mapstructure:"turn_cost" yaml:"turn_cost"` // Cost of a quarter turn
	StepCost  int64  `mapstructure:"step_cost" yaml:"step_cost"` // Cost of a forward step
	MaxDepth  int    `mapstructure:"max_depth" yaml:"max_depth"` // Search depth limit, 0 for none
}

// defaults are applied before any file, env or flag value.
var defaults = map[string]any{
	"log_level": "info",
	"output":    string(output.Text),
	"wall":      "#",
	"start":     "S",
	"end":       "E",
	"diagonals": false,
	"turn_cost": int64(1000),
	"step_cost": int64(1),
	"max_depth": 0,
}

// envBindings maps each config key to the environment variables that can
// provide its value, in order of preference.
var envBindings = map[string][]string{
	"log_level": {"GRIDWALK_LOG_LEVEL", "LOG_LEVEL"},
	"output":    {"GRIDWALK_OUTPUT"},
	"wall":      {"GRIDWALK_WALL"},
	"start":     {"GRIDWALK_START"},
	"end":       {"GRIDWALK_END"},
	"diagonals": {"GRIDWALK_DIAGONALS"},
	"turn_cost": {"GRIDWALK_TURN_COST"},
	"step_cost": {"GRIDWALK_STEP_COST"},
	"max_depth": {"GRIDWALK_MAX_DEPTH"},
}

// Load builds a Config. filePath may be empty; a named file that cannot be
// read is an error. flags may be nil; otherwise each flag named like a key
// with dashes ("turn-cost") overrides the other sources when it was set.
func Load(filePath string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	for key, val := range defaults {
		v.SetDefault(key, val)
	}

	if err := bindEnvs(v); err != nil {
		return nil, err
	}
	if err := bindFlags(v, flags); err != nil {
		return nil, err
	}

	if filePath != "" {
		v.SetConfigFile(filePath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", filePath, err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// bindEnvs binds the environment variables to the viper instance.
func bindEnvs(v *viper.Viper) error {
	for key, envs := range envBindings {
		// Prepend the config key to the start of the arguments
		inputs := slices.Insert(slices.Clone(envs), 0, key)

		if err := v.BindEnv(inputs...); err != nil {
			return err
		}
	}

	return nil
}

// bindFlags binds every flag in fs whose name matches a config key.
func bindFlags(v *viper.Viper, fs *pflag.FlagSet) error {
	if fs == nil {
		return nil
	}
	for key := range defaults {
		f := fs.Lookup(FlagName(key))
		if f == nil {
			continue
		}
		if err := v.BindPFlag(key, f); err != nil {
			return err
		}
	}

	return nil
}

// FlagName returns the command-line flag name for a config key.
func FlagName(key string) string {
	return strings.ReplaceAll(key, "_", "-")
}

// Validate checks every field and returns the first problem found.
func (c *Config) Validate() error {
	if _, err := logger.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidLevel, c.LogLevel)
	}
	if _, err := output.ParseFormat(c.Output); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidOutput, c.Output)
	}
	for name, s := range map[string]string{"wall": c.Wall, "start": c.Start, "end": c.End} {
		if utf8.RuneCountInString(s) != 1 {
			return fmt.Errorf("%w: %s=%q", ErrInvalidRune, name, s)
		}
	}
	if c.TurnCost < 0 || c.StepCost < 0 || c.MaxDepth < 0 {
		return ErrNegativeCost
	}

	return nil
}

// Level returns the parsed log level; call after Validate.
func (c *Config) Level() zapcore.Level {
	lvl, _ := logger.ParseLevel(c.LogLevel)
	return lvl
}

// Format returns the parsed output format; call after Validate.
func (c *Config) Format() output.Format {
	f, _ := output.ParseFormat(c.Output)
	return f
}

// WallRune returns the wall marker.
func (c *Config) WallRune() rune { return firstRune(c.Wall) }

// StartRune returns the start marker.
func (c *Config) StartRune() rune { return firstRune(c.Start) }

// EndRune returns the end marker.
func (c *Config) EndRune() rune { return firstRune(c.End) }

func firstRune(s string) rune {
	r, _ := utf8.DecodeRuneInString(s)
	return r
}
