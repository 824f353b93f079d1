// Package config resolves run settings from flags, environment variables
// (PRIMALDIMER_*) and an optional YAML/TOML/JSON settings file, in that
// order of precedence, on top of built-in defaults.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"primaldimer/internal/output"
)

// EnvPrefix is prepended to every environment override.
const EnvPrefix = "PRIMALDIMER"

// AmpliconConfig bounds the amplicon size, measured from the forward
// candidate's leftmost start to the reverse candidate's start.
type AmpliconConfig struct {
	Min int `mapstructure:"min"`
	Max int `mapstructure:"max"`
}

// BEDConfig names the rows written by the bed output.
type BEDConfig struct {
	Chrom  string `mapstructure:"chrom"`
	Prefix string `mapstructure:"prefix"`
	Pool   int    `mapstructure:"pool"`
}

// Config is the resolved settings for one run.
type Config struct {
	// score at or below which two sequences are said to interact
	Threshold float64 `mapstructure:"threshold"`

	Amplicon AmpliconConfig `mapstructure:"amplicon"`

	// worker goroutines (0 = all CPUs)
	Threads int `mapstructure:"threads"`

	Output   string    `mapstructure:"output"`
	Sort     bool      `mapstructure:"sort"`
	NoHeader bool      `mapstructure:"no-header"`
	Pretty   bool      `mapstructure:"pretty"`
	BED      BEDConfig `mapstructure:"bed"`

	// report non-extendable offsets as 100 instead of NA
	LegacySentinel bool `mapstructure:"legacy-sentinel"`

	Quiet           bool `mapstructure:"quiet"`
	Verbose         bool `mapstructure:"verbose"`
	NoMatchExitCode int  `mapstructure:"no-match-exit-code"`
}

// Defaults is the configuration with no file, env or flags applied.
var Defaults = map[string]any{
	"threshold":          -26.0,
	"amplicon.min":       200,
	"amplicon.max":       1000,
	"threads":            0,
	"output":             output.FormatText,
	"sort":               false,
	"no-header":          false,
	"pretty":             false,
	"bed.chrom":          "chrom",
	"bed.prefix":         "primaldimer",
	"bed.pool":           1,
	"legacy-sentinel":    false,
	"quiet":              false,
	"verbose":            false,
	"no-match-exit-code": 1,
}

// FlagKeys maps CLI flag names onto settings keys where they differ.
var FlagKeys = map[string]string{
	"amplicon-min": "amplicon.min",
	"amplicon-max": "amplicon.max",
	"bed-chrom":    "bed.chrom",
	"bed-prefix":   "bed.prefix",
	"bed-pool":     "bed.pool",
}

// New returns a viper instance with defaults and environment overrides
// wired. Each run gets its own instance so tests never share state.
func New() *viper.Viper {
	v := viper.New()
	for k, val := range Defaults {
		v.SetDefault(k, val)
	}
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()
	return v
}

// ReadFile loads a settings file. An explicit path must exist; with an
// empty path ./primaldimer.{yaml,toml,json} is used when present.
func ReadFile(v *viper.Viper, path string) error {
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("primaldimer")
		v.AddConfigPath(".")
	}
	if err := v.ReadInConfig(); err != nil {
		var nf viper.ConfigFileNotFoundError
		if path == "" && errors.As(err, &nf) {
			return nil
		}
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

// BindFlags binds every flag in fs that names a known setting. Flag names
// are translated through FlagKeys first.
func BindFlags(v *viper.Viper, fs *pflag.FlagSet) error {
	var err error
	fs.VisitAll(func(f *pflag.Flag) {
		key := f.Name
		if k, ok := FlagKeys[key]; ok {
			key = k
		}
		if _, known := Defaults[key]; !known {
			return
		}
		if e := v.BindPFlag(key, f); e != nil && err == nil {
			err = e
		}
	})
	return err
}

// Load decodes v into a Config and validates it.
func Load(v *viper.Viper) (Config, error) {
	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate rejects settings no command can run with.
func (c Config) Validate() error {
	switch {
	case c.Threads < 0:
		return errors.New("threads must be ≥ 0")
	case c.Amplicon.Min < 0:
		return errors.New("amplicon.min must be ≥ 0")
	case c.Amplicon.Min > c.Amplicon.Max:
		return fmt.Errorf("amplicon.min (%d) exceeds amplicon.max (%d)", c.Amplicon.Min, c.Amplicon.Max)
	case c.NoMatchExitCode < 0 || c.NoMatchExitCode > 255:
		return fmt.Errorf("no-match-exit-code %d outside 0..255", c.NoMatchExitCode)
	}
	switch c.Output {
	case output.FormatText, output.FormatJSON, output.FormatJSONL, output.FormatBED:
	default:
		return fmt.Errorf("invalid output %q (want text | json | jsonl | bed)", c.Output)
	}
	return nil
}

// Header reports whether text output starts with a header row.
func (c Config) Header() bool { return !c.NoHeader }
