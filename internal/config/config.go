// Package config loads dualwalk settings from defaults, an optional YAML
// file, DUALWALK_* environment variables and command-line flags, in
// increasing order of precedence.
package config

import (
	"runtime"
	"strings"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// ErrInvalid indicates a setting with an unusable value.
var ErrInvalid = errors.New("config: invalid value")

// Evaluation modes accepted by the mode setting.
const (
	ModeMemoized = "memoized"
	ModeRolling  = "rolling"
)

// Config holds the settings of one dualwalk run.
type Config struct {
	Puzzles  string `mapstructure:"puzzles"`
	Mode     string `mapstructure:"mode"`
	Workers  int    `mapstructure:"workers"`
	LogLevel string `mapstructure:"log_level"`
}

// Load parses args (without the program name) and merges every source.
// A -h flag yields an error matching pflag.ErrHelp.
func Load(args []string) (*Config, error) {
	fs := pflag.NewFlagSet("dualwalk", pflag.ContinueOnError)
	fs.String("config", "", "path of a YAML config file")
	fs.String("puzzles", "", "path of the YAML puzzle set to evaluate")
	fs.String("mode", ModeMemoized, "evaluation mode: memoized or rolling")
	fs.Int("workers", runtime.NumCPU(), "puzzles evaluated concurrently")
	fs.String("log-level", zerolog.InfoLevel.String(), "trace, debug, info, warn or error")
	if err := fs.Parse(args); err != nil {
		return nil, errors.Wrap(err, "parse flags")
	}

	v := viper.New()
	v.SetDefault("mode", ModeMemoized)
	v.SetDefault("workers", runtime.NumCPU())
	v.SetDefault("log_level", zerolog.InfoLevel.String())
	v.SetEnvPrefix("DUALWALK")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if path, _ := fs.GetString("config"); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "read config %s", path)
		}
	}
	for key, flag := range map[string]string{
		"puzzles":   "puzzles",
		"mode":      "mode",
		"workers":   "workers",
		"log_level": "log-level",
	} {
		if err := v.BindPFlag(key, fs.Lookup(flag)); err != nil {
			return nil, errors.Wrapf(err, "bind flag %s", flag)
		}
	}

	c := &Config{}
	if err := v.Unmarshal(c); err != nil {
		return nil, errors.Wrap(err, "decode config")
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}

	return c, nil
}

// Validate checks every field.
func (c *Config) Validate() error {
	if c.Puzzles == "" {
		return errors.Wrap(ErrInvalid, "puzzles path is required")
	}
	c.Mode = strings.ToLower(c.Mode)
	if c.Mode != ModeMemoized && c.Mode != ModeRolling {
		return errors.Wrapf(ErrInvalid, "mode %q", c.Mode)
	}
	if c.Workers < 1 {
		return errors.Wrapf(ErrInvalid, "workers %d", c.Workers)
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// Level parses LogLevel.
func (c *Config) Level() (zerolog.Level, error) {
	lvl, err := zerolog.ParseLevel(strings.ToLower(c.LogLevel))
	if err != nil {
		return zerolog.NoLevel, errors.Wrapf(ErrInvalid, "log level %q", c.LogLevel)
	}
	return lvl, nil
}

// Rolling reports whether the iterative evaluation mode is selected.
func (c *Config) Rolling() bool {
	return c.Mode == ModeRolling
}
