// SPDX-License-Identifier: MIT

// Package config loads numlab settings from an optional YAML file and
// NUMLAB_* environment variables.
package config

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/numlab/convergence"
)

// EnvPrefix is prepended to every environment key (NUMLAB_LOG_LEVEL, ...).
const EnvPrefix = "NUMLAB"

// ErrInvalid marks a configuration that failed validation.
var ErrInvalid = errors.New("config: invalid configuration")

// Config is the full runtime configuration.
type Config struct {
	Log     LogConfig
	Solver  SolverConfig
	Metrics MetricsConfig
}

// LogConfig selects level and encoding for internal/logger.
type LogConfig struct {
	Level  string `validate:"required"`
	Format string `validate:"oneof=json console"`
}

// SolverConfig holds the defaults applied to requests that omit tol/max_iter.
type SolverConfig struct {
	DefaultTol     float64 `validate:"gt=0"`
	DefaultMaxIter int     `validate:"gt=0"`
}

// MetricsConfig toggles the Prometheus recorder.
type MetricsConfig struct {
	Enabled   bool
	Namespace string `validate:"required_if=Enabled true"`
}

// Criteria converts the solver defaults.
func (c *Config) Criteria() convergence.Criteria {
	return convergence.Criteria{Tol: c.Solver.DefaultTol, MaxIter: c.Solver.DefaultMaxIter}
}

var validate = validator.New()

// Load reads configuration. An empty path looks for numlab.yaml in the
// working directory and tolerates its absence; an explicit path must exist.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	} else {
		v.SetConfigName("numlab")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("config: %w", err)
			}
		}
	}

	var cfg Config
	cfg.Log.Level = v.GetString("log.level")
	cfg.Log.Format = v.GetString("log.format")
	cfg.Solver.DefaultTol = v.GetFloat64("solver.default_tol")
	cfg.Solver.DefaultMaxIter = v.GetInt("solver.default_max_iter")
	cfg.Metrics.Enabled = v.GetBool("metrics.enabled")
	cfg.Metrics.Namespace = v.GetString("metrics.namespace")

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks field constraints, the log level and tolerance finiteness.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	if _, err := zapcore.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("%w: log.level: %v", ErrInvalid, err)
	}
	if math.IsInf(c.Solver.DefaultTol, 0) {
		return fmt.Errorf("%w: solver.default_tol must be finite", ErrInvalid)
	}

	return nil
}

func setDefaults(v *viper.Viper) {
	// Logging defaults
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")

	// Solver defaults
	v.SetDefault("solver.default_tol", convergence.DefaultTol)
	v.SetDefault("solver.default_max_iter", convergence.DefaultMaxIter)

	// Metrics defaults
	v.SetDefault("metrics.enabled", false)
	v.SetDefault("metrics.namespace", "numlab")
}
