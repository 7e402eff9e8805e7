// SPDX-License-Identifier: MIT
// Package config holds the socnet CLI configuration: defaults, a YAML (or
// JSON) file layer, SOCNET_* environment overrides and validation.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/socnet/loader"
	"github.com/katalvlaran/socnet/recommend"
)

// ErrInvalid is wrapped by every Validate failure.
var ErrInvalid = errors.New("config: invalid")

// Config is the top-level CLI configuration.
//
// Thread Safety: Safe to read concurrently. Not safe to modify after creation.
type Config struct {
	// Graph selects the input dataset.
	Graph GraphConfig `json:"graph" yaml:"graph"`

	// Analysis bounds the engine.
	Analysis AnalysisConfig `json:"analysis" yaml:"analysis"`

	// Recommend tunes recommendation output.
	Recommend RecommendConfig `json:"recommend" yaml:"recommend"`

	// Logging configures the slog handler.
	Logging LoggingConfig `json:"logging" yaml:"logging"`

	// Tracing configures span reporting.
	Tracing TracingConfig `json:"tracing" yaml:"tracing"`
}

// GraphConfig describes where the graph comes from.
type GraphConfig struct {
	Path     string `json:"path" yaml:"path"`
	Format   string `json:"format" yaml:"format"`
	Directed bool   `json:"directed" yaml:"directed"`
	Loops    bool   `json:"loops" yaml:"loops"`
	// TopN keeps only the N highest-degree members; 0 keeps everyone.
	TopN int `json:"top_n" yaml:"top_n"`
}

// AnalysisConfig bounds engine work.
type AnalysisConfig struct {
	Timeout           time.Duration `json:"timeout" yaml:"timeout"`
	ReachabilityCache bool          `json:"reachability_cache" yaml:"reachability_cache"`
}

// RecommendConfig tunes recommendations.
type RecommendConfig struct {
	Limit        int    `json:"limit" yaml:"limit"`
	Cutoff       string `json:"cutoff" yaml:"cutoff"`
	Reachability bool   `json:"reachability" yaml:"reachability"`
}

// LoggingConfig selects the slog handler.
type LoggingConfig struct {
	Level  string `json:"level" yaml:"level"`
	Format string `json:"format" yaml:"format"`
}

// TracingConfig enables span timing reports on stderr.
type TracingConfig struct {
	Enabled bool `json:"enabled" yaml:"enabled"`
}

// Default returns the default configuration.
func Default() Config {
	return Config{
		Graph: GraphConfig{TopN: 200},
		Analysis: AnalysisConfig{
			Timeout:           time.Minute,
			ReachabilityCache: true,
		},
		Recommend: RecommendConfig{
			Limit:  recommend.DefaultLimit,
			Cutoff: recommend.CutoffStrict.String(),
		},
		Logging: LoggingConfig{Level: "info", Format: "text"},
	}
}

// Load returns Default overlaid with the file at path (when non-empty) and
// then with SOCNET_* environment variables, and validates the result.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		if err := loadFile(path, &cfg); err != nil {
			return cfg, fmt.Errorf("load config file: %w", err)
		}
	}
	loadEnv(&cfg)
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}

	return cfg, nil
}

func loadFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	// Try YAML first, then JSON
	if err := yaml.Unmarshal(data, cfg); err != nil {
		if jsonErr := json.Unmarshal(data, cfg); jsonErr != nil {
			return fmt.Errorf("parse config (tried YAML and JSON): YAML error: %v, JSON error: %w", err, jsonErr)
		}
	}

	return nil
}

func loadEnv(cfg *Config) {
	if v := os.Getenv("SOCNET_GRAPH"); v != "" {
		cfg.Graph.Path = v
	}
	if v := os.Getenv("SOCNET_TOP_N"); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			cfg.Graph.TopN = i
		}
	}
	if v := os.Getenv("SOCNET_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.Analysis.Timeout = d
		}
	}
	if v := os.Getenv("SOCNET_LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
	if v := os.Getenv("SOCNET_LOG_FORMAT"); v != "" {
		cfg.Logging.Format = v
	}
}

// Validate checks every field that has a closed set of values or a bound.
func (c Config) Validate() error {
	if _, err := loader.ParseFormat(c.Graph.Format); err != nil {
		return fmt.Errorf("%w: graph.format: %v", ErrInvalid, err)
	}
	if c.Graph.TopN < 0 {
		return fmt.Errorf("%w: graph.top_n must be >= 0", ErrInvalid)
	}
	if c.Analysis.Timeout < 0 {
		return fmt.Errorf("%w: analysis.timeout must be >= 0", ErrInvalid)
	}
	if c.Recommend.Limit < 1 {
		return fmt.Errorf("%w: recommend.limit must be >= 1", ErrInvalid)
	}
	if _, err := recommend.ParseCutoff(c.Recommend.Cutoff); err != nil {
		return fmt.Errorf("%w: recommend.cutoff: %v", ErrInvalid, err)
	}
	if _, err := c.Logging.SlogLevel(); err != nil {
		return err
	}
	switch strings.ToLower(c.Logging.Format) {
	case "text", "json":
	default:
		return fmt.Errorf("%w: logging.format must be text or json, got %q", ErrInvalid, c.Logging.Format)
	}

	return nil
}

// SlogLevel parses Level ("debug", "info", "warn", "error").
func (c LoggingConfig) SlogLevel() (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(c.Level)); err != nil {
		return 0, fmt.Errorf("%w: logging.level: %v", ErrInvalid, err)
	}

	return lvl, nil
}

// RecommendOptions converts the section into recommend options.
func (c RecommendConfig) RecommendOptions() ([]recommend.Option, error) {
	cutoff, err := recommend.ParseCutoff(c.Cutoff)
	if err != nil {
		return nil, fmt.Errorf("%w: recommend.cutoff: %v", ErrInvalid, err)
	}

	return []recommend.Option{recommend.WithLimit(c.Limit), recommend.WithCutoff(cutoff)}, nil
}

// LoaderOptions converts the section into loader options.
func (c GraphConfig) LoaderOptions() []loader.Option {
	opts := []loader.Option{loader.WithDirected(c.Directed)}
	if c.Loops {
		opts = append(opts, loader.WithLoops())
	}

	return opts
}
