// Package config loads the settings of the checkrun command
// from YAML.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Executor modes.
const (
	ExecutorSequential = "sequential"
	ExecutorParallel   = "parallel"
)

// Report formats.
const (
	FormatText     = "text"
	FormatJSON     = "json"
	FormatMarkdown = "markdown"
)

// Config holds the settings of a checkrun invocation.
type Config struct {
	// Executor is ExecutorSequential or ExecutorParallel.
	Executor string `yaml:"executor"`

	// MaxConcurrency bounds the parallel executor.
	MaxConcurrency int `yaml:"max_concurrency"`

	// Suites lists the suites to run, in order. Empty runs all.
	Suites []string `yaml:"suites"`

	// Filter is a regular expression on check names.
	Filter string `yaml:"filter"`

	// Format selects the reporter written to stdout.
	Format string `yaml:"format"`

	// ReportDir, when set, receives JSON and Markdown reports.
	ReportDir string `yaml:"report_dir"`

	// History, when set, is a JSON Lines file that gets one
	// entry per suite run.
	History string `yaml:"history"`

	// LogFile, when set, receives JSON log lines.
	LogFile string `yaml:"log_file"`

	// MetricsFile, when set, receives Prometheus metrics in the
	// text exposition format after all suites ran.
	MetricsFile string `yaml:"metrics_file"`

	// Verbose enables debug logging.
	Verbose bool `yaml:"verbose"`

	// SlowDelay is the wait of the slow sample checks.
	SlowDelay time.Duration `yaml:"slow_delay"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Executor:       ExecutorSequential,
		MaxConcurrency: 4,
		Format:         FormatText,
		SlowDelay:      time.Second,
	}
}

// Load reads a YAML file over the defaults and validates the
// result.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf(
			"failed to read config %s: %w", path, err,
		)
	}
	return Parse(data)
}

// Parse decodes YAML over the defaults and validates the result.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks enumerated values and limits.
func (c *Config) Validate() error {
	switch c.Executor {
	case ExecutorSequential, ExecutorParallel:
	default:
		return fmt.Errorf("unknown executor: %q", c.Executor)
	}

	switch c.Format {
	case FormatText, FormatJSON, FormatMarkdown:
	default:
		return fmt.Errorf("unknown format: %q", c.Format)
	}

	if c.Executor == ExecutorParallel && c.MaxConcurrency < 1 {
		return fmt.Errorf(
			"max_concurrency must be at least 1, got %d",
			c.MaxConcurrency,
		)
	}
	if c.SlowDelay < 0 {
		return fmt.Errorf("slow_delay must not be negative")
	}
	return nil
}
