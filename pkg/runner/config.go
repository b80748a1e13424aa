package runner

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"digital.vasic.paramcheck/pkg/logging"
)

// Config holds runtime configuration for a suite run.
type Config struct {
	// MaxConcurrency is the number of contracts verified at
	// once. Values below 2 run sequentially.
	MaxConcurrency int `yaml:"max_concurrency" json:"max_concurrency"`

	// FailFast stops a sequential run after the first contract
	// that does not pass.
	FailFast bool `yaml:"fail_fast" json:"fail_fast"`

	// Verbose enables probe-level logging.
	Verbose bool `yaml:"verbose" json:"verbose"`

	// LogLevel is one of debug, info, warn or error.
	LogLevel string `yaml:"log_level" json:"log_level"`

	// ReportDir is where reports are written. Empty disables
	// report files.
	ReportDir string `yaml:"report_dir" json:"report_dir"`

	// Banks are glob patterns of contract bank files.
	Banks []string `yaml:"banks" json:"banks"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		MaxConcurrency: 1,
		LogLevel:       "info",
		ReportDir:      "reports",
	}
}

// LoadConfig reads a YAML (or JSON) config file on top of the
// defaults.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Environment variables read by ApplyEnv.
const (
	EnvMaxConcurrency = "PARAMCHECK_MAX_CONCURRENCY"
	EnvFailFast       = "PARAMCHECK_FAIL_FAST"
	EnvVerbose        = "PARAMCHECK_VERBOSE"
	EnvLogLevel       = "PARAMCHECK_LOG_LEVEL"
	EnvReportDir      = "PARAMCHECK_REPORT_DIR"
	EnvBanks          = "PARAMCHECK_BANKS"
)

// ApplyEnv overrides settings from environment variables.
// getenv is usually os.Getenv; empty values are ignored.
// PARAMCHECK_BANKS is a comma separated list of patterns.
func (c *Config) ApplyEnv(getenv func(string) string) error {
	if v := getenv(EnvMaxConcurrency); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvMaxConcurrency, err)
		}
		c.MaxConcurrency = n
	}
	if v := getenv(EnvFailFast); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvFailFast, err)
		}
		c.FailFast = b
	}
	if v := getenv(EnvVerbose); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvVerbose, err)
		}
		c.Verbose = b
	}
	if v := getenv(EnvLogLevel); v != "" {
		c.LogLevel = strings.ToLower(v)
	}
	if v := getenv(EnvReportDir); v != "" {
		c.ReportDir = v
	}
	if v := getenv(EnvBanks); v != "" {
		var banks []string
		for _, p := range strings.Split(v, ",") {
			if p = strings.TrimSpace(p); p != "" {
				banks = append(banks, p)
			}
		}
		c.Banks = banks
	}
	return c.Validate()
}

// Validate reports the first invalid setting.
func (c *Config) Validate() error {
	if c.MaxConcurrency < 0 {
		return fmt.Errorf(
			"max_concurrency must not be negative: %d",
			c.MaxConcurrency,
		)
	}
	switch c.LogLevel {
	case "", "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("unknown log_level: %s", c.LogLevel)
	}
	return nil
}

// NewLogger builds the logger described by the config: a
// console logger when Verbose is set, JSON lines on stderr
// otherwise.
func (c *Config) NewLogger() (logging.Logger, error) {
	return c.newLogger(os.Stderr)
}

func (c *Config) newLogger(w io.Writer) (logging.Logger, error) {
	if c.Verbose {
		return logging.NewConsoleLoggerTo(w, true), nil
	}
	level := logging.ParseLevel(c.LogLevel)
	logger, err := logging.NewJSONLogger(logging.LoggerConfig{
		Output:  w,
		Level:   level,
		Verbose: level == logging.LevelDebug,
	})
	if err != nil {
		return nil, err
	}
	return logger, nil
}
