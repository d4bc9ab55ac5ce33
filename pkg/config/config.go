// Package config loads and validates analyzer configuration from YAML files
// with environment-variable overrides. It provides typed structs for the data
// sources, the analysis defaults, logging and metrics.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultStopWords is the fixed stop-word list applied to caption text.
// Matching is exact and case-sensitive: "I" is stopped, "i" is not.
var DefaultStopWords = []string{
	"a", "an", "the", "in", "on", "of", "is", "was", "am", "I", "me", "you",
	"and", "or", "not", "this", "that", "to", "with", "his", "hers", "out",
	"it", "as", "by", "are", "he", "her", "at", "its",
}

// Config is the top-level application configuration.
type Config struct {
	Data     DataConfig     `yaml:"data"`
	Analysis AnalysisConfig `yaml:"analysis"`
	Logging  LoggingConfig  `yaml:"logging"`
	Metrics  MetricsConfig  `yaml:"metrics"`
}

// DataConfig points at the two input files loaded at startup.
type DataConfig struct {
	AnnotationsPath string `yaml:"annotationsPath"`
	CategoriesPath  string `yaml:"categoriesPath"`
}

// AnalysisConfig controls the caption word ranking.
type AnalysisConfig struct {
	TopWords  int      `yaml:"topWords"`
	StopWords []string `yaml:"stopWords"`
}

// LoggingConfig controls structured logging level and output format.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// MetricsConfig controls the Prometheus metrics server.
type MetricsConfig struct {
	Enabled bool `yaml:"enabled"`
	Port    int  `yaml:"port"`
}

// Load reads a YAML config file (if provided) and applies environment-variable
// overrides. Missing values keep their defaults.
func Load(path string) (*Config, error) {
	cfg := defaultConfig()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file %s: %w", path, err)
		}
	}
	applyEnvOverrides(cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate reports settings that cannot be used.
func (c *Config) Validate() error {
	if c.Analysis.TopWords <= 0 {
		return fmt.Errorf("analysis.topWords must be positive, got %d", c.Analysis.TopWords)
	}
	if c.Metrics.Enabled && (c.Metrics.Port <= 0 || c.Metrics.Port > 65535) {
		return fmt.Errorf("metrics.port out of range: %d", c.Metrics.Port)
	}
	return nil
}

func defaultConfig() *Config {
	stop := make([]string, len(DefaultStopWords))
	copy(stop, DefaultStopWords)
	return &Config{
		Analysis: AnalysisConfig{
			TopWords:  10,
			StopWords: stop,
		},
		Logging: LoggingConfig{
			Level:  "warn",
			Format: "text",
		},
		Metrics: MetricsConfig{
			Enabled: false,
			Port:    9090,
		},
	}
}

// applyEnvOverrides reads AA_* environment variables and overrides the
// corresponding config fields.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("AA_ANNOTATIONS_PATH"); v != "" {
		cfg.Data.AnnotationsPath = v
	}
	if v := os.Getenv("AA_CATEGORIES_PATH"); v != "" {
		cfg.Data.CategoriesPath = v
	}
	if v := os.Getenv("AA_TOP_WORDS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Analysis.TopWords = n
		}
	}
	if v := os.Getenv("AA_STOP_WORDS"); v != "" {
		cfg.Analysis.StopWords = strings.Fields(strings.ReplaceAll(v, ",", " "))
	}
	if v := os.Getenv("AA_LOGGING_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
	if v := os.Getenv("AA_LOGGING_FORMAT"); v != "" {
		cfg.Logging.Format = v
	}
	if v := os.Getenv("AA_METRICS_ENABLED"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Metrics.Enabled = b
		}
	}
	if v := os.Getenv("AA_METRICS_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Metrics.Port = port
		}
	}
}
