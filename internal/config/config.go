// Package config provides configuration management for intentcluster.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"github.com/williamzebrowskI/Intent-Cluster-Analysis/pkg/cluster"
)

// Built-in defaults for the clustering parameters and the serving surface.
const (
	DefaultEps            = 0.5
	DefaultMinPoints      = 2
	DefaultWorkers        = 1
	DefaultListenAddr     = "127.0.0.1:8420"
	DefaultLogLevel       = "info"
	DefaultMaxBatchSize   = 10000
	DefaultMinTokenLength = 2
)

// Config holds the runtime settings shared by the CLI and the HTTP service.
type Config struct {
	// Eps is the neighborhood radius in cosine-distance units.
	Eps float64 `yaml:"eps"`

	// MinPoints is the minimum neighborhood size for a core point,
	// counting the point itself.
	MinPoints int `yaml:"min_points"`

	// Workers bounds the goroutines used for the similarity matrix.
	Workers int `yaml:"workers"`

	// ListenAddr is the HTTP bind address for serve mode.
	ListenAddr string `yaml:"listen_addr"`

	// LogLevel is a zerolog level name: debug, info, warn, error.
	LogLevel string `yaml:"log_level"`

	// MaxBatchSize caps the utterances accepted per HTTP request.
	MaxBatchSize int `yaml:"max_batch_size"`

	// MinTokenLength drops shorter tokens during normalization.
	MinTokenLength int `yaml:"min_token_length"`

	// ExtraStopWords extends the built-in stop list.
	ExtraStopWords []string `yaml:"extra_stop_words"`

	// KeepWords removes entries from the built-in stop list.
	KeepWords []string `yaml:"keep_words"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Eps:            DefaultEps,
		MinPoints:      DefaultMinPoints,
		Workers:        DefaultWorkers,
		ListenAddr:     DefaultListenAddr,
		LogLevel:       DefaultLogLevel,
		MaxBatchSize:   DefaultMaxBatchSize,
		MinTokenLength: DefaultMinTokenLength,
	}
}

// DefaultPath returns the conventional config file location,
// ~/.intentcluster/config.yaml.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".intentcluster", "config.yaml")
}

// Load builds the effective configuration: defaults first, then the YAML
// file at path (or the default path when path is empty), then
// INTENTCLUSTER_* environment overrides. A missing default file is not an
// error; a missing explicit file or a malformed file is.
func Load(path string) (*Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = DefaultPath()
	}
	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("parse config %s: %w", path, err)
			}
		case os.IsNotExist(err) && !explicit:
			// Optional default file.
		default:
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the effective values.
func (c *Config) Validate() error {
	if err := cluster.ValidateParams(c.Eps, c.MinPoints); err != nil {
		return err
	}
	if c.Workers < 1 {
		return fmt.Errorf("config: workers must be at least 1, got %d", c.Workers)
	}
	if c.MaxBatchSize < 1 {
		return fmt.Errorf("config: max_batch_size must be at least 1, got %d", c.MaxBatchSize)
	}
	if c.MinTokenLength < 1 {
		return fmt.Errorf("config: min_token_length must be at least 1, got %d", c.MinTokenLength)
	}
	if c.ListenAddr == "" {
		return fmt.Errorf("config: listen_addr must not be empty")
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("config: invalid log_level %q: %w", c.LogLevel, err)
	}
	return nil
}

// Level returns the parsed zerolog level, defaulting to info.
func (c *Config) Level() zerolog.Level {
	lvl, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil {
		return zerolog.InfoLevel
	}
	return lvl
}

func (c *Config) applyEnv() {
	c.Eps = envFloat("INTENTCLUSTER_EPS", c.Eps)
	c.MinPoints = envInt("INTENTCLUSTER_MIN_POINTS", c.MinPoints)
	c.Workers = envInt("INTENTCLUSTER_WORKERS", c.Workers)
	c.ListenAddr = envString("INTENTCLUSTER_LISTEN_ADDR", c.ListenAddr)
	c.LogLevel = envString("INTENTCLUSTER_LOG_LEVEL", c.LogLevel)
	c.MaxBatchSize = envInt("INTENTCLUSTER_MAX_BATCH_SIZE", c.MaxBatchSize)
	c.MinTokenLength = envInt("INTENTCLUSTER_MIN_TOKEN_LENGTH", c.MinTokenLength)
	if v, ok := os.LookupEnv("INTENTCLUSTER_EXTRA_STOP_WORDS"); ok {
		c.ExtraStopWords = splitTrim(v)
	}
	if v, ok := os.LookupEnv("INTENTCLUSTER_KEEP_WORDS"); ok {
		c.KeepWords = splitTrim(v)
	}
}

func envString(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

func envFloat(key string, fallback float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return fallback
	}
	return f
}

// splitTrim splits a comma-separated list, trimming whitespace and dropping
// empty entries.
func splitTrim(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
