// Package config handles .schemedash.yaml configuration files.
package config

import (
	"fmt"
	"time"
)

// Config represents the contents of a .schemedash.yaml file. Zero values
// mean "not set" so layers can be merged.
type Config struct {
	Source       SourceConfig `yaml:"source,omitempty"`
	Concurrency  int          `yaml:"concurrency,omitempty"`
	FallbackFile string       `yaml:"fallback_file,omitempty"`
	Capacity     int64        `yaml:"capacity,omitempty"`
	District     string       `yaml:"district,omitempty"`
	OutputFormat string       `yaml:"output_format,omitempty"`
	ColorSeed    *uint64      `yaml:"color_seed,omitempty"`
}

// SourceConfig says where scheme datasets are fetched from. BaseURL and Dir
// are mutually exclusive; with neither set every scheme uses sample data.
type SourceConfig struct {
	BaseURL     string `yaml:"base_url,omitempty"`
	Dir         string `yaml:"dir,omitempty"`
	PathPattern string `yaml:"path_pattern,omitempty"`
	Timeout     string `yaml:"timeout,omitempty"`
	CacheTTL    string `yaml:"cache_ttl,omitempty"`
}

// FileName is the expected config file name in the working directory.
const FileName = ".schemedash.yaml"

// TimeoutDuration parses Timeout. Unset is zero.
func (s SourceConfig) TimeoutDuration() (time.Duration, error) {
	return parseDuration("source.timeout", s.Timeout)
}

// CacheTTLDuration parses CacheTTL. Unset is zero, which disables caching.
func (s SourceConfig) CacheTTLDuration() (time.Duration, error) {
	return parseDuration("source.cache_ttl", s.CacheTTL)
}

func parseDuration(key, s string) (time.Duration, error) {
	if s == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	if d < 0 {
		return 0, fmt.Errorf("%s: must be non-negative, got %s", key, s)
	}
	return d, nil
}
