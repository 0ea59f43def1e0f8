package config

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/schemedash/schemedash/internal/output"
)

// Validate checks all fields in the config and returns all errors at once.
func Validate(cfg *Config) error {
	var errs []string

	src := cfg.Source
	if src.BaseURL != "" && src.Dir != "" {
		errs = append(errs, "source: base_url and dir are mutually exclusive")
	}
	if src.BaseURL != "" {
		u, err := url.Parse(src.BaseURL)
		switch {
		case err != nil:
			errs = append(errs, fmt.Sprintf("source.base_url: %v", err))
		case u.Scheme != "http" && u.Scheme != "https":
			errs = append(errs, fmt.Sprintf("source.base_url: scheme must be http or https, got %q", u.Scheme))
		case u.Host == "":
			errs = append(errs, "source.base_url: missing host")
		}
	}
	if src.PathPattern != "" && !strings.Contains(src.PathPattern, "{id}") {
		errs = append(errs, fmt.Sprintf("source.path_pattern: must contain {id}, got %q", src.PathPattern))
	}
	if _, err := src.TimeoutDuration(); err != nil {
		errs = append(errs, err.Error())
	}
	if _, err := src.CacheTTLDuration(); err != nil {
		errs = append(errs, err.Error())
	}

	if cfg.Concurrency < 0 {
		errs = append(errs, fmt.Sprintf("concurrency: must be non-negative, got %d", cfg.Concurrency))
	}
	if cfg.Capacity < 0 {
		errs = append(errs, fmt.Sprintf("capacity: must be non-negative, got %d", cfg.Capacity))
	}

	if cfg.OutputFormat != "" {
		if _, err := output.GetFormatter(cfg.OutputFormat); err != nil {
			errs = append(errs, fmt.Sprintf("output_format: %v", err))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("config validation failed:\n  %s", strings.Join(errs, "\n  "))
	}
	return nil
}
